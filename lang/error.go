package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// Predefined errors (sentinel values).
var (
	ErrUnparseable      = NewError("unparseable input")
	ErrProcessing       = NewError("failed to process expression")
	ErrInternal         = NewError("internal error")
	ErrBuildAST         = NewError("failed to build expression tree")
	ErrInvalidAlternate = NewError("invalid production alternate")
	ErrUnexpectedNode   = NewError("unexpected syntax tree node")
	ErrInvalidOrdinal   = NewError("invalid ordinal")
	ErrInvalidNumber    = NewError("invalid number value")
	ErrMaxDepthExceeded = NewError("maximum expression depth exceeded")
	ErrInvalidConfig    = NewError("invalid configuration")
	ErrInvalidValue     = NewError("invalid value")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from with
// [Error.Wrap] or [Error.With].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.err != nil || t.msg == "" {
		return false
	}

	return t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// ParseError reports input that no grammar production accepts. It matches
// [ErrUnparseable] with errors.Is.
type ParseError struct {
	Source   string   // The lowercased input
	Column   int      // 1-based column of the furthest failure
	Found    string   // The token found at Column
	Expected []string // What the grammar would have accepted at Column
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg, snippet := e.formatWithContext()
	if len(e.Expected) == 0 {
		return msg + snippet
	}

	return msg + snippet + "\texpected: " + strings.Join(e.Expected, ", ")
}

// Is reports whether target is [ErrUnparseable].
func (e *ParseError) Is(target error) bool { return target == ErrUnparseable }

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", ErrUnparseable.msg),
		slog.Int("column", e.Column),
		slog.String("found", e.Found),
		slog.Any("expected", e.Expected),
	)
}

// formatWithContext formats the parse error with a caret under the source.
func (e *ParseError) formatWithContext() (string, string) {
	var buf, src strings.Builder

	buf.WriteString("unparseable input at column ")
	buf.WriteString(strconv.Itoa(e.Column))

	if e.Found != "" {
		buf.WriteString(", found ")
		buf.WriteString(e.Found)
	}

	buf.WriteString(":\n")

	if e.Source == "" {
		return buf.String(), ""
	}

	src.WriteString("  | ")
	src.WriteString(e.Source)
	src.WriteRune('\n')

	// 4 accounts for "  | ".
	padding := strings.Repeat(" ", 4)
	if e.Column > 0 {
		padding += strings.Repeat(" ", e.Column-1)
	}

	src.WriteString(padding + "^\n")

	return buf.String(), src.String()
}

// ProcessingError collects the failures of resolving an expression tree. It
// matches [ErrProcessing] with errors.Is, and errors.Is/As also search the
// collected errors.
type ProcessingError struct {
	Errors []error
}

// Error implements the error interface.
func (e *ProcessingError) Error() string {
	part := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		part[i] = err.Error()
	}

	return ErrProcessing.msg + ": " + strings.Join(part, "; ")
}

// Unwrap returns the collected errors.
func (e *ProcessingError) Unwrap() []error { return e.Errors }

// Is reports whether target is [ErrProcessing].
func (e *ProcessingError) Is(target error) bool { return target == ErrProcessing }

// LogValue implements slog.LogValuer.
func (e *ProcessingError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.Errors)+1)
	attrs = append(attrs, slog.String("error", ErrProcessing.msg))

	for i, err := range e.Errors {
		attrs = append(attrs, slog.Any(strconv.Itoa(i), err))
	}

	return slog.GroupValue(attrs...)
}

// Op is the direction of a failed calendar shift.
type Op int

const (
	OpAdd Op = iota
	OpSubtract
)

func (o Op) String() string {
	if o == OpSubtract {
		return "subtract"
	}

	return "add"
}

// ArithmeticError reports a calendar shift whose result is not
// representable. Date is the point being shifted, or nil when it is the
// reference instant.
type ArithmeticError struct {
	Op    Op
	Unit  string
	Count int
	Date  *civil.DateTime
}

// Error implements the error interface.
func (e *ArithmeticError) Error() string {
	var buf strings.Builder

	buf.WriteString("failed to ")
	buf.WriteString(e.Op.String())
	buf.WriteRune(' ')
	buf.WriteString(strconv.Itoa(e.Count))
	buf.WriteRune(' ')
	buf.WriteString(e.Unit)

	if e.Op == OpSubtract {
		buf.WriteString(" from ")
	} else {
		buf.WriteString(" to ")
	}

	if e.Date == nil {
		buf.WriteString("the current time")
	} else {
		buf.WriteString(e.Date.String())
	}

	return buf.String()
}

// LogValue implements slog.LogValuer.
func (e *ArithmeticError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("op", e.Op.String()),
		slog.String("unit", e.Unit),
		slog.Int("count", e.Count),
	}

	if e.Date != nil {
		attrs = append(attrs, slog.String("date", e.Date.String()))
	}

	return slog.GroupValue(attrs...)
}

// DateError reports a year, month, and day that do not form a calendar date.
type DateError struct {
	Year, Month, Day int
}

// Error implements the error interface.
func (e *DateError) Error() string {
	return strconv.Itoa(e.Year) + "-" + strconv.Itoa(e.Month) + "-" +
		strconv.Itoa(e.Day) + " is not a valid date"
}

// LogValue implements slog.LogValuer.
func (e *DateError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("year", e.Year),
		slog.Int("month", e.Month),
		slog.Int("day", e.Day),
	)
}

// TimeError reports clock fields that do not form a time of day.
type TimeError struct {
	Hour, Minute, Second int
	HasSecond            bool
}

// Error implements the error interface.
func (e *TimeError) Error() string {
	s := strconv.Itoa(e.Hour) + ":" + strconv.Itoa(e.Minute)
	if e.HasSecond {
		s += ":" + strconv.Itoa(e.Second)
	}

	return "could not build time from " + s
}

// LogValue implements slog.LogValuer.
func (e *TimeError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("hour", e.Hour),
		slog.Int("minute", e.Minute),
	}

	if e.HasSecond {
		attrs = append(attrs, slog.Int("second", e.Second))
	}

	return slog.GroupValue(attrs...)
}

// NestedError wraps the failure of an expression nested inside another,
// such as the reference of an ordinal or the origin of "before".
type NestedError struct {
	Err error
}

// Error implements the error interface.
func (e *NestedError) Error() string {
	return "failed to resolve nested expression: " + e.Err.Error()
}

// Unwrap returns the nested failure.
func (e *NestedError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer.
func (e *NestedError) LogValue() slog.Value {
	return slog.GroupValue(slog.Any("nested", e.Err))
}

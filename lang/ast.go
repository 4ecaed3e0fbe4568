package lang

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Expr is the root of an expression tree. Its concrete type is one of
// [*DateTimeExpr], [*DateExpr], [*TimeExpr], [*InExpr], [*AgoExpr], or [Now].
//
// Trees are immutable once built. The only node that owns another whole
// expression is [AgoExpr.From].
type Expr interface {
	fmt.Stringer
	expr()
}

// DateTimeExpr combines a date and a clock time: "tomorrow at 10:00".
type DateTimeExpr struct {
	Date Date
	Time Time
}

// DateExpr is a date without a clock time: "next friday".
type DateExpr struct {
	Date Date
}

// TimeExpr is a clock time without a date: "17:30".
type TimeExpr struct {
	Time Time
}

// InExpr shifts now forward by a duration: "in 3 days".
type InExpr struct {
	Duration Duration
}

// AgoExpr shifts a point backward by a duration: "2 days ago". The point is
// now unless From is set: "2 days before next friday".
type AgoExpr struct {
	Duration Duration
	From     Expr
}

// Now is the reference instant itself. It is both an [Expr] and a
// [Reference].
type Now struct{}

func (*DateTimeExpr) expr() {}
func (*DateExpr) expr()     {}
func (*TimeExpr) expr()     {}
func (*InExpr) expr()       {}
func (*AgoExpr) expr()      {}
func (Now) expr()           {}
func (Now) reference()      {}

func (e *DateTimeExpr) String() string { return e.Date.String() + " at " + e.Time.String() }
func (e *DateExpr) String() string     { return e.Date.String() }
func (e *TimeExpr) String() string     { return e.Time.String() }
func (e *InExpr) String() string       { return "in " + e.Duration.String() }
func (Now) String() string             { return "now" }

func (e *AgoExpr) String() string {
	if e.From == nil {
		return e.Duration.String() + " ago"
	}

	return e.Duration.String() + " before " + e.From.String()
}

// Date is a calendar date expression. Its concrete type is one of
// [RelativeDay], [IsoDate], [DayMonthYear], [DayMonth],
// [RelativeWeekWeekday], [RelativeWeekday], [RelativeUnit],
// [UpcomingWeekday], or [OrdinalUnitOf].
type Date interface {
	fmt.Stringer
	date()
}

// RelativeDay is one of the day keywords that resolve relative to now.
type RelativeDay int

const (
	Today RelativeDay = iota
	Tomorrow
	Overmorrow
	Yesterday
)

func (d RelativeDay) String() string {
	switch d {
	case Today:
		return "today"
	case Tomorrow:
		return "tomorrow"
	case Overmorrow:
		return "overmorrow"
	case Yesterday:
		return "yesterday"
	default:
		return "RelativeDay(" + strconv.Itoa(int(d)) + ")"
	}
}

// IsoDate is a literal YYYY-MM-DD date. Its fields are kept as written and
// are validated only during resolution.
type IsoDate struct {
	Year, Month, Day int
}

// DayMonthYear is a literal date written with a month name: "15 march 2025".
type DayMonthYear struct {
	Day   int
	Month time.Month
	Year  int
}

// DayMonth is a literal day and month name; the year is now's year.
type DayMonth struct {
	Day   int
	Month time.Month
}

// RelativeWeekWeekday names a weekday within a relative week:
// "next week's friday".
type RelativeWeekWeekday struct {
	Specifier Specifier
	Weekday   time.Weekday
}

// RelativeWeekday names the nearest weekday in a direction: "last tuesday".
type RelativeWeekday struct {
	Specifier Specifier
	Weekday   time.Weekday
}

// RelativeUnit shifts now by one unit in a direction: "next month". It is
// both a [Date] and a [Reference].
type RelativeUnit struct {
	Specifier Specifier
	Unit      Unit
}

// UpcomingWeekday is a bare weekday name: "friday". It means the next
// occurrence, never today.
type UpcomingWeekday struct {
	Weekday time.Weekday
}

// OrdinalUnitOf selects an ordinal position of a unit within an anchor:
// "first day of next month".
type OrdinalUnitOf struct {
	Ordinal   Ordinal
	Unit      Unit
	Reference Reference
}

func (RelativeDay) date()         {}
func (IsoDate) date()             {}
func (DayMonthYear) date()        {}
func (DayMonth) date()            {}
func (RelativeWeekWeekday) date() {}
func (RelativeWeekday) date()     {}
func (RelativeUnit) date()        {}
func (UpcomingWeekday) date()     {}
func (OrdinalUnitOf) date()       {}
func (RelativeDay) reference()    {}
func (RelativeUnit) reference()   {}

func (d IsoDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d DayMonthYear) String() string {
	return fmt.Sprintf("%d %s %d", d.Day, monthName(d.Month), d.Year)
}

func (d DayMonth) String() string {
	return fmt.Sprintf("%d %s", d.Day, monthName(d.Month))
}

func (d RelativeWeekWeekday) String() string {
	return d.Specifier.String() + " week's " + weekdayName(d.Weekday)
}

func (d RelativeWeekday) String() string {
	return d.Specifier.String() + " " + weekdayName(d.Weekday)
}

func (d RelativeUnit) String() string {
	return d.Specifier.String() + " " + d.Unit.String()
}

func (d UpcomingWeekday) String() string { return weekdayName(d.Weekday) }

func (d OrdinalUnitOf) String() string {
	return d.Ordinal.String() + " " + d.Unit.String() + " of " + d.Reference.String()
}

// Time is a clock time expression: [HourMinute] or [HourMinuteSecond].
// Fields are validated only during resolution.
type Time interface {
	fmt.Stringer
	clock()
}

// HourMinute is a clock time written as HH:MM.
type HourMinute struct {
	Hour, Minute int
}

// HourMinuteSecond is a clock time written as HH:MM:SS.
type HourMinuteSecond struct {
	Hour, Minute, Second int
}

func (HourMinute) clock()       {}
func (HourMinuteSecond) clock() {}

func (t HourMinute) String() string { return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute) }

func (t HourMinuteSecond) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// Duration is a non-empty sequence of quantifiers applied in order.
type Duration []Quantifier

func (d Duration) String() string {
	part := make([]string, len(d))
	for i, q := range d {
		part[i] = q.String()
	}

	return strings.Join(part, " ")
}

// Quantifier is a count of one unit.
type Quantifier struct {
	Count int
	Unit  Unit
}

func (q Quantifier) String() string {
	if q.Count == 1 {
		return "1 " + q.Unit.String()
	}

	return strconv.Itoa(q.Count) + " " + q.Unit.Plural()
}

// Unit is a calendar or clock unit.
type Unit int

const (
	UnitYear Unit = iota
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
)

var unitNames = [...]string{
	UnitYear:   "year",
	UnitMonth:  "month",
	UnitWeek:   "week",
	UnitDay:    "day",
	UnitHour:   "hour",
	UnitMinute: "minute",
	UnitSecond: "second",
}

func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}

	return unitNames[u]
}

// Plural returns the plural unit name, used in error messages.
func (u Unit) Plural() string { return u.String() + "s" }

// IsSubDay reports whether u is shorter than a day.
func (u Unit) IsSubDay() bool { return u >= UnitHour && u <= UnitSecond }

// Specifier is a relative direction.
type Specifier int

const (
	This Specifier = iota
	Next
	Last
)

func (s Specifier) String() string {
	switch s {
	case This:
		return "this"
	case Next:
		return "next"
	case Last:
		return "last"
	default:
		return "Specifier(" + strconv.Itoa(int(s)) + ")"
	}
}

// OrdinalKind distinguishes the ordinal forms.
type OrdinalKind int

const (
	OrdinalFirst OrdinalKind = iota
	OrdinalLast
	OrdinalNth
)

// Ordinal is First, Last, or the N-th position. A zero N selects nothing.
type Ordinal struct {
	Kind OrdinalKind
	N    int
}

// First returns the first ordinal.
func First() Ordinal { return Ordinal{Kind: OrdinalFirst, N: 1} }

// LastOrdinal returns the last ordinal.
func LastOrdinal() Ordinal { return Ordinal{Kind: OrdinalLast} }

// Nth returns the n-th ordinal. Nth(1) is [First].
func Nth(n int) Ordinal {
	if n == 1 {
		return First()
	}

	return Ordinal{Kind: OrdinalNth, N: n}
}

func (o Ordinal) String() string {
	switch o.Kind {
	case OrdinalFirst:
		return "first"
	case OrdinalLast:
		return "last"
	default:
		return strconv.Itoa(o.N) + ordinalSuffix(o.N)
	}
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}

	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Reference is an anchor for ordinal selection. Its concrete type is one of
// [MonthYear], [AgoRef], [RelativeUnit], [TheUnit], [RelativeDay], or [Now].
type Reference interface {
	fmt.Stringer
	reference()
}

// MonthYear anchors at day 1 of a month. Year is nil when not written.
type MonthYear struct {
	Month MonthSpec
	Year  YearSpec
}

// AgoRef anchors at now shifted backward by a duration: "3 months ago".
type AgoRef struct {
	Duration Duration
}

// TheUnit anchors at now; the unit only steers strategy selection:
// "the year".
type TheUnit struct {
	Unit Unit
}

func (MonthYear) reference() {}
func (AgoRef) reference()    {}
func (TheUnit) reference()   {}

func (r MonthYear) String() string {
	if r.Year == nil {
		return r.Month.String()
	}

	return r.Month.String() + " " + r.Year.String()
}

func (r AgoRef) String() string  { return r.Duration.String() + " ago" }
func (r TheUnit) String() string { return "the " + r.Unit.String() }

// MonthSpec designates a month: [CurrentMonth], [AbsoluteMonth],
// [RelativeMonth], or [RelativeCurrentMonth].
type MonthSpec interface {
	fmt.Stringer
	monthSpec()
}

// CurrentMonth is now's month: "the month".
type CurrentMonth struct{}

// AbsoluteMonth is a month name: "january".
type AbsoluteMonth struct {
	Month time.Month
}

// RelativeMonth is a month name with a direction: "last january".
type RelativeMonth struct {
	Specifier Specifier
	Month     time.Month
}

// RelativeCurrentMonth is now's month shifted by a direction:
// "next month" when followed by a year.
type RelativeCurrentMonth struct {
	Specifier Specifier
}

func (CurrentMonth) monthSpec()         {}
func (AbsoluteMonth) monthSpec()        {}
func (RelativeMonth) monthSpec()        {}
func (RelativeCurrentMonth) monthSpec() {}

func (CurrentMonth) String() string    { return "the month" }
func (m AbsoluteMonth) String() string { return monthName(m.Month) }

func (m RelativeMonth) String() string {
	return m.Specifier.String() + " " + monthName(m.Month)
}

func (m RelativeCurrentMonth) String() string { return m.Specifier.String() + " month" }

// YearSpec designates a year: [AbsoluteYear] or [RelativeYear].
type YearSpec interface {
	fmt.Stringer
	yearSpec()
}

// AbsoluteYear is a literal year.
type AbsoluteYear struct {
	Year int
}

// RelativeYear is now's year shifted by a direction: "next year".
type RelativeYear struct {
	Specifier Specifier
}

func (AbsoluteYear) yearSpec() {}
func (RelativeYear) yearSpec() {}

func (y AbsoluteYear) String() string { return strconv.Itoa(y.Year) }
func (y RelativeYear) String() string { return y.Specifier.String() + " year" }

func monthName(m time.Month) string     { return strings.ToLower(m.String()) }
func weekdayName(d time.Weekday) string { return strings.ToLower(d.String()) }

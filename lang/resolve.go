package lang

import (
	"context"
	"errors"
	"log/slog"

	"cloud.google.com/go/civil"

	"github.com/ardnew/humandate/log"
)

// resolver evaluates an expression tree against a reference instant. It
// holds no state beyond its inputs; ctx and logger only carry traces.
type resolver struct {
	ctx    context.Context
	now    civil.DateTime
	cfg    Config
	logger log.Logger
}

// resolve returns the value of e. Processing failures are collected into a
// [*ProcessingError]; an internal failure is returned alone.
func (r resolver) resolve(e Expr) (Value, error) {
	switch e := e.(type) {
	case *DateTimeExpr:
		// Both halves are resolved so that every failure is reported.
		d, derr := r.date(e.Date)
		t, terr := r.clock(e.Time)

		if err := processing(derr, terr); err != nil {
			return Value{}, err
		}

		return Value{Kind: KindDateTime, Date: d, Time: t}, nil

	case *DateExpr:
		d, err := r.date(e.Date)
		if err != nil {
			return Value{}, processing(err)
		}

		return DateValue(d), nil

	case *TimeExpr:
		t, err := r.clock(e.Time)
		if err != nil {
			return Value{}, processing(err)
		}

		return TimeValue(t), nil

	case *InExpr:
		dt, err := applyDuration(e.Duration, r.now, OpAdd)
		if err != nil {
			return Value{}, processing(err)
		}

		return DateTimeValue(dt), nil

	case *AgoExpr:
		dt, err := r.ago(e)
		if err != nil {
			return Value{}, processing(err)
		}

		return DateTimeValue(dt), nil

	case Now:
		return DateTimeValue(r.now), nil

	default:
		return Value{}, unexpected(e)
	}
}

// ago shifts its origin backward. A nested origin that resolves to a date
// takes now's time of day; one that resolves to a time takes now's date.
func (r resolver) ago(e *AgoExpr) (civil.DateTime, error) {
	from := r.now

	if e.From != nil {
		v, err := r.resolve(e.From)
		if err != nil {
			if errors.Is(err, ErrInternal) {
				return civil.DateTime{}, err
			}

			return civil.DateTime{}, &NestedError{Err: err}
		}

		switch v.Kind {
		case KindDate:
			from = civil.DateTime{Date: v.Date, Time: r.now.Time}
		case KindTime:
			from = civil.DateTime{Date: r.now.Date, Time: v.Time}
		default:
			from = v.DateTime()
		}
	}

	return applyDuration(e.Duration, from, OpSubtract)
}

func (r resolver) date(d Date) (civil.Date, error) {
	today := r.now.Date

	switch d := d.(type) {
	case RelativeDay:
		return relativeDay(d, today)

	case IsoDate:
		return literalDate(d.Year, d.Month, d.Day)

	case DayMonthYear:
		return literalDate(d.Year, int(d.Month), d.Day)

	case DayMonth:
		return literalDate(today.Year, int(d.Month), d.Day)

	case RelativeWeekWeekday:
		return findWeekdayInWeek(d.Specifier, d.Weekday, today)

	case RelativeWeekday:
		return findWeekday(d.Specifier, d.Weekday, today)

	case UpcomingWeekday:
		return findWeekday(Next, d.Weekday, today)

	case RelativeUnit:
		dt, err := relativeUnit(d.Specifier, d.Unit, r.now)
		if err != nil {
			return civil.Date{}, err
		}

		return dt.Date, nil

	case OrdinalUnitOf:
		return r.ordinalUnit(d)

	default:
		return civil.Date{}, unexpected(d)
	}
}

func (r resolver) clock(t Time) (civil.Time, error) {
	switch t := t.(type) {
	case HourMinute:
		c, ok := makeTime(t.Hour, t.Minute, 0)
		if !ok {
			return civil.Time{}, &TimeError{Hour: t.Hour, Minute: t.Minute}
		}

		return c, nil

	case HourMinuteSecond:
		c, ok := makeTime(t.Hour, t.Minute, t.Second)
		if !ok {
			return civil.Time{}, &TimeError{
				Hour:      t.Hour,
				Minute:    t.Minute,
				Second:    t.Second,
				HasSecond: true,
			}
		}

		return c, nil

	default:
		return civil.Time{}, unexpected(t)
	}
}

func literalDate(y, m, d int) (civil.Date, error) {
	date, ok := makeDate(y, m, d)
	if !ok {
		return civil.Date{}, &DateError{Year: y, Month: m, Day: d}
	}

	return date, nil
}

// processing collects the non-nil errors. It returns nil if there are none
// and the internal error if any is internal.
func processing(errs ...error) error {
	var list []error

	for _, err := range errs {
		switch {
		case err == nil:
			continue
		case errors.Is(err, ErrInternal):
			return err
		default:
			list = append(list, err)
		}
	}

	if len(list) == 0 {
		return nil
	}

	return &ProcessingError{Errors: list}
}

func unexpected(v any) error {
	return ErrInternal.Wrap(ErrUnexpectedNode.With(slog.Any("node", v)))
}

package lang

import (
	"time"

	"cloud.google.com/go/civil"
)

// findWeekday returns the date of weekday w relative to from.
//
//   - [Next] is the nearest w strictly after from, 1 to 7 days ahead.
//   - [Last] is the nearest w strictly before from, 1 to 7 days back.
//   - [This] is from itself if it falls on w, otherwise the same as [Next].
func findWeekday(s Specifier, w time.Weekday, from civil.Date) (civil.Date, error) {
	c, t := mondayIndex(weekdayOf(from)), mondayIndex(w)

	switch s {
	case This, Next:
		if s == This && c == t {
			return from, nil
		}

		offset := 7 - c + t
		if t > c {
			offset = t - c
		}

		return shiftDays(from, offset)

	case Last:
		offset := 7 + c - t
		if t < c {
			offset = c - t
		}

		return shiftDays(from, -offset)

	default:
		return civil.Date{}, ErrInternal.Wrap(ErrUnexpectedNode)
	}
}

// findWeekdayInWeek returns weekday w of the week selected by s: the week
// containing from, the one after, or the one before. Weeks here always start
// on Monday, independent of [Config.WeekStart].
func findWeekdayInWeek(s Specifier, w time.Weekday, from civil.Date) (civil.Date, error) {
	offset := -mondayIndex(weekdayOf(from))

	switch s {
	case Next:
		offset += 7
	case Last:
		offset -= 7
	}

	monday, err := shiftDays(from, offset)
	if err != nil {
		return civil.Date{}, err
	}

	return findWeekday(This, w, monday)
}

// shiftDays moves the reference date d by n days, reporting failure relative
// to the current time.
func shiftDays(d civil.Date, n int) (civil.Date, error) {
	r, ok := addDays(d, n)
	if ok {
		return r, nil
	}

	if n < 0 {
		return civil.Date{}, &ArithmeticError{Op: OpSubtract, Unit: UnitDay.Plural(), Count: -n}
	}

	return civil.Date{}, &ArithmeticError{Op: OpAdd, Unit: UnitDay.Plural(), Count: n}
}

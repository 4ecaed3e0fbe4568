package lang

import (
	"log/slog"

	"cloud.google.com/go/civil"
)

// ordinalStrategy computes the selected date within an anchor.
type ordinalStrategy func(o Ordinal, anchor civil.Date, cfg Config) (civil.Date, error)

// ordinalUnit resolves "<ordinal> <unit> of <reference>". The anchor is
// resolved first; its failure is reported as a [*NestedError].
func (r resolver) ordinalUnit(e OrdinalUnitOf) (civil.Date, error) {
	anchor, err := resolveReference(e.Reference, r.now)
	if err != nil {
		return civil.Date{}, &NestedError{Err: err}
	}

	choose, name := selectStrategy(e.Unit, e.Reference)

	r.logger.TraceContext(r.ctx, "ordinal strategy",
		slog.String("expr", e.String()),
		slog.String("anchor", anchor.Date.String()),
		slog.String("strategy", name))

	return choose(e.Ordinal, anchor.Date, r.cfg)
}

// selectStrategy picks how an ordinal counts within its anchor and names the
// choice. The first matching rule wins:
//
//  1. day of a year reference counts days of the year;
//  2. day of "last week" counts days of the week;
//  3. week of a month reference counts weeks of the month;
//  4. otherwise the unit alone decides.
func selectStrategy(u Unit, ref Reference) (ordinalStrategy, string) {
	switch r := ref.(type) {
	case RelativeUnit:
		switch {
		case u == UnitDay && r.Unit == UnitYear:
			return ordinalDayOfYear, "day of year"
		case u == UnitDay && r.Specifier == Last && r.Unit == UnitWeek:
			return ordinalDayOfWeek, "day of week"
		case u == UnitWeek && r.Unit == UnitMonth:
			return ordinalWeekOfMonth, "week of month"
		}

	case TheUnit:
		if u == UnitDay && r.Unit == UnitYear {
			return ordinalDayOfYear, "day of year"
		}

	case MonthYear:
		if u == UnitWeek {
			return ordinalWeekOfMonth, "week of month"
		}
	}

	switch u {
	case UnitDay:
		return ordinalDayOfMonth, "day of month"
	case UnitWeek:
		return ordinalDayOfWeek, "day of week"
	case UnitMonth:
		return ordinalMonthOfYear, "month of year"
	case UnitYear:
		return ordinalDayOfYear, "day of year"
	default:
		return ordinalSubDay, "sub-day"
	}
}

// ordinalDayOfMonth selects a day within the anchor's month.
func ordinalDayOfMonth(o Ordinal, anchor civil.Date, _ Config) (civil.Date, error) {
	var day int

	switch o.Kind {
	case OrdinalFirst:
		day = 1
	case OrdinalLast:
		day = lastDayOfMonth(anchor).Day
	default:
		day = o.N
	}

	d, ok := makeDate(anchor.Year, int(anchor.Month), day)
	if !ok {
		return civil.Date{}, &DateError{Year: anchor.Year, Month: int(anchor.Month), Day: day}
	}

	return d, nil
}

// ordinalDayOfWeek selects a day within the anchor's week, which starts on
// [Config.WeekStart].
func ordinalDayOfWeek(o Ordinal, anchor civil.Date, cfg Config) (civil.Date, error) {
	back := sundayIndex(weekdayOf(anchor))
	if cfg.WeekStart == Monday {
		back = mondayIndex(weekdayOf(anchor))
	}

	start, err := shiftDays(anchor, -back)
	if err != nil {
		return civil.Date{}, err
	}

	var offset int

	switch o.Kind {
	case OrdinalFirst:
		return start, nil
	case OrdinalLast:
		offset = 6
	default:
		if o.N < 1 || o.N > 7 {
			return civil.Date{}, &DateError{Year: anchor.Year, Month: int(anchor.Month), Day: o.N}
		}

		offset = o.N - 1
	}

	d, ok := addDays(start, offset)
	if !ok {
		return civil.Date{}, &ArithmeticError{
			Op:    OpAdd,
			Unit:  UnitDay.Plural(),
			Count: offset,
			Date:  ptr(midnight(start)),
		}
	}

	return d, nil
}

// ordinalMonthOfYear selects day 1 of a month within the anchor's year.
func ordinalMonthOfYear(o Ordinal, anchor civil.Date, _ Config) (civil.Date, error) {
	var month int

	switch o.Kind {
	case OrdinalFirst:
		month = 1
	case OrdinalLast:
		month = 12
	default:
		month = o.N
	}

	d, ok := makeDate(anchor.Year, month, 1)
	if !ok {
		return civil.Date{}, &DateError{Year: anchor.Year, Month: month, Day: 1}
	}

	return d, nil
}

// ordinalDayOfYear selects a day within the anchor's year. An N-th day
// outside that year is an invalid date.
func ordinalDayOfYear(o Ordinal, anchor civil.Date, _ Config) (civil.Date, error) {
	y := anchor.Year

	switch o.Kind {
	case OrdinalFirst:
		return civil.Date{Year: y, Month: 1, Day: 1}, nil
	case OrdinalLast:
		return civil.Date{Year: y, Month: 12, Day: 31}, nil
	}

	jan1 := civil.Date{Year: y, Month: 1, Day: 1}

	d, ok := addDays(jan1, o.N-1)
	if !ok {
		return civil.Date{}, &ArithmeticError{
			Op:    OpAdd,
			Unit:  UnitDay.Plural(),
			Count: o.N,
			Date:  ptr(midnight(jan1)),
		}
	}

	if d.Year != y {
		return civil.Date{}, &DateError{Year: y, Month: 1, Day: o.N}
	}

	return d, nil
}

// ordinalWeekOfMonth selects the first day of a 7-day block counted from
// day 1 of the anchor's month. The last block is the one holding the month's
// last day.
func ordinalWeekOfMonth(o Ordinal, anchor civil.Date, _ Config) (civil.Date, error) {
	var week int

	switch o.Kind {
	case OrdinalFirst:
		week = 1
	case OrdinalLast:
		week = (lastDayOfMonth(anchor).Day-1)/7 + 1
	default:
		week = o.N
	}

	first := civil.Date{Year: anchor.Year, Month: anchor.Month, Day: 1}

	d, ok := addDays(first, (week-1)*7)
	if !ok {
		return civil.Date{}, &ArithmeticError{
			Op:    OpAdd,
			Unit:  UnitWeek.Plural(),
			Count: week - 1,
			Date:  ptr(midnight(first)),
		}
	}

	if d.Month != anchor.Month || d.Year != anchor.Year {
		return civil.Date{}, &DateError{Year: anchor.Year, Month: int(anchor.Month), Day: d.Day}
	}

	return d, nil
}

// ordinalSubDay ignores the ordinal and unit and yields the anchor's date.
// Hours, minutes, and seconds of a date have no date to select.
func ordinalSubDay(_ Ordinal, anchor civil.Date, _ Config) (civil.Date, error) {
	return anchor, nil
}

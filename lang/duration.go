package lang

import (
	"time"

	"cloud.google.com/go/civil"
)

// secondsPer holds the length of each sub-day unit.
var secondsPer = map[Unit]int64{
	UnitHour:   3600,
	UnitMinute: 60,
	UnitSecond: 1,
}

// applyDuration shifts dt by each quantifier of d in order, forward for
// [OpAdd] and backward for [OpSubtract]. It stops at the first quantifier
// whose result is not representable.
//
// Years replace the year field, so February 29 fails in a common year.
// Months move the calendar month and clamp the day to the new month's
// length. Weeks, days, and sub-day units are exact.
func applyDuration(d Duration, dt civil.DateTime, op Op) (civil.DateTime, error) {
	sign := 1
	if op == OpSubtract {
		sign = -1
	}

	for _, q := range d {
		var err error

		switch q.Unit {
		case UnitYear:
			dt, err = shiftYears(dt, sign*q.Count)

		case UnitMonth:
			dt, err = shiftMonths(dt, sign*q.Count)

		case UnitWeek, UnitDay:
			days := q.Count
			if q.Unit == UnitWeek {
				days *= 7
			}

			date, ok := addDays(dt.Date, sign*days)
			if !ok {
				err = arithmeticError(op, q, dt)
			}

			dt.Date = date

		default:
			dt, err = shiftClock(dt, q, op)
		}

		if err != nil {
			return civil.DateTime{}, err
		}
	}

	return dt, nil
}

func arithmeticError(op Op, q Quantifier, dt civil.DateTime) *ArithmeticError {
	return &ArithmeticError{Op: op, Unit: q.Unit.Plural(), Count: q.Count, Date: &dt}
}

func shiftYears(dt civil.DateTime, n int) (civil.DateTime, error) {
	y := dt.Date.Year + n

	date, ok := makeDate(y, int(dt.Date.Month), dt.Date.Day)
	if !ok {
		return civil.DateTime{}, &DateError{Year: y, Month: int(dt.Date.Month), Day: dt.Date.Day}
	}

	dt.Date = date

	return dt, nil
}

func shiftMonths(dt civil.DateTime, n int) (civil.DateTime, error) {
	total := dt.Date.Year*12 + int(dt.Date.Month) - 1 + n

	// Floor division keeps negative years aligned to January.
	y, m := total/12, total%12
	if m < 0 {
		y, m = y-1, m+12
	}

	if !inRange(y) {
		op, count := OpAdd, n
		if n < 0 {
			op, count = OpSubtract, -n
		}

		return civil.DateTime{}, &ArithmeticError{Op: op, Unit: UnitMonth.Plural(), Count: count, Date: &dt}
	}

	month := time.Month(m + 1)
	dt.Date = civil.Date{Year: y, Month: month, Day: min(dt.Date.Day, daysIn(y, month))}

	return dt, nil
}

// shiftClock moves dt by a sub-day quantifier. Whole days are moved on the
// calendar and only the remainder on the clock, so no count overflows
// time.Duration.
func shiftClock(dt civil.DateTime, q Quantifier, op Op) (civil.DateTime, error) {
	secs := int64(q.Count) * secondsPer[q.Unit]
	if op == OpSubtract {
		secs = -secs
	}

	days, rem := secs/86400, secs%86400

	date, ok := addDays(dt.Date, int(days))
	if !ok {
		return civil.DateTime{}, arithmeticError(op, q, dt)
	}

	t := civil.DateTime{Date: date, Time: dt.Time}.In(time.UTC).Add(time.Duration(rem) * time.Second)

	r := civil.DateTimeOf(t)
	if !inRange(r.Date.Year) {
		return civil.DateTime{}, arithmeticError(op, q, dt)
	}

	return r, nil
}

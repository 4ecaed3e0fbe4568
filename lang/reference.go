package lang

import (
	"time"

	"cloud.google.com/go/civil"
)

// resolveReference returns the anchor instant of r.
func resolveReference(r Reference, now civil.DateTime) (civil.DateTime, error) {
	switch r := r.(type) {
	case MonthYear:
		return resolveMonthYear(r, now)

	case AgoRef:
		return applyDuration(r.Duration, now, OpSubtract)

	case RelativeUnit:
		return relativeUnit(r.Specifier, r.Unit, now)

	case TheUnit, Now:
		return now, nil

	case RelativeDay:
		d, err := relativeDay(r, now.Date)
		if err != nil {
			return civil.DateTime{}, err
		}

		return civil.DateTime{Date: d, Time: now.Time}, nil

	default:
		return civil.DateTime{}, ErrInternal.Wrap(ErrUnexpectedNode)
	}
}

// resolveMonthYear returns midnight on day 1 of the designated month.
//
// A relative month name is taken within the designated year, except that
// "last <month>" means the most recent such month strictly before now's
// month and "next <month>" is always a year ahead.
func resolveMonthYear(r MonthYear, now civil.DateTime) (civil.DateTime, error) {
	year := now.Date.Year

	switch y := r.Year.(type) {
	case nil:
	case AbsoluteYear:
		year = y.Year
	case RelativeYear:
		year += specifierStep(y.Specifier)
	}

	var month time.Month

	switch m := r.Month.(type) {
	case CurrentMonth:
		month = now.Date.Month

	case AbsoluteMonth:
		month = m.Month

	case RelativeCurrentMonth:
		month = now.Date.Month + time.Month(specifierStep(m.Specifier))

		switch month {
		case 13:
			month, year = time.January, year+1
		case 0:
			month, year = time.December, year-1
		}

	case RelativeMonth:
		month = m.Month

		switch m.Specifier {
		case Next:
			year++
		case Last:
			if now.Date.Month <= month {
				year--
			}
		}

	default:
		return civil.DateTime{}, ErrInternal.Wrap(ErrUnexpectedNode)
	}

	d, ok := makeDate(year, int(month), 1)
	if !ok {
		return civil.DateTime{}, &DateError{Year: year, Month: int(month), Day: 1}
	}

	return midnight(d), nil
}

// relativeUnit shifts now by one date unit: not at all for [This], forward
// for [Next], backward for [Last].
func relativeUnit(s Specifier, u Unit, now civil.DateTime) (civil.DateTime, error) {
	q := Duration{{Count: 1, Unit: u}}

	switch s {
	case Next:
		return applyDuration(q, now, OpAdd)
	case Last:
		return applyDuration(q, now, OpSubtract)
	default:
		return now, nil
	}
}

// relativeDay resolves a day keyword against today.
func relativeDay(r RelativeDay, today civil.Date) (civil.Date, error) {
	switch r {
	case Today:
		return today, nil
	case Tomorrow:
		return shiftDays(today, 1)
	case Overmorrow:
		return shiftDays(today, 2)
	case Yesterday:
		return shiftDays(today, -1)
	default:
		return civil.Date{}, ErrInternal.Wrap(ErrUnexpectedNode)
	}
}

func specifierStep(s Specifier) int {
	switch s {
	case Next:
		return 1
	case Last:
		return -1
	default:
		return 0
	}
}

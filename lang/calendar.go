package lang

import (
	"time"

	"cloud.google.com/go/civil"
)

// Representable years. Results outside this range are arithmetic failures.
const (
	MinYear = -262144
	MaxYear = 262143
)

func inRange(year int) bool { return year >= MinYear && year <= MaxYear }

// daysIn returns the number of days in month m of year y.
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// makeDate returns the date y-m-d if it exists in the representable range.
func makeDate(y, m, d int) (civil.Date, bool) {
	if !inRange(y) || m < 1 || m > 12 || d < 1 || d > daysIn(y, time.Month(m)) {
		return civil.Date{}, false
	}

	return civil.Date{Year: y, Month: time.Month(m), Day: d}, true
}

// makeTime returns the clock time h:m:s if every field is in range.
func makeTime(h, m, s int) (civil.Time, bool) {
	t := civil.Time{Hour: h, Minute: m, Second: s}

	return t, t.IsValid()
}

// addDays shifts d by n days.
func addDays(d civil.Date, n int) (civil.Date, bool) {
	// Bound n before handing it to the time package so that the year cannot
	// wrap around.
	const maxSpan = (MaxYear - MinYear + 1) * 366
	if n > maxSpan || n < -maxSpan {
		return civil.Date{}, false
	}

	r := d.AddDays(n)

	return r, inRange(r.Year)
}

// lastDayOfMonth returns the last date of d's month.
func lastDayOfMonth(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: daysIn(d.Year, d.Month)}
}

// mondayIndex returns the number of days from Monday to w.
func mondayIndex(w time.Weekday) int { return (int(w) + 6) % 7 }

// sundayIndex returns the number of days from Sunday to w.
func sundayIndex(w time.Weekday) int { return int(w) }

func weekdayOf(d civil.Date) time.Weekday { return d.In(time.UTC).Weekday() }

// midnight returns the start of day d.
func midnight(d civil.Date) civil.DateTime { return civil.DateTime{Date: d} }

func ptr[T any](v T) *T { return &v }

package lang

import (
	"strconv"
	"time"

	"cloud.google.com/go/civil"
)

// Kind identifies which fields of a [Value] are meaningful.
type Kind int

const (
	KindDateTime Kind = iota // Date and Time
	KindDate                 // Date only
	KindTime                 // Time only
)

func (k Kind) String() string {
	switch k {
	case KindDateTime:
		return "datetime"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a resolved expression: a date-time, a date, or a clock time.
// Values carry no time zone.
type Value struct {
	Kind Kind
	Date civil.Date
	Time civil.Time
}

// DateTimeValue returns a [KindDateTime] value.
func DateTimeValue(dt civil.DateTime) Value {
	return Value{Kind: KindDateTime, Date: dt.Date, Time: dt.Time}
}

// DateValue returns a [KindDate] value.
func DateValue(d civil.Date) Value { return Value{Kind: KindDate, Date: d} }

// TimeValue returns a [KindTime] value.
func TimeValue(t civil.Time) Value { return Value{Kind: KindTime, Time: t} }

// DateTime returns the date and time of v. A date has time 00:00:00 and a
// time has the zero date.
func (v Value) DateTime() civil.DateTime {
	return civil.DateTime{Date: v.Date, Time: v.Time}
}

// In returns the instant v denotes in loc. A time-only value is placed on
// the date of the instant now in loc.
func (v Value) In(loc *time.Location, now time.Time) time.Time {
	if v.Kind == KindTime {
		return civil.DateTime{Date: civil.DateOf(now.In(loc)), Time: v.Time}.In(loc)
	}

	return v.DateTime().In(loc)
}

// String formats v as "YYYY-MM-DD", "HH:MM:SS", or "YYYY-MM-DD HH:MM:SS".
func (v Value) String() string {
	switch v.Kind {
	case KindDate:
		return v.Date.String()
	case KindTime:
		return v.Time.String()
	default:
		return v.Date.String() + " " + v.Time.String()
	}
}

// MarshalText implements encoding.TextMarshaler using [Value.String].
func (v Value) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler for the formats of
// [Value.String]. A "T" separator is also accepted between date and time.
func (v *Value) UnmarshalText(text []byte) error {
	s := string(text)

	if dt, err := civil.ParseDateTime(s); err == nil {
		*v = DateTimeValue(dt)

		return nil
	}

	if len(s) > 10 && s[10] == ' ' {
		if dt, err := civil.ParseDateTime(s[:10] + "T" + s[11:]); err == nil {
			*v = DateTimeValue(dt)

			return nil
		}
	}

	if d, err := civil.ParseDate(s); err == nil {
		*v = DateValue(d)

		return nil
	}

	t, err := civil.ParseTime(s)
	if err != nil {
		return ErrInvalidValue.Wrap(err)
	}

	*v = TimeValue(t)

	return nil
}

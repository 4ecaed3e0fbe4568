package lang

import (
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/civil"
)

func TestValue_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Value
	}{
		{
			"2024-01-15 12:30:00",
			DateTimeValue(mustDateTime("2024-01-15T12:30:00")),
		},
		{
			"2024-01-15T12:30:00",
			DateTimeValue(mustDateTime("2024-01-15T12:30:00")),
		},
		{"2024-01-15", DateValue(civil.Date{Year: 2024, Month: 1, Day: 15})},
		{"07:05:09", TimeValue(civil.Time{Hour: 7, Minute: 5, Second: 9})},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var got Value
			if err := got.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatalf("UnmarshalText(%q) error: %v", tt.text, err)
			}

			if got != tt.want {
				t.Errorf("UnmarshalText(%q) = %#v, want %#v", tt.text, got, tt.want)
			}

			text, err := got.MarshalText()
			if err != nil {
				t.Fatal(err)
			}

			var again Value
			if err := again.UnmarshalText(text); err != nil || again != got {
				t.Errorf("round trip of %q = %#v, %v", text, again, err)
			}
		})
	}

	for _, bad := range []string{"", "tomorrow", "2024-13-01", "25:00:00", "2024-01-15 25:00:00"} {
		var v Value
		if err := v.UnmarshalText([]byte(bad)); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("UnmarshalText(%q) error = %v, want ErrInvalidValue", bad, err)
		}
	}
}

func TestValue_In(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2024, 1, 15, 2, 0, 0, 0, time.UTC) // 2024-01-14 21:00 in loc

	tests := []struct {
		name string
		v    Value
		want time.Time
	}{
		{
			"datetime",
			DateTimeValue(mustDateTime("2024-03-01T08:00:00")),
			time.Date(2024, 3, 1, 8, 0, 0, 0, loc),
		},
		{
			"date is midnight",
			DateValue(civil.Date{Year: 2024, Month: 3, Day: 1}),
			time.Date(2024, 3, 1, 0, 0, 0, 0, loc),
		},
		{
			"time takes local date of now",
			TimeValue(civil.Time{Hour: 9}),
			time.Date(2024, 1, 14, 9, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		if got := tt.v.In(loc, now); !got.Equal(tt.want) {
			t.Errorf("%s: In() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	for k, want := range map[Kind]string{
		KindDateTime: "datetime",
		KindDate:     "date",
		KindTime:     "time",
		Kind(9):      "Kind(9)",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

package lang

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"cloud.google.com/go/civil"

	"github.com/ardnew/humandate/log"
)

// mustDateTime parses "YYYY-MM-DDTHH:MM:SS".
func mustDateTime(s string) civil.DateTime {
	dt, err := civil.ParseDateTime(s)
	if err != nil {
		panic(err)
	}

	return dt
}

// monday is Monday 2024-01-15 at noon.
var monday = mustDateTime("2024-01-15T12:00:00")

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		kind  Kind
		want  string
	}{
		{"now", "now", KindDateTime, "2024-01-15 12:00:00"},
		{"today", "today", KindDate, "2024-01-15"},
		{"tomorrow", "tomorrow", KindDate, "2024-01-16"},
		{"yesterday", "yesterday", KindDate, "2024-01-14"},
		{"overmorrow", "overmorrow", KindDate, "2024-01-17"},
		{"day after tomorrow", "the day after tomorrow", KindDate, "2024-01-17"},
		{"case and space", "  Next FRIDAY ", KindDate, "2024-01-19"},

		{"next friday", "next friday", KindDate, "2024-01-19"},
		{"last friday", "last friday", KindDate, "2024-01-12"},
		{"this monday", "this monday", KindDate, "2024-01-15"},
		{"this friday", "this friday", KindDate, "2024-01-19"},
		{"bare friday", "friday", KindDate, "2024-01-19"},
		{"bare monday skips today", "monday", KindDate, "2024-01-22"},
		{"last monday", "last monday", KindDate, "2024-01-08"},
		{"abbreviated weekday", "next thurs", KindDate, "2024-01-18"},

		{"next week", "next week", KindDate, "2024-01-22"},
		{"this week", "this week", KindDate, "2024-01-15"},
		{"last month", "last month", KindDate, "2023-12-15"},
		{"next year", "next year", KindDate, "2025-01-15"},
		{"last day", "last day", KindDate, "2024-01-14"},

		{"next week's friday", "next week's friday", KindDate, "2024-01-26"},
		{"last week friday", "last week friday", KindDate, "2024-01-12"},
		{"this week on sunday", "this week on sunday", KindDate, "2024-01-21"},
		{"this week's monday", "this week's monday", KindDate, "2024-01-15"},

		{"day month year", "15 march 2025", KindDate, "2025-03-15"},
		{"month day comma year", "march 15, 2025", KindDate, "2025-03-15"},
		{"day month", "15 march", KindDate, "2024-03-15"},
		{"month day", "mar 15", KindDate, "2024-03-15"},
		{"iso date", "2024-02-29", KindDate, "2024-02-29"},
		{"iso date short fields", "2024-2-9", KindDate, "2024-02-09"},

		{"hour minute", "17:30", KindTime, "17:30:00"},
		{"hour minute second", "17:30:15", KindTime, "17:30:15"},
		{"single digit hour", "9:05", KindTime, "09:05:00"},

		{"date at time", "tomorrow at 10:00", KindDateTime, "2024-01-16 10:00:00"},
		{"date comma time", "friday, 10:00", KindDateTime, "2024-01-19 10:00:00"},
		{"time on date", "10:00 on friday", KindDateTime, "2024-01-19 10:00:00"},
		{"iso date time", "2024-03-01 08:15:30", KindDateTime, "2024-03-01 08:15:30"},

		{"in days", "in 3 days", KindDateTime, "2024-01-18 12:00:00"},
		{"in compound", "in 2 hours and 30 minutes", KindDateTime, "2024-01-15 14:30:00"},
		{"in a week", "in a week", KindDateTime, "2024-01-22 12:00:00"},
		{"in an hour", "in an hour", KindDateTime, "2024-01-15 13:00:00"},
		{"in bare unit", "in month", KindDateTime, "2024-02-15 12:00:00"},
		{"in hours past midnight", "in 25 hours", KindDateTime, "2024-01-16 13:00:00"},
		{"in seconds", "in 1 second", KindDateTime, "2024-01-15 12:00:01"},
		{"in largest count", "in 4294967295 seconds", KindDateTime, "2160-02-21 18:28:15"},

		{"days ago", "2 days ago", KindDateTime, "2024-01-13 12:00:00"},
		{"weeks ago", "3 weeks ago", KindDateTime, "2023-12-25 12:00:00"},
		{"minutes ago", "90 minutes ago", KindDateTime, "2024-01-15 10:30:00"},
		{"largest count ago", "4294967295 seconds ago", KindDateTime, "1887-12-09 05:31:45"},
		{"count past 31 bits", "3000000000 seconds ago", KindDateTime, "1928-12-22 06:40:00"},
		{"compound ago", "1 year, 2 months ago", KindDateTime, "2022-11-15 12:00:00"},
		{"abbreviated units", "2 wks 3 hrs ago", KindDateTime, "2024-01-01 09:00:00"},
		{"bare unit ago", "week ago", KindDateTime, "2024-01-08 12:00:00"},

		{"before date", "2 days before next friday", KindDateTime, "2024-01-17 12:00:00"},
		{"ago from date", "2 days ago from tomorrow", KindDateTime, "2024-01-14 12:00:00"},
		{"before time", "1 hour before 10:00", KindDateTime, "2024-01-15 09:00:00"},
		{"before date time", "2 days before tomorrow at 10:00", KindDateTime, "2024-01-14 10:00:00"},
		{"before nested ago", "1 day before 2 days ago", KindDateTime, "2024-01-12 12:00:00"},
		{"before now", "1 minute before now", KindDateTime, "2024-01-15 11:59:00"},

		{"first day of next month", "first day of next month", KindDate, "2024-02-01"},
		{"last day of last month", "last day of last month", KindDate, "2023-12-31"},
		{"last day of leap february", "last day of february 2024", KindDate, "2024-02-29"},
		{"last day of february", "last day of february 2023", KindDate, "2023-02-28"},
		{"first day of last week", "1st day of last week", KindDate, "2024-01-07"},
		{"last day of last week", "last day of last week", KindDate, "2024-01-13"},
		{"nth day of the year", "10th day of the year", KindDate, "2024-01-10"},
		{"nth day of next year", "100th day of next year", KindDate, "2025-04-10"},
		{"last day of leap year", "366th day of the year", KindDate, "2024-12-31"},
		{"last day of the year", "the last day of the year", KindDate, "2024-12-31"},
		{"second week of next month", "second week of next month", KindDate, "2024-02-08"},
		{"last week of leap february", "last week of february 2024", KindDate, "2024-02-29"},
		{"third week of march", "3rd week of march 2024", KindDate, "2024-03-15"},
		{"first month of next year", "first month of next year", KindDate, "2025-01-01"},
		{"last month of the year", "last month of the year", KindDate, "2024-12-01"},
		{"day of ago reference", "last day of 3 days ago", KindDate, "2024-01-31"},
		{"compound ordinal word", "twenty-first day of march", KindDate, "2024-03-21"},
		{"last march", "the 3rd day of last march", KindDate, "2023-03-03"},
		{"next march", "first day of next march", KindDate, "2025-03-01"},
		{"this march", "first day of this march", KindDate, "2024-03-01"},
		{"month of year", "first day of next month of next year", KindDate, "2025-02-01"},
		{"the month", "first day of the month", KindDate, "2024-01-01"},
		{"month of absolute year", "15th day of june 1999", KindDate, "1999-06-15"},
		{"month of this year", "first day of march this year", KindDate, "2024-03-01"},
		{"ordinal of tomorrow", "last day of tomorrow", KindDate, "2024-01-31"},
		{"ordinal of now", "1st day of now", KindDate, "2024-01-01"},
		{"ordinal date at time", "first day of next month at 09:00", KindDateTime, "2024-02-01 09:00:00"},

		// Counts days of the month: only "last week" selects days of a week.
		{"first day of next week", "first day of next week", KindDate, "2024-01-01"},
		{"first day of this week", "first day of this week", KindDate, "2024-01-01"},
		{"first day of the week", "first day of the week", KindDate, "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input, monday)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}

			if got.Kind != tt.kind {
				t.Errorf("Parse(%q) kind = %v, want %v", tt.input, got.Kind, tt.kind)
			}

			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

// Sub-day ordinals select nothing: the ordinal and unit are dropped and the
// anchor's date is returned. This test pins that behavior so a change to it
// is deliberate.
func TestParse_SubDayOrdinalIgnored(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"first hour of tomorrow",
		"last minute of tomorrow",
		"30th second of tomorrow",
	} {
		got, err := Parse(input, monday)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}

		if want := "2024-01-16"; got.String() != want {
			t.Errorf("Parse(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestParseWithConfig_WeekStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		sunday string
		monday string
	}{
		{"1st day of last week", "2024-01-07", "2024-01-08"},
		{"last day of last week", "2024-01-13", "2024-01-14"},
		{"3rd day of last week", "2024-01-09", "2024-01-10"},
		{"first week of next year", "2025-01-12", "2025-01-13"},
		// Weekday lookups always use Monday-based weeks.
		{"next week's monday", "2024-01-22", "2024-01-22"},
		{"last week's sunday", "2024-01-14", "2024-01-14"},
		{"next monday", "2024-01-22", "2024-01-22"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			for ws, want := range map[WeekStart]string{Sunday: tt.sunday, Monday: tt.monday} {
				cfg := DefaultConfig()
				cfg.WeekStart = ws

				got, err := ParseWithConfig(tt.input, monday, cfg)
				if err != nil {
					t.Fatalf("%s: error: %v", ws, err)
				}

				if got.String() != want {
					t.Errorf("%s: got %s, want %s", ws, got, want)
				}
			}
		})
	}
}

func TestParse_FridayEdges(t *testing.T) {
	t.Parallel()

	friday := mustDateTime("2024-01-19T08:00:00")

	tests := map[string]string{
		"next friday":        "2024-01-26",
		"last friday":        "2024-01-12",
		"this friday":        "2024-01-19",
		"friday":             "2024-01-26",
		"this sunday":        "2024-01-21",
		"last sunday":        "2024-01-14",
		"next week":          "2024-01-26",
		"next week's friday": "2024-01-26",
		"last week's friday": "2024-01-12",
		"this week's friday": "2024-01-19",
	}

	for input, want := range tests {
		got, err := Parse(input, friday)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}

		if got.String() != want {
			t.Errorf("Parse(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestParse_CalendarBoundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		now   string
		input string
		want  string
	}{
		{"2024-01-31T12:00:00", "in 1 month", "2024-02-29 12:00:00"},
		{"2023-01-31T12:00:00", "in 1 month", "2023-02-28 12:00:00"},
		{"2024-03-31T12:00:00", "1 month ago", "2024-02-29 12:00:00"},
		{"2024-12-31T12:00:00", "next month", "2025-01-31"},
		{"2024-12-31T12:00:00", "first day of next month", "2025-01-01"},
		{"2024-12-15T12:00:00", "first day of next month of this year", "2025-01-01"},
		{"2024-01-15T12:00:00", "first day of last month of this year", "2023-12-01"},
		{"2024-12-31T23:30:00", "in 45 minutes", "2025-01-01 00:15:00"},
		{"2024-03-01T00:00:00", "1 second ago", "2024-02-29 23:59:59"},
		{"2024-02-29T12:00:00", "in 4 years", "2028-02-29 12:00:00"},
		{"2024-05-10T12:00:00", "last day of last march", "2024-03-31"},
		{"2024-03-10T12:00:00", "last day of last march", "2023-03-31"},
	}

	for _, tt := range tests {
		t.Run(tt.now+" "+tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tt.input, mustDateTime(tt.now))
			if err != nil {
				t.Fatalf("error: %v", err)
			}

			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParse_ISORoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"2024-01-15", "1999-12-31", "2000-02-29", "0001-01-01"} {
		got, err := Parse(s, monday)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}

		if got.Kind != KindDate || got.String() != s {
			t.Errorf("Parse(%q) = %v %s", s, got.Kind, got)
		}
	}
}

func TestParse_ProcessingErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []error
	}{
		{"invalid iso date", "2023-02-30", []error{&DateError{2023, 2, 30}}},
		{"invalid day month", "february 29 2023", []error{&DateError{2023, 2, 29}}},
		{"invalid day month no year", "31 april", []error{&DateError{2024, 4, 31}}},
		{"invalid hour", "25:00", []error{&TimeError{Hour: 25}}},
		{"invalid minute", "23:60:00", []error{&TimeError{Hour: 23, Minute: 60, HasSecond: true}}},
		{"both halves", "2023-02-30 at 25:00", []error{
			&DateError{2023, 2, 30},
			&TimeError{Hour: 25},
		}},
		{"date half only", "2023-02-30 at 10:00", []error{&DateError{2023, 2, 30}}},
		{"time half only", "tomorrow at 24:00", []error{&TimeError{Hour: 24}}},
		{"day past month end", "32nd day of january", []error{&DateError{2024, 1, 32}}},
		{"day past week end", "8th day of last week", []error{&DateError{2024, 1, 8}}},
		{"week past month end", "sixth week of february 2024", []error{&DateError{2024, 2, 7}}},
		{"month past year end", "13th month of the year", []error{&DateError{2024, 13, 1}}},
		{"year too large", "in 300000 years", []error{&DateError{302024, 1, 15}}},
		{"day past year end", "400th day of the year", []error{&DateError{2024, 1, 400}}},
		{"day past common year end", "366th day of next year", []error{&DateError{2025, 1, 366}}},
		{"zeroth day of month", "0th day of march", []error{&DateError{2024, 3, 0}}},
		{"zeroth day of year", "0th day of the year", []error{&DateError{2024, 1, 0}}},
		{"zeroth month", "0th month of the year", []error{&DateError{2024, 0, 1}}},
		{"zeroth day of week", "0th day of last week", []error{&DateError{2024, 1, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input, monday)
			if !errors.Is(err, ErrProcessing) {
				t.Fatalf("Parse(%q) error = %v, want processing error", tt.input, err)
			}

			var pe *ProcessingError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not a *ProcessingError", err)
			}

			if len(pe.Errors) != len(tt.want) {
				t.Fatalf("got %d errors %v, want %d", len(pe.Errors), pe.Errors, len(tt.want))
			}

			for i, want := range tt.want {
				if got := pe.Errors[i].Error(); got != want.Error() {
					t.Errorf("error %d = %q, want %q", i, got, want.Error())
				}
			}
		})
	}
}

func TestParse_LeapDayYears(t *testing.T) {
	t.Parallel()

	leap := mustDateTime("2024-02-29T12:00:00")

	_, err := Parse("1 year ago", leap)

	var de *DateError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DateError", err)
	}

	if *de != (DateError{2023, 2, 29}) {
		t.Errorf("got %+v", *de)
	}
}

func TestParse_NestedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"invalid origin", "1 day before 2023-02-30"},
		{"invalid origin time", "1 hour before 25:00"},
		{"invalid ordinal anchor", "first day of 300000 years ago"},
		{"invalid ordinal month", "first day of february 300000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input, monday)
			if !errors.Is(err, ErrProcessing) {
				t.Fatalf("error = %v, want processing error", err)
			}

			var ne *NestedError
			if !errors.As(err, &ne) {
				t.Fatalf("error = %v, want *NestedError", err)
			}

			var (
				dateErr *DateError
				timeErr *TimeError
			)

			if !errors.As(ne.Err, &dateErr) && !errors.As(ne.Err, &timeErr) {
				t.Errorf("nested error %v wraps neither a date nor a time error", ne.Err)
			}
		})
	}
}

func TestParse_ArithmeticErrors(t *testing.T) {
	t.Parallel()

	noon := civil.Time{Hour: 12}
	last := civil.DateTime{Date: civil.Date{Year: MaxYear, Month: 12, Day: 31}, Time: noon}
	first := civil.DateTime{Date: civil.Date{Year: MinYear, Month: 1, Day: 1}, Time: noon}

	tests := []struct {
		name  string
		now   civil.DateTime
		input string
		want  string
	}{
		{"tomorrow", last, "tomorrow", "failed to add 1 days to the current time"},
		{"yesterday", first, "yesterday", "failed to subtract 1 days from the current time"},
		{"in days", last, "in 2 days", "failed to add 2 days to 262143-12-31T12:00:00"},
		{"days ago", first, "2 days ago", "failed to subtract 2 days from -262144-01-01T12:00:00"},
		{"in months", last, "in 1 month", "failed to add 1 months to 262143-12-31T12:00:00"},
		{"in hours", last, "in 13 hours", "failed to add 13 hours to 262143-12-31T12:00:00"},
		{"next friday", last, "next friday", "failed to add "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(tt.input, tt.now)

			var ae *ArithmeticError
			if !errors.As(err, &ae) {
				t.Fatalf("error = %v, want *ArithmeticError", err)
			}

			if got := ae.Error(); len(got) < len(tt.want) || got[:len(tt.want)] != tt.want {
				t.Errorf("got %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestParse_Unparseable(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"   ",
		"hello world",
		"next",
		"5th",
		"in",
		"3 days",
		"march 2025",
		"2 days ago ago",
		"tomorrow tomorrow",
		"next hour",
		"12:3",
		"5foo",
		"next friday!",
		"day of march",
	} {
		_, err := Parse(input, monday)
		if !errors.Is(err, ErrUnparseable) {
			t.Errorf("Parse(%q) error = %v, want unparseable", input, err)
		}

		if errors.Is(err, ErrProcessing) || errors.Is(err, ErrInternal) {
			t.Errorf("Parse(%q) error %v matches more than one class", input, err)
		}
	}
}

func TestParse_Internal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		opts   []Option
		reason error
	}{
		{"number overflow", "99999999999 days ago", nil, ErrInvalidNumber},
		{"number past 32 bits", "4294967296 seconds ago", nil, ErrInvalidNumber},
		{"ordinal overflow", "99999999999th day of march", nil, ErrInvalidOrdinal},
		{"invalid ordinal compound", "first-second day of march", nil, ErrInvalidOrdinal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseContext(t.Context(), tt.input, monday, tt.opts...)
			if !errors.Is(err, ErrInternal) {
				t.Fatalf("error = %v, want internal error", err)
			}

			if !errors.Is(err, ErrBuildAST) {
				t.Errorf("error = %v, want build error", err)
			}

			if !errors.Is(err, tt.reason) {
				t.Errorf("error = %v, want %v", err, tt.reason)
			}

			if errors.Is(err, ErrUnparseable) || errors.Is(err, ErrProcessing) {
				t.Errorf("error %v matches more than one class", err)
			}
		})
	}
}

func TestParse_DefaultDepth(t *testing.T) {
	t.Parallel()

	input := "today"
	for range DefaultMaxDepth - 1 {
		input = "1 day before " + input
	}

	got, err := Parse(input, monday)
	if err != nil {
		t.Fatalf("error at default depth: %v", err)
	}

	if want := "2023-12-31 12:00:00"; got.String() != want {
		t.Errorf("got %s, want %s", got, want)
	}

	if _, err := Parse("1 day before "+input, monday); !errors.Is(err, ErrMaxDepthExceeded) {
		t.Errorf("error past default depth = %v", err)
	}
}

func TestParse_DepthExceededIsUnparseable(t *testing.T) {
	t.Parallel()

	_, err := ParseContext(t.Context(),
		"1 day before 1 day before 1 day before today", monday, WithMaxDepth(2))

	if !errors.Is(err, ErrUnparseable) || !errors.Is(err, ErrMaxDepthExceeded) {
		t.Fatalf("error = %v, want unparseable depth error", err)
	}

	if errors.Is(err, ErrInternal) || errors.Is(err, ErrProcessing) {
		t.Errorf("error %v matches more than one class", err)
	}

	if _, err := ParseContext(t.Context(),
		"1 day before 1 day before today", monday, WithMaxDepth(3)); err != nil {
		t.Errorf("error within depth: %v", err)
	}
}

func TestParse_InvalidNow(t *testing.T) {
	t.Parallel()

	_, err := Parse("today", civil.DateTime{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("error = %v, want invalid config", err)
	}
}

func TestParse_Symmetry(t *testing.T) {
	t.Parallel()

	for _, d := range []string{"3 days", "2 weeks", "36 hours", "90 minutes", "45 seconds"} {
		fwd, err := Parse("in "+d, monday)
		if err != nil {
			t.Fatalf("in %s: %v", d, err)
		}

		back, err := Parse(d+" ago", fwd.DateTime())
		if err != nil {
			t.Fatalf("%s ago: %v", d, err)
		}

		if back.DateTime() != monday {
			t.Errorf("%s forward and back = %s, want %s", d, back, DateTimeValue(monday))
		}
	}
}

func TestWeekStart_UnmarshalText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text    string
		want    WeekStart
		wantErr bool
	}{
		{"sunday", Sunday, false},
		{"Sun", Sunday, false},
		{"monday", Monday, false},
		{" MON ", Monday, false},
		{"friday", Sunday, true},
		{"", Sunday, true},
	}

	for _, tt := range tests {
		var got WeekStart

		err := got.UnmarshalText([]byte(tt.text))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
		}

		if err == nil && got != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestParse_Trace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithFormat(log.FormatText),
		log.WithPretty(false),
		log.WithTimeLayout("none"),
		log.WithLevel(log.LevelTrace))

	if _, err := ParseContext(t.Context(), "10th day of next year", monday,
		WithLogger(logger)); err != nil {
		t.Fatalf("ParseContext: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"msg=tokenized",
		"msg=\"parse complete\"",
		"msg=\"ordinal strategy\"",
		"strategy=\"day of year\"",
		"anchor=2025-01-15",
		"msg=\"resolve complete\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %s:\n%s", want, out)
		}
	}
}

func TestParse_TraceSilentAboveTrace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := log.Make(&buf, log.WithLevel(log.LevelInfo))

	if _, err := ParseContext(t.Context(), "first day of march", monday,
		WithLogger(logger)); err != nil {
		t.Fatalf("ParseContext: %v", err)
	}

	if buf.Len() != 0 {
		t.Errorf("output at info level = %q, want none", buf.String())
	}
}

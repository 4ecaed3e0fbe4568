package lang

import (
	"context"
	"errors"
	"testing"
)

func TestParseInstant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"iso date-time", "2024-03-01T08:15:00", "2024-03-01T08:15:00"},
		{"spaced date-time", " 2024-03-01 08:15:00 ", "2024-03-01T08:15:00"},
		{"date at midnight", "2024-03-01", "2024-03-01T00:00:00"},
		{"time on today", "08:15:00", "2024-01-15T08:15:00"},
		{"phrase date-time", "tomorrow at 9:30", "2024-01-16T09:30:00"},
		{"phrase date", "next friday", "2024-01-19T00:00:00"},
		{"phrase time", "9:30", "2024-01-15T09:30:00"},
		{"now", "now", "2024-01-15T12:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseInstant(context.Background(), tt.text, monday)
			if err != nil {
				t.Fatalf("ParseInstant(%q): %v", tt.text, err)
			}

			if got.String() != tt.want {
				t.Errorf("ParseInstant(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseInstant_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want error
	}{
		{"someday", ErrUnparseable},
		{"2024-02-30", ErrProcessing},
	}

	for _, tt := range tests {
		_, err := ParseInstant(context.Background(), tt.text, monday)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseInstant(%q) error = %v, want %v", tt.text, err, tt.want)
		}
	}
}

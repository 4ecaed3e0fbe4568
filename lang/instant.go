package lang

import (
	"context"
	"strings"

	"cloud.google.com/go/civil"
)

// ParseInstant returns the date-time named by text, for use as the
// reference instant of later calls. Text is a value in one of the formats
// of [Value.String] or a phrase resolved against now. A date names its
// midnight and a time falls on the date of now.
func ParseInstant(
	ctx context.Context,
	text string,
	now civil.DateTime,
	opts ...Option,
) (civil.DateTime, error) {
	var v Value

	if err := v.UnmarshalText([]byte(strings.TrimSpace(text))); err != nil {
		v, err = ParseContext(ctx, text, now, opts...)
		if err != nil {
			return civil.DateTime{}, err
		}
	}

	switch v.Kind {
	case KindDate:
		return civil.DateTime{Date: v.Date}, nil
	case KindTime:
		return civil.DateTime{Date: now.Date, Time: v.Time}, nil
	default:
		return v.DateTime(), nil
	}
}

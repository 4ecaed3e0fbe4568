package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds = errors.New("index out of range")
	ErrUnknown     = errors.New("unknown command")
	ErrUsage       = errors.New("usage")
)

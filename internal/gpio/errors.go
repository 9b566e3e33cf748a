package gpio

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBackend is returned by Open for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown gpio backend")

	// ErrInvalidPin is returned by Open when the pin does not exist.
	ErrInvalidPin = errors.New("invalid gpio pin")

	// ErrUnsupported is returned when a backend cannot run on this platform.
	ErrUnsupported = errors.New("gpio backend not supported on this platform")
)

// InitError reports a failure to acquire the input line. Nothing can run
// without the line, so callers treat it as fatal.
type InitError struct {
	Backend string
	Pin     int
	Err     error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("acquire pin %d via %s: %v", e.Pin, e.Backend, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

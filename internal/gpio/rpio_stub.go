//go:build !linux

package gpio

import "fmt"

// RPIOReader is not available on non-Linux platforms.
type RPIOReader struct{}

// NewRPIOReader returns an error on non-Linux platforms.
func NewRPIOReader(pin int, pull Pull) (*RPIOReader, error) {
	return nil, fmt.Errorf("%w: rpio requires Linux", ErrUnsupported)
}

func (r *RPIOReader) Read() (Level, error) {
	return Low, ErrUnsupported
}

func (r *RPIOReader) Close() error {
	return nil
}

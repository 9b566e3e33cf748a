//go:build !linux

package gpio

import "fmt"

// CDevReader is not available on non-Linux platforms.
type CDevReader struct{}

// NewCDevReader returns an error on non-Linux platforms.
func NewCDevReader(chipName string, pin int, pull Pull) (*CDevReader, error) {
	return nil, fmt.Errorf("%w: gpiocdev requires Linux", ErrUnsupported)
}

func (r *CDevReader) Read() (Level, error) {
	return Low, ErrUnsupported
}

func (r *CDevReader) Close() error {
	return nil
}

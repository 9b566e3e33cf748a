//go:build linux

package gpio

import (
	"fmt"

	rpio "github.com/stianeikeland/go-rpio"
)

// RPIOReader reads a line through /dev/gpiomem using go-rpio.
// Reads are plain register loads and cannot fail.
type RPIOReader struct {
	pin rpio.Pin
}

// NewRPIOReader maps GPIO memory and configures the pin as an input.
func NewRPIOReader(pin int, pull Pull) (*RPIOReader, error) {
	// The BCM2835 exposes 54 lines.
	if pin > 53 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPin, pin)
	}
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("map gpio memory: %w", err)
	}

	p := rpio.Pin(pin)
	p.Input()
	switch pull {
	case PullUp:
		p.PullUp()
	case PullNone:
		p.PullOff()
	default:
		p.PullDown()
	}

	return &RPIOReader{pin: p}, nil
}

func (r *RPIOReader) Read() (Level, error) {
	return Level(r.pin.Read() == rpio.High), nil
}

// Close unmaps GPIO memory.
func (r *RPIOReader) Close() error {
	if err := rpio.Close(); err != nil {
		return fmt.Errorf("unmap gpio memory: %w", err)
	}
	return nil
}

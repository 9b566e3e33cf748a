package gpio

import (
	"fmt"

	pgpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// PeriphReader reads a line through periph.io. The periph pin API has no
// error path on reads, so read faults cannot be reported.
type PeriphReader struct {
	pin pgpio.PinIO
}

// NewPeriphReader initialises the periph host drivers and configures the
// BCM pin as an input with the given bias.
func NewPeriphReader(pin int, pull Pull) (*PeriphReader, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}

	name := fmt.Sprintf("GPIO%d", pin)
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s not registered", ErrInvalidPin, name)
	}

	if err := p.In(periphPull(pull), pgpio.NoEdge); err != nil {
		return nil, fmt.Errorf("configure %s as input: %w", name, err)
	}

	return &PeriphReader{pin: p}, nil
}

func periphPull(p Pull) pgpio.Pull {
	switch p {
	case PullUp:
		return pgpio.PullUp
	case PullNone:
		return pgpio.Float
	default:
		return pgpio.PullDown
	}
}

func (r *PeriphReader) Read() (Level, error) {
	return Level(r.pin.Read() == pgpio.High), nil
}

// Close halts the pin. periph has no per-pin release.
func (r *PeriphReader) Close() error {
	if err := r.pin.Halt(); err != nil {
		return fmt.Errorf("halt pin: %w", err)
	}
	return nil
}

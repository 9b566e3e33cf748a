//go:build linux

package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// CDevReader reads a line through the Linux GPIO character device.
type CDevReader struct {
	chip *gpiocdev.Chip
	line *gpiocdev.Line
}

// NewCDevReader requests pin on the named chip as an input with the given bias.
func NewCDevReader(chipName string, pin int, pull Pull) (*CDevReader, error) {
	chip, err := gpiocdev.NewChip(chipName)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip: %w", err)
	}

	if pin >= chip.Lines() {
		chip.Close()
		return nil, fmt.Errorf("%w: %d (chip %s has %d lines)", ErrInvalidPin, pin, chipName, chip.Lines())
	}

	line, err := chip.RequestLine(pin, gpiocdev.AsInput, cdevBias(pull))
	if err != nil {
		chip.Close()
		return nil, fmt.Errorf("request pin %d: %w", pin, err)
	}

	return &CDevReader{chip: chip, line: line}, nil
}

func cdevBias(p Pull) gpiocdev.LineReqOption {
	switch p {
	case PullUp:
		return gpiocdev.WithPullUp
	case PullNone:
		return gpiocdev.WithBiasDisabled
	default:
		return gpiocdev.WithPullDown
	}
}

// Read returns the line level. Active (1) is HIGH.
func (r *CDevReader) Read() (Level, error) {
	v, err := r.line.Value()
	if err != nil {
		return Low, fmt.Errorf("read pin: %w", err)
	}
	return Level(v != 0), nil
}

// Close releases the line and chip.
// The line is left as an input with pull-down, matching Pi boot defaults.
func (r *CDevReader) Close() error {
	var errs []error

	if r.line != nil {
		if err := r.line.Reconfigure(gpiocdev.AsInput, gpiocdev.WithPullDown); err != nil {
			errs = append(errs, fmt.Errorf("reconfigure pin: %w", err))
		}
		if err := r.line.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close pin: %w", err))
		}
	}
	if r.chip != nil {
		if err := r.chip.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close chip: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// Package gpio provides the digital input line the motion sensor is wired to.
// Several hardware backends are available and selected by name at startup;
// the fake backend allows testing without hardware.
package gpio

import (
	"fmt"
	"strings"
)

// Level is the logic level of a digital line.
type Level bool

const (
	Low  Level = false
	High Level = true
)

func (l Level) String() string {
	if l {
		return "HIGH"
	}
	return "LOW"
}

// Pull is the internal bias resistor applied to an input line.
type Pull int

const (
	PullNone Pull = iota
	PullDown
	PullUp
)

var pullNames = map[Pull]string{
	PullNone: "none",
	PullDown: "down",
	PullUp:   "up",
}

func (p Pull) String() string {
	if s, ok := pullNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Pull(%d)", int(p))
}

// ParsePull parses a bias mode name ("down", "up" or "none").
func ParsePull(s string) (Pull, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "down", "pull-down", "pulldown":
		return PullDown, nil
	case "up", "pull-up", "pullup":
		return PullUp, nil
	case "none", "off", "float":
		return PullNone, nil
	}
	return PullNone, fmt.Errorf("unknown pull mode %q, expected down, up or none", s)
}

// Backend names accepted by Open.
const (
	BackendGPIOCDev = "gpiocdev"
	BackendPeriph   = "periph"
	BackendRPIO     = "rpio"
	BackendFake     = "fake"
)

// Defaults (BCM numbering).
const (
	DefaultPin     = 17
	DefaultChip    = "gpiochip0"
	DefaultBackend = BackendGPIOCDev
)

// LineConfig describes the single input line to acquire.
type LineConfig struct {
	Pin     int    // BCM pin number
	Pull    Pull   // bias applied while the line is held
	Backend string // which library services reads
	Chip    string // character device chip, gpiocdev only
}

// Reader reads a digital input line.
type Reader interface {
	// Read returns the current level of the line.
	// Backends that cannot detect faults never return an error.
	Read() (Level, error)

	// Close releases the line.
	Close() error
}

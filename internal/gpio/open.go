package gpio

import (
	"fmt"
	"strings"
)

// Open acquires the input line described by cfg using the named backend.
// Any failure is returned as an *InitError.
func Open(cfg LineConfig) (Reader, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = DefaultBackend
	}

	if cfg.Pin < 0 {
		return nil, &InitError{Backend: backend, Pin: cfg.Pin, Err: ErrInvalidPin}
	}

	var (
		r   Reader
		err error
	)
	switch backend {
	case BackendGPIOCDev:
		chip := cfg.Chip
		if chip == "" {
			chip = DefaultChip
		}
		r, err = NewCDevReader(chip, cfg.Pin, cfg.Pull)
	case BackendPeriph:
		r, err = NewPeriphReader(cfg.Pin, cfg.Pull)
	case BackendRPIO:
		r, err = NewRPIOReader(cfg.Pin, cfg.Pull)
	case BackendFake:
		r = NewFakeReader([]Level{Low})
	default:
		err = fmt.Errorf("%w %q", ErrUnknownBackend, cfg.Backend)
	}
	if err != nil {
		return nil, &InitError{Backend: backend, Pin: cfg.Pin, Err: err}
	}
	return r, nil
}

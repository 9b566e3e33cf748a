// Package notify emits the sensor's console messages, with an abstraction for testing.
package notify

import (
	"fmt"
	"io"

	"github.com/sweeney/pir-sensor/internal/logic"
)

// Console messages.
const (
	MsgActive = "PIR Motion Sensor is active..."
	MsgMotion = "Motion detected!"
)

// Notifier announces sensor activity.
type Notifier interface {
	// Active announces that the sensor line has been acquired.
	Active() error

	// Motion announces a motion event.
	// Returns error if writing fails (should not crash the process).
	Motion(event logic.Event) error
}

// Console writes one line per message to w.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w (normally os.Stdout).
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Active() error {
	_, err := fmt.Fprintln(c.w, MsgActive)
	return err
}

func (c *Console) Motion(logic.Event) error {
	_, err := fmt.Fprintln(c.w, MsgMotion)
	return err
}

// Package logic contains the pure motion notification policy.
// This package does no I/O (no hardware access, OS, or time.Sleep).
// Time is always injectable via time.Time parameters.
package logic

import (
	"time"

	"github.com/sweeney/pir-sensor/internal/gpio"
)

// EventType identifies a notification.
type EventType string

const EventMotion EventType = "MOTION"

// Event is a notification to be emitted for a single poll.
type Event struct {
	Timestamp time.Time
	Type      EventType
	Poll      int // 1-based poll number the event belongs to
}

// Input is a single successful reading of the sensor line.
type Input struct {
	Level gpio.Level
	Poll  int
	Time  time.Time
}

// Package status tracks run counters for the sensor daemon.
// The poll loop is the only writer and reader, so there is no locking.
package status

import (
	"time"

	"github.com/sweeney/pir-sensor/internal/gpio"
)

// Config contains daemon configuration for display.
type Config struct {
	Pin     int
	Pull    string
	Backend string
	PollMs  int64
}

// Counts tracks poll outcomes since startup.
type Counts struct {
	Polls      int
	Detections int
	ReadFaults int
}

// Snapshot is a point-in-time view of daemon state.
type Snapshot struct {
	Level     gpio.Level
	HasLevel  bool // false until the first successful read
	Counts    Counts
	StartTime time.Time
	LastPoll  time.Time
	Now       time.Time
	Config    Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Tracker accumulates daemon state across polls.
type Tracker struct {
	snap Snapshot
	now  func() time.Time
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			StartTime: startTime,
			Config:    cfg,
		},
		now: time.Now,
	}
}

// RecordReading counts a successful poll and whether it produced a detection.
func (t *Tracker) RecordReading(at time.Time, level gpio.Level, detected bool) {
	t.snap.Counts.Polls++
	t.snap.LastPoll = at
	t.snap.Level = level
	t.snap.HasLevel = true
	if detected {
		t.snap.Counts.Detections++
	}
}

// RecordFault counts a poll whose read failed.
func (t *Tracker) RecordFault(at time.Time) {
	t.snap.Counts.Polls++
	t.snap.Counts.ReadFaults++
	t.snap.LastPoll = at
}

// Snapshot returns a copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	s := t.snap
	s.Now = t.now()
	return s
}

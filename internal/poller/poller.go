// Package poller runs the sensor polling loop: read the line, announce motion
// while it is HIGH, wait one interval, repeat.
package poller

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sweeney/pir-sensor/internal/gpio"
	"github.com/sweeney/pir-sensor/internal/logic"
	"github.com/sweeney/pir-sensor/internal/notify"
	"github.com/sweeney/pir-sensor/internal/status"
)

// DefaultInterval is the delay between polls.
const DefaultInterval = 500 * time.Millisecond

// Poller owns the sensor line for the life of the process.
type Poller struct {
	reader   gpio.Reader
	notifier notify.Notifier
	tracker  *status.Tracker
	interval time.Duration

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// New creates a Poller. A nil tracker disables counting.
func New(reader gpio.Reader, notifier notify.Notifier, tracker *status.Tracker, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		reader:   reader,
		notifier: notifier,
		tracker:  tracker,
		interval: interval,
		now:      time.Now,
		after:    time.After,
	}
}

// Run polls until a signal arrives on sig, then returns nil.
// Read and notification failures are logged and never end the loop.
func (p *Poller) Run(sig <-chan os.Signal) error {
	for poll := 1; ; poll++ {
		p.pollOnce(poll)

		// The wait starts after the poll's work, so polls are at least
		// one interval apart.
		select {
		case s := <-sig:
			log.Info().Stringer("signal", s).Int("polls", poll).Msg("shutting down")
			return nil
		case <-p.after(p.interval):
		}
	}
}

func (p *Poller) pollOnce(poll int) {
	t := p.now()

	level, err := p.reader.Read()
	if err != nil {
		log.Warn().Err(err).Int("poll", poll).Msg("gpio read fault")
		if p.tracker != nil {
			p.tracker.RecordFault(t)
		}
		return
	}

	event, detected := logic.Evaluate(logic.Input{Level: level, Poll: poll, Time: t})
	if p.tracker != nil {
		p.tracker.RecordReading(t, level, detected)
	}
	if !detected {
		return
	}

	log.Debug().Int("poll", poll).Msg("motion")
	if err := p.notifier.Motion(event); err != nil {
		log.Error().Err(err).Int("poll", poll).Msg("notify error")
	}
}

package internal

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sweeney/pir-sensor/internal/gpio"
	"github.com/sweeney/pir-sensor/internal/logic"
	"github.com/sweeney/pir-sensor/internal/notify"
	"github.com/sweeney/pir-sensor/internal/status"
)

// TestIntegrationFullFlow tests the flow from GPIO reading to console output using fakes.
func TestIntegrationFullFlow(t *testing.T) {
	// Quiet -> person walks past for 3 polls -> quiet -> brief blip
	samples := []gpio.Level{
		gpio.Low,  // poll 1
		gpio.Low,  // poll 2
		gpio.High, // poll 3
		gpio.High, // poll 4
		gpio.High, // poll 5
		gpio.Low,  // poll 6
		gpio.High, // poll 7
		gpio.Low,  // poll 8
	}

	reader := gpio.NewFakeReader(samples)
	var out bytes.Buffer
	console := notify.NewConsole(&out)
	startTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	tracker := status.NewTracker(startTime, status.Config{PollMs: 500})

	pollInterval := 500 * time.Millisecond

	if err := console.Active(); err != nil {
		t.Fatal(err)
	}

	// Simulate the main loop
	for i := range samples {
		lvl, err := reader.Read()
		if err != nil {
			t.Fatalf("sample %d: gpio read error: %v", i, err)
		}

		now := startTime.Add(time.Duration(i) * pollInterval)
		ev, ok := logic.Evaluate(logic.Input{Level: lvl, Poll: i + 1, Time: now})
		tracker.RecordReading(now, lvl, ok)
		if ok {
			if err := console.Motion(ev); err != nil {
				t.Fatalf("sample %d: notify error: %v", i, err)
			}
		}
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines (1 startup + 4 motion), got %d: %q", len(lines), out.String())
	}
	if lines[0] != notify.MsgActive {
		t.Errorf("line 0: got %q, want %q", lines[0], notify.MsgActive)
	}
	for i, l := range lines[1:] {
		if l != notify.MsgMotion {
			t.Errorf("line %d: got %q, want %q", i+1, l, notify.MsgMotion)
		}
	}

	snap := tracker.Snapshot()
	if snap.Counts.Polls != len(samples) {
		t.Errorf("Polls: got %d, want %d", snap.Counts.Polls, len(samples))
	}
	if snap.Counts.Detections != 4 {
		t.Errorf("Detections: got %d, want 4", snap.Counts.Detections)
	}
}

// TestIntegrationReadFaultSkipsPoll verifies a failed read produces no output
// and the following poll proceeds normally.
func TestIntegrationReadFaultSkipsPoll(t *testing.T) {
	reader := gpio.NewFakeReader([]gpio.Level{gpio.High, gpio.High, gpio.High})
	reader.Errors = []error{nil, errors.New("EIO")}
	notifier := notify.NewFakeNotifier()

	for i := 0; i < 3; i++ {
		lvl, err := reader.Read()
		if err != nil {
			continue
		}
		if ev, ok := logic.Evaluate(logic.Input{Level: lvl, Poll: i + 1}); ok {
			notifier.Motion(ev)
		}
	}

	polls := notifier.Polls()
	if len(polls) != 2 || polls[0] != 1 || polls[1] != 3 {
		t.Errorf("expected notifications on polls [1 3], got %v", polls)
	}
}

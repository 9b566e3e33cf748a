package notify

import "github.com/sweeney/pir-sensor/internal/logic"

// FakeNotifier records notifications for test assertions.
type FakeNotifier struct {
	// ActiveCalls counts calls to Active.
	ActiveCalls int

	// Events contains all motion events that were announced.
	Events []logic.Event

	// MotionError, if set, will be returned by Motion.
	// The event is still recorded.
	MotionError error
}

// NewFakeNotifier creates a FakeNotifier for testing.
func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{}
}

func (f *FakeNotifier) Active() error {
	f.ActiveCalls++
	return nil
}

func (f *FakeNotifier) Motion(event logic.Event) error {
	f.Events = append(f.Events, event)
	return f.MotionError
}

// Polls returns the poll numbers of the recorded events.
func (f *FakeNotifier) Polls() []int {
	out := make([]int, len(f.Events))
	for i, e := range f.Events {
		out[i] = e.Poll
	}
	return out
}

// Reset clears recorded notifications.
func (f *FakeNotifier) Reset() {
	f.ActiveCalls = 0
	f.Events = nil
	f.MotionError = nil
}

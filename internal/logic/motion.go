package logic

// Evaluate returns the notification for a reading, if any.
//
// A HIGH reading always produces an event and a LOW one never does. No
// previous reading is consulted, so a sensor held HIGH for N polls yields N
// events rather than one per rising edge.
func Evaluate(in Input) (Event, bool) {
	if !in.Level {
		return Event{}, false
	}
	return Event{
		Timestamp: in.Time,
		Type:      EventMotion,
		Poll:      in.Poll,
	}, true
}

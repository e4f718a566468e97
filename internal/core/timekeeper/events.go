package timekeeper

// State represents the current controller mode.
type State string

const (
	StateIdle          State = "idle"
	StateRunning       State = "running"
	StateTransitioning State = "transitioning"
)

// Interval identifies which duration the countdown is measured against.
type Interval string

const (
	IntervalWork       Interval = "work"
	IntervalShortBreak Interval = "short_break"
	IntervalLongBreak  Interval = "long_break"
)

// Label returns a human readable interval name.
func (interval Interval) Label() string {
	switch interval {
	case IntervalWork:
		return "Work"
	case IntervalShortBreak:
		return "Short break"
	case IntervalLongBreak:
		return "Long break"
	default:
		return string(interval)
	}
}

// EventType defines the type of controller event.
type EventType string

const (
	EventStateChange      EventType = "state_change"
	EventTick             EventType = "tick"
	EventIntervalComplete EventType = "interval_complete"
	EventNotifyError      EventType = "notify_error"
)

// Event represents a controller update for observers.
type Event struct {
	Type      EventType
	State     State
	Interval  Interval
	// Finished is the interval that just ended, set on completion events.
	Finished  Interval
	Remaining int
	Progress  float64
	Cycles    int
	Message   string
}

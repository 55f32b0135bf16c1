package timer

import "github.com/balkashynov/studyplay/internal/models"

type EventKind int

const (
	// EventTick carries the current reading once per step.
	EventTick EventKind = iota
	// EventMinuteElapsed fires once for every whole elapsed minute.
	EventMinuteElapsed
	// EventCompleted fires when a leisure countdown reaches zero. The
	// machine is idle afterwards.
	EventCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventMinuteElapsed:
		return "minute"
	case EventCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event is one thing that happened during a Tick.
type Event struct {
	Kind EventKind
	Mode models.Mode
	// Seconds is elapsed seconds for study and remaining seconds for leisure.
	Seconds int
	// Minute is the ordinal of the minute that just elapsed.
	Minute int
	// StartMinutes and Minutes describe a completed leisure session:
	// its planned length and the whole minutes already reported.
	StartMinutes float64
	Minutes      int
}

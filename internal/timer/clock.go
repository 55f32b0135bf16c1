package timer

import "time"

// Clock is the source of wall-clock time for a Machine.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

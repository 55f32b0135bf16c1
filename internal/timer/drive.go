package timer

import (
	"context"
	"iter"
	"time"
)

// Drive steps once per value received on ticks and yields the resulting
// events. It ends when ctx is done, ticks is closed, the consumer stops, or
// a Completed event has been yielded.
func Drive(ctx context.Context, step func() []Event, ticks <-chan time.Time) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ticks:
				if !ok {
					return
				}
				for _, ev := range step() {
					if !yield(ev) {
						return
					}
					if ev.Kind == EventCompleted {
						return
					}
				}
			}
		}
	}
}

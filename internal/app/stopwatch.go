package app

import (
	"time"

	"github.com/jonboulle/clockwork"
)

type stopwatch struct {
	clock clockwork.Clock
	start time.Time
}

func startStopwatch(clock clockwork.Clock) stopwatch {
	return stopwatch{clock: clock, start: clock.Now()}
}

// Elapsed returns the wall-clock time since the stopwatch was started.
func (s stopwatch) Elapsed() time.Duration {
	return s.clock.Since(s.start)
}

package stopwatch

import "github.com/jonboulle/clockwork"

// Each Stopwatch carries its own clockwork.Clock rather than sharing a
// package-level time source, so independent instances can run side by side
// and tests can drive one instance with a fake clock without touching the
// others.

// WithClock sets the time source used for tick scheduling.
// Tests pass clockwork.NewFakeClock() to advance time deterministically.
func WithClock(c clockwork.Clock) Option {
	return func(w *Stopwatch) {
		if c != nil {
			w.clock = c
		}
	}
}

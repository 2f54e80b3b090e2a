// Package stopwatch implements an elapsed-time tracking engine: a
// tick-driven clock that accumulates elapsed milliseconds while running,
// decomposes them into display fields, and exposes play/pause/reset
// lifecycle controls.
package stopwatch

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultInterval is the tick cadence used when none is configured.
const DefaultInterval = 10 * time.Millisecond

// State is the run state of a Stopwatch.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Stopwatch owns the authoritative elapsed-time value. Elapsed time
// advances in whole-tick increments while Running, is frozen while
// Paused, and is zeroed by Reset. The zero state is Idle with zero
// elapsed time.
//
// All methods are safe for concurrent use. Control methods (Play, Pause,
// Reset) are serialized against each other so rapid or out-of-order calls
// cannot double-start or double-stop the underlying scheduler.
type Stopwatch struct {
	clock    clockwork.Clock
	interval time.Duration
	onTick   func(DisplayFields)
	sched    *scheduler

	// opMu serializes control methods; mu guards the fields below and is
	// the only lock the tick path takes.
	opMu sync.Mutex
	mu   sync.Mutex

	state   State
	elapsed time.Duration
	fields  DisplayFields
}

// Option configures a Stopwatch at construction.
type Option func(*Stopwatch)

// WithInterval sets the tick cadence. Non-positive values keep the default.
func WithInterval(d time.Duration) Option {
	return func(w *Stopwatch) {
		if d > 0 {
			w.interval = d
		}
	}
}

// OnTick registers an observer invoked with a copy of the display fields
// after every tick. The callback runs on the tick goroutine: it must not
// block and must not call Play, Pause, or Reset.
func OnTick(fn func(DisplayFields)) Option {
	return func(w *Stopwatch) {
		w.onTick = fn
	}
}

// New returns a Stopwatch in the Idle state with zero elapsed time.
func New(opts ...Option) *Stopwatch {
	w := &Stopwatch{
		clock:    clockwork.NewRealClock(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.sched = newScheduler(w.clock, w.interval, w.tick)
	return w
}

// Play transitions Idle or Paused to Running and starts ticking.
// It is a no-op while already Running.
func (w *Stopwatch) Play() {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	w.mu.Lock()
	if w.state == Running {
		w.mu.Unlock()
		return
	}
	w.state = Running
	w.mu.Unlock()

	w.sched.start()
}

// Pause transitions Running to Paused, stops ticking, and returns the
// elapsed time at the moment of the pause. When not Running it returns
// the current elapsed time without changing state. No further tick is
// delivered once Pause has returned.
func (w *Stopwatch) Pause() time.Duration {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	w.mu.Lock()
	if w.state != Running {
		elapsed := w.elapsed
		w.mu.Unlock()
		return elapsed
	}
	w.state = Paused
	elapsed := w.elapsed
	w.mu.Unlock()

	// A tick that fires between the state change and the scheduler
	// halting sees state != Running and is ignored.
	w.sched.stop()
	return elapsed
}

// Reset returns the stopwatch to Idle with zero elapsed time, stopping
// the scheduler first so no stray tick observes the transition.
func (w *Stopwatch) Reset() {
	w.opMu.Lock()
	defer w.opMu.Unlock()

	w.mu.Lock()
	w.state = Idle
	w.mu.Unlock()

	w.sched.stop()

	w.mu.Lock()
	w.elapsed = 0
	w.fields = DisplayFields{}
	w.mu.Unlock()
}

// Snapshot returns the current elapsed time without changing state.
func (w *Stopwatch) Snapshot() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.elapsed
}

// Fields returns the display fields as of the most recent tick. The value
// is a copy taken under the same lock the tick path holds, so it is never
// a torn read.
func (w *Stopwatch) Fields() DisplayFields {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fields
}

// State returns the current run state.
func (w *Stopwatch) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Stopwatch) tick() {
	w.mu.Lock()
	if w.state != Running {
		w.mu.Unlock()
		return
	}
	w.elapsed += w.interval
	w.fields = Decompose(w.elapsed)
	fields := w.fields
	onTick := w.onTick
	w.mu.Unlock()

	if onTick != nil {
		onTick(fields)
	}
}

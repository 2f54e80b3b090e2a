package stopwatch

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// scheduler invokes a callback at a fixed cadence between start and stop.
// Both operations are idempotent. stop does not return until the tick
// goroutine has exited, so the callback never fires after stop returns.
type scheduler struct {
	clock    clockwork.Clock
	interval time.Duration
	fn       func()

	mu   sync.Mutex
	quit chan struct{}
	done chan struct{}
}

func newScheduler(clock clockwork.Clock, interval time.Duration, fn func()) *scheduler {
	return &scheduler{clock: clock, interval: interval, fn: fn}
}

// start begins periodic invocation. Calling start while already active
// has no effect.
func (s *scheduler) start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quit != nil {
		return
	}
	s.quit = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(s.quit, s.done)
}

// stop halts periodic invocation and waits for the tick goroutine to
// exit. Calling stop while inactive has no effect.
//
// stop must not be called from the callback itself; it would wait on the
// goroutine executing the callback.
func (s *scheduler) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quit == nil {
		return
	}
	close(s.quit)
	<-s.done
	s.quit = nil
	s.done = nil
}

func (s *scheduler) loop(quit, done chan struct{}) {
	defer close(done)
	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-quit:
			return
		case <-ticker.Chan():
			// A tick that raced the stop request is dropped, not delivered.
			select {
			case <-quit:
				return
			default:
			}
			s.fn()
		}
	}
}

package stopwatch

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestSchedulerDeliversTicks(t *testing.T) {
	fake := clockwork.NewFakeClock()
	ticks := make(chan struct{}, 16)
	s := newScheduler(fake, 10*time.Millisecond, func() { ticks <- struct{}{} })

	s.start()
	defer s.stop()
	fake.BlockUntil(1)

	for i := 0; i < 3; i++ {
		fake.Advance(10 * time.Millisecond)
		select {
		case <-ticks:
		case <-time.After(time.Second):
			t.Fatalf("tick %d not delivered", i+1)
		}
	}
}

func TestSchedulerStartIdempotent(t *testing.T) {
	fake := clockwork.NewFakeClock()
	ticks := make(chan struct{}, 16)
	s := newScheduler(fake, 10*time.Millisecond, func() { ticks <- struct{}{} })

	s.start()
	s.start()
	defer s.stop()
	fake.BlockUntil(1)

	// A second start must not spawn a second ticker: one interval, one tick.
	fake.Advance(10 * time.Millisecond)
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("tick not delivered")
	}
	select {
	case <-ticks:
		t.Fatal("duplicate tick after double start")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSchedulerStopIdempotent(t *testing.T) {
	fake := clockwork.NewFakeClock()
	s := newScheduler(fake, 10*time.Millisecond, func() {})

	s.stop() // stop before start is a no-op

	s.start()
	fake.BlockUntil(1)
	s.stop()
	s.stop()
}

func TestSchedulerNoTickAfterStop(t *testing.T) {
	fake := clockwork.NewFakeClock()
	ticks := make(chan struct{}, 16)
	s := newScheduler(fake, 10*time.Millisecond, func() { ticks <- struct{}{} })

	s.start()
	fake.BlockUntil(1)
	fake.Advance(10 * time.Millisecond)
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("tick not delivered")
	}

	s.stop()

	// Once stop has returned the goroutine is gone; advancing the clock
	// must not produce another callback.
	fake.Advance(100 * time.Millisecond)
	select {
	case <-ticks:
		t.Fatal("callback fired after stop returned")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSchedulerRestart(t *testing.T) {
	fake := clockwork.NewFakeClock()
	ticks := make(chan struct{}, 16)
	s := newScheduler(fake, 10*time.Millisecond, func() { ticks <- struct{}{} })

	s.start()
	fake.BlockUntil(1)
	s.stop()

	s.start()
	defer s.stop()
	fake.BlockUntil(1)
	fake.Advance(10 * time.Millisecond)
	select {
	case <-ticks:
	case <-time.After(time.Second):
		t.Fatal("tick not delivered after restart")
	}
}

package view

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/connorhough/lapse/internal/stopwatch"
	"github.com/jonboulle/clockwork"
)

func TestWatchStopsOnContextCancel(t *testing.T) {
	streams, out := TestIOStreamsNonInteractive()

	// The engine runs on a fake clock that is never advanced, so the
	// elapsed total is deterministic regardless of how long Watch spins.
	fake := clockwork.NewFakeClock()
	sw := stopwatch.New(
		stopwatch.WithClock(fake),
		stopwatch.WithInterval(10*time.Millisecond),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	elapsed := Watch(ctx, sw, streams, 5*time.Millisecond)

	if elapsed != 0 {
		t.Errorf("elapsed = %v, want 0", elapsed)
	}
	if sw.State() != stopwatch.Paused {
		t.Errorf("state = %v, want %v", sw.State(), stopwatch.Paused)
	}
	got := out.String()
	if !strings.Contains(got, "0:00.00") || !strings.Contains(got, "elapsed: 0s") {
		t.Errorf("output = %q, want final frame and summary", got)
	}
}

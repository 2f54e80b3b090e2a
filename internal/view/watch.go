package view

import (
	"context"
	"log/slog"
	"time"

	"github.com/connorhough/lapse/internal/stopwatch"
)

// Watch starts the stopwatch and redraws its fields at the refresh cadence
// until the context is cancelled, then pauses the clock and renders the
// final summary. It returns the tick-quantized elapsed time.
//
// Refresh is deliberately decoupled from the engine's tick interval: the
// engine keeps time at its own cadence and Watch only samples the latest
// snapshot, so a slow terminal never distorts the clock.
func Watch(ctx context.Context, sw *stopwatch.Stopwatch, streams *IOStreams, refresh time.Duration) time.Duration {
	r := NewRenderer(streams)

	sw.Play()
	slog.Debug("stopwatch started", "state", sw.State())

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			elapsed := sw.Pause()
			slog.Debug("stopwatch paused", "state", sw.State(), "elapsed", elapsed)
			r.Final(sw.Fields(), elapsed)
			return elapsed
		case <-ticker.C:
			r.Frame(sw.Fields())
		}
	}
}

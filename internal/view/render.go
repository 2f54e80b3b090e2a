package view

import (
	"fmt"
	"time"

	"github.com/connorhough/lapse/internal/stopwatch"
)

// Renderer draws display fields to the output stream. On a TTY each frame
// overwrites the previous one with a carriage return; on a pipe the
// intermediate frames are suppressed and only the final summary is written.
type Renderer struct {
	streams *IOStreams
	inPlace bool
}

// NewRenderer creates a Renderer bound to the given streams.
func NewRenderer(streams *IOStreams) *Renderer {
	return &Renderer{
		streams: streams,
		inPlace: streams.IsTerminal(),
	}
}

// Frame draws one intermediate frame of the running clock.
func (r *Renderer) Frame(f stopwatch.DisplayFields) {
	if !r.inPlace {
		return
	}
	fmt.Fprintf(r.streams.Out, "\r%s", f)
}

// Final draws the last frame and the elapsed total, terminating the
// in-place line if one was drawn.
func (r *Renderer) Final(f stopwatch.DisplayFields, elapsed time.Duration) {
	if r.inPlace {
		fmt.Fprintf(r.streams.Out, "\r%s\n", f)
	} else {
		fmt.Fprintf(r.streams.Out, "%s\n", f)
	}
	fmt.Fprintf(r.streams.Out, "elapsed: %v\n", elapsed)
}

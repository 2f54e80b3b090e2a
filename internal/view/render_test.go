package view

import (
	"testing"
	"time"

	"github.com/connorhough/lapse/internal/stopwatch"
)

func TestRendererFrameTTY(t *testing.T) {
	streams, out := TestIOStreams()
	r := NewRenderer(streams)

	r.Frame(stopwatch.DisplayFields{UnitsDigit: 3, Hundredths: 25})
	r.Frame(stopwatch.DisplayFields{UnitsDigit: 3, Hundredths: 30})

	got := out.String()
	if got != "\r0:03.25\r0:03.30" {
		t.Errorf("frames = %q", got)
	}
}

func TestRendererFrameNonTTY(t *testing.T) {
	streams, out := TestIOStreamsNonInteractive()
	r := NewRenderer(streams)

	r.Frame(stopwatch.DisplayFields{UnitsDigit: 3})

	if out.Len() != 0 {
		t.Errorf("non-TTY frame wrote %q, want nothing", out.String())
	}
}

func TestRendererFinal(t *testing.T) {
	t.Run("tty", func(t *testing.T) {
		streams, out := TestIOStreams()
		r := NewRenderer(streams)
		r.Final(stopwatch.DisplayFields{TensDigit: 1, UnitsDigit: 2, Hundredths: 50}, 12500*time.Millisecond)

		got := out.String()
		if got != "\r0:12.50\nelapsed: 12.5s\n" {
			t.Errorf("final = %q", got)
		}
	})

	t.Run("non-tty", func(t *testing.T) {
		streams, out := TestIOStreamsNonInteractive()
		r := NewRenderer(streams)
		r.Final(stopwatch.DisplayFields{Hundredths: 12}, 120*time.Millisecond)

		got := out.String()
		if got != "0:00.12\nelapsed: 120ms\n" {
			t.Errorf("final = %q", got)
		}
	})
}

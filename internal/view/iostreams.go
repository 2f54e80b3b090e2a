// Package view renders stopwatch display fields to a terminal. It is the
// CLI's consumer of the engine: it polls the latest fields and draws them,
// and owns no timing state of its own.
package view

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"
)

// IOStreams abstracts standard I/O for testability and dependency injection.
// Inspired by cli/cli's iostreams package.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// isTerminalFunc allows lazy evaluation and mocking of TTY detection
	isTerminalFunc func(fd int) bool
	stdoutFd       int
}

// NewIOStreams creates IOStreams connected to os.Stdin/Stdout/Stderr.
// Use this in production code for real terminal I/O.
func NewIOStreams() *IOStreams {
	return &IOStreams{
		In:             os.Stdin,
		Out:            os.Stdout,
		ErrOut:         os.Stderr,
		isTerminalFunc: term.IsTerminal,
		stdoutFd:       int(os.Stdout.Fd()),
	}
}

// IsTerminal returns true if Out is a TTY. In-place redraw is only
// meaningful on a terminal; pipes and CI logs get line-oriented output.
func (s *IOStreams) IsTerminal() bool {
	if s.isTerminalFunc == nil {
		return false
	}
	return s.isTerminalFunc(s.stdoutFd)
}

// TestIOStreams creates IOStreams for testing with in-memory buffers,
// simulating a TTY. Returns the streams and the output buffer for
// assertions.
func TestIOStreams() (*IOStreams, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &IOStreams{
		In:             &bytes.Buffer{},
		Out:            out,
		ErrOut:         out,
		isTerminalFunc: func(int) bool { return true },
	}, out
}

// TestIOStreamsNonInteractive is TestIOStreams for a non-TTY environment
// (pipes, CI/CD).
func TestIOStreamsNonInteractive() (*IOStreams, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &IOStreams{
		In:             &bytes.Buffer{},
		Out:            out,
		ErrOut:         out,
		isTerminalFunc: func(int) bool { return false },
	}, out
}

package stopwatch

import (
	"fmt"
	"time"
)

// DisplayFields is the decomposed, read-only view of an elapsed duration:
// whole minutes, the tens and units digits of the seconds, and hundredths
// of a second. It is recomputed from the elapsed total on every tick and
// never mutated independently.
type DisplayFields struct {
	Minutes    int
	TensDigit  int
	UnitsDigit int
	Hundredths int
}

// Decompose splits an elapsed duration into display fields. It is total
// over all non-negative inputs; negative durations are treated as zero.
func Decompose(elapsed time.Duration) DisplayFields {
	ms := elapsed.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	rem := ms % 60000
	return DisplayFields{
		Minutes:    int(ms / 60000),
		TensDigit:  int(rem / 10000),
		UnitsDigit: int(rem/1000) % 10,
		Hundredths: int(rem%1000) / 10,
	}
}

// String formats the fields as M:SS.hh, e.g. "1:05.42".
func (f DisplayFields) String() string {
	return fmt.Sprintf("%d:%d%d.%02d", f.Minutes, f.TensDigit, f.UnitsDigit, f.Hundredths)
}

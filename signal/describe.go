package signal

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Describe renders a human-readable one-line summary of the signal's
// kind, sample count, and time domain (SPEC_FULL "Signal.Describe()").
// sigalg and temporal pass it to argerr.NewEmptyIntersection to name the
// two domains that fail to overlap.
func (s Signal[T]) Describe() string {
	dt := dtypeOf[T]()
	switch s.kind {
	case KindEmpty:
		return fmt.Sprintf("Signal<%s>{empty}", dt)
	case KindConstant:
		return fmt.Sprintf("Signal<%s>{const=%v, domain=(-inf,+inf)}", dt, s.constV)
	default:
		start, end, _ := s.Domain()
		policy := "constant-hold"
		if s.interp == Linear {
			policy = "linear"
		}
		return fmt.Sprintf("Signal<%s>{%d samples, domain=[%s, %s], %s}",
			dt, len(s.samples), humanize.Ftoa(start), humanize.Ftoa(end), policy)
	}
}

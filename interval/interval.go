// Package interval defines the closed time interval shared by temporal
// AST nodes (expr) and the temporal kernels (temporal).
package interval

import (
	"math"

	"github.com/dustin/go-humanize"

	"github.com/argus-stl/argus/argerr"
)

// Interval is a closed [a, b] with 0 <= a <= b <= +Inf (spec §3). Only
// closed intervals are representable: open endpoints are meaningless
// over real-valued signals, which cannot exclude a single boundary time.
type Interval struct {
	A, B float64
}

// Unbounded is the default interval [0, +Inf) used by temporal
// constructors that receive no explicit interval.
var Unbounded = Interval{A: 0, B: math.Inf(1)}

// New validates and constructs an Interval, failing with
// argerr.InvalidInterval when a < 0, a > b, or a is non-finite.
func New(a, b float64) (Interval, error) {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return Interval{}, argerr.NewInvalidInterval(a, b)
	}
	if a < 0 || a > b {
		return Interval{}, argerr.NewInvalidInterval(a, b)
	}
	return Interval{A: a, B: b}, nil
}

// IsUnbounded reports whether the interval's upper bound is +Inf.
func (iv Interval) IsUnbounded() bool { return math.IsInf(iv.B, 1) }

// Width returns b - a (may be +Inf).
func (iv Interval) Width() float64 { return iv.B - iv.A }

// String renders the interval for error messages and debug dumps.
func (iv Interval) String() string {
	if iv.IsUnbounded() {
		return "[" + humanize.Ftoa(iv.A) + ", inf]"
	}
	return "[" + humanize.Ftoa(iv.A) + ", " + humanize.Ftoa(iv.B) + "]"
}

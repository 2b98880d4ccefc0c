// Package sigalg implements Argus's signal algebra (spec §4.E,
// component E): the synchronization primitive that combines two signals
// on possibly-unaligned sample grids, plus the pointwise arithmetic,
// comparison, and logical operators built on top of it.
package sigalg

import (
	"math"
	"sort"

	"github.com/argus-stl/argus/argerr"
	"github.com/argus-stl/argus/signal"
)

// isLinearCapable reports whether s behaves as an affine function of
// time everywhere in its domain: Constant (slope zero) or Sampled with
// Linear interpolation. Only such signals need crossing insertion when
// paired with another affine signal (spec §9 design note).
func isLinearCapable(s signal.Signal[float64]) bool {
	return s.Kind() == signal.KindConstant || (s.Kind() == signal.KindSampled && s.Interp() == signal.Linear)
}

// breakpoints returns the signal's own sample times, used to seed the
// merged grid; Constant and Empty contribute none.
func breakpoints(s signal.Signal[float64]) []float64 {
	if s.Kind() != signal.KindSampled {
		return nil
	}
	samples := s.Samples()
	ts := make([]float64, len(samples))
	for i, sm := range samples {
		ts[i] = sm.T
	}
	return ts
}

// domainOf returns (start, end, bounded) for a signal; Constant is
// reported unbounded (caller treats it as "no constraint").
func domainOf(s signal.Signal[float64]) (start, end float64, bounded bool) {
	st, en, kind := s.Domain()
	return st, en, kind == signal.DomainBounded
}

// grid computes the shared evaluation-time grid for two float signals:
// the intersection of their domains, the union of their own sample
// times within it, and — when both are affine — the times at which they
// cross each other, so that a pointwise function evaluated at every grid
// time reproduces the exact relation between the two signals rather than
// an approximation that is only correct at each signal's own samples.
func grid(a, b signal.Signal[float64], needsCrossing bool) (times []float64, domainStart, domainEnd float64, err error) {
	as, ae, aBounded := domainOf(a)
	bs, be, bBounded := domainOf(b)

	switch {
	case aBounded && bBounded:
		domainStart, domainEnd = math.Max(as, bs), math.Min(ae, be)
		if domainStart > domainEnd {
			return nil, 0, 0, argerr.NewEmptyIntersection(a.Describe(), b.Describe())
		}
	case aBounded:
		domainStart, domainEnd = as, ae
	case bBounded:
		domainStart, domainEnd = bs, be
	default:
		// Both Constant (or Empty, handled by callers before reaching
		// here): no bounded domain to report; return no samples.
		return nil, 0, 0, nil
	}

	set := map[float64]struct{}{domainStart: {}, domainEnd: {}}
	for _, t := range breakpoints(a) {
		if t >= domainStart && t <= domainEnd {
			set[t] = struct{}{}
		}
	}
	for _, t := range breakpoints(b) {
		if t >= domainStart && t <= domainEnd {
			set[t] = struct{}{}
		}
	}
	times = sortedKeys(set)

	if needsCrossing && isLinearCapable(a) && isLinearCapable(b) && len(times) > 1 {
		var crossings []float64
		av, _ := a.At(times[0])
		bv, _ := b.At(times[0])
		prevDiff := av - bv
		for i := 1; i < len(times); i++ {
			av, _ = a.At(times[i])
			bv, _ = b.At(times[i])
			diff := av - bv
			if prevDiff != 0 && diff != 0 && signOf(prevDiff) != signOf(diff) {
				t0, t1 := times[i-1], times[i]
				tc := t0 + (t1-t0)*prevDiff/(prevDiff-diff)
				if tc > t0 && tc < t1 {
					crossings = append(crossings, tc)
				}
			}
			prevDiff = diff
		}
		if len(crossings) > 0 {
			for _, tc := range crossings {
				set[tc] = struct{}{}
			}
			times = sortedKeys(set)
		}
	}

	return times, domainStart, domainEnd, nil
}

func signOf(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func sortedKeys(set map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Float64s(out)
	return out
}

// SyncFloat combines two float signals pointwise via f, following the
// synchronization algorithm of spec §4.E. needsCrossing should be true
// for comparisons and min/max (where the exact crossing time matters)
// and false for ops like addition/subtraction that are themselves affine
// on every sub-segment and so need no extra samples.
func SyncFloat(a, b signal.Signal[float64], f func(x, y float64) float64, needsCrossing bool) (signal.Signal[float64], error) {
	if a.IsEmpty() || b.IsEmpty() {
		return signal.Empty[float64](), nil
	}
	if a.Kind() == signal.KindConstant && b.Kind() == signal.KindConstant {
		return signal.Const(f(a.ConstValue(), b.ConstValue())), nil
	}

	times, _, _, err := grid(a, b, needsCrossing)
	if err != nil {
		return signal.Signal[float64]{}, err
	}
	if len(times) == 0 {
		return signal.Empty[float64](), nil
	}

	samples := make([]signal.Sample[float64], len(times))
	for i, t := range times {
		av, _ := a.At(t)
		bv, _ := b.At(t)
		samples[i] = signal.Sample[float64]{T: t, V: f(av, bv)}
	}
	policy := signal.ConstantHold
	if isLinearCapable(a) && isLinearCapable(b) {
		policy = signal.Linear
	}
	return signal.FromSamples(samples, policy)
}

// SyncCompare combines two float signals into a Bool signal via a
// comparison predicate, always with crossing insertion (spec §9: the
// central correctness requirement for comparisons on linear signals).
func SyncCompare(a, b signal.Signal[float64], pred func(x, y float64) bool) (signal.Signal[bool], error) {
	if a.IsEmpty() || b.IsEmpty() {
		return signal.Empty[bool](), nil
	}
	if a.Kind() == signal.KindConstant && b.Kind() == signal.KindConstant {
		return signal.Const(pred(a.ConstValue(), b.ConstValue())), nil
	}
	times, _, _, err := grid(a, b, true)
	if err != nil {
		return signal.Signal[bool]{}, err
	}
	if len(times) == 0 {
		return signal.Empty[bool](), nil
	}
	samples := make([]signal.Sample[bool], len(times))
	for i, t := range times {
		av, _ := a.At(t)
		bv, _ := b.At(t)
		samples[i] = signal.Sample[bool]{T: t, V: pred(av, bv)}
	}
	return signal.FromSamples(samples, signal.ConstantHold)
}

// SyncBool combines two Bool signals pointwise via f; Bool signals are
// always step functions, so no crossing insertion ever applies.
func SyncBool(a, b signal.Signal[bool], f func(x, y bool) bool) (signal.Signal[bool], error) {
	if a.IsEmpty() || b.IsEmpty() {
		return signal.Empty[bool](), nil
	}
	if a.Kind() == signal.KindConstant && b.Kind() == signal.KindConstant {
		return signal.Const(f(a.ConstValue(), b.ConstValue())), nil
	}

	as, ae, aBounded := boolDomain(a)
	bs, be, bBounded := boolDomain(b)
	var start, end float64
	switch {
	case aBounded && bBounded:
		start, end = math.Max(as, bs), math.Min(ae, be)
		if start > end {
			return signal.Signal[bool]{}, argerr.NewEmptyIntersection(a.Describe(), b.Describe())
		}
	case aBounded:
		start, end = as, ae
	case bBounded:
		start, end = bs, be
	default:
		return signal.Empty[bool](), nil
	}

	set := map[float64]struct{}{start: {}, end: {}}
	for _, sm := range boolBreakpoints(a) {
		if sm >= start && sm <= end {
			set[sm] = struct{}{}
		}
	}
	for _, sm := range boolBreakpoints(b) {
		if sm >= start && sm <= end {
			set[sm] = struct{}{}
		}
	}
	times := sortedKeys(set)
	samples := make([]signal.Sample[bool], len(times))
	for i, t := range times {
		av, _ := a.At(t)
		bv, _ := b.At(t)
		samples[i] = signal.Sample[bool]{T: t, V: f(av, bv)}
	}
	return signal.FromSamples(samples, signal.ConstantHold)
}

func boolDomain(s signal.Signal[bool]) (start, end float64, bounded bool) {
	st, en, kind := s.Domain()
	return st, en, kind == signal.DomainBounded
}

func boolBreakpoints(s signal.Signal[bool]) []float64 {
	if s.Kind() != signal.KindSampled {
		return nil
	}
	samples := s.Samples()
	ts := make([]float64, len(samples))
	for i, sm := range samples {
		ts[i] = sm.T
	}
	return ts
}

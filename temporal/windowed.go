package temporal

import (
	"math"

	"github.com/argus-stl/argus/interval"
	"github.com/argus-stl/argus/signal"
)

// windowExtreme is the shared engine behind Always and Eventually (spec
// §4.F): for every reported time t it returns the extreme (under less) of
// phi over the window [t+a, t+b] (truncated at the signal's own domain
// end for an unbounded interval). The order in which `less` ranks two
// values selects the operator: `less(x, y) == x < y` gives the sliding
// minimum (Always, robust semantics), a reversed comparator gives the
// sliding maximum (Eventually).
//
// Because a linear segment's extremum always sits at one of its two
// endpoints, sampling phi at each window's edges (via phi.At, which
// already interpolates) together with phi's own samples captures every
// candidate extremum exactly (spec §4.F) — no separate crossing-detection
// pass is needed the way sigalg's comparisons need one. The window edges
// slide monotonically as t increases, so a single forward pass with a
// monotonic deque (Lemire's sliding-window-extremum algorithm) computes
// every reported value in amortized O(n).
//
// The assembled output is always reported constant-hold: reconstructing
// an exact piecewise-linear shape between the breakpoints below would
// additionally require detecting every point where the winning candidate
// inside the window changes identity, which is a second crossing problem
// layered on top of the one sigalg already solves. Argus instead reports
// the (exact) value at every breakpoint and holds it, the same
// conservative choice already made for every Bool-valued signal.
func windowExtreme(phi signal.Signal[float64], iv interval.Interval, less func(a, b float64) bool, horizon Horizon, neutral float64) (signal.Signal[float64], error) {
	if phi.IsEmpty() {
		return signal.Empty[float64](), nil
	}
	if phi.Kind() == signal.KindConstant {
		return signal.Const(phi.ConstValue()), nil
	}

	s, e, _ := phi.Domain()
	a, b := iv.A, iv.B

	var domainEnd float64
	if iv.IsUnbounded() {
		if horizon.neutralTail {
			domainEnd = e
		} else {
			domainEnd = e - a
		}
	} else {
		domainEnd = e - b
	}
	domainStart := s
	if domainEnd < domainStart {
		return signal.Empty[float64](), nil
	}

	samples := phi.Samples()
	bpSet := map[float64]struct{}{domainStart: {}, domainEnd: {}}
	for _, sm := range samples {
		if t := sm.T - a; t >= domainStart && t <= domainEnd {
			bpSet[t] = struct{}{}
		}
		if !iv.IsUnbounded() {
			if t := sm.T - b; t >= domainStart && t <= domainEnd {
				bpSet[t] = struct{}{}
			}
		}
	}
	breakpoints := sortedFloats(bpSet)

	type entry struct {
		t float64
		v float64
	}
	var deque []entry
	j := 0
	out := make([]signal.Sample[float64], 0, len(breakpoints))

	for _, t := range breakpoints {
		lo := math.Max(t+a, s)
		hi := math.Min(t+b, e)

		if lo > hi {
			// Entire window is past the signal's domain: only reachable
			// under an opted-in NeutralTail horizon.
			out = append(out, signal.Sample[float64]{T: t, V: neutral})
			continue
		}

		for j < len(samples) && samples[j].T <= hi {
			v := samples[j].V
			for len(deque) > 0 && !less(deque[len(deque)-1].v, v) {
				deque = deque[:len(deque)-1]
			}
			deque = append(deque, entry{t: samples[j].T, v: v})
			j++
		}
		for len(deque) > 0 && deque[0].t < lo {
			deque = deque[1:]
		}

		best := neutral
		haveBest := false
		if len(deque) > 0 {
			best, haveBest = deque[0].v, true
		}
		if loV, err := phi.At(lo); err == nil {
			if !haveBest || less(loV, best) {
				best, haveBest = loV, true
			}
		}
		if hiV, err := phi.At(hi); err == nil {
			if !haveBest || less(hiV, best) {
				best, haveBest = hiV, true
			}
		}
		out = append(out, signal.Sample[float64]{T: t, V: best})
	}

	return signal.FromSamples(out, signal.ConstantHold)
}

func sortedFloats(set map[float64]struct{}) []float64 {
	out := make([]float64, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	insertionSortFloats(out)
	return out
}

// insertionSortFloats sorts a breakpoint set in place; temporal kernels
// run this once per operator application. Its input comes from map
// iteration in arbitrary order, so the sort is O(n^2) in the worst case,
// unlike sort.Float64s, which sigalg uses for the same job.
func insertionSortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

// AlwaysRobust computes the robust (quantitative) semantics of G[a,b] phi
// (spec §4.F, §4.G): the sliding-window infimum of phi.
func AlwaysRobust(phi signal.Signal[float64], iv interval.Interval, horizon Horizon) (signal.Signal[float64], error) {
	return windowExtreme(phi, iv, func(x, y float64) bool { return x < y }, horizon, math.Inf(1))
}

// EventuallyRobust computes the robust semantics of F[a,b] phi: the
// sliding-window supremum of phi.
func EventuallyRobust(phi signal.Signal[float64], iv interval.Interval, horizon Horizon) (signal.Signal[float64], error) {
	return windowExtreme(phi, iv, func(x, y float64) bool { return x > y }, horizon, math.Inf(-1))
}

// boolToFloat encodes a Bool sample as 1 (true) or 0 (false) for the
// qualitative Always/Eventually/Until kernels: false < true, so a sliding
// minimum over {0, 1}-encoded samples realizes AND and a sliding maximum
// realizes OR. This encoding stays inside the temporal package; the
// robust driver's true -> +Inf, false -> -Inf mapping is
// semantics.boolToRobust.
func boolToFloat(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

// AlwaysBool computes the qualitative semantics of G[a,b] phi: the
// sliding-window AND of phi, via the same monotonic-deque kernel as the
// robust case with values encoded as 0/1.
func AlwaysBool(phi signal.Signal[bool], iv interval.Interval, horizon Horizon) (signal.Signal[bool], error) {
	return boolWindowed(phi, iv, func(x, y float64) bool { return x < y }, horizon, 1)
}

// EventuallyBool computes the qualitative semantics of F[a,b] phi: the
// sliding-window OR of phi.
func EventuallyBool(phi signal.Signal[bool], iv interval.Interval, horizon Horizon) (signal.Signal[bool], error) {
	return boolWindowed(phi, iv, func(x, y float64) bool { return x > y }, horizon, 0)
}

func boolWindowed(phi signal.Signal[bool], iv interval.Interval, less func(a, b float64) bool, horizon Horizon, neutral float64) (signal.Signal[bool], error) {
	if phi.IsEmpty() {
		return signal.Empty[bool](), nil
	}
	if phi.Kind() == signal.KindConstant {
		return signal.Const(phi.ConstValue()), nil
	}
	in := phi.Samples()
	fs := make([]signal.Sample[float64], len(in))
	for i, sm := range in {
		fs[i] = signal.Sample[float64]{T: sm.T, V: boolToFloat(sm.V)}
	}
	fsig, err := signal.FromSamples(fs, signal.ConstantHold)
	if err != nil {
		return signal.Signal[bool]{}, err
	}
	res, err := windowExtreme(fsig, iv, less, horizon, neutral)
	if err != nil {
		return signal.Signal[bool]{}, err
	}
	if res.IsEmpty() {
		return signal.Empty[bool](), nil
	}
	if res.Kind() == signal.KindConstant {
		return signal.Const(res.ConstValue() != 0), nil
	}
	out := make([]signal.Sample[bool], len(res.Samples()))
	for i, sm := range res.Samples() {
		out[i] = signal.Sample[bool]{T: sm.T, V: sm.V != 0}
	}
	return signal.FromSamples(out, signal.ConstantHold)
}

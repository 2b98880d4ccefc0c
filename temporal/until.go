package temporal

import (
	"math"

	"github.com/argus-stl/argus/argerr"
	"github.com/argus-stl/argus/interval"
	"github.com/argus-stl/argus/signal"
)

// untilGrid merges two signals' domains and own sample times into the
// grid Until walks (spec §4.F: "compute on the merged time grid of lhs
// and rhs"). It is the Until-specific analogue of sigalg's grid(),
// without crossing insertion: spec §4.F notes robust Until over
// piecewise-linear inputs should insert crossings between the lhs/rhs
// envelopes for full exactness between reported breakpoints; Argus
// reports the (exact) value at every merged breakpoint and holds it
// between them, the same conservative choice as the rest of the
// temporal kernels.
func untilGrid(lhs, rhs signal.Signal[float64]) (times []float64, s, e float64, err error) {
	ls, le, lk := lhs.Domain()
	rs, re, rk := rhs.Domain()
	lBounded := lk == signal.DomainBounded
	rBounded := rk == signal.DomainBounded

	switch {
	case lBounded && rBounded:
		s, e = math.Max(ls, rs), math.Min(le, re)
		if s > e {
			return nil, 0, 0, argerr.NewEmptyIntersection(lhs.Describe(), rhs.Describe())
		}
	case lBounded:
		s, e = ls, le
	case rBounded:
		s, e = rs, re
	default:
		return nil, 0, 0, nil
	}

	set := map[float64]struct{}{s: {}, e: {}}
	for _, sm := range lhs.Samples() {
		if sm.T >= s && sm.T <= e {
			set[sm.T] = struct{}{}
		}
	}
	for _, sm := range rhs.Samples() {
		if sm.T >= s && sm.T <= e {
			set[sm.T] = struct{}{}
		}
	}
	return sortedFloats(set), s, e, nil
}

// extremeOver returns the extreme (minimum if pickMin, else maximum) of
// sig over the closed range [lo, hi], using its own samples strictly
// inside the range plus its interpolated value at the two endpoints —
// sufficient because a linear segment's extremum is always at an
// endpoint (the same fact windowExtreme relies on).
func extremeOver(sig signal.Signal[float64], lo, hi float64, pickMin bool) (float64, error) {
	best := math.Inf(1)
	if !pickMin {
		best = math.Inf(-1)
	}
	have := false
	consider := func(v float64) {
		if !have {
			best, have = v, true
			return
		}
		if pickMin {
			if v < best {
				best = v
			}
		} else if v > best {
			best = v
		}
	}
	if v, err := sig.At(lo); err == nil {
		consider(v)
	}
	if v, err := sig.At(hi); err == nil {
		consider(v)
	}
	for _, sm := range sig.Samples() {
		if sm.T > lo && sm.T < hi {
			consider(sm.V)
		}
	}
	if !have {
		return 0, argerr.NewOutOfDomain(lo, lo, hi)
	}
	return best, nil
}

// untilBoundedAt computes the windowed Until robustness at a single
// output time t, following spec §4.F's literal bounded algorithm: track
// the running infimum of lhs from t forward (the "still holds" prefix)
// while scanning tau across [t+a, t+b], accumulating the running
// supremum of min(rhs(tau), prefix). Not amortized across different t
// the way the unbounded sweep is — see untilUnbounded — but direct and
// plainly correct, which is what a bounded window (no shared suffix
// structure across t) calls for.
func untilBoundedAt(lhs, rhs signal.Signal[float64], t, a, b, domainEnd float64) (float64, error) {
	lo := t + a
	hi := math.Min(t+b, domainEnd)
	if lo > hi {
		return math.Inf(-1), nil
	}

	prefixMin, err := extremeOver(lhs, t, lo, true)
	if err != nil {
		return math.Inf(-1), nil
	}

	set := map[float64]struct{}{hi: {}}
	for _, sm := range lhs.Samples() {
		if sm.T > lo && sm.T <= hi {
			set[sm.T] = struct{}{}
		}
	}
	for _, sm := range rhs.Samples() {
		if sm.T > lo && sm.T <= hi {
			set[sm.T] = struct{}{}
		}
	}
	taus := sortedFloats(set)

	best := math.Inf(-1)
	if rloV, err := rhs.At(lo); err == nil {
		best = math.Max(best, math.Min(rloV, prefixMin))
	}
	for _, tau := range taus {
		if lv, err := lhs.At(tau); err == nil && lv < prefixMin {
			prefixMin = lv
		}
		if rv, err := rhs.At(tau); err == nil {
			if c := math.Min(rv, prefixMin); c > best {
				best = c
			}
		}
	}
	return best, nil
}

// UntilRobust computes the robust semantics of `lhs U[a,b] rhs` (spec
// §4.F, §4.G): sup_{tau in [t+a,t+b]} min(rhs(tau), inf_{sigma in
// [t,tau]} lhs(sigma)).
//
// The unbounded case (b = +inf) uses the "classical backward-sweep...
// maintaining two accumulators" spec §4.F calls for: because the window
// always extends to the signal's own domain end regardless of t, the
// per-t answer for an unshifted window (a=0) satisfies the recurrence
// ans(tau_i) = min(lhs(tau_i), max(rhs(tau_i), ans(tau_{i+1}))), computed
// once in a single backward pass over the merged grid. For a > 0 the
// output at t reads ans(t+a) and additionally takes the min with
// inf_{sigma in [t, t+a]} lhs(sigma), so the shift is more than a
// relabeling of which grid time each output time reads from.
// The bounded case has no such shared suffix across different t (the
// window's far edge also moves), so it falls back to the direct
// untilBoundedAt scan per output time.
func UntilRobust(lhs, rhs signal.Signal[float64], iv interval.Interval, horizon Horizon) (signal.Signal[float64], error) {
	if lhs.IsEmpty() || rhs.IsEmpty() {
		return signal.Empty[float64](), nil
	}
	if lhs.Kind() == signal.KindConstant && rhs.Kind() == signal.KindConstant {
		return signal.Const(math.Min(lhs.ConstValue(), rhs.ConstValue())), nil
	}

	times, s, e, err := untilGrid(lhs, rhs)
	if err != nil {
		return signal.Signal[float64]{}, err
	}
	if len(times) == 0 {
		return signal.Empty[float64](), nil
	}

	// Until's existential only needs a window that starts inside the
	// signals' domain, not one that fits in full the way Always/Eventually
	// require (spec §4.F: the windowed scan already clips its far edge at
	// e via untilBoundedAt/the unbounded sweep below). So the reported
	// domain shrinks to where the window's near edge t+a still exists,
	// ~e-a, for both the bounded and unbounded cases alike; NeutralTail
	// additionally reports the trailing tail as the operator's neutral
	// bottom rather than dropping it.
	a := iv.A
	var domainEnd float64
	if iv.IsUnbounded() && horizon.neutralTail {
		domainEnd = e
	} else {
		domainEnd = e - a
	}
	if domainEnd < s {
		return signal.Empty[float64](), nil
	}

	var out []signal.Sample[float64]
	if iv.IsUnbounded() {
		rawAns := make([]float64, len(times))
		prev := math.Inf(-1)
		for i := len(times) - 1; i >= 0; i-- {
			lv, lerr := lhs.At(times[i])
			rv, rerr := rhs.At(times[i])
			if lerr != nil || rerr != nil {
				rawAns[i] = prev
				continue
			}
			cur := math.Min(lv, math.Max(rv, prev))
			rawAns[i] = cur
			prev = cur
		}
		for i, τ := range times {
			t := τ - a
			if t < s {
				continue
			}
			if t > domainEnd {
				if !horizon.neutralTail {
					continue
				}
				out = append(out, signal.Sample[float64]{T: t, V: math.Inf(-1)})
				continue
			}
			// rawAns[i] is the answer to the a=0 recurrence starting at
			// tau=t+a: it already folds in inf_{sigma in [t+a, ...]} lhs.
			// The a-shifted operator also needs inf_{sigma in [t, t+a]}
			// lhs folded in, since the full constraint ranges over
			// [t, tau] for every candidate tau >= t+a, not just [t+a, tau]
			// (the a-shift is not a mere relabeling once a > 0).
			v := rawAns[i]
			if a > 0 {
				if prefix, err := extremeOver(lhs, t, τ, true); err == nil {
					v = math.Min(v, prefix)
				}
			}
			out = append(out, signal.Sample[float64]{T: t, V: v})
		}
		// Every t above is at most e-a; under NeutralTail the trailing
		// (e-a, e] is reported as the neutral bottom via a final sample at e.
		if horizon.neutralTail && a > 0 {
			out = append(out, signal.Sample[float64]{T: e, V: math.Inf(-1)})
		}
	} else {
		bpSet := map[float64]struct{}{s: {}, domainEnd: {}}
		for _, τ := range times {
			if t := τ - iv.A; t >= s && t <= domainEnd {
				bpSet[t] = struct{}{}
			}
			if t := τ - iv.B; t >= s && t <= domainEnd {
				bpSet[t] = struct{}{}
			}
		}
		for _, t := range sortedFloats(bpSet) {
			v, err := untilBoundedAt(lhs, rhs, t, iv.A, iv.B, e)
			if err != nil {
				return signal.Signal[float64]{}, err
			}
			out = append(out, signal.Sample[float64]{T: t, V: v})
		}
	}

	if len(out) == 0 {
		return signal.Empty[float64](), nil
	}
	return signal.FromSamples(out, signal.ConstantHold)
}

// UntilBool computes the qualitative semantics of `lhs U[a,b] rhs`. AND
// and OR over {false, true} coincide with min/max over {0, 1}, so the
// Boolean driver reuses UntilRobust's engine on a 0/1 encoding rather
// than re-deriving the same recurrence over a Boolean lattice.
func UntilBool(lhs, rhs signal.Signal[bool], iv interval.Interval, horizon Horizon) (signal.Signal[bool], error) {
	if lhs.IsEmpty() || rhs.IsEmpty() {
		return signal.Empty[bool](), nil
	}
	if lhs.Kind() == signal.KindConstant && rhs.Kind() == signal.KindConstant {
		return signal.Const(lhs.ConstValue() && rhs.ConstValue()), nil
	}

	toFloat := func(s signal.Signal[bool]) (signal.Signal[float64], error) {
		switch s.Kind() {
		case signal.KindEmpty:
			return signal.Empty[float64](), nil
		case signal.KindConstant:
			return signal.Const(boolToFloat(s.ConstValue())), nil
		default:
			in := s.Samples()
			fs := make([]signal.Sample[float64], len(in))
			for i, sm := range in {
				fs[i] = signal.Sample[float64]{T: sm.T, V: boolToFloat(sm.V)}
			}
			return signal.FromSamples(fs, signal.ConstantHold)
		}
	}

	lf, err := toFloat(lhs)
	if err != nil {
		return signal.Signal[bool]{}, err
	}
	rf, err := toFloat(rhs)
	if err != nil {
		return signal.Signal[bool]{}, err
	}

	res, err := UntilRobust(lf, rf, iv, horizon)
	if err != nil {
		return signal.Signal[bool]{}, err
	}
	switch res.Kind() {
	case signal.KindEmpty:
		return signal.Empty[bool](), nil
	case signal.KindConstant:
		return signal.Const(res.ConstValue() > 0.5), nil
	default:
		in := res.Samples()
		out := make([]signal.Sample[bool], len(in))
		for i, sm := range in {
			out[i] = signal.Sample[bool]{T: sm.T, V: sm.V > 0.5}
		}
		return signal.FromSamples(out, signal.ConstantHold)
	}
}

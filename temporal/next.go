package temporal

import "github.com/argus-stl/argus/signal"

// Next computes the one-step shift X phi (spec §4.F): output(t_i) =
// phi(t_{i+1}), defined on [t0, t_{n-1}] — the domain drops the last
// sample, since it has no successor. Empty propagates as Empty (spec's
// EmptyDomain policy, rather than a distinct "undefined" error) and
// Constant is invariant under Next.
func Next[T signal.Scalar](phi signal.Signal[T]) (signal.Signal[T], error) {
	switch phi.Kind() {
	case signal.KindEmpty:
		return signal.Empty[T](), nil
	case signal.KindConstant:
		return signal.Const(phi.ConstValue()), nil
	}

	in := phi.Samples()
	if len(in) < 2 {
		return signal.Empty[T](), nil
	}
	out := make([]signal.Sample[T], len(in)-1)
	for i := 0; i < len(in)-1; i++ {
		out[i] = signal.Sample[T]{T: in[i].T, V: in[i+1].V}
	}
	return signal.FromSamples(out, phi.Interp())
}

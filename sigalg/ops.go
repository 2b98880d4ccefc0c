package sigalg

import (
	"math"

	"github.com/argus-stl/argus/expr"
	"github.com/argus-stl/argus/signal"
)

// NegateF negates a float signal sample-wise; no grid change (spec
// §4.E "Unary ops ... apply sample-wise without grid change").
func NegateF(s signal.Signal[float64]) signal.Signal[float64] {
	return mapFloat(s, func(x float64) float64 { return -x })
}

// AbsF takes the absolute value of a float signal sample-wise.
func AbsF(s signal.Signal[float64]) signal.Signal[float64] {
	return mapFloat(s, math.Abs)
}

// NotBool negates a Bool signal sample-wise.
func NotBool(s signal.Signal[bool]) signal.Signal[bool] {
	switch s.Kind() {
	case signal.KindEmpty:
		return s
	case signal.KindConstant:
		return signal.Const(!s.ConstValue())
	default:
		in := s.Samples()
		out := make([]signal.Sample[bool], len(in))
		for i, sm := range in {
			out[i] = signal.Sample[bool]{T: sm.T, V: !sm.V}
		}
		res, _ := signal.FromSamples(out, signal.ConstantHold)
		return res
	}
}

func mapFloat(s signal.Signal[float64], f func(float64) float64) signal.Signal[float64] {
	switch s.Kind() {
	case signal.KindEmpty:
		return s
	case signal.KindConstant:
		return signal.Const(f(s.ConstValue()))
	default:
		in := s.Samples()
		out := make([]signal.Sample[float64], len(in))
		for i, sm := range in {
			out[i] = signal.Sample[float64]{T: sm.T, V: f(sm.V)}
		}
		policy := signal.ConstantHold
		if s.Interp() == signal.Linear {
			policy = signal.Linear
		}
		res, _ := signal.FromSamples(out, policy)
		return res
	}
}

// AddF, SubF, MulF, DivF are the pointwise binary numeric ops. All four
// evaluate f on the same merged grid with no crossing insertion, and the
// output is Linear whenever both inputs are Constant or Linear. For
// MulF/DivF of two non-constant signals the values at grid times are
// exact, but the linear interpolation between them is not the exact
// product/quotient.
func AddF(a, b signal.Signal[float64]) (signal.Signal[float64], error) {
	return SyncFloat(a, b, func(x, y float64) float64 { return x + y }, false)
}

func SubF(a, b signal.Signal[float64]) (signal.Signal[float64], error) {
	return SyncFloat(a, b, func(x, y float64) float64 { return x - y }, false)
}

func MulF(a, b signal.Signal[float64]) (signal.Signal[float64], error) {
	return SyncFloat(a, b, func(x, y float64) float64 { return x * y }, false)
}

func DivF(a, b signal.Signal[float64]) (signal.Signal[float64], error) {
	return SyncFloat(a, b, func(x, y float64) float64 { return x / y }, false)
}

// MinF and MaxF are the robust-semantics combining functions for And/Or;
// both require crossing insertion (spec §9).
func MinF(a, b signal.Signal[float64]) (signal.Signal[float64], error) {
	return SyncFloat(a, b, math.Min, true)
}

func MaxF(a, b signal.Signal[float64]) (signal.Signal[float64], error) {
	return SyncFloat(a, b, math.Max, true)
}

// AndBool and OrBool are the qualitative-semantics combining functions.
func AndBool(a, b signal.Signal[bool]) (signal.Signal[bool], error) {
	return SyncBool(a, b, func(x, y bool) bool { return x && y })
}

func OrBool(a, b signal.Signal[bool]) (signal.Signal[bool], error) {
	return SyncBool(a, b, func(x, y bool) bool { return x || y })
}

// Compare evaluates a Cmp operator pointwise, producing a Bool signal
// (the qualitative driver's representation of a comparison).
func Compare(op expr.CmpOp, lhs, rhs signal.Signal[float64]) (signal.Signal[bool], error) {
	return SyncCompare(lhs, rhs, predicateFor(op))
}

// CompareRobust evaluates a Cmp operator's signed-margin robustness
// (spec §4.G): `lhs > rhs` -> `lhs - rhs`, `lhs = rhs` -> `-|lhs - rhs|`,
// and so on, built from the same margin with the sign/shape adjusted per
// operator.
func CompareRobust(op expr.CmpOp, lhs, rhs signal.Signal[float64]) (signal.Signal[float64], error) {
	switch op {
	case expr.Lt, expr.Le:
		return SubF(rhs, lhs)
	case expr.Gt, expr.Ge:
		return SubF(lhs, rhs)
	case expr.Eq:
		diff, err := SubF(lhs, rhs)
		if err != nil {
			return diff, err
		}
		return NegateF(AbsF(diff)), nil
	default: // Ne
		diff, err := SubF(lhs, rhs)
		if err != nil {
			return diff, err
		}
		return AbsF(diff), nil
	}
}

func predicateFor(op expr.CmpOp) func(x, y float64) bool {
	switch op {
	case expr.Lt:
		return func(x, y float64) bool { return x < y }
	case expr.Le:
		return func(x, y float64) bool { return x <= y }
	case expr.Gt:
		return func(x, y float64) bool { return x > y }
	case expr.Ge:
		return func(x, y float64) bool { return x >= y }
	case expr.Eq:
		return func(x, y float64) bool { return x == y }
	default: // Ne
		return func(x, y float64) bool { return x != y }
	}
}

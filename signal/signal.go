// Package signal implements Argus's piecewise time series (spec §3,
// §4.B, component B): the Empty/Constant/Sampled variants, their
// invariants, and the interpolation contract.
//
// Signal is generic over the four scalar kinds permitted by dtype.DType.
// A single generic implementation plays the role the teacher's
// `internal/vm/value.go` gives to its `Value interface{}` + type switch:
// Argus can afford compile-time generics instead because its scalar set
// is closed to four concrete types, known up front.
package signal

import (
	"math"
	"sort"

	"github.com/argus-stl/argus/argerr"
	"github.com/argus-stl/argus/dtype"
)

// Scalar is the closed set of sample value types a Signal may carry.
type Scalar interface {
	~bool | ~int64 | ~uint64 | ~float64
}

// InterpPolicy selects how a Sampled signal's value is computed between
// recorded samples (spec §3 "Interpolation policy").
type InterpPolicy uint8

const (
	ConstantHold InterpPolicy = iota
	Linear
)

// Kind distinguishes the three Signal variants of spec §3.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindConstant
	KindSampled
)

// DomainKind classifies a signal's time domain for callers who need to
// distinguish "undefined everywhere" from "defined everywhere" from a
// concrete bounded interval.
type DomainKind uint8

const (
	DomainEmpty DomainKind = iota
	DomainUnbounded
	DomainBounded
)

// Sample is a single (t, v) pair (spec §3).
type Sample[T Scalar] struct {
	T float64
	V T
}

// Signal is a piecewise time series of a fixed scalar type T, in one of
// the Empty/Constant/Sampled variants of spec §3.
type Signal[T Scalar] struct {
	kind    Kind
	constV  T
	samples []Sample[T]
	interp  InterpPolicy
}

// Empty returns the signal with no time domain.
func Empty[T Scalar]() Signal[T] {
	return Signal[T]{kind: KindEmpty}
}

// Const returns a signal defined on (-inf, +inf) with constant value v.
func Const[T Scalar](v T) Signal[T] {
	return Signal[T]{kind: KindConstant, constV: v}
}

// dtypeOf reports the dtype.DType tag for the scalar type T, used by
// FromSamples to enforce the constant-hold-for-non-float rule.
func dtypeOf[T Scalar]() dtype.DType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return dtype.Bool
	case int64:
		return dtype.Int64
	case uint64:
		return dtype.UInt64
	default:
		return dtype.Float64
	}
}

// DefaultInterp returns Linear for float64 and ConstantHold otherwise,
// the default policy of spec §3.
func DefaultInterp[T Scalar]() InterpPolicy {
	if dtypeOf[T]() == dtype.Float64 {
		return Linear
	}
	return ConstantHold
}

// FromSamples builds a Sampled signal, failing with argerr.InvalidSamples
// when times are not strictly increasing and finite, or values contain
// NaN, and failing when a Linear policy is requested for a non-float64 T
// (spec §3: constant-hold is required for Bool/Int/UInt).
func FromSamples[T Scalar](samples []Sample[T], interp InterpPolicy) (Signal[T], error) {
	if len(samples) == 0 {
		return Signal[T]{}, argerr.NewInvalidSamples("samples must be non-empty")
	}
	if interp == Linear && dtypeOf[T]() != dtype.Float64 {
		return Signal[T]{}, argerr.NewInvalidSamples("linear interpolation requires float64 samples")
	}
	last := math.Inf(-1)
	out := make([]Sample[T], len(samples))
	for i, s := range samples {
		if math.IsNaN(s.T) || math.IsInf(s.T, 0) {
			return Signal[T]{}, argerr.NewInvalidSamples("sample times must be finite")
		}
		if s.T <= last {
			return Signal[T]{}, argerr.NewInvalidSamples("sample times must be strictly increasing")
		}
		if fv, ok := any(s.V).(float64); ok && math.IsNaN(fv) {
			return Signal[T]{}, argerr.NewNaNSample(s.T)
		}
		last = s.T
		out[i] = s
	}
	return Signal[T]{kind: KindSampled, samples: out, interp: interp}, nil
}

// Push appends a new sample to a Sampled signal, failing with
// argerr.NonMonotonic if t does not strictly exceed the last recorded
// time. Push on an Empty or Constant signal starts a new Sampled signal
// with the default interpolation policy for T.
func (s Signal[T]) Push(t float64, v T) (Signal[T], error) {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return s, argerr.NewInvalidSamples("sample times must be finite")
	}
	if fv, ok := any(v).(float64); ok && math.IsNaN(fv) {
		return s, argerr.NewNaNSample(t)
	}
	switch s.kind {
	case KindEmpty, KindConstant:
		return Signal[T]{kind: KindSampled, samples: []Sample[T]{{T: t, V: v}}, interp: DefaultInterp[T]()}, nil
	default:
		last := s.samples[len(s.samples)-1].T
		if t <= last {
			return s, argerr.NewNonMonotonic(t, last)
		}
		ns := make([]Sample[T], len(s.samples)+1)
		copy(ns, s.samples)
		ns[len(s.samples)] = Sample[T]{T: t, V: v}
		return Signal[T]{kind: KindSampled, samples: ns, interp: s.interp}, nil
	}
}

// Kind reports which of the three Signal variants this is.
func (s Signal[T]) Kind() Kind { return s.kind }

// Interp reports the interpolation policy of a Sampled signal (zero
// value for Empty/Constant, which do not interpolate).
func (s Signal[T]) Interp() InterpPolicy { return s.interp }

// IsEmpty reports whether this is the Empty variant.
func (s Signal[T]) IsEmpty() bool { return s.kind == KindEmpty }

// IsLinear reports whether a Sampled signal uses linear interpolation.
func (s Signal[T]) IsLinear() bool { return s.kind == KindSampled && s.interp == Linear }

// Samples exposes the raw sample slice of a Sampled signal (empty for
// the other two variants). Callers must not mutate the returned slice.
func (s Signal[T]) Samples() []Sample[T] { return s.samples }

// ConstValue returns the constant value of a Constant signal (zero value
// otherwise).
func (s Signal[T]) ConstValue() T { return s.constV }

// Domain reports the signal's time domain (spec §3): empty for Empty,
// unbounded for Constant, [t0, tn] for Sampled.
func (s Signal[T]) Domain() (start, end float64, kind DomainKind) {
	switch s.kind {
	case KindEmpty:
		return 0, 0, DomainEmpty
	case KindConstant:
		return math.Inf(-1), math.Inf(1), DomainUnbounded
	default:
		return s.samples[0].T, s.samples[len(s.samples)-1].T, DomainBounded
	}
}

// At returns the (possibly interpolated) value at t, failing with
// argerr.OutOfDomain when t falls outside [start, end] of a Sampled
// signal, or when the signal is Empty.
func (s Signal[T]) At(t float64) (T, error) {
	var zero T
	switch s.kind {
	case KindEmpty:
		return zero, argerr.NewOutOfDomain(t, math.NaN(), math.NaN())
	case KindConstant:
		return s.constV, nil
	}

	n := len(s.samples)
	start, end := s.samples[0].T, s.samples[n-1].T
	if t < start || t > end {
		return zero, argerr.NewOutOfDomain(t, start, end)
	}

	// Find the greatest index i with samples[i].T <= t.
	i := sort.Search(n, func(i int) bool { return s.samples[i].T > t }) - 1
	if i < 0 {
		i = 0
	}
	lo := s.samples[i]
	if lo.T == t || i == n-1 {
		return lo.V, nil
	}
	hi := s.samples[i+1]
	if s.interp == ConstantHold {
		return lo.V, nil
	}
	// Linear: only reachable when T == float64 (enforced at construction).
	lof := any(lo.V).(float64)
	hif := any(hi.V).(float64)
	frac := (t - lo.T) / (hi.T - lo.T)
	v := lof + (hif-lof)*frac
	return any(v).(T), nil
}

// Build-time constructors enforcing the AST invariants of spec §3/§4.D:
// n-ary Add/Mul/And/Or need >=1 argument (a single argument collapses to
// that argument itself — the "degenerate collapse to identity" the spec
// permits builders to perform), and temporal intervals default to
// [0, +inf).
package expr

import (
	"github.com/pkg/errors"

	"github.com/argus-stl/argus/interval"
)

// ErrEmptyArgs is returned by the n-ary builders when given zero
// arguments; spec §3 requires at least one.
var ErrEmptyArgs = errors.New("n-ary operator requires at least one argument")

// NewAdd builds an n-ary Add, collapsing a single argument to itself.
func NewAdd(args ...NumExpr) (NumExpr, error) {
	if len(args) == 0 {
		return nil, ErrEmptyArgs
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return &Add{Args: args}, nil
}

// NewMul builds an n-ary Mul, collapsing a single argument to itself.
func NewMul(args ...NumExpr) (NumExpr, error) {
	if len(args) == 0 {
		return nil, ErrEmptyArgs
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return &Mul{Args: args}, nil
}

// NewAnd builds an n-ary And, collapsing a single argument to itself.
func NewAnd(args ...BoolExpr) (BoolExpr, error) {
	if len(args) == 0 {
		return nil, ErrEmptyArgs
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return &And{Args: args}, nil
}

// NewOr builds an n-ary Or, collapsing a single argument to itself.
func NewOr(args ...BoolExpr) (BoolExpr, error) {
	if len(args) == 0 {
		return nil, ErrEmptyArgs
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return &Or{Args: args}, nil
}

// NewAlways builds a timed Always node; a nil iv defaults to
// interval.Unbounded.
func NewAlways(x BoolExpr, iv *interval.Interval) *Always {
	if iv == nil {
		return &Always{X: x, Interval: interval.Unbounded}
	}
	return &Always{X: x, Interval: *iv}
}

// NewEventually builds a timed Eventually node; a nil iv defaults to
// interval.Unbounded.
func NewEventually(x BoolExpr, iv *interval.Interval) *Eventually {
	if iv == nil {
		return &Eventually{X: x, Interval: interval.Unbounded}
	}
	return &Eventually{X: x, Interval: *iv}
}

// NewUntil builds a timed Until node; a nil iv defaults to
// interval.Unbounded.
func NewUntil(lhs, rhs BoolExpr, iv *interval.Interval) *Until {
	if iv == nil {
		return &Until{LHS: lhs, RHS: rhs, Interval: interval.Unbounded}
	}
	return &Until{LHS: lhs, RHS: rhs, Interval: *iv}
}

// Implies builds `a -> b` as `!a || b` (SPEC_FULL supplemented feature
// #1: spec.md's grammar names `->`/`<->` but never gives them AST nodes
// of their own, since the string parser that would otherwise desugar
// them is out of scope here).
func Implies(a, b BoolExpr) BoolExpr {
	or, err := NewOr(&Not{X: a}, b)
	if err != nil {
		// unreachable: NewOr with two arguments never errors.
		panic(err)
	}
	return or
}

// Iff builds `a <-> b` as `(a -> b) && (b -> a)`.
func Iff(a, b BoolExpr) BoolExpr {
	and, err := NewAnd(Implies(a, b), Implies(b, a))
	if err != nil {
		panic(err)
	}
	return and
}

// Package trace implements Argus's named signal collection (spec §3,
// §4.C, component C). A Trace holds heterogeneously-typed signals —
// each variable keeps its own DType and its own sample grid — so lookup
// returns a dtype-tagged handle rather than a concrete Signal[T], letting
// the expression evaluator (semantics) type-check VarX nodes against it
// without a type switch at every call site.
package trace

import (
	"sort"

	"github.com/argus-stl/argus/argerr"
	"github.com/argus-stl/argus/dtype"
	"github.com/argus-stl/argus/signal"
)

// Variable is a dtype-tagged signal stored in a Trace. Exactly one of
// the four typed fields is populated, matching DType.
type Variable struct {
	DType  dtype.DType
	Bool   signal.Signal[bool]
	Int    signal.Signal[int64]
	UInt   signal.Signal[uint64]
	Float  signal.Signal[float64]
}

// Trace is a mapping from variable name to a Variable (spec §3).
// Signals in a Trace may have different time domains and different
// sample grids; Trace makes no attempt to align them.
type Trace struct {
	vars map[string]Variable
}

// New constructs a Trace from a name->Variable map, copying the map so
// later caller mutation of the argument does not affect the Trace.
func New(vars map[string]Variable) Trace {
	cp := make(map[string]Variable, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return Trace{vars: cp}
}

// Get looks up a variable by name, failing with argerr.UnknownVariable
// if absent.
func (t Trace) Get(name string) (Variable, error) {
	v, ok := t.vars[name]
	if !ok {
		return Variable{}, argerr.NewUnknownVariable(name)
	}
	return v, nil
}

// Names returns the sorted variable names in the trace.
func (t Trace) Names() []string {
	names := make([]string, 0, len(t.vars))
	for k := range t.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// BoolVar constructs a Variable wrapping a bool signal.
func BoolVar(s signal.Signal[bool]) Variable { return Variable{DType: dtype.Bool, Bool: s} }

// IntVar constructs a Variable wrapping an int64 signal.
func IntVar(s signal.Signal[int64]) Variable { return Variable{DType: dtype.Int64, Int: s} }

// UIntVar constructs a Variable wrapping a uint64 signal.
func UIntVar(s signal.Signal[uint64]) Variable { return Variable{DType: dtype.UInt64, UInt: s} }

// FloatVar constructs a Variable wrapping a float64 signal.
func FloatVar(s signal.Signal[float64]) Variable { return Variable{DType: dtype.Float64, Float: s} }

// Package argerr defines Argus's structured error taxonomy (spec §7).
//
// Every fallible operation in the core returns one of these kinds rather
// than panicking; nothing in the core ever produces an out-of-band panic
// for an expected failure mode. The shape — a closed enum of kinds plus a
// struct of named fields and a formatted message — follows the teacher's
// own error type; the call-stack bookkeeping it hand-rolled is replaced
// here with github.com/pkg/errors wrapping.
package argerr

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Kind enumerates the error taxonomy of spec §7.
type Kind string

const (
	// ParseError is produced by the (out-of-scope) string parser; the
	// kind is part of the taxonomy so host code can switch on it
	// uniformly even though this module never constructs one itself.
	ParseError Kind = "ParseError"

	InvalidSamples    Kind = "InvalidSamples"
	NonMonotonic      Kind = "NonMonotonic"
	NaNSample         Kind = "NaNSample"
	UnknownVariable   Kind = "UnknownVariable"
	TypeMismatch      Kind = "TypeMismatch"
	OutOfDomain       Kind = "OutOfDomain"
	EmptyIntersection Kind = "EmptyIntersection"
	InvalidInterval   Kind = "InvalidInterval"
)

// Error is a structured Argus error. It implements the error interface
// and supports errors.Cause/errors.Unwrap via an embedded cause.
type Error struct {
	Kind    Kind
	Message string
	// Fields carries the structured context named by spec §7 for each
	// kind (a variable name, a time, an interval, two domains, ...).
	Fields map[string]interface{}
	cause  error
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s %s", e.Kind, e.Message, formatFields(e.Fields))
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Cause exposes the wrapped cause for github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.cause }

func formatFields(fields map[string]interface{}) string {
	s := "("
	first := true
	for _, k := range []string{"variable", "time", "interval", "domain", "other_domain", "kind", "expected", "got"} {
		v, ok := fields[k]
		if !ok {
			continue
		}
		if !first {
			s += ", "
		}
		first = false
		s += fmt.Sprintf("%s=%v", k, v)
	}
	s += ")"
	return s
}

func new(kind Kind, message string, fields map[string]interface{}) *Error {
	return &Error{Kind: kind, Message: message, Fields: fields}
}

// Wrap attaches a lower-level cause to an Argus error, using pkg/errors
// so %+v on the result renders a stack trace from the wrap site.
func (e *Error) Wrap(cause error) *Error {
	e.cause = errors.WithStack(cause)
	return e
}

// NewInvalidSamples reports a from_samples call whose input violated the
// Signal invariants of spec §3 (non-increasing times, non-finite times,
// or NaN values).
func NewInvalidSamples(reason string) *Error {
	return new(InvalidSamples, reason, nil)
}

// NewNonMonotonic reports a push() whose timestamp did not strictly
// exceed the signal's last recorded time.
func NewNonMonotonic(t, lastT float64) *Error {
	return new(NonMonotonic, "timestamp does not strictly increase", map[string]interface{}{
		"time": humanize.Ftoa(t), "other_domain": humanize.Ftoa(lastT),
	})
}

// NewNaNSample reports a NaN value offered to a float signal.
func NewNaNSample(t float64) *Error {
	return new(NaNSample, "NaN is not a valid sample value", map[string]interface{}{
		"time": humanize.Ftoa(t),
	})
}

// NewUnknownVariable reports a Trace lookup miss during type-checking or
// evaluation.
func NewUnknownVariable(name string) *Error {
	return new(UnknownVariable, "variable not found in trace", map[string]interface{}{
		"variable": name,
	})
}

// NewTypeMismatch reports a VarX node whose expected kind disagrees with
// the bound signal's declared dtype.
func NewTypeMismatch(name, expected, got string) *Error {
	return new(TypeMismatch, "variable kind disagrees with expected operator kind", map[string]interface{}{
		"variable": name, "expected": expected, "got": got,
	})
}

// NewOutOfDomain reports an at(t) query outside [start, end] of a
// Sampled signal.
func NewOutOfDomain(t, start, end float64) *Error {
	return new(OutOfDomain, "query time outside signal domain", map[string]interface{}{
		"time": humanize.Ftoa(t),
		"domain": fmt.Sprintf("[%s, %s]", humanize.Ftoa(start), humanize.Ftoa(end)),
	})
}

// NewEmptyIntersection reports a pointwise binary operator applied to
// two signals whose time domains do not overlap.
func NewEmptyIntersection(aDomain, bDomain string) *Error {
	return new(EmptyIntersection, "signal time domains do not intersect", map[string]interface{}{
		"domain": aDomain, "other_domain": bDomain,
	})
}

// NewInvalidInterval reports an interval with a < 0, a > b, or a
// non-finite lower bound.
func NewInvalidInterval(a, b float64) *Error {
	return new(InvalidInterval, "interval bounds are invalid", map[string]interface{}{
		"interval": fmt.Sprintf("[%s, %s]", humanize.Ftoa(a), humanize.Ftoa(b)),
	})
}

// Is reports whether err is an Argus error of the given kind, unwrapping
// through any pkg/errors wrapping.
func Is(err error, kind Kind) bool {
	for err != nil {
		if ae, ok := err.(*Error); ok {
			return ae.Kind == kind
		}
		cause := errors.Unwrap(err)
		if cause == err {
			return false
		}
		err = cause
	}
	return false
}

package argerr

import (
	"errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := NewUnknownVariable("x")
	if err.Kind != UnknownVariable {
		t.Errorf("Kind = %v, want UnknownVariable", err.Kind)
	}
	want := "UnknownVariable: variable not found in trace (variable=x)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorFormattingNoFields(t *testing.T) {
	err := NewInvalidSamples("times must strictly increase")
	want := "InvalidSamples: times must strictly increase"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapAndCause(t *testing.T) {
	base := errors.New("boom")
	err := NewOutOfDomain(5, 0, 1).Wrap(base)
	if errors.Unwrap(err.Cause()) != base && err.Cause().Error() != base.Error() {
		t.Errorf("Cause() did not surface the wrapped error: %v", err.Cause())
	}
}

func TestIs(t *testing.T) {
	err := NewNonMonotonic(1, 2)
	if !Is(err, NonMonotonic) {
		t.Error("Is(err, NonMonotonic) should be true")
	}
	if Is(err, OutOfDomain) {
		t.Error("Is(err, OutOfDomain) should be false")
	}
	if Is(nil, NonMonotonic) {
		t.Error("Is(nil, ...) should be false")
	}
	if Is(errors.New("plain"), NonMonotonic) {
		t.Error("Is on a non-Argus error should be false")
	}
}

func TestIsIgnoresPlainErrorWithArgusText(t *testing.T) {
	inner := NewNaNSample(3)
	wrapped := errors.New("context: " + inner.Error())
	if Is(wrapped, NaNSample) {
		t.Error("Is should not match through an unrelated plain-wrapped error")
	}
}

package signal

import (
	"math"
	"testing"

	"github.com/kr/pretty"

	"github.com/argus-stl/argus/argerr"
)

func TestEmptyAndConstant(t *testing.T) {
	e := Empty[float64]()
	if !e.IsEmpty() {
		t.Error("Empty() should report IsEmpty")
	}
	if _, err := e.At(0); !argerr.Is(err, argerr.OutOfDomain) {
		t.Errorf("Empty().At(0) = %v, want OutOfDomain", err)
	}

	c := Const(7.0)
	if c.Kind() != KindConstant {
		t.Errorf("Const().Kind() = %v, want KindConstant", c.Kind())
	}
	for _, tt := range []float64{-100, 0, 100} {
		v, err := c.At(tt)
		if err != nil {
			t.Fatalf("Const().At(%v) returned error: %v", tt, err)
		}
		if v != 7.0 {
			t.Errorf("Const().At(%v) = %v, want 7", tt, v)
		}
	}
}

func TestFromSamplesValidatesMonotonic(t *testing.T) {
	_, err := FromSamples([]Sample[float64]{{T: 1, V: 1}, {T: 1, V: 2}}, ConstantHold)
	if !argerr.Is(err, argerr.InvalidSamples) {
		t.Errorf("non-increasing times: got %v, want InvalidSamples", err)
	}
}

func TestFromSamplesRejectsLinearForNonFloat(t *testing.T) {
	_, err := FromSamples([]Sample[int64]{{T: 0, V: 1}}, Linear)
	if !argerr.Is(err, argerr.InvalidSamples) {
		t.Errorf("Linear int64: got %v, want InvalidSamples", err)
	}
}

func TestFromSamplesRejectsNaN(t *testing.T) {
	_, err := FromSamples([]Sample[float64]{{T: 0, V: math.NaN()}}, Linear)
	if !argerr.Is(err, argerr.NaNSample) {
		t.Errorf("NaN sample: got %v, want NaNSample", err)
	}
}

func TestAtExactSampleNoInterpolationArtifact(t *testing.T) {
	s, err := FromSamples([]Sample[float64]{{T: 0, V: 5}, {T: 1, V: -1}, {T: 2, V: 5}}, Linear)
	if err != nil {
		t.Fatalf("FromSamples: %v", err)
	}
	for _, tt := range []struct {
		t float64
		v float64
	}{{0, 5}, {1, -1}, {2, 5}} {
		v, err := s.At(tt.t)
		if err != nil {
			t.Fatalf("At(%v): %v", tt.t, err)
		}
		if v != tt.v {
			t.Errorf("At(%v) = %v, want %v", tt.t, v, tt.v)
		}
	}
}

func TestAtLinearInterpolation(t *testing.T) {
	s, _ := FromSamples([]Sample[float64]{{T: 0, V: 0}, {T: 2, V: 4}}, Linear)
	v, err := s.At(1)
	if err != nil {
		t.Fatalf("At(1): %v", err)
	}
	if v != 2 {
		t.Errorf("At(1) = %v, want 2; signal was %# v", v, pretty.Formatter(s))
	}
}

func TestAtConstantHold(t *testing.T) {
	s, _ := FromSamples([]Sample[bool]{{T: 0, V: true}, {T: 2, V: false}}, ConstantHold)
	v, err := s.At(1)
	if err != nil {
		t.Fatalf("At(1): %v", err)
	}
	if v != true {
		t.Errorf("At(1) = %v, want true (constant-hold of the left sample)", v)
	}
}

func TestAtOutOfDomain(t *testing.T) {
	s, _ := FromSamples([]Sample[float64]{{T: 0, V: 0}, {T: 2, V: 4}}, Linear)
	if _, err := s.At(-1); !argerr.Is(err, argerr.OutOfDomain) {
		t.Errorf("At(-1) = %v, want OutOfDomain", err)
	}
	if _, err := s.At(3); !argerr.Is(err, argerr.OutOfDomain) {
		t.Errorf("At(3) = %v, want OutOfDomain", err)
	}
}

func TestPushAppendsAndValidates(t *testing.T) {
	s := Empty[int64]()
	s, err := s.Push(0, 1)
	if err != nil {
		t.Fatalf("Push on Empty: %v", err)
	}
	s, err = s.Push(1, 2)
	if err != nil {
		t.Fatalf("Push appending: %v", err)
	}
	if len(s.Samples()) != 2 {
		t.Fatalf("Samples() len = %d, want 2", len(s.Samples()))
	}
	if _, err := s.Push(1, 3); !argerr.Is(err, argerr.NonMonotonic) {
		t.Errorf("Push non-monotonic: got %v, want NonMonotonic", err)
	}
}

func TestDomainKinds(t *testing.T) {
	if _, _, k := Empty[float64]().Domain(); k != DomainEmpty {
		t.Errorf("Empty Domain kind = %v, want DomainEmpty", k)
	}
	if _, _, k := Const(1.0).Domain(); k != DomainUnbounded {
		t.Errorf("Const Domain kind = %v, want DomainUnbounded", k)
	}
	s, _ := FromSamples([]Sample[float64]{{T: 0, V: 0}, {T: 1, V: 1}}, Linear)
	start, end, k := s.Domain()
	if k != DomainBounded || start != 0 || end != 1 {
		t.Errorf("Sampled Domain = (%v, %v, %v), want (0, 1, DomainBounded)", start, end, k)
	}
}

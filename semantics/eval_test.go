package semantics

import (
	"math"
	"testing"

	"github.com/argus-stl/argus/argerr"
	"github.com/argus-stl/argus/expr"
	"github.com/argus-stl/argus/interval"
	"github.com/argus-stl/argus/signal"
	"github.com/argus-stl/argus/trace"
)

func sampledFloat(samples ...signal.Sample[float64]) signal.Signal[float64] {
	s, err := signal.FromSamples(samples, signal.Linear)
	if err != nil {
		panic(err)
	}
	return s
}

func sampledBool(samples ...signal.Sample[bool]) signal.Signal[bool] {
	s, err := signal.FromSamples(samples, signal.ConstantHold)
	if err != nil {
		panic(err)
	}
	return s
}

func TestEvalBoolAndRobustOnComparison(t *testing.T) {
	tr := trace.New(map[string]trace.Variable{
		"x": trace.FloatVar(sampledFloat(
			signal.Sample[float64]{T: 0, V: 0},
			signal.Sample[float64]{T: 2, V: 4},
		)),
	})
	phi := &expr.Cmp{Op: expr.Gt, LHS: &expr.VarFloat{Name: "x"}, RHS: &expr.ConstFloat{Value: 2}}

	b, err := EvalBool(phi, tr)
	if err != nil {
		t.Fatalf("EvalBool: %v", err)
	}
	v, _ := b.At(0)
	if v != false {
		t.Errorf("x>2 at t=0 (x=0) = %v, want false", v)
	}
	v, _ = b.At(2)
	if v != true {
		t.Errorf("x>2 at t=2 (x=4) = %v, want true", v)
	}

	r, err := EvalRobust(phi, tr)
	if err != nil {
		t.Fatalf("EvalRobust: %v", err)
	}
	rv, _ := r.At(0)
	if rv != -2 {
		t.Errorf("robust(x>2) at t=0 = %v, want -2 (0-2)", rv)
	}
}

func TestEvalLogicalOps(t *testing.T) {
	tr := trace.New(map[string]trace.Variable{
		"p": trace.BoolVar(signal.Const(true)),
		"q": trace.BoolVar(signal.Const(false)),
	})
	and, _ := expr.NewAnd(&expr.VarBool{Name: "p"}, &expr.VarBool{Name: "q"})
	b, err := EvalBool(and, tr)
	if err != nil {
		t.Fatalf("EvalBool: %v", err)
	}
	if b.ConstValue() != false {
		t.Errorf("p && q = %v, want false", b.ConstValue())
	}

	r, err := EvalRobust(and, tr)
	if err != nil {
		t.Fatalf("EvalRobust: %v", err)
	}
	if r.ConstValue() != math.Inf(-1) {
		t.Errorf("robust(p && q) = %v, want -Inf (min(+Inf,-Inf))", r.ConstValue())
	}
}

func TestEvalAlwaysEventually(t *testing.T) {
	tr := trace.New(map[string]trace.Variable{
		"x": trace.FloatVar(sampledFloat(
			signal.Sample[float64]{T: 0, V: 5},
			signal.Sample[float64]{T: 1, V: -1},
			signal.Sample[float64]{T: 2, V: 5},
		)),
	})
	iv, _ := interval.New(0, 2)
	phi := &expr.Cmp{Op: expr.Gt, LHS: &expr.VarFloat{Name: "x"}, RHS: &expr.ConstFloat{Value: 0}}
	always := expr.NewAlways(phi, &iv)

	b, err := EvalBool(always, tr)
	if err != nil {
		t.Fatalf("EvalBool: %v", err)
	}
	v, _ := b.At(0)
	if v != false {
		t.Errorf("Always[0,2](x>0) at t=0 = %v, want false (x dips to -1 at t=1)", v)
	}

	eventually := expr.NewEventually(phi, &iv)
	e, err := EvalBool(eventually, tr)
	if err != nil {
		t.Fatalf("EvalBool: %v", err)
	}
	v, _ = e.At(0)
	if v != true {
		t.Errorf("Eventually[0,2](x>0) at t=0 = %v, want true", v)
	}
}

func TestEvalUnknownVariable(t *testing.T) {
	tr := trace.New(map[string]trace.Variable{})
	phi := &expr.VarBool{Name: "missing"}
	if _, err := EvalBool(phi, tr); !argerr.Is(err, argerr.UnknownVariable) {
		t.Errorf("EvalBool(missing) = %v, want UnknownVariable", err)
	}
	if _, err := EvalRobust(phi, tr); !argerr.Is(err, argerr.UnknownVariable) {
		t.Errorf("EvalRobust(missing) = %v, want UnknownVariable", err)
	}
}

func TestEvalNumericPromotionAcrossDTypes(t *testing.T) {
	tr := trace.New(map[string]trace.Variable{
		"n": trace.IntVar(signal.Const(int64(3))),
	})
	phi := &expr.Cmp{Op: expr.Eq, LHS: &expr.VarInt{Name: "n"}, RHS: &expr.ConstFloat{Value: 3}}
	b, err := EvalBool(phi, tr)
	if err != nil {
		t.Fatalf("EvalBool: %v", err)
	}
	if b.ConstValue() != true {
		t.Errorf("n==3.0 (n is Int64(3)) = %v, want true", b.ConstValue())
	}
}

func TestEvalNextAndUntil(t *testing.T) {
	tr := trace.New(map[string]trace.Variable{
		"p": trace.BoolVar(sampledBool(
			signal.Sample[bool]{T: 0, V: true},
			signal.Sample[bool]{T: 1, V: false},
			signal.Sample[bool]{T: 2, V: true},
		)),
	})
	next := &expr.Next{X: &expr.VarBool{Name: "p"}}
	b, err := EvalBool(next, tr)
	if err != nil {
		t.Fatalf("EvalBool(Next): %v", err)
	}
	v, _ := b.At(0)
	if v != false {
		t.Errorf("X(p) at t=0 = %v, want false (p(1)=false)", v)
	}

	until := expr.NewUntil(&expr.VarBool{Name: "p"}, &expr.VarBool{Name: "p"}, nil)
	u, err := EvalBool(until, tr)
	if err != nil {
		t.Fatalf("EvalBool(Until): %v", err)
	}
	if len(u.Samples()) == 0 && u.Kind() != signal.KindConstant {
		t.Error("p U p should produce a defined signal")
	}
}

func TestEvalRobustConstBoolSignConvention(t *testing.T) {
	tr := trace.New(map[string]trace.Variable{})
	tv, err := EvalRobust(&expr.ConstBool{Value: true}, tr)
	if err != nil {
		t.Fatalf("EvalRobust: %v", err)
	}
	if tv.ConstValue() != math.Inf(1) {
		t.Errorf("robust(true) = %v, want +Inf", tv.ConstValue())
	}
	fv, err := EvalRobust(&expr.ConstBool{Value: false}, tr)
	if err != nil {
		t.Fatalf("EvalRobust: %v", err)
	}
	if fv.ConstValue() != math.Inf(-1) {
		t.Errorf("robust(false) = %v, want -Inf", fv.ConstValue())
	}
}

func TestConsistencyBoolEqualsRobustPositive(t *testing.T) {
	tr := trace.New(map[string]trace.Variable{
		"x": trace.FloatVar(sampledFloat(
			signal.Sample[float64]{T: 0, V: -3},
			signal.Sample[float64]{T: 1, V: 0},
			signal.Sample[float64]{T: 2, V: 3},
		)),
	})
	phi := &expr.Cmp{Op: expr.Gt, LHS: &expr.VarFloat{Name: "x"}, RHS: &expr.ConstFloat{Value: 0}}
	b, err := EvalBool(phi, tr)
	if err != nil {
		t.Fatalf("EvalBool: %v", err)
	}
	r, err := EvalRobust(phi, tr)
	if err != nil {
		t.Fatalf("EvalRobust: %v", err)
	}
	for _, tt := range []float64{0, 1, 2} {
		bv, _ := b.At(tt)
		rv, err := r.At(tt)
		if err != nil {
			t.Fatalf("r.At(%v): %v", tt, err)
		}
		want := rv > 0
		if bv != want {
			t.Errorf("at t=%v: bool=%v, robust=%v (robust>0=%v) — qualitative/robust consistency violated", tt, bv, rv, want)
		}
	}
}

package expr

import (
	"testing"

	"github.com/argus-stl/argus/argerr"
	"github.com/argus-stl/argus/signal"
	"github.com/argus-stl/argus/trace"
)

func testTrace() trace.Trace {
	return trace.New(map[string]trace.Variable{
		"p": trace.BoolVar(signal.Const(true)),
		"x": trace.FloatVar(signal.Const(1.0)),
		"n": trace.IntVar(signal.Const(int64(1))),
	})
}

func TestCheckSuccess(t *testing.T) {
	tr := testTrace()
	cmp := &Cmp{Op: Lt, LHS: &VarFloat{Name: "x"}, RHS: &ConstFloat{Value: 2}}
	e := &And{Args: []BoolExpr{&VarBool{Name: "p"}, cmp}}
	if err := Check(e, tr); err != nil {
		t.Fatalf("Check: %v", err)
	}
}

func TestCheckUnknownVariable(t *testing.T) {
	tr := testTrace()
	e := &VarBool{Name: "missing"}
	if err := Check(e, tr); !argerr.Is(err, argerr.UnknownVariable) {
		t.Errorf("Check(missing) = %v, want UnknownVariable", err)
	}
}

func TestCheckTypeMismatch(t *testing.T) {
	tr := testTrace()
	e := &Cmp{Op: Eq, LHS: &VarInt{Name: "x"}, RHS: &ConstInt{Value: 1}}
	if err := Check(e, tr); !argerr.Is(err, argerr.TypeMismatch) {
		t.Errorf("Check with wrong var kind = %v, want TypeMismatch", err)
	}
}

func TestCheckNum(t *testing.T) {
	tr := testTrace()
	e := &Add{Args: []NumExpr{&VarFloat{Name: "x"}, &ConstFloat{Value: 1}}}
	if err := CheckNum(e, tr); err != nil {
		t.Fatalf("CheckNum: %v", err)
	}
}

func TestCheckShortCircuitsOnFirstError(t *testing.T) {
	tr := testTrace()
	e := &And{Args: []BoolExpr{
		&VarBool{Name: "nope"},
		&VarBool{Name: "also-nope"},
	}}
	err := Check(e, tr)
	if !argerr.Is(err, argerr.UnknownVariable) {
		t.Fatalf("Check = %v, want UnknownVariable", err)
	}
}

package semantics

import (
	"context"
	"testing"

	"github.com/argus-stl/argus/argerr"
	"github.com/argus-stl/argus/expr"
	"github.com/argus-stl/argus/signal"
	"github.com/argus-stl/argus/trace"
)

func TestEvalBatchSuccessAndCorrelation(t *testing.T) {
	tr := trace.New(map[string]trace.Variable{
		"p": trace.BoolVar(signal.Const(true)),
	})
	reqs := []BatchRequest{
		{ID: "a", Expr: &expr.VarBool{Name: "p"}, Trace: tr},
		{ID: "b", Expr: &expr.Not{X: &expr.VarBool{Name: "p"}}, Trace: tr},
	}
	results, err := EvalBatch(context.Background(), reqs)
	if err != nil {
		t.Fatalf("EvalBatch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("results[0].Err = %v", results[0].Err)
	}
	if results[0].Bool.ConstValue() != true {
		t.Errorf("results[0].Bool = %v, want true", results[0].Bool.ConstValue())
	}
	if results[1].Bool.ConstValue() != false {
		t.Errorf("results[1].Bool = %v, want false", results[1].Bool.ConstValue())
	}
	if results[0].RunID == "" || results[0].RunID != results[1].RunID {
		t.Errorf("RunID should correlate every result in the same batch: %q vs %q", results[0].RunID, results[1].RunID)
	}
}

func TestEvalBatchIsolatesPerItemFailure(t *testing.T) {
	tr := trace.New(map[string]trace.Variable{
		"p": trace.BoolVar(signal.Const(true)),
	})
	reqs := []BatchRequest{
		{ID: "ok", Expr: &expr.VarBool{Name: "p"}, Trace: tr},
		{ID: "bad", Expr: &expr.VarBool{Name: "missing"}, Trace: tr},
	}
	results, err := EvalBatch(context.Background(), reqs)
	if err != nil {
		t.Fatalf("EvalBatch: %v", err)
	}
	if results[0].Err != nil {
		t.Errorf("results[0] (ok) should not have failed: %v", results[0].Err)
	}
	if !argerr.Is(results[1].Err, argerr.UnknownVariable) {
		t.Errorf("results[1] (bad) = %v, want UnknownVariable", results[1].Err)
	}
	if results[0].ID != "ok" || results[1].ID != "bad" {
		t.Errorf("batch results should preserve request order/ID: %q, %q", results[0].ID, results[1].ID)
	}
}

func TestEvalBatchEmpty(t *testing.T) {
	results, err := EvalBatch(context.Background(), nil)
	if err != nil {
		t.Fatalf("EvalBatch(nil): %v", err)
	}
	if len(results) != 0 {
		t.Errorf("EvalBatch(nil) = %v, want empty", results)
	}
}

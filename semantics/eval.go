// Package semantics implements Argus's two recursive evaluators (spec
// §4.G, component G): EvalBool, the qualitative driver producing a
// Signal[bool], and EvalRobust, the quantitative driver producing a
// signed-margin Signal[float64]. Both are a single AST walk over the
// same BoolExpr tree, sharing the signal algebra (sigalg) and temporal
// kernels (temporal) and differing only in which combining function each
// node applies — the same "two visitors over one AST" shape the
// checker (expr.Check) and folder (expr.Fold*) already use.
//
// Per spec §4.G, every NumExpr sub-evaluation flattens to Signal[float64]
// regardless of whether the underlying Trace variable is Int64, UInt64,
// or Float64 ("Numeric ops ... result is a FloatSignal after
// promotion"); the distinct integer DTypes only matter for expr.Check's
// type-check pass and expr.FoldNum's constant folding, not for evaluation
// itself.
package semantics

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/argus-stl/argus/expr"
	"github.com/argus-stl/argus/sigalg"
	"github.com/argus-stl/argus/signal"
	"github.com/argus-stl/argus/temporal"
	"github.com/argus-stl/argus/trace"
)

// Numeric is the set of scalar kinds toFloat can widen to float64: the
// two integer DTypes plus Float64 itself, expressed via the ecosystem's
// own numeric-tower constraints rather than a hand-rolled union (Bool
// never reaches toFloat, so the narrower constraints.Integer|Float
// union is a better fit here than signal.Scalar's four-way set).
type Numeric interface {
	constraints.Integer | constraints.Float
}

// toFloat widens a Signal[T] to Signal[float64], preserving Kind and
// interpolation policy.
func toFloat[T Numeric](s signal.Signal[T]) signal.Signal[float64] {
	switch s.Kind() {
	case signal.KindEmpty:
		return signal.Empty[float64]()
	case signal.KindConstant:
		return signal.Const(float64(s.ConstValue()))
	default:
		in := s.Samples()
		out := make([]signal.Sample[float64], len(in))
		for i, sm := range in {
			out[i] = signal.Sample[float64]{T: sm.T, V: float64(sm.V)}
		}
		policy := signal.ConstantHold
		if s.Interp() == signal.Linear {
			policy = signal.Linear
		}
		res, _ := signal.FromSamples(out, policy)
		return res
	}
}

// boolToRobust maps a qualitative Bool signal onto its robust
// representation: true -> +Inf, false -> -Inf (spec §4.F's sign
// convention for "the robust extremum on constant-hold Boolean
// signals"; DESIGN.md's Open Question decision applies this convention
// uniformly to any Bool-typed Trace variable read by the robust driver).
func boolToRobust(s signal.Signal[bool]) signal.Signal[float64] {
	switch s.Kind() {
	case signal.KindEmpty:
		return signal.Empty[float64]()
	case signal.KindConstant:
		if s.ConstValue() {
			return signal.Const(math.Inf(1))
		}
		return signal.Const(math.Inf(-1))
	default:
		in := s.Samples()
		out := make([]signal.Sample[float64], len(in))
		for i, sm := range in {
			v := math.Inf(-1)
			if sm.V {
				v = math.Inf(1)
			}
			out[i] = signal.Sample[float64]{T: sm.T, V: v}
		}
		res, _ := signal.FromSamples(out, signal.ConstantHold)
		return res
	}
}

// numEval is the shared NumVisitor both drivers use for a Cmp node's
// operands: numeric evaluation doesn't differ between the qualitative
// and robust semantics (spec §4.G), only the comparison built on top of
// it does.
type numEval struct {
	tr  trace.Trace
	err error
}

func evalNum(e expr.NumExpr, tr trace.Trace) (signal.Signal[float64], error) {
	v := &numEval{tr: tr}
	res := e.Accept(v).(signal.Signal[float64])
	return res, v.err
}

func (e *numEval) fail(err error) signal.Signal[float64] {
	if e.err == nil {
		e.err = err
	}
	return signal.Empty[float64]()
}

func (e *numEval) VisitConstInt(n *expr.ConstInt) interface{} {
	return signal.Const(float64(n.Value))
}
func (e *numEval) VisitConstUInt(n *expr.ConstUInt) interface{} {
	return signal.Const(float64(n.Value))
}
func (e *numEval) VisitConstFloat(n *expr.ConstFloat) interface{} {
	return signal.Const(n.Value)
}

func (e *numEval) VisitVarInt(n *expr.VarInt) interface{} {
	v, err := e.tr.Get(n.Name)
	if err != nil {
		return e.fail(err)
	}
	return toFloat(v.Int)
}

func (e *numEval) VisitVarUInt(n *expr.VarUInt) interface{} {
	v, err := e.tr.Get(n.Name)
	if err != nil {
		return e.fail(err)
	}
	return toFloat(v.UInt)
}

func (e *numEval) VisitVarFloat(n *expr.VarFloat) interface{} {
	v, err := e.tr.Get(n.Name)
	if err != nil {
		return e.fail(err)
	}
	return v.Float
}

func (e *numEval) VisitNegate(n *expr.Negate) interface{} {
	x := n.X.Accept(e).(signal.Signal[float64])
	if e.err != nil {
		return signal.Empty[float64]()
	}
	return sigalg.NegateF(x)
}

func (e *numEval) VisitAbs(n *expr.Abs) interface{} {
	x := n.X.Accept(e).(signal.Signal[float64])
	if e.err != nil {
		return signal.Empty[float64]()
	}
	return sigalg.AbsF(x)
}

func (e *numEval) VisitAdd(n *expr.Add) interface{} {
	acc := n.Args[0].Accept(e).(signal.Signal[float64])
	for _, a := range n.Args[1:] {
		if e.err != nil {
			break
		}
		v := a.Accept(e).(signal.Signal[float64])
		if e.err != nil {
			break
		}
		nv, err := sigalg.AddF(acc, v)
		if err != nil {
			return e.fail(err)
		}
		acc = nv
	}
	return acc
}

func (e *numEval) VisitMul(n *expr.Mul) interface{} {
	acc := n.Args[0].Accept(e).(signal.Signal[float64])
	for _, a := range n.Args[1:] {
		if e.err != nil {
			break
		}
		v := a.Accept(e).(signal.Signal[float64])
		if e.err != nil {
			break
		}
		nv, err := sigalg.MulF(acc, v)
		if err != nil {
			return e.fail(err)
		}
		acc = nv
	}
	return acc
}

func (e *numEval) VisitDiv(n *expr.Div) interface{} {
	num := n.Num.Accept(e).(signal.Signal[float64])
	if e.err != nil {
		return signal.Empty[float64]()
	}
	den := n.Den.Accept(e).(signal.Signal[float64])
	if e.err != nil {
		return signal.Empty[float64]()
	}
	res, err := sigalg.DivF(num, den)
	if err != nil {
		return e.fail(err)
	}
	return res
}

// ---- Qualitative driver ----

type boolEvaluator struct {
	tr      trace.Trace
	err     error
	horizon temporal.Horizon
}

func (e *boolEvaluator) fail(err error) signal.Signal[bool] {
	if e.err == nil {
		e.err = err
	}
	return signal.Empty[bool]()
}

func (e *boolEvaluator) numOf(n expr.NumExpr) signal.Signal[float64] {
	v, err := evalNum(n, e.tr)
	if err != nil {
		e.err = err
		return signal.Empty[float64]()
	}
	return v
}

func (e *boolEvaluator) VisitConstBool(n *expr.ConstBool) interface{} {
	return signal.Const(n.Value)
}

func (e *boolEvaluator) VisitVarBool(n *expr.VarBool) interface{} {
	v, err := e.tr.Get(n.Name)
	if err != nil {
		return e.fail(err)
	}
	return v.Bool
}

func (e *boolEvaluator) VisitCmp(n *expr.Cmp) interface{} {
	lhs := e.numOf(n.LHS)
	rhs := e.numOf(n.RHS)
	if e.err != nil {
		return signal.Empty[bool]()
	}
	res, err := sigalg.Compare(n.Op, lhs, rhs)
	if err != nil {
		return e.fail(err)
	}
	return res
}

func (e *boolEvaluator) VisitNot(n *expr.Not) interface{} {
	x := n.X.Accept(e).(signal.Signal[bool])
	if e.err != nil {
		return signal.Empty[bool]()
	}
	return sigalg.NotBool(x)
}

func (e *boolEvaluator) VisitAnd(n *expr.And) interface{} {
	acc := n.Args[0].Accept(e).(signal.Signal[bool])
	for _, a := range n.Args[1:] {
		if e.err != nil {
			break
		}
		v := a.Accept(e).(signal.Signal[bool])
		if e.err != nil {
			break
		}
		nv, err := sigalg.AndBool(acc, v)
		if err != nil {
			return e.fail(err)
		}
		acc = nv
	}
	return acc
}

func (e *boolEvaluator) VisitOr(n *expr.Or) interface{} {
	acc := n.Args[0].Accept(e).(signal.Signal[bool])
	for _, a := range n.Args[1:] {
		if e.err != nil {
			break
		}
		v := a.Accept(e).(signal.Signal[bool])
		if e.err != nil {
			break
		}
		nv, err := sigalg.OrBool(acc, v)
		if err != nil {
			return e.fail(err)
		}
		acc = nv
	}
	return acc
}

func (e *boolEvaluator) VisitNext(n *expr.Next) interface{} {
	x := n.X.Accept(e).(signal.Signal[bool])
	if e.err != nil {
		return signal.Empty[bool]()
	}
	res, err := temporal.Next(x)
	if err != nil {
		return e.fail(err)
	}
	return res
}

func (e *boolEvaluator) VisitAlways(n *expr.Always) interface{} {
	x := n.X.Accept(e).(signal.Signal[bool])
	if e.err != nil {
		return signal.Empty[bool]()
	}
	res, err := temporal.AlwaysBool(x, n.Interval, e.horizon)
	if err != nil {
		return e.fail(err)
	}
	return res
}

func (e *boolEvaluator) VisitEventually(n *expr.Eventually) interface{} {
	x := n.X.Accept(e).(signal.Signal[bool])
	if e.err != nil {
		return signal.Empty[bool]()
	}
	res, err := temporal.EventuallyBool(x, n.Interval, e.horizon)
	if err != nil {
		return e.fail(err)
	}
	return res
}

func (e *boolEvaluator) VisitUntil(n *expr.Until) interface{} {
	lhs := n.LHS.Accept(e).(signal.Signal[bool])
	if e.err != nil {
		return signal.Empty[bool]()
	}
	rhs := n.RHS.Accept(e).(signal.Signal[bool])
	if e.err != nil {
		return signal.Empty[bool]()
	}
	res, err := temporal.UntilBool(lhs, rhs, n.Interval, e.horizon)
	if err != nil {
		return e.fail(err)
	}
	return res
}

// EvalBool evaluates phi's qualitative (Boolean) semantics over tr (spec
// §4.G), first running expr.Check so every VarX is resolved against a
// compatibly-typed Trace signal before any signal algebra runs.
func EvalBool(phi expr.BoolExpr, tr trace.Trace) (signal.Signal[bool], error) {
	return EvalBoolHorizon(phi, tr, temporal.ShrinkDomain)
}

// EvalBoolHorizon is EvalBool with an explicit Horizon policy for
// unbounded temporal operators (SPEC_FULL supplemented feature #5).
func EvalBoolHorizon(phi expr.BoolExpr, tr trace.Trace, horizon temporal.Horizon) (signal.Signal[bool], error) {
	if err := expr.Check(phi, tr); err != nil {
		return signal.Signal[bool]{}, err
	}
	ev := &boolEvaluator{tr: tr, horizon: horizon}
	res := phi.Accept(ev).(signal.Signal[bool])
	if ev.err != nil {
		return signal.Signal[bool]{}, ev.err
	}
	return res, nil
}

// ---- Robust (quantitative) driver ----

type robustEvaluator struct {
	tr      trace.Trace
	err     error
	horizon temporal.Horizon
}

func (e *robustEvaluator) fail(err error) signal.Signal[float64] {
	if e.err == nil {
		e.err = err
	}
	return signal.Empty[float64]()
}

func (e *robustEvaluator) numOf(n expr.NumExpr) signal.Signal[float64] {
	v, err := evalNum(n, e.tr)
	if err != nil {
		e.err = err
		return signal.Empty[float64]()
	}
	return v
}

func (e *robustEvaluator) VisitConstBool(n *expr.ConstBool) interface{} {
	if n.Value {
		return signal.Const(math.Inf(1))
	}
	return signal.Const(math.Inf(-1))
}

func (e *robustEvaluator) VisitVarBool(n *expr.VarBool) interface{} {
	v, err := e.tr.Get(n.Name)
	if err != nil {
		return e.fail(err)
	}
	return boolToRobust(v.Bool)
}

func (e *robustEvaluator) VisitCmp(n *expr.Cmp) interface{} {
	lhs := e.numOf(n.LHS)
	rhs := e.numOf(n.RHS)
	if e.err != nil {
		return signal.Empty[float64]()
	}
	res, err := sigalg.CompareRobust(n.Op, lhs, rhs)
	if err != nil {
		return e.fail(err)
	}
	return res
}

func (e *robustEvaluator) VisitNot(n *expr.Not) interface{} {
	x := n.X.Accept(e).(signal.Signal[float64])
	if e.err != nil {
		return signal.Empty[float64]()
	}
	return sigalg.NegateF(x)
}

func (e *robustEvaluator) VisitAnd(n *expr.And) interface{} {
	acc := n.Args[0].Accept(e).(signal.Signal[float64])
	for _, a := range n.Args[1:] {
		if e.err != nil {
			break
		}
		v := a.Accept(e).(signal.Signal[float64])
		if e.err != nil {
			break
		}
		nv, err := sigalg.MinF(acc, v)
		if err != nil {
			return e.fail(err)
		}
		acc = nv
	}
	return acc
}

func (e *robustEvaluator) VisitOr(n *expr.Or) interface{} {
	acc := n.Args[0].Accept(e).(signal.Signal[float64])
	for _, a := range n.Args[1:] {
		if e.err != nil {
			break
		}
		v := a.Accept(e).(signal.Signal[float64])
		if e.err != nil {
			break
		}
		nv, err := sigalg.MaxF(acc, v)
		if err != nil {
			return e.fail(err)
		}
		acc = nv
	}
	return acc
}

func (e *robustEvaluator) VisitNext(n *expr.Next) interface{} {
	x := n.X.Accept(e).(signal.Signal[float64])
	if e.err != nil {
		return signal.Empty[float64]()
	}
	res, err := temporal.Next(x)
	if err != nil {
		return e.fail(err)
	}
	return res
}

func (e *robustEvaluator) VisitAlways(n *expr.Always) interface{} {
	x := n.X.Accept(e).(signal.Signal[float64])
	if e.err != nil {
		return signal.Empty[float64]()
	}
	res, err := temporal.AlwaysRobust(x, n.Interval, e.horizon)
	if err != nil {
		return e.fail(err)
	}
	return res
}

func (e *robustEvaluator) VisitEventually(n *expr.Eventually) interface{} {
	x := n.X.Accept(e).(signal.Signal[float64])
	if e.err != nil {
		return signal.Empty[float64]()
	}
	res, err := temporal.EventuallyRobust(x, n.Interval, e.horizon)
	if err != nil {
		return e.fail(err)
	}
	return res
}

func (e *robustEvaluator) VisitUntil(n *expr.Until) interface{} {
	lhs := n.LHS.Accept(e).(signal.Signal[float64])
	if e.err != nil {
		return signal.Empty[float64]()
	}
	rhs := n.RHS.Accept(e).(signal.Signal[float64])
	if e.err != nil {
		return signal.Empty[float64]()
	}
	res, err := temporal.UntilRobust(lhs, rhs, n.Interval, e.horizon)
	if err != nil {
		return e.fail(err)
	}
	return res
}

// EvalRobust evaluates phi's robust (signed-margin) semantics over tr.
func EvalRobust(phi expr.BoolExpr, tr trace.Trace) (signal.Signal[float64], error) {
	return EvalRobustHorizon(phi, tr, temporal.ShrinkDomain)
}

// EvalRobustHorizon is EvalRobust with an explicit Horizon policy.
func EvalRobustHorizon(phi expr.BoolExpr, tr trace.Trace, horizon temporal.Horizon) (signal.Signal[float64], error) {
	if err := expr.Check(phi, tr); err != nil {
		return signal.Signal[float64]{}, err
	}
	ev := &robustEvaluator{tr: tr, horizon: horizon}
	res := phi.Accept(ev).(signal.Signal[float64])
	if ev.err != nil {
		return signal.Signal[float64]{}, ev.err
	}
	return res, nil
}

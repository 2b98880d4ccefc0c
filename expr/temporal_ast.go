package expr

import "github.com/argus-stl/argus/interval"

// Always is the timed G[a,b] operator (spec §3, §4.F). Interval defaults
// to interval.Unbounded when constructed via NewAlways with a nil
// interval.
type Always struct {
	X        BoolExpr
	Interval interval.Interval
}

func (n *Always) Accept(v BoolVisitor) interface{} { return v.VisitAlways(n) }
func (*Always) boolExpr()                          {}

// Eventually is the timed F[a,b] operator, dual of Always.
type Eventually struct {
	X        BoolExpr
	Interval interval.Interval
}

func (n *Eventually) Accept(v BoolVisitor) interface{} { return v.VisitEventually(n) }
func (*Eventually) boolExpr()                          {}

// Until is the timed U[a,b] operator. Interval defaults to
// interval.Unbounded when constructed via NewUntil with a nil interval;
// the evaluator accepts both bounded and unbounded forms directly,
// without rewriting.
type Until struct {
	LHS, RHS BoolExpr
	Interval interval.Interval
}

func (n *Until) Accept(v BoolVisitor) interface{} { return v.VisitUntil(n) }
func (*Until) boolExpr()                          {}

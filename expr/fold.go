// Constant folding (SPEC_FULL supplemented feature #3): a reusable
// standalone AST simplification, rather than relying solely on property
// #5 falling out of the evaluator's Constant/Constant signal-algebra
// case. FoldNum/FoldBool recursively replace subtrees whose every leaf is
// a Const with a single Const node computed analytically.
package expr

import "github.com/argus-stl/argus/dtype"

// FoldNum folds every all-constant NumExpr subtree into a single Const
// node, preserving numeric promotion (spec §3) for mixed-type folds.
func FoldNum(e NumExpr) NumExpr {
	return e.Accept(&numFolder{}).(NumExpr)
}

// FoldBool folds every all-constant BoolExpr subtree, including the
// numeric operands of any Cmp nodes it contains.
func FoldBool(e BoolExpr) BoolExpr {
	return e.Accept(&boolFolder{}).(BoolExpr)
}

// numConst is an intermediate representation for a folded numeric
// constant that remembers which of the three numeric DTypes produced it,
// so folding `1 + 2` (two Int64 consts) yields ConstInt{3} rather than
// silently widening to float.
type numConst struct {
	dt dtype.DType
	i  int64
	u  uint64
	f  float64
}

func asNumConst(e NumExpr) (numConst, bool) {
	switch n := e.(type) {
	case *ConstInt:
		return numConst{dt: dtype.Int64, i: n.Value}, true
	case *ConstUInt:
		return numConst{dt: dtype.UInt64, u: n.Value}, true
	case *ConstFloat:
		return numConst{dt: dtype.Float64, f: n.Value}, true
	default:
		return numConst{}, false
	}
}

func (c numConst) toExpr() NumExpr {
	switch c.dt {
	case dtype.Int64:
		return &ConstInt{Value: c.i}
	case dtype.UInt64:
		return &ConstUInt{Value: c.u}
	default:
		return &ConstFloat{Value: c.f}
	}
}

func (c numConst) asFloat() float64 {
	switch c.dt {
	case dtype.Int64:
		return float64(c.i)
	case dtype.UInt64:
		return float64(c.u)
	default:
		return c.f
	}
}

func (c numConst) asInt() int64 {
	switch c.dt {
	case dtype.Int64:
		return c.i
	case dtype.UInt64:
		return int64(c.u)
	default:
		return int64(c.f)
	}
}

func (c numConst) asUint() uint64 {
	switch c.dt {
	case dtype.Int64:
		return uint64(c.i)
	case dtype.UInt64:
		return c.u
	default:
		return uint64(c.f)
	}
}

// combine applies (fi, fu, ff) under the promotion rule of spec §3.
func combine(a, b numConst, fi func(x, y int64) int64, fu func(x, y uint64) uint64, ff func(x, y float64) float64) numConst {
	dt := dtype.Promote(a.dt, b.dt)
	switch dt {
	case dtype.Int64:
		return numConst{dt: dt, i: fi(a.asInt(), b.asInt())}
	case dtype.UInt64:
		return numConst{dt: dt, u: fu(a.asUint(), b.asUint())}
	default:
		return numConst{dt: dt, f: ff(a.asFloat(), b.asFloat())}
	}
}

type numFolder struct{}

func (f *numFolder) VisitConstInt(n *ConstInt) interface{}     { return NumExpr(n) }
func (f *numFolder) VisitConstUInt(n *ConstUInt) interface{}   { return NumExpr(n) }
func (f *numFolder) VisitConstFloat(n *ConstFloat) interface{} { return NumExpr(n) }
func (f *numFolder) VisitVarInt(n *VarInt) interface{}         { return NumExpr(n) }
func (f *numFolder) VisitVarUInt(n *VarUInt) interface{}       { return NumExpr(n) }
func (f *numFolder) VisitVarFloat(n *VarFloat) interface{}     { return NumExpr(n) }

func (f *numFolder) VisitNegate(n *Negate) interface{} {
	x := n.X.Accept(f).(NumExpr)
	if c, ok := asNumConst(x); ok {
		switch c.dt {
		case dtype.Int64:
			c.i = -c.i
		case dtype.UInt64:
			c.i, c.dt = -int64(c.u), dtype.Int64
		default:
			c.f = -c.f
		}
		return NumExpr(c.toExpr())
	}
	return NumExpr(&Negate{X: x})
}

func (f *numFolder) VisitAbs(n *Abs) interface{} {
	x := n.X.Accept(f).(NumExpr)
	if c, ok := asNumConst(x); ok {
		switch c.dt {
		case dtype.Int64:
			if c.i < 0 {
				c.i = -c.i
			}
		case dtype.UInt64:
			// already non-negative
		default:
			if c.f < 0 {
				c.f = -c.f
			}
		}
		return NumExpr(c.toExpr())
	}
	return NumExpr(&Abs{X: x})
}

func (f *numFolder) VisitAdd(n *Add) interface{} {
	return NumExpr(foldNary(n.Args, f, func(a, b numConst) numConst {
		return combine(a, b,
			func(x, y int64) int64 { return x + y },
			func(x, y uint64) uint64 { return x + y },
			func(x, y float64) float64 { return x + y })
	}, func(args []NumExpr) NumExpr { return &Add{Args: args} }))
}

func (f *numFolder) VisitMul(n *Mul) interface{} {
	return NumExpr(foldNary(n.Args, f, func(a, b numConst) numConst {
		return combine(a, b,
			func(x, y int64) int64 { return x * y },
			func(x, y uint64) uint64 { return x * y },
			func(x, y float64) float64 { return x * y })
	}, func(args []NumExpr) NumExpr { return &Mul{Args: args} }))
}

func (f *numFolder) VisitDiv(n *Div) interface{} {
	num := n.Num.Accept(f).(NumExpr)
	den := n.Den.Accept(f).(NumExpr)
	nc, nok := asNumConst(num)
	dc, dok := asNumConst(den)
	if nok && dok && dc.asFloat() != 0 {
		return NumExpr(combine(nc, dc,
			func(x, y int64) int64 { return x / y },
			func(x, y uint64) uint64 { return x / y },
			func(x, y float64) float64 { return x / y }).toExpr())
	}
	return NumExpr(&Div{Num: num, Den: den})
}

// foldNary folds the args of an n-ary numeric op, collapsing to a single
// Const node when every argument folded to a constant, or rebuilding the
// node with the (partially) folded argument list otherwise.
func foldNary(args []NumExpr, f *numFolder, op func(a, b numConst) numConst, rebuild func([]NumExpr) NumExpr) NumExpr {
	folded := make([]NumExpr, len(args))
	allConst := true
	for i, a := range args {
		folded[i] = a.Accept(f).(NumExpr)
		if _, ok := asNumConst(folded[i]); !ok {
			allConst = false
		}
	}
	if !allConst {
		return rebuild(folded)
	}
	acc, _ := asNumConst(folded[0])
	for _, a := range folded[1:] {
		c, _ := asNumConst(a)
		acc = op(acc, c)
	}
	return acc.toExpr()
}

type boolFolder struct {
	nf numFolder
}

func (f *boolFolder) VisitConstBool(n *ConstBool) interface{} { return BoolExpr(n) }
func (f *boolFolder) VisitVarBool(n *VarBool) interface{}     { return BoolExpr(n) }

func (f *boolFolder) VisitCmp(n *Cmp) interface{} {
	lhs := n.LHS.Accept(&f.nf).(NumExpr)
	rhs := n.RHS.Accept(&f.nf).(NumExpr)
	lc, lok := asNumConst(lhs)
	rc, rok := asNumConst(rhs)
	if lok && rok {
		a, b := lc.asFloat(), rc.asFloat()
		var result bool
		switch n.Op {
		case Lt:
			result = a < b
		case Le:
			result = a <= b
		case Gt:
			result = a > b
		case Ge:
			result = a >= b
		case Eq:
			result = a == b
		case Ne:
			result = a != b
		}
		return BoolExpr(&ConstBool{Value: result})
	}
	return BoolExpr(&Cmp{Op: n.Op, LHS: lhs, RHS: rhs})
}

func (f *boolFolder) VisitNot(n *Not) interface{} {
	x := n.X.Accept(f).(BoolExpr)
	if c, ok := x.(*ConstBool); ok {
		return BoolExpr(&ConstBool{Value: !c.Value})
	}
	return BoolExpr(&Not{X: x})
}

func (f *boolFolder) VisitAnd(n *And) interface{} {
	return BoolExpr(foldBoolNary(n.Args, f, true, func(args []BoolExpr) BoolExpr { return &And{Args: args} }))
}

func (f *boolFolder) VisitOr(n *Or) interface{} {
	return BoolExpr(foldBoolNary(n.Args, f, false, func(args []BoolExpr) BoolExpr { return &Or{Args: args} }))
}

// foldBoolNary folds an n-ary Boolean op's args; identity is the neutral
// element (true for And, false for Or).
func foldBoolNary(args []BoolExpr, f *boolFolder, identity bool, rebuild func([]BoolExpr) BoolExpr) BoolExpr {
	folded := make([]BoolExpr, len(args))
	allConst := true
	for i, a := range args {
		folded[i] = a.Accept(f).(BoolExpr)
		if _, ok := folded[i].(*ConstBool); !ok {
			allConst = false
		}
	}
	if !allConst {
		return rebuild(folded)
	}
	acc := identity
	for _, a := range folded {
		c := a.(*ConstBool)
		if identity {
			acc = acc && c.Value
		} else {
			acc = acc || c.Value
		}
	}
	return &ConstBool{Value: acc}
}

// Temporal operators are never constant-folded: even over an all-Const
// operand, a timed operator's output domain depends on the trace's time
// domain (spec §4.F), which the AST alone does not carry. They still
// recurse into their operand so nested numeric/Boolean consts fold.

func (f *boolFolder) VisitNext(n *Next) interface{} {
	return BoolExpr(&Next{X: n.X.Accept(f).(BoolExpr)})
}

func (f *boolFolder) VisitAlways(n *Always) interface{} {
	return BoolExpr(&Always{X: n.X.Accept(f).(BoolExpr), Interval: n.Interval})
}

func (f *boolFolder) VisitEventually(n *Eventually) interface{} {
	return BoolExpr(&Eventually{X: n.X.Accept(f).(BoolExpr), Interval: n.Interval})
}

func (f *boolFolder) VisitUntil(n *Until) interface{} {
	return BoolExpr(&Until{LHS: n.LHS.Accept(f).(BoolExpr), RHS: n.RHS.Accept(f).(BoolExpr), Interval: n.Interval})
}

// Type-check pass (spec §4.D): before evaluation, the expression is
// walked to resolve each VarX to a signal of compatible kind in the
// Trace, failing with argerr.TypeMismatch (or argerr.UnknownVariable) on
// the first disagreement found.
package expr

import (
	"github.com/argus-stl/argus/argerr"
	"github.com/argus-stl/argus/dtype"
	"github.com/argus-stl/argus/trace"
)

// Check walks a BoolExpr (and every NumExpr it contains) verifying that
// each VarX resolves to a Trace signal of the matching DType.
func Check(e BoolExpr, tr trace.Trace) error {
	c := &checker{tr: tr}
	e.Accept(c)
	return c.err
}

// CheckNum walks a standalone NumExpr the same way. The semantics
// drivers do not call it: Check already visits every Cmp operand.
func CheckNum(e NumExpr, tr trace.Trace) error {
	c := &checker{tr: tr}
	e.Accept(c)
	return c.err
}

type checker struct {
	tr  trace.Trace
	err error
}

func (c *checker) checkVar(name string, want dtype.DType) {
	v, err := c.tr.Get(name)
	if err != nil {
		c.err = err
		return
	}
	if v.DType != want {
		c.err = argerr.NewTypeMismatch(name, want.String(), v.DType.String())
	}
}

// ---- NumVisitor ----

func (c *checker) VisitConstInt(*ConstInt) interface{}     { return nil }
func (c *checker) VisitConstUInt(*ConstUInt) interface{}   { return nil }
func (c *checker) VisitConstFloat(*ConstFloat) interface{} { return nil }

func (c *checker) VisitVarInt(n *VarInt) interface{} {
	c.checkVar(n.Name, dtype.Int64)
	return nil
}

func (c *checker) VisitVarUInt(n *VarUInt) interface{} {
	c.checkVar(n.Name, dtype.UInt64)
	return nil
}

func (c *checker) VisitVarFloat(n *VarFloat) interface{} {
	c.checkVar(n.Name, dtype.Float64)
	return nil
}

func (c *checker) VisitNegate(n *Negate) interface{} {
	if c.err != nil {
		return nil
	}
	n.X.Accept(c)
	return nil
}

func (c *checker) VisitAbs(n *Abs) interface{} {
	if c.err != nil {
		return nil
	}
	n.X.Accept(c)
	return nil
}

func (c *checker) VisitAdd(n *Add) interface{} {
	for _, a := range n.Args {
		if c.err != nil {
			return nil
		}
		a.Accept(c)
	}
	return nil
}

func (c *checker) VisitMul(n *Mul) interface{} {
	for _, a := range n.Args {
		if c.err != nil {
			return nil
		}
		a.Accept(c)
	}
	return nil
}

func (c *checker) VisitDiv(n *Div) interface{} {
	if c.err != nil {
		return nil
	}
	n.Num.Accept(c)
	if c.err != nil {
		return nil
	}
	n.Den.Accept(c)
	return nil
}

// ---- BoolVisitor ----

func (c *checker) VisitConstBool(*ConstBool) interface{} { return nil }

func (c *checker) VisitVarBool(n *VarBool) interface{} {
	c.checkVar(n.Name, dtype.Bool)
	return nil
}

func (c *checker) VisitCmp(n *Cmp) interface{} {
	if c.err != nil {
		return nil
	}
	n.LHS.Accept(c)
	if c.err != nil {
		return nil
	}
	n.RHS.Accept(c)
	return nil
}

func (c *checker) VisitNot(n *Not) interface{} {
	if c.err != nil {
		return nil
	}
	n.X.Accept(c)
	return nil
}

func (c *checker) VisitAnd(n *And) interface{} {
	for _, a := range n.Args {
		if c.err != nil {
			return nil
		}
		a.Accept(c)
	}
	return nil
}

func (c *checker) VisitOr(n *Or) interface{} {
	for _, a := range n.Args {
		if c.err != nil {
			return nil
		}
		a.Accept(c)
	}
	return nil
}

func (c *checker) VisitNext(n *Next) interface{} {
	if c.err != nil {
		return nil
	}
	n.X.Accept(c)
	return nil
}

func (c *checker) VisitAlways(n *Always) interface{} {
	if c.err != nil {
		return nil
	}
	n.X.Accept(c)
	return nil
}

func (c *checker) VisitEventually(n *Eventually) interface{} {
	if c.err != nil {
		return nil
	}
	n.X.Accept(c)
	return nil
}

func (c *checker) VisitUntil(n *Until) interface{} {
	if c.err != nil {
		return nil
	}
	n.LHS.Accept(c)
	if c.err != nil {
		return nil
	}
	n.RHS.Accept(c)
	return nil
}

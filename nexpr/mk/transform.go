package mk

import (
	"fmt"

	"github.com/hamishmack/hnix/nexpr"
)

// Structural transformers over already-built trees. Both are partial: they
// inspect the top-level node shape and panic for any shape they are not
// defined on. That is a contract violation by the caller — a programming
// error, not a data error — so execution must not continue past it. Callers
// holding the concrete node type should use (*nexpr.AttrSet).Append,
// (*nexpr.Let).Append or (*nexpr.Function).MapBody instead, which cannot
// mismatch.

// AppendBindings returns a new tree of the same kind as e with the given
// bindings appended after the existing ones, order preserved. Defined only
// for trees whose top node is an attribute set or a let container; any other
// shape panics.
func AppendBindings(e nexpr.Expr, bindings ...nexpr.Binding) nexpr.Expr {
	switch n := e.(type) {
	case *nexpr.AttrSet:
		return n.Append(bindings...)
	case *nexpr.Let:
		return n.Append(bindings...)
	}
	tracer().Errorf("AppendBindings on non-container node %T", e)
	panic(fmt.Sprintf("mk.AppendBindings: top node is %T, want attribute set or let", e))
}

// ModifyFunctionBody returns a new function with the same parameters and the
// body replaced by transform(body). Defined only for trees whose top node is
// a function; any other shape panics.
func ModifyFunctionBody(e nexpr.Expr, transform func(nexpr.Expr) nexpr.Expr) *nexpr.Function {
	fn, ok := e.(*nexpr.Function)
	if !ok {
		tracer().Errorf("ModifyFunctionBody on non-function node %T", e)
		panic(fmt.Sprintf("mk.ModifyFunctionBody: top node is %T, want function", e))
	}
	return fn.MapBody(transform)
}

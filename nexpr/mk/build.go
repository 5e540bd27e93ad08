package mk

import (
	"github.com/hamishmack/hnix"
	"github.com/hamishmack/hnix/nexpr"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 Hamish Mackenzie
*/

// --- Literals ---------------------------------------------------------------

// Const wraps an atom in a constant node. The atom is carried unchanged.
func Const(a hnix.Atom) *nexpr.Constant {
	return &nexpr.Constant{Value: a}
}

// Null builds the null literal.
func Null() *nexpr.Constant {
	return Const(hnix.Null{})
}

// Bool builds a boolean literal.
func Bool(b bool) *nexpr.Constant {
	return Const(hnix.Bool(b))
}

// Int builds an integer literal.
func Int(n int64) *nexpr.Constant {
	return Const(hnix.Int(n))
}

// Float builds a floating point literal.
func Float(f float64) *nexpr.Constant {
	return Const(hnix.Float(f))
}

// Str builds a plain string node: empty text yields a node with no segments,
// anything else a single literal segment. Interpolated strings cannot be
// expressed here; construct nexpr.Str with an Interp part directly.
func Str(text string) *nexpr.Str {
	return &nexpr.Str{Parts: litParts(text)}
}

// IndentedStr is Str for indented ('' … '') strings, recording the
// indentation width.
func IndentedStr(indent int, text string) *nexpr.IndentedStr {
	return &nexpr.IndentedStr{Indent: indent, Parts: litParts(text)}
}

func litParts(text string) []nexpr.StrPart {
	if text == "" {
		return nil
	}
	return []nexpr.StrPart{nexpr.Lit(text)}
}

// Path builds a path literal: a search path (<…>, resolved against a search
// path by the evaluator) when searchPath is set, a literal filesystem path
// otherwise.
func Path(searchPath bool, text string) nexpr.Expr {
	if searchPath {
		return EnvPath(text)
	}
	return RelPath(text)
}

// EnvPath builds a search-path literal.
func EnvPath(text string) *nexpr.EnvPath {
	return &nexpr.EnvPath{Text: text}
}

// RelPath builds a literal filesystem path.
func RelPath(text string) *nexpr.LiteralPath {
	return &nexpr.LiteralPath{Text: text}
}

// Sym builds a variable reference.
func Sym(name string) *nexpr.Sym {
	return &nexpr.Sym{Name: name}
}

// SynHole builds a syntactic hole with the given label.
func SynHole(name string) *nexpr.SynHole {
	return &nexpr.SynHole{Name: name}
}

// --- Operators --------------------------------------------------------------

// Op builds a unary operator node.
func Op(op nexpr.UnaryOp, x nexpr.Expr) *nexpr.Unary {
	return &nexpr.Unary{Op: op, X: x}
}

// Not negates a boolean expression.
func Not(x nexpr.Expr) *nexpr.Unary {
	return Op(nexpr.OpNot, x)
}

// Neg negates an arithmetic expression.
func Neg(x nexpr.Expr) *nexpr.Unary {
	return Op(nexpr.OpNeg, x)
}

// Op2 builds a binary operator node. Each shorthand below binds exactly one
// operator tag; the resulting nodes are distinguishable by tag alone.
func Op2(op nexpr.BinaryOp, l, r nexpr.Expr) *nexpr.Binary {
	return &nexpr.Binary{Op: op, L: l, R: r}
}

// App applies a function to an argument.
func App(fn, arg nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpApp, fn, arg) }

// Mul multiplies two expressions.
func Mul(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpMult, l, r) }

// Div divides two expressions.
func Div(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpDiv, l, r) }

// Add adds two expressions.
func Add(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpPlus, l, r) }

// Sub subtracts two expressions.
func Sub(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpMinus, l, r) }

// Update merges two attribute sets, the right one overriding the left.
func Update(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpUpdate, l, r) }

// Concat concatenates two lists.
func Concat(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpConcat, l, r) }

// Lt compares two expressions with <.
func Lt(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpLt, l, r) }

// Lte compares two expressions with <=.
func Lte(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpLte, l, r) }

// Gt compares two expressions with >.
func Gt(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpGt, l, r) }

// Gte compares two expressions with >=.
func Gte(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpGte, l, r) }

// Eq tests two expressions for equality.
func Eq(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpEq, l, r) }

// NEq tests two expressions for inequality.
func NEq(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpNEq, l, r) }

// And is boolean conjunction.
func And(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpAnd, l, r) }

// Or is boolean disjunction.
func Or(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpOr, l, r) }

// Impl is logical implication.
func Impl(l, r nexpr.Expr) *nexpr.Binary { return Op2(nexpr.OpImpl, l, r) }

// HasAttr tests whether x has the attribute key.
func HasAttr(x nexpr.Expr, key string) *nexpr.Binary {
	return Op2(nexpr.OpHasAttr, x, Sym(key))
}

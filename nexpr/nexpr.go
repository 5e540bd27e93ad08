package nexpr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hamishmack/hnix"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 Hamish Mackenzie
*/

// Expr is an expression tree. Every node form of the language implements it.
// The String method renders a compact s-expression-like debug form; it is
// not the surface syntax of the language (printing surface syntax is the
// business of a printer, which additionally has to respect operator fixity,
// see OpDef).
type Expr interface {
	fmt.Stringer
	exprNode() // restrict implementations to this package
}

// --- Leaf nodes -------------------------------------------------------------

// Constant is a primitive literal node. The atom payload is opaque to the
// tree model.
type Constant struct {
	Value hnix.Atom
}

// Str is a (possibly interpolated) string: an ordered run of parts, each
// either literal text or an embedded sub-expression.
type Str struct {
	Parts []StrPart
}

// IndentedStr is an indented ('' … '') string. Indent records the
// indentation width stripped from the surface form.
type IndentedStr struct {
	Indent int
	Parts  []StrPart
}

// LiteralPath is a filesystem path literal, relative or absolute.
type LiteralPath struct {
	Text string
}

// EnvPath is a search-path literal (<nixpkgs>-style): the path is resolved
// against a search path by the evaluator.
type EnvPath struct {
	Text string
}

// Sym is a variable reference.
type Sym struct {
	Name string
}

// SynHole is a syntactic hole (^label), a placeholder node used by tooling
// that synthesizes incomplete trees.
type SynHole struct {
	Name string
}

// --- Compound nodes ---------------------------------------------------------

// Unary applies a unary operator to an operand.
type Unary struct {
	Op UnaryOp
	X  Expr
}

// Binary applies a binary operator to two operands. Function application is
// a binary node as well, with operator OpApp.
type Binary struct {
	Op BinaryOp
	L  Expr
	R  Expr
}

// Select projects an attribute path out of an expression, with an optional
// default for the case that the path is missing. Path is never empty.
type Select struct {
	X       Expr
	Path    AttrPath
	Default Expr // may be nil
}

// AttrSet is an attribute set. Rec is carried, not interpreted: whether the
// bindings of a recursive set may refer to each other is decided by an
// evaluator. Binding order is preserved; duplicates are permitted at this
// layer.
type AttrSet struct {
	Rec      bool
	Bindings []Binding
}

// List is a list of expressions.
type List struct {
	Elems []Expr
}

// Let binds names for a body expression. Like Nix's let, the bindings are
// conceptually mutually recursive, but again nothing at this layer enforces
// or checks that.
type Let struct {
	Bindings []Binding
	Body     Expr
}

// With puts the attributes of a scope expression into scope of a body.
type With struct {
	Scope Expr
	Body  Expr
}

// Assert guards a body with a condition.
type Assert struct {
	Cond Expr
	Body Expr
}

// If is the conditional expression. Both branches are always present.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Function is a lambda, parameters on the left.
type Function struct {
	Params Params
	Body   Expr
}

func (*Constant) exprNode()    {}
func (*Str) exprNode()         {}
func (*IndentedStr) exprNode() {}
func (*LiteralPath) exprNode() {}
func (*EnvPath) exprNode()     {}
func (*Sym) exprNode()         {}
func (*SynHole) exprNode()     {}
func (*Unary) exprNode()       {}
func (*Binary) exprNode()      {}
func (*Select) exprNode()      {}
func (*AttrSet) exprNode()     {}
func (*List) exprNode()        {}
func (*Let) exprNode()         {}
func (*With) exprNode()        {}
func (*Assert) exprNode()      {}
func (*If) exprNode()          {}
func (*Function) exprNode()    {}

// --- String parts -----------------------------------------------------------

// StrPart is one segment of a string node: either literal text (Lit) or an
// interpolated sub-expression (Interp). The mk builders only ever produce
// zero or one Lit segment; interpolated strings are constructed directly.
type StrPart interface {
	strPart()
	String() string
}

// Lit is a literal text segment of a string node.
type Lit string

// Interp is an interpolated sub-expression segment of a string node.
type Interp struct {
	X Expr
}

func (Lit) strPart()     {}
func (*Interp) strPart() {}

func (l Lit) String() string {
	return strconv.Quote(string(l))
}

func (ip *Interp) String() string {
	return "${" + ip.X.String() + "}"
}

// --- Attribute paths --------------------------------------------------------

// Key is one component of an attribute path: a static name, or a dynamic
// (computed) key expression. The mk builders only produce static keys.
type Key interface {
	keyNode()
	String() string
}

// StaticKey is a plain attribute name.
type StaticKey string

// DynamicKey is a computed attribute key.
type DynamicKey struct {
	X Expr
}

func (StaticKey) keyNode()   {}
func (*DynamicKey) keyNode() {}

func (k StaticKey) String() string {
	return string(k)
}

func (k *DynamicKey) String() string {
	return "${" + k.X.String() + "}"
}

// AttrPath is a non-empty ordered sequence of keys, identifying a possibly
// nested attribute.
type AttrPath []Key

// StaticPath builds an attribute path of static names.
func StaticPath(names ...string) AttrPath {
	path := make(AttrPath, len(names))
	for i, nm := range names {
		path[i] = StaticKey(nm)
	}
	return path
}

func (p AttrPath) String() string {
	var b strings.Builder
	for i, k := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(k.String())
	}
	return b.String()
}

// --- Debug output -----------------------------------------------------------

func (c *Constant) String() string {
	if c.Value == nil {
		return "<nil atom>"
	}
	return c.Value.String()
}

func strParts(parts []StrPart) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	return b.String()
}

func (s *Str) String() string {
	return "(str " + strParts(s.Parts) + ")"
}

func (s *IndentedStr) String() string {
	return fmt.Sprintf("(istr %d %s)", s.Indent, strParts(s.Parts))
}

func (p *LiteralPath) String() string {
	return p.Text
}

func (p *EnvPath) String() string {
	return "<" + p.Text + ">"
}

func (s *Sym) String() string {
	return s.Name
}

func (h *SynHole) String() string {
	return "^" + h.Name
}

func (u *Unary) String() string {
	return fmt.Sprintf("(%s %s)", u.Op, u.X)
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Op, b.L, b.R)
}

func (s *Select) String() string {
	if s.Default != nil {
		return fmt.Sprintf("(select %s %s or %s)", s.X, s.Path, s.Default)
	}
	return fmt.Sprintf("(select %s %s)", s.X, s.Path)
}

func bindingsString(bindings []Binding) string {
	var b strings.Builder
	for i, bd := range bindings {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(bd.String())
	}
	return b.String()
}

func (a *AttrSet) String() string {
	tag := "set"
	if a.Rec {
		tag = "recset"
	}
	if len(a.Bindings) == 0 {
		return "(" + tag + ")"
	}
	return fmt.Sprintf("(%s %s)", tag, bindingsString(a.Bindings))
}

func (l *List) String() string {
	var b strings.Builder
	b.WriteString("(list")
	for _, el := range l.Elems {
		b.WriteByte(' ')
		b.WriteString(el.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (l *Let) String() string {
	return fmt.Sprintf("(let (%s) %s)", bindingsString(l.Bindings), l.Body)
}

func (w *With) String() string {
	return fmt.Sprintf("(with %s %s)", w.Scope, w.Body)
}

func (a *Assert) String() string {
	return fmt.Sprintf("(assert %s %s)", a.Cond, a.Body)
}

func (i *If) String() string {
	return fmt.Sprintf("(if %s %s %s)", i.Cond, i.Then, i.Else)
}

func (f *Function) String() string {
	return fmt.Sprintf("(lambda %s %s)", f.Params, f.Body)
}

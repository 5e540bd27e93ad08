package mk

import (
	"github.com/hamishmack/hnix"
	"github.com/hamishmack/hnix/nexpr"
)

// Containers, bindings and control forms. Spelled-out variants exist for the
// common cases (Attrs, Let1, Dot, …); everything funnels into the general
// builders, so mixing levels is safe.

// --- Attribute sets and lists -----------------------------------------------

// Set builds an attribute set. The recursivity flag is carried in the node
// but not interpreted here.
func Set(rec bool, bindings ...nexpr.Binding) *nexpr.AttrSet {
	return &nexpr.AttrSet{Rec: rec, Bindings: bindings}
}

// RecSet builds a recursive attribute set.
func RecSet(bindings ...nexpr.Binding) *nexpr.AttrSet {
	return Set(true, bindings...)
}

// NonRecSet builds a non-recursive attribute set.
func NonRecSet(bindings ...nexpr.Binding) *nexpr.AttrSet {
	return Set(false, bindings...)
}

// EmptySet builds {}.
func EmptySet() *nexpr.AttrSet {
	return NonRecSet()
}

// List builds a list of expressions.
func List(elems ...nexpr.Expr) *nexpr.List {
	return &nexpr.List{Elems: elems}
}

// EmptyList builds [].
func EmptyList() *nexpr.List {
	return List()
}

// --- Bindings ---------------------------------------------------------------

// Bind binds a single static name to a value expression.
func Bind(name string, value nexpr.Expr) *nexpr.NamedVar {
	return BindPath(nexpr.StaticPath(name), value)
}

// BindPath binds an attribute path to a value expression. The path must be
// non-empty.
func BindPath(path nexpr.AttrPath, value nexpr.Expr) *nexpr.NamedVar {
	if len(path) == 0 {
		tracer().Errorf("binding with empty attribute path")
	}
	return &nexpr.NamedVar{Path: path, Value: value, At: hnix.NoPos}
}

// Inherit pulls names from the nearest enclosing lexical scope outside the
// container the binding is placed in.
func Inherit(names ...string) *nexpr.Inherit {
	return &nexpr.Inherit{Names: staticKeys(names), At: hnix.NoPos}
}

// InheritFrom pulls names as field projections off a source expression.
func InheritFrom(src nexpr.Expr, names ...string) *nexpr.Inherit {
	return &nexpr.Inherit{From: src, Names: staticKeys(names), At: hnix.NoPos}
}

func staticKeys(names []string) []nexpr.Key {
	keys := make([]nexpr.Key, len(names))
	for i, nm := range names {
		keys[i] = nexpr.StaticKey(nm)
	}
	return keys
}

// Pair is a (name, value) input to Attrs, RecAttrs and Lets. Each name is a
// single static key; multi-segment or computed paths go through BindPath
// instead.
type Pair struct {
	Name  string
	Value nexpr.Expr
}

// P builds a Pair.
func P(name string, value nexpr.Expr) Pair {
	return Pair{Name: name, Value: value}
}

func bindPairs(pairs []Pair) []nexpr.Binding {
	bindings := make([]nexpr.Binding, len(pairs))
	for i, p := range pairs {
		bindings[i] = Bind(p.Name, p.Value)
	}
	return bindings
}

// Attrs builds a non-recursive attribute set from (name, value) pairs, in
// input order.
func Attrs(pairs ...Pair) *nexpr.AttrSet {
	return NonRecSet(bindPairs(pairs)...)
}

// RecAttrs builds a recursive attribute set from (name, value) pairs, in
// input order.
func RecAttrs(pairs ...Pair) *nexpr.AttrSet {
	return RecSet(bindPairs(pairs)...)
}

// --- Control and function forms ----------------------------------------------

// LetIn builds a let container from explicit bindings.
func LetIn(bindings []nexpr.Binding, body nexpr.Expr) *nexpr.Let {
	return &nexpr.Let{Bindings: bindings, Body: body}
}

// Lets builds a let container binding each (name, value) pair, in input
// order.
func Lets(pairs []Pair, body nexpr.Expr) *nexpr.Let {
	return LetIn(bindPairs(pairs), body)
}

// Let1 builds a let container with a single binding.
func Let1(name string, value nexpr.Expr, body nexpr.Expr) *nexpr.Let {
	return Lets([]Pair{P(name, value)}, body)
}

// With puts the attributes of scope into scope of body.
func With(scope, body nexpr.Expr) *nexpr.With {
	return &nexpr.With{Scope: scope, Body: body}
}

// Assert guards body with cond.
func Assert(cond, body nexpr.Expr) *nexpr.Assert {
	return &nexpr.Assert{Cond: cond, Body: body}
}

// If builds a conditional expression.
func If(cond, then, els nexpr.Expr) *nexpr.If {
	return &nexpr.If{Cond: cond, Then: then, Else: els}
}

// Func builds a lambda, parameters on the left.
func Func(params nexpr.Params, body nexpr.Expr) *nexpr.Function {
	return &nexpr.Function{Params: params, Body: body}
}

// Param declares a plain named parameter.
func Param(name string) nexpr.Param {
	return nexpr.Param(name)
}

// Params declares a set-destructuring parameter pattern from (name, default)
// entries plus the variadic flag. The alias slot is always left empty; a
// pattern alias requires constructing nexpr.ParamSet directly.
func Params(variadic bool, defs ...nexpr.ParamDef) *nexpr.ParamSet {
	return &nexpr.ParamSet{Params: defs, Variadic: variadic}
}

// PD declares one (name, default) entry for Params; def may be nil for a
// required parameter.
func PD(name string, def nexpr.Expr) nexpr.ParamDef {
	return nexpr.ParamDef{Name: name, Default: def}
}

// --- Selection ---------------------------------------------------------------

// Dot projects a single static attribute out of obj.
func Dot(obj nexpr.Expr, key string) *nexpr.Select {
	return SelectPath(obj, nexpr.StaticPath(key), nil)
}

// DotOr projects a single static attribute out of obj, with a default
// expression for the case that the attribute is missing.
func DotOr(obj nexpr.Expr, key string, def nexpr.Expr) *nexpr.Select {
	return SelectPath(obj, nexpr.StaticPath(key), def)
}

// SelectPath projects an attribute path out of obj; def may be nil. The path
// must be non-empty.
func SelectPath(obj nexpr.Expr, path nexpr.AttrPath, def nexpr.Expr) *nexpr.Select {
	if len(path) == 0 {
		tracer().Errorf("selection with empty attribute path")
	}
	return &nexpr.Select{X: obj, Path: path, Default: def}
}

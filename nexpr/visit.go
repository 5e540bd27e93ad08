package nexpr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 Hamish Mackenzie
*/

// Shape-generic traversal. All node forms share a small, fixed shape, so a
// single pair of operations covers every structural tool built on trees:
// Walk for read-only inspection, Transform for bottom-up rewriting. Clients
// dispatch on the concrete node type with a type switch; there is no
// separate open-recursion layer.

// A Visitor is called for every node of a tree, parents before children.
// Returning false prunes the node's subtree.
type Visitor interface {
	Visit(e Expr) bool
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(Expr) bool

// Visit is part of the Visitor interface.
func (f VisitorFunc) Visit(e Expr) bool {
	return f(e)
}

// Walk traverses a tree in depth-first pre-order, left to right. Expressions
// nested in auxiliary structures are included: interpolated string segments,
// dynamic attribute keys, inherit sources, binding values and parameter
// defaults. Nil is tolerated and ignored.
func Walk(e Expr, v Visitor) {
	if e == nil {
		return
	}
	if !v.Visit(e) {
		return
	}
	switch n := e.(type) {
	case *Constant, *LiteralPath, *EnvPath, *Sym, *SynHole:
		// leafs
	case *Str:
		walkParts(n.Parts, v)
	case *IndentedStr:
		walkParts(n.Parts, v)
	case *Unary:
		Walk(n.X, v)
	case *Binary:
		Walk(n.L, v)
		Walk(n.R, v)
	case *Select:
		Walk(n.X, v)
		walkPath(n.Path, v)
		Walk(n.Default, v)
	case *AttrSet:
		walkBindings(n.Bindings, v)
	case *List:
		for _, el := range n.Elems {
			Walk(el, v)
		}
	case *Let:
		walkBindings(n.Bindings, v)
		Walk(n.Body, v)
	case *With:
		Walk(n.Scope, v)
		Walk(n.Body, v)
	case *Assert:
		Walk(n.Cond, v)
		Walk(n.Body, v)
	case *If:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)
	case *Function:
		walkParams(n.Params, v)
		Walk(n.Body, v)
	default:
		tracer().Errorf("walk of unknown node type %T", e)
	}
}

func walkParts(parts []StrPart, v Visitor) {
	for _, p := range parts {
		if ip, ok := p.(*Interp); ok {
			Walk(ip.X, v)
		}
	}
}

func walkPath(path AttrPath, v Visitor) {
	for _, k := range path {
		if dk, ok := k.(*DynamicKey); ok {
			Walk(dk.X, v)
		}
	}
}

func walkBindings(bindings []Binding, v Visitor) {
	for _, b := range bindings {
		switch bd := b.(type) {
		case *NamedVar:
			walkPath(bd.Path, v)
			Walk(bd.Value, v)
		case *Inherit:
			Walk(bd.From, v)
			for _, k := range bd.Names {
				if dk, ok := k.(*DynamicKey); ok {
					Walk(dk.X, v)
				}
			}
		}
	}
}

func walkParams(params Params, v Visitor) {
	ps, ok := params.(*ParamSet)
	if !ok {
		return
	}
	for _, pd := range ps.Params {
		Walk(pd.Default, v)
	}
}

// Transform rewrites a tree bottom-up: children are transformed first, then
// f is applied to the rebuilt node. The input tree is left untouched;
// untransformed subtrees may be shared between input and output. A nil
// expression stays nil.
func Transform(e Expr, f func(Expr) Expr) Expr {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *Constant, *LiteralPath, *EnvPath, *Sym, *SynHole:
		// leafs rebuild as themselves
	case *Str:
		e = &Str{Parts: transformParts(n.Parts, f)}
	case *IndentedStr:
		e = &IndentedStr{Indent: n.Indent, Parts: transformParts(n.Parts, f)}
	case *Unary:
		e = &Unary{Op: n.Op, X: Transform(n.X, f)}
	case *Binary:
		e = &Binary{Op: n.Op, L: Transform(n.L, f), R: Transform(n.R, f)}
	case *Select:
		e = &Select{
			X:       Transform(n.X, f),
			Path:    transformPath(n.Path, f),
			Default: Transform(n.Default, f),
		}
	case *AttrSet:
		e = &AttrSet{Rec: n.Rec, Bindings: transformBindings(n.Bindings, f)}
	case *List:
		elems := make([]Expr, len(n.Elems))
		for i, el := range n.Elems {
			elems[i] = Transform(el, f)
		}
		e = &List{Elems: elems}
	case *Let:
		e = &Let{Bindings: transformBindings(n.Bindings, f), Body: Transform(n.Body, f)}
	case *With:
		e = &With{Scope: Transform(n.Scope, f), Body: Transform(n.Body, f)}
	case *Assert:
		e = &Assert{Cond: Transform(n.Cond, f), Body: Transform(n.Body, f)}
	case *If:
		e = &If{Cond: Transform(n.Cond, f), Then: Transform(n.Then, f), Else: Transform(n.Else, f)}
	case *Function:
		e = &Function{Params: transformParams(n.Params, f), Body: Transform(n.Body, f)}
	default:
		tracer().Errorf("transform of unknown node type %T", e)
	}
	return f(e)
}

func transformParts(parts []StrPart, f func(Expr) Expr) []StrPart {
	out := make([]StrPart, len(parts))
	for i, p := range parts {
		if ip, ok := p.(*Interp); ok {
			out[i] = &Interp{X: Transform(ip.X, f)}
		} else {
			out[i] = p
		}
	}
	return out
}

func transformPath(path AttrPath, f func(Expr) Expr) AttrPath {
	out := make(AttrPath, len(path))
	for i, k := range path {
		if dk, ok := k.(*DynamicKey); ok {
			out[i] = &DynamicKey{X: Transform(dk.X, f)}
		} else {
			out[i] = k
		}
	}
	return out
}

func transformBindings(bindings []Binding, f func(Expr) Expr) []Binding {
	out := make([]Binding, len(bindings))
	for i, b := range bindings {
		switch bd := b.(type) {
		case *NamedVar:
			out[i] = &NamedVar{
				Path:  transformPath(bd.Path, f),
				Value: Transform(bd.Value, f),
				At:    bd.At,
			}
		case *Inherit:
			names := make([]Key, len(bd.Names))
			for j, k := range bd.Names {
				if dk, ok := k.(*DynamicKey); ok {
					names[j] = &DynamicKey{X: Transform(dk.X, f)}
				} else {
					names[j] = k
				}
			}
			out[i] = &Inherit{From: Transform(bd.From, f), Names: names, At: bd.At}
		default:
			out[i] = b
		}
	}
	return out
}

func transformParams(params Params, f func(Expr) Expr) Params {
	ps, ok := params.(*ParamSet)
	if !ok {
		return params
	}
	defs := make([]ParamDef, len(ps.Params))
	for i, pd := range ps.Params {
		defs[i] = ParamDef{Name: pd.Name, Default: Transform(pd.Default, f)}
	}
	return &ParamSet{Params: defs, Variadic: ps.Variadic, Alias: ps.Alias}
}

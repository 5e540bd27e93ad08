package nexpr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 Hamish Mackenzie
*/

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Free-variable analysis. Generators synthesizing trees typically want to
// know which names a fragment expects from its environment before splicing
// it somewhere. The analysis follows the language's static scoping: let and
// recursive attribute sets bind their names for the binding values as well
// as the body, function parameters bind for parameter defaults and the body,
// an inherit without a source reads the enclosing scope, and a plain
// attribute set binds nothing for its values.
//
// 'with' is the one construct that defeats static analysis: any name may be
// supplied by its scope expression at evaluation time. Names that resolve to
// no static binding inside a 'with' body are therefore not reported as free.

// FreeVars returns the names of all variables of a tree that are not bound
// by an enclosing binder within the tree itself, sorted and deduplicated.
func FreeVars(e Expr) []string {
	acc := treeset.NewWith(utils.StringComparator)
	freeVars(e, nil, acc)
	return stringValues(acc)
}

// Symbols returns every variable name referenced anywhere in a tree, bound
// or not, sorted and deduplicated.
func Symbols(e Expr) []string {
	acc := treeset.NewWith(utils.StringComparator)
	Walk(e, VisitorFunc(func(e Expr) bool {
		if sym, ok := e.(*Sym); ok {
			acc.Add(sym.Name)
		}
		return true
	}))
	return stringValues(acc)
}

func stringValues(set *treeset.Set) []string {
	values := set.Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}
	return out
}

// --- Scope chain ------------------------------------------------------------

type scope struct {
	parent *scope
	names  map[string]bool
	open   bool // a 'with' scope: may supply any name dynamically
}

func (sc *scope) child() *scope {
	return &scope{parent: sc, names: make(map[string]bool)}
}

func (sc *scope) withChild() *scope {
	return &scope{parent: sc, open: true}
}

func (sc *scope) binds(name string) bool {
	for s := sc; s != nil; s = s.parent {
		if s.names[name] {
			return true
		}
	}
	return false
}

func (sc *scope) shadowed() bool {
	for s := sc; s != nil; s = s.parent {
		if s.open {
			return true
		}
	}
	return false
}

func (sc *scope) use(name string, acc *treeset.Set) {
	if sc.binds(name) {
		return
	}
	if sc.shadowed() {
		return // may come out of a 'with' at evaluation time
	}
	acc.Add(name)
}

// --- Traversal --------------------------------------------------------------

func freeVars(e Expr, sc *scope, acc *treeset.Set) {
	if e == nil {
		return
	}
	if sc == nil {
		sc = &scope{names: make(map[string]bool)}
	}
	switch n := e.(type) {
	case *Constant, *LiteralPath, *EnvPath, *SynHole:
		// no variables
	case *Sym:
		sc.use(n.Name, acc)
	case *Str:
		freeVarsParts(n.Parts, sc, acc)
	case *IndentedStr:
		freeVarsParts(n.Parts, sc, acc)
	case *Unary:
		freeVars(n.X, sc, acc)
	case *Binary:
		freeVars(n.L, sc, acc)
		freeVars(n.R, sc, acc)
	case *Select:
		freeVars(n.X, sc, acc)
		freeVarsPath(n.Path, sc, acc)
		freeVars(n.Default, sc, acc)
	case *List:
		for _, el := range n.Elems {
			freeVars(el, sc, acc)
		}
	case *AttrSet:
		if n.Rec {
			inner := sc.child()
			declareBindings(n.Bindings, inner)
			freeVarsBindings(n.Bindings, inner, sc, acc)
		} else {
			freeVarsBindings(n.Bindings, sc, sc, acc)
		}
	case *Let:
		inner := sc.child()
		declareBindings(n.Bindings, inner)
		freeVarsBindings(n.Bindings, inner, sc, acc)
		freeVars(n.Body, inner, acc)
	case *With:
		freeVars(n.Scope, sc, acc)
		freeVars(n.Body, sc.withChild(), acc)
	case *Assert:
		freeVars(n.Cond, sc, acc)
		freeVars(n.Body, sc, acc)
	case *If:
		freeVars(n.Cond, sc, acc)
		freeVars(n.Then, sc, acc)
		freeVars(n.Else, sc, acc)
	case *Function:
		inner := sc.child()
		declareParams(n.Params, inner)
		if ps, ok := n.Params.(*ParamSet); ok {
			for _, pd := range ps.Params {
				freeVars(pd.Default, inner, acc) // defaults see sibling params
			}
		}
		freeVars(n.Body, inner, acc)
	default:
		tracer().Errorf("free-variable analysis of unknown node type %T", e)
	}
}

func freeVarsParts(parts []StrPart, sc *scope, acc *treeset.Set) {
	for _, p := range parts {
		if ip, ok := p.(*Interp); ok {
			freeVars(ip.X, sc, acc)
		}
	}
}

func freeVarsPath(path AttrPath, sc *scope, acc *treeset.Set) {
	for _, k := range path {
		if dk, ok := k.(*DynamicKey); ok {
			freeVars(dk.X, sc, acc)
		}
	}
}

// declareBindings records the names a binding list introduces: the first key
// of every static named path, and every static inherited name.
func declareBindings(bindings []Binding, sc *scope) {
	for _, b := range bindings {
		switch bd := b.(type) {
		case *NamedVar:
			if len(bd.Path) > 0 {
				if key, ok := bd.Path[0].(StaticKey); ok {
					sc.names[string(key)] = true
				}
			}
		case *Inherit:
			for _, k := range bd.Names {
				if key, ok := k.(StaticKey); ok {
					sc.names[string(key)] = true
				}
			}
		}
	}
}

// freeVarsBindings analyzes binding values in scope 'values' (the container
// scope for recursive containers, the enclosing scope otherwise). An inherit
// without a source always reads the enclosing scope; dynamic keys are
// likewise evaluated outside the container.
func freeVarsBindings(bindings []Binding, values, outer *scope, acc *treeset.Set) {
	for _, b := range bindings {
		switch bd := b.(type) {
		case *NamedVar:
			freeVarsPath(bd.Path, outer, acc)
			freeVars(bd.Value, values, acc)
		case *Inherit:
			if bd.From != nil {
				freeVars(bd.From, values, acc)
				continue
			}
			for _, k := range bd.Names {
				if key, ok := k.(StaticKey); ok {
					outer.use(string(key), acc)
				}
			}
		}
	}
}

func declareParams(params Params, sc *scope) {
	switch p := params.(type) {
	case Param:
		sc.names[string(p)] = true
	case *ParamSet:
		for _, pd := range p.Params {
			sc.names[pd.Name] = true
		}
		if p.Alias != "" {
			sc.names[p.Alias] = true
		}
	}
}

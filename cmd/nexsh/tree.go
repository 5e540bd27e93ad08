package main

import (
	"fmt"

	"github.com/hamishmack/hnix/nexpr"
	"github.com/pterm/pterm"
)

// Terminal rendering of an expression tree, one line per node.

func renderTree(e nexpr.Expr) {
	ll := leveledExpr(e, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func item(ll pterm.LeveledList, level int, format string, args ...interface{}) pterm.LeveledList {
	return append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  fmt.Sprintf(format, args...),
	})
}

func leveledExpr(e nexpr.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	if e == nil {
		return item(ll, level, "nil")
	}
	switch n := e.(type) {
	case *nexpr.Constant, *nexpr.LiteralPath, *nexpr.EnvPath, *nexpr.Sym, *nexpr.SynHole:
		ll = item(ll, level, "%v", e)
	case *nexpr.Str:
		ll = item(ll, level, "str")
		ll = leveledParts(n.Parts, ll, level+1)
	case *nexpr.IndentedStr:
		ll = item(ll, level, "istr %d", n.Indent)
		ll = leveledParts(n.Parts, ll, level+1)
	case *nexpr.Unary:
		ll = item(ll, level, "%s", n.Op)
		ll = leveledExpr(n.X, ll, level+1)
	case *nexpr.Binary:
		ll = item(ll, level, "%s", n.Op)
		ll = leveledExpr(n.L, ll, level+1)
		ll = leveledExpr(n.R, ll, level+1)
	case *nexpr.Select:
		ll = item(ll, level, "select .%s", n.Path)
		ll = leveledExpr(n.X, ll, level+1)
		if n.Default != nil {
			ll = item(ll, level+1, "or")
			ll = leveledExpr(n.Default, ll, level+2)
		}
	case *nexpr.AttrSet:
		if n.Rec {
			ll = item(ll, level, "recset")
		} else {
			ll = item(ll, level, "set")
		}
		ll = leveledBindings(n.Bindings, ll, level+1)
	case *nexpr.List:
		ll = item(ll, level, "list")
		for _, el := range n.Elems {
			ll = leveledExpr(el, ll, level+1)
		}
	case *nexpr.Let:
		ll = item(ll, level, "let")
		ll = leveledBindings(n.Bindings, ll, level+1)
		ll = item(ll, level+1, "in")
		ll = leveledExpr(n.Body, ll, level+2)
	case *nexpr.With:
		ll = item(ll, level, "with")
		ll = leveledExpr(n.Scope, ll, level+1)
		ll = leveledExpr(n.Body, ll, level+1)
	case *nexpr.Assert:
		ll = item(ll, level, "assert")
		ll = leveledExpr(n.Cond, ll, level+1)
		ll = leveledExpr(n.Body, ll, level+1)
	case *nexpr.If:
		ll = item(ll, level, "if")
		ll = leveledExpr(n.Cond, ll, level+1)
		ll = leveledExpr(n.Then, ll, level+1)
		ll = leveledExpr(n.Else, ll, level+1)
	case *nexpr.Function:
		ll = item(ll, level, "lambda %s", n.Params)
		ll = leveledExpr(n.Body, ll, level+1)
	default:
		ll = item(ll, level, "%v", e)
	}
	return ll
}

func leveledParts(parts []nexpr.StrPart, ll pterm.LeveledList, level int) pterm.LeveledList {
	for _, p := range parts {
		if ip, ok := p.(*nexpr.Interp); ok {
			ll = item(ll, level, "interp")
			ll = leveledExpr(ip.X, ll, level+1)
		} else {
			ll = item(ll, level, "%v", p)
		}
	}
	return ll
}

func leveledBindings(bindings []nexpr.Binding, ll pterm.LeveledList, level int) pterm.LeveledList {
	for _, b := range bindings {
		switch bd := b.(type) {
		case *nexpr.NamedVar:
			ll = item(ll, level, "%s =", bd.Path)
			ll = leveledExpr(bd.Value, ll, level+1)
		case *nexpr.Inherit:
			names := ""
			for _, k := range bd.Names {
				names += " " + k.String()
			}
			ll = item(ll, level, "inherit%s", names)
			if bd.From != nil {
				ll = leveledExpr(bd.From, ll, level+1)
			}
		}
	}
	return ll
}

package mk

import (
	"testing"

	"github.com/hamishmack/hnix"
	"github.com/hamishmack/hnix/nexpr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestConstWrapsAtom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.mk")
	defer teardown()
	//
	atoms := []hnix.Atom{hnix.Null{}, hnix.Bool(true), hnix.Int(42), hnix.Float(3.14), hnix.URI("https://nixos.org")}
	for _, a := range atoms {
		c := Const(a)
		if c.Value != a {
			t.Errorf("Const(%v) holds %v", a, c.Value)
		}
	}
	if Null().Value != (hnix.Null{}) {
		t.Errorf("Null() does not hold the null atom")
	}
	if Bool(true).Value != hnix.Bool(true) {
		t.Errorf("Bool(true) does not hold the boolean atom")
	}
	if Int(7).Value != hnix.Int(7) {
		t.Errorf("Int(7) does not hold the integer atom")
	}
	if Float(0.5).Value != hnix.Float(0.5) {
		t.Errorf("Float(0.5) does not hold the float atom")
	}
}

func TestStrSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.mk")
	defer teardown()
	//
	if n := len(Str("").Parts); n != 0 {
		t.Errorf("Str(\"\") should have no segments, has %d", n)
	}
	s := Str("x")
	if len(s.Parts) != 1 {
		t.Fatalf("Str(\"x\") should have one segment, has %d", len(s.Parts))
	}
	if lit, ok := s.Parts[0].(nexpr.Lit); !ok || lit != "x" {
		t.Errorf("Str(\"x\") segment is %v", s.Parts[0])
	}
	is := IndentedStr(3, "y")
	if is.Indent != 3 || len(is.Parts) != 1 {
		t.Errorf("IndentedStr(3, \"y\") malformed: %v", is)
	}
	if n := len(IndentedStr(0, "").Parts); n != 0 {
		t.Errorf("IndentedStr(0, \"\") should have no segments, has %d", n)
	}
}

func TestPathFlag(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.mk")
	defer teardown()
	//
	if !nexpr.Equal(Path(false, "a/b"), RelPath("a/b")) {
		t.Errorf("Path(false, …) and RelPath(…) differ")
	}
	if !nexpr.Equal(Path(true, "a/b"), EnvPath("a/b")) {
		t.Errorf("Path(true, …) and EnvPath(…) differ")
	}
	if nexpr.Equal(Path(true, "a/b"), Path(false, "a/b")) {
		t.Errorf("search-path and literal-path tags should differ")
	}
}

func TestOperatorTagsDistinct(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.mk")
	defer teardown()
	//
	l, r := Sym("l"), Sym("r")
	shorthands := map[string]*nexpr.Binary{
		"App":    App(l, r),
		"Mul":    Mul(l, r),
		"Div":    Div(l, r),
		"Add":    Add(l, r),
		"Sub":    Sub(l, r),
		"Update": Update(l, r),
		"Concat": Concat(l, r),
		"Lt":     Lt(l, r),
		"Lte":    Lte(l, r),
		"Gt":     Gt(l, r),
		"Gte":    Gte(l, r),
		"Eq":     Eq(l, r),
		"NEq":    NEq(l, r),
		"And":    And(l, r),
		"Or":     Or(l, r),
		"Impl":   Impl(l, r),
	}
	seen := make(map[nexpr.BinaryOp]string)
	for name, b := range shorthands {
		if prev, ok := seen[b.Op]; ok {
			t.Errorf("shorthands %s and %s share operator tag %d", prev, name, b.Op)
		}
		seen[b.Op] = name
		if !nexpr.Equal(b.L, l) || !nexpr.Equal(b.R, r) {
			t.Errorf("shorthand %s does not preserve operands", name)
		}
	}
	if Not(l).Op == Neg(l).Op {
		t.Errorf("Not and Neg share a unary operator tag")
	}
}

func TestInheritShapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.mk")
	defer teardown()
	//
	in := Inherit("a", "b")
	if in.From != nil {
		t.Errorf("Inherit(…) should have no source expression")
	}
	if len(in.Names) != 2 || in.Names[0] != nexpr.StaticKey("a") || in.Names[1] != nexpr.StaticKey("b") {
		t.Errorf("Inherit(\"a\", \"b\") names are %v", in.Names)
	}
	src := Sym("lib")
	inf := InheritFrom(src, "a", "b")
	if !nexpr.Equal(inf.From, src) {
		t.Errorf("InheritFrom source is %v", inf.From)
	}
	if len(inf.Names) != 2 {
		t.Errorf("InheritFrom names are %v", inf.Names)
	}
	if !in.Pos().IsNone() || !inf.Pos().IsNone() {
		t.Errorf("synthetic bindings must carry the placeholder position")
	}
}

func TestAttrsEquivalences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.mk")
	defer teardown()
	//
	x := Int(1)
	if !nexpr.Equal(Attrs(P("a", x)), NonRecSet(Bind("a", x))) {
		t.Errorf("Attrs and NonRecSet∘Bind differ")
	}
	if !nexpr.Equal(RecAttrs(P("a", x)), RecSet(Bind("a", x))) {
		t.Errorf("RecAttrs and RecSet∘Bind differ")
	}
	if nexpr.Equal(Attrs(P("a", x)), RecAttrs(P("a", x))) {
		t.Errorf("recursivity flag not carried")
	}
	if !nexpr.Equal(EmptySet(), NonRecSet()) {
		t.Errorf("EmptySet is not the empty non-recursive set")
	}
	if len(Bind("a", x).Path) != 1 {
		t.Errorf("Bind should produce a single-key path")
	}
}

func TestLetEquivalences(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.mk")
	defer teardown()
	//
	v, body := Int(1), Sym("x")
	l1 := Let1("x", v, body)
	l2 := Lets([]Pair{P("x", v)}, body)
	l3 := LetIn([]nexpr.Binding{Bind("x", v)}, body)
	if !nexpr.Equal(l1, l2) || !nexpr.Equal(l2, l3) {
		t.Errorf("Let1, Lets and LetIn∘Bind should agree: %v / %v / %v", l1, l2, l3)
	}
}

func TestSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.mk")
	defer teardown()
	//
	obj := Sym("cfg")
	sel := Dot(obj, "port")
	if len(sel.Path) != 1 || sel.Default != nil {
		t.Errorf("Dot built %v", sel)
	}
	def := Int(8080)
	selOr := DotOr(obj, "port", def)
	if !nexpr.Equal(selOr.Default, def) {
		t.Errorf("DotOr lost the default: %v", selOr)
	}
	if !nexpr.Equal(sel.X, obj) {
		t.Errorf("Dot lost the object: %v", sel)
	}
}

func TestFunctionForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.mk")
	defer teardown()
	//
	fn := Func(Param("x"), Sym("x"))
	if fn.Params != nexpr.Param("x") {
		t.Errorf("Func lost its parameter: %v", fn)
	}
	ps := Params(true, PD("a", nil), PD("b", Int(1)))
	if !ps.Variadic || ps.Alias != "" {
		t.Errorf("Params built %v", ps)
	}
	if len(ps.Params) != 2 || ps.Params[0].Default != nil || ps.Params[1].Default == nil {
		t.Errorf("Params entries are %v", ps.Params)
	}
}

func TestBuildersLeaveInputsUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.mk")
	defer teardown()
	//
	set := Attrs(P("a", Int(1)))
	snapshot := set.String()
	_ = set.Append(Bind("b", Int(2)))
	_ = Update(set, EmptySet())
	if set.String() != snapshot {
		t.Errorf("building on top of a tree modified it: %s", set)
	}
}

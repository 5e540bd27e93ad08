package nexpr

import (
	"testing"

	"github.com/hamishmack/hnix"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEqualIgnoresPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	synthetic := &AttrSet{Bindings: []Binding{
		&NamedVar{Path: StaticPath("a"), Value: &Constant{Value: hnix.Int(1)}, At: hnix.NoPos},
	}}
	parsed := &AttrSet{Bindings: []Binding{
		&NamedVar{Path: StaticPath("a"), Value: &Constant{Value: hnix.Int(1)}, At: hnix.Pos{10, 17}},
	}}
	if !Equal(synthetic, parsed) {
		t.Errorf("trees differing only in positions must compare equal")
	}
}

func TestEqualDistinguishesTags(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	pairs := []struct {
		a, b Expr
	}{
		{&LiteralPath{Text: "a/b"}, &EnvPath{Text: "a/b"}},
		{&Sym{Name: "x"}, &SynHole{Name: "x"}},
		{&AttrSet{Rec: true}, &AttrSet{Rec: false}},
		{&Unary{Op: OpNot, X: &Sym{Name: "x"}}, &Unary{Op: OpNeg, X: &Sym{Name: "x"}}},
		{&Constant{Value: hnix.Int(1)}, &Constant{Value: hnix.Float(1)}},
	}
	for _, p := range pairs {
		if Equal(p.a, p.b) {
			t.Errorf("%v and %v must not compare equal", p.a, p.b)
		}
	}
}

func TestEqualInterpolatedStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	a := &Str{Parts: []StrPart{Lit("pre"), &Interp{X: &Sym{Name: "x"}}, Lit("post")}}
	b := &Str{Parts: []StrPart{Lit("pre"), &Interp{X: &Sym{Name: "x"}}, Lit("post")}}
	c := &Str{Parts: []StrPart{Lit("pre"), &Interp{X: &Sym{Name: "y"}}, Lit("post")}}
	if !Equal(a, b) {
		t.Errorf("structurally identical interpolated strings must be equal")
	}
	if Equal(a, c) {
		t.Errorf("interpolated segments must be compared structurally")
	}
}

func TestEqualParamSets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	body := &Sym{Name: "a"}
	ps := func(variadic bool) *Function {
		return &Function{
			Params: &ParamSet{
				Params:   []ParamDef{{Name: "a"}, {Name: "b", Default: &Constant{Value: hnix.Int(1)}}},
				Variadic: variadic,
			},
			Body: body,
		}
	}
	if !Equal(ps(true), ps(true)) {
		t.Errorf("identical param sets must be equal")
	}
	if Equal(ps(true), ps(false)) {
		t.Errorf("variadic flag must be part of equality")
	}
	if Equal(ps(false), &Function{Params: Param("a"), Body: body}) {
		t.Errorf("plain parameter and param set must differ")
	}
}

func TestEqualSharedSubtrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	shared := &Sym{Name: "x"}
	a := &Binary{Op: OpPlus, L: shared, R: shared}
	b := &Binary{Op: OpPlus, L: &Sym{Name: "x"}, R: &Sym{Name: "x"}}
	if !Equal(a, b) {
		t.Errorf("equality must be structural, not identity-based")
	}
}

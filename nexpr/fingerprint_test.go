package nexpr

import (
	"testing"

	"github.com/hamishmack/hnix"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFingerprintEqualTreesAgree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	a := testTree()
	b := testTree()
	ha, err := Fingerprint(a)
	if err != nil {
		t.Fatalf("fingerprint failed: %v", err)
	}
	hb, _ := Fingerprint(b)
	if ha != hb {
		t.Errorf("equal trees must fingerprint identically: %s vs %s", ha, hb)
	}
}

func TestFingerprintIgnoresPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	synthetic := &AttrSet{Bindings: []Binding{
		&NamedVar{Path: StaticPath("a"), Value: sym("x")},
	}}
	parsed := &AttrSet{Bindings: []Binding{
		&NamedVar{Path: StaticPath("a"), Value: sym("x"), At: hnix.Pos{3, 9}},
	}}
	ha, _ := Fingerprint(synthetic)
	hb, _ := Fingerprint(parsed)
	if ha != hb {
		t.Errorf("positions must not enter the fingerprint")
	}
}

func TestFingerprintSeparatesLookalikes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	lookalikes := []Expr{
		&Sym{Name: "x"},
		&SynHole{Name: "x"},
		&LiteralPath{Text: "x"},
		&EnvPath{Text: "x"},
		&Str{Parts: []StrPart{Lit("x")}},
		&Constant{Value: hnix.URI("x")},
		&Constant{Value: hnix.Int(1)},
		&Constant{Value: hnix.Float(1)},
	}
	seen := make(map[string]Expr)
	for _, e := range lookalikes {
		h, err := Fingerprint(e)
		if err != nil {
			t.Fatalf("fingerprint of %v failed: %v", e, err)
		}
		if prev, ok := seen[h]; ok {
			t.Errorf("%v and %v collide", prev, e)
		}
		seen[h] = e
	}
}

func TestFingerprintSha1Stable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	a := FingerprintSha1(testTree())
	b := FingerprintSha1(testTree())
	if len(a) == 0 || string(a) != string(b) {
		t.Errorf("raw fingerprint must be stable")
	}
}

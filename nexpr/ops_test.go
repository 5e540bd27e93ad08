package nexpr

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFixityTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	// the binding-strength ladder printers rely on, loosest first
	ladder := [][]BinaryOp{
		{OpImpl},
		{OpOr},
		{OpAnd},
		{OpEq, OpNEq},
		{OpLt, OpLte, OpGt, OpGte},
		{OpUpdate},
		{OpPlus, OpMinus},
		{OpMult, OpDiv},
		{OpConcat},
	}
	prev := 0
	for _, rung := range ladder {
		prec := rung[0].Def().Prec
		if prec <= prev {
			t.Errorf("operator %s breaks the precedence ladder", rung[0])
		}
		for _, op := range rung[1:] {
			if op.Def().Prec != prec {
				t.Errorf("operators %s and %s should share a precedence level", rung[0], op)
			}
		}
		prev = prec
	}
	if OpNot.Def().Prec <= OpConcat.Def().Prec {
		t.Errorf("unary operators must bind tighter than every binary operator")
	}
	if OpApp.Def().Prec <= OpNeg.Def().Prec {
		t.Errorf("application must bind tighter than unary negation")
	}
	if PrecSelect <= OpApp.Def().Prec {
		t.Errorf("attribute selection must bind tightest of all")
	}
}

func TestFixityAssociativity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	rightAssoc := []BinaryOp{OpImpl, OpUpdate, OpConcat}
	for _, op := range rightAssoc {
		if op.Def().Assoc != AssocRight {
			t.Errorf("operator %s must be right-associative", op)
		}
	}
	leftAssoc := []BinaryOp{OpPlus, OpMinus, OpMult, OpDiv, OpAnd, OpOr, OpApp}
	for _, op := range leftAssoc {
		if op.Def().Assoc != AssocLeft {
			t.Errorf("operator %s must be left-associative", op)
		}
	}
	for _, op := range []BinaryOp{OpEq, OpNEq, OpLt, OpLte, OpGt, OpGte, OpHasAttr} {
		if op.Def().Assoc != AssocNone {
			t.Errorf("operator %s must be non-associative", op)
		}
	}
}

func TestOpSymbolsUnique(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexpr")
	defer teardown()
	//
	ops := []BinaryOp{OpEq, OpNEq, OpLt, OpLte, OpGt, OpGte, OpAnd, OpOr, OpImpl,
		OpUpdate, OpPlus, OpMinus, OpMult, OpDiv, OpConcat, OpHasAttr, OpApp}
	seen := make(map[string]BinaryOp)
	for _, op := range ops {
		s := op.Def().Sym
		if s == "" {
			t.Errorf("operator %d has no surface symbol", op)
		}
		if prev, ok := seen[s]; ok && prev != op {
			t.Errorf("operators %d and %d share symbol %q", prev, op, s)
		}
		seen[s] = op
	}
}

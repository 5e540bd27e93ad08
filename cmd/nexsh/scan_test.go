package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var inputLines = []string{
	"int 42",
	"float -1.5",
	`str "hello world"`,
	"path <nixpkgs>",
	"path ./pkgs/default.nix",
	"let 2   # trailing comment",
}

var tokenCounts = []int{2, 2, 2, 2, 2, 2}

func TestScanLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexsh")
	defer teardown()
	//
	lexer, err := newLineLexer()
	if err != nil {
		t.Fatal(err)
	}
	for i, line := range inputLines {
		toks := scanLine(lexer, line, func(e error) { t.Errorf("scan error: %v", e) })
		if len(toks) != tokenCounts[i] {
			t.Errorf("line %q: expected %d tokens, have %d (%v)", line, tokenCounts[i], len(toks), toks)
		}
	}
}

func TestScanCategories(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hnix.nexsh")
	defer teardown()
	//
	lexer, err := newLineLexer()
	if err != nil {
		t.Fatal(err)
	}
	toks := scanLine(lexer, `bind greeting "hello" 1 2.5 <ch> ./p`, func(e error) { t.Errorf("%v", e) })
	want := []int{tokWord, tokWord, tokString, tokInt, tokFloat, tokEnvPath, tokPath}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, have %d: %v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].typ != w {
			t.Errorf("token %d (%q) has category %d, want %d", i, toks[i].text, toks[i].typ, w)
		}
	}
}

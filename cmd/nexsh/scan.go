package main

import (
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// A tiny lexer for the sandbox command language (not for the Nix surface
// language, which this tool deliberately does not parse). Lines consist of a
// command word followed by arguments: bare words, integers, floats, quoted
// strings, and path forms ("./x", "/x", "<nixpkgs>").

// Token categories of the command language.
const (
	tokWord int = iota + 1
	tokInt
	tokFloat
	tokString
	tokPath
	tokEnvPath
)

type token struct {
	typ  int
	text string
}

func newLineLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`( |\t)+`), skipMatch)
	lexer.Add([]byte(`#[^\n]*`), skipMatch) // line comment
	lexer.Add([]byte(`\"[^"]*\"`), emit(tokString))
	lexer.Add([]byte(`\-?[0-9]+\.[0-9]+`), emit(tokFloat))
	lexer.Add([]byte(`\-?[0-9]+`), emit(tokInt))
	lexer.Add([]byte(`<[^>]*>`), emit(tokEnvPath))
	lexer.Add([]byte(`(\.|\.\.)?/[^ \t]*`), emit(tokPath))
	lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_|-|'|\.)*`), emit(tokWord))
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

func skipMatch(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func emit(typ int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{typ: typ, text: string(m.Bytes)}, nil
	}
}

// scanLine tokenizes one input line. Scan errors are reported and the
// offending input is skipped, so a typo does not abort the session.
func scanLine(lexer *lexmachine.Lexer, line string, report func(error)) []token {
	s, err := lexer.Scanner([]byte(line))
	if err != nil {
		report(err)
		return nil
	}
	var toks []token
	tok, err, eof := s.Next()
	for !eof {
		if err != nil {
			report(err)
			if ui, is := err.(*machines.UnconsumedInput); is {
				s.TC = ui.FailTC
			}
			tok, err, eof = s.Next()
			continue
		}
		if tok != nil {
			toks = append(toks, tok.(token))
		}
		tok, err, eof = s.Next()
	}
	return toks
}

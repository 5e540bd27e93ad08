package hnix

import (
	"fmt"
	"strconv"
)

// --- Atoms: primitive literal values ----------------------------------------

// Atom is the primitive literal value carried by constant nodes of an
// expression tree. Atoms are opaque payloads for the tree model: nexpr and
// the builders pass them through unchanged and attach no semantics to them.
//
// An example would be the integer literal 42:
//
//    atom := hnix.Int(42)
//    atom.Kind()    // hnix.KindInt
//    atom.String()  // "42"
//
type Atom interface {
	Kind() AtomKind
	String() string
}

// AtomKind is a category type for atoms.
type AtomKind int8

// The atom kinds of the language.
const (
	KindNull AtomKind = iota
	KindBool
	KindInt
	KindFloat
	KindURI
)

func (k AtomKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindURI:
		return "uri"
	}
	return fmt.Sprintf("AtomKind(%d)", k)
}

// Null is the distinguished null literal.
type Null struct{}

// Bool is a boolean literal.
type Bool bool

// Int is an integer literal.
type Int int64

// Float is a floating point literal.
type Float float64

// URI is an unquoted URI literal, a legacy form of the surface language.
type URI string

// Kind is part of the Atom interface.
func (Null) Kind() AtomKind { return KindNull }

// Kind is part of the Atom interface.
func (Bool) Kind() AtomKind { return KindBool }

// Kind is part of the Atom interface.
func (Int) Kind() AtomKind { return KindInt }

// Kind is part of the Atom interface.
func (Float) Kind() AtomKind { return KindFloat }

// Kind is part of the Atom interface.
func (URI) Kind() AtomKind { return KindURI }

func (Null) String() string    { return "null" }
func (b Bool) String() string  { return strconv.FormatBool(bool(b)) }
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (u URI) String() string   { return string(u) }

// --- Positions --------------------------------------------------------------

// Pos is a small type for capturing a location in an input stream, as a start
// offset and the offset just behind the end. Trees synthesized by this module
// are not read from an input stream, so every position they carry is NoPos.
// Parsers producing this tree type fill in real locations instead.
type Pos [2]uint64 // (x…y)

// NoPos is the placeholder position of synthetic trees.
var NoPos = Pos{}

// From returns the start offset of a position.
func (p Pos) From() uint64 {
	return p[0]
}

// To returns the end offset of a position.
func (p Pos) To() uint64 {
	return p[1]
}

// IsNone returns true for the synthetic placeholder position.
func (p Pos) IsNone() bool {
	return p == Pos{}
}

func (p Pos) String() string {
	if p.IsNone() {
		return "(–)"
	}
	return fmt.Sprintf("(%d…%d)", p[0], p[1])
}

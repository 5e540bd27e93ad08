package nexpr

import "fmt"

// Operator tags for Unary and Binary nodes, together with an advisory fixity
// table. The tree structure alone determines meaning — nodes carry no
// parenthesization — but a printer reproducing surface syntax has to know
// each operator's precedence and associativity to emit text a parser will
// read back into the same tree. OpDef is that contract.

// UnaryOp is the operator tag of a Unary node.
type UnaryOp int8

// Unary operator tags.
const (
	OpNeg UnaryOp = iota + 1 // arithmetic negation
	OpNot                    // boolean negation
)

// BinaryOp is the operator tag of a Binary node.
type BinaryOp int8

// Binary operator tags. Every tag is distinct; shorthand builders in mk bind
// exactly one tag each.
const (
	OpEq      BinaryOp = iota + 1 // ==
	OpNEq                         // !=
	OpLt                          // <
	OpLte                         // <=
	OpGt                          // >
	OpGte                         // >=
	OpAnd                         // &&
	OpOr                          // ||
	OpImpl                        // ->
	OpUpdate                      // //  (right operand overrides left)
	OpPlus                        // +
	OpMinus                       // -
	OpMult                        // *
	OpDiv                         // /
	OpConcat                      // ++  (list concatenation)
	OpHasAttr                     // ?
	OpApp                         // function application
)

// Assoc is an operator associativity.
type Assoc int8

// Associativities.
const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
)

func (a Assoc) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	}
	return "none"
}

// OpDef describes an operator's surface symbol and fixity. Precedence counts
// upward from loosest-binding: implication binds loosest (1), unary
// operators bind tighter than every binary operator, and attribute selection
// (which is not an operator node but a Select node) binds tightest of all,
// at PrecSelect.
type OpDef struct {
	Sym   string
	Prec  int
	Assoc Assoc
}

// Precedence levels of the non-operator forms, for printers: function
// application and attribute selection bind tighter than every operator
// listed in the fixity table; a function literal's arrow binds looser.
const (
	PrecFunction = 0  // lambda arrow, right-associative
	PrecApp      = 12 // function application, left-associative
	PrecSelect   = 13 // attribute selection
)

var unaryOpDefs = map[UnaryOp]OpDef{
	OpNeg: {"-", 11, AssocNone},
	OpNot: {"!", 10, AssocNone},
}

var binaryOpDefs = map[BinaryOp]OpDef{
	OpImpl:    {"->", 1, AssocRight},
	OpOr:      {"||", 2, AssocLeft},
	OpAnd:     {"&&", 3, AssocLeft},
	OpEq:      {"==", 4, AssocNone},
	OpNEq:     {"!=", 4, AssocNone},
	OpLt:      {"<", 5, AssocNone},
	OpLte:     {"<=", 5, AssocNone},
	OpGt:      {">", 5, AssocNone},
	OpGte:     {">=", 5, AssocNone},
	OpUpdate:  {"//", 6, AssocRight},
	OpPlus:    {"+", 7, AssocLeft},
	OpMinus:   {"-", 7, AssocLeft},
	OpMult:    {"*", 8, AssocLeft},
	OpDiv:     {"/", 8, AssocLeft},
	OpConcat:  {"++", 9, AssocRight},
	OpHasAttr: {"?", 10, AssocNone},
	OpApp:     {"apply", PrecApp, AssocLeft},
}

// Def returns the fixity entry for op.
func (op UnaryOp) Def() OpDef {
	if def, ok := unaryOpDefs[op]; ok {
		return def
	}
	return OpDef{Sym: fmt.Sprintf("UnaryOp(%d)", op)}
}

// Def returns the fixity entry for op.
func (op BinaryOp) Def() OpDef {
	if def, ok := binaryOpDefs[op]; ok {
		return def
	}
	return OpDef{Sym: fmt.Sprintf("BinaryOp(%d)", op)}
}

func (op UnaryOp) String() string {
	return op.Def().Sym
}

func (op BinaryOp) String() string {
	return op.Def().Sym
}

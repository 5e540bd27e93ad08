package nexpr

import (
	"fmt"
	"strings"

	"github.com/hamishmack/hnix"
)

// Bindings are the entries of attribute sets and let containers. Two forms
// exist: a name=value assignment (NamedVar) and an inherit clause (Inherit).
//
// Every binding carries a source position. Trees synthesized through this
// package always carry hnix.NoPos there; the field exists so that a parser
// producing the same tree type can record real locations, and all structural
// comparison in this package ignores it.

// Binding is one entry of an attribute set or let container.
type Binding interface {
	fmt.Stringer
	Pos() hnix.Pos
	bindingNode()
}

// NamedVar binds an attribute path to a value expression. Path is never
// empty.
type NamedVar struct {
	Path  AttrPath
	Value Expr
	At    hnix.Pos `hash:"-"`
}

// Inherit pulls names into the container. With From == nil each name is
// taken from the nearest enclosing lexical scope outside the container; with
// a source expression each name is a field projection off that expression.
type Inherit struct {
	From  Expr // may be nil
	Names []Key
	At    hnix.Pos `hash:"-"`
}

func (*NamedVar) bindingNode() {}
func (*Inherit) bindingNode()  {}

// Pos is part of the Binding interface.
func (nv *NamedVar) Pos() hnix.Pos { return nv.At }

// Pos is part of the Binding interface.
func (in *Inherit) Pos() hnix.Pos { return in.At }

func (nv *NamedVar) String() string {
	return fmt.Sprintf("(%s = %s)", nv.Path, nv.Value)
}

func (in *Inherit) String() string {
	var b strings.Builder
	b.WriteString("(inherit")
	if in.From != nil {
		b.WriteString(" from ")
		b.WriteString(in.From.String())
	}
	for _, k := range in.Names {
		b.WriteByte(' ')
		b.WriteString(k.String())
	}
	b.WriteByte(')')
	return b.String()
}

// --- Function parameters ----------------------------------------------------

// Params is a function's parameter declaration: either a single plain name
// (Param) or a destructuring set pattern (ParamSet).
type Params interface {
	fmt.Stringer
	paramsNode()
}

// Param is a plain named parameter.
type Param string

// ParamSet is a set-destructuring parameter pattern: an ordered sequence of
// names with optional defaults, a variadic flag ("..." accepted), and an
// alias name ("pat@{…}"). The mk builders always leave Alias empty.
type ParamSet struct {
	Params   []ParamDef
	Variadic bool
	Alias    string
}

// ParamDef is one entry of a ParamSet.
type ParamDef struct {
	Name    string
	Default Expr // may be nil
}

func (Param) paramsNode()     {}
func (*ParamSet) paramsNode() {}

func (p Param) String() string {
	return string(p)
}

func (ps *ParamSet) String() string {
	var b strings.Builder
	if ps.Alias != "" {
		b.WriteString(ps.Alias)
		b.WriteByte('@')
	}
	b.WriteByte('{')
	for i, pd := range ps.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(pd.Name)
		if pd.Default != nil {
			b.WriteString(" ? ")
			b.WriteString(pd.Default.String())
		}
	}
	if ps.Variadic {
		if len(ps.Params) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteByte('}')
	return b.String()
}

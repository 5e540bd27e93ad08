package nexpr

// Structural equality. Two trees are equal iff they have the same shape with
// equal tags, names and atom payloads; source positions on bindings are
// ignored, so a synthesized tree compares equal to the parsed tree for the
// same expression. Identity of nodes never matters.

// Equal reports position-insensitive structural equality of two trees.
// Two nil expressions are equal.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Constant:
		y, ok := b.(*Constant)
		return ok && x.Value == y.Value
	case *Str:
		y, ok := b.(*Str)
		return ok && equalParts(x.Parts, y.Parts)
	case *IndentedStr:
		y, ok := b.(*IndentedStr)
		return ok && x.Indent == y.Indent && equalParts(x.Parts, y.Parts)
	case *LiteralPath:
		y, ok := b.(*LiteralPath)
		return ok && x.Text == y.Text
	case *EnvPath:
		y, ok := b.(*EnvPath)
		return ok && x.Text == y.Text
	case *Sym:
		y, ok := b.(*Sym)
		return ok && x.Name == y.Name
	case *SynHole:
		y, ok := b.(*SynHole)
		return ok && x.Name == y.Name
	case *Unary:
		y, ok := b.(*Unary)
		return ok && x.Op == y.Op && Equal(x.X, y.X)
	case *Binary:
		y, ok := b.(*Binary)
		return ok && x.Op == y.Op && Equal(x.L, y.L) && Equal(x.R, y.R)
	case *Select:
		y, ok := b.(*Select)
		return ok && Equal(x.X, y.X) && EqualPath(x.Path, y.Path) && Equal(x.Default, y.Default)
	case *AttrSet:
		y, ok := b.(*AttrSet)
		return ok && x.Rec == y.Rec && equalBindings(x.Bindings, y.Bindings)
	case *List:
		y, ok := b.(*List)
		if !ok || len(x.Elems) != len(y.Elems) {
			return false
		}
		for i := range x.Elems {
			if !Equal(x.Elems[i], y.Elems[i]) {
				return false
			}
		}
		return true
	case *Let:
		y, ok := b.(*Let)
		return ok && equalBindings(x.Bindings, y.Bindings) && Equal(x.Body, y.Body)
	case *With:
		y, ok := b.(*With)
		return ok && Equal(x.Scope, y.Scope) && Equal(x.Body, y.Body)
	case *Assert:
		y, ok := b.(*Assert)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Body, y.Body)
	case *If:
		y, ok := b.(*If)
		return ok && Equal(x.Cond, y.Cond) && Equal(x.Then, y.Then) && Equal(x.Else, y.Else)
	case *Function:
		y, ok := b.(*Function)
		return ok && equalParamDecls(x.Params, y.Params) && Equal(x.Body, y.Body)
	}
	tracer().Errorf("equality on unknown node type %T", a)
	return false
}

// EqualBinding reports structural equality of two bindings, ignoring their
// source positions.
func EqualBinding(a, b Binding) bool {
	switch x := a.(type) {
	case *NamedVar:
		y, ok := b.(*NamedVar)
		return ok && EqualPath(x.Path, y.Path) && Equal(x.Value, y.Value)
	case *Inherit:
		y, ok := b.(*Inherit)
		if !ok || !Equal(x.From, y.From) || len(x.Names) != len(y.Names) {
			return false
		}
		for i := range x.Names {
			if !equalKey(x.Names[i], y.Names[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// EqualPath reports structural equality of two attribute paths.
func EqualPath(a, b AttrPath) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalKey(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalKey(a, b Key) bool {
	switch x := a.(type) {
	case StaticKey:
		y, ok := b.(StaticKey)
		return ok && x == y
	case *DynamicKey:
		y, ok := b.(*DynamicKey)
		return ok && Equal(x.X, y.X)
	}
	return false
}

func equalParts(a, b []StrPart) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		switch x := a[i].(type) {
		case Lit:
			y, ok := b[i].(Lit)
			if !ok || x != y {
				return false
			}
		case *Interp:
			y, ok := b[i].(*Interp)
			if !ok || !Equal(x.X, y.X) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func equalBindings(a, b []Binding) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualBinding(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalParamDecls(a, b Params) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Param:
		y, ok := b.(Param)
		return ok && x == y
	case *ParamSet:
		y, ok := b.(*ParamSet)
		if !ok || x.Variadic != y.Variadic || x.Alias != y.Alias ||
			len(x.Params) != len(y.Params) {
			return false
		}
		for i := range x.Params {
			if x.Params[i].Name != y.Params[i].Name ||
				!Equal(x.Params[i].Default, y.Params[i].Default) {
				return false
			}
		}
		return true
	}
	return false
}

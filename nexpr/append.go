package nexpr

// Typed structural transformation. These methods are the compile-time-safe
// counterparts of mk.AppendBindings and mk.ModifyFunctionBody: only the node
// types for which the operation is meaningful carry them. Each returns a new
// value and leaves the receiver unchanged.

// Append returns a new attribute set with the given bindings appended after
// the existing ones. Order is significant: under downstream merge semantics
// later bindings can shadow earlier ones.
func (a *AttrSet) Append(bindings ...Binding) *AttrSet {
	return &AttrSet{Rec: a.Rec, Bindings: appendBindings(a.Bindings, bindings)}
}

// Append returns a new let container with the given bindings appended after
// the existing ones, with the same body.
func (l *Let) Append(bindings ...Binding) *Let {
	return &Let{Bindings: appendBindings(l.Bindings, bindings), Body: l.Body}
}

func appendBindings(old, add []Binding) []Binding {
	out := make([]Binding, 0, len(old)+len(add))
	out = append(out, old...)
	return append(out, add...)
}

// MapBody returns a new function with the same parameters and the body
// replaced by f(body).
func (f *Function) MapBody(transform func(Expr) Expr) *Function {
	return &Function{Params: f.Params, Body: transform(f.Body)}
}

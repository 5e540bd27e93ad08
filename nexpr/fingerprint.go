package nexpr

import (
	"fmt"

	"github.com/cnf/structhash"
)

// Fingerprinting of trees, e.g. for deduplication or cache keys in
// generators. A fingerprint covers the canonical structure of a tree —
// variant tags, names, atom kinds and payloads — and never its source
// positions, so a synthesized tree and the parsed tree for the same
// expression fingerprint identically (mirroring Equal).

const fingerprintVersion = 1

// Fingerprint returns a stable hash string for a tree. Equal trees have
// equal fingerprints. Returns an error only if hashing fails, which for a
// well-formed tree it does not.
func Fingerprint(e Expr) (string, error) {
	return structhash.Hash(digestStruct{Tree: digest(e)}, fingerprintVersion)
}

// FingerprintSha1 returns the raw SHA1 of the canonical encoding.
func FingerprintSha1(e Expr) []byte {
	return structhash.Sha1(digestStruct{Tree: digest(e)}, fingerprintVersion)
}

// digestStruct is the value handed to structhash; hashing a struct keeps the
// version scheme of structhash applicable.
type digestStruct struct {
	Tree interface{}
}

// digest builds a canonical, position-free encoding of a tree: nested
// slices, each headed by a variant tag. Distinct variants get distinct tags
// even where their Go field shapes coincide.
func digest(e Expr) interface{} {
	if e == nil {
		return "nil" // keep the encoding free of nil interface values
	}
	switch n := e.(type) {
	case *Constant:
		if n.Value == nil {
			return list("const")
		}
		return list("const", n.Value.Kind().String(), n.Value.String())
	case *Str:
		return list("str", digestParts(n.Parts))
	case *IndentedStr:
		return list("istr", n.Indent, digestParts(n.Parts))
	case *LiteralPath:
		return list("path", n.Text)
	case *EnvPath:
		return list("envpath", n.Text)
	case *Sym:
		return list("sym", n.Name)
	case *SynHole:
		return list("hole", n.Name)
	case *Unary:
		return list("op1", int(n.Op), digest(n.X))
	case *Binary:
		return list("op2", int(n.Op), digest(n.L), digest(n.R))
	case *Select:
		return list("select", digest(n.X), digestPath(n.Path), digest(n.Default))
	case *AttrSet:
		return list("set", n.Rec, digestBindings(n.Bindings))
	case *List:
		elems := make([]interface{}, len(n.Elems))
		for i, el := range n.Elems {
			elems[i] = digest(el)
		}
		return list("list", elems)
	case *Let:
		return list("let", digestBindings(n.Bindings), digest(n.Body))
	case *With:
		return list("with", digest(n.Scope), digest(n.Body))
	case *Assert:
		return list("assert", digest(n.Cond), digest(n.Body))
	case *If:
		return list("if", digest(n.Cond), digest(n.Then), digest(n.Else))
	case *Function:
		return list("lambda", digestParams(n.Params), digest(n.Body))
	}
	tracer().Errorf("fingerprint of unknown node type %T", e)
	return list(fmt.Sprintf("unknown:%T", e))
}

func list(items ...interface{}) []interface{} {
	return items
}

func digestParts(parts []StrPart) []interface{} {
	out := make([]interface{}, len(parts))
	for i, p := range parts {
		switch sp := p.(type) {
		case Lit:
			out[i] = list("lit", string(sp))
		case *Interp:
			out[i] = list("interp", digest(sp.X))
		}
	}
	return out
}

func digestPath(path AttrPath) []interface{} {
	out := make([]interface{}, len(path))
	for i, k := range path {
		switch key := k.(type) {
		case StaticKey:
			out[i] = list("key", string(key))
		case *DynamicKey:
			out[i] = list("dynkey", digest(key.X))
		}
	}
	return out
}

func digestBindings(bindings []Binding) []interface{} {
	out := make([]interface{}, len(bindings))
	for i, b := range bindings {
		switch bd := b.(type) {
		case *NamedVar:
			out[i] = list("bind", digestPath(bd.Path), digest(bd.Value))
		case *Inherit:
			names := make([]interface{}, len(bd.Names))
			for j, k := range bd.Names {
				switch key := k.(type) {
				case StaticKey:
					names[j] = list("key", string(key))
				case *DynamicKey:
					names[j] = list("dynkey", digest(key.X))
				}
			}
			out[i] = list("inherit", digest(bd.From), names)
		}
	}
	return out
}

func digestParams(params Params) interface{} {
	switch p := params.(type) {
	case Param:
		return list("param", string(p))
	case *ParamSet:
		defs := make([]interface{}, len(p.Params))
		for i, pd := range p.Params {
			defs[i] = list(pd.Name, digest(pd.Default))
		}
		return list("paramset", defs, p.Variadic, p.Alias)
	}
	return "nil"
}

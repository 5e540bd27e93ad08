/*
Package nexpr implements the expression-tree data model for the Nix
expression language.

A tree is built from one node type per expression form: constants, strings
(possibly interpolated), paths, symbols, operators, attribute sets, lists,
let/with/assert/if, and functions. Nodes own their children and are never
mutated after construction; "modifying" a tree always means building a new
one, which makes sharing of subtrees across consumers safe.

Trees are ordinarily assembled with the builder functions of the sub-package
mk, bottom-up. The node types are exported so that clients needing forms the
builders do not cover — interpolated strings, dynamic attribute keys — can
construct those variants directly.

Note that nexpr guarantees structural well-formedness only. Language-level
rules (duplicate attribute keys, whether a recursive set's bindings may refer
to each other) are the business of an evaluator, not of this package: the
recursivity flag and binding order are carried faithfully but not
interpreted.

Besides the node types, the package provides shape-generic traversal (Walk,
Transform), position-insensitive structural equality and fingerprinting, and
a free-variable analysis.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 Hamish Mackenzie


*/
package nexpr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hnix.nexpr'.
func tracer() tracing.Trace {
	return tracing.Select("hnix.nexpr")
}

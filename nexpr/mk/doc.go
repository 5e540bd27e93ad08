/*
Package mk is the builder API for nexpr trees.

Builders assemble trees bottom-up: leaves first, then operators, then
containers and control forms. Every builder is a pure function returning a
new immutable value, and — except for the two structural transformers
AppendBindings and ModifyFunctionBody — no builder can fail on well-typed
input.

A flavour of the API:

    // { greeting = "hello"; audience = lib.who; }
    set := mk.Attrs(
        mk.P("greeting", mk.Str("hello")),
        mk.P("audience", mk.Dot(mk.Sym("lib"), "who")),
    )

    // x: y: x + y
    add := mk.Func(mk.Param("x"), mk.Func(mk.Param("y"),
        mk.Add(mk.Sym("x"), mk.Sym("y"))))

The two structural transformers inspect an already-built tree's top node and
either extend it or fail: passing anything but an attribute set or a let to
AppendBindings (or anything but a function to ModifyFunctionBody) is a
programming error and panics. Callers holding the concrete node type should
prefer the panic-free typed forms (*nexpr.AttrSet).Append, (*nexpr.Let).Append
and (*nexpr.Function).MapBody.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 Hamish Mackenzie


*/
package mk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hnix.mk'.
func tracer() tracing.Trace {
	return tracing.Select("hnix.mk")
}

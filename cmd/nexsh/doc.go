/*
Package nexsh/main provides an interactive command line tool for
synthesizing Nix expression trees with the hnix builder API. It serves
as a sandbox for experiments with programmatic tree construction, useful
while developing generators and rewriters.

Commands operate on a value stack: literals are pushed, operators and
containers pop their operands and push the combined tree. Inspection
commands render the top of the stack as a tree, list its free variables
or print its fingerprint.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 Hamish Mackenzie

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hnix.nexsh'
func tracer() tracing.Trace {
	return tracing.Select("hnix.nexsh")
}

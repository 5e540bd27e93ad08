/*
Package hnix provides tooling for the Nix expression language.

hnix-go strives to be a small and dependable toolbox for synthesizing
and transforming Nix expression trees programmatically, without going
through a textual parser. Package structure is as follows:

■ nexpr: Package nexpr defines the expression-tree data model: one node
type per expression form, bindings, attribute paths, parameter
declarations, operator tags, plus generic traversal and analysis helpers.

■ nexpr/mk: Package mk is the builder API. It assembles nexpr values
bottom-up — literals first, then operators, then containers and control
forms — and provides the structural transformers for already-built trees.

■ cmd/nexsh: An interactive sandbox for experimenting with the builder
API on a terminal.

The base package contains boundary types which are used throughout all
the other packages: the atom model for primitive literals, and source
positions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 Hamish Mackenzie

*/
package hnix

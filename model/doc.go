// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory representation of a computation
// declared as named nodes. Its core purpose is to give callers a plain,
// strongly-typed declaration table that the graph compiler consumes.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Table: The root container, a mapping from node name to declaration.
//     It is ordinary data; callers assemble it literally or through the
//     compose package.
//
//   - Decl: A single node declaration, pairing the ordered list of
//     dependency names with the function computing the node's value.
//
//   - Func: The uniform shape of every node function. It receives the
//     resolved dependency values positionally, in declared order, and
//     returns the node's value or an error.
//
// Why a separate model package?
//
// The table is the shared input of every other layer: the compose package
// rewrites its keys, the dag package compiles it into a dependency
// relation, and the executor reads declarations back out of the compiled
// graph. Keeping it as a standalone data package means none of those layers
// depend on each other to agree on what a declaration is.
//
// A Table is treated as immutable once handed to the compiler. Nothing in
// this module mutates a table in place; every transformation returns a new
// one.
package model

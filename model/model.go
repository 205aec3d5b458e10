// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package model

import (
	"slices"

	"github.com/vk/calcgraph/nodeid"
)

// Func is the uniform shape of a node function. It receives one resolved
// value per declared dependency, positionally, in declared order. Node
// functions are assumed pure: deterministic and free of observable side
// effects. An error returned here is handed back to the caller of
// executor.Execute unmodified.
type Func func(args []any) (any, error)

// Decl declares a single node: the ordered names of its dependencies and
// the function that computes its value from them.
type Decl struct {
	Deps []nodeid.Name
	Fn   Func
}

// NewDecl builds a declaration from a function and its dependency names.
func NewDecl(fn Func, deps ...nodeid.Name) Decl {
	return Decl{Deps: deps, Fn: fn}
}

// Table maps node names to their declarations. Keys are unique by
// construction; insertion order is irrelevant.
type Table map[nodeid.Name]Decl

// Names returns the table's keys sorted in canonical name order.
func (t Table) Names() []nodeid.Name {
	names := make([]nodeid.Name, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.SortFunc(names, nodeid.Compare)
	return names
}

// Clone returns a copy of the table. Declarations are copied including
// their dependency slices, so rewriting a clone never aliases the original.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for name, decl := range t {
		out[name] = Decl{Deps: slices.Clone(decl.Deps), Fn: decl.Fn}
	}
	return out
}

// Merge combines tables into one by key-wise union. On duplicate keys the
// last table wins. Use the compose package to namespace tables first when
// collisions are not intended.
func Merge(tables ...Table) Table {
	out := make(Table)
	for _, t := range tables {
		for name, decl := range t {
			out[name] = decl
		}
	}
	return out
}

package dag

import (
	"fmt"
	"slices"

	"github.com/vk/calcgraph/model"
	"github.com/vk/calcgraph/nodeid"
)

// Graph is the compiled dependency relation derived from a declaration
// table. It is read-only after Compile returns: all accessors hand out
// copies of the internal indices, and the declaration table it references
// must not be mutated after compilation.
type Graph struct {
	// table is the originating declaration table, held by shared reference.
	table model.Table
	// nodes stores one entry per name appearing anywhere in the relation,
	// declared or not. Relations are kept as name references into this
	// table, never as pointers between entries.
	nodes map[nodeid.Name]*node
	// order is the evaluation order fixed at compile time: every name
	// appears after all names it depends on, ties broken lexicographically.
	order []nodeid.Name
}

// node represents a single vertex in the relation. It is un-exported to
// enforce interaction with the graph via the public API (using names),
// not by direct struct manipulation.
type node struct {
	// name is the unique identifier for the node.
	name nodeid.Name
	// deps holds the set of names this node depends on (predecessors).
	deps map[nodeid.Name]bool
	// dependents holds the set of names that depend on this node (successors).
	dependents map[nodeid.Name]bool
}

// Table returns the declaration table the graph was compiled from. Callers
// must treat it as read-only.
func (g *Graph) Table() model.Table {
	return g.table
}

// Names returns every name appearing in the relation, sorted. This covers
// declared nodes and names referenced only as dependencies.
func (g *Graph) Names() []nodeid.Name {
	names := make([]nodeid.Name, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sortNames(names)
	return names
}

// Order returns the evaluation order fixed at compilation: a topological
// order over Names() in which every name appears after all names it
// depends on. Mutually independent names are ordered lexicographically, so
// the order is identical across compilations of equal tables.
func (g *Graph) Order() []nodeid.Name {
	return slices.Clone(g.order)
}

// Dependencies returns the sorted set of names the given node directly
// depends on. An error is returned if the name is not part of the relation.
func (g *Graph) Dependencies(name nodeid.Name) ([]nodeid.Name, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", name)
	}
	return sortedKeys(n.deps), nil
}

// Dependents returns the sorted set of names that directly depend on the
// given node. An error is returned if the name is not part of the relation.
func (g *Graph) Dependents(name nodeid.Name) ([]nodeid.Name, error) {
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", name)
	}
	return sortedKeys(n.dependents), nil
}

// FreeVariables returns the sorted set of names that are referenced as a
// dependency somewhere in the graph but have neither a declaration in the
// table nor an entry in bindings. A nil bindings map is treated as empty.
// No evaluation occurs; this is pure set arithmetic over the relation.
func (g *Graph) FreeVariables(bindings map[nodeid.Name]any) []nodeid.Name {
	var free []nodeid.Name
	for name, n := range g.nodes {
		if len(n.dependents) == 0 {
			continue // never referenced as a dependency
		}
		if _, declared := g.table[name]; declared {
			continue
		}
		if _, bound := bindings[name]; bound {
			continue
		}
		free = append(free, name)
	}
	sortNames(free)
	return free
}

func sortedKeys(set map[nodeid.Name]bool) []nodeid.Name {
	names := make([]nodeid.Name, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sortNames(names)
	return names
}

func sortNames(names []nodeid.Name) {
	slices.SortFunc(names, nodeid.Compare)
}

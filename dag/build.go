package dag

import (
	"context"

	"github.com/vk/calcgraph/internal/ctxlog"
	"github.com/vk/calcgraph/model"
	"github.com/vk/calcgraph/nodeid"
)

// Compile constructs a validated dependency graph from a declaration table.
// Every dependency reference adds a directed edge; references to names the
// table does not declare are legal and become leaves of the relation (free
// variables until bound at execution time). Compilation fails with a
// *CyclicError if the edges form a cycle, and no partial graph is returned.
//
// Compiling is pure and repeatable: the table is not mutated, and compiling
// equal tables yields graphs with equal relations and equal evaluation
// orders.
func Compile(ctx context.Context, table model.Table) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Compile: starting graph construction.", "decl_count", len(table))

	graph := &Graph{
		table: table,
		nodes: make(map[nodeid.Name]*node, len(table)),
	}

	// First pass: create a relation entry per name and link both indices.
	for name, decl := range table {
		n := graph.ensureNode(name)
		for _, dep := range decl.Deps {
			d := graph.ensureNode(dep)
			n.deps[dep] = true
			d.dependents[name] = true
		}
	}
	logger.Debug("Compile: relation construction complete.", "node_count", len(graph.nodes))

	// Second pass: fix the evaluation order. The same traversal proves
	// acyclicity: a back edge surfaces as a *CyclicError.
	order, err := graph.sortTopologically()
	if err != nil {
		return nil, err
	}
	graph.order = order
	logger.Debug("Compile: cycle check passed, evaluation order fixed.")

	return graph, nil
}

func (g *Graph) ensureNode(name nodeid.Name) *node {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := &node{
		name:       name,
		deps:       make(map[nodeid.Name]bool),
		dependents: make(map[nodeid.Name]bool),
	}
	g.nodes[name] = n
	return n
}

// sortTopologically orders every name in the relation after all names it
// depends on. Determinism comes from visiting names and their dependency
// sets in lexicographic order: independent names end up sorted.
func (g *Graph) sortTopologically() ([]nodeid.Name, error) {
	// Classic depth-first search with three sets of nodes:
	// permanent: fully visited, known not to sit on a cycle.
	// temporary: currently on the recursion stack.
	// unvisited: everything else.
	permanent := make(map[nodeid.Name]bool)
	temporary := make(map[nodeid.Name]bool)
	order := make([]nodeid.Name, 0, len(g.nodes))

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.name] {
			return nil
		}
		if temporary[n.name] {
			// A node already on the recursion stack means a back edge.
			return &CyclicError{Name: n.name}
		}

		temporary[n.name] = true

		for _, dep := range sortedKeys(n.deps) {
			if err := visit(g.nodes[dep]); err != nil {
				return err
			}
		}

		delete(temporary, n.name)
		permanent[n.name] = true

		// All dependencies precede this point, so post-order append
		// yields a valid evaluation order.
		order = append(order, n.name)
		return nil
	}

	for _, name := range g.Names() {
		if err := visit(g.nodes[name]); err != nil {
			return nil, err
		}
	}

	return order, nil
}

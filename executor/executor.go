package executor

import (
	"context"
	"fmt"

	"github.com/vk/calcgraph/dag"
	"github.com/vk/calcgraph/internal/ctxlog"
	"github.com/vk/calcgraph/nodeid"
)

// Bindings supplies caller-known values by name. A binding satisfies a free
// variable, or overrides a declared node: an overridden node's function is
// never invoked and the bound value is final.
type Bindings map[nodeid.Name]any

// Result maps every bound and computed name to its resolved value. It is
// created fresh per Execute call and never retained by the engine.
type Result map[nodeid.Name]any

// Execute evaluates the graph under the given bindings.
//
// It first validates that the bindings cover every free variable; if any
// are missing it fails with an *UnboundError listing all of them, without
// invoking a single node function. It then walks the graph's evaluation
// order, skipping bound names, and applies each remaining node's function
// to the already-resolved values of its declared dependencies, in declared
// order. An error returned by a node function aborts the pass and is handed
// back unmodified; no partial result is returned.
func Execute(ctx context.Context, graph *dag.Graph, bindings Bindings) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	if free := graph.FreeVariables(bindings); len(free) > 0 {
		return nil, &UnboundError{Names: free}
	}
	logger.Debug("Execute: binding validation passed.", "binding_count", len(bindings))

	table := graph.Table()
	result := make(Result, len(bindings)+len(table))
	for name, value := range bindings {
		result[name] = value
	}

	for _, name := range graph.Order() {
		if _, bound := bindings[name]; bound {
			// Overridden or externally supplied; taken as given.
			continue
		}

		decl, ok := table[name]
		if !ok {
			// Every unbound name in the order is declared, or step 1
			// would have failed.
			panic(fmt.Sprintf("executor: name %q in evaluation order has no declaration and no binding", name))
		}

		args := make([]any, len(decl.Deps))
		for i, dep := range decl.Deps {
			v, ok := result[dep]
			if !ok {
				// The evaluation order guarantees dependencies resolve
				// first; a miss here is an engine bug, not caller error.
				panic(fmt.Sprintf("executor: dependency %q of node %q unresolved", dep, name))
			}
			args[i] = v
		}

		value, err := decl.Fn(args)
		if err != nil {
			return nil, err
		}
		result[name] = value
		logger.Debug("Execute: node evaluated.", "node", name.String())
	}

	logger.Debug("Execute: pass complete.", "result_count", len(result))
	return result, nil
}

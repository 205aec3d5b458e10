// Package executor is the evaluation layer of the engine. Given a compiled
// graph and bindings for its free variables, it applies every node function
// exactly once, in the graph's fixed dependency order, and returns one
// mapping holding the bound and computed value of every name.
//
// Execution is a single synchronous pass. Nothing is cached between calls,
// no nodes run concurrently, and a graph may be shared by any number of
// simultaneous Execute calls because each call folds into its own fresh
// result map.
package executor

// Package dag is the compilation layer of the engine. It is responsible for
// taking a declaration table from the model package, deriving the directed
// dependency relation between node names, rejecting cycles, and fixing a
// deterministic evaluation order. The resulting Graph is immutable and may
// be shared freely, including across concurrent executions.
package dag

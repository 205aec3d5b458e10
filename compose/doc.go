// Package compose provides pure transformations over declaration tables so
// that independently authored tables can be merged without name collisions.
// Every function returns a new table; inputs are never mutated. All
// transforms run before compilation and rewrite both the table's keys and
// the dependency names referenced inside declarations.
package compose

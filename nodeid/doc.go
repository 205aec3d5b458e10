// nodeid/doc.go

/*
Package nodeid provides a structured, type-safe representation for node
names within the system, based on the canonical format `namespace/local`.

The namespace segment is optional: `calc/total` and `total` are both valid
names, the latter unqualified. Names are small comparable values with
structural equality and may be used directly as map keys.

This package enforces the name schema and centralizes all formatting and
parsing logic, improving maintainability and robustness.
*/
package nodeid

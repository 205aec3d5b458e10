// nodeid/nodeid.go
package nodeid

import "strings"

// Name is the structured representation of a node identifier. It is a pair
// of an optional namespace segment and a mandatory local segment. The zero
// value is not a valid name.
type Name struct {
	Namespace string // empty for unqualified names
	Local     string
}

// New creates an unqualified name from a local segment.
func New(local string) Name {
	return Name{Local: local}
}

// Qualified creates a name carrying both a namespace and a local segment.
func Qualified(namespace, local string) Name {
	return Name{Namespace: namespace, Local: local}
}

// IsQualified returns true if the name carries a namespace segment.
func (n Name) IsQualified() bool {
	return n.Namespace != ""
}

// WithNamespace returns a copy of the name with its namespace segment
// replaced. The local segment is untouched.
func (n Name) WithNamespace(namespace string) Name {
	return Name{Namespace: namespace, Local: n.Local}
}

// String serializes the Name into its canonical string representation,
// `namespace/local` for qualified names and the bare local segment otherwise.
func (n Name) String() string {
	if n.Namespace == "" {
		return n.Local
	}
	return n.Namespace + "/" + n.Local
}

// Less reports whether n sorts before other in the canonical string order.
// Namespaces compare first, then local segments, so names group by namespace.
func (n Name) Less(other Name) bool {
	return Compare(n, other) < 0
}

// Compare orders names by namespace segment, then local segment. It is
// shaped for use with slices.SortFunc.
func Compare(a, b Name) int {
	if c := strings.Compare(a.Namespace, b.Namespace); c != 0 {
		return c
	}
	return strings.Compare(a.Local, b.Local)
}

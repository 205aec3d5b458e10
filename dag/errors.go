package dag

import (
	"fmt"

	"github.com/vk/calcgraph/nodeid"
)

// CyclicError reports that the declared dependency edges form a cycle.
// Name identifies a node involved in the detected cycle. The table cannot
// be compiled as given; the caller must fix the declaration.
type CyclicError struct {
	Name nodeid.Name
}

func (e *CyclicError) Error() string {
	return fmt.Sprintf("cycle detected involving node '%s'", e.Name)
}

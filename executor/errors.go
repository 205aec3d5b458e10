package executor

import (
	"fmt"
	"strings"

	"github.com/vk/calcgraph/nodeid"
)

// UnboundError reports that one or more names are referenced as
// dependencies but have neither a declaration nor a supplied binding.
// Names holds the full sorted set of missing names, not just the first.
// The caller can recover by supplying the missing bindings and retrying.
type UnboundError struct {
	Names []nodeid.Name
}

func (e *UnboundError) Error() string {
	names := make([]string, len(e.Names))
	for i, n := range e.Names {
		names[i] = n.String()
	}
	return fmt.Sprintf("unbound variables: %s", strings.Join(names, ", "))
}

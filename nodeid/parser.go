// nodeid/parser.go
package nodeid

import (
	"fmt"
	"regexp"
	"strings"
)

// localRegex matches a valid local segment, e.g. `total` or `sum_2`.
var localRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// namespaceRegex matches a valid namespace segment. Dots are permitted so
// that suffixed namespaces such as `calc.v2` remain parseable.
var namespaceRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// isValidSegment checks for undesirable but technically matching segments.
func isValidSegment(segment string) bool {
	switch segment {
	case ".", "..", "-":
		return false
	}
	return true
}

// Parse creates a Name by parsing its canonical string representation.
func Parse(raw string) (Name, error) {
	if raw == "" {
		return Name{}, fmt.Errorf("name cannot be empty")
	}

	namespace, local, qualified := strings.Cut(raw, "/")
	if !qualified {
		local, namespace = namespace, ""
	}
	if strings.Contains(local, "/") {
		return Name{}, fmt.Errorf("name contains more than one namespace separator: %q", raw)
	}

	if qualified {
		if !namespaceRegex.MatchString(namespace) || !isValidSegment(namespace) {
			return Name{}, fmt.Errorf("invalid namespace segment: %q", namespace)
		}
	}
	if !localRegex.MatchString(local) || !isValidSegment(local) {
		return Name{}, fmt.Errorf("invalid local segment: %q", local)
	}

	return Name{Namespace: namespace, Local: local}, nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// package-level declarations and tests where the input is a literal.
func MustParse(raw string) Name {
	n, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return n
}

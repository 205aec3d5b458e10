package compose

import (
	"regexp"
	"sort"

	"github.com/vk/calcgraph/model"
	"github.com/vk/calcgraph/nodeid"
)

// rewrite returns a copy of the table with f applied to every key and to
// every dependency name inside every declaration.
func rewrite(t model.Table, f func(nodeid.Name) nodeid.Name) model.Table {
	out := make(model.Table, len(t))
	for name, decl := range t {
		var deps []nodeid.Name
		for _, dep := range decl.Deps {
			deps = append(deps, f(dep))
		}
		out[f(name)] = model.Decl{Deps: deps, Fn: decl.Fn}
	}
	return out
}

// Qualify attaches the given namespace to every unqualified key and
// dependency name in the table. Names already carrying a namespace are
// untouched.
func Qualify(t model.Table, namespace string) model.Table {
	return rewrite(t, func(n nodeid.Name) nodeid.Name {
		if n.IsQualified() {
			return n
		}
		return n.WithNamespace(namespace)
	})
}

// Rename replaces every key and dependency name that has an entry in the
// mapping with its replacement. Names without an entry pass through
// unchanged.
func Rename(t model.Table, mapping map[nodeid.Name]nodeid.Name) model.Table {
	return rewrite(t, func(n nodeid.Name) nodeid.Name {
		if to, ok := mapping[n]; ok {
			return to
		}
		return n
	})
}

// RenameNamespaces replaces the namespace segment of every key and
// dependency name according to the old-namespace to new-namespace mapping,
// leaving local segments untouched. Names whose namespace has no entry pass
// through unchanged.
func RenameNamespaces(t model.Table, mapping map[string]string) model.Table {
	return rewrite(t, func(n nodeid.Name) nodeid.Name {
		if to, ok := mapping[n.Namespace]; ok {
			return n.WithNamespace(to)
		}
		return n
	})
}

// Scope selects the namespaces AppendSuffix operates on. The zero value
// selects every namespace seen among the table's keys. Only restricts the
// selection to the listed namespaces; Exclude subtracts from it.
type Scope struct {
	Only    []string
	Exclude []string
}

func (s Scope) selected(t model.Table) map[string]bool {
	sel := make(map[string]bool)
	if len(s.Only) > 0 {
		for _, ns := range s.Only {
			sel[ns] = true
		}
	} else {
		for _, ns := range Namespaces(t) {
			sel[ns] = true
		}
	}
	for _, ns := range s.Exclude {
		delete(sel, ns)
	}
	return sel
}

// AppendSuffix appends `.<suffix>` to the namespace segment of every key
// and dependency name whose namespace is selected by the scope. Unqualified
// names have no namespace segment and are never touched.
func AppendSuffix(t model.Table, suffix string, scope Scope) model.Table {
	selected := scope.selected(t)
	return rewrite(t, func(n nodeid.Name) nodeid.Name {
		if !n.IsQualified() || !selected[n.Namespace] {
			return n
		}
		return n.WithNamespace(n.Namespace + "." + suffix)
	})
}

// FilterNamespace returns the sub-table of keys whose namespace equals ns.
// Declarations are copied as-is; dependency names are not rewritten.
func FilterNamespace(t model.Table, ns string) model.Table {
	return filter(t, func(n nodeid.Name) bool {
		return n.Namespace == ns
	})
}

// FilterNamespaceRegexp returns the sub-table of keys whose namespace
// matches the given pattern.
func FilterNamespaceRegexp(t model.Table, re *regexp.Regexp) model.Table {
	return filter(t, func(n nodeid.Name) bool {
		return re.MatchString(n.Namespace)
	})
}

func filter(t model.Table, keep func(nodeid.Name) bool) model.Table {
	out := make(model.Table)
	for name, decl := range t {
		if keep(name) {
			out[name] = decl
		}
	}
	return out
}

// Namespaces returns the distinct namespace segments among the table's
// keys, sorted. Unqualified keys contribute no namespace segment.
func Namespaces(t model.Table) []string {
	seen := make(map[string]bool)
	for name := range t {
		if name.IsQualified() {
			seen[name.Namespace] = true
		}
	}
	out := make([]string, 0, len(seen))
	for ns := range seen {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

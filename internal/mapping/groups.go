package mapping

import "sort"

// FallbackGroup is the display group for variables whose first
// schema-reconstruction step carries no aesthetic label, or that have no
// schema reconstruction at all.
const FallbackGroup = "Other"

// GroupTable maps a display group label to the names of the variables in
// it. Each list is sorted lexicographically; every variable of the source
// dataset appears in exactly one group. Group labels themselves are
// unordered here, display order is a presentation concern (see Labels).
type GroupTable map[string][]string

// GroupByAestheticLabel buckets variables by the aesthetic label of their
// first schema-reconstruction step, falling back to FallbackGroup when the
// step or its label is missing. Missing fields never fail; they degrade to
// the fallback. The result is deterministic regardless of map iteration
// order because each group's names are sorted before returning.
func GroupByAestheticLabel(variables map[string]Variable) GroupTable {
	groups := make(GroupTable)
	for name, v := range variables {
		label := FallbackGroup
		if len(v.SchemaReconstruction) > 0 && v.SchemaReconstruction[0].AestheticLabel != "" {
			label = v.SchemaReconstruction[0].AestheticLabel
		}
		groups[label] = append(groups[label], name)
	}
	for _, names := range groups {
		sort.Strings(names)
	}
	return groups
}

// Labels returns the group labels in lexicographic order, the order the
// sidebar displays them in.
func (g GroupTable) Labels() []string {
	labels := make([]string, 0, len(g))
	for label := range g {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// FirstVariable returns the first variable in group-then-variable
// lexicographic order, the one a fresh load auto-selects. Returns "" for
// an empty table.
func (g GroupTable) FirstVariable() string {
	labels := g.Labels()
	if len(labels) == 0 {
		return ""
	}
	return g[labels[0]][0]
}

// Len returns the total variable count across all groups.
func (g GroupTable) Len() int {
	n := 0
	for _, names := range g {
		n += len(names)
	}
	return n
}

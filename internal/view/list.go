package view

import (
	"net/url"

	"github.com/ziadkadry99/semview/internal/mapping"
)

// PageOptions controls the environment-specific parts of a rendered page:
// where the stylesheet lives and how a variable entry links to its page.
// The zero value targets the HTTP server's routes.
type PageOptions struct {
	// BasePath is the prefix for asset links ("" for the server, "../" for
	// a static page one level deep).
	BasePath string
	// VariableHref overrides how a sidebar entry links to a variable.
	VariableHref func(name string) string
}

func (o PageOptions) variableHref(name string) string {
	if o.VariableHref != nil {
		return o.VariableHref(name)
	}
	return "/variables/" + url.PathEscape(name)
}

// RenderList builds the sidebar: group labels in lexicographic order,
// variables in each group's pre-sorted order. Exactly one entry carries the
// active class; every entry links to its variable so selecting one replaces
// the whole page.
func RenderList(groups mapping.GroupTable, vars map[string]mapping.Variable, selected string, opts PageOptions) *Node {
	nav := Elem("nav").WithAttr("class", "sidebar").WithAttr("id", "variable-list")
	for _, label := range groups.Labels() {
		section := Elem("section").WithAttr("class", "group")
		section.Append(Elem("h3", Text(label)).WithAttr("class", "group-label"))

		ul := Elem("ul").WithAttr("class", "group-variables")
		for _, name := range groups[label] {
			class := "variable"
			if name == selected {
				class = "variable active"
			}
			entry := Elem("a").
				WithAttr("class", class).
				WithAttr("href", opts.variableHref(name))
			entry.Append(Elem("span", Text(name)).WithAttr("class", "variable-name"))
			// The class line is omitted entirely when absent, not
			// rendered empty.
			if v := vars[name]; v.Class != "" {
				entry.Append(Elem("span", Text(v.Class)).WithAttr("class", "variable-class"))
			}
			ul.Append(Elem("li", entry))
		}
		section.Append(ul)
		nav.Append(section)
	}
	return nav
}

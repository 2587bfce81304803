package view

import "github.com/ziadkadry99/semview/internal/mapping"

// placeholder is shown for absent badge and cell values.
const placeholder = "—"

// RenderDetail builds the detail panel for one variable. The result
// replaces the panel's previous content entirely; each block appears only
// when its source data is present.
func RenderDetail(name string, v mapping.Variable) *Node {
	panel := Elem("article").WithAttr("class", "detail").WithAttr("id", "variable-detail")

	header := Elem("header", Elem("h2", Text(name)))
	header.Append(Elem("div",
		badge("Predicate", v.Predicate),
		badge("Class", v.Class),
	).WithAttr("class", "badges"))
	if v.LocalDefinition != "" {
		header.Append(Elem("p", Text(v.LocalDefinition)).WithAttr("class", "local-definition"))
	}
	panel.Append(header)

	if len(v.SchemaReconstruction) > 0 {
		panel.Append(renderSchemaSteps(v.SchemaReconstruction))
	}
	if v.ValueMapping != nil && v.ValueMapping.HasTerms {
		panel.Append(renderValueMapping(v.ValueMapping))
	}
	return panel
}

// badge renders one metadata badge. Badges are always present; an absent
// value shows the placeholder.
func badge(label, value string) *Node {
	if value == "" {
		value = placeholder
	}
	return Elem("span",
		Elem("strong", Text(label+": ")),
		Text(value),
	).WithAttr("class", "badge")
}

// renderSchemaSteps lists the reconstructed ontological path, one item per
// step. The primary label falls back from class label to class id to the
// literal "Group"; the aesthetic tag and predicate line are each optional
// on their own.
func renderSchemaSteps(steps []mapping.SchemaStep) *Node {
	ol := Elem("ol").WithAttr("class", "schema-steps")
	for _, step := range steps {
		primary := step.ClassLabel
		if primary == "" {
			primary = step.Class
		}
		if primary == "" {
			primary = "Group"
		}
		li := Elem("li", Elem("span", Text(primary)).WithAttr("class", "step-label")).
			WithAttr("class", "schema-step")
		if step.AestheticLabel != "" {
			li.Append(Elem("span", Text(step.AestheticLabel)).WithAttr("class", "step-tag"))
		}
		if step.Predicate != "" {
			li.Append(Elem("div", Text("via "+step.Predicate)).WithAttr("class", "step-predicate"))
		}
		ol.Append(li)
	}
	return Elem("section",
		Elem("h3", Text("Schema reconstruction")),
		ol,
	).WithAttr("class", "schema-reconstruction")
}

// renderValueMapping renders the local-value table in the mapping's
// preserved document order. An empty terms object still gets its headers.
func renderValueMapping(m *mapping.ValueMapping) *Node {
	tbody := Elem("tbody")
	for _, term := range m.Terms {
		target := term.Mapping.TargetClass
		if target == "" {
			target = placeholder
		}
		tbody.Append(Elem("tr",
			Elem("td", Text(term.LocalValue)),
			Elem("td", Elem("code", Text(target))),
		))
	}
	table := Elem("table",
		Elem("thead", Elem("tr",
			Elem("th", Text("Local value")),
			Elem("th", Text("Ontology class")),
		)),
		tbody,
	).WithAttr("class", "terms")
	return Elem("section",
		Elem("h3", Text("Value mappings")),
		table,
	).WithAttr("class", "value-mapping")
}

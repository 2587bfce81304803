package view

import (
	"fmt"
	"net/url"
)

// RenderPage builds the whole document tree for the current state. Loading
// and Failed phases render only their indicator; Succeeded renders the
// dataset summary, the sidebar, and the selected variable's detail. Regions
// that do not apply to the phase are omitted, a failed load leaves the list
// and detail unrendered.
func RenderPage(title string, st ViewState, opts PageOptions) *Node {
	body := Elem("body")
	body.Append(renderHeader(title, st))

	switch st.Phase {
	case PhaseLoading:
		body.Append(Elem("p", Text("Loading mapping document...")).
			WithAttr("id", "loading").WithAttr("class", "indicator"))
	case PhaseFailed:
		body.Append(Elem("p", Text("Could not load mapping document: "+st.Err)).
			WithAttr("id", "error").WithAttr("class", "indicator error"))
	case PhaseSucceeded:
		layout := Elem("main").WithAttr("class", "layout")
		layout.Append(RenderList(st.Groups, st.Dataset.Variables, st.Selected, opts))
		content := Elem("div").WithAttr("class", "content").WithAttr("id", "variable-content")
		if st.Selected != "" {
			content.Append(RenderDetail(st.Selected, st.Dataset.Variables[st.Selected]))
		}
		layout.Append(content)
		body.Append(layout)
	}

	return Elem("html",
		Elem("head",
			Elem("meta").WithAttr("charset", "utf-8"),
			Elem("meta").WithAttr("name", "viewport").WithAttr("content", "width=device-width, initial-scale=1.0"),
			Elem("title", Text(title)),
			Elem("link").WithAttr("rel", "stylesheet").WithAttr("href", opts.BasePath+"style.css"),
		),
		body,
	).WithAttr("lang", "en")
}

// Page renders the state to a complete HTML document string.
func Page(title string, st ViewState, opts PageOptions) string {
	return "<!DOCTYPE html>\n" + RenderPage(title, st, opts).HTML()
}

// renderHeader builds the page header. After a successful load it carries
// the dataset summary; a count of 0 is valid and displayed as such.
func renderHeader(title string, st ViewState) *Node {
	header := Elem("header", Elem("h1", Text(title))).
		WithAttr("class", "page-header").WithAttr("id", "dataset-meta")
	if st.Phase == PhaseSucceeded {
		name := st.Dataset.DatabaseName
		if name == "" {
			name = "Unnamed dataset"
		}
		summary := fmt.Sprintf("%s: %d variables", name, len(st.Dataset.Variables))
		header.Append(Elem("p", Text(summary)).WithAttr("class", "dataset-summary"))
	}
	return header
}

// PageFileName returns the file name a static render uses for a variable's
// page. Names are percent-escaped so any variable name maps to a safe,
// unique file.
func PageFileName(name string) string {
	return url.PathEscape(name) + ".html"
}

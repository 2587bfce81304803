package view

import "strings"

// htmlEscaper replaces markup-significant characters in a single
// left-to-right pass over the original string, so an already-written
// &amp; is never re-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML returns s safe for insertion into markup. It is the only path
// data-derived text takes into HTML; the node renderer routes every text
// and attribute value through it.
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

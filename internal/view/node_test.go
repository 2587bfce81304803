package view

import (
	"strings"
	"testing"
)

func TestNodeHTML(t *testing.T) {
	n := Elem("div",
		Elem("p", Text("hello")),
		Text("tail"),
	).WithAttr("class", "box")

	got := n.HTML()
	want := `<div class="box"><p>hello</p>tail</div>`
	if got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestNodeHTMLEscapesText(t *testing.T) {
	n := Elem("span", Text(`<script>alert("x")</script>`))
	got := n.HTML()
	if strings.Contains(got, "<script>") {
		t.Errorf("text was not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Errorf("escaped form missing: %q", got)
	}
}

func TestNodeHTMLEscapesAttrs(t *testing.T) {
	n := Elem("a").WithAttr("title", `"quoted" & <tagged>`)
	got := n.HTML()
	if strings.Contains(got, `""quoted""`) || strings.Contains(got, "<tagged>") {
		t.Errorf("attribute was not escaped: %q", got)
	}
	if !strings.Contains(got, "&quot;quoted&quot; &amp; &lt;tagged&gt;") {
		t.Errorf("escaped attribute missing: %q", got)
	}
}

func TestNodeHTMLVoidTags(t *testing.T) {
	n := Elem("meta").WithAttr("charset", "utf-8")
	got := n.HTML()
	if strings.Contains(got, "</meta>") {
		t.Errorf("void tag should not close: %q", got)
	}
	if got != `<meta charset="utf-8">` {
		t.Errorf("HTML() = %q", got)
	}
}

func TestNodeHTMLNil(t *testing.T) {
	var n *Node
	if got := n.HTML(); got != "" {
		t.Errorf("nil node HTML() = %q, want empty", got)
	}
}

func TestNodeAppendChaining(t *testing.T) {
	n := Elem("ul")
	n.Append(Elem("li", Text("a"))).Append(Elem("li", Text("b")))
	if len(n.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(n.Children))
	}
	if got := n.HTML(); got != "<ul><li>a</li><li>b</li></ul>" {
		t.Errorf("HTML() = %q", got)
	}
}

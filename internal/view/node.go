package view

import "strings"

// Node is one element in the intermediate render tree. Composition logic
// builds Node trees; only the HTML method turns them into markup, which
// keeps the renderers testable without a browser-like surface and funnels
// all text through EscapeHTML.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// Attr is one rendered attribute.
type Attr struct {
	Key   string
	Value string
}

// Elem builds an element node with the given children.
func Elem(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// Text builds a plain text node.
func Text(s string) *Node {
	return &Node{Text: s}
}

// WithAttr appends an attribute and returns the node for chaining.
func (n *Node) WithAttr(key, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

// Append adds children and returns the node for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// voidTags never carry children or a closing tag.
var voidTags = map[string]bool{
	"br":   true,
	"hr":   true,
	"img":  true,
	"link": true,
	"meta": true,
}

// HTML renders the tree to markup. Text nodes and attribute values are
// escaped; element structure comes only from the tree itself, never from
// data, so the output is safe by construction.
func (n *Node) HTML() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Tag == "" {
		b.WriteString(EscapeHTML(n.Text))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(EscapeHTML(a.Value))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if voidTags[n.Tag] {
		return
	}
	if n.Text != "" {
		b.WriteString(EscapeHTML(n.Text))
	}
	for _, c := range n.Children {
		c.write(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

package markup

import (
	"sort"
	"strings"
)

// Node is anything that renders to Olex2 markup text.
type Node interface {
	Markup() string
}

// Element is a tag with ordered attributes and child nodes.
type Element struct {
	Tag      string
	Attrs    *Attrs
	Children []Node
}

// NewElement creates an element. attrs is cloned so callers can keep reusing
// their map.
func NewElement(tag string, attrs *Attrs, children ...Node) *Element {
	return &Element{
		Tag:      tag,
		Attrs:    attrs.Clone(),
		Children: compact(children),
	}
}

// Add appends children and returns the element.
func (e *Element) Add(children ...Node) *Element {
	e.Children = append(e.Children, compact(children)...)
	return e
}

// Prepend inserts children ahead of the existing ones.
func (e *Element) Prepend(children ...Node) *Element {
	e.Children = append(compact(children), e.Children...)
	return e
}

// Attr returns an attribute value, failing with ErrMissingAttribute when it
// was never set.
func (e *Element) Attr(key string) (string, error) {
	return e.attrs().Lookup(key)
}

// SetAttr stores an attribute on the element.
func (e *Element) SetAttr(key, value string) {
	e.attrs().Set(key, value)
}

// DeleteAttr removes an attribute, failing when it was never set.
func (e *Element) DeleteAttr(key string) error {
	return e.attrs().Delete(key)
}

func (e *Element) attrs() *Attrs {
	if e.Attrs == nil {
		e.Attrs = &Attrs{}
	}
	return e.Attrs
}

// Markup implements Node.
func (e *Element) Markup() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.Tag)
	b.WriteString(e.Attrs.String())
	b.WriteByte('>')
	for _, child := range e.Children {
		b.WriteByte('\n')
		b.WriteString(child.Markup())
	}
	if len(e.Children) > 0 {
		b.WriteByte('\n')
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
	return b.String()
}

// Raw is emitted verbatim.
type Raw string

// Markup implements Node.
func (r Raw) Markup() string { return string(r) }

// Text is character data. The host parses text literally, so it is not
// escaped.
type Text string

// Markup implements Node.
func (t Text) Markup() string { return string(t) }

// Comment renders as <!--text-->.
type Comment string

// Markup implements Node.
func (c Comment) Markup() string { return "<!--" + string(c) + "-->" }

// Fragment is a sequence of sibling nodes with no wrapper.
type Fragment []Node

// Markup implements Node.
func (f Fragment) Markup() string {
	parts := make([]string, 0, len(f))
	for _, node := range f {
		if node == nil {
			continue
		}
		parts = append(parts, node.Markup())
	}
	return strings.Join(parts, "\n")
}

// TR builds a table row.
func TR(attrs *Attrs, children ...Node) *Element { return NewElement("tr", attrs, children...) }

// TD builds a table cell.
func TD(attrs *Attrs, children ...Node) *Element { return NewElement("td", attrs, children...) }

// Table builds a table element.
func Table(attrs *Attrs, children ...Node) *Element { return NewElement("table", attrs, children...) }

// Div builds a div element.
func Div(attrs *Attrs, children ...Node) *Element { return NewElement("div", attrs, children...) }

// Bold wraps text in <b>.
func Bold(text string) *Element {
	if text == "" {
		return NewElement("b", nil)
	}
	return NewElement("b", nil, Text(text))
}

// IsCell reports whether node is a <td> element.
func IsCell(node Node) (*Element, bool) {
	el, ok := node.(*Element)
	if !ok || el == nil || !strings.EqualFold(el.Tag, "td") {
		return nil, false
	}
	return el, true
}

func compact(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		out = append(out, node)
	}
	return out
}

func sortedKeys(src map[string]string) []string {
	keys := make([]string, 0, len(src))
	for key := range src {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package layout

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/snippet"
)

// LabeledComponent places an optional label next to, or above, an inner node
// inside a small table in a single outer cell. The cell is composed on every
// call, so field changes after a render are honoured.
type LabeledComponent struct {
	Inner      markup.Node
	Label      markup.Node
	LabelLeft  bool
	LabelOnTop bool
	// TDWidth fixes the outer cell width. When empty the component is
	// resizable and the surrounding layout decides.
	TDWidth string
	// Align defaults to "left".
	Align string

	// extra holds outer cell attributes set through SetAttr.
	extra *markup.Attrs
	// widthHoisted is set once a conditional has taken over TDWidth.
	widthHoisted bool
}

// Labeled wraps inner with a plain-text label placed on the left.
func Labeled(inner markup.Node, label string) *LabeledComponent {
	return &LabeledComponent{
		Inner:     inner,
		Label:     TextLabel(label),
		LabelLeft: true,
	}
}

// Resizable reports whether the width is left to the surrounding layout.
func (l *LabeledComponent) Resizable() bool {
	return l.widthHoisted || strings.TrimSpace(l.TDWidth) == ""
}

// Node composes the outer cell. The align and width attributes are written to
// the outer cell, never to the wrapped inner node.
func (l *LabeledComponent) Node() *markup.Element {
	inner := innerNode(l.Inner)
	row := markup.TR(nil)
	switch {
	case l.Label == nil:
		row.Add(markup.TD(nil, inner))
	case l.LabelOnTop:
		row.Add(markup.TD(nil, l.Label, inner))
	case l.LabelLeft:
		row.Add(markup.TD(nil, l.Label), markup.TD(nil, inner))
	default:
		row.Add(markup.TD(nil, inner), markup.TD(nil, l.Label))
	}

	attrs := &markup.Attrs{}
	align := l.Align
	if align == "" {
		align = "left"
	}
	attrs.Set("align", align)
	if !l.Resizable() {
		attrs.Set("width", l.TDWidth)
	}
	attrs.Merge(l.extra)

	return markup.TD(attrs, markup.Table(markup.NewAttrs(
		"width", "100%",
		"cellpadding", "0",
		"cellspacing", "0",
	), row))
}

// Attr reads an attribute of the outer cell.
func (l *LabeledComponent) Attr(key string) (string, error) {
	return l.Node().Attr(key)
}

// SetAttr writes an attribute on the outer cell. align and width update
// Align and TDWidth.
func (l *LabeledComponent) SetAttr(key, value string) {
	switch key {
	case "align":
		l.Align = value
	case "width":
		l.TDWidth = value
		l.widthHoisted = false
	default:
		if l.extra == nil {
			l.extra = &markup.Attrs{}
		}
		l.extra.Set(key, value)
	}
}

// Markup implements markup.Node.
func (l *LabeledComponent) Markup() string {
	return l.Node().Markup()
}

func (l *LabeledComponent) cellWidth() (string, bool) {
	if l.Resizable() {
		return "", false
	}
	return l.TDWidth, true
}

func (l *LabeledComponent) dropWidth() {
	l.widthHoisted = true
}

// innerNode renders components as their bare snippet; the surrounding cell is
// supplied by the labeled layout.
func innerNode(node markup.Node) markup.Node {
	if comp, ok := node.(*snippet.Component); ok {
		return markup.Raw(comp.Snippet())
	}
	return node
}

// TextLabel renders a label as <b>text</b>. Labels holding markup are
// restricted to inline formatting tags; plain labels are kept verbatim so host
// tokens such as $spy.GetParam('x') survive. An empty label yields nil.
func TextLabel(text string) markup.Node {
	if text == "" {
		return nil
	}
	if strings.ContainsAny(text, "<>") {
		return markup.NewElement("b", nil, markup.Raw(labelPolicy().Sanitize(text)))
	}
	return markup.Bold(text)
}

var (
	labelPolicyOnce sync.Once
	labelPolicyVal  *bluemonday.Policy
)

func labelPolicy() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "u", "br", "font")
		policy.AllowAttrs("color", "size").OnElements("font")
		labelPolicyVal = policy
	})
	return labelPolicyVal
}

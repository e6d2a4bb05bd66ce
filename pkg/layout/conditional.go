package layout

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/snippet"
)

// IgnoreTag is the host element whose test attribute decides at runtime
// whether its content is shown.
const IgnoreTag = "ignore"

type branchKind int

const (
	unconditional branchKind = iota
	conditional
	conditionalElse
)

// Conditional is the tagged union of runtime branches. The expression is only
// serialised, never evaluated.
type Conditional struct {
	kind  branchKind
	expr  string
	then  markup.Fragment
	other markup.Fragment
	attrs *markup.Attrs
}

// Unconditional wraps nodes without any test.
func Unconditional(nodes ...markup.Node) *Conditional {
	return &Conditional{kind: unconditional, then: fragment(nodes), attrs: &markup.Attrs{}}
}

// If shows nodes when expr holds.
func If(expr string, nodes ...markup.Node) (*Conditional, error) {
	if err := verifyTest(expr); err != nil {
		return nil, err
	}
	return &Conditional{kind: conditional, expr: expr, then: fragment(nodes), attrs: &markup.Attrs{}}, nil
}

// IfElse shows then when expr holds and other when it does not. When both
// branches are single cells declaring a numeric width, the widths move from
// the cells to the conditional, which keeps the larger one.
func IfElse(expr string, then, other markup.Node) (*Conditional, error) {
	if err := verifyTest(expr); err != nil {
		return nil, err
	}
	c := &Conditional{
		kind:  conditionalElse,
		expr:  expr,
		then:  fragment([]markup.Node{then}),
		other: fragment([]markup.Node{other}),
		attrs: &markup.Attrs{},
	}
	c.hoistWidth(then, other)
	return c, nil
}

// MustIf panics when If fails.
func MustIf(expr string, nodes ...markup.Node) *Conditional {
	c, err := If(expr, nodes...)
	if err != nil {
		panic(err)
	}
	return c
}

// Expr returns the test expression.
func (c *Conditional) Expr() string { return c.expr }

// Negated returns the test used for the else branch.
func (c *Conditional) Negated() string { return Negate(c.expr) }

// Width returns the hoisted width, if any.
func (c *Conditional) Width() (string, bool) { return c.attrs.Get("width") }

// Markup implements markup.Node.
func (c *Conditional) Markup() string {
	switch c.kind {
	case conditional:
		return c.tag(c.expr, c.then).Markup()
	case conditionalElse:
		return markup.Fragment{
			c.tag(c.expr, c.then),
			c.tag(Negate(c.expr), c.other),
		}.Markup()
	default:
		return c.then.Markup()
	}
}

func (c *Conditional) tag(test string, body markup.Fragment) *markup.Element {
	attrs := markup.NewAttrs("test", test)
	attrs.Merge(c.attrs)
	return markup.NewElement(IgnoreTag, attrs, body...)
}

func (c *Conditional) hoistWidth(then, other markup.Node) {
	lw, lv, ok := numericWidth(then)
	if !ok {
		return
	}
	rw, rv, ok := numericWidth(other)
	if !ok {
		return
	}
	dropWidth(then)
	dropWidth(other)
	if rv > lv {
		lw = rw
	}
	c.attrs.Set("width", lw)
}

// widthHolder is implemented by composites that own their outer cell width.
type widthHolder interface {
	cellWidth() (string, bool)
	dropWidth()
}

func cellWidth(node markup.Node) (string, bool) {
	if holder, ok := node.(widthHolder); ok {
		return holder.cellWidth()
	}
	cell, ok := markup.IsCell(node)
	if !ok {
		return "", false
	}
	raw, err := cell.Attr("width")
	return raw, err == nil
}

func dropWidth(node markup.Node) {
	if holder, ok := node.(widthHolder); ok {
		holder.dropWidth()
		return
	}
	if cell, ok := markup.IsCell(node); ok {
		_ = cell.DeleteAttr("width")
	}
}

func numericWidth(node markup.Node) (string, float64, bool) {
	raw, ok := cellWidth(node)
	if !ok {
		return "", 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "%"), 64)
	if err != nil {
		return "", 0, false
	}
	return raw, value, true
}

// Negate prefixes expr with the host negation token.
func Negate(expr string) string {
	return "not(" + expr + ")"
}

func verifyTest(expr string) error {
	return snippet.VerifyExpression("test", expr)
}

func fragment(nodes []markup.Node) markup.Fragment {
	out := make(markup.Fragment, 0, len(nodes))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		out = append(out, node)
	}
	return out
}

package snippet

import (
	"strings"

	"github.com/goliatone/go-olxgui/pkg/markup"
)

// DefaultIndent is the number of spaces in one indentation unit.
const DefaultIndent = 4

const (
	markerOpen  = "$+"
	markerClose = "$-"
	directive   = "html.Snippet"
)

// Option customises a Component at construction time.
type Option func(*Component)

// WithIndent overrides the indentation unit. Non-positive values are ignored.
func WithIndent(spaces int) Option {
	return func(c *Component) {
		if spaces > 0 {
			c.indent = spaces
		}
	}
}

// WithCell replaces the attributes of the <td> produced by Cell.
func WithCell(attrs *markup.Attrs) Option {
	return func(c *Component) {
		if attrs != nil {
			c.cell = attrs.Clone()
		}
	}
}

// WithoutCell makes Cell return the indented snippet without a <td> wrapper.
func WithoutCell() Option {
	return func(c *Component) {
		c.disableCell = true
	}
}

// Component is a leaf that renders a host snippet include directive.
type Component struct {
	path        string
	params      *markup.Attrs
	indent      int
	cell        *markup.Attrs
	disableCell bool
}

// New builds a component for the snippet at path. params is copied; every
// value is checked with VerifyFunctions before the component is returned.
func New(path string, params *markup.Attrs, opts ...Option) (*Component, error) {
	c := &Component{
		path:   path,
		params: params.Clone(),
		indent: DefaultIndent,
		cell:   DefaultCell(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if err := VerifyFunctions(c.params); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew panics when New fails. Intended for static definitions.
func MustNew(path string, params *markup.Attrs, opts ...Option) *Component {
	c, err := New(path, params, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCell returns the attributes used for a component cell when none are
// configured.
func DefaultCell() *markup.Attrs {
	return markup.NewAttrs("width", "1%", "align", "left")
}

// AddParameter registers one parameter. The map must hold exactly one entry.
func (c *Component) AddParameter(param map[string]string) error {
	if param == nil {
		return &ParameterError{Reason: "parameter must be a mapping"}
	}
	if len(param) != 1 {
		return &ParameterError{Reason: "parameter must have exactly one key"}
	}
	for key, value := range param {
		if err := VerifyExpression(key, value); err != nil {
			return err
		}
		c.params.Set(key, value)
	}
	return nil
}

// Path returns the snippet path.
func (c *Component) Path() string { return c.path }

// Parameters returns a copy of the parameters.
func (c *Component) Parameters() *markup.Attrs { return c.params.Clone() }

// Parameter returns a single parameter value.
func (c *Component) Parameter(key string) (string, bool) { return c.params.Get(key) }

// Snippet renders the directive block. Empty values are omitted.
func (c *Component) Snippet() string {
	unit := strings.Repeat(" ", c.indent)
	var b strings.Builder
	b.WriteString(markerOpen)
	b.WriteByte('\n')
	b.WriteString(unit + directive + "(\n")
	b.WriteString(unit + unit + `"` + c.path + `",` + "\n")
	c.params.Each(func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(unit + unit + `"` + key + "=" + value + `",` + "\n")
	})
	b.WriteString(unit + ")\n")
	b.WriteString(markerClose)
	return b.String()
}

// Markup implements markup.Node.
func (c *Component) Markup() string { return c.Snippet() }

// Cell wraps the indented snippet in a <td> carrying the cell attributes.
func (c *Component) Cell() markup.Node {
	body := markup.Raw(indentLines(c.Snippet(), strings.Repeat(" ", c.indent)))
	if c.disableCell {
		return body
	}
	return markup.TD(c.cell, body)
}

func indentLines(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for idx, line := range lines {
		lines[idx] = prefix + line
	}
	return strings.Join(lines, "\n")
}

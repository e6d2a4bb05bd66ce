package layout

import (
	"errors"

	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/snippet"
)

// ToolH3Block is the include block that opens an H3 tool section.
const ToolH3Block = "gui/blocks/tool-h3.htm"

// ToolH3 returns the standard section header include.
func ToolH3() *snippet.Include {
	return snippet.IncludeComment("tool-h3", ToolH3Block, []string{"image=#image", "colspan=1", "1"})
}

// HelpColumn returns the help column include for a given help extension.
func HelpColumn(helpExt string) *snippet.Include {
	return snippet.IncludeComment("tool-help-first-column", HelpColumnBlock, []string{"help_ext=" + helpExt, "1"})
}

// BoldCell renders <td width align><b>text</b></td>.
func BoldCell(text, width, align string) *markup.Element {
	return markup.TD(markup.NewAttrs("width", width, "align", align), markup.Bold(text))
}

// Section is a group of blocks introduced by a header include.
type Section struct {
	Header markup.Node
	Blocks []markup.Node
}

// NewSection starts a section with the default tool-h3 header.
func NewSection(blocks ...markup.Node) *Section {
	return &Section{Header: ToolH3(), Blocks: blocks}
}

// Add appends blocks.
func (s *Section) Add(blocks ...markup.Node) *Section {
	s.Blocks = append(s.Blocks, blocks...)
	return s
}

// Markup implements markup.Node.
func (s *Section) Markup() string {
	nodes := append(markup.Fragment{s.Header}, s.Blocks...)
	return nodes.Markup()
}

// ErrFallbackWithoutCondition is returned by Build when Fallback blocks are
// set on a page with no Condition to negate.
var ErrFallbackWithoutCondition = errors.New("layout: fallback blocks need a condition")

// Page is a complete generated document: a header followed by blocks shown
// while Condition holds and Fallback blocks shown otherwise.
type Page struct {
	Header    markup.Node
	Condition string
	Blocks    []markup.Node
	Fallback  []markup.Node
}

// Build composes the page into a single node. A page without Condition emits
// its blocks unwrapped and must not declare Fallback blocks.
func (p *Page) Build() (markup.Node, error) {
	out := markup.Fragment{}
	if p.Header != nil {
		out = append(out, p.Header)
	}
	if p.Condition == "" {
		if len(p.Fallback) > 0 {
			return nil, ErrFallbackWithoutCondition
		}
		return append(out, p.Blocks...), nil
	}

	var body markup.Node
	var err error
	if len(p.Fallback) == 0 {
		body, err = If(p.Condition, p.Blocks...)
	} else {
		body, err = IfElse(p.Condition, markup.Fragment(p.Blocks), markup.Fragment(p.Fallback))
	}
	if err != nil {
		return nil, err
	}
	return append(out, body), nil
}

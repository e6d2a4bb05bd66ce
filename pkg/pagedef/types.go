package pagedef

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-olxgui/pkg/markup"
)

var (
	// ErrUnknownPage is returned when a page id is not defined by any file.
	ErrUnknownPage = errors.New("pagedef: unknown page")
	// ErrInvalidItem is returned when a block or cell cannot be decoded.
	ErrInvalidItem = errors.New("pagedef: invalid item")
)

// ItemKind names the variant stored in an Item.
type ItemKind string

// Item kinds. Any kind may appear as a page block or as a table cell.
const (
	KindRaw     ItemKind = "raw"
	KindInclude ItemKind = "include"
	KindHelp    ItemKind = "help"
	KindBold    ItemKind = "bold"
	KindWidget  ItemKind = "widget"
	KindLabeled ItemKind = "labeled"
	KindIf      ItemKind = "if"
	KindTD      ItemKind = "td"
	KindElement ItemKind = "element"
	KindTable   ItemKind = "table"
	KindSection ItemKind = "section"
)

// Page is one generated document as declared in a definition file.
type Page struct {
	ID        string `yaml:"-"`
	Source    string `yaml:"-"`
	Title     string `yaml:"title"`
	Header    *Item  `yaml:"header"`
	NoHeader  bool   `yaml:"no_header"`
	Condition string `yaml:"condition"`
	Blocks    []Item `yaml:"blocks"`
	Fallback  []Item `yaml:"fallback"`
}

// Item is a tagged union: exactly one field matching Kind is set.
type Item struct {
	Kind    ItemKind
	Text    string
	Include *IncludeSpec
	Bold    *BoldSpec
	Widget  *WidgetSpec
	Labeled *LabeledSpec
	If      *IfSpec
	Element *ElementSpec
	Table   *TableSpec
	Section *SectionSpec
}

// IncludeSpec declares an include directive comment.
type IncludeSpec struct {
	Name string   `yaml:"name"`
	Path string   `yaml:"path"`
	Args []string `yaml:"args"`
}

// BoldSpec declares <td width align><b>text</b></td>. Without width and
// align only the <b> element is produced.
type BoldSpec struct {
	Text  string `yaml:"text"`
	Width string `yaml:"width"`
	Align string `yaml:"align"`
}

// WidgetSpec declares a snippet component. Kind selects a registered widget
// variant; when only Snippet is set the parameters are used verbatim.
type WidgetSpec struct {
	Kind    string `yaml:"kind"`
	Snippet string `yaml:"snippet"`
	Params  Params `yaml:"params"`
	Cell    Params `yaml:"cell"`
	Bare    bool   `yaml:"bare"`
	Indent  int    `yaml:"indent"`
}

// LabeledSpec wraps a widget with a label.
type LabeledSpec struct {
	Label  string     `yaml:"label"`
	Right  bool       `yaml:"right"`
	Top    bool       `yaml:"top"`
	Width  string     `yaml:"width"`
	Align  string     `yaml:"align"`
	Widget WidgetSpec `yaml:"widget"`
}

// IfSpec declares a runtime conditional. Else is optional.
type IfSpec struct {
	Test string `yaml:"test"`
	Then []Item `yaml:"then"`
	Else []Item `yaml:"else"`
}

// ElementSpec declares a literal element. Text, when set, precedes Children.
type ElementSpec struct {
	Tag      string `yaml:"tag"`
	Attrs    Params `yaml:"attrs"`
	Text     string `yaml:"text"`
	Children []Item `yaml:"children"`
}

// TableSpec declares a layout table.
type TableSpec struct {
	Name      string     `yaml:"name"`
	Config    ConfigSpec `yaml:"config"`
	Comment   *Item      `yaml:"comment"`
	Condition string     `yaml:"condition"`
	Balanced  string     `yaml:"balanced"`
	Rows      [][]Item   `yaml:"rows"`
}

// ConfigSpec overrides the table skeleton level by level.
type ConfigSpec struct {
	OuterRow   Params `yaml:"outer_row"`
	OuterCell  Params `yaml:"outer_cell"`
	OuterTable Params `yaml:"outer_table"`
	MidRow     Params `yaml:"mid_row"`
	MidCell    Params `yaml:"mid_cell"`
	MidTable   Params `yaml:"mid_table"`
	InnerRow   Params `yaml:"inner_row"`
}

// SectionSpec groups blocks under a header. The tool-h3 header is used when
// Header is nil.
type SectionSpec struct {
	Header *Item  `yaml:"header"`
	Blocks []Item `yaml:"blocks"`
}

// Params is an ordered string map decoded from a YAML mapping. Key order in
// the file is the rendering order.
type Params struct {
	attrs *markup.Attrs
}

// NewParams wraps attrs.
func NewParams(attrs *markup.Attrs) Params {
	return Params{attrs: attrs.Clone()}
}

// Attrs returns a copy of the parameters.
func (p Params) Attrs() *markup.Attrs {
	return p.attrs.Clone()
}

// Empty reports whether no parameter was declared.
func (p Params) Empty() bool {
	return p.attrs.Len() == 0
}

// UnmarshalYAML keeps mapping order. Scalars are kept as written; null
// values become empty strings.
func (p *Params) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		p.attrs = &markup.Attrs{}
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("pagedef: line %d: parameters must be a mapping", node.Line)
	}
	attrs := &markup.Attrs{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("pagedef: line %d: parameter %q must be a scalar", value.Line, key.Value)
		}
		if value.Tag == "!!null" {
			attrs.Set(key.Value, "")
			continue
		}
		attrs.Set(key.Value, value.Value)
	}
	p.attrs = attrs
	return nil
}

// UnmarshalYAML decodes the single-key mapping form `{kind: body}`. A bare
// string is shorthand for a raw item.
func (it *Item) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*it = Item{Kind: KindRaw, Text: node.Value}
		return nil
	}
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("%w: line %d: expected a mapping with a single kind key", ErrInvalidItem, node.Line)
	}

	kind, body := ItemKind(node.Content[0].Value), node.Content[1]
	out := Item{Kind: kind}
	var err error
	switch kind {
	case KindRaw, KindHelp:
		err = body.Decode(&out.Text)
	case KindInclude:
		out.Include = &IncludeSpec{}
		err = body.Decode(out.Include)
	case KindBold:
		out.Bold = &BoldSpec{}
		if body.Kind == yaml.ScalarNode {
			out.Bold.Text = body.Value
		} else {
			err = body.Decode(out.Bold)
		}
	case KindWidget:
		out.Widget = &WidgetSpec{}
		err = body.Decode(out.Widget)
	case KindLabeled:
		out.Labeled = &LabeledSpec{}
		err = body.Decode(out.Labeled)
	case KindIf:
		out.If = &IfSpec{}
		err = body.Decode(out.If)
	case KindTD:
		out.Element = &ElementSpec{Tag: "td"}
		err = body.Decode(out.Element)
		out.Element.Tag = "td"
	case KindElement:
		out.Element = &ElementSpec{}
		err = body.Decode(out.Element)
	case KindTable:
		out.Table = &TableSpec{}
		err = body.Decode(out.Table)
	case KindSection:
		out.Section = &SectionSpec{}
		err = body.Decode(out.Section)
	default:
		return fmt.Errorf("%w: line %d: unknown kind %q", ErrInvalidItem, node.Line, kind)
	}
	if err != nil {
		return fmt.Errorf("%w: line %d: %s: %v", ErrInvalidItem, body.Line, kind, err)
	}
	*it = out
	return nil
}

package pagedef

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-olxgui/pkg/layout"
	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/snippet"
	"github.com/goliatone/go-olxgui/pkg/widgets"
)

// Build turns a page definition into a layout page. Widgets are resolved
// against registry, or the default registry when nil.
func Build(page Page, registry *widgets.Registry) (*layout.Page, error) {
	b := &builder{registry: registry}
	if b.registry == nil {
		b.registry = widgets.Default()
	}

	if page.Condition == "" && len(page.Fallback) > 0 {
		return nil, fmt.Errorf("pagedef: page %q: %w", page.ID, layout.ErrFallbackWithoutCondition)
	}

	out := &layout.Page{Condition: page.Condition}
	switch {
	case page.NoHeader:
	case page.Header != nil:
		header, err := b.item(*page.Header)
		if err != nil {
			return nil, fmt.Errorf("pagedef: page %q header: %w", page.ID, err)
		}
		out.Header = header
	default:
		out.Header = layout.ToolH3()
	}

	blocks, err := b.items(page.Blocks)
	if err != nil {
		return nil, fmt.Errorf("pagedef: page %q: %w", page.ID, err)
	}
	fallback, err := b.items(page.Fallback)
	if err != nil {
		return nil, fmt.Errorf("pagedef: page %q fallback: %w", page.ID, err)
	}
	out.Blocks = blocks
	out.Fallback = fallback
	return out, nil
}

type builder struct {
	registry *widgets.Registry
}

func (b *builder) items(items []Item) ([]markup.Node, error) {
	out := make([]markup.Node, 0, len(items))
	for idx, it := range items {
		node, err := b.item(it)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", idx, it.Kind, err)
		}
		out = append(out, node)
	}
	return out, nil
}

func (b *builder) item(it Item) (markup.Node, error) {
	switch it.Kind {
	case KindRaw:
		return markup.Raw(it.Text), nil
	case KindHelp:
		return layout.HelpColumn(it.Text), nil
	case KindInclude:
		return b.include(it.Include)
	case KindBold:
		if it.Bold.Width == "" && it.Bold.Align == "" {
			return markup.Bold(it.Bold.Text), nil
		}
		return layout.BoldCell(it.Bold.Text, it.Bold.Width, it.Bold.Align), nil
	case KindWidget:
		comp, err := b.widget(it.Widget)
		if err != nil {
			return nil, err
		}
		if it.Widget.Bare {
			return comp, nil
		}
		return comp.Cell(), nil
	case KindLabeled:
		return b.labeled(it.Labeled)
	case KindIf:
		return b.conditional(it.If)
	case KindTD, KindElement:
		return b.element(it.Element)
	case KindTable:
		return b.table(it.Table)
	case KindSection:
		return b.section(it.Section)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidItem, it.Kind)
	}
}

func (b *builder) include(spec *IncludeSpec) (markup.Node, error) {
	if strings.TrimSpace(spec.Name) == "" || strings.TrimSpace(spec.Path) == "" {
		return nil, fmt.Errorf("%w: include requires name and path", ErrInvalidItem)
	}
	return snippet.IncludeComment(spec.Name, spec.Path, spec.Args), nil
}

func (b *builder) widget(spec *WidgetSpec) (*snippet.Component, error) {
	var opts []snippet.Option
	if !spec.Cell.Empty() {
		cell := snippet.DefaultCell().Merge(spec.Cell.Attrs())
		opts = append(opts, snippet.WithCell(cell))
	}
	if spec.Indent > 0 {
		opts = append(opts, snippet.WithIndent(spec.Indent))
	}

	if spec.Kind == "" && spec.Snippet != "" {
		return snippet.New(spec.Snippet, spec.Params.Attrs(), opts...)
	}
	return b.registry.Build(widgets.Kind(spec.Kind), spec.Params.Attrs(), opts...)
}

func (b *builder) labeled(spec *LabeledSpec) (markup.Node, error) {
	comp, err := b.widget(&spec.Widget)
	if err != nil {
		return nil, err
	}
	return &layout.LabeledComponent{
		Inner:      comp,
		Label:      layout.TextLabel(spec.Label),
		LabelLeft:  !spec.Right,
		LabelOnTop: spec.Top,
		TDWidth:    spec.Width,
		Align:      spec.Align,
	}, nil
}

func (b *builder) conditional(spec *IfSpec) (markup.Node, error) {
	then, err := b.items(spec.Then)
	if err != nil {
		return nil, err
	}
	if len(spec.Else) == 0 {
		return layout.If(spec.Test, then...)
	}
	other, err := b.items(spec.Else)
	if err != nil {
		return nil, err
	}
	return layout.IfElse(spec.Test, single(then), single(other))
}

// single keeps a lone node unwrapped so width hoisting can see its cell.
func single(nodes []markup.Node) markup.Node {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return markup.Fragment(nodes)
}

func (b *builder) element(spec *ElementSpec) (markup.Node, error) {
	if strings.TrimSpace(spec.Tag) == "" {
		return nil, fmt.Errorf("%w: element requires a tag", ErrInvalidItem)
	}
	children, err := b.items(spec.Children)
	if err != nil {
		return nil, err
	}
	el := markup.NewElement(spec.Tag, spec.Attrs.Attrs(), children...)
	if spec.Text != "" {
		el.Prepend(markup.Text(spec.Text))
	}
	return el, nil
}

func (b *builder) table(spec *TableSpec) (markup.Node, error) {
	rows := make([][]markup.Node, 0, len(spec.Rows))
	for idx, row := range spec.Rows {
		cells, err := b.items(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", idx, err)
		}
		rows = append(rows, cells)
	}

	configOpts := []layout.ConfigOption{
		layout.WithOuterRow(spec.Config.OuterRow.Attrs()),
		layout.WithOuterCell(spec.Config.OuterCell.Attrs()),
		layout.WithOuterTable(spec.Config.OuterTable.Attrs()),
		layout.WithMidRow(spec.Config.MidRow.Attrs()),
		layout.WithMidCell(spec.Config.MidCell.Attrs()),
		layout.WithMidTable(spec.Config.MidTable.Attrs()),
		layout.WithInnerRow(spec.Config.InnerRow.Attrs()),
	}
	if spec.Name != "" {
		configOpts = append(configOpts, layout.WithName(spec.Name))
	}
	cfg := layout.NewTableConfig(configOpts...)

	opts := []layout.TableOption{layout.WithConfig(cfg)}
	if spec.Comment != nil {
		comment, err := b.item(*spec.Comment)
		if err != nil {
			return nil, fmt.Errorf("comment: %w", err)
		}
		opts = append(opts, layout.WithComment(comment))
	}
	if spec.Condition != "" {
		opts = append(opts, layout.WithCondition(spec.Condition))
	}
	if spec.Balanced != "" {
		opts = append(opts, layout.WithBalancedBlocks(spec.Balanced))
	}
	return layout.NewTable(rows, opts...)
}

func (b *builder) section(spec *SectionSpec) (markup.Node, error) {
	blocks, err := b.items(spec.Blocks)
	if err != nil {
		return nil, err
	}
	section := layout.NewSection(blocks...)
	if spec.Header != nil {
		header, err := b.item(*spec.Header)
		if err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
		section.Header = header
	}
	return section, nil
}

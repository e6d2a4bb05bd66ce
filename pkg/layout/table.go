package layout

import (
	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/snippet"
)

// Include block paths used by balanced tables.
const (
	HelpColumnBlock = "gui/blocks/tool-help-first-column.htm"
	RowTableOnBlock = "gui/blocks/row_table_on.htm"
	TdTableOffBlock = "gui/balanced/td-table-off.htm"
)

// TableOption customises a Table.
type TableOption func(*Table)

// WithConfig sets the skeleton configuration, merged key by key over the
// defaults. The table keeps its own copy.
func WithConfig(cfg *TableConfig) TableOption {
	return func(t *Table) { t.config = cfg.Clone() }
}

// WithCondition wraps the whole table in a single-branch conditional.
func WithCondition(expr string) TableOption {
	return func(t *Table) { t.condition = expr }
}

// WithComment injects node as the first child of every outer row.
func WithComment(node markup.Node) TableOption {
	return func(t *Table) { t.comment = node }
}

// WithBalancedBlocks replaces the nested skeleton with the balanced include
// sequence (help column, row-table-on, content, td-table-off).
func WithBalancedBlocks(helpExt string) TableOption {
	return func(t *Table) {
		t.balanced = true
		t.helpExt = helpExt
	}
}

// Table nests each row of nodes into the TableConfig skeleton and
// concatenates the results in input order.
type Table struct {
	config    *TableConfig
	rows      [][]markup.Node
	condition string
	comment   markup.Node
	balanced  bool
	helpExt   string

	body markup.Node
}

// NewTable builds the row structures. Rows are referenced, not copied; the
// configuration is snapshotted once so every row shares the same outer
// attributes.
func NewTable(rows [][]markup.Node, opts ...TableOption) (*Table, error) {
	t := &Table{
		config:  DefaultTableConfig(),
		rows:    rows,
		helpExt: "#help_ext",
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(t)
	}

	structures := make(markup.Fragment, 0, len(rows))
	for _, row := range rows {
		if t.balanced {
			structures = append(structures, t.balancedStructure(t.balancedRow(row)))
			continue
		}
		structures = append(structures, t.applyStructure(t.applyRow(row)))
	}

	if t.condition == "" {
		t.body = structures
		return t, nil
	}
	wrapped, err := If(t.condition, structures...)
	if err != nil {
		return nil, err
	}
	t.body = wrapped
	return t, nil
}

// MustTable panics when NewTable fails.
func MustTable(rows [][]markup.Node, opts ...TableOption) *Table {
	t, err := NewTable(rows, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Config returns a copy of the configuration snapshot.
func (t *Table) Config() *TableConfig { return t.config.Clone() }

// Rows returns the number of rows.
func (t *Table) Rows() int { return len(t.rows) }

// Markup implements markup.Node.
func (t *Table) Markup() string { return t.body.Markup() }

func (t *Table) applyRow(row []markup.Node) *markup.Element {
	inner := markup.TR(t.config.InnerRow, rowItems(row)...)
	return markup.TD(t.config.MidCell, markup.Table(t.config.MidTable, inner))
}

func (t *Table) applyStructure(group markup.Node) *markup.Element {
	outer := t.outerRow()
	outer.Add(markup.TD(t.config.OuterCell,
		markup.Table(t.config.OuterTable,
			markup.TR(t.config.MidRow, group))))
	return outer
}

func (t *Table) balancedRow(row []markup.Node) *markup.Element {
	return markup.Div(nil, rowItems(row)...)
}

func (t *Table) balancedStructure(content markup.Node) *markup.Element {
	outer := t.outerRow()
	outer.Add(
		snippet.IncludeComment("tool-help-first-column", HelpColumnBlock,
			[]string{"help_ext=" + t.helpExt, "1"}),
		snippet.IncludeComment("row-table-on", RowTableOnBlock,
			[]string{"1", "colspan=" + t.config.OuterCell.Value("colspan"), "width=" + t.config.MidCell.Value("width")}),
		content,
		snippet.IncludeComment("td-table-off", TdTableOffBlock, []string{"1"}),
	)
	return outer
}

func (t *Table) outerRow() *markup.Element {
	outer := markup.TR(t.config.OuterRow)
	if t.comment != nil {
		outer.Add(t.comment)
	}
	return outer
}

// rowItems renders components as bare snippet text and keeps everything else
// as-is.
func rowItems(row []markup.Node) []markup.Node {
	items := make([]markup.Node, 0, len(row))
	for _, cell := range row {
		if cell == nil {
			continue
		}
		if comp, ok := cell.(*snippet.Component); ok {
			items = append(items, markup.Raw(comp.Snippet()))
			continue
		}
		items = append(items, cell)
	}
	return items
}

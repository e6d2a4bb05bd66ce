package layout

import "github.com/goliatone/go-olxgui/pkg/markup"

// TableConfig holds the attributes of the fixed nested skeleton every table
// row is wrapped in:
//
//	<tr OuterRow>
//	  <td OuterCell>
//	    <table OuterTable>
//	      <tr MidRow>
//	        <td MidCell>
//	          <table MidTable>
//	            <tr InnerRow> row content </tr>
//	          </table>
//	        </td>
//	      </tr>
//	    </table>
//	  </td>
//	</tr>
type TableConfig struct {
	OuterRow   *markup.Attrs
	OuterCell  *markup.Attrs
	OuterTable *markup.Attrs
	MidRow     *markup.Attrs
	MidCell    *markup.Attrs
	MidTable   *markup.Attrs
	InnerRow   *markup.Attrs
}

// ConfigOption overrides part of a TableConfig. Overrides merge key by key
// into the defaults.
type ConfigOption func(*TableConfig)

// WithName sets the NAME attribute of the outer row.
func WithName(name string) ConfigOption {
	return func(c *TableConfig) { c.OuterRow.Set("NAME", name) }
}

// WithOuterRow merges attrs into the outer row.
func WithOuterRow(attrs *markup.Attrs) ConfigOption {
	return func(c *TableConfig) { c.OuterRow = c.OuterRow.Merge(attrs) }
}

// WithOuterCell merges attrs into the outer cell.
func WithOuterCell(attrs *markup.Attrs) ConfigOption {
	return func(c *TableConfig) { c.OuterCell = c.OuterCell.Merge(attrs) }
}

// WithOuterTable merges attrs into the outer table.
func WithOuterTable(attrs *markup.Attrs) ConfigOption {
	return func(c *TableConfig) { c.OuterTable = c.OuterTable.Merge(attrs) }
}

// WithMidRow merges attrs into the middle row.
func WithMidRow(attrs *markup.Attrs) ConfigOption {
	return func(c *TableConfig) { c.MidRow = c.MidRow.Merge(attrs) }
}

// WithMidCell merges attrs into the middle cell.
func WithMidCell(attrs *markup.Attrs) ConfigOption {
	return func(c *TableConfig) { c.MidCell = c.MidCell.Merge(attrs) }
}

// WithMidTable merges attrs into the middle table.
func WithMidTable(attrs *markup.Attrs) ConfigOption {
	return func(c *TableConfig) { c.MidTable = c.MidTable.Merge(attrs) }
}

// WithInnerRow merges attrs into the innermost row.
func WithInnerRow(attrs *markup.Attrs) ConfigOption {
	return func(c *TableConfig) { c.InnerRow = c.InnerRow.Merge(attrs) }
}

// DefaultTableConfig returns a fresh copy of the default skeleton.
func DefaultTableConfig() *TableConfig {
	return &TableConfig{
		OuterRow:   markup.NewAttrs("ALIGN", "left", "NAME", "NAME", "width", "100%"),
		OuterCell:  markup.NewAttrs("colspan", "#colspan"),
		OuterTable: markup.NewAttrs("border", "0", "width", "100%", "cellpadding", "0", "cellspacing", "0", "Xbgcolor", "#ffaaaa"),
		MidRow:     markup.NewAttrs("Xbgcolor", "#ffffaa"),
		MidCell:    markup.NewAttrs("width", "100", "align", "left"),
		MidTable:   markup.NewAttrs("width", "100%", "cellpadding", "0", "cellspacing", "2"),
		InnerRow:   markup.NewAttrs("bgcolor", "$GetVar(HtmlTableGroupBgColour)"),
	}
}

// NewTableConfig applies options on top of the defaults.
func NewTableConfig(opts ...ConfigOption) *TableConfig {
	cfg := DefaultTableConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	return cfg
}

// Clone deep-copies every level on top of the defaults: each level set on c
// is merged key by key into the default level, so a partial literal such as
// &TableConfig{OuterRow: NewAttrs("NAME", "X")} keeps ALIGN and width. Set a
// key to "" to drop a default from the rendered tag.
func (c *TableConfig) Clone() *TableConfig {
	out := DefaultTableConfig()
	if c == nil {
		return out
	}
	out.OuterRow.Merge(c.OuterRow)
	out.OuterCell.Merge(c.OuterCell)
	out.OuterTable.Merge(c.OuterTable)
	out.MidRow.Merge(c.MidRow)
	out.MidCell.Merge(c.MidCell)
	out.MidTable.Merge(c.MidTable)
	out.InnerRow.Merge(c.InnerRow)
	return out
}

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the pages in the definitions directory",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)

	store, err := cc.LoadStore(cmd)
	if err != nil {
		return err
	}

	ids := store.IDs()
	width := 0
	for _, id := range ids {
		width = max(width, len(id))
	}

	styles := newListStyles(cc.Out, cc.UseColor(cc.Out))
	fmt.Fprintln(cc.Out, styles.header.Render(fmt.Sprintf("Pages (%d total)", len(ids))))
	for _, id := range ids {
		page, err := store.Page(id)
		if err != nil {
			return err
		}
		line := "  " + styles.id.Render(id) + strings.Repeat(" ", width-len(id))
		if page.Title != "" {
			line += "  " + page.Title
		}
		line += "  " + styles.muted.Render(page.Source)
		fmt.Fprintln(cc.Out, line)
	}
	return nil
}

type listStyles struct {
	header lipgloss.Style
	id     lipgloss.Style
	muted  lipgloss.Style
}

func newListStyles(w io.Writer, color bool) listStyles {
	renderer := lipgloss.NewRenderer(w)
	if !color {
		plain := renderer.NewStyle()
		return listStyles{header: plain, id: plain, muted: plain}
	}
	return listStyles{
		header: renderer.NewStyle().Bold(true),
		id:     renderer.NewStyle().Foreground(lipgloss.Color("4")),
		muted:  renderer.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-olxgui/pkg/orchestrator"
)

// NewLintCommand creates the lint command.
func NewLintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Build every page and report definition errors",
		Long: `Build every page in the definitions directory without writing anything.

Reports unbalanced expressions, missing widget parameters and malformed
items. Exits non-zero when any page fails.`,
		Example: `  olxgen lint --defs gui/defs`,
		Args:    cobra.NoArgs,
		RunE:    runLint,
	}
}

func runLint(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)
	ctx := cmd.Context()

	store, err := cc.LoadStore(cmd)
	if err != nil {
		return err
	}

	ids := store.IDs()
	failed := 0
	for _, id := range ids {
		if _, err := cc.Orchestrator.Build(ctx, orchestrator.Request{Store: store, Page: id}); err != nil {
			failed++
			fmt.Fprintf(cc.Out, "FAIL %s: %v\n", id, err)
			continue
		}
		fmt.Fprintf(cc.Out, "ok   %s\n", id)
	}

	if failed > 0 {
		return fmt.Errorf("lint: %d of %d pages failed", failed, len(ids))
	}
	cc.Logger.DebugContext(ctx, "lint passed", "pages", len(ids))
	return nil
}

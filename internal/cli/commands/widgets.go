package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewWidgetsCommand creates the widgets command.
func NewWidgetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "widgets",
		Short: "List the widget kinds usable in page definitions",
		Args:  cobra.NoArgs,
		RunE:  runWidgets,
	}
}

func runWidgets(cmd *cobra.Command, _ []string) error {
	cc := NewCommandContext(cmd)
	registry := cc.Orchestrator.Widgets()

	for _, kind := range registry.Kinds() {
		def, ok := registry.Definition(kind)
		if !ok {
			continue
		}
		fmt.Fprintf(cc.Out, "%-16s %s\n", kind, def.SnippetPath)
		if len(def.Required) > 0 {
			fmt.Fprintf(cc.Out, "%-16s required: %s\n", "", strings.Join(def.Required, ", "))
		}
		if keys := def.Defaults.Keys(); len(keys) > 0 {
			fmt.Fprintf(cc.Out, "%-16s params: %s\n", "", strings.Join(keys, ", "))
		}
	}
	return nil
}

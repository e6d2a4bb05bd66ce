package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-olxgui/internal/cli/prompt"
	"github.com/goliatone/go-olxgui/pkg/orchestrator"
	"github.com/goliatone/go-olxgui/pkg/pagedef"
	"github.com/goliatone/go-olxgui/pkg/render"
)

// ErrOutputExists is returned when the output file exists, --force is not
// set and nobody can be asked.
var ErrOutputExists = errors.New("output file exists")

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [page]",
		Short: "Render a GUI page definition to Olex2 markup",
		Long: `Render one page from the definitions directory.

The result goes to --output, $OLXGEN_OUTPUT or $DEPLOY_PATH, in that order,
and to stdout when none is set. When no page is given and the terminal is
interactive, the page is picked from a list.`,
		Example: `  # Print the NoSpherA2 options page
  olxgen render nosphera2

  # Write it where the GUI expects it
  DEPLOY_PATH=gui/NoSpherA2.htm olxgen render nosphera2 --force

  # Raw markup without re-indentation
  olxgen render nosphera2 --format raw`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var page string
			if len(args) > 0 {
				page = args[0]
			}
			return runRender(cmd, page)
		},
	}

	cmd.Flags().StringP("format", "f", "", "Output format: raw, pretty, terminal")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	cmd.Flags().Bool("force", false, "Overwrite the output file without asking")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{render.FormatRaw, render.FormatPretty, render.FormatTerminal}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runRender(cmd *cobra.Command, page string) error {
	cc := NewCommandContext(cmd)
	ctx := cmd.Context()

	store, err := cc.LoadStore(cmd)
	if err != nil {
		return err
	}

	if page == "" {
		page, err = selectPage(cmd, store)
		if err != nil {
			return err
		}
	}

	target := cc.Cfg.Output
	if target != "" {
		proceed, err := confirmOverwrite(cmd, target, cc.Cfg.Force)
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Fprintf(cc.Out, "Left %s unchanged\n", target)
			return nil
		}
	}

	var color bool
	if target == "" {
		color = cc.UseColor(cc.Out)
	}

	output, err := cc.Orchestrator.Generate(ctx, orchestrator.Request{
		Store:    store,
		Page:     page,
		Renderer: cc.Cfg.Format,
		RenderOptions: render.RenderOptions{
			Indent: cc.Cfg.Indent,
			Color:  color,
		},
	})
	if err != nil {
		return err
	}

	if target == "" {
		_, err = cc.Out.Write(output)
		return err
	}

	if err := writeOutput(target, output); err != nil {
		return err
	}
	cc.Logger.InfoContext(ctx, "page written", "page", page, "path", target, "bytes", len(output))
	fmt.Fprintf(cc.Out, "Page %s written to %s\n", page, target)
	return nil
}

func selectPage(cmd *cobra.Command, store *pagedef.Store) (string, error) {
	ids := store.IDs()
	if len(ids) == 1 {
		return ids[0], nil
	}
	if !isInteractive() {
		return "", errors.New("page id is required")
	}
	idx, err := newPromptDriver().Select(cmd.Context(), prompt.SelectConfig{
		Message:  "Page to render",
		Options:  ids,
		PageSize: 15,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(ids) {
		return "", fmt.Errorf("invalid page selection %d", idx)
	}
	return ids[idx], nil
}

func confirmOverwrite(cmd *cobra.Command, path string, force bool) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("output %s is a directory", path)
	}
	if force {
		return true, nil
	}
	if !isInteractive() {
		return false, fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, path)
	}
	return newPromptDriver().Confirm(cmd.Context(), prompt.ConfirmConfig{
		Message: fmt.Sprintf("Overwrite %s?", path),
	})
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}


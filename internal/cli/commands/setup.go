// Package commands holds the olxgen subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	olxgui "github.com/goliatone/go-olxgui"
	"github.com/goliatone/go-olxgui/internal/cli/config"
	"github.com/goliatone/go-olxgui/internal/cli/prompt"
	"github.com/goliatone/go-olxgui/pkg/orchestrator"
	"github.com/goliatone/go-olxgui/pkg/pagedef"
	"github.com/goliatone/go-olxgui/pkg/pretty"
)

// Replaced in tests.
var (
	newPromptDriver = prompt.NewSurveyDriver
	isInteractive   = prompt.Interactive
)

// CommandContext holds the shared state every command needs.
type CommandContext struct {
	Cfg          *config.Config
	Logger       *slog.Logger
	Orchestrator *orchestrator.Orchestrator
	Out          io.Writer
}

// NewCommandContext builds the orchestrator from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.FromContext(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Orchestrator: orchestrator.New(
			orchestrator.WithVars(cfg.Vars),
			orchestrator.WithLogger(logger),
			orchestrator.WithDefaultRenderer(cfg.Format),
		),
		Out: cmd.OutOrStdout(),
	}
}

// LoadStore parses every definition below the configured defs directory, or
// the embedded definitions when --builtin is set.
func (c *CommandContext) LoadStore(cmd *cobra.Command) (*pagedef.Store, error) {
	source, name := olxgui.Definitions(), "built-in definitions"
	if !c.Cfg.Builtin {
		info, err := os.Stat(c.Cfg.DefsDir)
		if err != nil {
			return nil, fmt.Errorf("definitions directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("definitions directory: %s is not a directory", c.Cfg.DefsDir)
		}
		source, name = os.DirFS(c.Cfg.DefsDir), c.Cfg.DefsDir
	}

	store, err := c.Orchestrator.Load(cmd.Context(), source)
	if err != nil {
		return nil, err
	}
	if store.Empty() {
		return nil, fmt.Errorf("no pages defined in %s", name)
	}
	return store, nil
}

// UseColor resolves the color setting for output written to w.
func (c *CommandContext) UseColor(w io.Writer) bool {
	switch c.Cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return pretty.IsTerminal(w)
	}
}

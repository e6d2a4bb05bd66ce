// Package olxgui generates Olex2 GUI markup from YAML page definitions.
//
// The root package re-exports the common entry points; the building blocks
// live under pkg/ (markup, snippet, widgets, layout, pretty, pagedef, render
// and orchestrator).
package olxgui

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-olxgui/pkg/orchestrator"
	"github.com/goliatone/go-olxgui/pkg/pagedef"
	"github.com/goliatone/go-olxgui/pkg/render"
)

// RenderOptions describes per-request output settings.
type RenderOptions = render.RenderOptions

// Transformer rewrites a built page before it is rendered.
type Transformer = orchestrator.Transformer

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// LoadDefinitions parses every definition file in fsys, making vars visible
// to their templates.
func LoadDefinitions(fsys fs.FS, vars map[string]string) (*pagedef.Store, error) {
	return pagedef.LoadFS(fsys, pagedef.WithVars(vars))
}

// GenerateMarkup loads the definitions in fsys, builds the requested page
// and renders it using the named renderer. It is the simplest entry point
// for callers that just want the page text.
func GenerateMarkup(ctx context.Context, fsys fs.FS, pageID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   fsys,
		Page:     pageID,
		Renderer: rendererName,
	})
}

// GenerateMarkupFromStore renders a page from pre-loaded definitions,
// bypassing the loader stage.
func GenerateMarkupFromStore(ctx context.Context, store *pagedef.Store, pageID, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Store:    store,
		Page:     pageID,
		Renderer: rendererName,
	})
}

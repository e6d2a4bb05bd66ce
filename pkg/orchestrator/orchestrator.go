package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/goliatone/go-olxgui/pkg/layout"
	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/pagedef"
	"github.com/goliatone/go-olxgui/pkg/render"
	"github.com/goliatone/go-olxgui/pkg/widgets"
)

const defaultRendererName = render.FormatPretty

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithWidgets injects the widget registry used to resolve widget cells.
func WithWidgets(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		o.widgets = registry
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformer registers a Transformer that can rewrite a page after it is
// built from its definition and before it is rendered.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithVars seeds template variables visible to every definition file.
func WithVars(vars map[string]string) Option {
	return func(o *Orchestrator) {
		if len(vars) == 0 {
			return
		}
		if o.vars == nil {
			o.vars = make(map[string]string, len(vars))
		}
		for key, value := range vars {
			o.vars[key] = value
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates the pipeline from page definitions to rendered
// output: load definitions, build the page, transform, render.
type Orchestrator struct {
	widgets         *widgets.Registry
	registry        *render.Registry
	defaultRenderer string
	transformer     Transformer
	vars            map[string]string
	logger          *slog.Logger
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies fall back to the built-in widget and renderer registries.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes which page to generate and how to render it.
type Request struct {
	// Source holds the definition files. Optional when Store is supplied.
	Source fs.FS

	// Store allows callers to bypass loading when definitions are already
	// parsed.
	Store *pagedef.Store

	// Page selects the page id to generate.
	Page string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request output settings.
	RenderOptions render.RenderOptions
}

// Generate executes the load, build, transform and render sequence and
// returns the rendered bytes.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	node, err := o.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, node, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	o.logger.DebugContext(ctx, "page rendered", "page", req.Page, "renderer", renderer.Name(), "bytes", len(output))
	return output, nil
}

// Build composes the requested page without rendering it.
func (o *Orchestrator) Build(ctx context.Context, req Request) (markup.Node, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Page == "" {
		return nil, errors.New("orchestrator: page id is required")
	}

	store, err := o.resolveStore(ctx, req)
	if err != nil {
		return nil, err
	}
	def, err := store.Page(req.Page)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	page, err := pagedef.Build(def, o.widgets)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build page: %w", err)
	}
	if err := o.applyTransformer(ctx, page); err != nil {
		return nil, err
	}

	node, err := page.Build()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: compose page %q: %w", req.Page, err)
	}
	o.logger.DebugContext(ctx, "page built", "page", req.Page, "source", def.Source,
		"blocks", len(page.Blocks), "fallback", len(page.Fallback))
	return node, nil
}

// Load parses every definition file found in source.
func (o *Orchestrator) Load(ctx context.Context, source fs.FS) (*pagedef.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	store, err := pagedef.LoadFS(source, pagedef.WithVars(o.vars))
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load definitions: %w", err)
	}
	o.logger.DebugContext(ctx, "definitions loaded", "pages", len(store.IDs()))
	return store, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	return o.registry.List()
}

// Widgets returns the widget registry in use.
func (o *Orchestrator) Widgets() *widgets.Registry {
	return o.widgets
}

func (o *Orchestrator) resolveStore(ctx context.Context, req Request) (*pagedef.Store, error) {
	if req.Store != nil {
		return req.Store, nil
	}
	if req.Source == nil {
		return nil, errors.New("orchestrator: source or store is required")
	}
	return o.Load(ctx, req.Source)
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, page *layout.Page) error {
	if o.transformer == nil || page == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, page); err != nil {
		return fmt.Errorf("orchestrator: transform page: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.widgets == nil {
		o.widgets = widgets.Default()
	}
	if o.registry == nil {
		o.registry = render.NewDefaultRegistry()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/pretty"
)

// Built-in renderer names.
const (
	FormatRaw      = "raw"
	FormatPretty   = "pretty"
	FormatTerminal = "terminal"
)

// NewDefaultRegistry returns a registry holding the raw, pretty and terminal
// renderers.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.MustRegister(Raw{})
	registry.MustRegister(Pretty{})
	registry.MustRegister(Terminal{})
	return registry
}

// Raw emits the markup exactly as composed.
type Raw struct{}

func (Raw) Name() string        { return FormatRaw }
func (Raw) ContentType() string { return "text/html" }

func (Raw) Render(ctx context.Context, node markup.Node, _ RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if node == nil {
		return nil, fmt.Errorf("render: node is required")
	}
	return []byte(node.Markup()), nil
}

// Pretty emits the markup one tag per line, indented by nesting depth. This
// is the format written to the deployment file.
type Pretty struct{}

func (Pretty) Name() string        { return FormatPretty }
func (Pretty) ContentType() string { return "text/html" }

func (Pretty) Render(ctx context.Context, node markup.Node, options RenderOptions) ([]byte, error) {
	formatted, err := format(ctx, node, options)
	if err != nil {
		return nil, err
	}
	return []byte(formatted + "\n"), nil
}

// Terminal emits the pretty layout with ANSI colours when options.Color is
// set.
type Terminal struct {
	Theme *pretty.Theme
}

func (Terminal) Name() string        { return FormatTerminal }
func (Terminal) ContentType() string { return "text/plain" }

func (t Terminal) Render(ctx context.Context, node markup.Node, options RenderOptions) ([]byte, error) {
	formatted, err := format(ctx, node, options)
	if err != nil {
		return nil, err
	}
	opts := []pretty.HighlightOption{pretty.WithColor(options.Color)}
	if t.Theme != nil {
		opts = append(opts, pretty.WithTheme(*t.Theme))
	}
	var buf bytes.Buffer
	if err := pretty.Highlight(&buf, formatted, opts...); err != nil {
		return nil, fmt.Errorf("render: highlight: %w", err)
	}
	return buf.Bytes(), nil
}

func format(ctx context.Context, node markup.Node, options RenderOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if node == nil {
		return "", fmt.Errorf("render: node is required")
	}
	var opts []pretty.Option
	if options.Indent > 0 {
		opts = append(opts, pretty.WithIndent(options.Indent))
	}
	formatted, err := pretty.Format(node.Markup(), opts...)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return formatted, nil
}

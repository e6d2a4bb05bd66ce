package render

import (
	"context"

	"github.com/goliatone/go-olxgui/pkg/markup"
)

// Renderer turns a composed markup tree into the bytes written to the
// deployment file or the terminal.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, node markup.Node, options RenderOptions) ([]byte, error)
}

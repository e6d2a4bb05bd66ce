package orchestrator

import (
	"context"
	"errors"

	"github.com/goliatone/go-olxgui/pkg/layout"
	"github.com/goliatone/go-olxgui/pkg/markup"
)

// Transformer rewrites a built page before it is composed and rendered.
// Implementations can add blocks, swap headers or tighten conditions.
type Transformer interface {
	Transform(ctx context.Context, page *layout.Page) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, page *layout.Page) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, page *layout.Page) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, page)
}

// Chain runs transformers in order and stops at the first error.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, page *layout.Page) error {
		for _, t := range transformers {
			if t == nil {
				continue
			}
			if err := t.Transform(ctx, page); err != nil {
				return err
			}
		}
		return nil
	})
}

// AppendBlocks adds nodes after the page blocks, inside the page condition.
func AppendBlocks(nodes ...markup.Node) Transformer {
	return TransformerFunc(func(_ context.Context, page *layout.Page) error {
		page.Blocks = append(page.Blocks, nodes...)
		return nil
	})
}

// RequireCondition fails for pages without a condition. Deployed pages are
// expected to hide themselves when their feature is switched off.
func RequireCondition() Transformer {
	return TransformerFunc(func(_ context.Context, page *layout.Page) error {
		if page.Condition == "" {
			return errors.New("page has no condition")
		}
		return nil
	})
}

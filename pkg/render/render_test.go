package render_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/render"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(render.Raw{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register(render.Raw{}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil renderer to fail")
	}
	if _, err := registry.Get("pdf"); !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("expected ErrUnknownRenderer, got %v", err)
	}
	if !registry.Has(render.FormatRaw) {
		t.Fatal("expected raw renderer")
	}
}

func TestDefaultRegistry_List(t *testing.T) {
	got := render.NewDefaultRegistry().List()
	want := []string{render.FormatPretty, render.FormatRaw, render.FormatTerminal}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("renderer list mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderers(t *testing.T) {
	node := markup.TR(markup.NewAttrs("NAME", "X"), markup.TD(nil, markup.Raw("a")))
	registry := render.NewDefaultRegistry()
	ctx := context.Background()

	raw, err := registry.Render(ctx, render.FormatRaw, node, render.RenderOptions{})
	if err != nil {
		t.Fatalf("raw: %v", err)
	}
	if string(raw) != node.Markup() {
		t.Fatalf("raw output changed markup: %q", raw)
	}

	formatted, err := registry.Render(ctx, render.FormatPretty, node, render.RenderOptions{Indent: 1})
	if err != nil {
		t.Fatalf("pretty: %v", err)
	}
	want := "<tr NAME=\"X\">\n <td>\n  a\n </td>\n</tr>\n"
	if diff := cmp.Diff(want, string(formatted)); diff != "" {
		t.Fatalf("pretty mismatch (-want +got):\n%s", diff)
	}

	plain, err := registry.Render(ctx, render.FormatTerminal, node, render.RenderOptions{Indent: 1})
	if err != nil {
		t.Fatalf("terminal: %v", err)
	}
	if diff := cmp.Diff(want, string(plain)); diff != "" {
		t.Fatalf("terminal without colour must match pretty (-want +got):\n%s", diff)
	}
}

func TestRenderers_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, name := range render.NewDefaultRegistry().List() {
		_, err := render.NewDefaultRegistry().Render(ctx, name, markup.Raw("x"), render.RenderOptions{})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("%s: expected context.Canceled, got %v", name, err)
		}
	}
}

func TestRenderers_NilNode(t *testing.T) {
	_, err := render.Pretty{}.Render(context.Background(), nil, render.RenderOptions{})
	if err == nil || !strings.Contains(err.Error(), "node is required") {
		t.Fatalf("expected node error, got %v", err)
	}
}

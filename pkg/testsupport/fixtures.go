package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/pagedef"
)

// LoadStore parses every definition file below dir.
func LoadStore(t *testing.T, dir string, opts ...pagedef.LoadOption) *pagedef.Store {
	t.Helper()

	store, err := pagedef.LoadFS(os.DirFS(dir), opts...)
	if err != nil {
		t.Fatalf("load definitions: %v", err)
	}
	return store
}

// MustBuildPage builds and composes a page from store.
func MustBuildPage(t *testing.T, store *pagedef.Store, id string) markup.Node {
	t.Helper()

	def, err := store.Page(id)
	if err != nil {
		t.Fatalf("page %q: %v", id, err)
	}
	page, err := pagedef.Build(def, nil)
	if err != nil {
		t.Fatalf("build page %q: %v", id, err)
	}
	node, err := page.Build()
	if err != nil {
		t.Fatalf("compose page %q: %v", id, err)
	}
	return node
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

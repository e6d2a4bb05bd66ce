package olxgui

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

func TestDefinitionsContainNoSpherA2(t *testing.T) {
	if _, err := fs.ReadFile(Definitions(), "nosphera2.yaml"); err != nil {
		t.Fatalf("expected nosphera2 definition to be readable: %v", err)
	}

	store, err := LoadDefinitions(Definitions(), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := store.Page("nosphera2"); err != nil {
		t.Fatalf("page: %v", err)
	}
}

func TestGenerateMarkup(t *testing.T) {
	fsys := fstest.MapFS{
		"p.yaml": {Data: []byte("pages:\n  p:\n    no_header: true\n    blocks: [\"<tr>x</tr>\"]\n")},
	}
	out, err := GenerateMarkup(context.Background(), fsys, "p", "raw")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "<tr>x</tr>" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGenerateMarkupFromStore_BuiltinPage(t *testing.T) {
	store, err := LoadDefinitions(Definitions(), nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out, err := GenerateMarkupFromStore(context.Background(), store, "nosphera2", "pretty")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	text := string(out)
	if !strings.HasPrefix(text, "<!-- #include tool-h3") || !strings.HasSuffix(text, "\n") {
		t.Fatalf("unexpected page framing:\n%s", text)
	}
	if !strings.Contains(text, "\n  <") {
		t.Fatalf("expected nested tags to be indented in:\n%s", text)
	}
}

package pagedef_test

import (
	"errors"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-olxgui/pkg/layout"
	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/pagedef"
	"github.com/goliatone/go-olxgui/pkg/snippet"
)

func TestLoadFS_ParsesPages(t *testing.T) {
	store, err := pagedef.LoadFS(fstest.MapFS{
		"gui/refine.yaml": {Data: []byte(`
pages:
  refine:
    blocks:
      - raw: "<tr>a</tr>"
  solve:
    no_header: true
    blocks: ["<tr>b</tr>"]
`)},
		"gui/notes.txt": {Data: []byte("ignored")},
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"refine", "solve"}, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	page, err := store.Page("solve")
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	if page.Source != "gui/refine.yaml" || !page.NoHeader {
		t.Fatalf("unexpected page metadata %+v", page)
	}
	if len(page.Blocks) != 1 || page.Blocks[0].Kind != pagedef.KindRaw || page.Blocks[0].Text != "<tr>b</tr>" {
		t.Fatalf("unexpected blocks %+v", page.Blocks)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := []struct {
		name  string
		files fstest.MapFS
		want  string
	}{
		{
			name: "duplicate page",
			files: fstest.MapFS{
				"a.yaml": {Data: []byte("pages:\n  p:\n    blocks: []\n")},
				"b.yaml": {Data: []byte("pages:\n  p:\n    blocks: []\n")},
			},
			want: `duplicate page "p"`,
		},
		{
			name:  "empty file",
			files: fstest.MapFS{"a.yaml": {Data: []byte("  \n")}},
			want:  "is empty",
		},
		{
			name:  "unknown top-level key",
			files: fstest.MapFS{"a.yaml": {Data: []byte("layouts: {}\n")}},
			want:  `unknown top-level key "layouts"`,
		},
		{
			name:  "unknown item kind",
			files: fstest.MapFS{"a.yaml": {Data: []byte("pages:\n  p:\n    blocks:\n      - chart: x\n")}},
			want:  `unknown kind "chart"`,
		},
		{
			name:  "non scalar parameter",
			files: fstest.MapFS{"a.yaml": {Data: []byte("pages:\n  p:\n    blocks:\n      - widget:\n          kind: text\n          params:\n            value: [a]\n")}},
			want:  `parameter "value" must be a scalar`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pagedef.LoadFS(tc.files)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := pagedef.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatal("expected empty store")
	}
	if _, err := store.Page("missing"); !errors.Is(err, pagedef.ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
}

func TestParams_KeepFileOrder(t *testing.T) {
	store, err := pagedef.Parse([]byte(`
pages:
  p:
    blocks:
      - widget:
          snippet: gui/snippets/custom
          params:
            zeta: "1"
            alpha: "2"
            mid: ~
            beta: "3"
`), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	page, _ := store.Page("p")
	got := page.Blocks[0].Widget.Params.Attrs().Keys()
	if diff := cmp.Diff([]string{"zeta", "alpha", "mid", "beta"}, got); diff != "" {
		t.Fatalf("parameter order mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_ExpandsVars(t *testing.T) {
	store, err := pagedef.Parse([]byte(`
vars:
  ns: snum.NoSpherA2
pages:
  p:
    condition: "spy.GetParam('{{ ns }}.Calculate')"
    blocks:
      - raw: "<b>{{ title|upper }}</b>"
`), "inline", pagedef.WithVars(map[string]string{"title": "nsff", "ns": "overridden"}))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	page, _ := store.Page("p")
	if page.Condition != "spy.GetParam('snum.NoSpherA2.Calculate')" {
		t.Fatalf("file vars must win and output must not be escaped, got %q", page.Condition)
	}
	if page.Blocks[0].Text != "<b>NSFF</b>" {
		t.Fatalf("unexpected expansion %q", page.Blocks[0].Text)
	}
}

func TestBuild_WidgetsAndLabels(t *testing.T) {
	store, err := pagedef.Parse([]byte(`
pages:
  p:
    no_header: true
    blocks:
      - table:
          name: SNUM_X
          rows:
            - - widget:
                  kind: text
                  params: {name: mem, phil: snum.NoSpherA2.mem}
                  cell: {width: 30%}
              - labeled:
                  label: Mem(Gb)
                  width: 20%
                  widget:
                    kind: combo
                    params: {name: cpus, items: "'1;2'", phil: snum.NoSpherA2.ncpus}
`), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	page, _ := store.Page("p")
	built, err := pagedef.Build(page, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	node, err := built.Build()
	if err != nil {
		t.Fatalf("page build: %v", err)
	}
	out := node.Markup()

	for _, want := range []string{
		`NAME="SNUM_X"`,
		`<td width="30%" align="left">`,
		`"value=spy.GetParam('snum.NoSpherA2.mem')",`,
		`"onchange=spy.SetParam('snum.NoSpherA2.ncpus',html.GetValue('~name~'))",`,
		`<td align="left" width="20%">`,
		"<b>\nMem(Gb)\n</b>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "phil=") {
		t.Fatalf("phil shortcut must not be rendered:\n%s", out)
	}
}

func TestBuild_ConditionalHoistsWidth(t *testing.T) {
	store, err := pagedef.Parse([]byte(`
pages:
  p:
    blocks:
      - if:
          test: spy.x()
          then: [{td: {attrs: {width: "30"}, text: a}}]
          else: [{td: {attrs: {width: "45"}, text: b}}]
`), "inline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	page, _ := store.Page("p")
	built, err := pagedef.Build(page, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	cond, ok := built.Blocks[0].(*layout.Conditional)
	if !ok {
		t.Fatalf("expected conditional, got %T", built.Blocks[0])
	}
	if width, _ := cond.Width(); width != "45" {
		t.Fatalf("expected hoisted width 45, got %q", width)
	}
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		is   error
	}{
		{
			name: "unbalanced parameter",
			doc:  "pages:\n  p:\n    blocks:\n      - widget: {snippet: gui/x, params: {value: \"spy.Get(a\"}}\n",
			is:   snippet.ErrUnbalancedExpression,
		},
		{
			name: "missing required parameter",
			doc:  "pages:\n  p:\n    blocks:\n      - widget: {kind: combo, params: {name: x}}\n",
			is:   snippet.ErrInvalidParameter,
		},
		{
			name: "include without path",
			doc:  "pages:\n  p:\n    blocks:\n      - include: {name: x}\n",
			is:   pagedef.ErrInvalidItem,
		},
		{
			name: "unbalanced condition",
			doc:  "pages:\n  p:\n    blocks:\n      - table: {condition: \"spy.a(\", rows: [[{raw: x}]]}\n",
			is:   snippet.ErrUnbalancedExpression,
		},
		{
			name: "fallback without condition",
			doc:  "pages:\n  p:\n    blocks: [{raw: a}]\n    fallback: [{raw: b}]\n",
			is:   layout.ErrFallbackWithoutCondition,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store, err := pagedef.Parse([]byte(tc.doc), "inline")
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			page, _ := store.Page("p")
			if _, err := pagedef.Build(page, nil); !errors.Is(err, tc.is) {
				t.Fatalf("expected %v, got %v", tc.is, err)
			}
		})
	}
}

func TestBuild_NoSpherA2Page(t *testing.T) {
	store, err := pagedef.LoadFS(os.DirFS("testdata"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	page, err := store.Page("nosphera2")
	if err != nil {
		t.Fatalf("page: %v", err)
	}
	built, err := pagedef.Build(page, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	node, err := built.Build()
	if err != nil {
		t.Fatalf("page build: %v", err)
	}
	out := node.Markup()

	if !strings.HasPrefix(out, "<!-- #include tool-h3 gui/blocks/tool-h3.htm;image=#image;colspan=1;1 -->") {
		t.Fatalf("expected tool-h3 header first:\n%s", out)
	}
	if got := strings.Count(out, `NAME="SNUM_REFINEMENT_RIFIT"`); got != 1 {
		t.Fatalf("expected one RI-fit row, got %d", got)
	}
	for _, want := range []string{
		"<ignore test=\"spy.GetParam('snum.NoSpherA2.Calculate')\">",
		"<ignore test=\"not(spy.GetParam('snum.NoSpherA2.Calculate'))\">",
		"<!-- #include ELMO_specific ../util/pyUtil/NoSpherA2/ELMO_specific.htm;help_ext=NoSpherA2Extras;1 -->",
		`"name=Update .tsc & .wfn",`,
		"No Settings available.",
		`max="1000"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output", want)
		}
	}
	if strings.Contains(out, "{{") {
		t.Fatal("unexpanded template left in output")
	}
}

func TestNewParams(t *testing.T) {
	params := pagedef.NewParams(markup.NewAttrs("a", "1"))
	attrs := params.Attrs()
	attrs.Set("b", "2")
	if params.Attrs().Has("b") {
		t.Fatal("Attrs must return a copy")
	}
}

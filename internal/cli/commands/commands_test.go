package commands

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-olxgui/internal/cli/config"
	"github.com/goliatone/go-olxgui/internal/cli/prompt"
)

const testDefs = `pages:
  alpha:
    title: Alpha page
    no_header: true
    blocks:
      - raw: "<tr>a</tr>"
  beta:
    no_header: true
    blocks:
      - raw: "<tr>{{ label }}</tr>"
`

type stubDriver struct {
	confirm  []bool
	selected []int
	asked    []string
}

func (s *stubDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	s.asked = append(s.asked, cfg.Message)
	if len(s.confirm) == 0 {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[0]
	s.confirm = s.confirm[1:]
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	s.asked = append(s.asked, cfg.Message)
	if len(s.selected) == 0 {
		return -1, errors.New("no select scripted")
	}
	val := s.selected[0]
	s.selected = s.selected[1:]
	return val, nil
}

func useDriver(t *testing.T, driver prompt.Driver, interactive bool) {
	t.Helper()
	prevDriver, prevInteractive := newPromptDriver, isInteractive
	newPromptDriver = func() prompt.Driver { return driver }
	isInteractive = func() bool { return interactive }
	t.Cleanup(func() {
		newPromptDriver, isInteractive = prevDriver, prevInteractive
	})
}

func writeDefs(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "pages.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write defs: %v", err)
	}
	return dir
}

func testConfig(defs string) *config.Config {
	return &config.Config{
		DefsDir: defs,
		Format:  "pretty",
		Indent:  config.DefaultIndent,
		Color:   config.ColorNever,
		Vars:    map[string]string{"label": "b"},
	}
}

func execute(t *testing.T, cmd *cobra.Command, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(config.WithConfig(context.Background(), cfg))
	return out.String(), err
}

func TestNewRenderCommand(t *testing.T) {
	cmd := NewRenderCommand()
	if cmd.Use != "render [page]" || cmd.Short == "" || cmd.Example == "" {
		t.Fatalf("unexpected command metadata %q", cmd.Use)
	}
	for _, flag := range []string{"format", "output", "force"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Fatalf("flag %q should exist", flag)
		}
	}
}

func TestRender_Stdout(t *testing.T) {
	useDriver(t, &stubDriver{}, false)
	cfg := testConfig(writeDefs(t, testDefs))

	got, err := execute(t, NewRenderCommand(), cfg, "beta")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff("<tr>\n  b\n</tr>\n", got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_RawFormat(t *testing.T) {
	useDriver(t, &stubDriver{}, false)
	cfg := testConfig(writeDefs(t, testDefs))
	cfg.Format = "raw"

	got, err := execute(t, NewRenderCommand(), cfg, "alpha")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<tr>a</tr>" {
		t.Fatalf("unexpected raw output %q", got)
	}
}

func TestRender_WritesOutputFile(t *testing.T) {
	useDriver(t, &stubDriver{}, false)
	cfg := testConfig(writeDefs(t, testDefs))
	cfg.Output = filepath.Join(t.TempDir(), "deploy", "alpha.htm")

	msg, err := execute(t, NewRenderCommand(), cfg, "alpha")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(msg, "written to") {
		t.Fatalf("expected confirmation message, got %q", msg)
	}
	data, err := os.ReadFile(cfg.Output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "<tr>\n  a\n</tr>\n" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestRender_ExistingOutput(t *testing.T) {
	cases := []struct {
		name        string
		interactive bool
		force       bool
		confirm     []bool
		wantErr     error
		wantContent string
		wantAsked   int
	}{
		{name: "non interactive refuses", wantErr: ErrOutputExists, wantContent: "old"},
		{name: "force overwrites", force: true, wantContent: "<tr>\n  a\n</tr>\n"},
		{name: "confirmed", interactive: true, confirm: []bool{true}, wantContent: "<tr>\n  a\n</tr>\n", wantAsked: 1},
		{name: "declined", interactive: true, confirm: []bool{false}, wantContent: "old", wantAsked: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			driver := &stubDriver{confirm: tc.confirm}
			useDriver(t, driver, tc.interactive)

			cfg := testConfig(writeDefs(t, testDefs))
			cfg.Force = tc.force
			cfg.Output = filepath.Join(t.TempDir(), "alpha.htm")
			if err := os.WriteFile(cfg.Output, []byte("old"), 0o644); err != nil {
				t.Fatalf("seed output: %v", err)
			}

			_, err := execute(t, NewRenderCommand(), cfg, "alpha")
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			data, _ := os.ReadFile(cfg.Output)
			if string(data) != tc.wantContent {
				t.Fatalf("unexpected file content %q", data)
			}
			if len(driver.asked) != tc.wantAsked {
				t.Fatalf("expected %d prompts, got %v", tc.wantAsked, driver.asked)
			}
		})
	}
}

func TestRender_SelectsPage(t *testing.T) {
	driver := &stubDriver{selected: []int{1}}
	useDriver(t, driver, true)
	cfg := testConfig(writeDefs(t, testDefs))

	got, err := execute(t, NewRenderCommand(), cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<tr>\n  b\n</tr>\n" {
		t.Fatalf("expected beta page, got %q", got)
	}
	if diff := cmp.Diff([]string{"Page to render"}, driver.asked); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_PageRequiredWhenNotInteractive(t *testing.T) {
	useDriver(t, &stubDriver{}, false)
	cfg := testConfig(writeDefs(t, testDefs))

	_, err := execute(t, NewRenderCommand(), cfg)
	if err == nil || !strings.Contains(err.Error(), "page id is required") {
		t.Fatalf("expected page id error, got %v", err)
	}
}

func TestRender_MissingDefs(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing"))
	if _, err := execute(t, NewRenderCommand(), cfg, "alpha"); err == nil {
		t.Fatal("expected error for missing definitions directory")
	}
}

func TestLint_Builtin(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "unused"))
	cfg.Builtin = true
	cfg.Vars = nil

	got, err := execute(t, NewLintCommand(), cfg)
	if err != nil {
		t.Fatalf("lint: %v\n%s", err, got)
	}
	if !strings.Contains(got, "ok   nosphera2") {
		t.Fatalf("expected built-in page in report:\n%s", got)
	}
}

func TestLint(t *testing.T) {
	defs := testDefs + `  gamma:
    no_header: true
    blocks:
      - widget: {kind: combo, params: {name: x}}
`
	cfg := testConfig(writeDefs(t, defs))

	got, err := execute(t, NewLintCommand(), cfg)
	if err == nil || !strings.Contains(err.Error(), "1 of 3 pages failed") {
		t.Fatalf("expected lint failure, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected one line per page, got %q", got)
	}
	if lines[0] != "ok   alpha" || lines[1] != "ok   beta" || !strings.HasPrefix(lines[2], "FAIL gamma: ") {
		t.Fatalf("unexpected lint report:\n%s", got)
	}
}

func TestList(t *testing.T) {
	cfg := testConfig(writeDefs(t, testDefs))

	got, err := execute(t, NewListCommand(), cfg)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := "Pages (2 total)\n  alpha  Alpha page  pages.yaml\n  beta   pages.yaml\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestWidgets(t *testing.T) {
	got, err := execute(t, NewWidgetsCommand(), testConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("widgets: %v", err)
	}
	for _, want := range []string{"combo", "checkbox-td", "required: name, items"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in:\n%s", want, got)
		}
	}
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("DEPLOY_PATH", "")

	defs := filepath.Join(dir, "gui")
	if err := os.MkdirAll(defs, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	page := "pages:\n  solve:\n    no_header: true\n    blocks:\n      - raw: \"<td>{{ program }}</td>\"\n"
	if err := os.WriteFile(filepath.Join(defs, "solve.yaml"), []byte(page), 0o644); err != nil {
		t.Fatalf("write defs: %v", err)
	}
	return dir
}

func TestRoot_RenderWithFlags(t *testing.T) {
	setupProject(t)

	out, _, err := runRoot(t, "render", "solve", "--format", "raw", "--var", "program=olex2.solve")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "<td>olex2.solve</td>" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRoot_ConfigFileAndDeployPath(t *testing.T) {
	dir := setupProject(t)
	cfg := "format: raw\nvars:\n  program: ShelXT\n"
	if err := os.WriteFile(filepath.Join(dir, "olxgen.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	target := filepath.Join(dir, "out", "solve.htm")
	t.Setenv("DEPLOY_PATH", target)

	_, stderr, err := runRoot(t, "render", "solve", "-v")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "<td>ShelXT</td>" {
		t.Fatalf("unexpected output %q", data)
	}
	for _, want := range []string{"using config file", "page written"} {
		if !strings.Contains(stderr, want) {
			t.Fatalf("expected %q in log output:\n%s", want, stderr)
		}
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	setupProject(t)

	_, _, err := runRoot(t, "list", "--color", "rainbow")
	if err == nil || !strings.Contains(err.Error(), "unknown color mode") {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestRoot_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	want := map[string]bool{"render": false, "lint": false, "list": false, "widgets": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

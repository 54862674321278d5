package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSelectOrdinals(t *testing.T) {
	tools := Builtin()

	if _, sel := Select(tools, 0); sel != SelectionExit {
		t.Fatalf("expected ordinal 0 to exit, got %v", sel)
	}
	if tool, sel := Select(tools, 1); sel != SelectionTool || tool.Command != "exiftool" {
		t.Fatalf("expected first tool exiftool, got %q (%v)", tool.Command, sel)
	}
	if tool, sel := Select(tools, len(tools)); sel != SelectionTool || tool.Command != "cyberchef" {
		t.Fatalf("expected last tool cyberchef, got %q (%v)", tool.Command, sel)
	}
	if _, sel := Select(tools, len(tools)+1); sel != SelectionInvalid {
		t.Fatalf("expected out-of-range ordinal to be invalid, got %v", sel)
	}
	if _, sel := Select(tools, -3); sel != SelectionInvalid {
		t.Fatalf("expected negative ordinal to be invalid, got %v", sel)
	}
}

func TestBuiltinIsACopy(t *testing.T) {
	first := Builtin()
	first[0].Command = "mutated"
	if Builtin()[0].Command != "exiftool" {
		t.Fatal("Builtin must return an independent copy")
	}
}

func TestLoadMissingExtensionFile(t *testing.T) {
	tools, err := Load(filepath.Join(t.TempDir(), "tools.yaml"))
	if err != nil {
		t.Fatalf("missing extension file should not error: %v", err)
	}
	if len(tools) != len(Builtin()) {
		t.Fatalf("expected builtin list, got %d entries", len(tools))
	}
}

func TestLoadAppendsExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	contents := `tools:
  - name: Volatility 3
    command: vol
    description: Memory forensics framework.
    examples:
      - vol -f memory.dmp windows.info
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write extension file: %v", err)
	}

	tools, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tools) != len(Builtin())+1 {
		t.Fatalf("expected one appended tool, got %d entries", len(tools))
	}
	last := tools[len(tools)-1]
	if last.Command != "vol" || last.Name != "Volatility 3" {
		t.Fatalf("unexpected appended tool %+v", last)
	}
	if tools[0].Command != "exiftool" {
		t.Fatal("extensions must not reorder builtin tools")
	}
}

func TestLoadRejectsCommandlessEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tools.yaml")
	if err := os.WriteFile(path, []byte("tools:\n  - name: Broken\n"), 0o644); err != nil {
		t.Fatalf("write extension file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for extension entry without command")
	}
}

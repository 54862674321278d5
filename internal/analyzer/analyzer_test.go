package analyzer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/psworld143/ctf-tools/internal/config"
)

type fakeGenerator struct {
	provider config.Provider
	prompt   string
	result   string
	err      error
}

func (f *fakeGenerator) Generate(_ context.Context, provider config.Provider, prompt string) (string, error) {
	f.provider = provider
	f.prompt = prompt
	return f.result, f.err
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestBuildPromptSmallTextFileIncludesFullContent(t *testing.T) {
	content := strings.Repeat("flag{not_here} ", 13) // 195 bytes
	path := writeTemp(t, "notes.txt", []byte(content))

	prompt, err := BuildPrompt(path)
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if !strings.Contains(prompt, "Content preview:\n"+content) {
		t.Fatal("expected full content of small text file in preview")
	}
	if !strings.Contains(prompt, "Extension: .txt") {
		t.Fatal("expected extension in metadata block")
	}
}

func TestBuildPromptLargeFileMetadataOnly(t *testing.T) {
	path := writeTemp(t, "dump.bin", bytes.Repeat([]byte("A"), 200_000))

	prompt, err := BuildPrompt(path)
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	if !strings.Contains(prompt, "(Large file - analyzing metadata only)") {
		t.Fatal("expected large-file marker")
	}
	if strings.Contains(prompt, "Content preview:") || strings.Contains(prompt, "Hex preview:") {
		t.Fatal("large file must not carry a content preview")
	}
	if !strings.Contains(prompt, "Size: 200000 bytes") {
		t.Fatal("expected size in metadata block")
	}
}

func TestBuildPromptBinaryFileGetsHexPreview(t *testing.T) {
	data := make([]byte, 2048)
	for i := range data {
		data[i] = byte(i % 251)
	}
	data[0] = 0xff
	data[1] = 0xfe
	path := writeTemp(t, "blob", data)

	prompt, err := BuildPrompt(path)
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	idx := strings.Index(prompt, "Hex preview:\n")
	if idx < 0 {
		t.Fatal("expected hex preview for binary file")
	}
	dump := prompt[idx+len("Hex preview:\n"):]
	if end := strings.Index(dump, "\n\n"); end >= 0 {
		dump = dump[:end]
	}
	if len(dump) != hexPreviewBudget {
		t.Fatalf("expected hex preview of %d chars, got %d", hexPreviewBudget, len(dump))
	}
}

func TestBuildPromptTextPreviewTruncated(t *testing.T) {
	path := writeTemp(t, "big.txt", bytes.Repeat([]byte("a"), 10_000))

	prompt, err := BuildPrompt(path)
	if err != nil {
		t.Fatalf("build prompt: %v", err)
	}
	idx := strings.Index(prompt, "Content preview:\n")
	if idx < 0 {
		t.Fatal("expected content preview")
	}
	preview := prompt[idx+len("Content preview:\n"):]
	if end := strings.Index(preview, "\n\n"); end >= 0 {
		preview = preview[:end]
	}
	if len(preview) != textPreviewBudget {
		t.Fatalf("expected preview of %d bytes, got %d", textPreviewBudget, len(preview))
	}
}

func TestBuildPromptMissingFile(t *testing.T) {
	if _, err := BuildPrompt(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAnalyzeUsesBestProvider(t *testing.T) {
	path := writeTemp(t, "chall.txt", []byte("what is this"))

	disabled := false
	providers := []config.Provider{
		{Name: "off", Priority: 1, Enabled: &disabled},
		{Name: "on", Priority: 2, URL: "https://example.com", Family: config.FamilyOpenAI},
	}
	gen := &fakeGenerator{result: "Forensics"}

	out, err := Analyze(context.Background(), gen, providers, path)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if out != "Forensics" {
		t.Fatalf("expected generator result, got %q", out)
	}
	if gen.provider.Name != "on" {
		t.Fatalf("expected enabled provider, got %q", gen.provider.Name)
	}
	if !strings.Contains(gen.prompt, "Analyze this CTF challenge file") {
		t.Fatal("expected preamble in prompt")
	}
}

func TestAnalyzeNoProviders(t *testing.T) {
	path := writeTemp(t, "chall.txt", []byte("x"))
	if _, err := Analyze(context.Background(), &fakeGenerator{}, nil, path); err == nil {
		t.Fatal("expected error when no provider is configured")
	}
}

func TestAnalyzePropagatesTransportFailure(t *testing.T) {
	path := writeTemp(t, "chall.txt", []byte("x"))
	gen := &fakeGenerator{err: errors.New("connection refused")}
	providers := []config.Provider{{Name: "p", URL: "https://example.com"}}

	if _, err := Analyze(context.Background(), gen, providers, path); err == nil {
		t.Fatal("expected transport failure to propagate")
	}
}

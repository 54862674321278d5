package analyzer

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/psworld143/ctf-tools/internal/config"
	"github.com/psworld143/ctf-tools/internal/llm"
)

// Byte budgets follow the classifier's fixed cutoffs: small files get a text
// or hex preview, anything at or above the threshold ships metadata only.
const (
	largeFileThreshold = 100_000
	textReadBudget     = 50_000
	textPreviewBudget  = 2_000
	hexReadBudget      = 1_024
	hexPreviewBudget   = 500
)

const preamble = `Analyze this CTF challenge file and determine:
1. Challenge category (Forensics, Steganography, Cryptography, Reverse Engineering, Web, Misc, etc.)
2. Likely file type and format
3. Recommended tools to use
4. Initial analysis steps
5. Potential flags or hidden data locations`

const toolkitHint = `Provide a concise analysis with specific tool recommendations from this CTF toolkit:
- ExifTool (metadata)
- Binwalk (embedded files)
- zsteg (steganography)
- Hashcat/John (cracking)
- strings/xxd (binary analysis)
- Ghidra/radare2 (reverse engineering)
- Wireshark (network analysis)`

// Generator is the single provider call the analyzer depends on.
type Generator interface {
	Generate(ctx context.Context, provider config.Provider, prompt string) (string, error)
}

var _ Generator = (*llm.Client)(nil)

// Analyze builds the classification prompt for path and sends it to the
// highest-priority enabled provider.
func Analyze(ctx context.Context, gen Generator, providers []config.Provider, path string) (string, error) {
	provider, ok := config.Best(providers)
	if !ok {
		return "", errors.New("no analysis provider configured")
	}
	prompt, err := BuildPrompt(path)
	if err != nil {
		return "", err
	}
	return gen.Generate(ctx, provider, prompt)
}

// BuildPrompt assembles the fixed preamble, the file metadata block, and a
// bounded content preview.
func BuildPrompt(path string) (string, error) {
	info, err := buildFileInfo(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n", preamble, info, toolkitHint), nil
}

func buildFileInfo(path string) (string, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("file not found: %s", path)
	}
	if stat.IsDir() {
		return "", fmt.Errorf("%s is a directory", path)
	}

	var info strings.Builder
	fmt.Fprintf(&info, "File: %s\n", filepath.Base(path))
	fmt.Fprintf(&info, "Size: %d bytes\n", stat.Size())
	fmt.Fprintf(&info, "Extension: %s\n", strings.ToLower(filepath.Ext(path)))

	if stat.Size() >= largeFileThreshold {
		info.WriteString("\n(Large file - analyzing metadata only)")
		return info.String(), nil
	}

	data, err := readAtMost(path, textReadBudget)
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		preview := data
		if len(preview) > textPreviewBudget {
			preview = preview[:textPreviewBudget]
		}
		fmt.Fprintf(&info, "\nContent preview:\n%s", preview)
		return info.String(), nil
	}

	if len(data) > hexReadBudget {
		data = data[:hexReadBudget]
	}
	dump := hex.EncodeToString(data)
	if len(dump) > hexPreviewBudget {
		dump = dump[:hexPreviewBudget]
	}
	fmt.Fprintf(&info, "\nHex preview:\n%s", dump)
	return info.String(), nil
}

func readAtMost(path string, limit int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, limit)
	n, err := f.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

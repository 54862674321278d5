package menu

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/psworld143/ctf-tools/internal/analyzer"
	"github.com/psworld143/ctf-tools/internal/catalog"
	"github.com/psworld143/ctf-tools/internal/config"
	"github.com/psworld143/ctf-tools/internal/installer"
	"github.com/psworld143/ctf-tools/internal/resolver"
)

type recordingReporter struct {
	noopReporter
	lines []string
}

func (r *recordingReporter) add(kind, message string) {
	r.lines = append(r.lines, kind+": "+message)
}

func (r *recordingReporter) Info(m string)    { r.add("info", m) }
func (r *recordingReporter) Success(m string) { r.add("success", m) }
func (r *recordingReporter) Warn(m string)    { r.add("warn", m) }
func (r *recordingReporter) Failure(m string) { r.add("failure", m) }
func (r *recordingReporter) Title(m string)   { r.add("title", m) }

func (r *recordingReporter) MenuItem(ordinal int, name string, available bool) {
	r.add("item", fmt.Sprintf("%d %s %v", ordinal, name, available))
}

func (r *recordingReporter) ToolDetail(name, command, description, status string, examples []string) {
	r.add("detail", name+" "+command+" "+status)
}

func (r *recordingReporter) StatusLine(result resolver.Result) string {
	if !result.Found {
		return "not found"
	}
	return "available " + result.Path
}

func (r *recordingReporter) Block(title, body string) {
	r.add("block", title+" "+body)
}

func (r *recordingReporter) contains(fragment string) bool {
	for _, line := range r.lines {
		if strings.Contains(line, fragment) {
			return true
		}
	}
	return false
}

type stubGenerator struct {
	result string
	err    error
}

func (s stubGenerator) Generate(context.Context, config.Provider, string) (string, error) {
	return s.result, s.err
}

var _ analyzer.Generator = stubGenerator{}

func notFound(string) (string, error) { return "", errors.New("not found") }

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}

func newTestMenu(t *testing.T, input string, reporter *recordingReporter, res *resolver.Resolver) *Menu {
	t.Helper()
	if res == nil {
		res = resolver.New(resolver.WithGOOS("linux"), resolver.WithLookPath(notFound))
	}
	return New(catalog.Builtin(), res, nil, stubGenerator{}, reporter, strings.NewReader(input))
}

func TestRunExitOnZero(t *testing.T) {
	reporter := &recordingReporter{}
	m := newTestMenu(t, "0\n", reporter, nil)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reporter.contains("Goodluck on your CTFs!") {
		t.Fatal("expected farewell on exit")
	}
}

func TestRunInvalidOrdinalRedisplaysMenu(t *testing.T) {
	reporter := &recordingReporter{}
	m := newTestMenu(t, "99\n0\n", reporter, nil)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reporter.contains("valid option") {
		t.Fatal("expected invalid-choice warning")
	}

	count := 0
	for _, line := range reporter.lines {
		if strings.Contains(line, "=== CTF Tool Selector ===") {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected menu rendered twice, got %d", count)
	}
}

func TestRunNonNumericChoiceIsInvalid(t *testing.T) {
	reporter := &recordingReporter{}
	m := newTestMenu(t, "xyz\n0\n", reporter, nil)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reporter.contains("valid option") {
		t.Fatal("expected invalid-choice warning")
	}
}

func TestRunEOFTerminates(t *testing.T) {
	reporter := &recordingReporter{}
	m := newTestMenu(t, "", reporter, nil)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run should end cleanly at EOF: %v", err)
	}
}

func TestToolDetailAndLaunch(t *testing.T) {
	reporter := &recordingReporter{}
	res := resolver.New(
		resolver.WithGOOS("linux"),
		resolver.WithLookPath(func(name string) (string, error) {
			if name == "exiftool" {
				return "/usr/bin/exiftool", nil
			}
			return "", errors.New("not found")
		}),
	)
	m := newTestMenu(t, "1\nr\n-ver suspicious.jpg\n0\n", reporter, res)

	var launchedPath string
	var launchedArgs []string
	m.Launch = func(_ context.Context, path string, args []string) error {
		launchedPath = path
		launchedArgs = args
		return nil
	}

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if launchedPath != "/usr/bin/exiftool" {
		t.Fatalf("expected resolved path, got %q", launchedPath)
	}
	if len(launchedArgs) != 2 || launchedArgs[0] != "-ver" {
		t.Fatalf("expected tokenized args, got %v", launchedArgs)
	}
	if !reporter.contains("detail: ExifTool exiftool") {
		t.Fatal("expected tool detail block")
	}
}

func TestRunToolMissingWarns(t *testing.T) {
	reporter := &recordingReporter{}
	m := newTestMenu(t, "1\nr\n0\n", reporter, nil)
	m.Launch = func(context.Context, string, []string) error {
		t.Fatal("missing tool must not launch")
		return nil
	}

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reporter.contains("exiftool is not found") {
		t.Fatal("expected not-found warning")
	}
}

func TestRunToolEmptyArgsCancels(t *testing.T) {
	reporter := &recordingReporter{}
	res := resolver.New(
		resolver.WithGOOS("linux"),
		resolver.WithLookPath(func(string) (string, error) { return "/usr/bin/tool", nil }),
	)
	m := newTestMenu(t, "1\nr\n\n0\n", reporter, res)
	m.Launch = func(context.Context, string, []string) error {
		t.Fatal("cancelled run must not launch")
		return nil
	}

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reporter.contains("Cancelled.") {
		t.Fatal("expected cancellation message")
	}
}

func TestAnalyzeFlowReportsResult(t *testing.T) {
	reporter := &recordingReporter{}
	res := resolver.New(resolver.WithGOOS("linux"), resolver.WithLookPath(notFound))

	dir := t.TempDir()
	file := dir + "/chall.txt"
	if err := writeFile(file, "some challenge"); err != nil {
		t.Fatalf("write file: %v", err)
	}

	providers := []config.Provider{{Name: "p", URL: "https://example.com", Family: config.FamilyOpenAI}}
	m := New(catalog.Builtin(), res, providers, stubGenerator{result: "Steganography"}, reporter,
		strings.NewReader("A\n\""+file+"\"\n0\n"))

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reporter.contains("CHALLENGE ANALYSIS RESULT Steganography") {
		t.Fatal("expected analysis result block")
	}
}

func TestAnalyzeFlowCollapsesFailures(t *testing.T) {
	reporter := &recordingReporter{}
	res := resolver.New(resolver.WithGOOS("linux"), resolver.WithLookPath(notFound))
	providers := []config.Provider{{Name: "p", URL: "https://example.com"}}

	dir := t.TempDir()
	file := dir + "/chall.txt"
	if err := writeFile(file, "x"); err != nil {
		t.Fatalf("write file: %v", err)
	}

	m := New(catalog.Builtin(), res, providers, stubGenerator{err: errors.New("dial tcp: timeout")}, reporter,
		strings.NewReader("A\n"+file+"\n0\n"))

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reporter.contains("Analysis failed. Please check your configuration.") {
		t.Fatal("expected generic failure message")
	}
}

func TestAnalyzeEmptyPathCancels(t *testing.T) {
	reporter := &recordingReporter{}
	m := newTestMenu(t, "A\n\n0\n", reporter, nil)

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reporter.contains("Cancelled.") {
		t.Fatal("expected cancellation on empty path")
	}
}

func TestInstallFlowConfirmAndSummary(t *testing.T) {
	reporter := &recordingReporter{}
	m := newTestMenu(t, "I\ny\n0\n", reporter, nil)
	m.Install = func(context.Context, installer.Reporter) (installer.Summary, error) {
		return installer.Summary{Installed: 11, Failed: 1, Skipped: 1}, nil
	}

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reporter.contains("Installation completed") {
		t.Fatal("expected completion message")
	}
}

func TestInstallFlowDeclined(t *testing.T) {
	reporter := &recordingReporter{}
	m := newTestMenu(t, "I\nn\n0\n", reporter, nil)
	m.Install = func(context.Context, installer.Reporter) (installer.Summary, error) {
		t.Fatal("declined install must not run")
		return installer.Summary{}, nil
	}

	if err := m.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reporter.contains("Cancelled.") {
		t.Fatal("expected cancellation message")
	}
}

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/psworld143/ctf-tools/internal/installer"
	"github.com/psworld143/ctf-tools/internal/resolver"
)

type Options struct {
	NoColor bool
	Out     io.Writer
}

type Renderer struct {
	out     io.Writer
	isTTY   bool
	noColor bool
	styles  styles

	installTotal int
	installDone  int
	installBar   progress.Model
}

type styles struct {
	info    lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	error   lipgloss.Style
	label   lipgloss.Style
	title   lipgloss.Style
	summary lipgloss.Style
}

func NewRenderer(opts Options) *Renderer {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	profile := termenv.EnvColorProfile()
	if opts.NoColor || !isTTY {
		profile = termenv.Ascii
	}
	lipgloss.SetColorProfile(profile)

	return &Renderer{
		out:     out,
		isTTY:   isTTY,
		noColor: opts.NoColor || profile == termenv.Ascii,
		styles: styles{
			info:    lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
			ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
			warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
			error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			label:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			title:   lipgloss.NewStyle().Foreground(lipgloss.Color("105")).Bold(true),
			summary: lipgloss.NewStyle().Bold(true),
		},
	}
}

func (r *Renderer) Info(message string) {
	r.println(r.styles.info.Render(message))
}

func (r *Renderer) Success(message string) {
	r.println(r.styles.ok.Render(message))
}

func (r *Renderer) Warn(message string) {
	r.println(r.styles.warn.Render("[!] ") + message)
}

func (r *Renderer) Failure(message string) {
	r.println(r.styles.error.Render("[!] ") + message)
}

func (r *Renderer) Title(message string) {
	r.println(r.styles.title.Render(message))
}

// Prompt writes an input label without a trailing newline.
func (r *Renderer) Prompt(label string) {
	fmt.Fprint(r.out, r.styles.label.Render(label))
}

// MenuItem prints one numbered menu row with an availability marker.
func (r *Renderer) MenuItem(ordinal int, name string, available bool) {
	marker := r.styles.ok.Render("ok")
	if !available {
		marker = r.styles.warn.Render("--")
	}
	r.println(fmt.Sprintf("%2d. %-32s %s", ordinal, name, marker))
}

// MenuOption prints one lettered menu row (analyze, install, exit).
func (r *Renderer) MenuOption(key, label string) {
	r.println(fmt.Sprintf(" %s. %s", r.styles.label.Render(key), label))
}

// StatusLine renders the three-way availability status: bare marker for a
// PATH hit, marker plus path for a fallback hit, "not found" otherwise.
func (r *Renderer) StatusLine(result resolver.Result) string {
	switch {
	case result.Found && result.Source == resolver.SourceFallback:
		return r.styles.ok.Render("available") + " " + r.styles.label.Render("("+result.Path+")")
	case result.Found:
		return r.styles.ok.Render("available")
	default:
		return r.styles.warn.Render("not found")
	}
}

// ToolDetail prints the formatted block for one tool: header, description,
// status, and example invocations.
func (r *Renderer) ToolDetail(name, command, description, status string, examples []string) {
	r.println(r.styles.title.Render(fmt.Sprintf("--- %s (%s) ---", name, command)))
	r.println(description)
	r.println(r.styles.label.Render("Status: ") + status)
	r.println(r.styles.label.Render("Sample usage:"))
	for _, example := range examples {
		r.println("   - " + example)
	}
}

// Block prints free-form text between divider rules, used for the remote
// analysis result.
func (r *Renderer) Block(title, body string) {
	rule := strings.Repeat("=", 60)
	r.println(rule)
	r.println(r.styles.summary.Render(title))
	r.println(rule)
	r.println(body)
	r.println(rule)
}

// BeginInstall arms the install progress bar for total steps.
func (r *Renderer) BeginInstall(total int) {
	r.installTotal = total
	r.installDone = 0
	r.installBar = progress.New(
		progress.WithWidth(28),
		progress.WithDefaultGradient(),
	)
}

func (r *Renderer) Note(message string) {
	r.Info(message)
}

func (r *Renderer) Step(tool string) {
	r.installDone++
	if !r.isTTY || r.installTotal <= 0 {
		r.println(fmt.Sprintf("%d/%d installing %s", r.installDone, r.installTotal, tool))
		return
	}
	percent := float64(r.installDone) / float64(r.installTotal)
	bar := r.installBar.ViewAs(percent)
	r.println(fmt.Sprintf("%s %d/%d installing %s", bar, r.installDone, r.installTotal, truncate(tool, 48)))
}

func (r *Renderer) Outcome(tool string, outcome installer.Outcome, detail string) {
	switch outcome {
	case installer.OutcomeInstalled:
		r.println(r.styles.ok.Render("installed") + " " + tool)
	case installer.OutcomeSkipped:
		r.println(r.styles.warn.Render("skipped") + " " + tool + ": " + detail)
	default:
		r.println(r.styles.error.Render("failed") + " " + tool + ": " + detail)
	}
}

func (r *Renderer) InstallSummary(summary installer.Summary) {
	msg := fmt.Sprintf("installed %d, failed %d, skipped %d", summary.Installed, summary.Failed, summary.Skipped)
	r.println(r.styles.summary.Render(msg))
}

func (r *Renderer) println(message string) {
	if strings.TrimSpace(message) == "" {
		return
	}
	fmt.Fprintln(r.out, message)
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	if max <= 3 {
		return value[:max]
	}
	return value[:max-3] + "..."
}

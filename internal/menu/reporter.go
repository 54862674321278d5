package menu

import (
	"github.com/psworld143/ctf-tools/internal/installer"
	"github.com/psworld143/ctf-tools/internal/resolver"
)

// Reporter is the terminal surface the menu draws on. ui.Renderer is the
// real implementation.
type Reporter interface {
	Info(message string)
	Success(message string)
	Warn(message string)
	Failure(message string)
	Title(message string)
	Prompt(label string)

	MenuItem(ordinal int, name string, available bool)
	MenuOption(key, label string)
	StatusLine(result resolver.Result) string
	ToolDetail(name, command, description, status string, examples []string)
	Block(title, body string)

	BeginInstall(total int)
	InstallSummary(summary installer.Summary)
	installer.Reporter
}

type noopReporter struct{}

func (noopReporter) Info(string)                                    {}
func (noopReporter) Success(string)                                 {}
func (noopReporter) Warn(string)                                    {}
func (noopReporter) Failure(string)                                 {}
func (noopReporter) Title(string)                                   {}
func (noopReporter) Prompt(string)                                  {}
func (noopReporter) MenuItem(int, string, bool)                     {}
func (noopReporter) MenuOption(string, string)                      {}
func (noopReporter) StatusLine(resolver.Result) string              { return "" }
func (noopReporter) ToolDetail(string, string, string, string, []string) {}
func (noopReporter) Block(string, string)                           {}
func (noopReporter) BeginInstall(int)                               {}
func (noopReporter) InstallSummary(installer.Summary)               {}
func (noopReporter) Note(string)                                    {}
func (noopReporter) Step(string)                                    {}
func (noopReporter) Outcome(string, installer.Outcome, string)      {}

func ensureReporter(reporter Reporter) Reporter {
	if reporter == nil {
		return noopReporter{}
	}
	return reporter
}

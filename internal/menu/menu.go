package menu

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/psworld143/ctf-tools/internal/analyzer"
	"github.com/psworld143/ctf-tools/internal/catalog"
	"github.com/psworld143/ctf-tools/internal/config"
	"github.com/psworld143/ctf-tools/internal/installer"
	"github.com/psworld143/ctf-tools/internal/resolver"
)

// Menu drives the interactive selector loop. The zero value is not usable;
// construct with New and override the launch/install hooks in tests.
type Menu struct {
	Tools     []catalog.Tool
	Resolver  *resolver.Resolver
	Providers []config.Provider
	Generator analyzer.Generator
	Reporter  Reporter

	// Launch runs a resolved tool with the user's arguments, inheriting
	// the terminal. Install runs the platform package-manager plan.
	Launch  func(ctx context.Context, path string, args []string) error
	Install func(ctx context.Context, reporter installer.Reporter) (installer.Summary, error)

	input *bufio.Scanner
}

func New(tools []catalog.Tool, res *resolver.Resolver, providers []config.Provider, gen analyzer.Generator, reporter Reporter, in io.Reader) *Menu {
	if in == nil {
		in = os.Stdin
	}
	return &Menu{
		Tools:     tools,
		Resolver:  res,
		Providers: providers,
		Generator: gen,
		Reporter:  ensureReporter(reporter),
		Launch:    launchInherited,
		Install: func(ctx context.Context, reporter installer.Reporter) (installer.Summary, error) {
			return installer.Run(ctx, installer.Options{Reporter: reporter})
		},
		input: bufio.NewScanner(in),
	}
}

// Run loops until the user selects exit or input ends. Tool absence,
// transport failures, and invalid choices are reported and the loop
// continues; only a terminal I/O failure is an error.
func (m *Menu) Run(ctx context.Context) error {
	r := m.Reporter
	r.Title("CTF Tool Selector with Challenge Analyzer")
	r.Info("Choose a tool to see quick usage notes, analyze a challenge file, or install the toolkit.")

	for {
		m.render()
		choice, ok := m.readLine("Select option: ")
		if !ok {
			return nil
		}
		choice = strings.TrimSpace(choice)
		if choice == "" {
			continue
		}

		switch strings.ToUpper(choice) {
		case "A":
			m.analyze(ctx)
			continue
		case "I":
			m.install(ctx)
			continue
		}

		ordinal, err := strconv.Atoi(choice)
		if err != nil {
			r.Warn("Please enter a valid option.")
			continue
		}
		tool, selection := catalog.Select(m.Tools, ordinal)
		switch selection {
		case catalog.SelectionExit:
			r.Success("Goodluck on your CTFs!")
			return nil
		case catalog.SelectionInvalid:
			r.Warn("Please enter a valid option.")
			continue
		}

		m.showTool(ctx, tool)
	}
}

func (m *Menu) render() {
	r := m.Reporter
	r.Title("=== CTF Tool Selector ===")
	for i, tool := range m.Tools {
		r.MenuItem(i+1, tool.Name, m.Resolver.Resolve(tool.Command).Found)
	}
	r.MenuOption("A", "Analyze challenge file (determine challenge type)")
	r.MenuOption("I", "Install CTF tools")
	r.MenuOption("0", "Exit")
}

func (m *Menu) showTool(ctx context.Context, tool catalog.Tool) {
	r := m.Reporter
	result := m.Resolver.Resolve(tool.Command)
	r.ToolDetail(tool.Name, tool.Command, tool.Description, r.StatusLine(result), tool.Examples)

	action, ok := m.readLine("Type 'r' to run, anything else to return: ")
	if !ok || strings.ToLower(strings.TrimSpace(action)) != "r" {
		return
	}
	m.runTool(ctx, tool, result)
}

func (m *Menu) runTool(ctx context.Context, tool catalog.Tool, result resolver.Result) {
	r := m.Reporter
	if !result.Found {
		r.Warn(tool.Command + " is not found. Install it first (menu option I).")
		return
	}

	rawArgs, ok := m.readLine("Enter arguments for `" + tool.Command + "` (leave empty to cancel): ")
	if !ok || strings.TrimSpace(rawArgs) == "" {
		r.Info("Cancelled.")
		return
	}
	args, err := shlex.Split(rawArgs)
	if err != nil {
		r.Warn("Could not parse arguments: " + err.Error())
		return
	}

	r.Info("$ " + result.Path + " " + strings.Join(args, " "))
	if err := m.Launch(ctx, result.Path, args); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Exit status is not interpreted beyond "ran".
			return
		}
		r.Warn("Unable to launch " + result.Path + ". Is it installed?")
	}
}

func (m *Menu) analyze(ctx context.Context) {
	r := m.Reporter
	r.Title("=== CTF Challenge Analyzer ===")
	path, ok := m.readLine("File path: ")
	if !ok {
		return
	}
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if path == "" {
		r.Info("Cancelled.")
		return
	}

	r.Info("Analyzing: " + path)
	result, err := analyzer.Analyze(ctx, m.Generator, m.Providers, path)
	if err != nil {
		r.Failure("Analysis failed. Please check your configuration.")
		return
	}
	r.Block("CHALLENGE ANALYSIS RESULT", result)
}

func (m *Menu) install(ctx context.Context) {
	r := m.Reporter
	r.Title("CTF Tools Installation")
	r.Info("Detected platform: " + runtime.GOOS)
	r.Info("This will install CTF tools using your system's package manager.")
	r.Info("You may be prompted for an administrator/sudo password.")

	confirm, ok := m.readLine("Continue? (y/N): ")
	if !ok || strings.ToLower(strings.TrimSpace(confirm)) != "y" {
		r.Info("Cancelled.")
		return
	}

	r.BeginInstall(installer.TargetCount(runtime.GOOS))
	summary, err := m.Install(ctx, r)
	if err != nil {
		r.Failure(err.Error())
		return
	}
	r.InstallSummary(summary)
	if summary.Installed > 0 {
		r.Success("Installation completed. Some tools may need a terminal restart.")
	} else {
		r.Warn("Installation completed with errors. Some tools may need manual installation.")
	}
}

func (m *Menu) readLine(label string) (string, bool) {
	m.Reporter.Prompt(label)
	if !m.input.Scan() {
		return "", false
	}
	return m.input.Text(), true
}

func launchInherited(ctx context.Context, path string, args []string) error {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

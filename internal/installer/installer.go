package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"time"
)

// Target binds a tool to the package manager and package name used to
// install it. An empty Package marks a manual-install-only entry.
type Target struct {
	Tool    string
	Manager string
	Package string
}

// Summary counts outcomes across one install run.
type Summary struct {
	Installed int
	Failed    int
	Skipped   int
}

type Outcome string

const (
	OutcomeInstalled Outcome = "installed"
	OutcomeFailed    Outcome = "failed"
	OutcomeSkipped   Outcome = "skipped"
)

// Reporter receives per-package progress during an install run.
type Reporter interface {
	Note(message string)
	Step(tool string)
	Outcome(tool string, outcome Outcome, detail string)
}

type noopReporter struct{}

func (noopReporter) Note(string)                    {}
func (noopReporter) Step(string)                    {}
func (noopReporter) Outcome(string, Outcome, string) {}

// Runner executes one package-manager command and returns an error when the
// process cannot start or exits nonzero. The context carries the per-step
// timeout.
type Runner func(ctx context.Context, name string, args ...string) error

// Options configures an install run. Zero values select the current
// platform, exec.LookPath, and a real subprocess runner.
type Options struct {
	GOOS     string
	LookPath func(string) (string, error)
	Runner   Runner
	Reporter Reporter
}

const (
	packageTimeout = 5 * time.Minute
	brewTimeout    = 10 * time.Minute
	aptSyncTimeout = 2 * time.Minute
)

// Run installs the toolkit with the platform's package manager and returns
// outcome counts. A missing prerequisite manager (winget, brew, any Linux
// package manager) aborts with an error before any install step.
func Run(ctx context.Context, opts Options) (Summary, error) {
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	if opts.LookPath == nil {
		opts.LookPath = exec.LookPath
	}
	if opts.Runner == nil {
		opts.Runner = execRunner
	}
	if opts.Reporter == nil {
		opts.Reporter = noopReporter{}
	}

	switch opts.GOOS {
	case "windows":
		return runWindows(ctx, opts)
	case "linux":
		return runLinux(ctx, opts)
	case "darwin":
		return runDarwin(ctx, opts)
	default:
		return Summary{}, fmt.Errorf("unsupported platform: %s", opts.GOOS)
	}
}

func runWindows(ctx context.Context, opts Options) (Summary, error) {
	if _, err := opts.LookPath("winget"); err != nil {
		return Summary{}, errors.New("winget not found: update Windows 10/11 or install App Installer")
	}

	chocoAvailable := true
	if _, err := opts.LookPath("choco"); err != nil {
		opts.Reporter.Note("Chocolatey not found, installing Chocolatey...")
		if err := runStep(ctx, opts.Runner, packageTimeout, "powershell",
			"-NoProfile", "-ExecutionPolicy", "Bypass", "-Command",
			"Set-ExecutionPolicy Bypass -Scope Process; "+
				"[System.Net.ServicePointManager]::SecurityProtocol = 3072; "+
				"iex ((New-Object System.Net.WebClient).DownloadString('https://community.chocolatey.org/install.ps1'))",
		); err != nil {
			opts.Reporter.Note("Failed to install Chocolatey, some tools may not install")
			chocoAvailable = false
		}
	}

	var summary Summary
	for _, target := range windowsTargets {
		opts.Reporter.Step(target.Tool)

		if target.Manager == "choco" && !chocoAvailable {
			summary.Failed++
			opts.Reporter.Outcome(target.Tool, OutcomeFailed, "chocolatey not available")
			continue
		}

		var err error
		if target.Manager == "winget" {
			err = runStep(ctx, opts.Runner, packageTimeout, "winget", "install", target.Package, "-e", "--silent")
		} else {
			err = runStep(ctx, opts.Runner, packageTimeout, "choco", "install", target.Package, "-y")
		}
		record(&summary, opts.Reporter, target.Tool, err)
	}
	return summary, nil
}

func runLinux(ctx context.Context, opts Options) (Summary, error) {
	manager := ""
	for _, candidate := range []string{"apt", "yum", "dnf", "pacman"} {
		if _, err := opts.LookPath(candidate); err == nil {
			manager = candidate
			break
		}
	}
	if manager == "" {
		return Summary{}, errors.New("no supported package manager found (apt/yum/dnf/pacman)")
	}
	opts.Reporter.Note("Using package manager: " + manager)

	if manager == "apt" {
		opts.Reporter.Note("Updating package list...")
		if err := runStep(ctx, opts.Runner, aptSyncTimeout, "sudo", "apt", "update"); err != nil {
			opts.Reporter.Note("Failed to update package list")
		}
	}

	var summary Summary
	for _, target := range linuxTargets[manager] {
		if target.Package == "" {
			summary.Skipped++
			opts.Reporter.Outcome(target.Tool, OutcomeSkipped, "manual installation required")
			continue
		}
		opts.Reporter.Step(target.Tool)

		var args []string
		switch manager {
		case "pacman":
			args = []string{"pacman", "-S", "--noconfirm", target.Package}
		default:
			args = []string{manager, "install", "-y", target.Package}
		}
		err := runStep(ctx, opts.Runner, packageTimeout, "sudo", args...)
		record(&summary, opts.Reporter, target.Tool, err)
	}
	return summary, nil
}

func runDarwin(ctx context.Context, opts Options) (Summary, error) {
	if _, err := opts.LookPath("brew"); err != nil {
		return Summary{}, errors.New("Homebrew not found: visit https://brew.sh to install it first")
	}

	var summary Summary
	for _, target := range darwinTargets {
		opts.Reporter.Step(target.Tool)
		err := runStep(ctx, opts.Runner, brewTimeout, "brew", "install", target.Package)
		record(&summary, opts.Reporter, target.Tool, err)
	}
	return summary, nil
}

func record(summary *Summary, reporter Reporter, tool string, err error) {
	if err != nil {
		summary.Failed++
		reporter.Outcome(tool, OutcomeFailed, err.Error())
		return
	}
	summary.Installed++
	reporter.Outcome(tool, OutcomeInstalled, "")
}

func runStep(ctx context.Context, runner Runner, timeout time.Duration, name string, args ...string) error {
	stepCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return runner(stepCtx, name, args...)
}

func execRunner(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}

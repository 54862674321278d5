package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/alecthomas/kong"

	"github.com/psworld143/ctf-tools/internal/analyzer"
	"github.com/psworld143/ctf-tools/internal/catalog"
	"github.com/psworld143/ctf-tools/internal/config"
	"github.com/psworld143/ctf-tools/internal/installer"
	"github.com/psworld143/ctf-tools/internal/llm"
	"github.com/psworld143/ctf-tools/internal/menu"
	"github.com/psworld143/ctf-tools/internal/resolver"
	"github.com/psworld143/ctf-tools/internal/ui"
)

type CLI struct {
	NoColor bool   `help:"Disable color output."`
	Config  string `help:"Path to the providers.toml file."`
	Tools   string `help:"Path to a tools.yaml extension file."`

	Menu    MenuCmd    `cmd:"" default:"1" help:"Run the interactive tool selector."`
	List    ListCmd    `cmd:"" help:"List tools and their availability."`
	Install InstallCmd `cmd:"" help:"Install the toolkit with the platform package manager."`
	Analyze AnalyzeCmd `cmd:"" help:"Classify a challenge file with the configured provider."`
}

type MenuCmd struct{}

type ListCmd struct{}

type InstallCmd struct{}

type AnalyzeCmd struct {
	Path string `arg:"" help:"Challenge file to classify."`
}

type Context struct {
	Tools     []catalog.Tool
	Resolver  *resolver.Resolver
	Providers []config.Provider
	Reporter  *ui.Renderer
}

func (c *MenuCmd) Run(ctx *Context) error {
	m := menu.New(ctx.Tools, ctx.Resolver, ctx.Providers, llm.NewClient(), ctx.Reporter, os.Stdin)
	return m.Run(context.Background())
}

func (c *ListCmd) Run(ctx *Context) error {
	available := 0
	for i, tool := range ctx.Tools {
		result := ctx.Resolver.Resolve(tool.Command)
		ctx.Reporter.MenuItem(i+1, tool.Name, result.Found)
		if result.Found {
			available++
		}
	}
	ctx.Reporter.Info(fmt.Sprintf("%d of %d tools available", available, len(ctx.Tools)))
	return nil
}

func (c *InstallCmd) Run(ctx *Context) error {
	ctx.Reporter.BeginInstall(installer.TargetCount(runtime.GOOS))
	summary, err := installer.Run(context.Background(), installer.Options{Reporter: ctx.Reporter})
	if err != nil {
		return err
	}
	ctx.Reporter.InstallSummary(summary)
	return nil
}

func (c *AnalyzeCmd) Run(ctx *Context) error {
	result, err := analyzer.Analyze(context.Background(), llm.NewClient(), ctx.Providers, c.Path)
	if err != nil {
		return errors.New("analysis failed: " + err.Error())
	}
	ctx.Reporter.Block("CHALLENGE ANALYSIS RESULT", result)
	return nil
}

func main() {
	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("ctf-tools"),
		kong.Description("Locate, launch, and install CTF tooling, with remote challenge classification."),
		kong.UsageOnError(),
	)
	ctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	providers, err := config.Providers(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	toolsPath := cli.Tools
	if toolsPath == "" {
		toolsPath = filepath.Join(filepath.Dir(config.DefaultPath()), "tools.yaml")
	}
	tools, err := catalog.Load(toolsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	noColor := cli.NoColor || os.Getenv("NO_COLOR") != ""
	reporter := ui.NewRenderer(ui.Options{NoColor: noColor, Out: os.Stdout})

	if err := ctx.Run(&Context{
		Tools:     tools,
		Resolver:  resolver.New(),
		Providers: providers,
		Reporter:  reporter,
	}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

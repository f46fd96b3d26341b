package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/pokerouts/internal/config"
	"github.com/lox/pokerouts/internal/render"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every subcommand.
type Globals struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"pokerouts.hcl" env:"POKEROUTS_CONFIG" help:"Path to HCL configuration file"`
	LogLevel string           `short:"l" env:"POKEROUTS_LOG_LEVEL" help:"Log level, debug|info|warn|error (overrides config)"`
	NoColor  bool             `help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Calc        CalcCmd        `cmd:"" default:"withargs" help:"Estimate outs for a hand and board"`
	Deal        DealCmd        `cmd:"" help:"Deal a random hand and board and estimate its outs"`
	Interactive InteractiveCmd `cmd:"" help:"Enter cards interactively and watch the estimates update"`
}

// App carries the resolved configuration into subcommands.
type App struct {
	Config *config.Config
	Logger *log.Logger
	Clock  quartz.Clock
	Out    io.Writer
	Color  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr, quartz.NewReal()); err != nil {
		fmt.Fprintf(os.Stderr, "poker-outs: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, clock quartz.Clock) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("poker-outs"),
		kong.Description("Count outs and estimate hand completion odds with the rule of 4 and 2"),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	app, err := newApp(&cli.Globals, stdout, stderr, clock)
	if err != nil {
		return err
	}

	kctx.BindTo(ctx, (*context.Context)(nil))
	return kctx.Run(app)
}

func newApp(g *Globals, stdout, stderr io.Writer, clock quartz.Clock) (*App, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Apply command line overrides
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := log.New(stderr)
	switch cfg.LogLevel {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}

	logger.Debug("Loaded configuration",
		"file", g.Config,
		"format", cfg.Display.Format,
		"threshold", cfg.ThresholdPercent())

	return &App{
		Config: cfg,
		Logger: logger,
		Clock:  clock,
		Out:    stdout,
		Color:  cfg.ColorEnabled() && !g.NoColor,
	}, nil
}

// Printer returns a renderer for the app's output.
func (a *App) Printer() *render.Printer {
	return render.New(a.Out, render.Options{
		Threshold: a.Config.ThresholdPercent(),
		Color:     a.Color,
	})
}

// Format picks the flag value if set, else the configured format.
func (a *App) Format(flag string) string {
	if flag != "" {
		return flag
	}
	return a.Config.Display.Format
}

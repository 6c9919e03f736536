package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/framesmith/framesmith/internal"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Represents the root command for the framesmith CLI.
var RootCmd struct {
	Quiet    bool       `short:"q" help:"Suppress informational output."`
	Verbose  bool       `short:"v" help:"Enable verbose output."`
	Debug    bool       `short:"d" help:"Enable debug output."`
	Manifest string     `short:"m" default:"framesmith.toml" help:"Manifest file path." placeholder:"PATH"`
	Build    BuildCmd   `cmd:"" default:"1" help:"Build, merge, and archive all products."`
	Version  VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Builds multi-platform framework bundles.\n\nBuilds every product for every platform, merges the results into XCFrameworks, and compresses them into one distribution archive."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	} else if quiet {
		level = slog.LevelWarn
	}

	slog.SetDefault(slog.New(NewHandler(level, verbose)))
}

// Creates a log handler writing to stderr at the given level.
//
// Color and timestamps are enabled only on interactive terminals, keeping
// captured CI output plain. Verbose mode adds source positions to every
// record.
func NewHandler(level slog.Level, verbose bool) slog.Handler {
	interactive := isatty.IsTerminal(os.Stderr.Fd())

	opts := &tint.Options{
		Level:     level,
		NoColor:   !interactive,
		AddSource: verbose,
	}
	if interactive {
		opts.TimeFormat = time.Kitchen
	}

	return tint.NewHandler(os.Stderr, opts)
}

// sketchtool inspects and converts Tilt Brush sketch files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/sketchview/internal/config"
	"github.com/Faultbox/sketchview/internal/logger"
)

type cfgKey struct{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sketchtool: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "sketchtool",
		Usage: "inspect and convert Tilt Brush sketches",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "also write JSON logs to this file",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "show header, metadata and geometry totals",
				ArgsUsage: "<file.tilt>",
				Action:    infoAction,
			},
			{
				Name:      "strokes",
				Usage:     "list decoded strokes",
				ArgsUsage: "<file.tilt>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "print at most this many strokes (0 = all)",
					},
					&cli.IntFlag{
						Name:  "brush",
						Usage: "only strokes with this brush index",
						Value: -1,
					},
				},
				Action: strokesAction,
			},
			{
				Name:      "brushes",
				Usage:     "list known brushes, or the brushes a sketch uses",
				ArgsUsage: "[file.tilt]",
				Action:    brushesAction,
			},
			{
				Name:      "members",
				Aliases:   []string{"ls"},
				Usage:     "list archive members and their detected types",
				ArgsUsage: "<file.tilt>",
				Action:    membersAction,
			},
			{
				Name:      "extract",
				Aliases:   []string{"x"},
				Usage:     "write one archive member to disk",
				ArgsUsage: "<file.tilt> <member> [output]",
				Action:    extractAction,
			},
			{
				Name:      "export",
				Usage:     "convert sketches to OBJ or JSON",
				ArgsUsage: "<file.tilt>...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "obj or json (default from config)",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "output directory (default from config)",
					},
					&cli.IntFlag{
						Name:    "jobs",
						Aliases: []string{"j"},
						Usage:   "concurrent conversions (default from config)",
					},
				},
				Action: exportAction,
			},
		},
	}
}

// setup loads config and initializes logging for every subcommand.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.LoadFrom(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if cmd.Bool("debug") {
		cfg.Logging.Level = "debug"
	}
	if f := cmd.String("log-file"); f != "" {
		cfg.Logging.LogFile = f
	}
	if err := cfg.Validate(); err != nil {
		return ctx, fmt.Errorf("invalid config: %w", err)
	}

	// Console logs go to stderr so stdout stays parseable.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return ctx, err
	}
	logger.Debug("config loaded", zap.String("path", cmd.String("config")))

	return context.WithValue(ctx, cfgKey{}, cfg), nil
}

func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(cfgKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// sketchArg resolves the first positional argument as a sketch path.
func sketchArg(ctx context.Context, cmd *cli.Command) (string, error) {
	if cmd.NArg() < 1 {
		return "", fmt.Errorf("%s: missing sketch file argument", cmd.Name)
	}
	return configFrom(ctx).ResolveSketch(cmd.Args().First()), nil
}

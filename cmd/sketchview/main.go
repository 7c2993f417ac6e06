// Package main is the entry point for the sketchview desktop viewer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/sketchview/internal/config"
	"github.com/Faultbox/sketchview/internal/logger"
	"github.com/Faultbox/sketchview/internal/viewer"
	"github.com/Faultbox/sketchview/pkg/geometry"
	"github.com/Faultbox/sketchview/pkg/tilt"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("sketchview failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	args := config.Args()
	if len(args) != 1 {
		return fmt.Errorf("usage: sketchview [flags] <file.tilt>")
	}
	path := cfg.ResolveSketch(args[0])

	res, err := geometry.DecodeFile(path)
	if err != nil {
		fields := []zap.Field{zap.String("sketch", path), zap.Error(err)}
		if off := tilt.Offset(err); off >= 0 {
			fields = append(fields, zap.Int64("offset", off))
		}
		logger.Error("decode failed", fields...)
		return err
	}
	logger.Info("sketch decoded",
		zap.String("sketch", path),
		zap.Int("strokes", res.Strokes),
		zap.Int("groups", len(res.Groups)),
		zap.Int("triangles", res.TriangleCount()))

	v, err := viewer.New(cfg.Viewer, "sketchview - "+filepath.Base(path))
	if err != nil {
		return err
	}
	defer v.Close()

	v.Show(res)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return v.Run(ctx)
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/sketchview/internal/export"
	"github.com/Faultbox/sketchview/internal/logger"
)

func exportAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return fmt.Errorf("export: no sketch files given")
	}
	cfg := configFrom(ctx)

	formatName := cfg.Export.Format
	if v := cmd.String("format"); v != "" {
		formatName = v
	}
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	outDir := cfg.Export.OutDir
	if v := cmd.String("out"); v != "" {
		outDir = v
	}
	workers := cfg.Export.Workers
	if v := cmd.Int("jobs"); v > 0 {
		workers = v
	}

	sources := make([]string, 0, cmd.NArg())
	for _, arg := range cmd.Args().Slice() {
		sources = append(sources, cfg.ResolveSketch(arg))
	}

	log := logger.Named("export")
	log.Info("exporting",
		zap.Int("sketches", len(sources)),
		zap.String("format", string(format)),
		zap.Int("workers", workers))

	outcomes, err := export.Batch(ctx, export.Jobs(sources, outDir, format), format, workers, log)

	t := newTable("SOURCE", "DEST", "STROKES", "TRIANGLES", "STATUS")
	for _, o := range outcomes {
		status := "ok"
		switch {
		case o.Err != nil:
			status = "failed"
		case len(o.Unknown) > 0:
			status = fmt.Sprintf("ok (%d unknown brushes)", len(o.Unknown))
		}
		t.Row(o.Source, o.Dest, strconv.Itoa(o.Strokes), strconv.Itoa(o.Triangles), status)
	}
	if perr := printTable(out(cmd), t); perr != nil && err == nil {
		err = perr
	}
	return err
}

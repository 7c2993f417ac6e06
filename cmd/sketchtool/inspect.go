package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/h2non/filetype"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/Faultbox/sketchview/internal/logger"
	"github.com/Faultbox/sketchview/pkg/brush"
	"github.com/Faultbox/sketchview/pkg/geometry"
	"github.com/Faultbox/sketchview/pkg/tilt"
)

func out(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

// parseSketch reads and decodes path, logging the failing offset on error.
func parseSketch(path string) (*tilt.File, error) {
	f, err := tilt.ParseFile(path)
	if err != nil {
		fields := []zap.Field{zap.String("sketch", path), zap.Error(err)}
		if off := tilt.Offset(err); off >= 0 {
			fields = append(fields, zap.Int64("offset", off))
		}
		logger.Error("decode failed", fields...)
		return nil, err
	}
	return f, nil
}

func infoAction(ctx context.Context, cmd *cli.Command) error {
	path, err := sketchArg(ctx, cmd)
	if err != nil {
		return err
	}
	f, err := parseSketch(path)
	if err != nil {
		return err
	}
	res := geometry.FromFile(f)
	w := out(cmd)

	fmt.Fprintf(w, "File:          %s\n", path)
	fmt.Fprintf(w, "Header:        sentinel=0x%08x valid=%v size=%d\n",
		f.Header.Sentinel, f.Header.Valid(), f.Header.HeaderSize)
	fmt.Fprintf(w, "Sketch:        version=%d\n", f.Sketch.Header.Version)
	fmt.Fprintf(w, "Members:       %d\n", len(f.Members))
	if m := f.Metadata; m != nil {
		if m.EnvironmentPreset != "" {
			fmt.Fprintf(w, "Environment:   %s\n", m.EnvironmentPreset)
		}
		if len(m.Authors) > 0 {
			fmt.Fprintf(w, "Authors:       %v\n", m.Authors)
		}
		fmt.Fprintf(w, "Brush index:   %d entries\n", len(m.BrushIndex))
	}
	fmt.Fprintf(w, "Strokes:       %d\n", res.Strokes)
	fmt.Fprintf(w, "Control pts:   %d\n", f.Sketch.ControlPointCount())
	fmt.Fprintf(w, "Groups:        %d\n", len(res.Groups))
	fmt.Fprintf(w, "Triangles:     %d\n", res.TriangleCount())
	if b := res.Bounds(); !b.Empty() {
		fmt.Fprintf(w, "Bounds:        %v .. %v\n", b.Min.Array(), b.Max.Array())
	}

	for _, g := range res.UnknownGroups() {
		logger.Warn("unknown brush, using placeholder",
			zap.Int32("brush_index", g.BrushIndex),
			zap.String("guid", g.BrushGUID))
	}
	return nil
}

func strokesAction(ctx context.Context, cmd *cli.Command) error {
	path, err := sketchArg(ctx, cmd)
	if err != nil {
		return err
	}
	f, err := parseSketch(path)
	if err != nil {
		return err
	}

	limit := cmd.Int("limit")
	only := cmd.Int("brush")

	t := newTable("#", "BRUSH", "POINTS", "SIZE", "COLOR", "STROKE MASK", "CP MASK")
	shown := 0
	for i := range f.Sketch.Strokes {
		s := &f.Sketch.Strokes[i]
		if only >= 0 && s.BrushIndex != int32(only) {
			continue
		}
		if limit > 0 && shown == limit {
			break
		}
		t.Row(
			strconv.Itoa(i),
			strconv.Itoa(int(s.BrushIndex)),
			strconv.Itoa(len(s.ControlPoints)),
			fmt.Sprintf("%.4g", s.Size),
			fmt.Sprintf("%.3f %.3f %.3f %.3f", s.Color[0], s.Color[1], s.Color[2], s.Color[3]),
			fmt.Sprintf("0x%x", s.StrokeMask),
			fmt.Sprintf("0x%x", s.ControlPointMask),
		)
		shown++
	}
	return printTable(out(cmd), t)
}

func brushesAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		t := newTable("GUID", "NAME", "MATERIAL", "CHANNELS", "FLAGS")
		for _, p := range brush.All() {
			t.Row(p.GUID.String(), p.Name, p.Material, p.Channels.String(), flags(p))
		}
		return printTable(out(cmd), t)
	}

	path, err := sketchArg(ctx, cmd)
	if err != nil {
		return err
	}
	f, err := parseSketch(path)
	if err != nil {
		return err
	}

	t := newTable("INDEX", "GUID", "NAME", "MATERIAL", "STROKES")
	byBrush := f.Sketch.ByBrush()
	for _, idx := range f.Sketch.BrushIndices() {
		g := geometry.NewGroup(idx, f.Metadata)
		guid := g.BrushGUID
		if guid == "" {
			guid = "-"
		}
		t.Row(strconv.Itoa(int(idx)), guid, g.Profile.Name, g.Profile.Material, strconv.Itoa(len(byBrush[idx])))
	}
	return printTable(out(cmd), t)
}

func flags(p brush.Profile) string {
	s := ""
	if p.NeedsTime {
		s += "t"
	}
	if p.NeedsCameraPosition {
		s += "c"
	}
	if p.DoubleSided {
		s += "d"
	}
	if s == "" {
		return "-"
	}
	return s
}

// memberType labels an archive member by content, falling back to its
// extension for formats without magic bytes.
func memberType(name string, data []byte) string {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	switch filepath.Ext(name) {
	case ".json":
		return "application/json"
	case ".sketch":
		return "application/x-tilt-sketch"
	}
	return "application/octet-stream"
}

func membersAction(ctx context.Context, cmd *cli.Command) error {
	path, err := sketchArg(ctx, cmd)
	if err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	a, err := tilt.Unpack(raw)
	if err != nil {
		return err
	}

	t := newTable("NAME", "SIZE", "TYPE")
	for _, name := range a.Names() {
		data, err := a.Read(name)
		if err != nil {
			return err
		}
		t.Row(name, strconv.Itoa(len(data)), memberType(name, data))
	}
	return printTable(out(cmd), t)
}

func extractAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 2 {
		return fmt.Errorf("extract: need <file.tilt> <member>")
	}
	path := configFrom(ctx).ResolveSketch(cmd.Args().Get(0))
	member := cmd.Args().Get(1)
	dest := cmd.Args().Get(2)
	if dest == "" {
		dest = filepath.Base(member)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	a, err := tilt.Unpack(raw)
	if err != nil {
		return err
	}
	data, err := a.Read(member)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return err
	}
	fmt.Fprintf(out(cmd), "Extracted: %s -> %s (%d bytes)\n", member, dest, len(data))
	return nil
}

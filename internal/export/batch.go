package export

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/sketchview/pkg/geometry"
	"github.com/Faultbox/sketchview/pkg/tilt"
)

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatOBJ  Format = "obj"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatOBJ, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want obj or json)", s)
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Write encodes res to w.
func Write(w io.Writer, f Format, source string, res *geometry.Result) error {
	switch f {
	case FormatOBJ:
		return WriteOBJ(w, res.Groups)
	case FormatJSON:
		return WriteJSON(w, source, res)
	}
	return fmt.Errorf("unknown export format %q", f)
}

// Job is one sketch to convert.
type Job struct {
	Source string
	Dest   string
}

// Outcome reports what happened to one Job.
type Outcome struct {
	Job
	Strokes   int
	Triangles int
	Unknown   []int32 // brush indices that fell back to the placeholder
	Err       error
}

// Jobs maps each source path to a destination under outDir.
func Jobs(sources []string, outDir string, f Format) []Job {
	jobs := make([]Job, len(sources))
	for i, src := range sources {
		base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		jobs[i] = Job{Source: src, Dest: filepath.Join(outDir, base+f.Ext())}
	}
	return jobs
}

// Batch converts jobs with at most workers running at once.
// A failing sketch does not stop the others; its error is recorded in
// its Outcome and joined into the returned error. Cancelling ctx stops
// jobs that have not started yet.
func Batch(ctx context.Context, jobs []Job, f Format, workers int, log *zap.Logger) ([]Outcome, error) {
	if log == nil {
		log = zap.NewNop()
	}
	outcomes := make([]Outcome, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, job := range jobs {
		outcomes[i].Job = job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}
			outcomes[i] = convert(job, f, log)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Source, o.Err))
		}
	}
	return outcomes, errors.Join(errs...)
}

func convert(job Job, f Format, log *zap.Logger) Outcome {
	out := Outcome{Job: job}
	log = log.With(zap.String("sketch", job.Source))

	res, err := geometry.DecodeFile(job.Source)
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		if off := tilt.Offset(err); off >= 0 {
			fields = append(fields, zap.Int64("offset", off))
		}
		log.Error("decode failed", fields...)
		out.Err = err
		return out
	}

	out.Strokes = res.Strokes
	out.Triangles = res.TriangleCount()
	for _, g := range res.UnknownGroups() {
		out.Unknown = append(out.Unknown, g.BrushIndex)
		log.Warn("unknown brush, using placeholder",
			zap.Int32("brush_index", g.BrushIndex),
			zap.String("guid", g.BrushGUID))
	}

	if err := writeFile(job.Dest, f, job.Source, res); err != nil {
		log.Error("write failed", zap.String("dest", job.Dest), zap.Error(err))
		out.Err = err
		return out
	}

	log.Debug("exported",
		zap.String("dest", job.Dest),
		zap.Int("strokes", out.Strokes),
		zap.Int("triangles", out.Triangles))
	return out
}

func writeFile(path string, f Format, source string, res *geometry.Result) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	bw := bufio.NewWriter(fh)
	if err := Write(bw, f, source, res); err != nil {
		return err
	}
	return bw.Flush()
}

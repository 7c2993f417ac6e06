package geometry

import (
	"fmt"
	"os"

	"github.com/Faultbox/sketchview/pkg/tilt"
)

// Result is the outcome of one decode call. The caller owns it.
type Result struct {
	Header   tilt.FileHeader
	Metadata *tilt.Metadata
	Members  []string
	Groups   []*Group
	Strokes  int
}

// Decode unpacks raw, decodes its strokes and builds per-brush geometry.
// It is atomic: on error no Result is returned. Concurrent calls share
// no state.
func Decode(raw []byte) (*Result, error) {
	f, err := tilt.Parse(raw)
	if err != nil {
		return nil, err
	}
	return FromFile(f), nil
}

// DecodeFile reads and decodes a sketch file from disk.
func DecodeFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sketch file: %w", err)
	}
	return Decode(data)
}

// FromFile builds geometry for an already parsed file.
func FromFile(f *tilt.File) *Result {
	return &Result{
		Header:   f.Header,
		Metadata: f.Metadata,
		Members:  f.Members,
		Groups:   Build(f.Sketch, f.Metadata),
		Strokes:  len(f.Sketch.Strokes),
	}
}

// VertexCount returns the total vertices across all groups.
func (r *Result) VertexCount() int {
	total := 0
	for _, g := range r.Groups {
		total += g.VertexCount()
	}
	return total
}

// TriangleCount returns the total triangles across all groups.
func (r *Result) TriangleCount() int {
	return r.VertexCount() / 3
}

// Bounds returns the union of all group bounds.
func (r *Result) Bounds() Bounds {
	var b Bounds
	for _, g := range r.Groups {
		b.Union(g.Bounds)
	}
	return b
}

// UnknownGroups returns the groups rendered with the fallback material.
func (r *Result) UnknownGroups() []*Group {
	var unknown []*Group
	for _, g := range r.Groups {
		if g.Unknown {
			unknown = append(unknown, g)
		}
	}
	return unknown
}

package export

import (
	"encoding/json"
	"io"

	"github.com/Faultbox/sketchview/pkg/geometry"
	"github.com/Faultbox/sketchview/pkg/tilt"
)

// Summary is the JSON description of a decoded sketch.
type Summary struct {
	Source    string         `json:"source,omitempty"`
	Strokes   int            `json:"strokes"`
	Vertices  int            `json:"vertices"`
	Triangles int            `json:"triangles"`
	Bounds    *BoundsJSON    `json:"bounds,omitempty"`
	Metadata  *tilt.Metadata `json:"metadata,omitempty"`
	Groups    []GroupSummary `json:"groups"`
}

// GroupSummary describes one brush group.
type GroupSummary struct {
	BrushIndex          int32       `json:"brushIndex"`
	BrushGUID           string      `json:"brushGuid,omitempty"`
	Brush               string      `json:"brush"`
	Material            string      `json:"material"`
	Channels            string      `json:"channels"`
	Unknown             bool        `json:"unknown,omitempty"`
	NeedsTime           bool        `json:"needsTime,omitempty"`
	NeedsCameraPosition bool        `json:"needsCameraPosition,omitempty"`
	Strokes             int         `json:"strokes"`
	Vertices            int         `json:"vertices"`
	Triangles           int         `json:"triangles"`
	Bounds              *BoundsJSON `json:"bounds,omitempty"`
}

// BoundsJSON is an axis-aligned box as two points.
type BoundsJSON struct {
	Min [3]float32 `json:"min"`
	Max [3]float32 `json:"max"`
}

func boundsJSON(b geometry.Bounds) *BoundsJSON {
	if b.Empty() {
		return nil
	}
	return &BoundsJSON{Min: b.Min.Array(), Max: b.Max.Array()}
}

// Summarize builds the JSON summary for a decode result.
func Summarize(source string, res *geometry.Result) Summary {
	s := Summary{
		Source:    source,
		Strokes:   res.Strokes,
		Vertices:  res.VertexCount(),
		Triangles: res.TriangleCount(),
		Bounds:    boundsJSON(res.Bounds()),
		Metadata:  res.Metadata,
		Groups:    make([]GroupSummary, 0, len(res.Groups)),
	}
	for _, g := range res.Groups {
		s.Groups = append(s.Groups, GroupSummary{
			BrushIndex:          g.BrushIndex,
			BrushGUID:           g.BrushGUID,
			Brush:               g.Profile.Name,
			Material:            g.Profile.Material,
			Channels:            g.Profile.Channels.String(),
			Unknown:             g.Unknown,
			NeedsTime:           g.Profile.NeedsTime,
			NeedsCameraPosition: g.Profile.NeedsCameraPosition,
			Strokes:             g.Strokes,
			Vertices:            g.VertexCount(),
			Triangles:           g.TriangleCount(),
			Bounds:              boundsJSON(g.Bounds),
		})
	}
	return s
}

// WriteJSON writes the indented summary of res.
func WriteJSON(w io.Writer, source string, res *geometry.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Summarize(source, res))
}

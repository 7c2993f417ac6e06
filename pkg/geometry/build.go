package geometry

import (
	"github.com/Faultbox/sketchview/pkg/brush"
	"github.com/Faultbox/sketchview/pkg/tilt"
)

// NewGroup creates an empty group for a brush index, resolving its
// profile through meta. Indices without a known brush get the fallback
// profile and Unknown set; this never fails.
func NewGroup(index int32, meta *tilt.Metadata) *Group {
	g := &Group{BrushIndex: index}

	guid, ok := meta.BrushGUID(index)
	if !ok {
		g.Profile = brush.Fallback()
		g.Unknown = true
		return g
	}

	g.BrushGUID = guid
	profile, err := brush.Resolve(guid)
	g.Profile = profile
	g.Unknown = err != nil
	return g
}

// Build converts every stroke into ribbon geometry.
// It returns one group per distinct brush index, ascending by index,
// including groups whose strokes produced no vertices.
func Build(sk *tilt.Sketch, meta *tilt.Metadata) []*Group {
	indices := sk.BrushIndices()
	groups := make([]*Group, 0, len(indices))
	byIndex := make(map[int32]*Group, len(indices))

	segments := make(map[int32]int, len(indices))
	for i := range sk.Strokes {
		segments[sk.Strokes[i].BrushIndex] += sk.Strokes[i].Segments()
	}

	for _, idx := range indices {
		g := NewGroup(idx, meta)
		g.grow(segments[idx] * VerticesPerSegment)
		byIndex[idx] = g
		groups = append(groups, g)
	}

	for i := range sk.Strokes {
		s := &sk.Strokes[i]
		byIndex[s.BrushIndex].AddStroke(s)
	}

	return groups
}

// Package geometry turns decoded sketch strokes into ribbon meshes, one
// merged vertex buffer set per brush.
package geometry

import (
	"github.com/Faultbox/sketchview/pkg/brush"
	"github.com/Faultbox/sketchview/pkg/math"
)

// Vertex buffer strides, in float32 components.
const (
	PositionStride = 4 // x, y, z, w=1
	ColorStride    = 4
	UVStride       = 2
	NormalStride   = 3

	VerticesPerSegment = 6
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max math.Vec3
	set      bool
}

// Empty reports whether no point has been added.
func (b Bounds) Empty() bool {
	return !b.set
}

// Add grows the box to include p.
func (b *Bounds) Add(p math.Vec3) {
	if !b.set {
		b.Min, b.Max, b.set = p, p, true
		return
	}
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Union grows the box to include other.
func (b *Bounds) Union(other Bounds) {
	if other.Empty() {
		return
	}
	b.Add(other.Min)
	b.Add(other.Max)
}

// Center returns the box midpoint.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the box extents.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Group is the merged geometry of every stroke sharing a brush index.
// Every 3 consecutive vertices form a triangle, every 6 a segment.
type Group struct {
	BrushIndex int32
	BrushGUID  string // empty when the index has no valid GUID
	Profile    brush.Profile
	Unknown    bool // Profile is the fallback placeholder

	Positions []float32 // PositionStride per vertex
	Colors    []float32 // ColorStride per vertex
	UVs       []float32 // UVStride per vertex
	Normals   []float32 // NormalStride per vertex, only if Profile wants normals

	Bounds  Bounds
	Strokes int
}

// VertexCount returns the number of emitted vertices.
func (g *Group) VertexCount() int {
	return len(g.Positions) / PositionStride
}

// TriangleCount returns the number of emitted triangles.
func (g *Group) TriangleCount() int {
	return g.VertexCount() / 3
}

// Indices returns the implied sequential triangle list.
func (g *Group) Indices() []uint32 {
	indices := make([]uint32, g.VertexCount())
	for i := range indices {
		indices[i] = uint32(i)
	}
	return indices
}

// HasNormals reports whether the normal buffer is populated.
func (g *Group) HasNormals() bool {
	return g.Profile.Channels.Has(brush.ChannelNormal)
}

func (g *Group) grow(vertices int) {
	g.Positions = growFloats(g.Positions, vertices*PositionStride)
	g.Colors = growFloats(g.Colors, vertices*ColorStride)
	g.UVs = growFloats(g.UVs, vertices*UVStride)
	if g.HasNormals() {
		g.Normals = growFloats(g.Normals, vertices*NormalStride)
	}
}

func growFloats(s []float32, n int) []float32 {
	if cap(s)-len(s) >= n {
		return s
	}
	grown := make([]float32, len(s), len(s)+n)
	copy(grown, s)
	return grown
}

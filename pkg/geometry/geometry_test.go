package geometry

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sketchview/pkg/brush"
	"github.com/Faultbox/sketchview/pkg/math"
	"github.com/Faultbox/sketchview/pkg/tilt"
	"github.com/Faultbox/sketchview/pkg/tilt/tilttest"
)

const (
	inkGUID     = "f5c336cf-5108-4b40-ade9-c687504385ab"
	lightGUID   = "2241cd32-8ba2-48a5-9ee7-2caef7e9ed62"
	rainbowGUID = "ad1ad437-76e2-450d-a23a-e17f8310b960"
	unknownGUID = "11111111-2222-3333-4444-555555555555"
)

func line(n int) []tilttest.Point {
	pts := make([]tilttest.Point, n)
	for i := range pts {
		pts[i] = tilttest.P(float32(i), 0, 0)
	}
	return pts
}

func decode(t *testing.T, b *tilttest.SketchBuilder, guids ...string) *Result {
	t.Helper()
	res, err := Decode(tilttest.File(b, guids...))
	require.NoError(t, err)
	return res
}

func TestDecode_ConcreteScenario(t *testing.T) {
	b := &tilttest.SketchBuilder{}
	b.Add(tilttest.Stroke{
		Brush:  0,
		Color:  [4]float32{1, 0, 0, 1},
		Size:   0.1,
		Points: []tilttest.Point{tilttest.P(0, 0, 0), tilttest.P(1, 0, 0)},
	})

	res := decode(t, b, lightGUID)
	require.Len(t, res.Groups, 1)

	g := res.Groups[0]
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 2, g.TriangleCount())
	assert.Equal(t, "Light", g.Profile.Name)
	assert.False(t, g.Unknown)

	for v := 0; v < g.VertexCount(); v++ {
		assert.Equal(t, []float32{1, 0, 0, 1}, g.Colors[v*ColorStride:(v+1)*ColorStride], "vertex %d", v)
		assert.Equal(t, float32(1), g.Positions[v*PositionStride+3], "w of vertex %d", v)
	}

	// leftCurr, rightCurr, leftPrev, rightCurr, rightPrev, leftPrev
	wantX := []float32{0.9, 1.1, -0.1, 1.1, 0.1, -0.1}
	for v, x := range wantX {
		assert.InDelta(t, x, g.Positions[v*PositionStride], 1e-6, "x of vertex %d", v)
	}
	assert.Equal(t, 1, res.Strokes)
}

func TestAddStroke_SegmentCounts(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 57} {
		g := NewGroup(0, &tilt.Metadata{BrushIndex: []string{lightGUID}})
		pts := make([]tilt.ControlPoint, n)
		for i := range pts {
			pts[i] = tilt.ControlPoint{Position: [3]float32{float32(i), 0, 0}, Orientation: [4]float32{0, 0, 0, 1}}
		}
		g.AddStroke(&tilt.Stroke{Size: 1, ControlPoints: pts})

		segments := max(n-1, 0)
		assert.Equal(t, segments*6, g.VertexCount(), "n=%d", n)
		assert.Equal(t, segments*2, g.TriangleCount(), "n=%d", n)
		assert.Len(t, g.Colors, g.VertexCount()*ColorStride)
		assert.Len(t, g.UVs, g.VertexCount()*UVStride)
		assert.Empty(t, g.Normals, "Light has no normal channel")
		assert.Equal(t, 1, g.Strokes)
	}
}

func TestDecode_DegenerateStroke(t *testing.T) {
	b := &tilttest.SketchBuilder{}
	b.Add(tilttest.Stroke{Brush: 0, Size: 1, Points: line(1)})

	res := decode(t, b, inkGUID)
	require.Len(t, res.Groups, 1)
	assert.Zero(t, res.Groups[0].VertexCount())
	assert.Zero(t, res.Groups[0].TriangleCount())
	assert.True(t, res.Groups[0].Bounds.Empty())
}

func TestDecode_ZeroStrokes(t *testing.T) {
	res := decode(t, &tilttest.SketchBuilder{}, inkGUID)
	assert.Empty(t, res.Groups)
	assert.Zero(t, res.VertexCount())
	assert.True(t, res.Bounds().Empty())
}

func TestDecode_TruncatedReturnsNothing(t *testing.T) {
	b := &tilttest.SketchBuilder{}
	b.Add(tilttest.Stroke{Brush: 0, Size: 1, Points: line(3)})
	b.Add(tilttest.Stroke{Brush: 1, Size: 1, Points: line(3)})
	sketch := b.Bytes()

	raw := tilttest.Archive(map[string][]byte{
		"metadata.json": tilttest.Metadata(inkGUID, lightGUID),
		"data.sketch":   sketch[:len(sketch)-20],
	})

	res, err := Decode(raw)
	require.ErrorIs(t, err, tilt.ErrTruncatedStroke)
	assert.Nil(t, res)
	assert.GreaterOrEqual(t, tilt.Offset(err), int64(20))
}

func TestDecode_UnknownBrushFallback(t *testing.T) {
	b := &tilttest.SketchBuilder{}
	b.Add(tilttest.Stroke{Brush: 0, Size: 1, Points: line(2)})
	b.Add(tilttest.Stroke{Brush: 1, Size: 1, Points: line(2)})
	b.Add(tilttest.Stroke{Brush: 5, Size: 1, Points: line(2)}) // no BrushIndex entry

	res := decode(t, b, unknownGUID, inkGUID)
	require.Len(t, res.Groups, 3)

	unknown := res.Groups[0]
	assert.True(t, unknown.Unknown)
	assert.Equal(t, brush.FallbackMaterial, unknown.Profile.Material)
	assert.Equal(t, unknownGUID, unknown.BrushGUID)
	assert.Equal(t, 6, unknown.VertexCount())

	assert.False(t, res.Groups[1].Unknown)
	assert.Equal(t, "Ink", res.Groups[1].Profile.Name)

	outOfRange := res.Groups[2]
	assert.True(t, outOfRange.Unknown)
	assert.Empty(t, outOfRange.BrushGUID)
	assert.Equal(t, brush.FallbackMaterial, outOfRange.Profile.Material)

	assert.Len(t, res.UnknownGroups(), 2)
}

func TestDecode_GroupsPartitionStrokes(t *testing.T) {
	b := &tilttest.SketchBuilder{}
	counts := []struct {
		brush int32
		n     int
	}{{2, 4}, {0, 2}, {2, 3}, {1, 1}, {0, 5}, {3, 2}}

	totalSegments := 0
	for _, c := range counts {
		b.Add(tilttest.Stroke{Brush: c.brush, Size: 0.5, Points: line(c.n)})
		totalSegments += c.n - 1
	}

	res := decode(t, b, inkGUID, lightGUID, rainbowGUID, inkGUID)
	require.Len(t, res.Groups, 4)

	sum := 0
	for i, g := range res.Groups {
		assert.Equal(t, int32(i), g.BrushIndex, "groups ordered by brush index")
		sum += g.VertexCount()
	}
	assert.Equal(t, totalSegments*6, sum)
	assert.Equal(t, sum, res.VertexCount())
	assert.Equal(t, 2, res.Groups[2].Strokes)
	assert.Equal(t, 5*6, res.Groups[2].VertexCount())
}

func TestAddStroke_ColorFlatness(t *testing.T) {
	g := NewGroup(0, &tilt.Metadata{BrushIndex: []string{inkGUID}})
	colors := [][4]float32{{0.1, 0.2, 0.3, 0.4}, {1, 1, 0, 0.5}}
	for _, c := range colors {
		pts := []tilt.ControlPoint{
			{Position: [3]float32{0, 0, 0}, Orientation: [4]float32{0, 0, 0, 1}},
			{Position: [3]float32{0, 1, 0}, Orientation: [4]float32{0, 0, 0, 1}},
			{Position: [3]float32{0, 2, 1}, Orientation: [4]float32{0, 0, 0, 1}},
		}
		g.AddStroke(&tilt.Stroke{Color: c, Size: 0.2, ControlPoints: pts})
	}

	segments := g.VertexCount() / VerticesPerSegment
	require.Equal(t, 4, segments)
	for seg := 0; seg < segments; seg++ {
		want := colors[seg/2]
		for v := 0; v < VerticesPerSegment; v++ {
			off := (seg*VerticesPerSegment + v) * ColorStride
			assert.Equal(t, want[:], g.Colors[off:off+ColorStride], "segment %d vertex %d", seg, v)
		}
	}
}

func TestAddStroke_Handedness(t *testing.T) {
	// 90 degrees about Y maps the local X offset onto -Z.
	q := math.QuatFromAxisAngle(math.Vec3{Y: 1}, gomath.Pi/2)
	quat := [4]float32{q.X, q.Y, q.Z, q.W}
	size := float32(0.25)

	pts := []tilt.ControlPoint{
		{Position: [3]float32{1, 2, 3}, Orientation: quat},
		{Position: [3]float32{1, 3, 5}, Orientation: quat},
	}
	g := NewGroup(0, &tilt.Metadata{BrushIndex: []string{lightGUID}})
	g.AddStroke(&tilt.Stroke{Size: size, ControlPoints: pts})

	// Raw corner Z before the flip: left = z + size, right = z - size.
	rawZ := []float32{5 + size, 5 - size, 3 + size, 5 - size, 3 - size, 3 + size}
	require.Equal(t, len(rawZ), g.VertexCount())
	for v, z := range rawZ {
		assert.InDelta(t, -z, g.Positions[v*PositionStride+2], 1e-5, "vertex %d", v)
	}
}

func TestAddStroke_UVs(t *testing.T) {
	g := NewGroup(0, &tilt.Metadata{BrushIndex: []string{lightGUID}})
	pts := make([]tilt.ControlPoint, 3)
	for i := range pts {
		pts[i] = tilt.ControlPoint{Position: [3]float32{float32(i), 0, 0}, Orientation: [4]float32{0, 0, 0, 1}}
	}
	g.AddStroke(&tilt.Stroke{Size: 1, ControlPoints: pts})

	third := float32(1) / 3
	twoThirds := float32(2) / 3
	want := []float32{
		third, 0, third, 1, 0, 0, third, 1, 0, 1, 0, 0,
		twoThirds, 0, twoThirds, 1, third, 0, twoThirds, 1, third, 1, third, 0,
	}
	require.Len(t, g.UVs, len(want))
	for i := range want {
		assert.InDelta(t, want[i], g.UVs[i], 1e-6, "uv component %d", i)
	}
}

func TestAddStroke_Normals(t *testing.T) {
	g := NewGroup(0, &tilt.Metadata{BrushIndex: []string{inkGUID}})
	require.True(t, g.HasNormals())

	pts := []tilt.ControlPoint{
		{Position: [3]float32{0, 0, 0}, Orientation: [4]float32{0, 0, 0, 1}},
		{Position: [3]float32{0, 1, 0}, Orientation: [4]float32{0, 0, 0, 1}},
	}
	g.AddStroke(&tilt.Stroke{Size: 0.5, ControlPoints: pts})

	require.Len(t, g.Normals, 6*NormalStride)
	for v := 0; v < 6; v++ {
		n := g.Normals[v*NormalStride : (v+1)*NormalStride]
		assert.InDelta(t, 0, n[0], 1e-6)
		assert.InDelta(t, 0, n[1], 1e-6)
		assert.InDelta(t, -1, n[2], 1e-6, "vertex %d", v)
	}
}

func TestAddStroke_DoesNotMutateInput(t *testing.T) {
	pts := []tilt.ControlPoint{
		{Position: [3]float32{0, 0, 1}, Orientation: [4]float32{0, 0, 0, 1}},
		{Position: [3]float32{1, 0, 1}, Orientation: [4]float32{0, 0, 0, 1}},
	}
	s := &tilt.Stroke{Size: 1, Color: [4]float32{1, 1, 1, 1}, ControlPoints: pts}
	g := NewGroup(0, nil)
	g.AddStroke(s)

	assert.Equal(t, [3]float32{0, 0, 1}, s.ControlPoints[0].Position)
	assert.Equal(t, [3]float32{1, 0, 1}, s.ControlPoints[1].Position)
}

func TestGroup_BoundsAndIndices(t *testing.T) {
	b := &tilttest.SketchBuilder{}
	b.Add(tilttest.Stroke{Brush: 0, Size: 0.5, Points: []tilttest.Point{tilttest.P(0, 0, 1), tilttest.P(2, 1, 1)}})

	res := decode(t, b, lightGUID)
	g := res.Groups[0]

	assert.InDelta(t, -0.5, g.Bounds.Min.X, 1e-6)
	assert.InDelta(t, 2.5, g.Bounds.Max.X, 1e-6)
	assert.InDelta(t, -1, g.Bounds.Min.Z, 1e-6)
	assert.InDelta(t, -1, g.Bounds.Max.Z, 1e-6)
	assert.InDelta(t, 1, res.Bounds().Center().X, 1e-6)

	idx := g.Indices()
	require.Len(t, idx, 6)
	for i, v := range idx {
		assert.Equal(t, uint32(i), v)
	}
}

func TestNewGroup_NilMetadata(t *testing.T) {
	g := NewGroup(3, nil)
	assert.True(t, g.Unknown)
	assert.Equal(t, brush.Fallback(), g.Profile)
}

func TestDecodeFile_Missing(t *testing.T) {
	_, err := DecodeFile("testdata/none.tilt")
	assert.Error(t, err)
}

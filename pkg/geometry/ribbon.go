package geometry

import (
	"github.com/Faultbox/sketchview/pkg/math"
	"github.com/Faultbox/sketchview/pkg/tilt"
)

// corner is one emitted vertex before the handedness flip.
type corner struct {
	pos  math.Vec3
	u, v float32
}

// AddStroke appends the ribbon for s. Strokes with fewer than two
// control points contribute nothing.
//
// Each consecutive pair of control points becomes a quad whose edges
// are the points offset by ±Size along their local X axis. The quad is
// emitted as (leftCurr, rightCurr, leftPrev) and
// (rightCurr, rightPrev, leftPrev), with Z negated to convert the
// sketch's left-handed space to the renderer's right-handed one.
func (g *Group) AddStroke(s *tilt.Stroke) {
	g.Strokes++

	n := len(s.ControlPoints)
	if n < 2 {
		return
	}
	g.grow((n - 1) * VerticesPerSegment)

	prev := s.ControlPoints[0]
	prevPos := math.Vec3FromArray(prev.Position)
	prevOffset := math.QuatFromArray(prev.Orientation).Rotate(math.Vec3{X: s.Size})

	for i := 1; i < n; i++ {
		cp := s.ControlPoints[i]
		pos := math.Vec3FromArray(cp.Position)
		offset := math.QuatFromArray(cp.Orientation).Rotate(math.Vec3{X: s.Size})

		uCurr := float32(i) / float32(n)
		uPrev := float32(i-1) / float32(n)

		leftCurr := corner{pos.Sub(offset), uCurr, 0}
		rightCurr := corner{pos.Add(offset), uCurr, 1}
		rightPrev := corner{prevPos.Add(prevOffset), uPrev, 1}
		leftPrev := corner{prevPos.Sub(prevOffset), uPrev, 0}

		g.addTriangle(leftCurr, rightCurr, leftPrev, s.Color)
		g.addTriangle(rightCurr, rightPrev, leftPrev, s.Color)

		prevPos, prevOffset = pos, offset
	}
}

func (g *Group) addTriangle(a, b, c corner, color [4]float32) {
	pa, pb, pc := a.pos.FlipZ(), b.pos.FlipZ(), c.pos.FlipZ()

	var normal math.Vec3
	if g.HasNormals() {
		// Zero for degenerate triangles.
		normal = pb.Sub(pa).Cross(pc.Sub(pa)).Normalize()
	}

	for _, v := range [3]struct {
		p math.Vec3
		c corner
	}{{pa, a}, {pb, b}, {pc, c}} {
		g.Positions = append(g.Positions, v.p.X, v.p.Y, v.p.Z, 1)
		g.Colors = append(g.Colors, color[0], color[1], color[2], color[3])
		g.UVs = append(g.UVs, v.c.u, v.c.v)
		if g.HasNormals() {
			g.Normals = append(g.Normals, normal.X, normal.Y, normal.Z)
		}
		g.Bounds.Add(v.p)
	}
}

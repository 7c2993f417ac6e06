// Package export writes decoded sketch geometry to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/sketchview/pkg/geometry"
)

// WriteOBJ writes groups as a Wavefront OBJ document.
// Each group becomes an object using its material name; vertex colours
// are written as the non-standard "v x y z r g b" extension.
func WriteOBJ(w io.Writer, groups []*geometry.Group) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# sketchview export")

	// OBJ indices are 1-based and global per element kind. Normals only
	// exist for lit groups, so their numbering runs separately.
	base, nbase := 1, 1
	for _, g := range groups {
		n := g.VertexCount()
		if n == 0 {
			continue
		}

		fmt.Fprintf(bw, "o brush_%d_%s\n", g.BrushIndex, g.Profile.Name)
		fmt.Fprintf(bw, "usemtl %s\n", g.Profile.Material)

		for v := 0; v < n; v++ {
			p := g.Positions[v*geometry.PositionStride:]
			c := g.Colors[v*geometry.ColorStride:]
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", p[0], p[1], p[2], c[0], c[1], c[2])
		}
		for v := 0; v < n; v++ {
			uv := g.UVs[v*geometry.UVStride:]
			fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
		}
		if g.HasNormals() {
			for v := 0; v < n; v++ {
				nm := g.Normals[v*geometry.NormalStride:]
				fmt.Fprintf(bw, "vn %g %g %g\n", nm[0], nm[1], nm[2])
			}
		}

		for v := 0; v < n; v += 3 {
			a, b, c := base+v, base+v+1, base+v+2
			if g.HasNormals() {
				na, nb, nc := nbase+v, nbase+v+1, nbase+v+2
				fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, na, b, b, nb, c, c, nc)
			} else {
				fmt.Fprintf(bw, "f %d/%d %d/%d %d/%d\n", a, a, b, b, c, c)
			}
		}
		base += n
		if g.HasNormals() {
			nbase += n
		}
	}

	return bw.Flush()
}

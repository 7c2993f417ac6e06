package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/sketchview/pkg/geometry"
)

// Attribute locations shared with the vertex shader.
const (
	attribPosition = 0
	attribColor    = 1
	attribUV       = 2
	attribNormal   = 3
)

// mesh is one group's vertex buffers on the GPU.
type mesh struct {
	vao   uint32
	vbos  []uint32
	count int32
}

func upload(g *geometry.Group) *mesh {
	m := &mesh{count: int32(g.VertexCount())}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	m.attribute(attribPosition, g.Positions, geometry.PositionStride)
	m.attribute(attribColor, g.Colors, geometry.ColorStride)
	m.attribute(attribUV, g.UVs, geometry.UVStride)
	if g.HasNormals() {
		m.attribute(attribNormal, g.Normals, geometry.NormalStride)
	} else {
		gl.DisableVertexAttribArray(attribNormal)
		gl.VertexAttrib3f(attribNormal, 0, 0, 0)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *mesh) attribute(loc uint32, data []float32, size int) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointerWithOffset(loc, int32(size), gl.FLOAT, false, 0, 0)
	m.vbos = append(m.vbos, vbo)
}

func (m *mesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

func (m *mesh) delete() {
	if len(m.vbos) > 0 {
		gl.DeleteBuffers(int32(len(m.vbos)), &m.vbos[0])
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
}

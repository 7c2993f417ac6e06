// Package tilttest builds synthetic sketch files for tests.
package tilttest

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"encoding/json"
	"math"
	"sort"
)

// Point is a control point for SketchBuilder.
type Point struct {
	Pos  [3]float32
	Quat [4]float32
}

// P returns a point at (x, y, z) with identity orientation.
func P(x, y, z float32) Point {
	return Point{Pos: [3]float32{x, y, z}, Quat: [4]float32{0, 0, 0, 1}}
}

// Stroke describes one stroke record.
type Stroke struct {
	Brush            int32
	Color            [4]float32
	Size             float32
	StrokeMask       uint32
	ControlPointMask uint32
	Points           []Point
}

// SketchBuilder assembles a data.sketch buffer.
type SketchBuilder struct {
	Header  [4]uint32
	Strokes []Stroke
	// CountOverride replaces the stroke count when non-nil.
	CountOverride *int32
}

// Add appends a stroke and returns the builder.
func (b *SketchBuilder) Add(s Stroke) *SketchBuilder {
	b.Strokes = append(b.Strokes, s)
	return b
}

func maskBytes(mask uint32) int {
	n := 0
	for bit := uint32(0); bit < 4; bit++ {
		if mask&(1<<bit) != 0 {
			n += 4
		}
	}
	return n
}

// Bytes encodes the sketch. Mask-implied extension bytes are filled
// with 0xAB so misaligned reads show up as garbage values.
func (b *SketchBuilder) Bytes() []byte {
	var buf bytes.Buffer
	le := binary.LittleEndian

	for _, h := range b.Header {
		binary.Write(&buf, le, h)
	}
	count := int32(len(b.Strokes))
	if b.CountOverride != nil {
		count = *b.CountOverride
	}
	binary.Write(&buf, le, count)

	for _, s := range b.Strokes {
		binary.Write(&buf, le, s.Brush)
		binary.Write(&buf, le, s.Color)
		binary.Write(&buf, le, s.Size)
		binary.Write(&buf, le, s.StrokeMask)
		binary.Write(&buf, le, s.ControlPointMask)
		buf.Write(bytes.Repeat([]byte{0xAB}, maskBytes(s.StrokeMask)))
		binary.Write(&buf, le, int32(len(s.Points)))
		for _, p := range s.Points {
			binary.Write(&buf, le, p.Pos)
			binary.Write(&buf, le, p.Quat)
			buf.Write(bytes.Repeat([]byte{0xAB}, maskBytes(s.ControlPointMask)))
		}
	}
	return buf.Bytes()
}

// Metadata encodes a metadata.json with the given brush GUIDs.
func Metadata(brushGUIDs ...string) []byte {
	if brushGUIDs == nil {
		brushGUIDs = []string{}
	}
	data, _ := json.Marshal(map[string]any{
		"SchemaVersion":     2,
		"EnvironmentPreset": "ab080599-e465-4a6d-8587-43bf495af68b",
		"BrushIndex":        brushGUIDs,
		"SceneTransformInRoomSpace": []any{
			[]float32{0, 0, 0}, []float32{0, 0, 0, 1}, 1,
		},
	})
	return data
}

// FileHeader returns the 16-byte .tilt prefix.
func FileHeader() []byte {
	h := make([]byte, 16)
	binary.LittleEndian.PutUint32(h[0:], 0x546c6974)
	binary.LittleEndian.PutUint16(h[4:], 16)
	binary.LittleEndian.PutUint16(h[6:], 1)
	return h
}

// Archive builds a complete .tilt file from the given members.
func Archive(members map[string][]byte) []byte {
	var buf bytes.Buffer
	buf.Write(FileHeader())

	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)

	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			panic(err)
		}
		w.Write(members[name])
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// File builds a .tilt file from brush GUIDs and a sketch builder.
func File(sketch *SketchBuilder, brushGUIDs ...string) []byte {
	return Archive(map[string][]byte{
		"metadata.json": Metadata(brushGUIDs...),
		"data.sketch":   sketch.Bytes(),
	})
}

// Float32 returns the float stored at off in a little-endian buffer.
func Float32(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

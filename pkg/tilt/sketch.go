package tilt

import (
	"fmt"
	"math/bits"
	"slices"
)

// Layout of data.sketch.
const (
	SketchHeaderSize = 16 // sentinel, version, reserved, additional header size
	strokeCountAt    = 16 // int32 num_strokes
	strokesAt        = 20 // first stroke record

	strokeFixedSize  = 32 // brush index, RGBA, size, stroke mask, control point mask
	controlPointSize = 28 // position xyz + orientation xyzw

	maskBytesPerBit = 4
	maskKnownBits   = 0xF
)

// SketchHeader is the leading header of data.sketch.
// num_strokes is always read at offset 16 regardless of
// AdditionalHeaderSize; existing files rely on that.
type SketchHeader struct {
	Sentinel             uint32
	Version              uint32
	Reserved             uint32
	AdditionalHeaderSize uint32
}

// ControlPoint is one sampled pose along a stroke.
type ControlPoint struct {
	Position    [3]float32
	Orientation [4]float32 // quaternion x, y, z, w
}

// Stroke is one continuous brush movement.
type Stroke struct {
	BrushIndex       int32
	Color            [4]float32 // RGBA, 0-1
	Size             float32
	StrokeMask       uint32
	ControlPointMask uint32
	ControlPoints    []ControlPoint
}

// Segments returns the number of quads the stroke produces.
func (s *Stroke) Segments() int {
	return max(len(s.ControlPoints)-1, 0)
}

// Sketch is the decoded data.sketch payload.
type Sketch struct {
	Header  SketchHeader
	Strokes []Stroke // decode order
}

// maskSkipBytes returns the extension bytes implied by a stroke or
// control point mask: 4 bytes for each of bits 0-3 that is set.
// Bits 4-31 do not contribute.
func maskSkipBytes(mask uint32) int {
	return bits.OnesCount32(mask&maskKnownBits) * maskBytesPerBit
}

// DecodeStrokes parses a data.sketch buffer.
// A non-positive stroke count yields an empty sketch. Any read past the
// end of buf fails the whole decode with ErrTruncatedStroke.
func DecodeStrokes(buf []byte) (*Sketch, error) {
	r := &reader{buf: buf}
	sk := &Sketch{}

	if len(buf) >= SketchHeaderSize {
		sk.Header.Sentinel, _ = r.uint32()
		sk.Header.Version, _ = r.uint32()
		sk.Header.Reserved, _ = r.uint32()
		sk.Header.AdditionalHeaderSize, _ = r.uint32()
	}

	r.off = strokeCountAt
	count, err := r.int32()
	if err != nil {
		return nil, fmt.Errorf("reading stroke count: %w", err)
	}
	if count <= 0 {
		return sk, nil
	}

	sk.Strokes = make([]Stroke, 0, min(int(count), r.remaining()/strokeFixedSize+1))
	for i := int32(0); i < count; i++ {
		s, err := decodeStroke(r)
		if err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i, err)
		}
		sk.Strokes = append(sk.Strokes, s)
	}

	return sk, nil
}

func decodeStroke(r *reader) (Stroke, error) {
	var s Stroke
	var err error

	if s.BrushIndex, err = r.int32(); err != nil {
		return s, err
	}
	if err = r.floats(s.Color[:]); err != nil {
		return s, err
	}
	if s.Size, err = r.float32(); err != nil {
		return s, err
	}
	if s.StrokeMask, err = r.uint32(); err != nil {
		return s, err
	}
	if s.ControlPointMask, err = r.uint32(); err != nil {
		return s, err
	}
	if err = r.skip(maskSkipBytes(s.StrokeMask)); err != nil {
		return s, err
	}

	count, err := r.int32()
	if err != nil {
		return s, err
	}
	if count <= 0 {
		return s, nil
	}

	extra := maskSkipBytes(s.ControlPointMask)
	stride := controlPointSize + extra
	s.ControlPoints = make([]ControlPoint, 0, min(int(count), r.remaining()/stride+1))

	for j := int32(0); j < count; j++ {
		var cp ControlPoint
		if err := r.floats(cp.Position[:]); err != nil {
			return s, fmt.Errorf("control point %d: %w", j, err)
		}
		if err := r.floats(cp.Orientation[:]); err != nil {
			return s, fmt.Errorf("control point %d: %w", j, err)
		}
		if err := r.skip(extra); err != nil {
			return s, fmt.Errorf("control point %d: %w", j, err)
		}
		s.ControlPoints = append(s.ControlPoints, cp)
	}

	return s, nil
}

// ByBrush groups strokes by brush index, keeping decode order within
// each group.
func (sk *Sketch) ByBrush() map[int32][]Stroke {
	groups := make(map[int32][]Stroke)
	for _, s := range sk.Strokes {
		groups[s.BrushIndex] = append(groups[s.BrushIndex], s)
	}
	return groups
}

// BrushIndices returns the distinct brush indices used, ascending.
func (sk *Sketch) BrushIndices() []int32 {
	seen := make(map[int32]struct{})
	var indices []int32
	for _, s := range sk.Strokes {
		if _, ok := seen[s.BrushIndex]; ok {
			continue
		}
		seen[s.BrushIndex] = struct{}{}
		indices = append(indices, s.BrushIndex)
	}
	slices.Sort(indices)
	return indices
}

// ControlPointCount returns the total number of control points.
func (sk *Sketch) ControlPointCount() int {
	total := 0
	for i := range sk.Strokes {
		total += len(sk.Strokes[i].ControlPoints)
	}
	return total
}

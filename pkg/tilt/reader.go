package tilt

import (
	"encoding/binary"
	"fmt"
	"math"
)

// reader is a forward-only little-endian cursor over data.sketch.
// Every failed read reports ErrTruncatedStroke with the cursor offset.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) need(n int) error {
	if n < 0 || r.remaining() < n {
		return &DecodeError{
			Kind:   ErrTruncatedStroke,
			Member: MemberSketch,
			Offset: int64(r.off),
			Err:    fmt.Errorf("need %d bytes, %d remain", n, max(r.remaining(), 0)),
		}
	}
	return nil
}

func (r *reader) uint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) int32() (int32, error) {
	v, err := r.uint32()
	return int32(v), err
}

func (r *reader) float32() (float32, error) {
	v, err := r.uint32()
	return math.Float32frombits(v), err
}

// floats fills dst with consecutive float32 values.
func (r *reader) floats(dst []float32) error {
	if err := r.need(4 * len(dst)); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = math.Float32frombits(binary.LittleEndian.Uint32(r.buf[r.off:]))
		r.off += 4
	}
	return nil
}

func (r *reader) skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.off += n
	return nil
}

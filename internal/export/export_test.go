package export

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/sketchview/pkg/geometry"
	"github.com/Faultbox/sketchview/pkg/tilt/tilttest"
)

const (
	inkGUID   = "f5c336cf-5108-4b40-ade9-c687504385ab"
	lightGUID = "2241cd32-8ba2-48a5-9ee7-2caef7e9ed62"
)

func sampleResult(t *testing.T) *geometry.Result {
	t.Helper()
	b := &tilttest.SketchBuilder{}
	b.Add(tilttest.Stroke{Brush: 0, Color: [4]float32{1, 0, 0, 1}, Size: 0.1,
		Points: []tilttest.Point{tilttest.P(0, 0, 0), tilttest.P(1, 0, 0)}})
	b.Add(tilttest.Stroke{Brush: 1, Color: [4]float32{0, 1, 0, 1}, Size: 0.1,
		Points: []tilttest.Point{tilttest.P(0, 0, 0), tilttest.P(0, 1, 0), tilttest.P(0, 2, 0)}})
	b.Add(tilttest.Stroke{Brush: 2, Size: 0.1, Points: []tilttest.Point{tilttest.P(0, 0, 0)}})

	res, err := geometry.Decode(tilttest.File(b, lightGUID, inkGUID, inkGUID))
	require.NoError(t, err)
	return res
}

func TestWriteOBJ(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, res.Groups))
	out := buf.String()

	count := func(prefix string) int {
		n := 0
		for _, line := range strings.Split(out, "\n") {
			if strings.HasPrefix(line, prefix) {
				n++
			}
		}
		return n
	}

	assert.Equal(t, 6+12, count("v "))
	assert.Equal(t, 6+12, count("vt "))
	assert.Equal(t, 12, count("vn "), "only Ink carries normals")
	assert.Equal(t, 2+4, count("f "))
	assert.Equal(t, 2, count("o "), "empty groups are skipped")
	assert.Contains(t, out, "usemtl Light\n")
	assert.Contains(t, out, "usemtl Ink\n")

	// Ink follows Light: positions continue the global numbering while
	// normals start at 1 because Light wrote none.
	assert.Contains(t, out, "f 7/7/1 8/8/2 9/9/3\n")
	assert.Contains(t, out, "f 1/1 2/2 3/3\n")
	assert.LessOrEqual(t, maxNormalRef(t, out), count("vn "))
}

func TestWriteOBJ_UnlitBeforeLit(t *testing.T) {
	b := &tilttest.SketchBuilder{}
	b.Add(tilttest.Stroke{Brush: 0, Size: 0.1,
		Points: []tilttest.Point{tilttest.P(0, 0, 0), tilttest.P(1, 0, 0)}})
	b.Add(tilttest.Stroke{Brush: 1, Size: 0.1,
		Points: []tilttest.Point{tilttest.P(0, 0, 0), tilttest.P(0, 1, 0)}})
	b.Add(tilttest.Stroke{Brush: 0, Size: 0.1,
		Points: []tilttest.Point{tilttest.P(0, 0, 1), tilttest.P(1, 0, 1), tilttest.P(2, 0, 1)}})

	res, err := geometry.Decode(tilttest.File(b, lightGUID, inkGUID))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, res.Groups))
	out := buf.String()

	vn := strings.Count(out, "\nvn ")
	assert.Equal(t, 6, vn)
	assert.Equal(t, vn, maxNormalRef(t, out))
	assert.Contains(t, out, "f 19/19/1 20/20/2 21/21/3\n")
}

// maxNormalRef returns the highest normal index referenced by any face.
func maxNormalRef(t *testing.T, obj string) int {
	t.Helper()
	highest := 0
	for _, line := range strings.Split(obj, "\n") {
		if !strings.HasPrefix(line, "f ") {
			continue
		}
		for _, ref := range strings.Fields(line)[1:] {
			parts := strings.Split(ref, "/")
			if len(parts) < 3 {
				continue
			}
			n, err := strconv.Atoi(parts[2])
			require.NoError(t, err)
			if n > highest {
				highest = n
			}
		}
	}
	return highest
}

func TestWriteJSON(t *testing.T) {
	res := sampleResult(t)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, "sample.tilt", res))

	var got Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "sample.tilt", got.Source)
	assert.Equal(t, 3, got.Strokes)
	assert.Equal(t, 18, got.Vertices)
	assert.Equal(t, 6, got.Triangles)
	require.Len(t, got.Groups, 3)
	assert.Equal(t, "Light", got.Groups[0].Brush)
	assert.Equal(t, "position|normal|color|uv0", got.Groups[1].Channels)
	assert.Nil(t, got.Groups[2].Bounds)
	require.NotNil(t, got.Metadata)
	assert.Equal(t, []string{lightGUID, inkGUID, inkGUID}, got.Metadata.BrushIndex)
}

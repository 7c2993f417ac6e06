package brush

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Unique(t *testing.T) {
	guids := make(map[string]string)
	names := make(map[string]bool)
	for _, p := range table {
		if prev, ok := guids[p.GUID.String()]; ok {
			t.Errorf("GUID %s used by %s and %s", p.GUID, prev, p.Name)
		}
		guids[p.GUID.String()] = p.Name

		key := strings.ToLower(p.Name)
		assert.False(t, names[key], "duplicate name %s", p.Name)
		names[key] = true

		assert.NotEmpty(t, p.Material, "brush %s has no material", p.Name)
		assert.True(t, p.Channels.Has(ChannelPosition), "brush %s lacks position", p.Name)
		assert.True(t, p.Channels.Has(ChannelColor), "brush %s lacks color", p.Name)
	}
	assert.Equal(t, len(table), Count())
}

func TestTable_Size(t *testing.T) {
	// Released brushes plus their deprecated and single-sided variants.
	assert.Equal(t, 67, Count())

	p, err := Resolve("00000000-1111-2222-3333-444444444444")
	assert.ErrorIs(t, err, ErrUnknownBrush)
	assert.Equal(t, Fallback(), p, "unlisted GUIDs fall back")
}

func TestLookupGUID(t *testing.T) {
	tests := []struct {
		name   string
		guid   string
		want   string
		wantOK bool
	}{
		{"canonical", "f5c336cf-5108-4b40-ade9-c687504385ab", "Ink", true},
		{"upper case", "F5C336CF-5108-4B40-ADE9-C687504385AB", "Ink", true},
		{"braced", "{ad1ad437-76e2-450d-a23a-e17f8310b960}", "Rainbow", true},
		{"unknown", "00000000-0000-0000-0000-000000000001", "", false},
		{"garbage", "ink", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := LookupGUID(tt.guid)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, p.Name)
		})
	}
}

func TestLookupName(t *testing.T) {
	p, ok := LookupName("neonpulse")
	require.True(t, ok)
	assert.Equal(t, "NeonPulse", p.Name)
	assert.True(t, p.NeedsTime)

	_, ok = LookupName("NoSuchBrush")
	assert.False(t, ok)
}

func TestResolve_Fallback(t *testing.T) {
	p, err := Resolve("11111111-2222-3333-4444-555555555555")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownBrush))
	assert.Equal(t, FallbackMaterial, p.Material)
	assert.Equal(t, Fallback(), p)
	assert.False(t, p.NeedsFrameUpdate())

	p, err = Resolve("2241cd32-8ba2-48a5-9ee7-2caef7e9ed62")
	require.NoError(t, err)
	assert.Equal(t, "Light", p.Name)
}

func TestFrameUniformFlags(t *testing.T) {
	for _, name := range []string{"DiamondHull", "NeonPulse", "Rainbow"} {
		p, ok := LookupName(name)
		require.True(t, ok, name)
		assert.True(t, p.NeedsTime, "%s should need u_time", name)
		assert.True(t, p.NeedsFrameUpdate(), name)
	}

	diamond, _ := LookupName("DiamondHull")
	assert.True(t, diamond.NeedsCameraPosition)

	ink, _ := LookupName("Ink")
	assert.False(t, ink.NeedsFrameUpdate())
}

func TestSingleSidedVariants(t *testing.T) {
	for _, p := range table {
		if !strings.HasSuffix(p.Name, "SingleSided") {
			continue
		}
		assert.False(t, p.DoubleSided, p.Name)

		base, ok := LookupName(strings.TrimSuffix(p.Name, "SingleSided"))
		if assert.True(t, ok, "no base brush for %s", p.Name) {
			assert.Equal(t, base.Material, p.Material, p.Name)
		}
	}
}

func TestChannels_String(t *testing.T) {
	assert.Equal(t, "position|color|uv0", unlit.String())
	assert.Equal(t, "position|normal|color|uv0|uv1", particle.String())
	assert.Equal(t, "none", Channels(0).String())
}

func TestAll_Sorted(t *testing.T) {
	all := All()
	require.Len(t, all, Count())
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name, all[i].Name)
	}

	// All returns a copy.
	all[0].Name = "mutated"
	assert.NotEqual(t, "mutated", All()[0].Name)
}

// Package brush maps sketch brush GUIDs to the vertex channels and
// material each brush's shader expects.
package brush

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ErrUnknownBrush is returned by Resolve for GUIDs missing from the table.
var ErrUnknownBrush = errors.New("unknown brush")

// FallbackMaterial is requested for brushes the table does not know.
const FallbackMaterial = "Invisible"

// Channel is a generic per-vertex attribute.
type Channel uint8

// Vertex channels.
const (
	ChannelPosition Channel = 1 << iota
	ChannelNormal
	ChannelColor
	ChannelUV0
	ChannelUV1
)

var channelNames = []struct {
	ch   Channel
	name string
}{
	{ChannelPosition, "position"},
	{ChannelNormal, "normal"},
	{ChannelColor, "color"},
	{ChannelUV0, "uv0"},
	{ChannelUV1, "uv1"},
}

// Channels is a set of vertex channels.
type Channels uint8

// Has reports whether ch is in the set.
func (c Channels) Has(ch Channel) bool {
	return uint8(c)&uint8(ch) != 0
}

// String returns the set as "position|color|uv0".
func (c Channels) String() string {
	var parts []string
	for _, cn := range channelNames {
		if c.Has(cn.ch) {
			parts = append(parts, cn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Profile describes what a brush needs from the renderer.
type Profile struct {
	GUID     uuid.UUID
	Name     string
	Material string
	Channels Channels

	// NeedsTime marks shaders animated by a u_time uniform.
	NeedsTime bool
	// NeedsCameraPosition marks shaders reading the camera position.
	NeedsCameraPosition bool
	DoubleSided         bool
}

// NeedsFrameUpdate reports whether any uniform must be refreshed per frame.
func (p Profile) NeedsFrameUpdate() bool {
	return p.NeedsTime || p.NeedsCameraPosition
}

func (p Profile) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Material)
}

var (
	byGUID map[uuid.UUID]Profile
	byName map[string]Profile
)

func init() {
	byGUID = make(map[uuid.UUID]Profile, len(table))
	byName = make(map[string]Profile, len(table))
	for _, p := range table {
		byGUID[p.GUID] = p
		byName[strings.ToLower(p.Name)] = p
	}
}

// Fallback returns the placeholder profile used for unknown brushes.
func Fallback() Profile {
	return Profile{
		Name:     "Unknown",
		Material: FallbackMaterial,
		Channels: Channels(ChannelPosition | ChannelColor | ChannelUV0),
	}
}

// LookupGUID finds a profile by brush GUID (any case, with or without braces).
func LookupGUID(guid string) (Profile, bool) {
	id, err := uuid.Parse(guid)
	if err != nil {
		return Profile{}, false
	}
	p, ok := byGUID[id]
	return p, ok
}

// LookupName finds a profile by brush name, case-insensitively.
func LookupName(name string) (Profile, bool) {
	p, ok := byName[strings.ToLower(name)]
	return p, ok
}

// Resolve returns the profile for guid. Unknown GUIDs get the fallback
// profile together with an error wrapping ErrUnknownBrush; the profile
// is always usable.
func Resolve(guid string) (Profile, error) {
	if p, ok := LookupGUID(guid); ok {
		return p, nil
	}
	return Fallback(), fmt.Errorf("%w: %q", ErrUnknownBrush, guid)
}

// All returns every known profile sorted by name.
func All() []Profile {
	all := make([]Profile, len(table))
	copy(all, table)
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	})
	return all
}

// Count returns the number of known brushes.
func Count() int {
	return len(table)
}

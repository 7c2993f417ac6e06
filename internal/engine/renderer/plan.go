package renderer

import (
	"github.com/Faultbox/sketchview/pkg/brush"
	"github.com/Faultbox/sketchview/pkg/geometry"
)

// drawItem is how one group is drawn.
type drawItem struct {
	group *geometry.Group

	lit         bool // group carries normals
	needsTime   bool // refresh u_time every frame
	needsCamera bool // refresh u_cameraPosition every frame
	cullBack    bool
	blend       bool
}

// planDraws decides how each group is drawn. Empty groups and groups
// resolved to the invisible placeholder are skipped and returned
// separately. The per-frame flags come from the resolved profile.
func planDraws(groups []*geometry.Group) (items []drawItem, skipped []*geometry.Group) {
	for _, g := range groups {
		if g.VertexCount() == 0 || g.Profile.Material == brush.FallbackMaterial {
			skipped = append(skipped, g)
			continue
		}
		items = append(items, drawItem{
			group:       g,
			lit:         g.HasNormals(),
			needsTime:   g.Profile.NeedsTime,
			needsCamera: g.Profile.NeedsCameraPosition,
			cullBack:    !g.Profile.DoubleSided,
			blend:       hasTranslucency(g),
		})
	}

	// Opaque first so blended ribbons composite over them.
	opaque := items[:0:0]
	var blended []drawItem
	for _, it := range items {
		if it.blend {
			blended = append(blended, it)
		} else {
			opaque = append(opaque, it)
		}
	}
	return append(opaque, blended...), skipped
}

// hasTranslucency reports whether any vertex alpha is below 1.
func hasTranslucency(g *geometry.Group) bool {
	for i := 3; i < len(g.Colors); i += geometry.ColorStride {
		if g.Colors[i] < 1 {
			return true
		}
	}
	return false
}

// frameNeeds reports which per-frame uniforms any item needs.
func frameNeeds(items []drawItem) (time, camera bool) {
	for _, it := range items {
		time = time || it.needsTime
		camera = camera || it.needsCamera
	}
	return time, camera
}

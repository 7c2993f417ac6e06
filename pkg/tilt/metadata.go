package tilt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Faultbox/sketchview/pkg/encoding"
)

// Metadata is the parsed metadata.json document.
// Only BrushIndex matters to geometry; the rest is passed through for
// the rendering layer (environment and camera setup).
type Metadata struct {
	SchemaVersion     int      `json:"SchemaVersion,omitempty"`
	EnvironmentPreset string   `json:"EnvironmentPreset,omitempty"`
	BrushIndex        []string `json:"BrushIndex"`
	Authors           []string `json:"Authors,omitempty"`

	ThumbnailCameraTransformInRoomSpace *Transform `json:"ThumbnailCameraTransformInRoomSpace,omitempty"`
	SceneTransformInRoomSpace           *Transform `json:"SceneTransformInRoomSpace,omitempty"`
	CanvasTransformInSceneSpace         *Transform `json:"CanvasTransformInSceneSpace,omitempty"`
}

// Transform is a [translation, rotation, scale] triple as stored in
// sketch metadata: [[x,y,z],[qx,qy,qz,qw],s].
type Transform struct {
	Translation [3]float32
	Rotation    [4]float32
	Scale       float32
}

// UnmarshalJSON accepts a partial triple; missing parts keep identity values.
func (t *Transform) UnmarshalJSON(data []byte) error {
	t.Rotation = [4]float32{0, 0, 0, 1}
	t.Scale = 1

	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("transform: %w", err)
	}
	if len(parts) > 0 {
		if err := json.Unmarshal(parts[0], &t.Translation); err != nil {
			return fmt.Errorf("transform translation: %w", err)
		}
	}
	if len(parts) > 1 {
		if err := json.Unmarshal(parts[1], &t.Rotation); err != nil {
			return fmt.Errorf("transform rotation: %w", err)
		}
	}
	if len(parts) > 2 {
		if err := json.Unmarshal(parts[2], &t.Scale); err != nil {
			return fmt.Errorf("transform scale: %w", err)
		}
	}
	return nil
}

// MarshalJSON writes the triple form back out.
func (t Transform) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Translation, t.Rotation, t.Scale})
}

// ParseMetadata decodes metadata.json bytes (UTF-8, optional BOM).
func ParseMetadata(data []byte) (*Metadata, error) {
	text, err := encoding.DecodeUTF8(data)
	if err != nil {
		return nil, &DecodeError{Kind: ErrMalformedMetadata, Member: MemberMetadata, Offset: -1, Err: err}
	}

	meta := &Metadata{}
	if err := json.Unmarshal(text, meta); err != nil {
		offset := int64(-1)
		var se *json.SyntaxError
		if errors.As(err, &se) {
			offset = se.Offset
		}
		return nil, &DecodeError{Kind: ErrMalformedMetadata, Member: MemberMetadata, Offset: offset, Err: err}
	}
	return meta, nil
}

// BrushGUID returns the canonical brush GUID for a stroke's brush index.
// ok is false when the index is out of range or the entry is not a GUID.
func (m *Metadata) BrushGUID(index int32) (guid string, ok bool) {
	if m == nil || index < 0 || int(index) >= len(m.BrushIndex) {
		return "", false
	}
	id, err := uuid.Parse(m.BrushIndex[index])
	if err != nil {
		return "", false
	}
	return id.String(), true
}

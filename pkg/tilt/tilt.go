// Package tilt decodes Tilt Brush / Open Brush sketch files.
//
// A .tilt file is a 16-byte header followed by a zip archive holding
// metadata.json, data.sketch and optionally thumbnail.png. data.sketch
// is a packed little-endian list of strokes, each a run of oriented
// control points.
package tilt

import (
	"fmt"
	"os"
)

// File is a fully decoded sketch file.
type File struct {
	Header   FileHeader
	Metadata *Metadata
	Sketch   *Sketch
	Members  []string
}

// Parse unpacks raw and decodes its strokes.
// It either succeeds completely or returns a *DecodeError and no File.
func Parse(raw []byte) (*File, error) {
	a, err := Unpack(raw)
	if err != nil {
		return nil, err
	}

	meta, err := a.Metadata()
	if err != nil {
		return nil, err
	}

	sketch, err := DecodeStrokes(a.SketchData())
	if err != nil {
		return nil, err
	}

	return &File{
		Header:   a.Header,
		Metadata: meta,
		Sketch:   sketch,
		Members:  a.Names(),
	}, nil
}

// ParseFile parses a sketch file from disk.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sketch file: %w", err)
	}
	return Parse(data)
}

package tilt

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Archive member names.
const (
	MemberMetadata  = "metadata.json"
	MemberSketch    = "data.sketch"
	MemberThumbnail = "thumbnail.png"
)

// FileHeaderSize is the size of the fixed header preceding the zip stream.
const FileHeaderSize = 16

// fileSentinel is "tilT" read as a little-endian uint32.
const fileSentinel = 0x546c6974

// FileHeader is the fixed prefix of a .tilt file.
type FileHeader struct {
	Sentinel      uint32
	HeaderSize    uint16
	HeaderVersion uint16
	Reserved1     uint32
	Reserved2     uint32
}

// Valid reports whether the header carries the expected sentinel.
// Decoding never depends on it.
func (h FileHeader) Valid() bool {
	return h.Sentinel == fileSentinel
}

// Archive holds the decompressed members of a sketch file.
type Archive struct {
	Header  FileHeader
	members map[string][]byte
}

// Unpack skips the file header and decompresses every archive member.
// The data.sketch member must be present; metadata.json is checked by
// Metadata so the two failures keep distinct error kinds.
func Unpack(raw []byte) (*Archive, error) {
	if len(raw) < FileHeaderSize {
		return nil, &DecodeError{
			Kind:   ErrMalformedArchive,
			Offset: 0,
			Err:    fmt.Errorf("file header needs %d bytes, have %d", FileHeaderSize, len(raw)),
		}
	}

	a := &Archive{}
	// Fixed-size struct from a long-enough slice: cannot fail.
	_ = binary.Read(bytes.NewReader(raw[:FileHeaderSize]), binary.LittleEndian, &a.Header)

	body := raw[FileHeaderSize:]
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, &DecodeError{Kind: ErrMalformedArchive, Offset: FileHeaderSize, Err: err}
	}

	a.members = make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		data, err := readMember(f)
		if err != nil {
			return nil, &DecodeError{Kind: ErrMalformedArchive, Member: f.Name, Offset: -1, Err: err}
		}
		a.members[normalizeName(f.Name)] = data
	}

	if !a.Contains(MemberSketch) {
		return nil, &DecodeError{
			Kind:   ErrMalformedArchive,
			Member: MemberSketch,
			Offset: -1,
			Err:    errors.New("member not found"),
		}
	}

	return a, nil
}

func readMember(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("decompressing: %w", err)
	}
	return data, nil
}

// Names returns all member names, sorted.
func (a *Archive) Names() []string {
	names := make([]string, 0, len(a.members))
	for name := range a.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Contains checks if a member exists.
func (a *Archive) Contains(name string) bool {
	_, ok := a.members[normalizeName(name)]
	return ok
}

// Read returns the raw bytes of a member.
func (a *Archive) Read(name string) ([]byte, error) {
	data, ok := a.members[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("member not found: %s", name)
	}
	return data, nil
}

// SketchData returns the undecoded data.sketch payload.
func (a *Archive) SketchData() []byte {
	return a.members[MemberSketch]
}

// Metadata decodes and parses metadata.json.
func (a *Archive) Metadata() (*Metadata, error) {
	data, ok := a.members[MemberMetadata]
	if !ok {
		return nil, &DecodeError{
			Kind:   ErrMalformedMetadata,
			Member: MemberMetadata,
			Offset: -1,
			Err:    errors.New("member not found"),
		}
	}
	return ParseMetadata(data)
}

// Extract unpacks raw and returns the parsed metadata together with the
// undecoded stroke payload.
func Extract(raw []byte) (*Metadata, []byte, error) {
	a, err := Unpack(raw)
	if err != nil {
		return nil, nil, err
	}
	meta, err := a.Metadata()
	if err != nil {
		return nil, nil, err
	}
	return meta, a.SketchData(), nil
}

func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = strings.TrimPrefix(name, "./")
	return strings.ToLower(name)
}

// Package encoding provides text decoding for sketch archive members.
package encoding

import (
	"bytes"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeUTF8 decodes member bytes as UTF-8 text.
// A leading byte order mark is stripped and invalid sequences are
// replaced with U+FFFD, so the result is always valid UTF-8.
func DecodeUTF8(data []byte) ([]byte, error) {
	result, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// HasBOM reports whether data starts with a UTF-8 byte order mark.
func HasBOM(data []byte) bool {
	return bytes.HasPrefix(data, utf8BOM)
}

// TrimNullBytes removes trailing null bytes from a byte slice.
func TrimNullBytes(data []byte) []byte {
	return bytes.TrimRight(data, "\x00")
}

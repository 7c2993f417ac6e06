package tilt

import (
	"errors"
	"fmt"
	"strings"
)

// Decode errors. All three are fatal: no partial result is returned.
var (
	ErrMalformedArchive  = errors.New("malformed sketch archive")
	ErrMalformedMetadata = errors.New("malformed sketch metadata")
	ErrTruncatedStroke   = errors.New("truncated stroke data")
)

// DecodeError describes a fatal decode failure.
// errors.Is matches both Kind and the underlying cause.
type DecodeError struct {
	Kind   error  // one of the Err* sentinels above
	Member string // archive member being decoded, if any
	Offset int64  // byte offset of the failure, -1 when unknown
	Err    error  // underlying cause, may be nil
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Member != "" {
		fmt.Fprintf(&b, " (%s)", e.Member)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes the kind and the cause to errors.Is / errors.As.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Offset returns the failing byte offset carried by err, or -1.
func Offset(err error) int64 {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Offset
	}
	return -1
}

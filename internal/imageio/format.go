// Package imageio encodes and decodes generated images.
//
// PNG and JPEG go through the standard library codecs; TIFF and BMP come
// from golang.org/x/image.
package imageio

import (
	"fmt"
	"strings"
)

// Format is an output file format.
type Format uint8

const (
	// PNG is lossless and keeps the alpha channel. It is the default.
	PNG Format = iota

	// JPEG is lossy and drops alpha.
	JPEG

	// TIFF is deflate-compressed.
	TIFF

	// BMP is uncompressed.
	BMP

	formatCount
)

// formatInfo contains metadata for each format.
var formatInfo = [formatCount]struct {
	name string
	ext  string
}{
	PNG:  {"png", ".png"},
	JPEG: {"jpeg", ".jpg"},
	TIFF: {"tiff", ".tiff"},
	BMP:  {"bmp", ".bmp"},
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns the format name.
func (f Format) String() string {
	if !f.IsValid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return formatInfo[f].name
}

// Ext returns the file extension including the leading dot.
func (f Format) Ext() string {
	if !f.IsValid() {
		return ""
	}
	return formatInfo[f].ext
}

// ParseFormat converts a name or extension such as "png", "jpg" or ".tif"
// to a Format. The empty string selects PNG.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	switch s {
	case "", "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

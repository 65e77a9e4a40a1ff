package image

import (
	"strings"
)

// Format is a target or source raster format, spelled as its file extension.
type Format string

const (
	FormatNone Format = ""
	PNG        Format = "png"
	JPEG       Format = "jpeg"
	JPG        Format = "jpg"
	WEBP       Format = "webp"
	BMP        Format = "bmp"
	ICO        Format = "ico"
	GIF        Format = "gif"
	TIFF       Format = "tiff"
)

// Formats lists every supported format in display order.
var Formats = []Format{PNG, JPEG, WEBP, BMP, ICO, GIF, TIFF}

var knownExts = map[string]Format{
	"png":  PNG,
	"jpeg": JPEG,
	"jpg":  JPG,
	"webp": WEBP,
	"bmp":  BMP,
	"ico":  ICO,
	"gif":  GIF,
	"tiff": TIFF,
}

// ParseFormat accepts a format name or a file name/extension, case-insensitive.
func ParseFormat(s string) Format {
	if pos := strings.LastIndex(s, "."); pos != -1 && pos < len(s) {
		s = s[pos+1:]
	}
	if f, ok := knownExts[strings.ToLower(s)]; ok {
		return f
	}
	return FormatNone
}

// IsSupportedExt reports whether ext (with or without the dot) names a readable image.
func IsSupportedExt(ext string) bool {
	return ParseFormat(ext) != FormatNone
}

func (z Format) String() string {
	if z == FormatNone {
		return "unknown"
	}
	return string(z)
}

// Ext returns the lowercased extension, without the dot, used for output files.
func (z Format) Ext() string {
	return strings.ToLower(string(z))
}

// Codec folds aliases so that jpg and jpeg share an encoder.
func (z Format) Codec() Format {
	if z == JPG {
		return JPEG
	}
	return z
}

// IsLossy reports whether the format takes a quality parameter.
func (z Format) IsLossy() bool {
	c := z.Codec()
	return c == JPEG || c == WEBP
}

// Valid ...
func (z Format) Valid() bool {
	_, ok := knownExts[string(z)]
	return ok
}

// MarshalText implements the encoding.TextMarshaler interface.
func (z Format) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Format) UnmarshalText(data []byte) error {
	*z = ParseFormat(string(data))
	return nil
}

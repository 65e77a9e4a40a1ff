package image

import (
	"fmt"
)

type Dimension uint32
type Size uint32
type Quality uint8

const (
	MinQuality     Quality = 1
	MaxQuality     Quality = 100
	DefaultQuality Quality = 85
)

// ClampQuality folds any integer into [MinQuality, MaxQuality].
func ClampQuality(q int) Quality {
	if q < int(MinQuality) {
		return MinQuality
	}
	if q > int(MaxQuality) {
		return MaxQuality
	}
	return Quality(q)
}

// Attr describes a decoded image.
type Attr struct {
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
	Size   Size      `json:"size,omitempty"`
	Format Format    `json:"format"`
	Ext    string    `json:"ext,omitempty"`
	Mime   string    `json:"mime,omitempty"`
}

func (a Attr) String() string {
	return fmt.Sprintf("%s %dx%d", a.Format, a.Width, a.Height)
}

// NewAttr ...
func NewAttr(w, h uint) *Attr {
	return &Attr{
		Width:  Dimension(w),
		Height: Dimension(h),
	}
}

// WriteOption controls encoding. Quality only applies to lossy formats.
type WriteOption struct {
	Format  Format
	Quality Quality
}

func (o WriteOption) String() string {
	if o.Format.IsLossy() {
		return fmt.Sprintf("%s q%d", o.Format, o.Quality)
	}
	return o.Format.String()
}

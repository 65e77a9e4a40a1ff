// Package convert turns one image, or every image of a directory, into another raster format.
package convert

import (
	"path/filepath"
	"strings"

	"github.com/go-imsto/imconv/image"
)

const (
	// DefaultPattern matches every entry of the batch directory.
	DefaultPattern = "*"
	outputSuffix   = "_converted"
)

// Request is one conversion. Build it with NewRequest; it is passed by value.
type Request struct {
	Source    string        `json:"source"`
	Format    image.Format  `json:"format"`
	MaxWidth  uint          `json:"maxWidth,omitempty"`
	Quality   image.Quality `json:"quality"`
	OutputDir string        `json:"outputDir,omitempty"`
}

// Option tunes a Request.
type Option func(*Request)

// WithMaxWidth bounds the output width; zero or negative disables resizing.
func WithMaxWidth(w int) Option {
	return func(r *Request) {
		if w > 0 {
			r.MaxWidth = uint(w)
		} else {
			r.MaxWidth = 0
		}
	}
}

// WithQuality sets the lossy quality, clamped to [1,100].
func WithQuality(q int) Option {
	return func(r *Request) {
		r.Quality = image.ClampQuality(q)
	}
}

// WithOutputDir writes outputs into dir instead of beside the source.
func WithOutputDir(dir string) Option {
	return func(r *Request) {
		r.OutputDir = dir
	}
}

// NewRequest ...
func NewRequest(src string, format image.Format, opts ...Option) Request {
	r := Request{Source: src, Format: format, Quality: image.DefaultQuality}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// OutputPath is where Convert writes the result of r.
func (r Request) OutputPath() string {
	return OutputPath(r.Source, r.Format, r.OutputDir)
}

// OutputPath strips the extension of src, appends "_converted.<ext>" and
// places the name in outDir, or beside src when outDir is empty.
func OutputPath(src string, format image.Format, outDir string) string {
	name := trimExt(src) + outputSuffix + "." + format.Ext()
	if outDir != "" {
		return filepath.Join(outDir, filepath.Base(name))
	}
	return name
}

// trimExt drops the last extension; leading dots of the base name never start one.
func trimExt(p string) string {
	base := filepath.Base(p)
	if filepath.Ext(strings.TrimLeft(base, ".")) == "" {
		return p
	}
	return strings.TrimSuffix(p, filepath.Ext(base))
}

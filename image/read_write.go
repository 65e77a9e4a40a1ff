package image

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"mime"
	"os"

	"github.com/chai2010/webp"
	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	zlog "github.com/go-imsto/imconv/log"
)

// icoMaxSide is the largest edge an ICO directory entry can describe.
const icoMaxSide = 256

type decodeFunc func(r io.Reader) (image.Image, error)

type encodeFunc func(w io.Writer, m image.Image, q Quality) error

var decoders = map[Format]decodeFunc{
	PNG:  png.Decode,
	JPEG: jpeg.Decode,
	GIF:  gif.Decode,
	WEBP: webp.Decode,
	BMP:  bmp.Decode,
	TIFF: tiff.Decode,
	ICO:  ico.Decode,
}

var encoders = map[Format]encodeFunc{
	PNG: func(w io.Writer, m image.Image, _ Quality) error {
		return png.Encode(w, m)
	},
	JPEG: func(w io.Writer, m image.Image, q Quality) error {
		return jpeg.Encode(w, m, &jpeg.Options{Quality: int(q)})
	},
	GIF: func(w io.Writer, m image.Image, _ Quality) error {
		return gif.Encode(w, m, nil)
	},
	WEBP: func(w io.Writer, m image.Image, q Quality) error {
		return webp.Encode(w, m, &webp.Options{Quality: float32(q)})
	},
	BMP: func(w io.Writer, m image.Image, _ Quality) error {
		return bmp.Encode(w, m)
	},
	TIFF: func(w io.Writer, m image.Image, _ Quality) error {
		return tiff.Encode(w, m, nil)
	},
	ICO: func(w io.Writer, m image.Image, _ Quality) error {
		return ico.Encode(w, FitBox(m, icoMaxSide, icoMaxSide))
	},
}

// Image is a decoded picture with its attributes.
type Image struct {
	m image.Image
	*Attr
}

// Image returns the decoded pixels.
func (im *Image) Image() image.Image {
	return im.m
}

// Open detects the format from the leading bytes and decodes the whole image.
func Open(r io.Reader) (*Image, error) {
	var size Size
	switch rr := r.(type) {
	case *os.File:
		if fi, err := rr.Stat(); err == nil {
			size = Size(fi.Size())
		}
	case *bytes.Reader:
		size = Size(rr.Len())
	}

	br := asReader(r)
	format := GuessFormat(readHead(br))
	decode, ok := decoders[format]
	if !ok {
		return nil, ErrorFormat
	}
	m, err := decode(br)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if m == nil || m.Bounds().Empty() {
		return nil, ErrEmpty
	}

	rec := m.Bounds()
	ia := NewAttr(uint(rec.Dx()), uint(rec.Dy()))
	ia.Format = format
	ia.Ext = "." + format.Ext()
	ia.Mime = mime.TypeByExtension(ia.Ext)
	ia.Size = size
	logger().Debugw("opened", "attr", ia, "size", size)

	return &Image{m: m, Attr: ia}, nil
}

// OpenFile opens, fully decodes and closes name.
func OpenFile(name string) (*Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Open(f)
}

// Encode returns the encoded blob of m. Quality is clamped before use.
func Encode(m image.Image, opt WriteOption) ([]byte, error) {
	encode, ok := encoders[opt.Format.Codec()]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrorFormat, opt.Format)
	}
	var buf bytes.Buffer
	if err := encode(&buf, m, ClampQuality(int(opt.Quality))); err != nil {
		return nil, fmt.Errorf("encode %s: %w", opt.Format, err)
	}
	return buf.Bytes(), nil
}

// SaveTo encodes m into memory first, so w sees nothing when encoding fails.
func SaveTo(w io.Writer, m image.Image, opt WriteOption) (int, error) {
	data, err := Encode(m, opt)
	if err != nil {
		return 0, err
	}
	return w.Write(data)
}

func logger() zlog.Logger {
	return zlog.Get()
}

package image

import (
	"image"
	"image/color"
)

// HasAlpha reports whether m is stored with an alpha channel or a palette.
func HasAlpha(m image.Image) bool {
	switch m.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64,
		*image.Alpha, *image.Alpha16, *image.Paletted, *image.NYCbCrA:
		return true
	}
	return false
}

// Flatten converts m to opaque RGB by dropping alpha. The straight
// (non-premultiplied) colour of each pixel is kept.
func Flatten(m image.Image) image.Image {
	if !HasAlpha(m) {
		return m
	}
	b := m.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{c.R, c.G, c.B, 0xff})
		}
	}
	return dst
}

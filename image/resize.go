package image

import (
	"image"
	"math"

	"github.com/nfnt/resize"
)

// ScaledHeight derives the height for width nw from an ow×oh original,
// rounded to nearest and never below 1.
func ScaledHeight(ow, oh, nw uint) uint {
	if ow == 0 {
		return 0
	}
	h := math.Round(float64(oh) * float64(nw) / float64(ow))
	if h < 1 {
		return 1
	}
	return uint(h)
}

// FitWidth shrinks img to maxWidth keeping the aspect ratio. Images already
// narrow enough (or maxWidth == 0) are returned untouched; it never upscales.
func FitWidth(img image.Image, maxWidth uint) image.Image {
	ob := img.Bounds()
	ow, oh := uint(ob.Dx()), uint(ob.Dy())
	if maxWidth == 0 || ow <= maxWidth {
		return img
	}
	nh := ScaledHeight(ow, oh, maxWidth)
	logger().Debugw("resize", "from", []uint{ow, oh}, "to", []uint{maxWidth, nh})
	return resize.Resize(maxWidth, nh, img, resize.Lanczos3)
}

// FitBox shrinks img so both edges fit in maxWidth×maxHeight.
func FitBox(img image.Image, maxWidth, maxHeight uint) image.Image {
	ob := img.Bounds()
	ow, oh := uint(ob.Dx()), uint(ob.Dy())
	if ow <= maxWidth && oh <= maxHeight {
		return img
	}
	if float64(ow)/float64(maxWidth) >= float64(oh)/float64(maxHeight) {
		return resize.Resize(maxWidth, ScaledHeight(ow, oh, maxWidth), img, resize.Lanczos3)
	}
	return resize.Resize(ScaledHeight(oh, ow, maxHeight), maxHeight, img, resize.Lanczos3)
}

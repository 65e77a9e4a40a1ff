package image

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledHeight(t *testing.T) {
	assert.Equal(t, uint(50), ScaledHeight(300, 100, 150))
	assert.Equal(t, uint(67), ScaledHeight(300, 200, 100)) // 66.67 rounds up
	assert.Equal(t, uint(33), ScaledHeight(300, 100, 100)) // 33.33 rounds down
	assert.Equal(t, uint(1), ScaledHeight(1000, 1, 10))
	assert.Equal(t, uint(0), ScaledHeight(0, 10, 10))
}

func TestFitWidth(t *testing.T) {
	tests := []struct {
		w, h     int
		maxWidth uint
		wantW    int
		wantH    int
	}{
		{300, 100, 150, 150, 50},
		{300, 200, 100, 100, 67},
		{1920, 1080, 640, 640, 360},
		{100, 80, 100, 100, 80}, // equal: untouched
		{100, 80, 640, 100, 80}, // never upscale
		{100, 80, 0, 100, 80},   // no bound
	}
	for _, tt := range tests {
		src := image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h))
		m := FitWidth(src, tt.maxWidth)
		b := m.Bounds()
		assert.Equal(t, tt.wantW, b.Dx(), "%dx%d max %d", tt.w, tt.h, tt.maxWidth)
		assert.Equal(t, tt.wantH, b.Dy(), "%dx%d max %d", tt.w, tt.h, tt.maxWidth)
		if uint(tt.w) <= tt.maxWidth || tt.maxWidth == 0 {
			assert.Same(t, src, m)
		}
	}
}

func TestFitBox(t *testing.T) {
	m := FitBox(image.NewGray(image.Rect(0, 0, 100, 400)), 256, 256)
	assert.Equal(t, image.Rect(0, 0, 64, 256), m.Bounds())

	m = FitBox(image.NewGray(image.Rect(0, 0, 400, 100)), 256, 256)
	assert.Equal(t, image.Rect(0, 0, 256, 64), m.Bounds())

	small := image.NewGray(image.Rect(0, 0, 16, 16))
	assert.Same(t, small, FitBox(small, 256, 256))
}

func TestHasAlphaAndFlatten(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	nrgba.SetNRGBA(0, 0, color.NRGBA{200, 100, 50, 0})
	nrgba.SetNRGBA(1, 0, color.NRGBA{10, 20, 30, 128})

	pal := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.NRGBA{1, 2, 3, 0}})
	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	ycc := image.NewYCbCr(image.Rect(0, 0, 1, 1), image.YCbCrSubsampleRatio444)

	assert.True(t, HasAlpha(nrgba))
	assert.True(t, HasAlpha(pal))
	assert.False(t, HasAlpha(gray))
	assert.False(t, HasAlpha(ycc))

	flat := Flatten(nrgba)
	rgba, ok := flat.(*image.RGBA)
	if assert.True(t, ok) {
		assert.True(t, rgba.Opaque())
		assert.Equal(t, color.RGBA{200, 100, 50, 0xff}, rgba.RGBAAt(0, 0))
		assert.Equal(t, color.RGBA{10, 20, 30, 0xff}, rgba.RGBAAt(1, 0))
	}

	flat = Flatten(pal)
	assert.Equal(t, color.RGBA{1, 2, 3, 0xff}, flat.(*image.RGBA).RGBAAt(0, 0))

	assert.Same(t, gray, Flatten(gray))
}

func TestFlattenOffsetBounds(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 8, 7))
	src.SetNRGBA(5, 5, color.NRGBA{9, 9, 9, 9})
	flat := Flatten(src)
	assert.Equal(t, image.Rect(0, 0, 3, 2), flat.Bounds())
	assert.Equal(t, color.RGBA{9, 9, 9, 0xff}, flat.(*image.RGBA).RGBAAt(0, 0))
}

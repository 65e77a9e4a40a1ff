package image

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", PNG},
		{"PNG", PNG},
		{"jpeg", JPEG},
		{"JPG", JPG},
		{".webp", WEBP},
		{"photo.Tiff", TIFF},
		{"a/b/c.ico", ICO},
		{"bmp", BMP},
		{"gif", GIF},
		{"heic", FormatNone},
		{"", FormatNone},
		{"noext", FormatNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseFormat(tt.in), tt.in)
	}
}

func TestFormatProps(t *testing.T) {
	assert.Equal(t, JPEG, JPG.Codec())
	assert.Equal(t, "jpg", JPG.Ext())
	assert.True(t, JPG.IsLossy())
	assert.True(t, JPEG.IsLossy())
	assert.True(t, WEBP.IsLossy())
	for _, f := range []Format{PNG, BMP, ICO, GIF, TIFF} {
		assert.False(t, f.IsLossy(), f)
		assert.True(t, f.Valid(), f)
	}
	assert.False(t, FormatNone.Valid())
	assert.Equal(t, "unknown", FormatNone.String())

	for _, ext := range []string{".jpg", ".JPEG", ".png", ".webp", ".bmp", ".ico", ".gif", ".tiff"} {
		assert.True(t, IsSupportedExt(ext), ext)
	}
	assert.False(t, IsSupportedExt(".txt"))
	assert.False(t, IsSupportedExt(".tif"))
}

func TestFormatText(t *testing.T) {
	var v struct {
		F Format `json:"f"`
	}
	assert.NoError(t, json.Unmarshal([]byte(`{"f":"WEBP"}`), &v))
	assert.Equal(t, WEBP, v.F)

	b, err := json.Marshal(v)
	assert.NoError(t, err)
	assert.Equal(t, `{"f":"webp"}`, string(b))
}

func TestGuessFormat(t *testing.T) {
	tests := []struct {
		head string
		want Format
	}{
		{sigPNG, PNG},
		{sigJPEG + "\xe0", JPEG},
		{"GIF89a", GIF},
		{"RIFF\x00\x00\x00\x00WEBPVP8 ", WEBP},
		{"RIFF\x00\x00\x00\x00WAVEfmt ", FormatNone},
		{"BM\x00\x00", BMP},
		{"\x00\x00\x01\x00\x01\x00", ICO},
		{"II*\x00", TIFF},
		{"MM\x00*", TIFF},
		{"hello", FormatNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GuessFormat([]byte(tt.head)), "%q", tt.head)
	}
}

package cmd

import (
	"flag"
	"fmt"

	"github.com/go-imsto/imconv/convert"
	"github.com/go-imsto/imconv/image"
)

// convFlags are the flags shared by convert and batch.
type convFlags struct {
	format  string
	width   string
	quality int
	outDir  string
}

func (f *convFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.format, "f", "png", "target format: png, jpeg, jpg, webp, bmp, ico, gif, tiff")
	fs.StringVar(&f.width, "w", "", "max width, e.g. 1920px, or empty for no resize")
	fs.IntVar(&f.quality, "q", int(image.DefaultQuality), "quality for lossy formats (1-100)")
	fs.StringVar(&f.outDir, "o", "", "output directory, beside the source when empty")
}

func (f *convFlags) options() (image.Format, []convert.Option, error) {
	format := image.ParseFormat(f.format)
	if !format.Valid() {
		return image.FormatNone, nil, fmt.Errorf("%w: %q", image.ErrorFormat, f.format)
	}
	mw, err := convert.ParseMaxWidth(f.width)
	if err != nil {
		return image.FormatNone, nil, err
	}
	opts := []convert.Option{
		convert.WithMaxWidth(int(mw)),
		convert.WithQuality(f.quality),
		convert.WithOutputDir(f.outDir),
	}
	return format, opts, nil
}

// resultLine renders one item, tagging lossy outputs with their quality.
func resultLine(res convert.Result, format image.Format, q image.Quality) string {
	s := res.String()
	if res.OK && format.IsLossy() {
		s += fmt.Sprintf(" [Q:%d]", q)
	}
	return s
}

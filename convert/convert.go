package convert

import (
	"fmt"

	"github.com/go-imsto/imconv/image"
	zlog "github.com/go-imsto/imconv/log"
	"github.com/go-imsto/imconv/utils"
)

func logger() zlog.Logger {
	return zlog.Get()
}

// Convert decodes req.Source, shrinks it to req.MaxWidth, flattens alpha for
// JPEG and writes the encoded result to req.OutputPath(). It never panics
// past this boundary and writes nothing when it fails.
func Convert(req Request) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			logger().Errorw("convert panic", "src", req.Source, "panic", r)
			res = failed(req.Source, newError(DecodeError, req.Source, fmt.Errorf("%v", r)))
		}
	}()

	if !req.Format.Valid() {
		return failed(req.Source, newError(EncodeError, req.Source,
			fmt.Errorf("%w: %q", image.ErrorFormat, req.Format)))
	}

	im, err := image.OpenFile(req.Source)
	if err != nil {
		logger().Infow("open fail", "src", req.Source, "err", err)
		return failed(req.Source, newError(DecodeError, req.Source, err))
	}

	m := image.FitWidth(im.Image(), req.MaxWidth)
	if req.Format.Codec() == image.JPEG {
		m = image.Flatten(m)
	}

	wopt := image.WriteOption{Format: req.Format, Quality: image.ClampQuality(int(req.Quality))}
	data, err := image.Encode(m, wopt)
	if err != nil {
		logger().Infow("encode fail", "src", req.Source, "opt", wopt, "err", err)
		return failed(req.Source, newError(EncodeError, req.Source, err))
	}

	out := req.OutputPath()
	if err = utils.SaveFile(out, data); err != nil {
		logger().Warnw("write fail", "out", out, "err", err)
		return failed(req.Source, newError(IOError, out, err))
	}

	b := m.Bounds()
	logger().Debugw("converted", "src", req.Source, "attr", im.Attr, "out", out, "opt", wopt, "size", len(data))
	return Result{
		OK:     true,
		Source: req.Source,
		Output: out,
		Width:  uint(b.Dx()),
		Height: uint(b.Dy()),
	}
}

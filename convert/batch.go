package convert

import (
	"context"
	"os"
	"path/filepath"

	"github.com/go-imsto/imconv/image"
	"github.com/go-imsto/imconv/utils"
)

// BatchRequest applies the same Request template to every image of Dir.
type BatchRequest struct {
	Dir     string `json:"dir"`
	Pattern string `json:"pattern"`
	Request
}

// NewBatchRequest ...
func NewBatchRequest(dir, pattern string, format image.Format, opts ...Option) BatchRequest {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return BatchRequest{
		Dir:     dir,
		Pattern: pattern,
		Request: NewRequest("", format, opts...),
	}
}

// ProgressFunc is called after each item; index is 1-based.
type ProgressFunc func(index, total int, res Result)

// Collect lists the images of dir whose base name matches pattern, in
// lexical order. Sub-directories and non-image extensions are skipped.
func Collect(dir, pattern string) ([]string, error) {
	if !utils.IsDir(dir) {
		return nil, newError(InputError, dir, ErrNotDir)
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, newError(InputError, pattern, err)
	}

	// ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(InputError, dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if ok, _ := filepath.Match(pattern, name); !ok {
			continue
		}
		if !image.IsSupportedExt(filepath.Ext(name)) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	return files, nil
}

// Batch converts every file Collect finds. A failing item is counted and the
// loop goes on; ctx is checked between items. The returned summary is never nil.
func Batch(ctx context.Context, br BatchRequest, progress ProgressFunc) (*Summary, error) {
	sum := &Summary{}
	files, err := Collect(br.Dir, br.Pattern)
	if err != nil {
		logger().Infow("collect fail", "dir", br.Dir, "pattern", br.Pattern, "err", err)
		return sum, err
	}
	if len(files) == 0 {
		logger().Infow("no images", "dir", br.Dir, "pattern", br.Pattern)
		return sum, newError(InputError, br.Dir, ErrNoImages)
	}

	sum.Total = len(files)
	logger().Infow("batch start", "dir", br.Dir, "total", sum.Total, "format", br.Format,
		"maxWidth", br.MaxWidth, "quality", br.Quality, "outDir", br.OutputDir)
	for i, name := range files {
		if err = ctx.Err(); err != nil {
			sum.Canceled = true
			logger().Infow("batch canceled", "dir", br.Dir, "done", sum.Done(), "total", sum.Total)
			return sum, err
		}
		req := br.Request
		req.Source = name
		res := Convert(req)
		sum.Add(res)
		if progress != nil {
			progress(i+1, sum.Total, res)
		}
	}
	logger().Infow("batch done", "dir", br.Dir, "succeeded", sum.Succeeded, "failed", sum.Failed)
	return sum, nil
}

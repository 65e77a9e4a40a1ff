package convert

import (
	"fmt"
	"path/filepath"
)

// Result is the outcome of one Convert call.
type Result struct {
	OK     bool   `json:"ok"`
	Source string `json:"source"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
	Width  uint   `json:"width,omitempty"`
	Height uint   `json:"height,omitempty"`

	Err error `json:"-"`
}

func (r Result) String() string {
	if r.OK {
		return fmt.Sprintf("✓ Converted: %s → %s (%dx%d)",
			filepath.Base(r.Source), filepath.Base(r.Output), r.Width, r.Height)
	}
	return fmt.Sprintf("✗ Error converting %s: %s", r.Source, r.Error)
}

func failed(src string, err *Error) Result {
	return Result{Source: src, Error: err.Err.Error(), Err: err}
}

// Summary tallies a batch. Succeeded+Failed == Total unless Canceled.
type Summary struct {
	Total     int      `json:"total"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Canceled  bool     `json:"canceled,omitempty"`
	Items     []Result `json:"items"`
}

// Add counts r.
func (s *Summary) Add(r Result) {
	if r.OK {
		s.Succeeded++
	} else {
		s.Failed++
	}
	s.Items = append(s.Items, r)
}

// Done is the number of items processed so far.
func (s *Summary) Done() int {
	return s.Succeeded + s.Failed
}

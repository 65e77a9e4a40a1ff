package convert

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind uint8

const (
	KindNone Kind = iota
	InputError
	DecodeError
	EncodeError
	IOError
)

func (k Kind) String() string {
	switch k {
	case InputError:
		return "input"
	case DecodeError:
		return "decode"
	case EncodeError:
		return "encode"
	case IOError:
		return "io"
	}
	return "none"
}

var (
	ErrNotDir   = errors.New("not a valid directory")
	ErrNoImages = errors.New("no image files found")
)

// Error ...
type Error struct {
	Kind Kind
	Path string
	Err  error
}

// Error ...
func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %s: %s", e.Kind, e.Path, e.Err)
}

// Unwrap ...
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

package image

import (
	"errors"
)

var (
	ErrorFormat = errors.New("Invalid or unsupported Image Format")
	ErrEmpty    = errors.New("empty image")
)

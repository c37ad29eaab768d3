package render

import "errors"

var (
	// ErrInvalidSize is returned when the requested pixel size falls outside
	// the supported range.
	ErrInvalidSize = errors.New("invalid image size")

	// ErrInvalidColor is returned when a color value is not a #RGB or
	// #RRGGBB hex string.
	ErrInvalidColor = errors.New("invalid hex color")
)

package sprite

import "errors"

var (
	// ErrEmptyContent indicates a fully transparent result with nothing to crop.
	ErrEmptyContent = errors.New("nothing to crop: image has no opaque content")
	// ErrMalformedBuffer indicates a pixel slice that does not match its dimensions.
	ErrMalformedBuffer = errors.New("malformed buffer")
	// ErrInvalidThickness indicates an edge thickness below one pixel.
	ErrInvalidThickness = errors.New("edge thickness must be at least 1")
)

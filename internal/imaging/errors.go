package imaging

import "errors"

var (
	// ErrFileNotFound is returned when an image path does not resolve to a readable file.
	ErrFileNotFound = errors.New("image file not found")

	// ErrDecode is returned when file content is not a supported image encoding.
	ErrDecode = errors.New("image decode failed")

	// ErrShape is returned when an array's dimensionality or channel count is
	// incompatible with the requested conversion.
	ErrShape = errors.New("unsupported array shape")

	// ErrInvalidSize is returned when a resize target has a non-positive dimension.
	ErrInvalidSize = errors.New("invalid target size")
)

// Package imaging converts between decoded images and numeric pixel arrays.
//
// The package loads image files, resizes them under two distinct policies,
// converts them to dense float64 arrays and back, and reduces color arrays
// to grayscale luma. All functions work with standard Go image.Image values
// and are stateless: nothing is cached between calls.
//
// # Array Layout
//
// Arrays are row-major with the shape ordered the way image rows are read:
//   - Color: (height, width, channels), channels is 3 (RGB) or 4 (RGBA)
//   - Grayscale: (height, width)
//
// Element (y, x, c) lives at Data[(y*width+x)*channels+c]. Values keep the
// native range of the source encoding; no normalization is applied.
//
// # Numeric Interpretations
//
// FloatArray holds float64 values used during computation. ByteArray holds
// the unsigned 8-bit values used for re-encoding. Converting a FloatArray to
// bytes truncates toward zero and then wraps modulo 256, the same result an
// integer cast produces:
//
//	255.9 -> 255
//	256   -> 0
//	300   -> 44
//	-1    -> 255
//	NaN   -> 0
//
// # Resize Policies
//
// ResizeToFit and ResizeExact are not interchangeable. ResizeToFit keeps the
// aspect ratio and never upscales; ResizeExact stretches to the requested
// dimensions. Both use the Lanczos filter.
//
// # Error Handling
//
// Failures are reported through sentinel errors that callers can match with
// errors.Is:
//   - ErrFileNotFound: the path does not resolve to a readable file
//   - ErrDecode: the file content is not a supported image encoding
//   - ErrShape: array dimensionality or channel count is not supported
//   - ErrInvalidSize: a resize target is not positive
package imaging

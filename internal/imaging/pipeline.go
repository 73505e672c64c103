package imaging

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// DefaultScale is the resize factor LoadResizeConvert uses when none is given.
const DefaultScale = 0.25

// Displayer shows an array to the user. Implementations live in the display
// package; Converter only needs the side effect.
type Displayer interface {
	Show(ctx context.Context, arr *FloatArray) error
}

// ConvertOptions controls LoadResizeConvert.
type ConvertOptions struct {
	// Scale multiplies both image dimensions. Zero selects DefaultScale.
	Scale float64

	// Grayscale reduces the array to (height, width) luma values.
	Grayscale bool
}

// Converter bundles the load, resize, convert and display steps with the
// collaborators they log to and render through.
//
// A Converter holds no per-call state and is safe for concurrent use when its
// Displayer is.
type Converter struct {
	logger  zerolog.Logger
	display Displayer
}

// NewConverter returns a Converter that logs to logger and shows results
// through display. A nil display skips rendering.
func NewConverter(logger zerolog.Logger, display Displayer) *Converter {
	return &Converter{
		logger:  logger,
		display: display,
	}
}

// Conversion is the outcome of Converter.Convert.
type Conversion struct {
	// OriginalWidth and OriginalHeight are the decoded image's size before
	// resizing.
	OriginalWidth  int
	OriginalHeight int

	// Array is the resized, converted and truncated array.
	Array *FloatArray
}

// LoadResizeConvert loads directory/filename, resizes it to exactly
// (round(width*scale), round(height*scale)), converts it to an array,
// optionally reduces it to grayscale, and truncates every value toward zero.
//
// The original and new dimensions are logged in the form
//
//	Original image dims: (400, 300) New dims: (150, 200, 3)
//
// where the original is (width, height) and the new value is the array shape.
// The resulting array is then shown through the Converter's Displayer.
//
// The resize always uses ResizeExact and values are truncated rather than
// rounded; callers relying on the output depend on both.
//
// # Errors
//
//   - ErrFileNotFound, ErrDecode from loading
//   - ErrInvalidSize if the scaled size rounds to zero, exceeds MaxPixels,
//     or scale is not a positive finite number
//   - Any error returned by the Displayer
func (c *Converter) LoadResizeConvert(ctx context.Context, filename, directory string, opts ConvertOptions) (*FloatArray, error) {
	conv, err := c.Convert(ctx, filename, directory, opts)
	if err != nil {
		return nil, err
	}
	return conv.Array, nil
}

// Convert is LoadResizeConvert but also reports the size of the source image.
func (c *Converter) Convert(ctx context.Context, filename, directory string, opts ConvertOptions) (*Conversion, error) {
	scale := opts.Scale
	if scale == 0 {
		scale = DefaultScale
	}
	if scale < 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale %v", ErrInvalidSize, scale)
	}

	img, err := LoadImage(filename, directory)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	fw := math.Round(float64(bounds.Dx()) * scale)
	fh := math.Round(float64(bounds.Dy()) * scale)
	if fw*fh > MaxPixels {
		return nil, fmt.Errorf("%w: scale %v gives %vx%v, over %d pixels", ErrInvalidSize, scale, fw, fh, MaxPixels)
	}
	width, height := int(fw), int(fh)

	small, err := ResizeExact(img, width, height)
	if err != nil {
		return nil, err
	}

	arr := ToArray(small)
	if opts.Grayscale {
		if arr, err = ToGrayscale(arr); err != nil {
			return nil, err
		}
	}
	arr = arr.Trunc()

	c.logger.Info().
		Ints("original_dims", []int{bounds.Dx(), bounds.Dy()}).
		Ints("new_dims", arr.Shape).
		Msgf("Original image dims: (%d, %d) New dims: %s", bounds.Dx(), bounds.Dy(), arr.ShapeString())

	if c.display != nil {
		c.logger.Info().Msg("Displaying new image...")
		if err := c.display.Show(ctx, arr); err != nil {
			return nil, fmt.Errorf("display converted image: %w", err)
		}
	}

	return &Conversion{
		OriginalWidth:  bounds.Dx(),
		OriginalHeight: bounds.Dy(),
		Array:          arr,
	}, nil
}

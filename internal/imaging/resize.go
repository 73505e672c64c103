package imaging

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// ResizeToFit scales img down so that it fits within maxWidth x maxHeight,
// preserving the aspect ratio.
//
// The image is never upscaled: if it already fits, a copy at the original size
// is returned. The Lanczos filter is used for downsampling. The result keeps
// the source's grayscale or opaque color model so ToArray yields the same
// channel layout before and after resizing.
//
// Resampling runs at 8 bits per channel. A *image.Gray16 source comes back as
// *image.Gray16 but its values are multiples of 257, so 16-bit precision is
// lost. The same holds for ResizeExact.
//
// Returns ErrInvalidSize if either bound is not positive.
func ResizeToFit(img image.Image, maxWidth, maxHeight int) (image.Image, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("%w: fit bound %dx%d", ErrInvalidSize, maxWidth, maxHeight)
	}
	return matchModel(img, imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)), nil
}

// MaxPixels bounds the pixel count ResizeExact will allocate.
const MaxPixels = 1 << 26

// ResizeExact resamples img to exactly width x height with the Lanczos
// filter, ignoring the original aspect ratio. It may upscale or downscale.
//
// Returns ErrInvalidSize if either dimension is not positive or the target
// holds more than MaxPixels pixels.
func ResizeExact(img image.Image, width, height int) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: target %dx%d", ErrInvalidSize, width, height)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: target %dx%d exceeds %d pixels", ErrInvalidSize, width, height, MaxPixels)
	}
	return matchModel(img, imaging.Resize(img, width, height, imaging.Lanczos)), nil
}

// matchModel converts a resampled NRGBA image back to the source's grayscale
// model, or pins alpha to opaque when the source had no transparency.
// Lanczos weights can leave alpha a rounding step below 255 otherwise.
func matchModel(src image.Image, dst *image.NRGBA) image.Image {
	switch src.(type) {
	case *image.Gray:
		gray := image.NewGray(dst.Bounds())
		draw.Draw(gray, gray.Bounds(), dst, dst.Bounds().Min, draw.Src)
		return gray
	case *image.Gray16:
		gray := image.NewGray16(dst.Bounds())
		draw.Draw(gray, gray.Bounds(), dst, dst.Bounds().Min, draw.Src)
		return gray
	}

	if isOpaque(src) {
		for i := 3; i < len(dst.Pix); i += 4 {
			dst.Pix[i] = 0xff
		}
	}
	return dst
}

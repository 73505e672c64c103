package imaging

import (
	"fmt"
	"image"
	"image/color"
)

// ToArray converts an image into a dense float64 array in the native value
// range of its encoding.
//
// Shape and channel layout follow the image's color model:
//   - *image.Gray: (height, width), values 0-255
//   - *image.Gray16: (height, width), values 0-65535
//   - opaque color images: (height, width, 3), RGB values 0-255
//   - color images with transparency: (height, width, 4), non-premultiplied
//     RGBA values 0-255
//
// 16-bit color images are reduced to 8 bits per channel. The array origin is
// the image's Bounds().Min, so row 0 is the top row of the image.
func ToArray(img image.Image) *FloatArray {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.Gray:
		arr := NewFloatArray(h, w)
		for y := 0; y < h; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < w; x++ {
				arr.Data[y*w+x] = float64(row[x])
			}
		}
		return arr
	case *image.Gray16:
		arr := NewFloatArray(h, w)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				arr.Data[y*w+x] = float64(src.Gray16At(bounds.Min.X+x, bounds.Min.Y+y).Y)
			}
		}
		return arr
	}

	channels := 3
	if !isOpaque(img) {
		channels = 4
	}

	arr := NewFloatArray(h, w, channels)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			arr.Data[i] = float64(c.R)
			arr.Data[i+1] = float64(c.G)
			arr.Data[i+2] = float64(c.B)
			if channels == 4 {
				arr.Data[i+3] = float64(c.A)
			}
			i += channels
		}
	}
	return arr
}

// ToImage converts an array back into an image after casting every value to
// uint8 with CastUint8.
//
// Arrays with three dimensions are color images: 3 channels produce an opaque
// *image.RGBA and 4 channels produce an *image.NRGBA. Two-dimensional arrays
// produce an *image.Gray.
//
// # Errors
//
// Returns ErrShape if the array has fewer than 2 or more than 3 dimensions,
// has a channel count other than 3 or 4, or its data length does not match
// its shape.
func ToImage(arr *FloatArray) (image.Image, error) {
	if err := arr.Validate(); err != nil {
		return nil, err
	}
	return bytesToImage(arr.Bytes())
}

// ToImageBytes is ToImage for arrays that are already unsigned 8-bit.
func ToImageBytes(arr *ByteArray) (image.Image, error) {
	if err := arr.Validate(); err != nil {
		return nil, err
	}
	return bytesToImage(arr)
}

func bytesToImage(arr *ByteArray) (image.Image, error) {
	switch arr.Ndim() {
	case 2:
		h, w := arr.Shape[0], arr.Shape[1]
		img := image.NewGray(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+w], arr.Data[y*w:(y+1)*w])
		}
		return img, nil
	case 3:
		h, w, c := arr.Shape[0], arr.Shape[1], arr.Shape[2]
		switch c {
		case 3:
			img := image.NewRGBA(image.Rect(0, 0, w, h))
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					s := arr.Data[(y*w+x)*3:]
					d := img.Pix[y*img.Stride+x*4:]
					d[0], d[1], d[2], d[3] = s[0], s[1], s[2], 0xff
				}
			}
			return img, nil
		case 4:
			img := image.NewNRGBA(image.Rect(0, 0, w, h))
			for y := 0; y < h; y++ {
				copy(img.Pix[y*img.Stride:y*img.Stride+w*4], arr.Data[y*w*4:(y+1)*w*4])
			}
			return img, nil
		default:
			return nil, fmt.Errorf("%w: %d channels, want 3 or 4", ErrShape, c)
		}
	default:
		return nil, fmt.Errorf("%w: %d dimensions, want 2 or 3", ErrShape, arr.Ndim())
	}
}

// channelCount reports the channel count ToArray produces for img.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if isOpaque(img) {
		return 3
	}
	return 4
}

// isOpaque reports whether every pixel of img is fully opaque.
func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

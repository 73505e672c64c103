package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// PixelSample holds the array values at one pixel along with its display color.
type PixelSample struct {
	// Row and Col index the pixel the same way ToArray does: Row is the
	// first array axis (y), Col the second (x).
	Row int `json:"row"`
	Col int `json:"col"`

	// Values are the channel values ToArray would report at (Row, Col).
	// Grayscale images yield a single value.
	Values []float64 `json:"values"`

	// Hex is the pixel color as "#rrggbb" with alpha excluded.
	Hex string `json:"hex"`

	// HSL is the pixel color in HSL space.
	HSL HSLColor `json:"hsl"`
}

// SamplePixel reads the pixel at (row, col).
//
// Returns an error if the coordinates are outside the image.
func SamplePixel(img image.Image, row, col int) (*PixelSample, error) {
	bounds := img.Bounds()
	if row < 0 || col < 0 || row >= bounds.Dy() || col >= bounds.Dx() {
		return nil, fmt.Errorf("pixel (%d,%d) outside image of %d rows and %d columns",
			row, col, bounds.Dy(), bounds.Dx())
	}
	x, y := bounds.Min.X+col, bounds.Min.Y+row

	var values []float64
	switch src := img.(type) {
	case *image.Gray:
		values = []float64{float64(src.GrayAt(x, y).Y)}
	case *image.Gray16:
		values = []float64{float64(src.Gray16At(x, y).Y)}
	default:
		c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		values = []float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
		values = values[:channelCount(img)]
	}

	// MakeColor reports false for fully transparent pixels; the color
	// channels of the NRGBA value still carry the stored RGB.
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
		c = colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	}
	h, s, l := c.Hsl()

	return &PixelSample{
		Row:    row,
		Col:    col,
		Values: values,
		Hex:    c.Clamped().Hex(),
		HSL:    HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}

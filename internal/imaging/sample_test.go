package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplePixel(t *testing.T) {
	img := patternImage(4, 4)

	tests := []struct {
		name     string
		row, col int
		values   []float64
		hex      string
		hsl      HSLColor
	}{
		{"red", 0, 0, []float64{255, 0, 0}, "#ff0000", HSLColor{0, 100, 50}},
		{"green", 0, 3, []float64{0, 255, 0}, "#00ff00", HSLColor{120, 100, 50}},
		{"blue", 3, 0, []float64{0, 0, 255}, "#0000ff", HSLColor{240, 100, 50}},
		{"white", 3, 3, []float64{255, 255, 255}, "#ffffff", HSLColor{0, 0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SamplePixel(img, tt.row, tt.col)
			require.NoError(t, err)
			assert.Equal(t, tt.row, got.Row)
			assert.Equal(t, tt.col, got.Col)
			assert.Equal(t, tt.values, got.Values)
			assert.Equal(t, tt.hex, got.Hex)
			assert.Equal(t, tt.hsl, got.HSL)
		})
	}
}

func TestSamplePixel_MatchesToArray(t *testing.T) {
	img := patternImage(6, 4)
	arr := ToArray(img)

	got, err := SamplePixel(img, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{arr.At(3, 1, 0), arr.At(3, 1, 1), arr.At(3, 1, 2)}, got.Values)
}

func TestSamplePixel_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	img.SetGray(1, 0, color.Gray{Y: 128})

	got, err := SamplePixel(img, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{128}, got.Values)
	assert.Equal(t, "#808080", got.Hex)
	assert.Equal(t, 0, got.HSL.S)
}

func TestSamplePixel_Transparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 0})

	got, err := SamplePixel(img, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{255, 0, 0, 0}, got.Values)
	assert.Equal(t, "#ff0000", got.Hex, "color channels survive zero alpha")
}

func TestSamplePixel_OutOfBounds(t *testing.T) {
	img := patternImage(4, 3)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}} {
		_, err := SamplePixel(img, p[0], p[1])
		assert.Errorf(t, err, "row %d col %d", p[0], p[1])
	}
}

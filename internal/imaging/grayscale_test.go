package imaging

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGrayscale_Weights(t *testing.T) {
	arr := &FloatArray{
		Shape: []int{1, 4, 3},
		Data: []float64{
			255, 0, 0,
			0, 255, 0,
			0, 0, 255,
			255, 255, 255,
		},
	}

	gray, err := ToGrayscale(arr)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4}, gray.Shape)

	assert.InDelta(t, 76.245, gray.Data[0], 1e-9)
	assert.InDelta(t, 149.685, gray.Data[1], 1e-9)
	assert.InDelta(t, 29.07, gray.Data[2], 1e-9)
	assert.InDelta(t, 255.0, gray.Data[3], 1e-9)
}

func TestToGrayscale_RandomPixels(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	arr := NewFloatArray(5, 7, 3)
	for i := range arr.Data {
		arr.Data[i] = rng.Float64() * 255
	}

	gray, err := ToGrayscale(arr)
	require.NoError(t, err)
	require.Equal(t, []int{5, 7}, gray.Shape)

	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			want := 0.299*arr.At(y, x, 0) + 0.587*arr.At(y, x, 1) + 0.114*arr.At(y, x, 2)
			assert.InDelta(t, want, gray.At(y, x), 1e-9)
		}
	}
}

func TestToGrayscale_IgnoresExtraChannels(t *testing.T) {
	arr := &FloatArray{Shape: []int{1, 1, 4}, Data: []float64{100, 150, 200, 0}}

	gray, err := ToGrayscale(arr)
	require.NoError(t, err)
	assert.InDelta(t, 0.299*100+0.587*150+0.114*200, gray.Data[0], 1e-9, "alpha is dropped, not blended")
}

func TestToGrayscale_ShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		arr  *FloatArray
	}{
		{"2-d", NewFloatArray(3, 3)},
		{"1 channel", NewFloatArray(3, 3, 1)},
		{"2 channels", NewFloatArray(3, 3, 2)},
		{"4-d", NewFloatArray(1, 3, 3, 3)},
		{"data mismatch", &FloatArray{Shape: []int{1, 1, 3}, Data: []float64{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToGrayscale(tt.arr)
			assert.ErrorIs(t, err, ErrShape)
		})
	}
}

package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorgonia.org/tensor"
)

func TestFloatArray_Dense(t *testing.T) {
	arr := &FloatArray{Shape: []int{2, 3}, Data: []float64{1, 2, 3, 4, 5, 6}}

	dense, err := arr.Dense()
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, dense.Shape())

	v, err := dense.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	arr.Data[0] = 100
	v, err = dense.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "tensor owns a copy")

	back, err := FromDense(dense)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, back.Shape)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, back.Data)
}

func TestFloatArray_Dense_Errors(t *testing.T) {
	_, err := (&FloatArray{}).Dense()
	assert.ErrorIs(t, err, ErrShape)

	_, err = (&FloatArray{Shape: []int{2, 2}, Data: []float64{1}}).Dense()
	assert.ErrorIs(t, err, ErrShape)
}

func TestFromDense_WrongDtype(t *testing.T) {
	dense := tensor.New(tensor.WithShape(2), tensor.WithBacking([]float32{1, 2}))

	_, err := FromDense(dense)
	assert.ErrorIs(t, err, ErrShape)
}

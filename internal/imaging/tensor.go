package imaging

import (
	"fmt"

	"gorgonia.org/tensor"
)

// Dense copies the array into a float64 gorgonia tensor with the same shape.
func (a *FloatArray) Dense() (*tensor.Dense, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if a.Ndim() == 0 {
		return nil, fmt.Errorf("%w: cannot build a tensor from a 0-dimensional array", ErrShape)
	}

	data := make([]float64, len(a.Data))
	copy(data, a.Data)
	return tensor.New(tensor.WithShape(a.Shape...), tensor.WithBacking(data)), nil
}

// FromDense copies a float64 tensor into a FloatArray.
//
// Sliced views share a larger backing array and must be materialized by the
// caller first; their data length does not match their shape and is rejected
// with ErrShape.
func FromDense(t *tensor.Dense) (*FloatArray, error) {
	if t.Dtype() != tensor.Float64 {
		return nil, fmt.Errorf("%w: tensor dtype %v, want float64", ErrShape, t.Dtype())
	}
	data, ok := t.Data().([]float64)
	if !ok {
		return nil, fmt.Errorf("%w: tensor has no float64 backing slice", ErrShape)
	}

	arr := &FloatArray{
		Shape: append([]int(nil), t.Shape()...),
		Data:  append([]float64(nil), data...),
	}
	if err := arr.Validate(); err != nil {
		return nil, err
	}
	return arr, nil
}

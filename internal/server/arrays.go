package server

import (
	"fmt"

	"github.com/ironsheep/image-array-mcp/internal/imaging"
)

// arrayFromNested converts decoded JSON nested lists of numbers into a
// FloatArray. The shape is taken from the first element at each depth and
// every other element must match it.
func arrayFromNested(v interface{}) (*imaging.FloatArray, error) {
	var shape []int
	for cur := v; ; {
		list, ok := cur.([]interface{})
		if !ok {
			break
		}
		shape = append(shape, len(list))
		if len(list) == 0 {
			break
		}
		cur = list[0]
	}

	arr := &imaging.FloatArray{Shape: shape}
	if err := flatten(v, shape, &arr.Data); err != nil {
		return nil, err
	}
	return arr, nil
}

func flatten(v interface{}, shape []int, out *[]float64) error {
	if len(shape) == 0 {
		n, ok := v.(float64)
		if !ok {
			return fmt.Errorf("%w: expected a number, got %T", imaging.ErrShape, v)
		}
		*out = append(*out, n)
		return nil
	}

	list, ok := v.([]interface{})
	if !ok || len(list) != shape[0] {
		return fmt.Errorf("%w: ragged nested array", imaging.ErrShape)
	}
	for _, item := range list {
		if err := flatten(item, shape[1:], out); err != nil {
			return err
		}
	}
	return nil
}

package imaging

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FloatArray is a dense row-major array of float64 pixel values.
//
// Shape is (height, width, channels) for color images or (height, width) for
// grayscale. Data holds exactly the product of Shape entries.
type FloatArray struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// ByteArray is the unsigned 8-bit counterpart of FloatArray, used when
// pixels are handed to an encoder.
type ByteArray struct {
	Shape []int   `json:"shape"`
	Data  []uint8 `json:"data"`
}

// NewFloatArray allocates a zero-filled array with the given shape.
// It panics if any dimension is negative.
func NewFloatArray(shape ...int) *FloatArray {
	return &FloatArray{
		Shape: append([]int(nil), shape...),
		Data:  make([]float64, shapeSize(shape)),
	}
}

// Ndim returns the number of dimensions.
func (a *FloatArray) Ndim() int { return len(a.Shape) }

// Height returns the first dimension, or 0 for arrays with no dimensions.
func (a *FloatArray) Height() int { return dim(a.Shape, 0) }

// Width returns the second dimension, or 0 for arrays with fewer than two.
func (a *FloatArray) Width() int { return dim(a.Shape, 1) }

// Channels returns the size of the third dimension, or 1 for 2-D arrays.
func (a *FloatArray) Channels() int {
	if len(a.Shape) < 3 {
		return 1
	}
	return a.Shape[2]
}

// At returns the element at the given index. It panics if the index does not
// match the array's shape.
func (a *FloatArray) At(index ...int) float64 {
	return a.Data[offset(a.Shape, index)]
}

// Set stores v at the given index.
func (a *FloatArray) Set(v float64, index ...int) {
	a.Data[offset(a.Shape, index)] = v
}

// Validate reports ErrShape if Data does not hold exactly the number of
// elements Shape describes.
func (a *FloatArray) Validate() error {
	return validateShape(a.Shape, len(a.Data))
}

// Trunc returns a copy with every value truncated toward zero, the result an
// integer cast gives. The values stay float64 so the shape and layout are
// unchanged.
func (a *FloatArray) Trunc() *FloatArray {
	out := &FloatArray{
		Shape: append([]int(nil), a.Shape...),
		Data:  make([]float64, len(a.Data)),
	}
	for i, v := range a.Data {
		out.Data[i] = math.Trunc(v)
	}
	return out
}

// Bytes converts every value to uint8 using CastUint8.
func (a *FloatArray) Bytes() *ByteArray {
	out := &ByteArray{
		Shape: append([]int(nil), a.Shape...),
		Data:  make([]uint8, len(a.Data)),
	}
	for i, v := range a.Data {
		out.Data[i] = CastUint8(v)
	}
	return out
}

// ShapeString formats the shape as a parenthesized tuple, e.g. "(150, 200, 3)".
func (a *FloatArray) ShapeString() string {
	return formatShape(a.Shape)
}

// Ndim returns the number of dimensions.
func (b *ByteArray) Ndim() int { return len(b.Shape) }

// Validate reports ErrShape if Data does not match Shape.
func (b *ByteArray) Validate() error {
	return validateShape(b.Shape, len(b.Data))
}

// Floats widens every value to float64. The conversion is exact.
func (b *ByteArray) Floats() *FloatArray {
	out := &FloatArray{
		Shape: append([]int(nil), b.Shape...),
		Data:  make([]float64, len(b.Data)),
	}
	for i, v := range b.Data {
		out.Data[i] = float64(v)
	}
	return out
}

// CastUint8 converts v to an unsigned 8-bit value the way an integer cast
// does: the fractional part is truncated toward zero and the integer is then
// wrapped modulo 256. NaN and infinities map to 0.
//
//	CastUint8(255.9) == 255
//	CastUint8(256)   == 0
//	CastUint8(300)   == 44
//	CastUint8(-1)    == 255
//	CastUint8(-0.5)  == 0
func CastUint8(v float64) uint8 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(v), 256)
	if m < 0 {
		m += 256
	}
	return uint8(m)
}

func shapeSize(shape []int) int {
	n := 1
	for _, d := range shape {
		if d < 0 {
			panic(fmt.Sprintf("imaging: negative dimension in shape %v", shape))
		}
		if d > 0 && n > math.MaxInt/d {
			panic(fmt.Sprintf("imaging: shape %v overflows int", shape))
		}
		n *= d
	}
	return n
}

func validateShape(shape []int, n int) error {
	size := 1
	for _, d := range shape {
		if d < 0 {
			return fmt.Errorf("%w: negative dimension in %s", ErrShape, formatShape(shape))
		}
		if d > 0 && size > math.MaxInt/d {
			return fmt.Errorf("%w: shape %s is too large", ErrShape, formatShape(shape))
		}
		size *= d
	}
	if size != n {
		return fmt.Errorf("%w: shape %s needs %d elements, have %d", ErrShape, formatShape(shape), size, n)
	}
	return nil
}

func offset(shape, index []int) int {
	if len(index) != len(shape) {
		panic(fmt.Sprintf("imaging: index %v does not match shape %v", index, shape))
	}
	off := 0
	for i, idx := range index {
		if idx < 0 || idx >= shape[i] {
			panic(fmt.Sprintf("imaging: index %v out of range for shape %v", index, shape))
		}
		off = off*shape[i] + idx
	}
	return off
}

func dim(shape []int, i int) int {
	if i < len(shape) {
		return shape[i]
	}
	return 0
}

func formatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, d := range shape {
		parts[i] = strconv.Itoa(d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

package imaging

import "fmt"

// ITU-R BT.601 luma weights.
const (
	LumaRed   = 0.299
	LumaGreen = 0.587
	LumaBlue  = 0.114
)

// ToGrayscale reduces a (height, width, channels) color array to a
// (height, width) luma array:
//
//	gray = 0.299*R + 0.587*G + 0.114*B
//
// Only the first three channels contribute; alpha or any further channel is
// dropped, not blended.
//
// Returns ErrShape unless the array has exactly three dimensions with at least
// three channels.
func ToGrayscale(arr *FloatArray) (*FloatArray, error) {
	if err := arr.Validate(); err != nil {
		return nil, err
	}
	if arr.Ndim() != 3 {
		return nil, fmt.Errorf("%w: grayscale needs (height, width, channels), got %s", ErrShape, arr.ShapeString())
	}
	c := arr.Channels()
	if c < 3 {
		return nil, fmt.Errorf("%w: grayscale needs at least 3 channels, got %d", ErrShape, c)
	}

	h, w := arr.Height(), arr.Width()
	out := NewFloatArray(h, w)
	for i := range out.Data {
		p := arr.Data[i*c : i*c+3]
		out.Data[i] = LumaRed*p[0] + LumaGreen*p[1] + LumaBlue*p[2]
	}
	return out, nil
}

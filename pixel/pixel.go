// Package pixel converts between channel-last sample arrays and the packed
// 32-bit ARGB buffers consumed by the xBRZ library.
//
// A Tensor has shape (height, width, channels) with channels 3 (RGB) or 4
// (RGBA), stored row-major. A packed buffer holds one uint32 per pixel,
// alpha in the most significant byte and blue in the least:
//
//	A<<24 | R<<16 | G<<8 | B
package pixel

import (
	"fmt"
	"strings"
)

// Sample is the set of element types a Tensor may hold. Non-uint8 samples
// are coerced to uint8 when packed.
type Sample interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~float32 | ~float64
}

// Tensor is a row-major, channel-last array of samples.
type Tensor[T Sample] struct {
	Shape []int
	Data  []T
}

// Image is a tensor of 8-bit samples.
type Image = Tensor[uint8]

// NewImage allocates a zeroed image of the given shape.
func NewImage(height, width, channels int) Image {
	return Image{
		Shape: []int{height, width, channels},
		Data:  make([]uint8, height*width*channels),
	}
}

// Dims returns height, width and channels, or zeros if the tensor is not
// three-dimensional.
func (t Tensor[T]) Dims() (height, width, channels int) {
	if len(t.Shape) != 3 {
		return 0, 0, 0
	}
	return t.Shape[0], t.Shape[1], t.Shape[2]
}

// At returns the samples of the pixel at (x, y).
func (t Tensor[T]) At(x, y int) []T {
	_, w, c := t.Dims()
	i := (y*w + x) * c
	return t.Data[i : i+c : i+c]
}

// formatShape renders a shape the way array libraries print it: (4, 4, 3),
// with a trailing comma for one axis.
func formatShape(shape []int) string {
	parts := make([]string, len(shape))
	for i, n := range shape {
		parts[i] = fmt.Sprint(n)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

package xbrzscale

import (
	"fmt"
	"image"
	"math"

	"github.com/obinnaokechukwu/xbrzscale/internal/bindings"
	"github.com/obinnaokechukwu/xbrzscale/internal/logging"
	"github.com/obinnaokechukwu/xbrzscale/pixel"
)

// Valid scale factors.
const (
	MinScale = 2
	MaxScale = 6
)

// Native is the foreign-function boundary: the two entry points of the
// xBRZ library.
//
// Scale reads width*height packed ARGB pixels from src and writes
// width*height*factor*factor pixels into dst, returning 0 on success.
// Version returns the library's version bytes.
type Native interface {
	Scale(src, dst []uint32, width, height, factor int32) int32
	Version() string
}

// loadNative returns the process-wide library.
func loadNative() (Native, error) {
	lib, err := bindings.Load()
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// ScaleImage scales img by factor with the native library, loading it on
// first use. img must have shape (height, width, 3|4); RGB input gets an
// opaque alpha channel. The result has shape (height*factor, width*factor, 4)
// in RGBA order.
//
// The native call blocks the calling goroutine until it completes and cannot
// be cancelled. Calls are not serialized: concurrent use is only safe if the
// native library is re-entrant.
func ScaleImage[T pixel.Sample](img pixel.Tensor[T], factor int) (pixel.Image, error) {
	return scaleImage(loadNative, img, factor)
}

// ScaleImageWith is ScaleImage against an explicit Native implementation.
func ScaleImageWith[T pixel.Sample](lib Native, img pixel.Tensor[T], factor int) (pixel.Image, error) {
	return scaleImage(func() (Native, error) { return lib, nil }, img, factor)
}

// ScaleNRGBA scales any image.Image and returns the result as *image.NRGBA.
func ScaleNRGBA(img image.Image, factor int) (*image.NRGBA, error) {
	out, err := ScaleImage(pixel.FromImage(img), factor)
	if err != nil {
		return nil, err
	}
	return pixel.ToNRGBA(out)
}

func scaleImage[T pixel.Sample](load func() (Native, error), img pixel.Tensor[T], factor int) (pixel.Image, error) {
	if factor < MinScale || factor > MaxScale {
		return pixel.Image{}, &ValidationError{
			Field:   "scale",
			Message: fmt.Sprintf("scale factor must be an integer between %d and %d, got %d", MinScale, MaxScale, factor),
		}
	}

	src, err := pixel.Pack(img)
	if err != nil {
		return pixel.Image{}, err
	}

	// The native ABI takes int32 sizes; bound every product before computing it.
	w, h := src.Width, src.Height
	if w > math.MaxInt32/factor || h > math.MaxInt32/factor {
		return pixel.Image{}, &ValidationError{
			Field:   "shape",
			Message: fmt.Sprintf("image %dx%d scaled by %d is too large", w, h, factor),
		}
	}
	outW, outH := w*factor, h*factor
	if outH > 0 && outW > math.MaxInt32/outH {
		return pixel.Image{}, &ValidationError{
			Field:   "shape",
			Message: fmt.Sprintf("scaled image %dx%d is too large", outW, outH),
		}
	}

	// The native library rejects empty images; there is nothing to scale.
	if w == 0 || h == 0 {
		return pixel.NewImage(outH, outW, 4), nil
	}

	dst := make([]uint32, outW*outH)

	lib, err := load()
	if err != nil {
		return pixel.Image{}, err
	}

	logging.Logger().Debug("xbrzscale: scaling",
		"width", w, "height", h, "factor", factor, "dst_pixels", len(dst))

	if status := lib.Scale(src.Pix, dst, int32(w), int32(h), int32(factor)); status != 0 {
		return pixel.Image{}, &ScalingError{Code: status}
	}

	return pixel.Unpack(dst, outW, outH)
}

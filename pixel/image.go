package pixel

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage converts any image.Image into a (height, width, 4) RGBA image
// with non-premultiplied alpha.
func FromImage(src image.Image) Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Stride != 4*w {
		dst := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
		nrgba = dst
	} else {
		// Tightly packed already; the window may still start mid-buffer.
		off := nrgba.PixOffset(b.Min.X, b.Min.Y)
		nrgba = &image.NRGBA{Pix: nrgba.Pix[off : off+4*w*h], Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	}

	out := NewImage(h, w, 4)
	copy(out.Data, nrgba.Pix)
	return out
}

// ToNRGBA converts a tensor into a new *image.NRGBA, adding opaque alpha to
// RGB input.
func ToNRGBA[T Sample](t Tensor[T]) (*image.NRGBA, error) {
	rgba, err := Normalize(t)
	if err != nil {
		return nil, err
	}
	h, w, _ := rgba.Dims()
	return &image.NRGBA{
		Pix:    rgba.Data,
		Stride: 4 * w,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}

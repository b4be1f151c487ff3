package pixel

import "math"

// Packed is a row-major buffer of packed ARGB pixels; pixel (x, y) is
// Pix[y*Width+x].
type Packed struct {
	Pix    []uint32
	Width  int
	Height int
}

// ARGB packs four 8-bit channels into one pixel.
func ARGB(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Channels unpacks a pixel into its red, green, blue and alpha channels.
func Channels(v uint32) (r, g, b, a uint8) {
	return uint8(v >> 16), uint8(v >> 8), uint8(v), uint8(v >> 24)
}

// toUint8 coerces a sample to 8 bits: integers wrap modulo 256, floats are
// truncated toward zero first.
func toUint8[T Sample](v T) uint8 {
	return uint8(int64(v))
}

// Validate checks that t is a (height, width, 3|4) tensor whose data length
// matches its shape.
func Validate[T Sample](t Tensor[T]) error {
	if len(t.Shape) != 3 {
		return validationErrorf("shape",
			"image must be 3-dimensional (height, width, channels), got shape %s", formatShape(t.Shape))
	}
	h, w, c := t.Shape[0], t.Shape[1], t.Shape[2]
	if c != 3 && c != 4 {
		return validationErrorf("channels",
			"image must have 3 (RGB) or 4 (RGBA) channels, got %d", c)
	}
	if h < 0 || w < 0 {
		return validationErrorf("shape",
			"image dimensions must not be negative, got shape %s", formatShape(t.Shape))
	}
	if w > math.MaxInt/c || h > 0 && w*c > math.MaxInt/h {
		return validationErrorf("shape",
			"image shape %s is too large", formatShape(t.Shape))
	}
	if len(t.Data) != h*w*c {
		return validationErrorf("data",
			"image data has %d samples, shape %s needs %d", len(t.Data), formatShape(t.Shape), h*w*c)
	}
	return nil
}

// Normalize returns a fresh 4-channel uint8 copy of t. RGB input gets an
// opaque alpha channel.
func Normalize[T Sample](t Tensor[T]) (Image, error) {
	if err := Validate(t); err != nil {
		return Image{}, err
	}
	h, w, c := t.Dims()
	out := NewImage(h, w, 4)
	for i, j := 0, 0; i < len(t.Data); i, j = i+c, j+4 {
		out.Data[j] = toUint8(t.Data[i])
		out.Data[j+1] = toUint8(t.Data[i+1])
		out.Data[j+2] = toUint8(t.Data[i+2])
		if c == 4 {
			out.Data[j+3] = toUint8(t.Data[i+3])
		} else {
			out.Data[j+3] = 0xFF
		}
	}
	return out, nil
}

// Pack normalizes t to RGBA and packs it into ARGB pixels.
// t is not modified.
func Pack[T Sample](t Tensor[T]) (Packed, error) {
	rgba, err := Normalize(t)
	if err != nil {
		return Packed{}, err
	}
	h, w, _ := rgba.Dims()
	pix := make([]uint32, h*w)
	for i := range pix {
		s := rgba.Data[i*4 : i*4+4 : i*4+4]
		pix[i] = ARGB(s[0], s[1], s[2], s[3])
	}
	return Packed{Pix: pix, Width: w, Height: h}, nil
}

// Unpack expands packed ARGB pixels into a (height, width, 4) RGBA image.
// pix is not modified.
func Unpack(pix []uint32, width, height int) (Image, error) {
	if width < 0 || height < 0 {
		return Image{}, validationErrorf("shape",
			"packed dimensions must not be negative, got %dx%d", width, height)
	}
	if height > 0 && width > math.MaxInt/height {
		return Image{}, validationErrorf("shape",
			"packed dimensions %dx%d are too large", width, height)
	}
	if len(pix) != width*height {
		return Image{}, validationErrorf("data",
			"packed buffer has %d pixels, %dx%d needs %d", len(pix), width, height, width*height)
	}
	out := NewImage(height, width, 4)
	for i, v := range pix {
		d := out.Data[i*4 : i*4+4 : i*4+4]
		d[0], d[1], d[2], d[3] = Channels(v)
	}
	return out, nil
}

// Unpack expands p into a (Height, Width, 4) RGBA image.
func (p Packed) Unpack() (Image, error) {
	return Unpack(p.Pix, p.Width, p.Height)
}

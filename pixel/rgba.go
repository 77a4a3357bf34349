package pixel

// RGBA is a non-premultiplied 8-bit per channel pixel.
type RGBA struct {
	R, G, B, A uint8
}

var _ Pixel[RGBA] = RGBA{}

// ToVector4 widens the channels to the floating accumulation form.
func (p RGBA) ToVector4() Vector4 {
	return Vector4{
		R: float64(p.R),
		G: float64(p.G),
		B: float64(p.B),
		A: float64(p.A),
	}
}

// FromVector4 packs an accumulated vector back into an 8-bit pixel,
// rounding to nearest and clamping to [0, 255]. Negative intermediate
// values from sharpening kernels are clamped here and nowhere earlier.
func (RGBA) FromVector4(v Vector4) RGBA {
	return RGBA{
		R: clamp8(v.R),
		G: clamp8(v.G),
		B: clamp8(v.B),
		A: clamp8(v.A),
	}
}

func clamp8(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f + 0.5)
}

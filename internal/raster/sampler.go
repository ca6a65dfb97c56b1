package raster

import "image"

// WrapMode selects how texture coordinates outside [0,1] are resolved.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapClamp
)

// Sampler reads a texture with bilinear filtering. Texture coordinates are
// divided by Extent first, so pixel-addressed coordinates (a rectangle of
// 0..width, 0..height) sample the same texels as normalized ones.
type Sampler struct {
	Image  *image.NRGBA
	Wrap   WrapMode
	Extent [2]float64
}

// NewSampler returns a repeating sampler addressed in normalized coordinates.
func NewSampler(img *image.NRGBA) *Sampler {
	return &Sampler{Image: img, Extent: [2]float64{1, 1}}
}

// Pixel switches the sampler to pixel addressing.
func (s *Sampler) Pixel() *Sampler {
	b := s.Image.Bounds()
	s.Extent = [2]float64{float64(b.Dx()), float64(b.Dy())}
	return s
}

func (s *Sampler) wrap(t float64) float64 {
	if s.Wrap == WrapClamp {
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}
	t -= float64(int(t))
	if t < 0 {
		t += 1.0
	}
	return t
}

// Sample returns the filtered texel at (u, v) as RGBA in [0,1].
func (s *Sampler) Sample(u, v float64) [4]float64 {
	tex := s.Image
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()
	if w == 0 || h == 0 {
		return [4]float64{1, 1, 1, 1}
	}
	if s.Extent[0] > 0 {
		u /= s.Extent[0]
	}
	if s.Extent[1] > 0 {
		v /= s.Extent[1]
	}
	u, v = s.wrap(u), s.wrap(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := tex.Stride
	pix := tex.Pix

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	var out [4]float64
	for c := 0; c < 4; c++ {
		f := float64(pix[i00+c])*w00 + float64(pix[i10+c])*w10 + float64(pix[i01+c])*w01 + float64(pix[i11+c])*w11
		out[c] = f / 255
	}
	return out
}

package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ScreenVertex is a projected vertex with everything the rasterizer
// interpolates across a triangle.
type ScreenVertex struct {
	X, Y, Z float64
	Normal  mgl64.Vec3 // view space, unit length
	Color   [4]float64 // sRGB, 0..1
	UV      [2]float64
}

// RasterizeTriangle fills a triangle with z-buffering, Gouraud lighting,
// vertex colors modulated by an optional texture, sRGB decoding and ACES
// tone mapping. Lighting is evaluated per vertex and interpolated.
//
// This is the hot path: the pixel loop does not allocate.
func RasterizeTriangle(fb *FrameBuffer, v [3]ScreenVertex, tex *Sampler, lc *LightConfig) {
	x0, y0, z0 := v[0].X, v[0].Y, v[0].Z
	x1, y1, z1 := v[1].X, v[1].Y, v[1].Z
	x2, y2, z2 := v[2].X, v[2].Y, v[2].Z

	s0 := lc.ComputeShade(v[0].Normal)
	s1 := lc.ComputeShade(v[1].Normal)
	s2 := lc.ComputeShade(v[2].Normal)

	// Bounding box
	minX := int(math.Floor(math.Min(math.Min(x0, x1), x2)))
	maxX := int(math.Ceil(math.Max(math.Max(x0, x1), x2)))
	minY := int(math.Floor(math.Min(math.Min(y0, y1), y2)))
	maxY := int(math.Ceil(math.Max(math.Max(y0, y1), y2)))

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	c0, c1, c2 := v[0].Color, v[1].Color, v[2].Color

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			r := w0*c0[0] + w1*c1[0] + w2*c2[0]
			g := w0*c0[1] + w1*c1[1] + w2*c2[1]
			b := w0*c0[2] + w1*c1[2] + w2*c2[2]
			a := w0*c0[3] + w1*c1[3] + w2*c2[3]
			if tex != nil {
				u := w0*v[0].UV[0] + w1*v[1].UV[0] + w2*v[2].UV[0]
				t := w0*v[0].UV[1] + w1*v[1].UV[1] + w2*v[2].UV[1]
				texel := tex.Sample(u, t)
				r, g, b, a = r*texel[0], g*texel[1], b*texel[2], a*texel[3]
			}

			// Skip transparent texels
			if a < 8.0/255 {
				continue
			}
			fb.ZBuf[zIdx] = z

			shade := w0*s0 + w1*s1 + w2*s2
			pxIdx := zIdx * 4
			fb.Color[pxIdx], fb.Color[pxIdx+1], fb.Color[pxIdx+2] = lc.shadePixel(r, g, b, shade)
			fb.Color[pxIdx+3] = clamp255(a * 255)
		}
	}
}

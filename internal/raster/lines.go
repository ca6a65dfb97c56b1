package raster

import "math"

// depthBias lets lines and points drawn on top of a filled surface win the
// depth test against that same surface.
const depthBias = 1e-3

// DrawLine draws an unlit, depth-tested line with interpolated color.
func DrawLine(fb *FrameBuffer, a, b ScreenVertex) {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		fi, fs := float64(i), float64(steps)
		x := int(math.Floor(a.X + dx*fi/fs))
		y := int(math.Floor(a.Y + dy*fi/fs))
		var c [4]float64
		for k := range c {
			c[k] = a.Color[k] + (b.Color[k]-a.Color[k])*fi/fs
		}
		plot(fb, x, y, a.Z+(b.Z-a.Z)*fi/fs, c)
	}
}

// DrawPoint draws an unlit square of side 2*radius+1 centred on v.
func DrawPoint(fb *FrameBuffer, v ScreenVertex, radius int) {
	cx, cy := int(math.Floor(v.X)), int(math.Floor(v.Y))
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			plot(fb, x, y, v.Z, v.Color)
		}
	}
}

func plot(fb *FrameBuffer, x, y int, z float64, c [4]float64) {
	if !fb.inside(x, y) || c[3] < 8.0/255 {
		return
	}
	i := y*fb.Width + x
	if z+depthBias < fb.ZBuf[i] {
		return
	}
	if z > fb.ZBuf[i] {
		fb.ZBuf[i] = z
	}
	p := i * 4
	fb.Color[p] = clamp255(c[0] * 255)
	fb.Color[p+1] = clamp255(c[1] * 255)
	fb.Color[p+2] = clamp255(c[2] * 255)
	fb.Color[p+3] = clamp255(c[3] * 255)
}

package mathutil

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-12

// Normalize returns v scaled to unit length, or the zero vector when v has
// (near) zero length. mgl32's Normalize divides by zero in that case.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < Epsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// AngleDeg returns the unsigned angle between a and b in degrees (0–180).
// Zero-length inputs are treated as perpendicular.
func AngleDeg(a, b mgl32.Vec3) float32 {
	if a.Len() < Epsilon || b.Len() < Epsilon {
		return 90
	}
	return Rad2Deg(math32.Atan2(a.Cross(b).Len(), a.Dot(b)))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package mathutil

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float32) mgl32.Mat3 {
	return mgl32.Rotate3DX(a)
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float32) mgl32.Mat3 {
	return mgl32.Rotate3DY(a)
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * math32.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float32) float32 {
	return r * 180 / math32.Pi
}

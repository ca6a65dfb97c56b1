package mathutil

import "github.com/go-gl/mathgl/mgl32"

// EulerToQuat converts Euler XYZ angles in degrees to a quaternion.
func EulerToQuat(rx, ry, rz float32) mgl32.Quat {
	return mgl32.AnglesToQuat(Deg2Rad(rx), Deg2Rad(ry), Deg2Rad(rz), mgl32.XYZ)
}

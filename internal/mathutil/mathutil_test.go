package mathutil

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{}, Normalize(mgl32.Vec3{}))
	n := Normalize(mgl32.Vec3{3, 0, 4})
	assert.InDelta(t, 1, n.Len(), 1e-6)
	assert.InDelta(t, 0.6, n[0], 1e-6)
}

func TestAngleDeg(t *testing.T) {
	assert.InDelta(t, 90, AngleDeg(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}), 1e-4)
	assert.InDelta(t, 0, AngleDeg(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 1, 0}), 1e-4)
	assert.InDelta(t, 180, AngleDeg(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, -1}), 1e-4)
	assert.InDelta(t, 90, AngleDeg(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}), 1e-4)
}

func TestRotY(t *testing.T) {
	v := RotY(Deg2Rad(90)).Mul3x1(mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 0, v[0], 1e-6)
	assert.InDelta(t, -1, v[2], 1e-6)
}

package viewmatrix

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestViewMatrixIdentity(t *testing.T) {
	c := Camera{}
	assert.True(t, c.ViewMatrix().ApproxEqual(mgl32.Ident3()))
}

func TestNegativePitchShowsTop(t *testing.T) {
	c := Camera{Pitch: -30}
	up := c.ViewMatrix().Mul3x1(mgl32.Vec3{0, 1, 0})
	// the top tilts toward the viewer at +Z
	assert.Greater(t, up[2], float32(0))
	assert.Greater(t, up[1], float32(0))
}

func TestFitCentresAndScales(t *testing.T) {
	center, scale := Fit([3]float64{-1, -2, 0}, [3]float64{3, 2, 1}, 100, 10)
	assert.Equal(t, [3]float64{1, 0, 0.5}, center)
	assert.InDelta(t, 80.0/4, scale, 1e-9)

	center, scale = Fit([3]float64{2, 2, 2}, [3]float64{2, 2, 2}, 100, 10)
	assert.Equal(t, [3]float64{2, 2, 2}, center)
	assert.InDelta(t, 80/0.001, scale, 1e-6)
}

func TestOrthographicProjection(t *testing.T) {
	verts := []mgl32.Vec3{{-1, -1, 0}, {1, 1, 0}}
	min, max := Bounds(verts, mgl32.Ident3())
	p := NewProjection(Camera{}, min, max, 100, 0)
	px, py, _ := p.ProjectVertices(verts)
	assert.InDelta(t, 0, px[0], 1e-9)
	assert.InDelta(t, 100, py[0], 1e-9) // screen Y points down
	assert.InDelta(t, 100, px[1], 1e-9)
	assert.InDelta(t, 0, py[1], 1e-9)
}

func TestPerspectiveShrinksFarPoints(t *testing.T) {
	verts := []mgl32.Vec3{{1, 0, 1}, {1, 0, -1}, {-1, 0, 0}}
	min, max := Bounds(verts, mgl32.Ident3())
	p := NewProjection(Camera{Perspective: true, FOV: 60}, min, max, 200, 0)
	nearX, _, nearZ := p.Project(mgl32.Vec3{1, 0, 1})
	farX, _, farZ := p.Project(mgl32.Vec3{1, 0, -1})
	assert.Greater(t, nearZ, farZ)
	assert.Greater(t, nearX, farX)
}

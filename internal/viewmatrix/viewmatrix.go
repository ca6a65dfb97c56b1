package viewmatrix

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mathutil"
)

// Camera describes the preview view: a turntable rotation plus an optional
// perspective projection.
type Camera struct {
	Yaw         float32 `json:"yaw" yaml:"yaw" toml:"yaw"`
	Pitch       float32 `json:"pitch" yaml:"pitch" toml:"pitch"`
	Perspective bool    `json:"perspective" yaml:"perspective" toml:"perspective"`
	FOV         float32 `json:"fov" yaml:"fov" toml:"fov"`
}

// DefaultCamera returns the three-quarter thumbnail view.
func DefaultCamera() Camera {
	return Camera{Yaw: mathutil.DefaultYaw, Pitch: mathutil.DefaultPitch, FOV: mathutil.DefaultFOV}
}

// ViewMatrix rotates world space into view space, where +Y is up and the
// viewer looks down -Z. A negative pitch lifts the camera above the object.
func (c Camera) ViewMatrix() mgl32.Mat3 {
	rx := mathutil.RotX(mathutil.Deg2Rad(-c.Pitch))
	ry := mathutil.RotY(mathutil.Deg2Rad(-c.Yaw))
	return rx.Mul3(ry)
}

// Bounds returns the view-space bounding box of verts under R.
func Bounds(verts []mgl32.Vec3, R mgl32.Mat3) (min, max [3]float64) {
	min = [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range verts {
		t := R.Mul3x1(v)
		for k := 0; k < 3; k++ {
			f := float64(t[k])
			if f < min[k] {
				min[k] = f
			}
			if f > max[k] {
				max[k] = f
			}
		}
	}
	return min, max
}

// Fit returns the view-space centre of the box and the scale that maps its
// larger screen extent onto renderSize minus a margin on each side.
func Fit(min, max [3]float64, renderSize, margin int) (center [3]float64, scale float64) {
	if min[0] > max[0] {
		// nothing to fit
		min, max = [3]float64{}, [3]float64{}
	}
	for k := 0; k < 3; k++ {
		center[k] = (min[k] + max[k]) / 2
	}
	span := math.Max(max[0]-min[0], max[1]-min[1])
	if span < 0.001 {
		span = 0.001
	}
	usable := renderSize - 2*margin
	if usable < 1 {
		usable = 1
	}
	return center, float64(usable) / span
}

// Projection maps world-space points onto the frame.
type Projection struct {
	R          mgl32.Mat3
	Center     [3]float64
	Scale      float64
	RenderSize int

	persp   bool
	camDist float64
	zCenter float64
}

// NewProjection prepares a projection for a scene whose view-space box is
// (min, max). With a perspective camera the eye is placed so the scene's
// half-extent fills the field of view.
func NewProjection(cam Camera, min, max [3]float64, renderSize, margin int) Projection {
	center, scale := Fit(min, max, renderSize, margin)
	p := Projection{
		R:          cam.ViewMatrix(),
		Center:     center,
		Scale:      scale,
		RenderSize: renderSize,
	}
	if !cam.Perspective || min[0] > max[0] {
		return p
	}
	fov := cam.FOV
	if fov <= 0 {
		fov = mathutil.DefaultFOV
	}
	halfFOV := float64(mathutil.Deg2Rad(fov / 2))
	xyMax := 0.0
	for k := 0; k < 2; k++ {
		xyMax = math.Max(xyMax, math.Max(max[k]-center[k], center[k]-min[k]))
	}
	if xyMax < 0.001 || math.IsInf(xyMax, 0) {
		xyMax = 0.001
	}
	p.persp = true
	p.zCenter = (min[2] + max[2]) / 2
	p.camDist = xyMax / math.Tan(halfFOV)
	return p
}

// Project returns screen X, screen Y (down) and depth (larger is nearer).
func (p *Projection) Project(v mgl32.Vec3) (x, y, z float64) {
	t := p.R.Mul3x1(v)
	tx, ty, tz := float64(t[0]), float64(t[1]), float64(t[2])
	if p.persp {
		depth := math.Max(p.camDist-(tz-p.zCenter), 0.1)
		factor := p.camDist / depth
		tx = (tx-p.Center[0])*factor + p.Center[0]
		ty = (ty-p.Center[1])*factor + p.Center[1]
	}
	half := float64(p.RenderSize) / 2
	return (tx-p.Center[0])*p.Scale + half, -(ty-p.Center[1])*p.Scale + half, tz
}

// ProjectVertices projects every vertex.
func (p *Projection) ProjectVertices(verts []mgl32.Vec3) (px, py, pz []float64) {
	n := len(verts)
	px, py, pz = make([]float64, n), make([]float64, n), make([]float64, n)
	for i, v := range verts {
		px[i], py[i], pz[i] = p.Project(v)
	}
	return px, py, pz
}

// ViewNormal rotates a world-space normal into view space.
func (p *Projection) ViewNormal(n mgl32.Vec3) mgl32.Vec3 {
	return p.R.Mul3x1(n)
}

package primitive

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mesh"
)

// CylinderPart names one region of a Cylinder, in mesh order.
type CylinderPart int

const (
	CylinderTopCap CylinderPart = iota
	CylinderBody
	CylinderBottomCap
	NumCylinderParts
)

var cylinderPartNames = [...]string{"top", "body", "bottom"}

func (p CylinderPart) String() string {
	if p < 0 || p >= NumCylinderParts {
		return fmt.Sprintf("CylinderPart(%d)", int(p))
	}
	return cylinderPartNames[p]
}

// Cylinder is a tube along Y centred on the origin, with optional flat caps.
type Cylinder struct {
	Base
	radius, height float32
	capped         bool
	res            CylinderResolution
}

// NewCylinder builds a cylinder. capSegments 0 or capped false leaves the
// ends open; the cap regions are then empty.
func NewCylinder(radius, height float32, radiusSegments, heightSegments, capSegments int, capped bool, mode mesh.Mode) *Cylinder {
	c := &Cylinder{}
	c.Base = newBase(c, mesh.TriangleStrip)
	c.Set(radius, height, radiusSegments, heightSegments, capSegments, capped, mode)
	return c
}

// Set replaces every parameter and regenerates.
func (c *Cylinder) Set(radius, height float32, radiusSegments, heightSegments, capSegments int, capped bool, mode mesh.Mode) {
	c.radius, c.height = nonNegative(radius), nonNegative(height)
	c.capped = capped
	c.res = CylinderResolution{radiusSegments, heightSegments, capSegments}.clamped()
	c.SetMode(mode)
}

func (c *Cylinder) SetRadius(radius float32) {
	c.radius = nonNegative(radius)
	c.regenerate()
}

func (c *Cylinder) SetHeight(height float32) {
	c.height = nonNegative(height)
	c.regenerate()
}

func (c *Cylinder) SetCapped(capped bool) {
	c.capped = capped
	c.regenerate()
}

func (c *Cylinder) Radius() float32 { return c.radius }
func (c *Cylinder) Height() float32 { return c.height }
func (c *Cylinder) Capped() bool    { return c.capped }

func (c *Cylinder) SetResolution(radiusSegments, heightSegments, capSegments int) {
	c.res = CylinderResolution{radiusSegments, heightSegments, capSegments}.clamped()
	c.regenerate()
}

func (c *Cylinder) TopCapIndices() ([]uint32, error)   { return c.RegionIndices(int(CylinderTopCap)) }
func (c *Cylinder) TopCapMesh() (*mesh.Mesh, error)    { return c.RegionMesh(int(CylinderTopCap)) }
func (c *Cylinder) CylinderIndices() ([]uint32, error) { return c.RegionIndices(int(CylinderBody)) }
func (c *Cylinder) CylinderMesh() (*mesh.Mesh, error)  { return c.RegionMesh(int(CylinderBody)) }
func (c *Cylinder) BottomCapIndices() ([]uint32, error) {
	return c.RegionIndices(int(CylinderBottomCap))
}
func (c *Cylinder) BottomCapMesh() (*mesh.Mesh, error) { return c.RegionMesh(int(CylinderBottomCap)) }

func (c *Cylinder) SetTopCapColor(col mesh.Color) error {
	return c.SetRegionColor(int(CylinderTopCap), col)
}

func (c *Cylinder) SetCylinderColor(col mesh.Color) error {
	return c.SetRegionColor(int(CylinderBody), col)
}

func (c *Cylinder) SetBottomCapColor(col mesh.Color) error {
	return c.SetRegionColor(int(CylinderBottomCap), col)
}

func (c *Cylinder) kind() Kind             { return KindCylinder }
func (c *Cylinder) resolution() Resolution { return c.res }

// setResolutionXYZ reads x, y and z as radius, height and cap segments.
func (c *Cylinder) setResolutionXYZ(x, y, z int) {
	c.res = CylinderResolution{x, y, z}.clamped()
}

func (c *Cylinder) supportsMode(mode mesh.Mode) bool {
	return mode == mesh.Triangles || mode == mesh.TriangleStrip
}

// cylinderShapes returns the top cap (rim to centre), body (bottom to top)
// and bottom cap (centre to rim).
func cylinderShapes(res CylinderResolution, capped bool) [NumCylinderParts]gridShape {
	caps := res.Cap
	if !capped {
		caps = 0
	}
	return [NumCylinderParts]gridShape{
		CylinderTopCap: {
			bands: caps, cols: res.Radius,
			collapsed: func(r int) bool { return r == caps },
		},
		CylinderBody: {bands: res.Height, cols: res.Radius},
		CylinderBottomCap: {
			bands: caps, cols: res.Radius,
			collapsed: func(r int) bool { return r == 0 },
		},
	}
}

// CylinderRegion returns where part lies in a cylinder mesh generated with
// res, capped and mode. It depends only on its arguments.
func CylinderRegion(res CylinderResolution, capped bool, mode mesh.Mode, part CylinderPart) (mesh.Region, error) {
	if part < 0 || part >= NumCylinderParts {
		return mesh.Region{}, &mesh.IndexError{What: "cylinder part", Index: int(part), Len: int(NumCylinderParts)}
	}
	shapes := cylinderShapes(res.clamped(), capped)
	return layoutRegions(mode, shapes[:]...)[part], nil
}

func (c *Cylinder) regions(mode mesh.Mode) []mesh.Region {
	shapes := cylinderShapes(c.res, c.capped)
	return layoutRegions(mode, shapes[:]...)
}

// ringPoint returns the unit direction of column col out of cols around Y.
func ringPoint(col, cols int) (dir mgl32.Vec3, u float32) {
	u = float32(col) / float32(cols)
	sin, cos := math32.Sincos(2 * math32.Pi * u)
	return mgl32.Vec3{cos, 0, sin}, u
}

// capVertex places a vertex on a flat disk of radius r at height y.
// frac is the distance from the centre as a fraction of r.
func capVertex(r, y, frac float32, col, cols int, normal mgl32.Vec3) mesh.Vertex {
	if col < 0 {
		return mesh.Vertex{
			Position: mgl32.Vec3{0, y, 0},
			Normal:   normal,
			TexCoord: mgl32.Vec2{0.5, 0.5},
		}
	}
	dir, _ := ringPoint(col, cols)
	d := dir.Mul(frac)
	return mesh.Vertex{
		Position: mgl32.Vec3{d[0] * r, y, d[2] * r},
		Normal:   normal,
		TexCoord: mgl32.Vec2{0.5 + 0.5*d[0], 0.5 + 0.5*d[2]},
	}
}

func (c *Cylinder) build(m *mesh.Mesh, mode mesh.Mode) error {
	shapes := cylinderShapes(c.res, c.capped)
	halfH := c.height / 2

	top := shapes[CylinderTopCap]
	err := emitGrid(m, top, mode, func(r, col int) mesh.Vertex {
		frac := 1 - float32(r)/float32(top.bands)
		return capVertex(c.radius, halfH, frac, col, top.cols, mgl32.Vec3{0, 1, 0})
	})
	if err != nil {
		return fmt.Errorf("primitive: cylinder top cap: %w", err)
	}

	body := shapes[CylinderBody]
	err = emitGrid(m, body, mode, func(r, col int) mesh.Vertex {
		dir, u := ringPoint(col, body.cols)
		t := float32(r) / float32(body.bands)
		return mesh.Vertex{
			Position: mgl32.Vec3{dir[0] * c.radius, -halfH + t*c.height, dir[2] * c.radius},
			Normal:   dir,
			TexCoord: mgl32.Vec2{u, 1 - t},
		}
	})
	if err != nil {
		return fmt.Errorf("primitive: cylinder body: %w", err)
	}

	bottom := shapes[CylinderBottomCap]
	err = emitGrid(m, bottom, mode, func(r, col int) mesh.Vertex {
		frac := float32(r) / float32(bottom.bands)
		return capVertex(c.radius, -halfH, frac, col, bottom.cols, mgl32.Vec3{0, -1, 0})
	})
	if err != nil {
		return fmt.Errorf("primitive: cylinder bottom cap: %w", err)
	}
	return nil
}

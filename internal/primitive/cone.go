package primitive

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mathutil"
	"meshgen/internal/mesh"
)

// ConePart names one region of a Cone, in mesh order.
type ConePart int

const (
	ConeBody ConePart = iota
	ConeCap
	NumConeParts
)

func (p ConePart) String() string {
	switch p {
	case ConeBody:
		return "body"
	case ConeCap:
		return "cap"
	}
	return fmt.Sprintf("ConePart(%d)", int(p))
}

// Cone stands on the XZ plane at -height/2 with its apex at +height/2.
// The apex is a single vertex.
type Cone struct {
	Base
	radius, height float32
	res            ConeResolution
}

// NewCone builds a cone. capSegments 0 leaves the base open.
func NewCone(radius, height float32, radiusSegments, heightSegments, capSegments int, mode mesh.Mode) *Cone {
	c := &Cone{}
	c.Base = newBase(c, mesh.TriangleStrip)
	c.Set(radius, height, radiusSegments, heightSegments, capSegments, mode)
	return c
}

// Set replaces every parameter and regenerates.
func (c *Cone) Set(radius, height float32, radiusSegments, heightSegments, capSegments int, mode mesh.Mode) {
	c.radius, c.height = nonNegative(radius), nonNegative(height)
	c.res = ConeResolution{radiusSegments, heightSegments, capSegments}.clamped()
	c.SetMode(mode)
}

func (c *Cone) SetRadius(radius float32) {
	c.radius = nonNegative(radius)
	c.regenerate()
}

func (c *Cone) SetHeight(height float32) {
	c.height = nonNegative(height)
	c.regenerate()
}

func (c *Cone) Radius() float32 { return c.radius }
func (c *Cone) Height() float32 { return c.height }

func (c *Cone) SetResolution(radiusSegments, heightSegments, capSegments int) {
	c.res = ConeResolution{radiusSegments, heightSegments, capSegments}.clamped()
	c.regenerate()
}

func (c *Cone) ConeIndices() ([]uint32, error) { return c.RegionIndices(int(ConeBody)) }
func (c *Cone) ConeMesh() (*mesh.Mesh, error)  { return c.RegionMesh(int(ConeBody)) }
func (c *Cone) CapIndices() ([]uint32, error)  { return c.RegionIndices(int(ConeCap)) }
func (c *Cone) CapMesh() (*mesh.Mesh, error)   { return c.RegionMesh(int(ConeCap)) }

// SetTopColor paints the slanted body.
func (c *Cone) SetTopColor(col mesh.Color) error { return c.SetRegionColor(int(ConeBody), col) }

// SetCapColor paints the base disk.
func (c *Cone) SetCapColor(col mesh.Color) error { return c.SetRegionColor(int(ConeCap), col) }

func (c *Cone) kind() Kind             { return KindCone }
func (c *Cone) resolution() Resolution { return c.res }

// setResolutionXYZ reads x, y and z as radius, height and cap segments.
func (c *Cone) setResolutionXYZ(x, y, z int) {
	c.res = ConeResolution{x, y, z}.clamped()
}

func (c *Cone) supportsMode(mode mesh.Mode) bool {
	return mode == mesh.Triangles || mode == mesh.TriangleStrip
}

// coneShapes returns the body (base to apex) and the cap (centre to rim).
func coneShapes(res ConeResolution) [NumConeParts]gridShape {
	return [NumConeParts]gridShape{
		ConeBody: {
			bands: res.Height, cols: res.Radius,
			collapsed: func(r int) bool { return r == res.Height },
		},
		ConeCap: {
			bands: res.Cap, cols: res.Radius,
			collapsed: func(r int) bool { return r == 0 },
		},
	}
}

// ConeRegion returns where part lies in a cone mesh generated with res and
// mode. It depends only on its arguments.
func ConeRegion(res ConeResolution, mode mesh.Mode, part ConePart) (mesh.Region, error) {
	if part < 0 || part >= NumConeParts {
		return mesh.Region{}, &mesh.IndexError{What: "cone part", Index: int(part), Len: int(NumConeParts)}
	}
	shapes := coneShapes(res.clamped())
	return layoutRegions(mode, shapes[:]...)[part], nil
}

func (c *Cone) regions(mode mesh.Mode) []mesh.Region {
	shapes := coneShapes(c.res)
	return layoutRegions(mode, shapes[:]...)
}

func (c *Cone) build(m *mesh.Mesh, mode mesh.Mode) error {
	shapes := coneShapes(c.res)
	halfH := c.height / 2

	body := shapes[ConeBody]
	err := emitGrid(m, body, mode, func(r, col int) mesh.Vertex {
		t := float32(r) / float32(body.bands)
		if col < 0 {
			return mesh.Vertex{
				Position: mgl32.Vec3{0, halfH, 0},
				Normal:   mgl32.Vec3{0, 1, 0},
				TexCoord: mgl32.Vec2{0.5, 0},
			}
		}
		dir, u := ringPoint(col, body.cols)
		ring := c.radius * (1 - t)
		// the slant normal tilts up by atan(radius/height)
		n := mathutil.Normalize(mgl32.Vec3{dir[0] * c.height, c.radius, dir[2] * c.height})
		return mesh.Vertex{
			Position: mgl32.Vec3{dir[0] * ring, -halfH + t*c.height, dir[2] * ring},
			Normal:   n,
			TexCoord: mgl32.Vec2{u, 1 - t},
		}
	})
	if err != nil {
		return fmt.Errorf("primitive: cone body: %w", err)
	}

	cp := shapes[ConeCap]
	err = emitGrid(m, cp, mode, func(r, col int) mesh.Vertex {
		frac := float32(r) / float32(cp.bands)
		return capVertex(c.radius, -halfH, frac, col, cp.cols, mgl32.Vec3{0, -1, 0})
	})
	if err != nil {
		return fmt.Errorf("primitive: cone cap: %w", err)
	}
	return nil
}

package primitive

import (
	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mesh"
)

// Plane is a flat grid in the XY plane, centred on the origin and facing +Z.
// Texture coordinates run from (0,0) at the top-left to (1,1) at the
// bottom-right.
type Plane struct {
	Base
	width, height float32
	res           PlaneResolution
}

// NewPlane builds a width×height plane split into columns×rows cells.
func NewPlane(width, height float32, columns, rows int, mode mesh.Mode) *Plane {
	p := &Plane{}
	p.Base = newBase(p, mesh.TriangleStrip)
	p.Set(width, height, columns, rows, mode)
	return p
}

// Set replaces every parameter and regenerates.
func (p *Plane) Set(width, height float32, columns, rows int, mode mesh.Mode) {
	p.width, p.height = nonNegative(width), nonNegative(height)
	p.res = PlaneResolution{columns, rows}.clamped()
	p.SetMode(mode)
}

// SetSize changes the dimensions only.
func (p *Plane) SetSize(width, height float32) {
	p.width, p.height = nonNegative(width), nonNegative(height)
	p.regenerate()
}

func (p *Plane) SetWidth(width float32)   { p.SetSize(width, p.height) }
func (p *Plane) SetHeight(height float32) { p.SetSize(p.width, height) }
func (p *Plane) Width() float32           { return p.width }
func (p *Plane) Height() float32          { return p.height }

// SetResolution changes the cell counts.
func (p *Plane) SetResolution(columns, rows int) {
	p.res = PlaneResolution{columns, rows}.clamped()
	p.regenerate()
}

// ResizeToTexture sizes the plane to the texture's pixel extent times scale
// and spans the texture with the texture coordinates.
func (p *Plane) ResizeToTexture(t TextureInfo, scale float32) {
	p.SetTexCoordsFromTexture(t)
	p.SetSize(float32(t.Width())*scale, float32(t.Height())*scale)
}

func (p *Plane) kind() Kind             { return KindPlane }
func (p *Plane) resolution() Resolution { return p.res }

// setResolutionXYZ reads x as columns and y as rows.
func (p *Plane) setResolutionXYZ(x, y, _ int) {
	p.res = PlaneResolution{x, y}.clamped()
}

func (p *Plane) supportsMode(mode mesh.Mode) bool {
	return mode == mesh.Triangles || mode == mesh.TriangleStrip
}

func (p *Plane) shape() gridShape {
	return gridShape{bands: p.res.Rows, cols: p.res.Columns}
}

func (p *Plane) regions(mode mesh.Mode) []mesh.Region {
	return layoutRegions(mode, p.shape())
}

func (p *Plane) build(m *mesh.Mesh, mode mesh.Mode) error {
	cols, rows := float32(p.res.Columns), float32(p.res.Rows)
	return emitGrid(m, p.shape(), mode, func(r, c int) mesh.Vertex {
		u, v := float32(c)/cols, float32(r)/rows
		return mesh.Vertex{
			Position: mgl32.Vec3{(u - 0.5) * p.width, (0.5 - v) * p.height, 0},
			Normal:   mgl32.Vec3{0, 0, 1},
			TexCoord: mgl32.Vec2{u, v},
		}
	})
}

package primitive

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mesh"
)

// BoxSide names one face of a Box. The order is the order the faces are
// laid out in the mesh.
type BoxSide int

const (
	SideFront BoxSide = iota
	SideRight
	SideLeft
	SideBack
	SideTop
	SideBottom
	NumBoxSides
)

var sideNames = [...]string{"front", "right", "left", "back", "top", "bottom"}

func (s BoxSide) String() string {
	if s < 0 || s >= NumBoxSides {
		return fmt.Sprintf("BoxSide(%d)", int(s))
	}
	return sideNames[s]
}

// boxFace orients one face: right × up = normal. Columns follow right and
// rows run from +up to -up, like a Plane seen from the front.
type boxFace struct {
	normal, right, up mgl32.Vec3
	// axes of the size vector spanned by right and up, and along normal
	ra, ua, na int
}

var boxFaces = [NumBoxSides]boxFace{
	SideFront:  {mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, 0, 1, 2},
	SideRight:  {mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, 2, 1, 0},
	SideLeft:   {mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}, 2, 1, 0},
	SideBack:   {mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}, 0, 1, 2},
	SideTop:    {mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, 0, 2, 1},
	SideBottom: {mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}, 0, 2, 1},
}

// Box is an axis-aligned box centred on the origin, built from six
// independent grids so each side can be colored or extracted on its own.
// Every side carries the full 0..1 texture square.
type Box struct {
	Base
	size mgl32.Vec3
	res  BoxResolution
}

// NewBox builds a width×height×depth box.
func NewBox(width, height, depth float32, resWidth, resHeight, resDepth int) *Box {
	b := &Box{}
	b.Base = newBase(b, mesh.Triangles)
	b.Set(width, height, depth, resWidth, resHeight, resDepth)
	return b
}

// Set replaces dimensions and resolution and regenerates.
func (b *Box) Set(width, height, depth float32, resWidth, resHeight, resDepth int) {
	b.size = mgl32.Vec3{nonNegative(width), nonNegative(height), nonNegative(depth)}
	b.res = BoxResolution{resWidth, resHeight, resDepth}.clamped()
	b.regenerate()
}

// SetSize changes the dimensions only.
func (b *Box) SetSize(width, height, depth float32) {
	b.size = mgl32.Vec3{nonNegative(width), nonNegative(height), nonNegative(depth)}
	b.regenerate()
}

// SetUniform makes a cube of the given edge length.
func (b *Box) SetUniform(size float32) { b.SetSize(size, size, size) }

func (b *Box) SetWidth(width float32)   { b.SetSize(width, b.size[1], b.size[2]) }
func (b *Box) SetHeight(height float32) { b.SetSize(b.size[0], height, b.size[2]) }
func (b *Box) SetDepth(depth float32)   { b.SetSize(b.size[0], b.size[1], depth) }
func (b *Box) Width() float32           { return b.size[0] }
func (b *Box) Height() float32          { return b.size[1] }
func (b *Box) Depth() float32           { return b.size[2] }
func (b *Box) Size() mgl32.Vec3         { return b.size }

// SetResolution sets the segment count along each axis.
func (b *Box) SetResolution(resWidth, resHeight, resDepth int) {
	b.res = BoxResolution{resWidth, resHeight, resDepth}.clamped()
	b.regenerate()
}

// SetUniformResolution uses the same segment count on every axis.
func (b *Box) SetUniformResolution(res int) { b.SetResolution(res, res, res) }

// ResizeToTexture makes the box as wide and deep as the texture and as tall
// as it is high, spanning the texture on every side.
func (b *Box) ResizeToTexture(t TextureInfo) {
	b.SetTexCoordsFromTexture(t)
	w, h := float32(t.Width()), float32(t.Height())
	b.SetSize(w, h, w)
}

func (b *Box) SideIndices(side BoxSide) ([]uint32, error)    { return b.RegionIndices(int(side)) }
func (b *Box) SideMesh(side BoxSide) (*mesh.Mesh, error)     { return b.RegionMesh(int(side)) }
func (b *Box) SetSideColor(side BoxSide, c mesh.Color) error { return b.SetRegionColor(int(side), c) }

func (b *Box) kind() Kind             { return KindBox }
func (b *Box) resolution() Resolution { return b.res }

// setResolutionXYZ reads x, y and z as the width, height and depth counts.
func (b *Box) setResolutionXYZ(x, y, z int) {
	b.res = BoxResolution{x, y, z}.clamped()
}

func (b *Box) supportsMode(mode mesh.Mode) bool {
	return mode == mesh.Triangles || mode == mesh.TriangleStrip
}

func boxSideShape(res BoxResolution, side BoxSide) gridShape {
	f := boxFaces[side]
	counts := res.XYZ()
	return gridShape{bands: counts[f.ua], cols: counts[f.ra]}
}

func boxShapes(res BoxResolution) []gridShape {
	shapes := make([]gridShape, NumBoxSides)
	for s := range shapes {
		shapes[s] = boxSideShape(res, BoxSide(s))
	}
	return shapes
}

// BoxSideRegion returns where side lies in a box mesh generated with res
// and mode. It depends only on its arguments.
func BoxSideRegion(res BoxResolution, mode mesh.Mode, side BoxSide) (mesh.Region, error) {
	if side < 0 || side >= NumBoxSides {
		return mesh.Region{}, &mesh.IndexError{What: "box side", Index: int(side), Len: int(NumBoxSides)}
	}
	return layoutRegions(mode, boxShapes(res.clamped())...)[side], nil
}

func (b *Box) regions(mode mesh.Mode) []mesh.Region {
	return layoutRegions(mode, boxShapes(b.res)...)
}

func (b *Box) build(m *mesh.Mesh, mode mesh.Mode) error {
	half := b.size.Mul(0.5)
	for s := SideFront; s < NumBoxSides; s++ {
		f := boxFaces[s]
		g := boxSideShape(b.res, s)
		centre := f.normal.Mul(half[f.na])
		w, h := b.size[f.ra], b.size[f.ua]
		err := emitGrid(m, g, mode, func(r, c int) mesh.Vertex {
			u, v := float32(c)/float32(g.cols), float32(r)/float32(g.bands)
			p := centre.Add(f.right.Mul((u - 0.5) * w)).Add(f.up.Mul((0.5 - v) * h))
			return mesh.Vertex{Position: p, Normal: f.normal, TexCoord: mgl32.Vec2{u, v}}
		})
		if err != nil {
			return fmt.Errorf("primitive: box %s: %w", s, err)
		}
	}
	return nil
}

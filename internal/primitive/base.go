package primitive

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mesh"
	"meshgen/internal/transform"
)

// ErrRegionsInvalidated is returned by region accessors after an operation
// that changed the vertex layout (merge, smoothing, rebuilding from
// triangles, clearing). Regenerating the solid makes regions valid again.
var ErrRegionsInvalidated = errors.New("primitive: regions invalidated by a layout change")

// Renderer receives draw calls. The mesh is borrowed for the duration of
// the call only.
type Renderer interface {
	DrawMesh(m *mesh.Mesh, mode mesh.PolyMode, world mgl32.Mat4)
}

// TextureInfo is what texture-coordinate fitting reads from a texture.
type TextureInfo interface {
	Width() int
	Height() int
	// Normalized reports whether the texture is addressed in [0,1]
	// rather than in pixels.
	Normalized() bool
}

// generator is the per-solid strategy behind Base.
type generator interface {
	kind() Kind
	resolution() Resolution
	setResolutionXYZ(x, y, z int)
	supportsMode(mode mesh.Mode) bool
	build(m *mesh.Mesh, mode mesh.Mode) error
	regions(mode mesh.Mode) []mesh.Region
}

var unitRect = mgl32.Vec4{0, 0, 1, 1}

// Base is the state and behaviour shared by every solid: the owned mesh,
// the transform node, the texture rectangle and draw dispatch.
type Base struct {
	Node transform.Node

	gen  generator
	mode mesh.Mode
	mesh *mesh.Mesh

	texRect mgl32.Vec4 // requested rectangle (u1, v1, u2, v2)
	applied mgl32.Vec4 // rectangle the current texcoords are mapped into

	color        *mesh.Color
	regionsValid bool
}

func newBase(gen generator, mode mesh.Mode) Base {
	return Base{
		Node:    transform.NewNode(),
		gen:     gen,
		mode:    mode,
		mesh:    mesh.New(mode),
		texRect: unitRect,
		applied: unitRect,
	}
}

// regenerate rebuilds the mesh from scratch. Generation works on clamped
// parameters and cannot fail on input; an error here is logged and leaves
// the mesh empty.
func (b *Base) regenerate() {
	m := b.mesh
	m.Clear()
	m.DisableColors()
	m.EnableNormals()
	m.EnableTexCoords()
	if err := b.gen.build(m, b.mode); err != nil {
		slog.Error("primitive: generate", "kind", b.gen.kind(), "err", err)
		m.Clear()
	}
	m.SetMode(b.mode)
	b.applied = unitRect
	b.NormalizeAndApplySavedTexCoords()
	if b.color != nil {
		m.SetAllColors(*b.color)
	}
	b.regionsValid = true
}

// Kind returns which solid this is.
func (b *Base) Kind() Kind { return b.gen.kind() }

// Resolution returns the clamped resolution in use.
func (b *Base) Resolution() Resolution { return b.gen.resolution() }

// SetResolutionXYZ sets the resolution from the uniform three-axis form.
// Each solid documents which axes it reads.
func (b *Base) SetResolutionXYZ(x, y, z int) {
	b.gen.setResolutionXYZ(x, y, z)
	b.regenerate()
}

// Mode returns the topology the mesh is generated with.
func (b *Base) Mode() mesh.Mode { return b.mode }

// SetMode regenerates with a new topology. A topology the solid cannot be
// built with falls back to Triangles.
func (b *Base) SetMode(mode mesh.Mode) {
	if !b.gen.supportsMode(mode) {
		slog.Debug("primitive: unsupported mode", "kind", b.gen.kind(), "mode", mode)
		mode = mesh.Triangles
	}
	b.mode = mode
	b.regenerate()
}

// Mesh borrows the owned mesh. It stays owned by the primitive and is
// replaced in place on every regeneration. Changing its vertex layout
// directly leaves region accessors pointing at stale ranges.
func (b *Base) Mesh() *mesh.Mesh { return b.mesh }

// Transform returns the node that places the solid in the world.
func (b *Base) Transform() *transform.Node { return &b.Node }

func (b *Base) HasScaling() bool  { return b.Node.HasScaling() }
func (b *Base) HasNormals() bool  { return b.mesh.HasNormals() }
func (b *Base) EnableNormals()    { b.mesh.EnableNormals() }
func (b *Base) EnableTexCoords()  { b.mesh.EnableTexCoords() }
func (b *Base) EnableColors()     { b.mesh.EnableColors() }
func (b *Base) DisableNormals()   { b.mesh.DisableNormals() }
func (b *Base) DisableTexCoords() { b.mesh.DisableTexCoords() }

// DisableColors drops the color channel, including a color set with SetColor.
func (b *Base) DisableColors() {
	b.color = nil
	b.mesh.DisableColors()
}

// Clear empties the mesh until the next regeneration.
func (b *Base) Clear() {
	b.mesh.Clear()
	b.regionsValid = false
}

// TexCoords returns the texture rectangle as (u1, v1, u2, v2).
func (b *Base) TexCoords() mgl32.Vec4 { return b.texRect }

// SetTexCoords stores a texture rectangle and remaps the mesh into it.
func (b *Base) SetTexCoords(u1, v1, u2, v2 float32) {
	b.texRect = mgl32.Vec4{u1, v1, u2, v2}
	b.NormalizeAndApplySavedTexCoords()
}

// SetTexCoordsFromTexture spans the whole texture: the unit square for
// normalized textures, the pixel extent otherwise. No reference to t is kept.
func (b *Base) SetTexCoordsFromTexture(t TextureInfo) {
	if t.Normalized() {
		b.SetTexCoords(0, 0, 1, 1)
		return
	}
	b.SetTexCoords(0, 0, float32(t.Width()), float32(t.Height()))
}

// NormalizeAndApplySavedTexCoords maps the mesh's texture coordinates into
// the stored rectangle. Coordinates are first normalized out of the
// rectangle they were last mapped into, so repeated calls are idempotent.
// An axis last mapped into a zero-width span cannot be recovered and
// normalizes to 0.
func (b *Base) NormalizeAndApplySavedTexCoords() {
	from, to := b.applied, b.texRect
	if from == to {
		return
	}
	b.mesh.MapTexCoords(func(uv mgl32.Vec2) mgl32.Vec2 {
		u := unlerp(from[0], from[2], uv[0])
		v := unlerp(from[1], from[3], uv[1])
		return mgl32.Vec2{to[0] + u*(to[2]-to[0]), to[1] + v*(to[3]-to[1])}
	})
	b.applied = to
}

func unlerp(a, b, x float32) float32 {
	if b == a {
		return 0
	}
	return (x - a) / (b - a)
}

// SetColor paints every vertex and keeps the color across regeneration.
func (b *Base) SetColor(c mesh.Color) {
	b.color = &c
	b.mesh.SetAllColors(c)
}

// NumRegions returns how many named parts the solid has.
func (b *Base) NumRegions() int {
	return len(b.gen.regions(b.mode))
}

// Region returns the index and vertex range of part id.
func (b *Base) Region(id int) (mesh.Region, error) {
	if !b.regionsValid {
		return mesh.Region{}, ErrRegionsInvalidated
	}
	regions := b.gen.regions(b.mode)
	if id < 0 || id >= len(regions) {
		return mesh.Region{}, &mesh.IndexError{What: b.gen.kind().String() + " region", Index: id, Len: len(regions)}
	}
	return regions[id], nil
}

// RegionIndices returns a copy of part id's indices.
func (b *Base) RegionIndices(id int) ([]uint32, error) {
	r, err := b.Region(id)
	if err != nil {
		return nil, err
	}
	return b.mesh.RegionIndices(r)
}

// RegionMesh copies part id into a standalone mesh.
func (b *Base) RegionMesh(id int) (*mesh.Mesh, error) {
	r, err := b.Region(id)
	if err != nil {
		return nil, err
	}
	return b.mesh.SubMesh(r)
}

// SetRegionColor paints part id. Region colors are not kept across
// regeneration.
func (b *Base) SetRegionColor(id int, c mesh.Color) error {
	r, err := b.Region(id)
	if err != nil {
		return err
	}
	if err := b.mesh.SetRegionColor(r, c); err != nil {
		return fmt.Errorf("primitive: color region %d: %w", id, err)
	}
	return nil
}

// MergeDuplicateVertices welds identical vertices and returns how many were
// removed. Regions are invalid afterwards unless nothing was removed.
func (b *Base) MergeDuplicateVertices() int {
	removed := b.mesh.MergeDuplicateVertices()
	if removed > 0 {
		b.regionsValid = false
	}
	return removed
}

func (b *Base) UniqueTriangles() []mesh.Triangle        { return b.mesh.UniqueTriangles() }
func (b *Base) FaceNormals(perVertex bool) []mgl32.Vec3 { return b.mesh.FaceNormals(perVertex) }

// SetFromTriangles replaces the mesh with an unshared triangle list.
// Regions are invalid afterwards.
func (b *Base) SetFromTriangles(tris []mesh.Triangle, useFaceNormal bool) {
	b.regionsValid = false
	b.mesh.SetFromTriangles(tris, useFaceNormal)
}

// SmoothNormals smooths across edges sharper than angleDeg. The mesh is
// rebuilt as unshared triangles, so regions are invalid afterwards. A mesh
// with no triangles is left alone.
func (b *Base) SmoothNormals(angleDeg float32) {
	if b.mesh.NumTriangles() == 0 {
		return
	}
	b.regionsValid = false
	b.mesh.SmoothNormals(angleDeg)
}

// ComputeFlatNormals rebuilds the mesh with per-face normals.
// Regions are invalid afterwards.
func (b *Base) ComputeFlatNormals() {
	b.regionsValid = false
	b.mesh.ComputeFlatNormals()
}

func (b *Base) Draw(r Renderer)          { b.DrawMode(r, mesh.Fill) }
func (b *Base) DrawFaces(r Renderer)     { b.DrawMode(r, mesh.Fill) }
func (b *Base) DrawWireframe(r Renderer) { b.DrawMode(r, mesh.Wireframe) }
func (b *Base) DrawVertices(r Renderer)  { b.DrawMode(r, mesh.PointCloud) }

// DrawMode submits the mesh with the node's world transform. An empty mesh
// draws nothing.
func (b *Base) DrawMode(r Renderer, mode mesh.PolyMode) {
	if b.mesh.Empty() {
		return
	}
	r.DrawMesh(b.mesh, mode, b.Node.WorldMatrix())
}

// DrawNormals draws a line of the given length along each vertex normal, or
// along each face normal from the triangle centroid when faceNormals is set.
func (b *Base) DrawNormals(r Renderer, length float32, faceNormals bool) {
	lines := b.NormalLines(length, faceNormals)
	if lines.Empty() {
		return
	}
	r.DrawMesh(lines, mesh.Wireframe, b.Node.WorldMatrix())
}

// NormalLines builds the line mesh DrawNormals submits.
func (b *Base) NormalLines(length float32, faceNormals bool) *mesh.Mesh {
	lines := mesh.New(mesh.Lines)
	if faceNormals {
		for _, t := range b.mesh.UniqueTriangles() {
			c := t.Points[0].Add(t.Points[1]).Add(t.Points[2]).Mul(1.0 / 3)
			lines.AddVertices(
				mesh.Vertex{Position: c},
				mesh.Vertex{Position: c.Add(t.FaceNormal.Mul(length))},
			)
		}
		return lines
	}
	if !b.mesh.HasNormals() {
		return lines
	}
	normals := b.mesh.Normals()
	for i, p := range b.mesh.Positions() {
		lines.AddVertices(
			mesh.Vertex{Position: p},
			mesh.Vertex{Position: p.Add(normals[i].Mul(length))},
		)
	}
	return lines
}

// DrawAxes draws the node's local X, Y and Z axes in red, green and blue.
func (b *Base) DrawAxes(r Renderer, size float32) {
	axes := mesh.New(mesh.Lines)
	axes.EnableColors()
	for k, c := range []mesh.Color{{R: 1, A: 1}, {G: 1, A: 1}, {B: 1, A: 1}} {
		var tip mgl32.Vec3
		tip[k] = size
		axes.AddVertices(mesh.Vertex{Color: c}, mesh.Vertex{Position: tip, Color: c})
	}
	r.DrawMesh(axes, mesh.Wireframe, b.Node.WorldMatrix())
}

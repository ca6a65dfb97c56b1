package primitive

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshgen/internal/mesh"
)

type drawCall struct {
	vertices int
	mode     mesh.PolyMode
	topology mesh.Mode
	world    mgl32.Mat4
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawMesh(m *mesh.Mesh, mode mesh.PolyMode, world mgl32.Mat4) {
	r.calls = append(r.calls, drawCall{m.NumVertices(), mode, m.Mode(), world})
}

type fakeTexture struct {
	w, h       int
	normalized bool
}

func (t fakeTexture) Width() int       { return t.w }
func (t fakeTexture) Height() int      { return t.h }
func (t fakeTexture) Normalized() bool { return t.normalized }

func texBounds(m *mesh.Mesh) (min, max mgl32.Vec2) {
	uv := m.TexCoords()
	min, max = uv[0], uv[0]
	for _, t := range uv {
		for k := 0; k < 2; k++ {
			if t[k] < min[k] {
				min[k] = t[k]
			}
			if t[k] > max[k] {
				max[k] = t[k]
			}
		}
	}
	return min, max
}

func TestTexCoordRemapIsIdempotent(t *testing.T) {
	p := NewPlane(1, 1, 4, 4, mesh.Triangles)
	p.SetTexCoords(0.5, 0.25, 2, 4)
	assert.Equal(t, mgl32.Vec4{0.5, 0.25, 2, 4}, p.TexCoords())
	want := p.Mesh().TexCoords()

	p.NormalizeAndApplySavedTexCoords()
	p.NormalizeAndApplySavedTexCoords()
	assert.Equal(t, want, p.Mesh().TexCoords())

	min, max := texBounds(p.Mesh())
	assert.Equal(t, mgl32.Vec2{0.5, 0.25}, min)
	assert.Equal(t, mgl32.Vec2{2, 4}, max)

	// regeneration keeps the rectangle
	p.SetResolution(2, 2)
	min, max = texBounds(p.Mesh())
	assert.Equal(t, mgl32.Vec2{0.5, 0.25}, min)
	assert.Equal(t, mgl32.Vec2{2, 4}, max)

	p.SetTexCoords(0, 0, 1, 1)
	min, max = texBounds(p.Mesh())
	assert.Equal(t, mgl32.Vec2{0, 0}, min)
	assert.Equal(t, mgl32.Vec2{1, 1}, max)
}

func TestSetTexCoordsFromTexture(t *testing.T) {
	p := NewPlane(1, 1, 1, 1, mesh.Triangles)
	p.SetTexCoordsFromTexture(fakeTexture{w: 64, h: 32})
	assert.Equal(t, mgl32.Vec4{0, 0, 64, 32}, p.TexCoords())
	_, max := texBounds(p.Mesh())
	assert.Equal(t, mgl32.Vec2{64, 32}, max)

	p.SetTexCoordsFromTexture(fakeTexture{w: 64, h: 32, normalized: true})
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 1}, p.TexCoords())

	p.ResizeToTexture(fakeTexture{w: 64, h: 32}, 0.5)
	assert.Equal(t, float32(32), p.Width())
	assert.Equal(t, float32(16), p.Height())

	b := NewBox(1, 1, 1, 1, 1, 1)
	b.ResizeToTexture(fakeTexture{w: 10, h: 20})
	assert.Equal(t, mgl32.Vec3{10, 20, 10}, b.Size())
}

func TestRegionErrors(t *testing.T) {
	b := NewBox(1, 1, 1, 2, 2, 2)
	_, err := b.SideIndices(NumBoxSides)
	assert.ErrorIs(t, err, mesh.ErrInvalidIndex)
	_, err = b.SideIndices(-1)
	assert.ErrorIs(t, err, mesh.ErrInvalidIndex)
	_, err = BoxSideRegion(BoxResolution{2, 2, 2}, mesh.Triangles, 9)
	assert.ErrorIs(t, err, mesh.ErrInvalidIndex)
	_, err = CylinderRegion(CylinderResolution{3, 1, 1}, true, mesh.Triangles, -1)
	assert.ErrorIs(t, err, mesh.ErrInvalidIndex)

	// faces meet at equal positions but differ in normal, so nothing welds
	// and the layout is untouched
	assert.Zero(t, b.MergeDuplicateVertices())
	_, err = b.SideMesh(SideTop)
	assert.NoError(t, err)

	b.SetFromTriangles(b.UniqueTriangles(), false)
	assert.Positive(t, b.MergeDuplicateVertices())
	_, err = b.SideMesh(SideTop)
	assert.True(t, errors.Is(err, ErrRegionsInvalidated))
	assert.ErrorIs(t, b.SetSideColor(SideTop, mesh.White), ErrRegionsInvalidated)

	b.SetUniformResolution(2)
	_, err = b.SideMesh(SideTop)
	assert.NoError(t, err)

	b.SmoothNormals(30)
	_, err = b.SideIndices(SideFront)
	assert.ErrorIs(t, err, ErrRegionsInvalidated)

	c := NewCylinder(1, 1, 4, 1, 1, true, mesh.Triangles)
	c.SetFromTriangles(c.UniqueTriangles(), true)
	_, err = c.TopCapMesh()
	assert.ErrorIs(t, err, ErrRegionsInvalidated)
}

func TestMergeWithoutDuplicatesKeepsRegions(t *testing.T) {
	b := NewBox(1, 1, 1, 3, 2, 2)
	before := b.Mesh().Indices()
	assert.Zero(t, b.MergeDuplicateVertices())
	assert.Equal(t, before, b.Mesh().Indices())
	top, err := b.SideIndices(SideTop)
	require.NoError(t, err)
	assert.NotEmpty(t, top)

	b.Clear()
	b.SmoothNormals(45)
	assert.True(t, b.Mesh().Empty())
}

func TestColors(t *testing.T) {
	red := mesh.Color{R: 1, A: 1}
	blue := mesh.Color{B: 1, A: 1}

	b := NewBox(1, 1, 1, 1, 1, 1)
	assert.False(t, b.Mesh().HasColors())
	require.NoError(t, b.SetSideColor(SideBack, red))
	r, err := b.Region(int(SideBack))
	require.NoError(t, err)
	cols := b.Mesh().Colors()
	for i, c := range cols {
		if i >= r.StartVertex && i < r.EndVertex {
			assert.Equal(t, red, c)
		} else {
			assert.Equal(t, mesh.White, c)
		}
	}

	c := NewCylinder(1, 1, 4, 1, 1, true, mesh.TriangleStrip)
	c.SetColor(blue)
	require.NoError(t, c.SetTopCapColor(red))
	c.SetHeight(3)
	// the whole-mesh color survives regeneration, the region color does not
	for _, col := range c.Mesh().Colors() {
		assert.Equal(t, blue, col)
	}
	c.DisableColors()
	c.SetHeight(2)
	assert.False(t, c.Mesh().HasColors())

	cone := NewCone(1, 1, 4, 1, 1, mesh.Triangles)
	require.NoError(t, cone.SetCapColor(red))
	require.NoError(t, cone.SetTopColor(blue))
	capMesh, err := cone.CapMesh()
	require.NoError(t, err)
	for _, col := range capMesh.Colors() {
		assert.Equal(t, red, col)
	}
}

func TestDrawDispatch(t *testing.T) {
	s := NewSphere(1, 4, mesh.TriangleStrip)
	s.Node.Position = mgl32.Vec3{1, 2, 3}
	r := &recordingRenderer{}

	s.Draw(r)
	s.DrawWireframe(r)
	s.DrawVertices(r)
	s.DrawFaces(r)
	require.Len(t, r.calls, 4)
	assert.Equal(t, mesh.Fill, r.calls[0].mode)
	assert.Equal(t, mesh.Wireframe, r.calls[1].mode)
	assert.Equal(t, mesh.PointCloud, r.calls[2].mode)
	assert.Equal(t, mesh.TriangleStrip, r.calls[0].topology)
	assert.Equal(t, mgl32.Translate3D(1, 2, 3), r.calls[0].world)

	r.calls = nil
	s.DrawNormals(r, 0.1, false)
	s.DrawNormals(r, 0.1, true)
	s.DrawAxes(r, 1)
	require.Len(t, r.calls, 3)
	assert.Equal(t, 2*s.Mesh().NumVertices(), r.calls[0].vertices)
	assert.Equal(t, 2*s.Mesh().NumTriangles(), r.calls[1].vertices)
	assert.Equal(t, 6, r.calls[2].vertices)
	assert.Equal(t, mesh.Lines, r.calls[2].topology)

	r.calls = nil
	s.Clear()
	s.Draw(r)
	s.DrawNormals(r, 1, false)
	assert.Empty(t, r.calls)
}

func TestNormalLinesLength(t *testing.T) {
	p := NewPlane(1, 1, 1, 1, mesh.Triangles)
	lines := p.NormalLines(2, false)
	pos := lines.Positions()
	require.Len(t, pos, 8)
	for i := 0; i < len(pos); i += 2 {
		assert.Equal(t, float32(2), pos[i+1].Sub(pos[i]).Len())
	}
	p.DisableNormals()
	assert.True(t, p.NormalLines(1, false).Empty())
	assert.False(t, p.HasNormals())
}

func TestMergeOnSphereKeepsSurface(t *testing.T) {
	s := NewSphere(1, 6, mesh.Triangles)
	before := s.UniqueTriangles()
	s.SetFromTriangles(before, false)
	n := s.Mesh().NumVertices()
	removed := s.MergeDuplicateVertices()
	assert.Greater(t, removed, 0)
	assert.Equal(t, n-removed, s.Mesh().NumVertices())
	after := s.UniqueTriangles()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Points, after[i].Points)
	}
}

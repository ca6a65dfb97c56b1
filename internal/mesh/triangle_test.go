package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVec3InDelta(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for k := 0; k < 3; k++ {
		assert.InDelta(t, want[k], got[k], delta, "component %d of %v", k, got)
	}
}

func TestFaceNormal(t *testing.T) {
	n := FaceNormal(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, n)

	zero := FaceNormal(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 2, 2})
	assert.Equal(t, mgl32.Vec3{}, zero)
}

func TestTriangleIndicesStripWinding(t *testing.T) {
	m := New(TriangleStrip)
	m.AddVertices(
		Vertex{Position: mgl32.Vec3{0, 1, 0}},
		Vertex{Position: mgl32.Vec3{0, 0, 0}},
		Vertex{Position: mgl32.Vec3{1, 1, 0}},
		Vertex{Position: mgl32.Vec3{1, 0, 0}},
		Vertex{Position: mgl32.Vec3{2, 1, 0}},
		Vertex{Position: mgl32.Vec3{2, 0, 0}},
	)
	// two runs joined by a degenerate stitch
	require.NoError(t, m.AddIndices(0, 1, 2, 3, 3, 2, 2, 3, 4, 5))

	tris := m.UniqueTriangles()
	require.Len(t, tris, 4)
	for _, tri := range tris {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, tri.FaceNormal)
	}
	assert.Equal(t, 4, m.NumTriangles())
}

func TestTriangleIndicesFan(t *testing.T) {
	m := New(TriangleFan)
	m.AddVertices(
		Vertex{Position: mgl32.Vec3{0, 0, 0}},
		Vertex{Position: mgl32.Vec3{1, 0, 0}},
		Vertex{Position: mgl32.Vec3{1, 1, 0}},
		Vertex{Position: mgl32.Vec3{0, 1, 0}},
	)
	require.NoError(t, m.AddIndices(0, 1, 2, 3))
	assert.Equal(t, [][3]uint32{{0, 1, 2}, {0, 2, 3}}, m.TriangleIndices())
}

func TestTriangleIndicesWithoutIndexBuffer(t *testing.T) {
	m := New(Triangles)
	m.AddVertices(
		Vertex{Position: mgl32.Vec3{0, 0, 0}},
		Vertex{Position: mgl32.Vec3{1, 0, 0}},
		Vertex{Position: mgl32.Vec3{0, 1, 0}},
	)
	assert.Equal(t, [][3]uint32{{0, 1, 2}}, m.TriangleIndices())

	m.SetMode(Lines)
	assert.Empty(t, m.TriangleIndices())
	m.SetMode(Points)
	assert.Zero(t, m.NumTriangles())
}

func TestSetFromTrianglesRoundTrip(t *testing.T) {
	m := gridMesh(t, 2)
	before := m.UniqueTriangles()
	require.Len(t, before, 8)

	m.SetMode(TriangleStrip)
	m.SetFromTriangles(before, false)
	assert.Equal(t, Triangles, m.Mode())
	assert.Equal(t, 24, m.NumVertices())
	assert.Equal(t, 24, m.NumIndices())
	for i, idx := range m.Indices() {
		assert.Equal(t, uint32(i), idx)
	}

	after := m.UniqueTriangles()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].Points, after[i].Points)
		assert.Equal(t, before[i].Normals, after[i].Normals)
		assert.Equal(t, before[i].TexCoords, after[i].TexCoords)
	}
	assert.False(t, m.HasColors())
}

func TestSetFromTrianglesFaceNormals(t *testing.T) {
	tri := Triangle{Points: [3]mgl32.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}}}
	m := New(Points)
	m.SetFromTriangles([]Triangle{tri}, true)
	require.True(t, m.HasNormals())
	for _, n := range m.Normals() {
		assert.Equal(t, mgl32.Vec3{0, 0, -1}, n)
	}
}

func TestSetFromTrianglesFillsMissingColors(t *testing.T) {
	red := Color{1, 0, 0, 1}
	colored := Triangle{
		Points:    [3]mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Colors:    [3]Color{red, red, red},
		HasColors: true,
	}
	plain := Triangle{Points: [3]mgl32.Vec3{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}}}

	m := New(Triangles)
	m.SetFromTriangles([]Triangle{colored, plain}, false)
	cols := m.Colors()
	require.Len(t, cols, 6)
	assert.Equal(t, red, cols[0])
	assert.Equal(t, White, cols[5])
}

func TestSetFromTrianglesEmpty(t *testing.T) {
	m := gridMesh(t, 1)
	m.SetFromTriangles(nil, false)
	assert.True(t, m.Empty())
	assert.True(t, m.HasNormals())
}

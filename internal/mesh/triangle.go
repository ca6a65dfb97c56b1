package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mathutil"
)

// Triangle is a self-contained triangle that shares nothing with the mesh it
// came from. The Has* flags mirror the source mesh's channels.
type Triangle struct {
	Points     [3]mgl32.Vec3
	Normals    [3]mgl32.Vec3
	Colors     [3]Color
	TexCoords  [3]mgl32.Vec2
	FaceNormal mgl32.Vec3

	HasNormals   bool
	HasColors    bool
	HasTexCoords bool
}

// FaceNormal returns normalize(cross(b-a, c-a)). Degenerate (zero-area)
// triangles yield the zero vector.
func FaceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return mathutil.Normalize(b.Sub(a).Cross(c.Sub(a)))
}

// ComputeFaceNormal returns the face normal of the triangle's points.
func (t *Triangle) ComputeFaceNormal() mgl32.Vec3 {
	return FaceNormal(t.Points[0], t.Points[1], t.Points[2])
}

// CalculateFaceNormal stores the face normal in t.FaceNormal.
func (t *Triangle) CalculateFaceNormal() {
	t.FaceNormal = t.ComputeFaceNormal()
}

// TriangleIndices unwinds the topology into discrete triangles. Strip
// triangles keep a consistent winding (odd ones swap their first two corners).
// Strip and fan triangles that repeat a vertex index are stitching or
// collapsed rows and are skipped. Point and line topologies have no triangles.
func (m *Mesh) TriangleIndices() [][3]uint32 {
	idx := m.ElementIndices()
	var tris [][3]uint32
	switch m.mode {
	case Triangles:
		tris = make([][3]uint32, 0, len(idx)/3)
		for i := 0; i+2 < len(idx); i += 3 {
			tris = append(tris, [3]uint32{idx[i], idx[i+1], idx[i+2]})
		}
	case TriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			t := [3]uint32{idx[i], idx[i+1], idx[i+2]}
			if i%2 == 1 {
				t[0], t[1] = t[1], t[0]
			}
			if !degenerate(t) {
				tris = append(tris, t)
			}
		}
	case TriangleFan:
		for i := 1; i+1 < len(idx); i++ {
			t := [3]uint32{idx[0], idx[i], idx[i+1]}
			if !degenerate(t) {
				tris = append(tris, t)
			}
		}
	}
	return tris
}

// ElementIndices returns the index buffer, or the implicit sequence
// 0..NumVertices-1 for a mesh drawn without indices. The result must not
// be modified.
func (m *Mesh) ElementIndices() []uint32 {
	if len(m.indices) > 0 {
		return m.indices
	}
	seq := make([]uint32, len(m.positions))
	for i := range seq {
		seq[i] = uint32(i)
	}
	return seq
}

func degenerate(t [3]uint32) bool {
	return t[0] == t[1] || t[1] == t[2] || t[0] == t[2]
}

// NumTriangles returns the number of triangles TriangleIndices would produce.
func (m *Mesh) NumTriangles() int {
	return len(m.TriangleIndices())
}

// UniqueTriangles copies every triangle out of the mesh. Vertices shared in
// the buffer are duplicated so that each triangle can be edited on its own.
func (m *Mesh) UniqueTriangles() []Triangle {
	ti := m.TriangleIndices()
	tris := make([]Triangle, len(ti))
	for n, t := range ti {
		tri := &tris[n]
		tri.HasNormals, tri.HasColors, tri.HasTexCoords = m.hasNormals, m.hasColors, m.hasTexCoords
		for k, vi := range t {
			tri.Points[k] = m.positions[vi]
			if m.hasNormals {
				tri.Normals[k] = m.normals[vi]
			}
			if m.hasColors {
				tri.Colors[k] = m.colors[vi]
			}
			if m.hasTexCoords {
				tri.TexCoords[k] = m.texCoords[vi]
			}
		}
		tri.CalculateFaceNormal()
	}
	return tris
}

// SetFromTriangles replaces the mesh contents with tris as an unshared
// triangle list: three fresh vertices and three sequential indices each.
// With useFaceNormal every corner gets its triangle's face normal.
// Channels follow the first triangle's flags; an empty list keeps the
// current channel flags and leaves the mesh empty.
func (m *Mesh) SetFromTriangles(tris []Triangle, useFaceNormal bool) {
	m.Clear()
	m.mode = Triangles
	if len(tris) == 0 {
		return
	}
	first := tris[0]
	setChannel(first.HasNormals || useFaceNormal, m.EnableNormals, m.DisableNormals)
	setChannel(first.HasColors, m.EnableColors, m.DisableColors)
	setChannel(first.HasTexCoords, m.EnableTexCoords, m.DisableTexCoords)

	for _, t := range tris {
		face := t.FaceNormal
		if useFaceNormal && face == (mgl32.Vec3{}) {
			face = t.ComputeFaceNormal()
		}
		for k := 0; k < 3; k++ {
			v := Vertex{Position: t.Points[k], Normal: t.Normals[k], Color: t.Colors[k], TexCoord: t.TexCoords[k]}
			if useFaceNormal {
				v.Normal = face
			}
			if m.hasColors && !t.HasColors {
				v.Color = White
			}
			m.indices = append(m.indices, m.AddVertex(v))
		}
	}
}

func setChannel(on bool, enable, disable func()) {
	if on {
		enable()
	} else {
		disable()
	}
}

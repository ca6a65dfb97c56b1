package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mathutil"
)

// FaceNormals returns one normal per triangle, or, when perVertex is set,
// three per triangle in corner order (the layout UniqueTriangles produces).
func (m *Mesh) FaceNormals(perVertex bool) []mgl32.Vec3 {
	ti := m.TriangleIndices()
	n := len(ti)
	if perVertex {
		n *= 3
	}
	out := make([]mgl32.Vec3, 0, n)
	for _, t := range ti {
		fn := FaceNormal(m.positions[t[0]], m.positions[t[1]], m.positions[t[2]])
		if perVertex {
			out = append(out, fn, fn, fn)
		} else {
			out = append(out, fn)
		}
	}
	return out
}

// ComputeFlatNormals rebuilds the mesh as unshared triangles, each carrying
// its face normal on all three corners.
func (m *Mesh) ComputeFlatNormals() {
	m.SetFromTriangles(m.UniqueTriangles(), true)
}

// SmoothNormals rebuilds the mesh as unshared triangles whose corner normals
// are the normalized sum of the face normals of every triangle touching the
// same position, restricted to faces within angleDeg of the corner's own
// face. Faces beyond the threshold keep a hard edge.
func (m *Mesh) SmoothNormals(angleDeg float32) {
	tris := m.UniqueTriangles()
	if len(tris) == 0 {
		return
	}

	corners := make([]mgl32.Vec3, 0, 3*len(tris))
	for _, t := range tris {
		corners = append(corners, t.Points[:]...)
	}
	group, nGroups := weldGroups(corners, WeldEpsilon)

	// triangles touching each welded position
	touching := make([][]int, nGroups)
	for c, g := range group {
		t := c / 3
		if l := len(touching[g]); l == 0 || touching[g][l-1] != t {
			touching[g] = append(touching[g], t)
		}
	}

	const slack = 1e-3
	smoothed := make([][3]mgl32.Vec3, len(tris))
	for t := range tris {
		own := tris[t].FaceNormal
		for k := 0; k < 3; k++ {
			var sum mgl32.Vec3
			for _, u := range touching[group[3*t+k]] {
				fn := tris[u].FaceNormal
				if u == t || mathutil.AngleDeg(own, fn) <= angleDeg+slack {
					sum = sum.Add(fn)
				}
			}
			n := mathutil.Normalize(sum)
			if n == (mgl32.Vec3{}) {
				n = own
			}
			smoothed[t][k] = n
		}
	}
	for t := range tris {
		tris[t].Normals = smoothed[t]
		tris[t].HasNormals = true
	}
	m.SetFromTriangles(tris, false)
}

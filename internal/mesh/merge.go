package mesh

import "github.com/go-gl/mathgl/mgl32"

// MergeDuplicateVertices collapses vertices whose position and enabled
// attributes are exactly equal, keeping the first occurrence and remapping
// indices. It returns the number of vertices removed. The drawn surface is
// unchanged; any region computed before the merge no longer applies.
func (m *Mesh) MergeDuplicateVertices() int {
	n := len(m.positions)
	if n == 0 {
		return 0
	}
	seen := make(map[Vertex]uint32, n)
	remap := make([]uint32, n)

	positions := make([]mgl32.Vec3, 0, n)
	var normals []mgl32.Vec3
	var colors []Color
	var texCoords []mgl32.Vec2

	for i := 0; i < n; i++ {
		v := m.vertex(i)
		if j, ok := seen[v]; ok {
			remap[i] = j
			continue
		}
		j := uint32(len(positions))
		seen[v] = j
		remap[i] = j
		positions = append(positions, v.Position)
		if m.hasNormals {
			normals = append(normals, v.Normal)
		}
		if m.hasColors {
			colors = append(colors, v.Color)
		}
		if m.hasTexCoords {
			texCoords = append(texCoords, v.TexCoord)
		}
	}

	if len(positions) == n {
		return 0
	}
	// a non-indexed mesh draws 0..n-1; make that explicit before collapsing
	if len(m.indices) == 0 {
		m.indices = m.ElementIndices()
	}
	for k, idx := range m.indices {
		m.indices[k] = remap[idx]
	}
	removed := n - len(positions)
	m.positions, m.normals, m.colors, m.texCoords = positions, normals, colors, texCoords
	return removed
}

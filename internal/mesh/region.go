package mesh

// Region is a contiguous slice of a mesh's index buffer, together with the
// vertex range those indices draw from. Multi-part solids describe their parts
// (box sides, caps, ...) as regions of one shared buffer.
//
// In strip topologies consecutive parts are joined with degenerate triangles;
// the joining indices are the first Stitch entries of the later region and
// reference the previous region's last vertex.
type Region struct {
	StartIndex, EndIndex   int
	StartVertex, EndVertex int
	Stitch                 int
}

func (r Region) NumIndices() int  { return r.EndIndex - r.StartIndex }
func (r Region) NumVertices() int { return r.EndVertex - r.StartVertex }
func (r Region) Empty() bool      { return r.NumIndices() == 0 }

func (m *Mesh) checkRegion(r Region) error {
	if r.StartIndex < 0 || r.EndIndex < r.StartIndex || r.EndIndex > len(m.indices) {
		return &IndexError{What: "region index", Index: r.EndIndex, Len: len(m.indices) + 1}
	}
	if r.StartVertex < 0 || r.EndVertex < r.StartVertex || r.EndVertex > len(m.positions) {
		return &IndexError{What: "region vertex", Index: r.EndVertex, Len: len(m.positions) + 1}
	}
	if r.Stitch < 0 || r.Stitch > r.NumIndices() {
		return &IndexError{What: "region stitch", Index: r.Stitch, Len: r.NumIndices() + 1}
	}
	return nil
}

// RegionIndices returns a copy of the region's raw indices.
func (m *Mesh) RegionIndices(r Region) ([]uint32, error) {
	if err := m.checkRegion(r); err != nil {
		return nil, err
	}
	return append([]uint32(nil), m.indices[r.StartIndex:r.EndIndex]...), nil
}

// SubMesh copies one region into a standalone mesh with indices rebased to
// the region's first vertex. Stitch indices are dropped.
func (m *Mesh) SubMesh(r Region) (*Mesh, error) {
	if err := m.checkRegion(r); err != nil {
		return nil, err
	}
	sub := &Mesh{
		mode:         m.mode,
		hasNormals:   m.hasNormals,
		hasColors:    m.hasColors,
		hasTexCoords: m.hasTexCoords,
	}
	sub.positions = append(sub.positions, m.positions[r.StartVertex:r.EndVertex]...)
	if m.hasNormals {
		sub.normals = append(sub.normals, m.normals[r.StartVertex:r.EndVertex]...)
	}
	if m.hasColors {
		sub.colors = append(sub.colors, m.colors[r.StartVertex:r.EndVertex]...)
	}
	if m.hasTexCoords {
		sub.texCoords = append(sub.texCoords, m.texCoords[r.StartVertex:r.EndVertex]...)
	}
	for _, idx := range m.indices[r.StartIndex+r.Stitch : r.EndIndex] {
		if int(idx) < r.StartVertex || int(idx) >= r.EndVertex {
			return nil, &IndexError{What: "region vertex", Index: int(idx), Len: r.EndVertex}
		}
		sub.indices = append(sub.indices, idx-uint32(r.StartVertex))
	}
	return sub, nil
}

// SetRegionColor paints the region's vertices, enabling colors if needed.
func (m *Mesh) SetRegionColor(r Region, c Color) error {
	if err := m.checkRegion(r); err != nil {
		return err
	}
	m.EnableColors()
	for i := r.StartVertex; i < r.EndVertex; i++ {
		m.colors[i] = c
	}
	return nil
}

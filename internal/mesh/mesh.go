package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one vertex with every attribute. Attributes whose channel is
// disabled on the mesh are ignored on insert and zero on read.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    Color
	TexCoord mgl32.Vec2
}

// Mesh is an indexed vertex buffer. Positions are always present; normals,
// colors and texture coordinates are optional channels whose presence is a
// mesh-wide flag. An enabled channel always holds exactly one entry per vertex.
type Mesh struct {
	mode      Mode
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	colors    []Color
	texCoords []mgl32.Vec2
	indices   []uint32

	hasNormals   bool
	hasColors    bool
	hasTexCoords bool
}

// New returns an empty mesh with the given topology.
func New(mode Mode) *Mesh {
	return &Mesh{mode: mode}
}

func (m *Mesh) Mode() Mode         { return m.mode }
func (m *Mesh) SetMode(mode Mode)  { m.mode = mode }
func (m *Mesh) NumVertices() int   { return len(m.positions) }
func (m *Mesh) NumIndices() int    { return len(m.indices) }
func (m *Mesh) HasNormals() bool   { return m.hasNormals }
func (m *Mesh) HasColors() bool    { return m.hasColors }
func (m *Mesh) HasTexCoords() bool { return m.hasTexCoords }

// Empty reports whether there is nothing to draw.
func (m *Mesh) Empty() bool {
	return m == nil || len(m.positions) == 0
}

// AddVertex appends v and returns its index.
func (m *Mesh) AddVertex(v Vertex) uint32 {
	m.positions = append(m.positions, v.Position)
	if m.hasNormals {
		m.normals = append(m.normals, v.Normal)
	}
	if m.hasColors {
		m.colors = append(m.colors, v.Color)
	}
	if m.hasTexCoords {
		m.texCoords = append(m.texCoords, v.TexCoord)
	}
	return uint32(len(m.positions) - 1)
}

// AddVertices appends vs in order.
func (m *Mesh) AddVertices(vs ...Vertex) {
	for _, v := range vs {
		m.AddVertex(v)
	}
}

// Vertex returns vertex i with its enabled attributes.
func (m *Mesh) Vertex(i int) (Vertex, error) {
	if err := checkRange("vertex", i, len(m.positions)); err != nil {
		return Vertex{}, err
	}
	return m.vertex(i), nil
}

func (m *Mesh) vertex(i int) Vertex {
	v := Vertex{Position: m.positions[i]}
	if m.hasNormals {
		v.Normal = m.normals[i]
	}
	if m.hasColors {
		v.Color = m.colors[i]
	}
	if m.hasTexCoords {
		v.TexCoord = m.texCoords[i]
	}
	return v
}

// RemoveVertex deletes vertex i. Indices above i are shifted down so the
// index buffer stays valid; a vertex that is still referenced cannot be removed.
func (m *Mesh) RemoveVertex(i int) error {
	if err := checkRange("vertex", i, len(m.positions)); err != nil {
		return err
	}
	for _, idx := range m.indices {
		if int(idx) == i {
			return ErrVertexInUse
		}
	}
	m.positions = append(m.positions[:i], m.positions[i+1:]...)
	if m.hasNormals {
		m.normals = append(m.normals[:i], m.normals[i+1:]...)
	}
	if m.hasColors {
		m.colors = append(m.colors[:i], m.colors[i+1:]...)
	}
	if m.hasTexCoords {
		m.texCoords = append(m.texCoords[:i], m.texCoords[i+1:]...)
	}
	for k, idx := range m.indices {
		if int(idx) > i {
			m.indices[k] = idx - 1
		}
	}
	return nil
}

// AddIndex appends one index. It must reference an existing vertex.
func (m *Mesh) AddIndex(i uint32) error {
	if err := checkRange("vertex", int(i), len(m.positions)); err != nil {
		return err
	}
	m.indices = append(m.indices, i)
	return nil
}

// AddIndices appends indices, stopping at the first invalid one.
func (m *Mesh) AddIndices(is ...uint32) error {
	for _, i := range is {
		if err := m.AddIndex(i); err != nil {
			return err
		}
	}
	return nil
}

// AddTriangle appends three indices.
func (m *Mesh) AddTriangle(a, b, c uint32) error {
	return m.AddIndices(a, b, c)
}

// RemoveIndex deletes the index at position i of the index buffer.
func (m *Mesh) RemoveIndex(i int) error {
	if err := checkRange("index", i, len(m.indices)); err != nil {
		return err
	}
	m.indices = append(m.indices[:i], m.indices[i+1:]...)
	return nil
}

// Index returns the index stored at position i.
func (m *Mesh) Index(i int) (uint32, error) {
	if err := checkRange("index", i, len(m.indices)); err != nil {
		return 0, err
	}
	return m.indices[i], nil
}

func (m *Mesh) SetPosition(i int, p mgl32.Vec3) error {
	if err := checkRange("vertex", i, len(m.positions)); err != nil {
		return err
	}
	m.positions[i] = p
	return nil
}

// SetNormal writes a normal, enabling the channel if needed.
func (m *Mesh) SetNormal(i int, n mgl32.Vec3) error {
	if err := checkRange("vertex", i, len(m.positions)); err != nil {
		return err
	}
	m.EnableNormals()
	m.normals[i] = n
	return nil
}

// SetColor writes a color, enabling the channel if needed.
func (m *Mesh) SetColor(i int, c Color) error {
	if err := checkRange("vertex", i, len(m.positions)); err != nil {
		return err
	}
	m.EnableColors()
	m.colors[i] = c
	return nil
}

// SetTexCoord writes a texture coordinate, enabling the channel if needed.
func (m *Mesh) SetTexCoord(i int, uv mgl32.Vec2) error {
	if err := checkRange("vertex", i, len(m.positions)); err != nil {
		return err
	}
	m.EnableTexCoords()
	m.texCoords[i] = uv
	return nil
}

// SetAllColors paints every vertex with c.
func (m *Mesh) SetAllColors(c Color) {
	m.EnableColors()
	for i := range m.colors {
		m.colors[i] = c
	}
}

// EnableNormals turns the normal channel on, back-filling zero normals.
func (m *Mesh) EnableNormals() {
	if m.hasNormals {
		return
	}
	m.hasNormals = true
	m.normals = make([]mgl32.Vec3, len(m.positions))
}

// EnableColors turns the color channel on, back-filling opaque white.
func (m *Mesh) EnableColors() {
	if m.hasColors {
		return
	}
	m.hasColors = true
	m.colors = make([]Color, len(m.positions))
	for i := range m.colors {
		m.colors[i] = White
	}
}

// EnableTexCoords turns the texture coordinate channel on, back-filling zeros.
func (m *Mesh) EnableTexCoords() {
	if m.hasTexCoords {
		return
	}
	m.hasTexCoords = true
	m.texCoords = make([]mgl32.Vec2, len(m.positions))
}

func (m *Mesh) DisableNormals()   { m.hasNormals, m.normals = false, nil }
func (m *Mesh) DisableColors()    { m.hasColors, m.colors = false, nil }
func (m *Mesh) DisableTexCoords() { m.hasTexCoords, m.texCoords = false, nil }

// Clear empties all storage and resets the topology to Triangles.
// Channel flags are kept.
func (m *Mesh) Clear() {
	m.mode = Triangles
	m.positions = m.positions[:0]
	m.indices = m.indices[:0]
	if m.hasNormals {
		m.normals = m.normals[:0]
	}
	if m.hasColors {
		m.colors = m.colors[:0]
	}
	if m.hasTexCoords {
		m.texCoords = m.texCoords[:0]
	}
}

// Positions returns a copy of the vertex positions.
func (m *Mesh) Positions() []mgl32.Vec3 {
	return append([]mgl32.Vec3(nil), m.positions...)
}

// Normals returns a copy of the normals, or nil when the channel is disabled.
func (m *Mesh) Normals() []mgl32.Vec3 {
	if !m.hasNormals {
		return nil
	}
	return append([]mgl32.Vec3(nil), m.normals...)
}

// Colors returns a copy of the colors, or nil when the channel is disabled.
func (m *Mesh) Colors() []Color {
	if !m.hasColors {
		return nil
	}
	return append([]Color(nil), m.colors...)
}

// TexCoords returns a copy of the texture coordinates, or nil when disabled.
func (m *Mesh) TexCoords() []mgl32.Vec2 {
	if !m.hasTexCoords {
		return nil
	}
	return append([]mgl32.Vec2(nil), m.texCoords...)
}

// Indices returns a copy of the index buffer.
func (m *Mesh) Indices() []uint32 {
	return append([]uint32(nil), m.indices...)
}

// MapTexCoords rewrites every texture coordinate through fn.
func (m *Mesh) MapTexCoords(fn func(mgl32.Vec2) mgl32.Vec2) {
	for i, uv := range m.texCoords {
		m.texCoords[i] = fn(uv)
	}
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	c := *m
	c.positions = append([]mgl32.Vec3(nil), m.positions...)
	c.indices = append([]uint32(nil), m.indices...)
	if m.hasNormals {
		c.normals = append([]mgl32.Vec3(nil), m.normals...)
	}
	if m.hasColors {
		c.colors = append([]Color(nil), m.colors...)
	}
	if m.hasTexCoords {
		c.texCoords = append([]mgl32.Vec2(nil), m.texCoords...)
	}
	return &c
}

// Bounds returns the axis-aligned bounding box of all positions.
// An empty mesh returns two zero vectors.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	if len(m.positions) == 0 {
		return
	}
	min, max = m.positions[0], m.positions[0]
	for _, p := range m.positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < min[k] {
				min[k] = p[k]
			}
			if p[k] > max[k] {
				max[k] = p[k]
			}
		}
	}
	return
}

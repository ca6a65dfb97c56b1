package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"meshgen/internal/mesh"
	"meshgen/internal/viewmatrix"
)

// DefaultMargin is the frame border in pixels at 1x supersampling.
const DefaultMargin = 16

// Renderer collects draw calls and rasterizes them into one image. Geometry
// is transformed to world space when it is submitted, so a mesh may change
// after DrawMesh returns.
type Renderer struct {
	Camera     viewmatrix.Camera
	Light      LightConfig
	Background color.NRGBA
	FillColor  mesh.Color // used when a mesh has no colors
	LineColor  mesh.Color // used for wireframes of meshes without colors
	PointSize  int        // point radius in pixels
	Margin     int

	texture *Sampler
	items   []drawItem
}

type drawItem struct {
	positions []mgl32.Vec3
	normals   []mgl32.Vec3
	colors    []mesh.Color
	uvs       []mgl32.Vec2
	texture   *Sampler

	tris   [][3]uint32
	lines  [][2]uint32
	points []uint32
	lit    bool
}

// NewRenderer returns a renderer with the default camera and lighting.
func NewRenderer() *Renderer {
	return &Renderer{
		Camera:    viewmatrix.DefaultCamera(),
		Light:     DefaultLightConfig(),
		FillColor: mesh.Color{R: 0.63, G: 0.63, B: 0.67, A: 1},
		LineColor: mesh.Black,
		PointSize: 1,
		Margin:    DefaultMargin,
	}
}

// SetTexture binds s for subsequent draw calls. Nil unbinds.
func (r *Renderer) SetTexture(s *Sampler) { r.texture = s }

// Len returns the number of recorded draw calls.
func (r *Renderer) Len() int { return len(r.items) }

// Reset drops recorded draw calls.
func (r *Renderer) Reset() { r.items = r.items[:0] }

// DrawMesh records m rasterized as mode, transformed by world.
func (r *Renderer) DrawMesh(m *mesh.Mesh, mode mesh.PolyMode, world mgl32.Mat4) {
	if m == nil || m.Empty() {
		return
	}
	it := drawItem{
		positions: make([]mgl32.Vec3, m.NumVertices()),
		colors:    m.Colors(),
	}
	for i, p := range m.Positions() {
		it.positions[i] = mgl32.TransformCoordinate(p, world)
	}
	if m.HasNormals() {
		nm := world.Mat3().Inv().Transpose()
		it.normals = make([]mgl32.Vec3, m.NumVertices())
		for i, n := range m.Normals() {
			it.normals[i] = nm.Mul3x1(n)
		}
	}

	tris := m.TriangleIndices()
	switch {
	case mode == mesh.PointCloud:
		it.points = uniqueIndices(m.ElementIndices())
	case mode == mesh.Wireframe && len(tris) > 0:
		for _, t := range tris {
			it.lines = append(it.lines, [2]uint32{t[0], t[1]}, [2]uint32{t[1], t[2]}, [2]uint32{t[2], t[0]})
		}
	case len(tris) > 0:
		it.tris = tris
		it.lit = true
		if m.HasTexCoords() && r.texture != nil {
			it.uvs = m.TexCoords()
			it.texture = r.texture
		}
	default:
		it.lines, it.points = lineIndices(m.Mode(), m.ElementIndices())
	}
	r.items = append(r.items, it)
}

func uniqueIndices(idx []uint32) []uint32 {
	seen := make(map[uint32]bool, len(idx))
	out := make([]uint32, 0, len(idx))
	for _, i := range idx {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}
	return out
}

func lineIndices(mode mesh.Mode, idx []uint32) (lines [][2]uint32, points []uint32) {
	switch mode {
	case mesh.Lines:
		for i := 0; i+1 < len(idx); i += 2 {
			lines = append(lines, [2]uint32{idx[i], idx[i+1]})
		}
	case mesh.LineStrip:
		for i := 0; i+1 < len(idx); i++ {
			lines = append(lines, [2]uint32{idx[i], idx[i+1]})
		}
	default:
		points = idx
	}
	return lines, points
}

// Render rasterizes everything recorded so far into a size x size image,
// framed so the combined geometry fits inside the margin.
func (r *Renderer) Render(size int) *image.NRGBA {
	fb := NewFrameBuffer(size, size)
	fb.Fill(r.Background)
	if len(r.items) == 0 {
		return fb.Image()
	}

	var all []mgl32.Vec3
	for _, it := range r.items {
		all = append(all, it.positions...)
	}
	min, max := viewmatrix.Bounds(all, r.Camera.ViewMatrix())
	proj := viewmatrix.NewProjection(r.Camera, min, max, size, r.Margin)

	for i := range r.items {
		r.rasterize(fb, &proj, &r.items[i])
	}
	return fb.Image()
}

func (r *Renderer) rasterize(fb *FrameBuffer, proj *viewmatrix.Projection, it *drawItem) {
	sv := make([]ScreenVertex, len(it.positions))
	for i, p := range it.positions {
		v := &sv[i]
		v.X, v.Y, v.Z = proj.Project(p)
		c := r.FillColor
		if !it.lit {
			c = r.LineColor
		}
		if it.colors != nil {
			c = it.colors[i]
		}
		v.Color = [4]float64{float64(c.R), float64(c.G), float64(c.B), float64(c.A)}
		if it.normals != nil {
			v.Normal = toUnit64(proj.ViewNormal(it.normals[i]))
		}
		if it.uvs != nil {
			v.UV = [2]float64{float64(it.uvs[i][0]), float64(it.uvs[i][1])}
		}
	}

	for _, t := range it.tris {
		tri := [3]ScreenVertex{sv[t[0]], sv[t[1]], sv[t[2]]}
		if it.normals == nil {
			n := toUnit64(proj.ViewNormal(mesh.FaceNormal(it.positions[t[0]], it.positions[t[1]], it.positions[t[2]])))
			tri[0].Normal, tri[1].Normal, tri[2].Normal = n, n, n
		}
		RasterizeTriangle(fb, tri, it.texture, &r.Light)
	}
	for _, l := range it.lines {
		DrawLine(fb, sv[l[0]], sv[l[1]])
	}
	for _, p := range it.points {
		DrawPoint(fb, sv[p], r.PointSize)
	}
}

func toUnit64(v mgl32.Vec3) mgl64.Vec3 {
	out := mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
	l := out.Len()
	if l < 1e-12 || math.IsNaN(l) {
		return mgl64.Vec3{0, 0, 1}
	}
	return out.Mul(1 / l)
}

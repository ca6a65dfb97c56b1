package primitive

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mesh"
)

// Sphere is a latitude/longitude sphere centred on the origin. The poles
// lie on the Y axis and are single vertices.
type Sphere struct {
	Base
	radius float32
	res    SphereResolution
}

// NewSphere builds a sphere with the given number of latitude bands.
func NewSphere(radius float32, segments int, mode mesh.Mode) *Sphere {
	s := &Sphere{}
	s.Base = newBase(s, mesh.TriangleStrip)
	s.Set(radius, segments, mode)
	return s
}

// Set replaces every parameter and regenerates.
func (s *Sphere) Set(radius float32, segments int, mode mesh.Mode) {
	s.radius = nonNegative(radius)
	s.res = SphereResolution{segments}.clamped()
	s.SetMode(mode)
}

func (s *Sphere) SetRadius(radius float32) {
	s.radius = nonNegative(radius)
	s.regenerate()
}

func (s *Sphere) Radius() float32 { return s.radius }

func (s *Sphere) SetResolution(segments int) {
	s.res = SphereResolution{segments}.clamped()
	s.regenerate()
}

func (s *Sphere) kind() Kind             { return KindSphere }
func (s *Sphere) resolution() Resolution { return s.res }

// setResolutionXYZ reads x as the band count.
func (s *Sphere) setResolutionXYZ(x, _, _ int) {
	s.res = SphereResolution{x}.clamped()
}

func (s *Sphere) supportsMode(mode mesh.Mode) bool {
	return mode == mesh.Triangles || mode == mesh.TriangleStrip
}

// Rows run from the south pole (row 0) to the north pole.
func (s *Sphere) shape() gridShape {
	bands := s.res.Segments
	return gridShape{
		bands:     bands,
		cols:      2 * bands,
		collapsed: func(r int) bool { return r == 0 || r == bands },
	}
}

func (s *Sphere) regions(mode mesh.Mode) []mesh.Region {
	return layoutRegions(mode, s.shape())
}

func (s *Sphere) build(m *mesh.Mesh, mode mesh.Mode) error {
	g := s.shape()
	return emitGrid(m, g, mode, func(r, c int) mesh.Vertex {
		phi := math32.Pi * (1 - float32(r)/float32(g.bands))
		u := float32(0.5)
		if c >= 0 {
			u = float32(c) / float32(g.cols)
		}
		theta := 2 * math32.Pi * u
		sinPhi, cosPhi := math32.Sincos(phi)
		sinTheta, cosTheta := math32.Sincos(theta)
		n := mgl32.Vec3{sinPhi * cosTheta, cosPhi, sinPhi * sinTheta}
		if c < 0 {
			n = mgl32.Vec3{0, 1, 0}
			if r == 0 {
				n[1] = -1
			}
		}
		return mesh.Vertex{
			Position: n.Mul(s.radius),
			Normal:   n,
			TexCoord: mgl32.Vec2{u, phi / math32.Pi},
		}
	})
}

package primitive

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mathutil"
	"meshgen/internal/mesh"
)

// IcoSphere is a subdivided icosahedron projected onto a sphere. After n
// iterations it has 10·4ⁿ+2 vertices and 20·4ⁿ triangles; vertices on the
// texture seam are shared, not duplicated.
type IcoSphere struct {
	Base
	radius float32
	res    IcoSphereResolution
}

// NewIcoSphere builds an ico-sphere subdivided iterations times.
func NewIcoSphere(radius float32, iterations int) *IcoSphere {
	s := &IcoSphere{}
	s.Base = newBase(s, mesh.Triangles)
	s.Set(radius, iterations)
	return s
}

// Set replaces every parameter and regenerates.
func (s *IcoSphere) Set(radius float32, iterations int) {
	s.radius = nonNegative(radius)
	s.res = IcoSphereResolution{iterations}.clamped()
	s.regenerate()
}

func (s *IcoSphere) SetRadius(radius float32) {
	s.radius = nonNegative(radius)
	s.regenerate()
}

func (s *IcoSphere) Radius() float32 { return s.radius }

func (s *IcoSphere) SetResolution(iterations int) {
	s.res = IcoSphereResolution{iterations}.clamped()
	s.regenerate()
}

func (s *IcoSphere) kind() Kind             { return KindIcoSphere }
func (s *IcoSphere) resolution() Resolution { return s.res }

// setResolutionXYZ reads x as the iteration count.
func (s *IcoSphere) setResolutionXYZ(x, _, _ int) {
	s.res = IcoSphereResolution{x}.clamped()
}

func (s *IcoSphere) supportsMode(mode mesh.Mode) bool { return mode == mesh.Triangles }

func (s *IcoSphere) regions(mode mesh.Mode) []mesh.Region {
	n := 1 << (2 * s.res.Iterations) // 4ⁿ
	return []mesh.Region{{
		EndIndex:  60 * n,
		EndVertex: 10*n + 2,
	}}
}

var icosahedronFaces = [20][3]uint32{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

func icosahedronVertices() []mgl32.Vec3 {
	t := (1 + math32.Sqrt(5)) / 2
	vs := []mgl32.Vec3{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range vs {
		vs[i] = vs[i].Normalize()
	}
	return vs
}

// subdivide splits every face into four, sharing edge midpoints between
// neighbouring faces. New points are pushed back onto the unit sphere.
func subdivide(points []mgl32.Vec3, faces [][3]uint32) ([]mgl32.Vec3, [][3]uint32) {
	mid := make(map[uint64]uint32, len(faces)*3/2)
	midpoint := func(a, b uint32) uint32 {
		if a > b {
			a, b = b, a
		}
		key := uint64(a)<<32 | uint64(b)
		if i, ok := mid[key]; ok {
			return i
		}
		i := uint32(len(points))
		points = append(points, mathutil.Normalize(points[a].Add(points[b])))
		mid[key] = i
		return i
	}
	out := make([][3]uint32, 0, 4*len(faces))
	for _, f := range faces {
		ab := midpoint(f[0], f[1])
		bc := midpoint(f[1], f[2])
		ca := midpoint(f[2], f[0])
		out = append(out,
			[3]uint32{f[0], ab, ca},
			[3]uint32{f[1], bc, ab},
			[3]uint32{f[2], ca, bc},
			[3]uint32{ab, bc, ca},
		)
	}
	return points, out
}

func (s *IcoSphere) build(m *mesh.Mesh, _ mesh.Mode) error {
	points := icosahedronVertices()
	faces := icosahedronFaces[:]
	for i := 0; i < s.res.Iterations; i++ {
		points, faces = subdivide(points, faces)
	}
	for _, n := range points {
		m.AddVertex(mesh.Vertex{
			Position: n.Mul(s.radius),
			Normal:   n,
			TexCoord: sphericalUV(n),
		})
	}
	idx := make([]uint32, 0, 3*len(faces))
	for _, f := range faces {
		idx = append(idx, f[0], f[1], f[2])
	}
	return m.AddIndices(idx...)
}

// sphericalUV maps a unit direction to the latitude/longitude unwrap the
// UV sphere uses.
func sphericalUV(n mgl32.Vec3) mgl32.Vec2 {
	u := math32.Atan2(n[2], n[0]) / (2 * math32.Pi)
	if u < 0 {
		u++
	}
	v := math32.Acos(mathutil.Clamp(n[1], -1, 1)) / math32.Pi
	return mgl32.Vec2{u, v}
}

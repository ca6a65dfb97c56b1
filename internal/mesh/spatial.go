package mesh

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WeldEpsilon is the distance under which two positions count as the same point.
const WeldEpsilon float32 = 1e-5

type cellKey [3]int64

// spatialHash buckets points into cubic cells of side eps so that a lookup
// only inspects the 27 cells around the query point.
type spatialHash struct {
	eps     float32
	buckets map[cellKey][]int
	points  []mgl32.Vec3
}

func newSpatialHash(eps float32, sizeHint int) *spatialHash {
	return &spatialHash{
		eps:     eps,
		buckets: make(map[cellKey][]int, sizeHint),
	}
}

func (h *spatialHash) key(p mgl32.Vec3) cellKey {
	return cellKey{
		int64(math32.Floor(p[0] / h.eps)),
		int64(math32.Floor(p[1] / h.eps)),
		int64(math32.Floor(p[2] / h.eps)),
	}
}

// insert stores p and returns its id.
func (h *spatialHash) insert(p mgl32.Vec3) int {
	id := len(h.points)
	h.points = append(h.points, p)
	k := h.key(p)
	h.buckets[k] = append(h.buckets[k], id)
	return id
}

// find returns the first stored point within eps of p.
func (h *spatialHash) find(p mgl32.Vec3) (int, bool) {
	k := h.key(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, id := range h.buckets[cellKey{k[0] + dx, k[1] + dy, k[2] + dz}] {
					if h.points[id].Sub(p).Len() <= h.eps {
						return id, true
					}
				}
			}
		}
	}
	return 0, false
}

// weldGroups assigns each point the id of the first earlier point within eps
// (or a new id). Ids are dense, starting at 0.
func weldGroups(points []mgl32.Vec3, eps float32) (groups []int, n int) {
	h := newSpatialHash(eps, len(points))
	groups = make([]int, len(points))
	for i, p := range points {
		if id, ok := h.find(p); ok {
			groups[i] = id
			continue
		}
		groups[i] = h.insert(p)
	}
	return groups, len(h.points)
}

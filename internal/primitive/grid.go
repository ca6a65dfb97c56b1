package primitive

import (
	"meshgen/internal/mesh"
)

// gridShape is a lattice of bands+1 vertex rows and cols+1 columns. A
// collapsed row (pole, apex, cap centre) is a single vertex shared by every
// column. A shape with zero bands emits nothing.
//
// Rows are connected so that rowDir × colDir is the front face: triangle
// (r,c) (r+1,c) (r,c+1) is counter-clockwise seen from the front.
type gridShape struct {
	bands, cols int
	collapsed   func(row int) bool
}

func (g gridShape) isCollapsed(row int) bool {
	return g.collapsed != nil && g.collapsed(row)
}

func (g gridShape) numVertices() int {
	if g.bands <= 0 {
		return 0
	}
	n := 0
	for r := 0; r <= g.bands; r++ {
		if g.isCollapsed(r) {
			n++
		} else {
			n += g.cols + 1
		}
	}
	return n
}

func (g gridShape) numIndices(mode mesh.Mode) int {
	if g.bands <= 0 {
		return 0
	}
	if mode == mesh.TriangleStrip {
		// one run per band plus a two-index join between bands
		return g.bands*2*(g.cols+1) + 2*(g.bands-1)
	}
	n := 0
	for r := 0; r < g.bands; r++ {
		top, bottom := g.isCollapsed(r), g.isCollapsed(r+1)
		switch {
		case top && bottom:
		case top || bottom:
			n += 3 * g.cols
		default:
			n += 6 * g.cols
		}
	}
	return n
}

// layoutRegions lays shapes out back to back in one buffer. In strip mode a
// non-empty shape following another one starts with two stitching indices.
func layoutRegions(mode mesh.Mode, shapes ...gridShape) []mesh.Region {
	regions := make([]mesh.Region, len(shapes))
	vi, ii := 0, 0
	joined := false
	for k, g := range shapes {
		nv, ni := g.numVertices(), g.numIndices(mode)
		stitch := 0
		if mode == mesh.TriangleStrip && ni > 0 && joined {
			stitch = 2
		}
		regions[k] = mesh.Region{
			StartIndex:  ii,
			EndIndex:    ii + stitch + ni,
			StartVertex: vi,
			EndVertex:   vi + nv,
			Stitch:      stitch,
		}
		vi += nv
		ii += stitch + ni
		joined = joined || ni > 0
	}
	return regions
}

// emitGrid appends the shape's vertices and connectivity to m. vertex is
// called row by row; for a collapsed row it is called once with col -1.
func emitGrid(m *mesh.Mesh, g gridShape, mode mesh.Mode, vertex func(row, col int) mesh.Vertex) error {
	if g.bands <= 0 {
		return nil
	}
	base := uint32(m.NumVertices())
	rowStart := make([]uint32, g.bands+1)
	next := base
	for r := 0; r <= g.bands; r++ {
		rowStart[r] = next
		if g.isCollapsed(r) {
			m.AddVertex(vertex(r, -1))
			next++
			continue
		}
		for c := 0; c <= g.cols; c++ {
			m.AddVertex(vertex(r, c))
		}
		next += uint32(g.cols + 1)
	}
	at := func(r, c int) uint32 {
		if g.isCollapsed(r) {
			return rowStart[r]
		}
		return rowStart[r] + uint32(c)
	}

	idx := make([]uint32, 0, g.numIndices(mode)+2)
	if mode == mesh.TriangleStrip {
		if n := m.NumIndices(); n > 0 {
			last, err := m.Index(n - 1)
			if err != nil {
				return err
			}
			idx = append(idx, last, at(0, 0))
		}
		for r := 0; r < g.bands; r++ {
			if r > 0 {
				idx = append(idx, at(r, g.cols), at(r, 0))
			}
			for c := 0; c <= g.cols; c++ {
				idx = append(idx, at(r, c), at(r+1, c))
			}
		}
		return m.AddIndices(idx...)
	}

	for r := 0; r < g.bands; r++ {
		for c := 0; c < g.cols; c++ {
			a, b := at(r, c), at(r+1, c)
			c2, d := at(r, c+1), at(r+1, c+1)
			if a != c2 {
				idx = append(idx, a, b, c2)
			}
			if b != d {
				idx = append(idx, c2, b, d)
			}
		}
	}
	return m.AddIndices(idx...)
}

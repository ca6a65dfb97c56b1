package mesh

import "fmt"

// Mode is the topology tag that turns an index sequence into primitives.
type Mode int

const (
	Points Mode = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

var modeNames = [...]string{"points", "lines", "line-strip", "triangles", "triangle-strip", "triangle-fan"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses a topology name as printed by Mode.String.
// "strip" and "fan" are accepted as short forms.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "strip":
		return TriangleStrip, nil
	case "fan":
		return TriangleFan, nil
	}
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return Triangles, fmt.Errorf("mesh: unknown mode %q", s)
}

// IsTriangles reports whether the topology produces filled triangles.
func (m Mode) IsTriangles() bool {
	return m == Triangles || m == TriangleStrip || m == TriangleFan
}

// PolyMode selects how a mesh is rasterized.
type PolyMode int

const (
	Fill PolyMode = iota
	Wireframe
	PointCloud
)

func (p PolyMode) String() string {
	switch p {
	case Fill:
		return "faces"
	case Wireframe:
		return "wireframe"
	case PointCloud:
		return "vertices"
	}
	return fmt.Sprintf("PolyMode(%d)", int(p))
}

// ParsePolyMode parses "faces", "wireframe" or "vertices".
func ParsePolyMode(s string) (PolyMode, error) {
	switch s {
	case "", "faces", "fill":
		return Fill, nil
	case "wireframe", "lines":
		return Wireframe, nil
	case "vertices", "points":
		return PointCloud, nil
	}
	return Fill, fmt.Errorf("mesh: unknown draw mode %q", s)
}

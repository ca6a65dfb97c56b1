package primitive

import "meshgen/internal/mathutil"

// Clamp floors. Parameters below these are raised rather than rejected.
const (
	MinPlaneSegments  = 1
	MinSphereSegments = 2
	MaxIcoIterations  = 8
	MinBoxSegments    = 1
	MinRadiusSegments = 3
	MinHeightSegments = 1
)

// Resolution is the tessellation of one solid. Each kind has its own
// concrete type carrying only the fields that kind uses.
type Resolution interface {
	Kind() Kind
	// XYZ returns the uniform three-axis form accepted by SetResolutionXYZ.
	XYZ() [3]int
}

// PlaneResolution counts grid cells along X (Columns) and Y (Rows).
type PlaneResolution struct {
	Columns, Rows int
}

func (PlaneResolution) Kind() Kind    { return KindPlane }
func (r PlaneResolution) XYZ() [3]int { return [3]int{r.Columns, r.Rows, 0} }
func (r PlaneResolution) clamped() PlaneResolution {
	return PlaneResolution{max(r.Columns, MinPlaneSegments), max(r.Rows, MinPlaneSegments)}
}

// SphereResolution gives the number of latitude bands. The sphere has twice
// as many longitude segments.
type SphereResolution struct {
	Segments int
}

func (SphereResolution) Kind() Kind    { return KindSphere }
func (r SphereResolution) XYZ() [3]int { return [3]int{r.Segments, r.Segments, 0} }
func (r SphereResolution) clamped() SphereResolution {
	return SphereResolution{max(r.Segments, MinSphereSegments)}
}

// IcoSphereResolution is the number of subdivision rounds.
type IcoSphereResolution struct {
	Iterations int
}

func (IcoSphereResolution) Kind() Kind    { return KindIcoSphere }
func (r IcoSphereResolution) XYZ() [3]int { return [3]int{r.Iterations, 0, 0} }
func (r IcoSphereResolution) clamped() IcoSphereResolution {
	return IcoSphereResolution{mathutil.ClampInt(r.Iterations, 0, MaxIcoIterations)}
}

// BoxResolution counts segments along each axis; each face uses the two
// counts that span it.
type BoxResolution struct {
	Width, Height, Depth int
}

func (BoxResolution) Kind() Kind    { return KindBox }
func (r BoxResolution) XYZ() [3]int { return [3]int{r.Width, r.Height, r.Depth} }
func (r BoxResolution) clamped() BoxResolution {
	return BoxResolution{
		max(r.Width, MinBoxSegments),
		max(r.Height, MinBoxSegments),
		max(r.Depth, MinBoxSegments),
	}
}

// ConeResolution counts segments around the axis, along the slant and
// across the base cap. Cap 0 leaves the cone open.
type ConeResolution struct {
	Radius, Height, Cap int
}

func (ConeResolution) Kind() Kind    { return KindCone }
func (r ConeResolution) XYZ() [3]int { return [3]int{r.Radius, r.Height, r.Cap} }
func (r ConeResolution) clamped() ConeResolution {
	return ConeResolution{
		max(r.Radius, MinRadiusSegments),
		max(r.Height, MinHeightSegments),
		max(r.Cap, 0),
	}
}

// CylinderResolution counts segments around the axis, along the body and
// across each cap. Cap 0 leaves both ends open.
type CylinderResolution struct {
	Radius, Height, Cap int
}

func (CylinderResolution) Kind() Kind    { return KindCylinder }
func (r CylinderResolution) XYZ() [3]int { return [3]int{r.Radius, r.Height, r.Cap} }
func (r CylinderResolution) clamped() CylinderResolution {
	return CylinderResolution{
		max(r.Radius, MinRadiusSegments),
		max(r.Height, MinHeightSegments),
		max(r.Cap, 0),
	}
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

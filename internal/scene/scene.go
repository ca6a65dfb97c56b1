// Package scene turns config entries into primitives and renders them.
package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/config"
	"meshgen/internal/mesh"
	"meshgen/internal/primitive"
	"meshgen/internal/raster"
	"meshgen/internal/texture"
	"meshgen/internal/transform"
	"meshgen/internal/viewmatrix"
)

// Primitive is the part of every solid's API a scene uses.
type Primitive interface {
	Kind() primitive.Kind
	Mode() mesh.Mode
	SetMode(mode mesh.Mode)
	Resolution() primitive.Resolution
	Mesh() *mesh.Mesh
	Transform() *transform.Node
	NumRegions() int
	Region(id int) (mesh.Region, error)

	SetColor(c mesh.Color)
	SetRegionColor(id int, c mesh.Color) error
	SetTexCoords(u1, v1, u2, v2 float32)
	SetTexCoordsFromTexture(t primitive.TextureInfo)
	MergeDuplicateVertices() int
	SmoothNormals(angleDeg float32)
	ComputeFlatNormals()

	DrawMode(r primitive.Renderer, mode mesh.PolyMode)
	DrawNormals(r primitive.Renderer, length float32, faceNormals bool)
	DrawAxes(r primitive.Renderer, size float32)
}

// Object is a built primitive with the draw settings of its entry.
type Object struct {
	Name      string
	Primitive Primitive
	Texture   *texture.Texture
	Draw      []mesh.PolyMode
	Normals   float32
	Axes      float32
	Camera    viewmatrix.Camera
}

// Per-kind size and resolution used for missing components.
var (
	defaultSize = map[primitive.Kind][]float32{
		primitive.KindPlane:     {2, 2},
		primitive.KindSphere:    {1},
		primitive.KindIcoSphere: {1},
		primitive.KindBox:       {1, 1, 1},
		primitive.KindCone:      {1, 2},
		primitive.KindCylinder:  {1, 2},
	}
	defaultResolution = map[primitive.Kind][]int{
		primitive.KindPlane:     {4, 4},
		primitive.KindSphere:    {16},
		primitive.KindIcoSphere: {2},
		primitive.KindBox:       {2, 2, 2},
		primitive.KindCone:      {16, 3, 2},
		primitive.KindCylinder:  {16, 4, 2},
	}
)

func pick[T any](vals, defs []T, i int) T {
	if i < len(vals) {
		return vals[i]
	}
	return defs[i]
}

// Build creates the primitive an entry describes. Textures are looked up
// through textures, which may be nil when no entry uses one.
func Build(e config.Entry, textures texture.Resolver) (*Object, error) {
	kind, err := primitive.ParseKind(e.Kind)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", e.Name, err)
	}
	mode := primitive.DefaultMode(kind)
	if e.Mode != "" {
		if mode, err = mesh.ParseMode(e.Mode); err != nil {
			return nil, fmt.Errorf("scene: %s: %w", e.Name, err)
		}
	}

	ds, dr := defaultSize[kind], defaultResolution[kind]
	sz := func(i int) float32 { return pick(e.Size, ds, i) }
	res := func(i int) int { return pick(e.Resolution, dr, i) }

	var p Primitive
	switch kind {
	case primitive.KindPlane:
		p = primitive.NewPlane(sz(0), sz(1), res(0), res(1), mode)
	case primitive.KindSphere:
		p = primitive.NewSphere(sz(0), res(0), mode)
	case primitive.KindIcoSphere:
		p = primitive.NewIcoSphere(sz(0), res(0))
	case primitive.KindBox:
		p = primitive.NewBox(sz(0), sz(1), sz(2), res(0), res(1), res(2))
	case primitive.KindCone:
		p = primitive.NewCone(sz(0), sz(1), res(0), res(1), res(2), mode)
	case primitive.KindCylinder:
		capped := e.Capped == nil || *e.Capped
		p = primitive.NewCylinder(sz(0), sz(1), res(0), res(1), res(2), capped, mode)
	}
	// Box and ico-sphere constructors take no topology.
	if p.Mode() != mode {
		p.SetMode(mode)
	}

	o := &Object{
		Name:      e.Name,
		Primitive: p,
		Normals:   e.Normals,
		Axes:      e.Axes,
		Camera:    viewmatrix.DefaultCamera(),
	}
	if e.Camera != nil {
		o.Camera = *e.Camera
	}
	if err := applyTransform(p.Transform(), e); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", e.Name, err)
	}
	if err := o.applyTexture(e, textures); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", e.Name, err)
	}
	if err := applyColors(p, e); err != nil {
		return nil, fmt.Errorf("scene: %s: %w", e.Name, err)
	}

	// Layout changes last; they invalidate regions.
	if e.Merge {
		p.MergeDuplicateVertices()
	}
	if e.Smooth != nil {
		p.SmoothNormals(*e.Smooth)
	}
	if e.FlatNormals {
		p.ComputeFlatNormals()
	}

	if len(e.Draw) == 0 {
		o.Draw = []mesh.PolyMode{mesh.Fill}
	}
	for _, d := range e.Draw {
		pm, err := mesh.ParsePolyMode(d)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: %w", e.Name, err)
		}
		o.Draw = append(o.Draw, pm)
	}
	return o, nil
}

func applyTransform(n *transform.Node, e config.Entry) error {
	if len(e.Position) > 0 {
		if len(e.Position) != 3 {
			return fmt.Errorf("position needs 3 components, got %d", len(e.Position))
		}
		n.Position = mgl32.Vec3{e.Position[0], e.Position[1], e.Position[2]}
	}
	if len(e.Rotation) > 0 {
		if len(e.Rotation) != 3 {
			return fmt.Errorf("rotation needs 3 components, got %d", len(e.Rotation))
		}
		n.SetEuler(e.Rotation[0], e.Rotation[1], e.Rotation[2])
	}
	switch len(e.Scale) {
	case 0:
	case 1:
		n.Scale = mgl32.Vec3{e.Scale[0], e.Scale[0], e.Scale[0]}
	case 3:
		n.Scale = mgl32.Vec3{e.Scale[0], e.Scale[1], e.Scale[2]}
	default:
		return fmt.Errorf("scale needs 1 or 3 components, got %d", len(e.Scale))
	}
	return nil
}

func (o *Object) applyTexture(e config.Entry, textures texture.Resolver) error {
	if e.Texture != "" {
		if textures == nil {
			return fmt.Errorf("texture %q: no texture source", e.Texture)
		}
		tex := textures.Resolve(e.Texture)
		if tex == nil {
			return fmt.Errorf("texture %q not found", e.Texture)
		}
		if e.PixelTexCoords {
			// Cached textures are shared; addressing is per object.
			own := texture.New(tex.Image())
			own.Path = tex.Path
			own.SetNormalized(false)
			tex = own
		}
		o.Texture = tex
		o.Primitive.SetTexCoordsFromTexture(tex)
	}
	switch len(e.TexCoords) {
	case 0:
	case 4:
		t := e.TexCoords
		o.Primitive.SetTexCoords(t[0], t[1], t[2], t[3])
	default:
		return fmt.Errorf("tex_coords needs 4 components, got %d", len(e.TexCoords))
	}
	return nil
}

func applyColors(p Primitive, e config.Entry) error {
	if e.Color != "" {
		c, err := config.ParseColor(e.Color)
		if err != nil {
			return err
		}
		p.SetColor(c)
	}
	names := make([]string, 0, len(e.RegionColors))
	for name := range e.RegionColors {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		id, err := primitive.RegionID(p.Kind(), name)
		if err != nil {
			return err
		}
		c, err := config.ParseColor(e.RegionColors[name])
		if err != nil {
			return err
		}
		if err := p.SetRegionColor(id, c); err != nil {
			return err
		}
	}
	return nil
}

// Submit draws the object into r with its texture bound.
func (o *Object) Submit(r *raster.Renderer) {
	if o.Texture != nil {
		s := raster.NewSampler(o.Texture.Image())
		if !o.Texture.Normalized() {
			s.Pixel()
		}
		r.SetTexture(s)
		defer r.SetTexture(nil)
	}
	for _, m := range o.Draw {
		o.Primitive.DrawMode(r, m)
	}
	if o.Normals > 0 {
		o.Primitive.DrawNormals(r, o.Normals, false)
	}
	if o.Axes > 0 {
		o.Primitive.DrawAxes(r, o.Axes)
	}
}

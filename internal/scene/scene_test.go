package scene

import (
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshgen/internal/config"
	"meshgen/internal/mesh"
	"meshgen/internal/primitive"
	"meshgen/internal/raster"
	"meshgen/internal/texture"
	"meshgen/internal/viewmatrix"
)

type mapResolver map[string]*texture.Texture

func (m mapResolver) Resolve(name string) *texture.Texture { return m[name] }

func TestBuildDefaults(t *testing.T) {
	o, err := Build(config.Entry{Name: "b", Kind: "box"}, nil)
	require.NoError(t, err)
	p := o.Primitive
	assert.Equal(t, primitive.KindBox, p.Kind())
	assert.Equal(t, mesh.Triangles, p.Mode())
	assert.Equal(t, primitive.BoxResolution{Width: 2, Height: 2, Depth: 2}, p.Resolution())
	assert.Equal(t, 6*9, p.Mesh().NumVertices())
	assert.Equal(t, []mesh.PolyMode{mesh.Fill}, o.Draw)
	assert.Equal(t, viewmatrix.DefaultCamera(), o.Camera)
	assert.Nil(t, o.Texture)
}

func TestBuildKindsAndModes(t *testing.T) {
	capped := false
	o, err := Build(config.Entry{Kind: "cylinder", Mode: "triangles", Capped: &capped, Resolution: []int{8}}, nil)
	require.NoError(t, err)
	assert.Equal(t, mesh.Triangles, o.Primitive.Mode())
	assert.Equal(t, primitive.CylinderResolution{Radius: 8, Height: 4, Cap: 2}, o.Primitive.Resolution())
	assert.False(t, o.Primitive.(*primitive.Cylinder).Capped())

	o, err = Build(config.Entry{Kind: "ico", Mode: "strip", Resolution: []int{1}}, nil)
	require.NoError(t, err)
	assert.Equal(t, mesh.Triangles, o.Primitive.Mode(), "ico-sphere has no strip form")
	assert.Equal(t, 42, o.Primitive.Mesh().NumVertices())

	o, err = Build(config.Entry{Kind: "box", Mode: "strip"}, nil)
	require.NoError(t, err)
	assert.Equal(t, mesh.TriangleStrip, o.Primitive.Mode())

	o, err = Build(config.Entry{Kind: "plane", Size: []float32{4}}, nil)
	require.NoError(t, err)
	pl := o.Primitive.(*primitive.Plane)
	assert.Equal(t, float32(4), pl.Width())
	assert.Equal(t, float32(2), pl.Height(), "missing components fall back to defaults")
}

func TestBuildErrors(t *testing.T) {
	for name, e := range map[string]config.Entry{
		"kind":         {Kind: "torus"},
		"mode":         {Kind: "box", Mode: "quads"},
		"color":        {Kind: "box", Color: "blurple"},
		"region":       {Kind: "box", RegionColors: map[string]string{"lid": "red"}},
		"region color": {Kind: "box", RegionColors: map[string]string{"top": "#zz"}},
		"position":     {Kind: "box", Position: []float32{1, 2}},
		"rotation":     {Kind: "box", Rotation: []float32{1}},
		"scale":        {Kind: "box", Scale: []float32{1, 2}},
		"tex coords":   {Kind: "box", TexCoords: []float32{0, 0, 1}},
		"draw":         {Kind: "box", Draw: []string{"faces", "sketch"}},
		"no textures":  {Kind: "box", Texture: "wood"},
	} {
		_, err := Build(e, nil)
		assert.Error(t, err, name)
	}

	_, err := Build(config.Entry{Name: "x", Kind: "box", Texture: "wood"}, mapResolver{})
	assert.ErrorContains(t, err, `scene: x: texture "wood" not found`)
}

func TestBuildColors(t *testing.T) {
	o, err := Build(config.Entry{
		Kind:         "box",
		Color:        "red",
		RegionColors: map[string]string{"top": "#00f"},
	}, nil)
	require.NoError(t, err)

	p := o.Primitive
	colors := p.Mesh().Colors()
	front, err := p.Region(int(primitive.SideFront))
	require.NoError(t, err)
	top, err := p.Region(int(primitive.SideTop))
	require.NoError(t, err)
	for i := front.StartVertex; i < front.EndVertex; i++ {
		assert.Equal(t, mesh.Color{R: 1, A: 1}, colors[i])
	}
	for i := top.StartVertex; i < top.EndVertex; i++ {
		assert.Equal(t, mesh.Color{B: 1, A: 1}, colors[i])
	}
}

func TestBuildTransform(t *testing.T) {
	o, err := Build(config.Entry{
		Kind:     "sphere",
		Position: []float32{1, 2, 3},
		Rotation: []float32{0, 90, 0},
		Scale:    []float32{2},
	}, nil)
	require.NoError(t, err)
	n := o.Primitive.Transform()
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, n.Position)
	assert.Equal(t, mgl32.Vec3{2, 2, 2}, n.Scale)
	assert.True(t, n.HasScaling())
	p := n.TransformPoint(mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 1, p[0], 1e-5)
	assert.InDelta(t, 2, p[1], 1e-5)
	assert.InDelta(t, 1, p[2], 1e-5)
}

func TestBuildTexture(t *testing.T) {
	shared := texture.New(image.NewNRGBA(image.Rect(0, 0, 4, 2)))
	textures := mapResolver{"wood": shared}

	o, err := Build(config.Entry{Kind: "plane", Texture: "wood"}, textures)
	require.NoError(t, err)
	assert.Same(t, shared, o.Texture)
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 1}, o.Primitive.(*primitive.Plane).TexCoords())

	o, err = Build(config.Entry{Kind: "plane", Texture: "wood", PixelTexCoords: true}, textures)
	require.NoError(t, err)
	assert.False(t, o.Texture.Normalized())
	assert.True(t, shared.Normalized(), "shared texture is left alone")
	assert.Equal(t, mgl32.Vec4{0, 0, 4, 2}, o.Primitive.(*primitive.Plane).TexCoords())

	o, err = Build(config.Entry{Kind: "plane", TexCoords: []float32{0, 0, 0.5, 0.5}}, nil)
	require.NoError(t, err)
	for _, uv := range o.Primitive.Mesh().TexCoords() {
		assert.LessOrEqual(t, uv[0], float32(0.5))
		assert.LessOrEqual(t, uv[1], float32(0.5))
	}
}

func TestBuildLayoutChanges(t *testing.T) {
	angle := float32(60)
	o, err := Build(config.Entry{Kind: "box", Merge: true, Smooth: &angle}, nil)
	require.NoError(t, err)
	_, err = o.Primitive.Region(0)
	assert.ErrorIs(t, err, primitive.ErrRegionsInvalidated)
	assert.True(t, o.Primitive.Mesh().HasNormals())

	o, err = Build(config.Entry{Kind: "sphere", FlatNormals: true}, nil)
	require.NoError(t, err)
	assert.Equal(t, mesh.Triangles, o.Primitive.Mesh().Mode())
}

func TestSubmit(t *testing.T) {
	o, err := Build(config.Entry{
		Kind:    "box",
		Draw:    []string{"faces", "wireframe"},
		Normals: 0.1,
		Axes:    1,
		Texture: "wood",
	}, mapResolver{"wood": texture.New(image.NewNRGBA(image.Rect(0, 0, 2, 2)))})
	require.NoError(t, err)

	r := raster.NewRenderer()
	o.Submit(r)
	assert.Equal(t, 4, r.Len())

	img := r.Render(32)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
}

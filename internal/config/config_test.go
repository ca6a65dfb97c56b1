package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshgen/internal/mesh"
	"meshgen/internal/viewmatrix"
)

const sceneJSON = `{
  "output_dir": "out",
  "texture_dirs": ["textures"],
  "render_size": 128,
  "defaults": {"resolution": [4, 4, 4], "color": "white", "capped": true},
  "entries": [
    {"name": "crate", "kind": "box", "size": [1, 2, 3], "region_colors": {"front": "#f00"}},
    {"kind": "cylinder", "size": [1, 2], "capped": false, "resolution": [12, 1, 1]}
  ]
}`

const sceneYAML = `
output_dir: out
texture_dirs: [textures]
render_size: 128
defaults:
  resolution: [4, 4, 4]
  color: white
  capped: true
entries:
  - name: crate
    kind: box
    size: [1, 2, 3]
    region_colors: {front: "#f00"}
  - kind: cylinder
    size: [1, 2]
    capped: false
    resolution: [12, 1, 1]
`

const sceneTOML = `
output_dir = "out"
texture_dirs = ["textures"]
render_size = 128

[defaults]
resolution = [4, 4, 4]
color = "white"
capped = true

[[entries]]
name = "crate"
kind = "box"
size = [1.0, 2.0, 3.0]
region_colors = { front = "#f00" }

[[entries]]
kind = "cylinder"
size = [1.0, 2.0]
capped = false
resolution = [12, 1, 1]
`

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFormats(t *testing.T) {
	for name, body := range map[string]string{
		"scene.json": sceneJSON,
		"scene.yaml": sceneYAML,
		"scene.toml": sceneTOML,
	} {
		t.Run(name, func(t *testing.T) {
			p := writeConfig(t, name, body)
			cfg, err := Load(p)
			require.NoError(t, err)
			require.NoError(t, cfg.Resolve(Flags{}))

			dir := filepath.Dir(p)
			assert.Equal(t, filepath.Join(dir, "out"), cfg.OutputDir)
			assert.Equal(t, []string{filepath.Join(dir, "textures")}, cfg.TextureDirs)
			assert.Equal(t, 128, cfg.RenderSize)
			assert.Equal(t, 2, cfg.Supersample)
			assert.Equal(t, runtime.NumCPU(), cfg.Workers)
			require.NotNil(t, cfg.Camera)
			assert.Equal(t, viewmatrix.DefaultCamera(), *cfg.Camera)

			require.Len(t, cfg.Entries, 2)
			box := cfg.Entries[0]
			assert.Equal(t, "crate", box.Name)
			assert.Equal(t, []float32{1, 2, 3}, box.Size)
			assert.Equal(t, []int{4, 4, 4}, box.Resolution, "inherited from defaults")
			assert.Equal(t, "white", box.Color)
			assert.Equal(t, "#f00", box.RegionColors["front"])
			require.NotNil(t, box.Capped)
			assert.True(t, *box.Capped)

			cyl := cfg.Entries[1]
			assert.Equal(t, "cylinder-1", cyl.Name)
			assert.Equal(t, []int{12, 1, 1}, cyl.Resolution)
			require.NotNil(t, cyl.Capped)
			assert.False(t, *cyl.Capped, "explicit false overrides the default")
			assert.Same(t, cfg.Camera, cyl.Camera)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "config: read")

	_, err = Load(writeConfig(t, "scene.ini", "x=1"))
	assert.ErrorContains(t, err, "unsupported format")

	_, err = Load(writeConfig(t, "scene.json", `{"entriez": []}`))
	assert.ErrorContains(t, err, "config: parse")

	_, err = Load(writeConfig(t, "scene.yaml", "render_sise: 3\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "scene.toml", "bogus = 1\n"))
	assert.Error(t, err)
}

func TestResolveFlagsOverride(t *testing.T) {
	cfg, err := Load(writeConfig(t, "scene.json", sceneJSON))
	require.NoError(t, err)
	require.NoError(t, cfg.Resolve(Flags{OutputDir: "elsewhere", Workers: 3, Size: 64, Supersample: 4}))
	assert.Equal(t, "elsewhere", cfg.OutputDir)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 64, cfg.RenderSize)
	assert.Equal(t, 4, cfg.Supersample)
}

func TestResolveEntryCamera(t *testing.T) {
	cfg, err := Parse([]byte(`{"entries": [{"kind": "plane", "camera": {"yaw": 10}}]}`), ".json")
	require.NoError(t, err)
	require.NoError(t, cfg.Resolve(Flags{}))
	assert.Equal(t, "renders", cfg.OutputDir)
	assert.Equal(t, float32(10), cfg.Entries[0].Camera.Yaw)
	assert.Equal(t, "plane-0", cfg.Entries[0].Name)
}

func TestResolveValidation(t *testing.T) {
	cfg := Config{Entries: []Entry{{Name: "a", Kind: "box"}, {Name: "a", Kind: "plane"}}}
	assert.ErrorContains(t, cfg.Resolve(Flags{}), "duplicate")

	cfg = Config{Entries: []Entry{{Name: "a"}}}
	assert.ErrorContains(t, cfg.Resolve(Flags{}), "missing kind")

	cfg = Config{Defaults: Entry{Kind: "sphere"}, Entries: []Entry{{}}}
	require.NoError(t, cfg.Resolve(Flags{}))
	assert.Equal(t, "sphere", cfg.Entries[0].Kind)

	cfg = Config{FillRatio: 1.5}
	assert.ErrorContains(t, cfg.Resolve(Flags{}), "fill_ratio")
}

func TestMergeDoesNotAliasDefaults(t *testing.T) {
	cfg := Config{
		Defaults: Entry{Kind: "box", Size: []float32{1, 1, 1}},
		Entries:  []Entry{{}, {}},
	}
	require.NoError(t, cfg.Resolve(Flags{}))
	cfg.Entries[0].Size[0] = 9
	assert.Equal(t, float32(1), cfg.Entries[1].Size[0])
	assert.Equal(t, float32(1), cfg.Defaults.Size[0])
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Red ")
	require.NoError(t, err)
	assert.Equal(t, mesh.Color{R: 1, A: 1}, c)

	c, err = ParseColor("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, mesh.Color{G: 1, A: 1}, c)

	c, err = ParseColor("#00f")
	require.NoError(t, err)
	assert.Equal(t, mesh.Color{B: 1, A: 1}, c)

	c, err = ParseColor("#ffffff00")
	require.NoError(t, err)
	assert.Equal(t, mesh.Color{R: 1, G: 1, B: 1}, c)

	for _, bad := range []string{"", "notacolor", "#12", "#gggggg", "#1234567"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

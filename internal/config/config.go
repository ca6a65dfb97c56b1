package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"meshgen/internal/viewmatrix"
)

// Config holds output settings plus the primitives to render. The file
// format is chosen by extension: .json, .yaml/.yml or .toml.
type Config struct {
	// Paths
	OutputDir   string   `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
	TextureDirs []string `json:"texture_dirs" yaml:"texture_dirs" toml:"texture_dirs"`

	// Render settings
	RenderSize  int                `json:"render_size" yaml:"render_size" toml:"render_size"`
	Supersample int                `json:"supersample" yaml:"supersample" toml:"supersample"`
	Workers     int                `json:"workers" yaml:"workers" toml:"workers"`
	Background  string             `json:"background" yaml:"background" toml:"background"`
	FillRatio   float64            `json:"fill_ratio" yaml:"fill_ratio" toml:"fill_ratio"`
	Camera      *viewmatrix.Camera `json:"camera" yaml:"camera" toml:"camera"`

	// Defaults is merged under every entry; fields set on an entry win.
	Defaults Entry   `json:"defaults" yaml:"defaults" toml:"defaults"`
	Entries  []Entry `json:"entries" yaml:"entries" toml:"entries"`

	dir string
}

// Entry describes one primitive. Which Size and Resolution components are
// read depends on Kind:
//
//	plane      size [width height]        resolution [columns rows]
//	sphere     size [radius]              resolution [segments]
//	icosphere  size [radius]              resolution [iterations]
//	box        size [width height depth]  resolution [width height depth]
//	cone       size [radius height]       resolution [radius height cap]
//	cylinder   size [radius height]       resolution [radius height cap]
type Entry struct {
	Name       string    `json:"name" yaml:"name" toml:"name"`
	Kind       string    `json:"kind" yaml:"kind" toml:"kind"`
	Size       []float32 `json:"size" yaml:"size" toml:"size"`
	Resolution []int     `json:"resolution" yaml:"resolution" toml:"resolution"`
	Mode       string    `json:"mode" yaml:"mode" toml:"mode"`
	Capped     *bool     `json:"capped" yaml:"capped" toml:"capped"`

	// Colors are CSS names ("tomato") or hex ("#ff6347", "#f63", "#ff634780").
	Color        string            `json:"color" yaml:"color" toml:"color"`
	RegionColors map[string]string `json:"region_colors" yaml:"region_colors" toml:"region_colors"`

	Texture        string    `json:"texture" yaml:"texture" toml:"texture"`
	PixelTexCoords bool      `json:"pixel_tex_coords" yaml:"pixel_tex_coords" toml:"pixel_tex_coords"`
	TexCoords      []float32 `json:"tex_coords" yaml:"tex_coords" toml:"tex_coords"`

	Merge       bool     `json:"merge" yaml:"merge" toml:"merge"`
	Smooth      *float32 `json:"smooth" yaml:"smooth" toml:"smooth"`
	FlatNormals bool     `json:"flat_normals" yaml:"flat_normals" toml:"flat_normals"`

	Position []float32 `json:"position" yaml:"position" toml:"position"`
	Rotation []float32 `json:"rotation" yaml:"rotation" toml:"rotation"` // Euler degrees
	Scale    []float32 `json:"scale" yaml:"scale" toml:"scale"`

	// Draw lists what to draw: faces, wireframe, vertices.
	Draw    []string           `json:"draw" yaml:"draw" toml:"draw"`
	Normals float32            `json:"normals" yaml:"normals" toml:"normals"` // normal line length, 0 = off
	Axes    float32            `json:"axes" yaml:"axes" toml:"axes"`          // axis length, 0 = off
	Camera  *viewmatrix.Camera `json:"camera" yaml:"camera" toml:"camera"`
}

// Load reads a config file. Unknown keys are an error.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// Parse decodes data in the format named by ext.
func Parse(data []byte, ext string) (Config, error) {
	var cfg Config
	var err error
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&cfg)
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg)
	default:
		return Config{}, fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir   string
	Workers     int
	Size        int
	Supersample int
}

// Resolve applies flag overrides, fills defaults, resolves relative paths
// against the config file's directory and merges Defaults into every entry.
func (c *Config) Resolve(flags Flags) error {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}

	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.dir != "" && !filepath.IsAbs(c.OutputDir) && flags.OutputDir == "" {
		c.OutputDir = filepath.Join(c.dir, c.OutputDir)
	}
	for i, d := range c.TextureDirs {
		if c.dir != "" && !filepath.IsAbs(d) {
			c.TextureDirs[i] = filepath.Join(c.dir, d)
		}
	}

	// Defaults for render settings
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FillRatio < 0 || c.FillRatio > 1 {
		return fmt.Errorf("config: fill_ratio %v outside 0..1", c.FillRatio)
	}
	if c.Camera == nil {
		cam := viewmatrix.DefaultCamera()
		c.Camera = &cam
	}

	seen := make(map[string]bool, len(c.Entries))
	for i := range c.Entries {
		merged, err := c.merge(c.Entries[i])
		if err != nil {
			return fmt.Errorf("config: entry %d: %w", i, err)
		}
		if merged.Kind == "" {
			return fmt.Errorf("config: entry %d: missing kind", i)
		}
		if c.Entries[i].Name == "" {
			merged.Name = fmt.Sprintf("%s-%d", strings.ToLower(merged.Kind), i)
		}
		if seen[merged.Name] {
			return fmt.Errorf("config: duplicate entry name %q", merged.Name)
		}
		seen[merged.Name] = true
		if merged.Camera == nil {
			merged.Camera = c.Camera
		}
		c.Entries[i] = merged
	}
	return nil
}

// merge layers e over a deep copy of the defaults. Zero values on e do not
// override, so booleans can only be switched on per entry.
func (c *Config) merge(e Entry) (Entry, error) {
	var out Entry
	if err := copier.CopyWithOption(&out, &c.Defaults, copier.Option{DeepCopy: true}); err != nil {
		return Entry{}, err
	}
	if err := copier.CopyWithOption(&out, &e, copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return Entry{}, err
	}
	return out, nil
}

package batch

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"meshgen/internal/config"
	"meshgen/internal/postprocess"
	"meshgen/internal/primitive"
	"meshgen/internal/raster"
	"meshgen/internal/scene"
	"meshgen/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Textures    texture.Resolver
	RenderSize  int
	Supersample int
	Workers     int
	Background  color.NRGBA // transparent keeps the alpha channel
	FillRatio   float64     // >0 crops to the object and rescales to this share of the frame
}

// Result holds the outcome of processing one entry.
type Result struct {
	Name      string
	Kind      string
	Mode      string
	XYZ       [3]int
	Vertices  int
	Indices   int
	Triangles int
	Regions   []RegionStat
	Image     string // relative to OutputDir
	Success   bool
	Error     string
}

// RegionStat describes one named region of a rendered primitive.
type RegionStat struct {
	Name       string `json:"name"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
	Vertices   int    `json:"vertices"`
}

// Run processes all entries using a worker pool.
func Run(cfg Config, entries []config.Entry) []Result {
	total := len(entries)
	results := make([]Result, total)
	var processed atomic.Int64
	workers := max(cfg.Workers, 1)

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f items/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	itemChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range itemChan {
				results[idx] = processEntry(cfg, entries[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range entries {
		itemChan <- i
	}
	close(itemChan)

	wg.Wait()
	close(done)

	return results
}

func processEntry(cfg Config, e config.Entry) Result {
	res := Result{Name: e.Name, Kind: e.Kind}
	fail := func(err error) Result {
		res.Error = err.Error()
		return res
	}

	obj, err := scene.Build(e, cfg.Textures)
	if err != nil {
		return fail(err)
	}
	describe(&res, obj.Primitive)

	ss := max(cfg.Supersample, 1)
	r := raster.NewRenderer()
	r.Camera = obj.Camera
	r.Margin = cfg.RenderSize * ss / 16
	obj.Submit(r)
	img := r.Render(cfg.RenderSize * ss)

	// Post-processing: supersample downsample
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}
	if cfg.FillRatio > 0 {
		img = postprocess.CropAndCenter(img, cfg.RenderSize, cfg.FillRatio)
	}
	if cfg.Background.A > 0 {
		img = postprocess.Flatten(img, cfg.Background)
	}

	// Save as WebP
	res.Image = e.Name + ".webp"
	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fail(err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fail(err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fail(fmt.Errorf("WebP encode: %w", err))
	}
	res.Success = true
	return res
}

func describe(res *Result, p scene.Primitive) {
	m := p.Mesh()
	res.Kind = p.Kind().String()
	res.Mode = p.Mode().String()
	res.XYZ = p.Resolution().XYZ()
	res.Vertices = m.NumVertices()
	res.Indices = m.NumIndices()
	res.Triangles = m.NumTriangles()

	names := primitive.RegionNames(p.Kind())
	for id := 0; id < p.NumRegions(); id++ {
		reg, err := p.Region(id)
		if err != nil {
			// Layout changed after generation.
			res.Regions = nil
			return
		}
		res.Regions = append(res.Regions, RegionStat{
			Name:       names[id],
			StartIndex: reg.StartIndex,
			EndIndex:   reg.EndIndex,
			Vertices:   reg.NumVertices(),
		})
	}
}

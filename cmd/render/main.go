package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"meshgen/internal/batch"
	"meshgen/internal/config"
	"meshgen/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to scene file (.json, .yaml or .toml)")
	outputDir := flag.String("output", "", "Output directory (default: renders next to the scene file)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	watch := flag.Bool("watch", false, "Re-render whenever the scene file changes")

	flag.Parse()

	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -config is required")
		flag.Usage()
		os.Exit(2)
	}

	flags := config.Flags{
		OutputDir:   *outputDir,
		Workers:     *workers,
		Size:        *size,
		Supersample: *supersample,
	}

	failed, err := renderOnce(*configFile, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !*watch {
			os.Exit(1)
		}
	}

	if *watch {
		if err := watchLoop(*configFile, flags); err != nil {
			fmt.Fprintf(os.Stderr, "Error: watch: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// renderOnce loads the scene and renders every entry. It returns how many
// entries failed.
func renderOnce(path string, flags config.Flags) (int, error) {
	// Load config
	cfg, err := config.Load(path)
	if err != nil {
		return 0, err
	}
	// CLI flags override config file
	if err := cfg.Resolve(flags); err != nil {
		return 0, err
	}
	if len(cfg.Entries) == 0 {
		fmt.Println("No entries to render.")
		return 0, nil
	}

	var bg color.NRGBA
	if cfg.Background != "" {
		c, err := config.ParseColor(cfg.Background)
		if err != nil {
			return 0, err
		}
		bg = c.NRGBA()
	}

	// Build texture index
	texIndex := texture.BuildIndex(cfg.TextureDirs...)
	texCache := texture.NewCache(texIndex)
	fmt.Printf("Textures: %d indexed\n", texIndex.Len())

	// Print summary
	fmt.Printf("Primitive renderer → WebP\n")
	fmt.Printf("Entries: %d, Workers: %d, Size: %d (x%d)\n", len(cfg.Entries), cfg.Workers, cfg.RenderSize, cfg.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Textures:    texCache,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Background:  bg,
		FillRatio:   cfg.FillRatio,
	}

	results := batch.Run(batchCfg, cfg.Entries)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	return failed, nil
}

// watchLoop re-renders after the scene file is written. The directory is
// watched rather than the file so editors that save by rename keep working.
func watchLoop(path string, flags config.Flags) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	fmt.Printf("Watching %s (Ctrl-C to stop)\n", abs)

	// Coalesce bursts of events from a single save.
	const settle = 200 * time.Millisecond
	timer := time.NewTimer(settle)
	timer.Stop()

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Warning: watch: %v\n", err)
		case <-timer.C:
			fmt.Printf("\n%s changed, re-rendering\n", filepath.Base(abs))
			if _, err := renderOnce(abs, flags); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

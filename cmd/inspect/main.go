package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"meshgen/internal/config"
	"meshgen/internal/mesh"
	"meshgen/internal/primitive"
	"meshgen/internal/scene"
	"meshgen/internal/texture"
)

func main() {
	configFile := flag.String("config", "", "Inspect every entry of a scene file instead of a single solid")
	kind := flag.String("kind", "box", "Solid kind: "+kindList())
	res := flag.String("res", "", "Comma-separated resolution, e.g. 12,4,2")
	size := flag.String("size", "", "Comma-separated size, e.g. 1,2")
	mode := flag.String("mode", "", "Topology: triangles or strip (default per kind)")
	flag.Parse()

	var entries []config.Entry
	var textures texture.Resolver
	if *configFile != "" {
		cfg, err := config.Load(*configFile)
		if err == nil {
			err = cfg.Resolve(config.Flags{})
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		entries = cfg.Entries
		textures = texture.NewCache(texture.BuildIndex(cfg.TextureDirs...))
	} else {
		e := config.Entry{Name: *kind, Kind: *kind, Mode: *mode}
		var err error
		if e.Resolution, err = parseList(*res, strconv.Atoi); err != nil {
			fmt.Fprintf(os.Stderr, "Error: -res: %v\n", err)
			os.Exit(2)
		}
		if e.Size, err = parseList(*size, parseFloat32); err != nil {
			fmt.Fprintf(os.Stderr, "Error: -size: %v\n", err)
			os.Exit(2)
		}
		entries = []config.Entry{e}
	}

	failed := false
	for _, e := range entries {
		obj, err := scene.Build(e, textures)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
			continue
		}
		printObject(obj)
	}
	if failed {
		os.Exit(1)
	}
}

func kindList() string {
	var names []string
	for _, k := range primitive.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func parseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return float32(f), err
}

func parseList[T any](s string, parse func(string) (T, error)) ([]T, error) {
	if s == "" {
		return nil, nil
	}
	var out []T
	for _, part := range strings.Split(s, ",") {
		v, err := parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func printObject(obj *scene.Object) {
	p := obj.Primitive
	m := p.Mesh()
	fmt.Printf("\n=== %s: %s (%s) resolution=%v ===\n", obj.Name, p.Kind(), p.Mode(), p.Resolution().XYZ())
	fmt.Printf("  vertices=%d, indices=%d, triangles=%d\n", m.NumVertices(), m.NumIndices(), m.NumTriangles())

	lo, hi := m.Bounds()
	fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	fmt.Printf("  Size: %.3f x %.3f x %.3f\n", hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])

	names := primitive.RegionNames(p.Kind())
	fmt.Println("  Regions:")
	for id := 0; id < p.NumRegions(); id++ {
		r, err := p.Region(id)
		if err != nil {
			fmt.Printf("    %v\n", err)
			break
		}
		fmt.Printf("    %-7s indices [%d, %d) vertices [%d, %d) stitch=%d\n",
			names[id], r.StartIndex, r.EndIndex, r.StartVertex, r.EndVertex, r.Stitch)
	}

	// Surface area by dominant facing direction
	areaByDir := map[string]float32{}
	var total float32
	for _, t := range m.UniqueTriangles() {
		area := t.Points[1].Sub(t.Points[0]).Cross(t.Points[2].Sub(t.Points[0])).Len() / 2
		n := mesh.FaceNormal(t.Points[0], t.Points[1], t.Points[2])
		areaByDir[facing(n)] += area
		total += area
	}
	dirs := make([]string, 0, len(areaByDir))
	for d := range areaByDir {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	fmt.Printf("  Area: %.4f\n", total)
	for _, d := range dirs {
		fmt.Printf("    %s %.4f\n", d, areaByDir[d])
	}
}

// facing names the axis a normal points along most, e.g. "+Y".
func facing(n [3]float32) string {
	ax, ay, az := math32.Abs(n[0]), math32.Abs(n[1]), math32.Abs(n[2])
	axis, v := 0, n[0]
	if ay > ax && ay >= az {
		axis, v = 1, n[1]
	} else if az > ax && az > ay {
		axis, v = 2, n[2]
	}
	if ax == 0 && ay == 0 && az == 0 {
		return "degenerate"
	}
	sign := "+"
	if v < 0 {
		sign = "-"
	}
	return sign + string("XYZ"[axis])
}

package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// ManifestEntry represents one rendered primitive in the output manifest.
type ManifestEntry struct {
	Name       string       `json:"name"`
	Kind       string       `json:"kind"`
	Mode       string       `json:"mode"`
	Resolution [3]int       `json:"resolution"`
	Vertices   int          `json:"vertices"`
	Indices    int          `json:"indices"`
	Triangles  int          `json:"triangles"`
	Regions    []RegionStat `json:"regions,omitempty"`
	Image      string       `json:"image"`
}

// WriteManifest writes the successful results as JSON to path.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		entries = append(entries, ManifestEntry{
			Name:       r.Name,
			Kind:       r.Kind,
			Mode:       r.Mode,
			Resolution: r.XYZ,
			Vertices:   r.Vertices,
			Indices:    r.Indices,
			Triangles:  r.Triangles,
			Regions:    r.Regions,
			Image:      r.Image,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

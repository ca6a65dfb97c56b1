package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths. When several
// files share a stem the one with the highest extension priority wins, so
// "wood.png" shadows "wood.jpg".
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks each directory recursively for supported image files.
// Missing directories are skipped.
func BuildIndex(dirs ...string) *Index {
	idx := &Index{entries: make(map[string]string)}
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !Supported(path) {
				return nil
			}
			idx.add(path)
			return nil
		})
	}
	return idx
}

func (idx *Index) add(path string) {
	stem := stemOf(path)
	existing, exists := idx.entries[stem]
	if !exists || rank(path) > rank(existing) {
		idx.entries[stem] = path
	}
}

func rank(path string) int {
	return extPriority[strings.ToLower(filepath.Ext(path))]
}

func stemOf(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// ResolvePath returns the filesystem path for a texture name, or ("", false).
// Directory prefixes and extensions in texName are ignored.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	path, ok := idx.entries[stemOf(texName)]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}

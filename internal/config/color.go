package config

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"meshgen/internal/mesh"
)

// ParseColor reads a CSS color name or a #rgb, #rrggbb or #rrggbbaa hex
// string.
func ParseColor(s string) (mesh.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return mesh.ColorFrom(c), nil
	}
	if !strings.HasPrefix(s, "#") {
		return mesh.Color{}, fmt.Errorf("config: unknown color %q", s)
	}
	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	b, err := hex.DecodeString(h)
	if err != nil || len(b) != 4 {
		return mesh.Color{}, fmt.Errorf("config: bad hex color %q", s)
	}
	return mesh.ColorFrom(color.NRGBA{R: b[0], G: b[1], B: b[2], A: b[3]}), nil
}

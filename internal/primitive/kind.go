package primitive

import (
	"fmt"
	"strings"

	"meshgen/internal/mesh"
)

// Kind identifies a solid.
type Kind int

const (
	KindPlane Kind = iota
	KindSphere
	KindIcoSphere
	KindBox
	KindCone
	KindCylinder
)

var kindNames = [...]string{"plane", "sphere", "icosphere", "box", "cone", "cylinder"}

// Kinds lists every solid in declaration order.
func Kinds() []Kind {
	return []Kind{KindPlane, KindSphere, KindIcoSphere, KindBox, KindCone, KindCylinder}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind accepts the names printed by Kind.String, case-insensitively,
// plus "ico-sphere" and "ico".
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "ico-sphere", "ico":
		return KindIcoSphere, nil
	}
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return KindPlane, fmt.Errorf("primitive: unknown kind %q", s)
}

// DefaultMode returns the topology a solid is generated with when none is
// requested.
func DefaultMode(k Kind) mesh.Mode {
	switch k {
	case KindBox, KindIcoSphere:
		return mesh.Triangles
	}
	return mesh.TriangleStrip
}

// RegionNames lists a solid's region names in mesh order. Solids with a
// single region call it "all".
func RegionNames(k Kind) []string {
	switch k {
	case KindBox:
		return append([]string(nil), sideNames[:]...)
	case KindCylinder:
		return append([]string(nil), cylinderPartNames[:]...)
	case KindCone:
		return []string{ConeBody.String(), ConeCap.String()}
	}
	return []string{"all"}
}

// RegionID returns the region id for a name listed by RegionNames.
func RegionID(k Kind, name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range RegionNames(k) {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("primitive: %s has no region %q", k, name)
}

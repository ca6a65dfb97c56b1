package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"meshgen/internal/mathutil"
)

// Node is a position/orientation/scale triple with an optional parent.
// The zero value is not an identity transform (Scale is zero); use NewNode.
type Node struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Scale       mgl32.Vec3
	Parent      *Node
}

// NewNode returns an identity node at the origin.
func NewNode() Node {
	return Node{
		Orientation: mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// SetEuler sets the orientation from XYZ Euler angles in degrees.
func (n *Node) SetEuler(rx, ry, rz float32) {
	n.Orientation = mathutil.EulerToQuat(rx, ry, rz)
}

// LocalMatrix returns T·R·S.
func (n *Node) LocalMatrix() mgl32.Mat4 {
	t := mgl32.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := n.Orientation.Normalize().Mat4()
	s := mgl32.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// WorldMatrix chains the local matrix with every ancestor's.
// A nil node is the identity.
func (n *Node) WorldMatrix() mgl32.Mat4 {
	if n == nil {
		return mgl32.Ident4()
	}
	world := n.LocalMatrix()
	for p := n.Parent; p != nil; p = p.Parent {
		world = p.LocalMatrix().Mul4(world)
	}
	return world
}

// HasScaling reports whether this node or any ancestor scales non-uniformly
// or by something other than one.
func (n *Node) HasScaling() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Scale.ApproxEqual(mgl32.Vec3{1, 1, 1}) {
			return true
		}
	}
	return false
}

// TransformPoint maps a local-space point to world space.
func (n *Node) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, n.WorldMatrix())
}

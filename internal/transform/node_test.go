package transform

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for k := 0; k < 3; k++ {
		assert.InDelta(t, want[k], got[k], 1e-5, "component %d of %v", k, got)
	}
}

func TestNewNodeIsIdentity(t *testing.T) {
	n := NewNode()
	assert.True(t, n.WorldMatrix().ApproxEqual(mgl32.Ident4()))
	assert.False(t, n.HasScaling())

	var nilNode *Node
	assert.Equal(t, mgl32.Ident4(), nilNode.WorldMatrix())
}

func TestLocalMatrixOrder(t *testing.T) {
	n := NewNode()
	n.Position = mgl32.Vec3{10, 0, 0}
	n.Scale = mgl32.Vec3{2, 2, 2}
	n.SetEuler(0, 0, 90)

	// scale, then rotate +X onto +Y, then translate
	assertVec3(t, mgl32.Vec3{10, 2, 0}, n.TransformPoint(mgl32.Vec3{1, 0, 0}))
	assert.True(t, n.HasScaling())
}

func TestWorldMatrixChainsParents(t *testing.T) {
	root := NewNode()
	root.Position = mgl32.Vec3{0, 5, 0}
	root.Scale = mgl32.Vec3{1, 3, 1}

	child := NewNode()
	child.Position = mgl32.Vec3{1, 1, 0}
	child.Parent = &root

	assertVec3(t, mgl32.Vec3{1, 8, 0}, child.TransformPoint(mgl32.Vec3{}))
	assert.True(t, child.HasScaling())
}

package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransformLocal(t *testing.T) {
	tr := NewTransform()
	assert.True(t, tr.GetLocal().Compare(NewMat4Identity(), tol))

	tr.SetScale(NewVec3(2, 2, 2))
	tr.SetRotation(NewQuatFromAxisAngle(NewVec3(0, 0, 1), K_HALF_PI, true))
	tr.SetPosition(NewVec3(10, 0, 0))
	assert.True(t, tr.IsDirty)

	// scale, then rotate, then translate
	got := tr.Apply(NewVec3(1, 0, 0))
	assert.True(t, got.Compare(NewVec3(10, 2, 0), tol), "%v", got)
	assert.False(t, tr.IsDirty)
}

func TestTransformParentChain(t *testing.T) {
	parent := NewTransformFromPosition(NewVec3(0, 5, 0))
	child := NewTransformFromPositionRotation(NewVec3(1, 0, 0), NewQuatIdentity())
	child.Parent = parent

	assert.True(t, child.Apply(NewVec3Zero()).Compare(NewVec3(1, 5, 0), tol))

	parent.Translate(NewVec3(0, 1, 0))
	assert.True(t, child.Apply(NewVec3Zero()).Compare(NewVec3(1, 6, 0), tol))

	var nilTransform *Transform
	assert.Equal(t, NewMat4Identity(), nilTransform.GetWorld())
}

func TestTransformRotateAccumulates(t *testing.T) {
	tr := NewTransformFromRotation(NewQuatIdentity())
	quarter := NewQuatFromAxisAngle(NewVec3(0, 0, 1), K_QUARTER_PI, true)
	tr.Rotate(quarter)
	tr.Rotate(quarter)
	tr.ScaleBy(NewVec3(3, 3, 3))

	assert.True(t, tr.Apply(NewVec3(1, 0, 0)).Compare(NewVec3(0, 3, 0), tol))
}

func TestGenerateNormals(t *testing.T) {
	verts := []Vertex3D{
		{Position: NewVec3(0, 0, 0)},
		{Position: NewVec3(1, 0, 0)},
		{Position: NewVec3(0, 1, 0)},
	}
	GenerateNormals(verts, []uint32{0, 1, 2})
	for _, v := range verts {
		assert.True(t, v.Normal.Compare(NewVec3(0, 0, 1), tol))
	}
}

func TestDeduplicateVertices(t *testing.T) {
	a := Vertex3D{Position: NewVec3(0, 0, 0)}
	b := Vertex3D{Position: NewVec3(1, 0, 0)}
	c := Vertex3D{Position: NewVec3(0, 1, 0)}
	d := Vertex3D{Position: NewVec3(1, 1, 0)}

	// two triangles sharing an edge
	verts := []Vertex3D{a, b, c, c, b, d}
	unique, indices := DeduplicateVertices(verts, nil)

	assert.Equal(t, []Vertex3D{a, b, c, d}, unique)
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, indices)
	assert.True(t, Vertex3DEqual(unique[1], b, 0))
}

package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleMatrix() Mat4 {
	s := NewMat4Scale(NewVec3(2, 3, 0.5))
	r := NewMat4EulerXYZ(0.3, -1.1, 2.4)
	tr := NewMat4Translation(NewVec3(4, -5, 6))
	return s.Mul(r).Mul(tr)
}

func TestMat4IdentityMul(t *testing.T) {
	m := sampleMatrix()
	id := NewMat4Identity()
	assert.Equal(t, m, m.Mul(id))
	assert.Equal(t, m, id.Mul(m))
}

func TestMat4MulOrder(t *testing.T) {
	a := NewMat4EulerZ(K_HALF_PI)
	b := NewMat4Translation(NewVec3(5, 0, 0))
	p := NewVec3(1, 0, 0)

	// a is applied first
	assert.True(t, p.Transform(a.Mul(b)).Compare(p.Transform(a).Transform(b), tol))
	assert.True(t, p.Transform(a.Mul(b)).Compare(NewVec3(5, 1, 0), tol))
}

func TestMat4Inverse(t *testing.T) {
	m := sampleMatrix()
	assert.True(t, m.Mul(m.Inverse()).Compare(NewMat4Identity(), tol))
	assert.True(t, m.Inverse().Mul(m).Compare(NewMat4Identity(), tol))

	tr := NewMat4Translation(NewVec3(1, 2, 3))
	assert.True(t, tr.Inverse().Compare(NewMat4Translation(NewVec3(-1, -2, -3)), tol))
}

func TestMat4Determinant(t *testing.T) {
	assert.Equal(t, 1.0, NewMat4Identity().Determinant())
	assert.Equal(t, 24.0, NewMat4Scale(NewVec3(2, 3, 4)).Determinant())
	assert.InDelta(t, 3.0, sampleMatrix().Determinant(), tol)
	assert.InDelta(t, 1.0, NewMat4Rotate(NewVec3(1, 2, 3), 0.7).Determinant(), tol)
}

func TestMat4Transposed(t *testing.T) {
	m := sampleMatrix()
	mt := m.Transposed()
	assert.Equal(t, m, mt.Transposed())
	assert.Equal(t, m.Data[12], mt.Data[3])
	assert.Equal(t, m.Data[1], mt.Data[4])
}

func TestMat4Rotations(t *testing.T) {
	x := NewVec3(1, 0, 0)
	assert.True(t, x.Transform(NewMat4EulerZ(K_HALF_PI)).Compare(NewVec3(0, 1, 0), tol))
	assert.True(t, NewVec3(0, 1, 0).Transform(NewMat4EulerX(K_HALF_PI)).Compare(NewVec3(0, 0, 1), tol))
	assert.True(t, NewVec3(0, 0, 1).Transform(NewMat4EulerY(K_HALF_PI)).Compare(x, tol))

	for _, axis := range []Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		var euler Mat4
		switch {
		case axis.X == 1:
			euler = NewMat4EulerX(0.9)
		case axis.Y == 1:
			euler = NewMat4EulerY(0.9)
		default:
			euler = NewMat4EulerZ(0.9)
		}
		assert.True(t, NewMat4Rotate(axis, 0.9).Compare(euler, tol), "axis %v", axis)
	}
}

func TestMat4LookAt(t *testing.T) {
	view := NewMat4LookAt(NewVec3(0, 0, 5), NewVec3Zero(), NewVec3Up())

	assert.True(t, NewVec3(0, 0, 5).Transform(view).Compare(NewVec3Zero(), tol))
	assert.True(t, NewVec3Zero().Transform(view).Compare(NewVec3(0, 0, -5), tol))
	assert.True(t, view.Forward().Compare(NewVec3(0, 0, -1), tol))
	assert.True(t, view.Right().Compare(NewVec3(1, 0, 0), tol))
	assert.True(t, view.Up().Compare(NewVec3(0, 1, 0), tol))
	assert.True(t, view.Left().Compare(NewVec3(-1, 0, 0), tol))
	assert.True(t, view.Down().Compare(NewVec3(0, -1, 0), tol))
	assert.True(t, view.Backward().Compare(NewVec3(0, 0, 1), tol))
}

func TestMat4Projections(t *testing.T) {
	p := NewMat4Perspective(K_HALF_PI, 1, 0.1, 100)
	assert.InDelta(t, 1.0, p.Data[0], tol)
	assert.InDelta(t, 1.0, p.Data[5], tol)
	assert.Equal(t, -1.0, p.Data[11])

	// the near plane maps to -1 and the far plane to 1 in clip space
	near := NewVec4(0, 0, -0.1, 1).Transform(p)
	far := NewVec4(0, 0, -100, 1).Transform(p)
	assert.InDelta(t, -1.0, near.Z/near.W, tol)
	assert.InDelta(t, 1.0, far.Z/far.W, tol)

	o := NewMat4Orthographic(0, 800, 0, 600, -1, 1)
	assert.True(t, NewVec3(800, 600, 0).Transform(o).Compare(NewVec3(1, 1, 0), tol))
	assert.True(t, NewVec3(0, 0, 0).Transform(o).Compare(NewVec3(-1, -1, 0), tol))

	// a symmetric frustum is the perspective projection
	f := NewMat4Frustum(-0.1, 0.1, -0.1, 0.1, 0.1, 100)
	assert.True(t, f.Compare(p, tol))
}

package math

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other. The product applies
 * mt first and other second, so v.Transform(a.Mul(b)) equals
 * v.Transform(a).Transform(b).
 *
 * @param other The second matrix to be multiplied.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float64(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Compares every element of mt and other against tolerance.
 */
func (mt Mat4) Compare(other Mat4, tolerance float64) bool {
	for i := range mt.Data {
		if Abs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float64) Mat4 {
	out_matrix := NewMat4Identity()

	lr := 1.0 / (left - right)
	bt := 1.0 / (bottom - top)
	nf := 1.0 / (near_clip - far_clip)

	out_matrix.Data[0] = -2.0 * lr
	out_matrix.Data[5] = -2.0 * bt
	out_matrix.Data[10] = 2.0 * nf

	out_matrix.Data[12] = (left + right) * lr
	out_matrix.Data[13] = (top + bottom) * bt
	out_matrix.Data[14] = (far_clip + near_clip) * nf
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov_radians The field of view in radians.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float64) Mat4 {
	half_tan_fov := Tan(fov_radians * 0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0 / (aspect_ratio * half_tan_fov)
	out_matrix.Data[5] = 1.0 / half_tan_fov
	out_matrix.Data[10] = -((far_clip + near_clip) / (far_clip - near_clip))
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = -((2.0 * far_clip * near_clip) / (far_clip - near_clip))
	return out_matrix
}

/**
 * @brief Creates and returns a perspective projection for an off-centre view
 * frustum given its clipping planes at the near distance.
 */
func NewMat4Frustum(left, right, bottom, top, near_clip, far_clip float64) Mat4 {
	rl := 1.0 / (right - left)
	tb := 1.0 / (top - bottom)
	nf := 1.0 / (near_clip - far_clip)

	out_matrix := Mat4{}
	out_matrix.Data[0] = 2.0 * near_clip * rl
	out_matrix.Data[5] = 2.0 * near_clip * tb
	out_matrix.Data[8] = (right + left) * rl
	out_matrix.Data[9] = (top + bottom) * tb
	out_matrix.Data[10] = (far_clip + near_clip) * nf
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = 2.0 * far_clip * near_clip * nf
	return out_matrix
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	out_matrix := Mat4{}
	z_axis := target.Sub(position).Normalize()
	x_axis := z_axis.Cross(up).Normalize()
	y_axis := x_axis.Cross(z_axis)

	out_matrix.Data[0] = x_axis.X
	out_matrix.Data[1] = y_axis.X
	out_matrix.Data[2] = -z_axis.X
	out_matrix.Data[3] = 0
	out_matrix.Data[4] = x_axis.Y
	out_matrix.Data[5] = y_axis.Y
	out_matrix.Data[6] = -z_axis.Y
	out_matrix.Data[7] = 0
	out_matrix.Data[8] = x_axis.Z
	out_matrix.Data[9] = y_axis.Z
	out_matrix.Data[10] = -z_axis.Z
	out_matrix.Data[11] = 0
	out_matrix.Data[12] = -x_axis.Dot(position)
	out_matrix.Data[13] = -y_axis.Dot(position)
	out_matrix.Data[14] = z_axis.Dot(position)
	out_matrix.Data[15] = 1.0

	return out_matrix
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 *
 * @return A transposed copy of of the provided matrix.
 */
func (mt Mat4) Transposed() Mat4 {
	out_matrix := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out_matrix.Data[row*4+col] = mt.Data[col*4+row]
		}
	}
	return out_matrix
}

// cofactors holds the 2x2 sub-determinants shared by Determinant and Inverse.
type cofactors struct {
	b00, b01, b02, b03, b04, b05 float64
	b06, b07, b08, b09, b10, b11 float64
}

func (mt Mat4) cofactors() cofactors {
	m := &mt.Data
	return cofactors{
		b00: m[0]*m[5] - m[1]*m[4],
		b01: m[0]*m[6] - m[2]*m[4],
		b02: m[0]*m[7] - m[3]*m[4],
		b03: m[1]*m[6] - m[2]*m[5],
		b04: m[1]*m[7] - m[3]*m[5],
		b05: m[2]*m[7] - m[3]*m[6],
		b06: m[8]*m[13] - m[9]*m[12],
		b07: m[8]*m[14] - m[10]*m[12],
		b08: m[8]*m[15] - m[11]*m[12],
		b09: m[9]*m[14] - m[10]*m[13],
		b10: m[9]*m[15] - m[11]*m[13],
		b11: m[10]*m[15] - m[11]*m[14],
	}
}

func (c cofactors) determinant() float64 {
	return c.b00*c.b11 - c.b01*c.b10 + c.b02*c.b09 + c.b03*c.b08 - c.b04*c.b07 + c.b05*c.b06
}

/**
 * @brief Returns the determinant of the matrix. Check it against zero before
 * relying on Inverse.
 */
func (mt Mat4) Determinant() float64 {
	return mt.cofactors().determinant()
}

/**
 * @brief Creates and returns an inverse of the provided matrix using the
 * adjugate divided by the determinant. A singular matrix is not detected and
 * yields Inf/NaN elements.
 *
 * @return A inverted copy of the provided matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	m := &mt.Data
	c := mt.cofactors()
	d := 1.0 / c.determinant()

	var o [16]float64
	o[0] = (m[5]*c.b11 - m[6]*c.b10 + m[7]*c.b09) * d
	o[1] = (-m[1]*c.b11 + m[2]*c.b10 - m[3]*c.b09) * d
	o[2] = (m[13]*c.b05 - m[14]*c.b04 + m[15]*c.b03) * d
	o[3] = (-m[9]*c.b05 + m[10]*c.b04 - m[11]*c.b03) * d
	o[4] = (-m[4]*c.b11 + m[6]*c.b08 - m[7]*c.b07) * d
	o[5] = (m[0]*c.b11 - m[2]*c.b08 + m[3]*c.b07) * d
	o[6] = (-m[12]*c.b05 + m[14]*c.b02 - m[15]*c.b01) * d
	o[7] = (m[8]*c.b05 - m[10]*c.b02 + m[11]*c.b01) * d
	o[8] = (m[4]*c.b10 - m[5]*c.b08 + m[7]*c.b06) * d
	o[9] = (-m[0]*c.b10 + m[1]*c.b08 - m[3]*c.b06) * d
	o[10] = (m[12]*c.b04 - m[13]*c.b02 + m[15]*c.b00) * d
	o[11] = (-m[8]*c.b04 + m[9]*c.b02 - m[11]*c.b00) * d
	o[12] = (-m[4]*c.b09 + m[5]*c.b07 - m[6]*c.b06) * d
	o[13] = (m[0]*c.b09 - m[1]*c.b07 + m[2]*c.b06) * d
	o[14] = (-m[12]*c.b03 + m[13]*c.b01 - m[14]*c.b00) * d
	o[15] = (m[8]*c.b03 - m[9]*c.b01 + m[10]*c.b00) * d

	return Mat4{Data: o}
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x angle.
 *
 * @param angle_radians The x angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerX(angle_radians float64) Mat4 {
	out_matrix := NewMat4Identity()
	c := Cos(angle_radians)
	s := Sin(angle_radians)

	out_matrix.Data[5] = c
	out_matrix.Data[6] = s
	out_matrix.Data[9] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided y angle.
 *
 * @param angle_radians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angle_radians float64) Mat4 {
	out_matrix := NewMat4Identity()
	c := Cos(angle_radians)
	s := Sin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[2] = -s
	out_matrix.Data[8] = s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided z angle.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angle_radians float64) Mat4 {
	out_matrix := NewMat4Identity()

	c := Cos(angle_radians)
	s := Sin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[4] = -s
	out_matrix.Data[5] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis rotations,
 * applied in that order.
 *
 * @param x_radians The x rotation.
 * @param y_radians The y rotation.
 * @param z_radians The z rotation.
 * @return A rotation matrix.
 */
func NewMat4EulerXYZ(x_radians, y_radians, z_radians float64) Mat4 {
	rx := NewMat4EulerX(x_radians)
	ry := NewMat4EulerY(y_radians)
	rz := NewMat4EulerZ(z_radians)
	out_matrix := rx.Mul(ry)
	out_matrix = out_matrix.Mul(rz)
	return out_matrix
}

/**
 * @brief Creates a rotation of angle radians around an arbitrary axis. The
 * axis does not need to be normalized.
 */
func NewMat4Rotate(axis Vec3, angle_radians float64) Mat4 {
	a := axis.Normalize()
	c := Cos(angle_radians)
	s := Sin(angle_radians)
	t := 1.0 - c

	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = t*a.X*a.X + c
	out_matrix.Data[1] = t*a.X*a.Y + s*a.Z
	out_matrix.Data[2] = t*a.X*a.Z - s*a.Y

	out_matrix.Data[4] = t*a.X*a.Y - s*a.Z
	out_matrix.Data[5] = t*a.Y*a.Y + c
	out_matrix.Data[6] = t*a.Y*a.Z + s*a.X

	out_matrix.Data[8] = t*a.X*a.Z + s*a.Y
	out_matrix.Data[9] = t*a.Y*a.Z - s*a.X
	out_matrix.Data[10] = t*a.Z*a.Z + c
	return out_matrix
}

/**
 * @brief Returns a forward vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Forward() Vec3 {
	forward := Vec3{}
	forward.X = -mt.Data[2]
	forward.Y = -mt.Data[6]
	forward.Z = -mt.Data[10]
	return forward.Normalize()
}

/**
 * @brief Returns a backward vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Backward() Vec3 {
	backward := Vec3{}
	backward.X = mt.Data[2]
	backward.Y = mt.Data[6]
	backward.Z = mt.Data[10]
	return backward.Normalize()
}

/**
 * @brief Returns a upward vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Up() Vec3 {
	up := Vec3{}
	up.X = mt.Data[1]
	up.Y = mt.Data[5]
	up.Z = mt.Data[9]
	return up.Normalize()
}

/**
 * @brief Returns a downward vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Down() Vec3 {
	down := Vec3{}
	down.X = -mt.Data[1]
	down.Y = -mt.Data[5]
	down.Z = -mt.Data[9]
	return down.Normalize()
}

/**
 * @brief Returns a left vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Left() Vec3 {
	left := Vec3{}
	left.X = -mt.Data[0]
	left.Y = -mt.Data[4]
	left.Z = -mt.Data[8]
	return left.Normalize()
}

/**
 * @brief Returns a right vector relative to the provided matrix.
 *
 * @return A 3-component directional vector.
 */
func (mt Mat4) Right() Vec3 {
	right := Vec3{}
	right.X = mt.Data[0]
	right.Y = mt.Data[4]
	right.Z = mt.Data[8]
	return right.Normalize()
}

package math

// slerpNlerpThreshold is the cosine of half the angle above which Slerp falls
// back to normalized linear interpolation.
const slerpNlerpThreshold = 0.95

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1.0}
}

/**
 * @brief Returns the normal (length) of the provided quaternion.
 *
 * @return The normal of the provided quaternion.
 */
func (q Quaternion) Normal() float64 {
	return Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

/**
 * @brief Returns a normalized copy of the provided quaternion. A zero
 * quaternion is returned unchanged.
 *
 * @return A normalized copy of the provided quaternion.
 */
func (q Quaternion) Normalize() Quaternion {
	n := q.Normal()
	if n == 0 {
		return q
	}
	return Quaternion{
		X: q.X / n,
		Y: q.Y / n,
		Z: q.Z / n,
		W: q.W / n,
	}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 *
 * @return The conjugate quaternion.
 */
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{
		X: -q.X,
		Y: -q.Y,
		Z: -q.Z,
		W: q.W,
	}
}

/**
 * @brief Returns an inverse copy of the provided quaternion, the conjugate
 * divided by the squared normal.
 *
 * @return The inverse of the provided quaternion.
 */
func (q Quaternion) Inverse() Quaternion {
	n := q.Dot(q)
	if n == 0 {
		return q
	}
	c := q.Conjugate()
	return Quaternion{X: c.X / n, Y: c.Y / n, Z: c.Z / n, W: c.W / n}
}

/**
 * @brief Multiplies the provided quaternions (Hamilton product). The result
 * rotates by other first and q second.
 *
 * @param other The second quaternion.
 * @return The multiplied quaternion.
 */
func (q Quaternion) Mul(other Quaternion) Quaternion {
	out_quaternion := Quaternion{}

	out_quaternion.X = q.X*other.W + q.Y*other.Z - q.Z*other.Y + q.W*other.X
	out_quaternion.Y = -q.X*other.Z + q.Y*other.W + q.Z*other.X + q.W*other.Y
	out_quaternion.Z = q.X*other.Y - q.Y*other.X + q.Z*other.W + q.W*other.Z
	out_quaternion.W = -q.X*other.X - q.Y*other.Y - q.Z*other.Z + q.W*other.W

	return out_quaternion
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 *
 * @param other The second quaternion.
 * @return The dot product of the provided quaternions.
 */
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

/**
 * @brief Creates a rotation matrix from the given quaternion. The quaternion
 * is normalized first.
 *
 * @return A rotation matrix.
 */
func (q Quaternion) ToMat4() Mat4 {
	out_matrix := NewMat4Identity()

	n := q.Normalize()
	xx, yy, zz := n.X*n.X, n.Y*n.Y, n.Z*n.Z
	xy, xz, yz := n.X*n.Y, n.X*n.Z, n.Y*n.Z
	wx, wy, wz := n.W*n.X, n.W*n.Y, n.W*n.Z

	out_matrix.Data[0] = 1.0 - 2.0*(yy+zz)
	out_matrix.Data[1] = 2.0 * (xy + wz)
	out_matrix.Data[2] = 2.0 * (xz - wy)

	out_matrix.Data[4] = 2.0 * (xy - wz)
	out_matrix.Data[5] = 1.0 - 2.0*(xx+zz)
	out_matrix.Data[6] = 2.0 * (yz + wx)

	out_matrix.Data[8] = 2.0 * (xz + wy)
	out_matrix.Data[9] = 2.0 * (yz - wx)
	out_matrix.Data[10] = 1.0 - 2.0*(xx+yy)

	return out_matrix
}

/**
 * @brief Calculates a rotation matrix based on the quaternion and the passed in center point.
 *
 * @param center The center point.
 * @return A rotation matrix.
 */
func (q Quaternion) ToRotationMatrix(center Vec3) Mat4 {
	to_origin := NewMat4Translation(center.Negate())
	back := NewMat4Translation(center)
	return to_origin.Mul(q.ToMat4()).Mul(back)
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation in radians.
 * @param normalize Indicates if the quaternion should be normalized.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle(axis Vec3, angle float64, normalize bool) Quaternion {
	half_angle := 0.5 * angle
	s := Sin(half_angle)
	c := Cos(half_angle)
	a := axis.Normalize()

	q := Quaternion{X: s * a.X, Y: s * a.Y, Z: s * a.Z, W: c}
	if normalize {
		return q.Normalize()
	}
	return q
}

/**
 * @brief Creates a quaternion from euler angles in radians. The rotations are
 * applied around x, then y, then z, matching NewMat4EulerXYZ.
 */
func NewQuatFromEuler(x_radians, y_radians, z_radians float64) Quaternion {
	qx := NewQuatFromAxisAngle(NewVec3(1, 0, 0), x_radians, false)
	qy := NewQuatFromAxisAngle(NewVec3(0, 1, 0), y_radians, false)
	qz := NewQuatFromAxisAngle(NewVec3(0, 0, 1), z_radians, false)
	return qz.Mul(qy).Mul(qx)
}

/**
 * @brief Returns the rotation axis and angle in radians. A rotation close to
 * zero reports the x axis.
 */
func (q Quaternion) ToAxisAngle() (Vec3, float64) {
	n := q.Normalize()
	w := Clamp(n.W, -1.0, 1.0)
	angle := 2.0 * Acos(w)
	s := Sqrt(1.0 - w*w)
	if s < 1e-9 {
		return NewVec3(1, 0, 0), angle
	}
	return NewVec3(n.X/s, n.Y/s, n.Z/s), angle
}

/**
 * @brief Rotates v by the quaternion.
 */
func (q Quaternion) RotateVec3(v Vec3) Vec3 {
	u := NewVec3(q.X, q.Y, q.Z)
	t := u.Cross(v).MulScalar(2.0)
	return v.Add(t.MulScalar(q.W)).Add(u.Cross(t))
}

/**
 * @brief Component-wise linear interpolation. The result is not normalized.
 */
func (q Quaternion) Lerp(other Quaternion, percentage float64) Quaternion {
	return Quaternion{
		X: q.X + (other.X-q.X)*percentage,
		Y: q.Y + (other.Y-q.Y)*percentage,
		Z: q.Z + (other.Z-q.Z)*percentage,
		W: q.W + (other.W-q.W)*percentage,
	}
}

/**
 * @brief Linear interpolation followed by a normalization.
 */
func (q Quaternion) Nlerp(other Quaternion, percentage float64) Quaternion {
	return q.Lerp(other, percentage).Normalize()
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions. Nearly parallel inputs use Nlerp. The shortest
 * path is always taken.
 *
 * @param other The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quaternion) Slerp(other Quaternion, percentage float64) Quaternion {
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)

	// If the dot product is negative, slerp won't take
	// the shorter path. Note that v1 and -v1 are equivalent when
	// the negation is applied to all four components. Fix by
	// reversing one quaternion.
	if dot < 0.0 {
		v1 = Quaternion{X: -v1.X, Y: -v1.Y, Z: -v1.Z, W: -v1.W}
		dot = -dot
	}

	if dot >= 1.0 {
		return v0
	}
	if dot > slerpNlerpThreshold {
		return v0.Nlerp(v1, percentage)
	}

	half_theta := Acos(dot)
	sin_half_theta := Sqrt(1.0 - dot*dot)
	if Abs(sin_half_theta) < K_FLOAT_EPSILON {
		return Quaternion{
			X: v0.X*0.5 + v1.X*0.5,
			Y: v0.Y*0.5 + v1.Y*0.5,
			Z: v0.Z*0.5 + v1.Z*0.5,
			W: v0.W*0.5 + v1.W*0.5,
		}
	}

	s0 := Sin((1.0-percentage)*half_theta) / sin_half_theta
	s1 := Sin(percentage*half_theta) / sin_half_theta

	return Quaternion{
		X: v0.X*s0 + v1.X*s1,
		Y: v0.Y*s0 + v1.Y*s1,
		Z: v0.Z*s0 + v1.Z*s1,
		W: v0.W*s0 + v1.W*s1,
	}
}

/**
 * @brief Returns the length of the quaternion. Same as Normal.
 */
func (q Quaternion) Length() float64 {
	return q.Normal()
}

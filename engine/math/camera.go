package math

// cameraPitchLimit is 89 degrees in radians, kept away from the poles to
// avoid gimbal lock.
const cameraPitchLimit = 1.55334306

/**
 * @brief A free-look camera positioned in the world. The view matrix is
 * rebuilt lazily from the position and Euler rotation (pitch, yaw, roll).
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition instead
	 * so the view matrix is recalculated when needed.
	 */
	Position Vec3
	/**
	 * @brief The rotation of this camera using Euler angles (pitch, yaw, roll).
	 * NOTE: Do not set this directly, use SetEulerRotation instead.
	 */
	EulerRotation Vec3
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera. Read it with GetView.
	 */
	ViewMatrix Mat4
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

// Reset puts the camera at the origin looking down -z.
func (c *Camera) Reset() {
	c.EulerRotation = NewVec3Zero()
	c.Position = NewVec3Zero()
	c.IsDirty = false
	c.ViewMatrix = NewMat4Identity()
}

func (c *Camera) SetPosition(position Vec3) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) SetEulerRotation(rotation Vec3) {
	c.EulerRotation = rotation
	c.IsDirty = true
}

/**
 * @brief Returns the view matrix, the inverse of the camera's own world
 * matrix (rotation first, then translation).
 */
func (c *Camera) GetView() Mat4 {
	if c.IsDirty {
		rotation := NewMat4EulerXYZ(c.EulerRotation.X, c.EulerRotation.Y, c.EulerRotation.Z)
		translation := NewMat4Translation(c.Position)

		c.ViewMatrix = rotation.Mul(translation).Inverse()
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) Forward() Vec3 {
	return c.GetView().Forward()
}

func (c *Camera) Backward() Vec3 {
	return c.GetView().Backward()
}

func (c *Camera) Left() Vec3 {
	return c.GetView().Left()
}

func (c *Camera) Right() Vec3 {
	return c.GetView().Right()
}

func (c *Camera) move(direction Vec3, amount float64) {
	c.Position = c.Position.Add(direction.MulScalar(amount))
	c.IsDirty = true
}

func (c *Camera) MoveForward(amount float64)  { c.move(c.Forward(), amount) }
func (c *Camera) MoveBackward(amount float64) { c.move(c.Backward(), amount) }
func (c *Camera) MoveLeft(amount float64)     { c.move(c.Left(), amount) }
func (c *Camera) MoveRight(amount float64)    { c.move(c.Right(), amount) }

// MoveUp and MoveDown follow the world y axis, not the camera's.
func (c *Camera) MoveUp(amount float64)   { c.move(NewVec3Up(), amount) }
func (c *Camera) MoveDown(amount float64) { c.move(NewVec3Down(), amount) }

func (c *Camera) Yaw(amount float64) {
	c.EulerRotation.Y += amount
	c.IsDirty = true
}

// Pitch clamps the result to +-89 degrees.
func (c *Camera) Pitch(amount float64) {
	c.EulerRotation.X = Clamp(c.EulerRotation.X+amount, -cameraPitchLimit, cameraPitchLimit)
	c.IsDirty = true
}

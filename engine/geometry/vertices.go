package geometry

import (
	"fmt"

	"github.com/spaghettifunk/icemath/engine/core"
	"github.com/spaghettifunk/icemath/engine/math"
)

// MaxBufferLen is the largest number of float64 values a single generator may
// return. Requests above it fail with core.ErrBufferTooLarge.
var MaxBufferLen = 1 << 24

// Defaults used by callers that do not pick a tessellation themselves.
var (
	DefaultCircleSegments = 64
	DefaultSphereRings    = 16
	DefaultSphereSectors  = 32
)

// Configure applies the geometry section of the configuration file.
func Configure(cfg core.GeometryConfig) {
	MaxBufferLen = cfg.MaxBufferLen
	DefaultCircleSegments = cfg.CircleSegments
	DefaultSphereRings = cfg.SphereRings
	DefaultSphereSectors = cfg.SphereSectors
}

// newBuffer allocates the product of factors values, refusing anything above
// MaxBufferLen before multiplying past it.
func newBuffer(primitive string, factors ...int) ([]float64, error) {
	n := 1
	for _, f := range factors {
		if f > 0 && n > MaxBufferLen/f {
			core.LogWarn("%s: buffer exceeds %d values", primitive, MaxBufferLen)
			return nil, fmt.Errorf("%s: %w", primitive, core.ErrBufferTooLarge)
		}
		n *= f
	}
	if n > MaxBufferLen {
		return nil, fmt.Errorf("%s: %w", primitive, core.ErrBufferTooLarge)
	}
	return make([]float64, n), nil
}

func domainError(primitive, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	core.LogWarn("%s: %s", primitive, msg)
	return fmt.Errorf("%s: %s: %w", primitive, msg, core.ErrDomain)
}

// Point2D returns the buffer {x, y}.
func Point2D(p math.Vec2) []float64 {
	return []float64{p.X, p.Y}
}

// Point3D returns the buffer {x, y, z}.
func Point3D(p math.Vec3) []float64 {
	return []float64{p.X, p.Y, p.Z}
}

func Line2D(a, b math.Vec2) []float64 {
	return []float64{a.X, a.Y, b.X, b.Y}
}

func Line3D(a, b math.Vec3) []float64 {
	return []float64{a.X, a.Y, a.Z, b.X, b.Y, b.Z}
}

func Triangle(a, b, c math.Vec2) []float64 {
	return []float64{a.X, a.Y, b.X, b.Y, c.X, c.Y}
}

/**
 * @brief Returns the four corners of r counter-clockwise starting at (X, Y):
 * (X, Y), (X+W, Y), (X+W, Y+H), (X, Y+H).
 */
func Rect(r math.Rect) ([]float64, error) {
	if r.W < 0 || r.H < 0 {
		return nil, domainError("rect", "negative size %gx%g", r.W, r.H)
	}
	return rectCorners(r.X, r.Y, r.W, r.H), nil
}

func rectCorners(x, y, w, h float64) []float64 {
	return []float64{
		x, y,
		x + w, y,
		x + w, y + h,
		x, y + h,
	}
}

/**
 * @brief Returns the texture coordinates of r inside a texture of the given
 * size, in the same corner order as Rect.
 */
func RectUV(r math.Rect, textureW, textureH float64) ([]float64, error) {
	if textureW <= 0 || textureH <= 0 {
		return nil, domainError("rect uv", "texture size %gx%g", textureW, textureH)
	}
	if r.W < 0 || r.H < 0 {
		return nil, domainError("rect uv", "negative size %gx%g", r.W, r.H)
	}
	return rectCorners(r.X/textureW, r.Y/textureH, r.W/textureW, r.H/textureH), nil
}

// ring fills count points evenly spaced on a circle, starting at angle start
// and going counter-clockwise.
func ring(buf []float64, center math.Vec2, radius float64, count int, start float64) {
	step := math.K_PI_2 / float64(count)
	for i := 0; i < count; i++ {
		angle := start + step*float64(i)
		buf[i*2+0] = center.X + radius*math.Cos(angle)
		buf[i*2+1] = center.Y + radius*math.Sin(angle)
	}
}

/**
 * @brief Returns the corners of a regular polygon. The first corner points
 * straight up from center, the rest follow counter-clockwise.
 *
 * @param sides The number of corners. Must be at least 3.
 */
func Polygon(center math.Vec2, radius float64, sides int) ([]float64, error) {
	if sides < 3 {
		return nil, domainError("polygon", "%d sides", sides)
	}
	if radius < 0 {
		return nil, domainError("polygon", "negative radius %g", radius)
	}
	buf, err := newBuffer("polygon", sides, 2)
	if err != nil {
		return nil, err
	}
	ring(buf, center, radius, sides, math.K_HALF_PI)
	return buf, nil
}

/**
 * @brief Returns segments points on the circle, the first one at angle zero.
 */
func Circle(center math.Vec2, radius float64, segments int) ([]float64, error) {
	if segments < 3 {
		return nil, domainError("circle", "%d segments", segments)
	}
	if radius < 0 {
		return nil, domainError("circle", "negative radius %g", radius)
	}
	buf, err := newBuffer("circle", segments, 2)
	if err != nil {
		return nil, err
	}
	ring(buf, center, radius, segments, 0)
	return buf, nil
}

// cubeFaces lists the corners of every face of the unit cube as signs of the
// half extents. Each face is emitted as the triangles 0,1,2 and 0,3,1 and is
// counter-clockwise seen from outside.
var cubeFaces = [6][4]math.Vec3{
	// front
	{{-1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {1, -1, 1}},
	// back
	{{1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {-1, -1, -1}},
	// left
	{{-1, -1, -1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}},
	// right
	{{1, -1, 1}, {1, 1, -1}, {1, 1, 1}, {1, -1, -1}},
	// bottom
	{{1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {-1, -1, 1}},
	// top
	{{-1, 1, 1}, {1, 1, -1}, {-1, 1, -1}, {1, 1, 1}},
}

var faceIndices = [6]int{0, 1, 2, 0, 3, 1}

// CubeVertexCount is the number of vertices of the Cube and Cuboid triangle lists.
const CubeVertexCount = 6 * 6

// Cube returns an axis aligned cube with edge length size as a triangle list.
func Cube(center math.Vec3, size float64) ([]float64, error) {
	return Cuboid(center, math.NewVec3(size, size, size))
}

/**
 * @brief Returns an axis aligned box as a triangle list of 36 vertices
 * (108 values), two triangles per face.
 *
 * @param size The edge lengths along x, y and z. No component may be negative.
 */
func Cuboid(center, size math.Vec3) ([]float64, error) {
	if size.X < 0 || size.Y < 0 || size.Z < 0 {
		return nil, domainError("cuboid", "negative size %v", size)
	}
	buf, err := newBuffer("cuboid", CubeVertexCount, 3)
	if err != nil {
		return nil, err
	}

	half := size.MulScalar(0.5)
	o := 0
	for _, face := range cubeFaces {
		for _, idx := range faceIndices {
			p := center.Add(face[idx].Mul(half))
			buf[o+0], buf[o+1], buf[o+2] = p.X, p.Y, p.Z
			o += 3
		}
	}
	return buf, nil
}

func spherePoint(center math.Vec3, radius, theta, phi float64) math.Vec3 {
	st := math.Sin(theta)
	return math.NewVec3(
		center.X+radius*st*math.Cos(phi),
		center.Y+radius*math.Cos(theta),
		center.Z+radius*st*math.Sin(phi),
	)
}

/**
 * @brief Returns a UV sphere as a triangle list. Every (ring, sector) cell
 * emits two triangles, 18 values, so the buffer holds 18*rings*sectors
 * values. Cells touching a pole contain one degenerate triangle.
 *
 * @param rings Latitude bands from the north (+y) to the south pole, at least 1.
 * @param sectors Longitude slices, at least 3.
 */
func Sphere(center math.Vec3, radius float64, rings, sectors int) ([]float64, error) {
	if rings < 1 {
		return nil, domainError("sphere", "%d rings", rings)
	}
	if sectors < 3 {
		return nil, domainError("sphere", "%d sectors", sectors)
	}
	if radius < 0 {
		return nil, domainError("sphere", "negative radius %g", radius)
	}
	buf, err := newBuffer("sphere", rings, sectors, 18)
	if err != nil {
		return nil, err
	}

	dTheta := math.K_PI / float64(rings)
	dPhi := math.K_PI_2 / float64(sectors)
	o := 0
	emit := func(p math.Vec3) {
		buf[o+0], buf[o+1], buf[o+2] = p.X, p.Y, p.Z
		o += 3
	}
	for i := 0; i < rings; i++ {
		t0 := dTheta * float64(i)
		t1 := dTheta * float64(i+1)
		for j := 0; j < sectors; j++ {
			p0 := dPhi * float64(j)
			p1 := dPhi * float64(j+1)

			a := spherePoint(center, radius, t0, p0)
			b := spherePoint(center, radius, t1, p0)
			c := spherePoint(center, radius, t1, p1)
			d := spherePoint(center, radius, t0, p1)

			emit(a)
			emit(c)
			emit(b)
			emit(a)
			emit(d)
			emit(c)
		}
	}
	return buf, nil
}

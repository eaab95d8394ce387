package geometry

import (
	"fmt"

	"github.com/spaghettifunk/icemath/engine/core"
	"github.com/spaghettifunk/icemath/engine/math"
)

/**
 * @brief An indexed triangle mesh built from a generated vertex buffer.
 */
type Mesh struct {
	/** @brief The unique vertices, with flat face normals. */
	Vertices []math.Vertex3D
	/** @brief Three indices per triangle into Vertices. */
	Indices []uint32
	/** @brief The center of the mesh in local coordinates. */
	Center math.Vec3
	/** @brief The extents of the mesh in local coordinates. */
	Extents math.Extents3D
}

/**
 * @brief Turns a 3D triangle list (9 values per triangle, as returned by Cube,
 * Cuboid and Sphere) into an indexed mesh. Face normals are generated before
 * identical vertices are merged, so vertices are only shared inside a face.
 */
func NewMesh(buf []float64) (*Mesh, error) {
	if len(buf) == 0 || len(buf)%9 != 0 {
		return nil, fmt.Errorf("mesh: %d values is not a triangle list: %w", len(buf), core.ErrDomain)
	}

	count := len(buf) / 3
	vertices := make([]math.Vertex3D, count)
	indices := make([]uint32, count)
	for i := range vertices {
		vertices[i].Position = math.NewVec3(buf[i*3+0], buf[i*3+1], buf[i*3+2])
		indices[i] = uint32(i)
	}
	math.GenerateNormals(vertices, indices)

	unique, indices := math.DeduplicateVertices(vertices, indices)
	extents := Extents(unique)

	return &Mesh{
		Vertices: unique,
		Indices:  indices,
		Center:   extents.Min.Add(extents.Max).MulScalar(0.5),
		Extents:  extents,
	}, nil
}

// Extents returns the axis aligned bounds of vertices. Empty input yields
// zero extents.
func Extents(vertices []math.Vertex3D) math.Extents3D {
	if len(vertices) == 0 {
		return math.Extents3D{}
	}
	ext := math.Extents3D{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		p := v.Position
		ext.Min = math.NewVec3(math.Min(ext.Min.X, p.X), math.Min(ext.Min.Y, p.Y), math.Min(ext.Min.Z, p.Z))
		ext.Max = math.NewVec3(math.Max(ext.Max.X, p.X), math.Max(ext.Max.Y, p.Y), math.Max(ext.Max.Z, p.Z))
	}
	return ext
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

/**
 * @brief Returns a copy of buf with every point moved by the world matrix of t.
 * 2D buffers are treated as lying in the z = 0 plane and keep two components.
 *
 * @param dim The number of components per point, 2 or 3.
 */
func TransformBuffer(buf []float64, dim int, t *math.Transform) ([]float64, error) {
	if dim != 2 && dim != 3 {
		return nil, fmt.Errorf("transform buffer: dimension %d: %w", dim, core.ErrDomain)
	}
	if len(buf)%dim != 0 {
		return nil, fmt.Errorf("transform buffer: %d values for dimension %d: %w", len(buf), dim, core.ErrDomain)
	}

	world := t.GetWorld()
	out := make([]float64, len(buf))
	for i := 0; i < len(buf); i += dim {
		p := math.NewVec3(buf[i], buf[i+1], 0)
		if dim == 3 {
			p.Z = buf[i+2]
		}
		p = p.Transform(world)
		out[i], out[i+1] = p.X, p.Y
		if dim == 3 {
			out[i+2] = p.Z
		}
	}
	return out, nil
}

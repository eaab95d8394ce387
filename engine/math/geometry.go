package math

import "github.com/spaghettifunk/icemath/engine/core"

// GenerateNormals assigns flat face normals to every triangle described by
// indices. Vertices shared between faces keep the normal of the last face.
func GenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		normal := edge1.Cross(edge2).Normalized()

		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// Vertex3DEqual compares two vertices component-wise within tolerance.
func Vertex3DEqual(vert0, vert1 Vertex3D, tolerance float64) bool {
	return vert0.Position.Compare(vert1.Position, tolerance) &&
		vert0.Normal.Compare(vert1.Normal, tolerance) &&
		vert0.Texcoord.Compare(vert1.Texcoord, tolerance)
}

// DeduplicateVertices collapses bit-identical vertices. It returns the unique
// vertices in first-seen order and rewrites indices in place to point at them.
// When indices is nil an index list matching the input order is produced.
func DeduplicateVertices(vertices []Vertex3D, indices []uint32) ([]Vertex3D, []uint32) {
	if indices == nil {
		indices = make([]uint32, len(vertices))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	seen := make(map[Vertex3D]uint32, len(vertices))
	remap := make([]uint32, len(vertices))
	unique := make([]Vertex3D, 0, len(vertices))

	for v, vert := range vertices {
		if u, ok := seen[vert]; ok {
			remap[v] = u
			continue
		}
		u := uint32(len(unique))
		seen[vert] = u
		remap[v] = u
		unique = append(unique, vert)
	}

	for i, idx := range indices {
		indices[i] = remap[idx]
	}

	core.LogDebug("deduplicate vertices: removed %d vertices, orig/now %d/%d", len(vertices)-len(unique), len(vertices), len(unique))

	return unique, indices
}

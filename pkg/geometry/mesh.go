// Package geometry synthesizes indexed triangle meshes for primitive and
// swept solids. All factories are pure: the same inputs produce the same
// mesh, and a returned mesh is never touched again by this package.
//
// Triangles are wound counter-clockwise when viewed from outside the solid,
// so face normals computed as (v1-v0)×(v2-v0) point outward.
package geometry

import (
	"github.com/taigrr/vantage/pkg/math3d"
)

// Mesh is an indexed triangle mesh. Vertex indices in Triangles refer to
// positions in Vertices by insertion order.
type Mesh struct {
	Vertices  []math3d.Point3
	Triangles [][3]int
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Bounds returns the axis-aligned bounding box of the mesh.
// Returns two origin points for an empty mesh.
func (m *Mesh) Bounds() (min, max math3d.Point3) {
	if len(m.Vertices) == 0 {
		return math3d.Origin(), math3d.Origin()
	}
	min, max = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Point3 {
	min, max := m.Bounds()
	return min.Add(max.Sub(min).Scale(0.5))
}

// addVertex appends a vertex and returns its index.
func (m *Mesh) addVertex(p math3d.Point3) int {
	m.Vertices = append(m.Vertices, p)
	return len(m.Vertices) - 1
}

// addTriangle appends one CCW-wound triangle.
func (m *Mesh) addTriangle(a, b, c int) {
	m.Triangles = append(m.Triangles, [3]int{a, b, c})
}

// addQuad appends a quad as two triangles, wound so the face a->b->c->d is
// counter-clockwise seen from outside.
func (m *Mesh) addQuad(a, b, c, d int) {
	m.addTriangle(a, b, c)
	m.addTriangle(a, c, d)
}

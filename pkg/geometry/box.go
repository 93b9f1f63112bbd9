package geometry

import (
	"github.com/taigrr/vantage/pkg/math3d"
)

// Box creates an axis-aligned box centered at center with the given edge
// lengths: 8 vertices, 12 triangles, two per face, all wound outward.
func Box(center math3d.Point3, lengthX, lengthY, lengthZ float64) (*Mesh, error) {
	if lengthX <= 0 || lengthY <= 0 || lengthZ <= 0 {
		return nil, invalidf("box lengths must be positive, got (%g, %g, %g)", lengthX, lengthY, lengthZ)
	}
	if !center.IsFinite() {
		return nil, invalidf("box center must be finite, got %v", center)
	}

	hx, hy, hz := lengthX/2, lengthY/2, lengthZ/2
	m := &Mesh{}

	// Bottom four then top four, counter-clockwise in X/Y seen from +Z.
	for _, z := range []float64{-hz, hz} {
		m.addVertex(center.Add(math3d.V3(-hx, -hy, z)))
		m.addVertex(center.Add(math3d.V3(hx, -hy, z)))
		m.addVertex(center.Add(math3d.V3(hx, hy, z)))
		m.addVertex(center.Add(math3d.V3(-hx, hy, z)))
	}

	m.addQuad(4, 5, 6, 7) // +Z
	m.addQuad(1, 0, 3, 2) // -Z
	m.addQuad(5, 1, 2, 6) // +X
	m.addQuad(0, 4, 7, 3) // -X
	m.addQuad(3, 7, 6, 2) // +Y
	m.addQuad(0, 1, 5, 4) // -Y

	return m, nil
}

// Cube creates a box with equal edge lengths.
func Cube(center math3d.Point3, length float64) (*Mesh, error) {
	return Box(center, length, length, length)
}

package geometry

import (
	"math"

	"github.com/taigrr/vantage/pkg/math3d"
)

// Sphere creates a UV sphere around center: a north pole at +Z, rings-1
// latitude rings of segments points each, and a south pole at -Z. Vertex
// count is (rings-1)*segments+2 and triangle count 2*segments*(rings-1):
// both poles fan to their nearest ring, the middle bands tile with two
// triangles per quad.
func Sphere(center math3d.Point3, radius float64, segments, rings int) (*Mesh, error) {
	if radius <= 0 {
		return nil, invalidf("sphere radius must be positive, got %g", radius)
	}
	if segments < 3 {
		return nil, invalidf("sphere needs at least 3 segments, got %d", segments)
	}
	if rings < 2 {
		return nil, invalidf("sphere needs at least 2 rings, got %d", rings)
	}
	if !center.IsFinite() {
		return nil, invalidf("sphere center must be finite, got %v", center)
	}

	m := &Mesh{}
	north := m.addVertex(center.Add(math3d.V3(0, 0, radius)))

	// Ring k holds the points at polar angle theta = pi*k/rings;
	// ring k starts at vertex index 1 + (k-1)*segments.
	for k := 1; k < rings; k++ {
		theta := math.Pi * float64(k) / float64(rings)
		sinT, cosT := math.Sin(theta), math.Cos(theta)
		for j := range segments {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			m.addVertex(center.Add(math3d.V3(
				radius*sinT*math.Cos(phi),
				radius*sinT*math.Sin(phi),
				radius*cosT,
			)))
		}
	}

	south := m.addVertex(center.Add(math3d.V3(0, 0, -radius)))

	ringStart := func(k int) int { return 1 + (k-1)*segments }

	// North fan.
	first := ringStart(1)
	for j := range segments {
		k := (j + 1) % segments
		m.addTriangle(north, first+j, first+k)
	}

	// Middle bands.
	for k := 1; k < rings-1; k++ {
		upper, lower := ringStart(k), ringStart(k+1)
		for j := range segments {
			n := (j + 1) % segments
			m.addQuad(upper+j, lower+j, lower+n, upper+n)
		}
	}

	// South fan.
	last := ringStart(rings - 1)
	for j := range segments {
		k := (j + 1) % segments
		m.addTriangle(south, last+k, last+j)
	}

	return m, nil
}

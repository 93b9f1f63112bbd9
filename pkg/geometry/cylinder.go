package geometry

import (
	"math"

	"github.com/taigrr/vantage/pkg/math3d"
)

// Cylinder creates a Z-aligned cylinder with its base circle at z=0 and its
// top at z=height. baseDivs points form each circular ring; heightDivs is
// the number of ring-to-ring bands along the axis. Both caps fan to a center
// point, wound so normals face outward.
func Cylinder(baseRadius, height float64, baseDivs, heightDivs int) (*Mesh, error) {
	if baseRadius <= 0 {
		return nil, invalidf("cylinder radius must be positive, got %g", baseRadius)
	}
	if height <= 0 {
		return nil, invalidf("cylinder height must be positive, got %g", height)
	}
	if baseDivs < 3 {
		return nil, invalidf("cylinder needs at least 3 base divisions, got %d", baseDivs)
	}
	if heightDivs < 1 {
		return nil, invalidf("cylinder needs at least 1 height division, got %d", heightDivs)
	}

	m := &Mesh{}

	// Rings bottom to top: ring i starts at index i*baseDivs.
	for i := 0; i <= heightDivs; i++ {
		z := height * float64(i) / float64(heightDivs)
		addRingZ(m, baseRadius, z, baseDivs)
	}

	for i := 0; i < heightDivs; i++ {
		connectRings(m, i*baseDivs, (i+1)*baseDivs, baseDivs)
	}

	base := m.addVertex(math3d.P3(0, 0, 0))
	top := m.addVertex(math3d.P3(0, 0, height))
	addCap(m, base, 0, baseDivs, false)
	addCap(m, top, heightDivs*baseDivs, baseDivs, true)

	return m, nil
}

// addRingZ appends baseDivs points of a circle of the given radius in the
// plane z=z, counter-clockwise seen from +Z.
func addRingZ(m *Mesh, radius, z float64, baseDivs int) {
	for j := range baseDivs {
		theta := 2 * math.Pi * float64(j) / float64(baseDivs)
		m.addVertex(math3d.P3(radius*math.Cos(theta), radius*math.Sin(theta), z))
	}
}

// connectRings joins two same-size rings with two outward-wound triangles
// per quad. lower and upper are the first vertex indices of each ring.
func connectRings(m *Mesh, lower, upper, baseDivs int) {
	for j := range baseDivs {
		k := (j + 1) % baseDivs
		m.addQuad(lower+j, lower+k, upper+k, upper+j)
	}
}

// addCap fans a ring to its center vertex. up selects the winding: true for
// a cap facing +Z, false for one facing -Z.
func addCap(m *Mesh, center, ring, baseDivs int, up bool) {
	for j := range baseDivs {
		k := (j + 1) % baseDivs
		if up {
			m.addTriangle(center, ring+j, ring+k)
		} else {
			m.addTriangle(center, ring+k, ring+j)
		}
	}
}

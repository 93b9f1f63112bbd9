package geometry

import (
	"github.com/taigrr/vantage/pkg/math3d"
)

// BiCone creates a double cone: two cones sharing a base ring at z=0, with
// apexes at z=±height/2. Each side fans from its apex to the shared ring
// with opposite winding so both halves face outward.
func BiCone(radius, height float64, baseDivs int) (*Mesh, error) {
	if radius <= 0 {
		return nil, invalidf("bicone radius must be positive, got %g", radius)
	}
	if height <= 0 {
		return nil, invalidf("bicone height must be positive, got %g", height)
	}
	if baseDivs < 3 {
		return nil, invalidf("bicone needs at least 3 base divisions, got %d", baseDivs)
	}

	m := &Mesh{}
	top := m.addVertex(math3d.P3(0, 0, height/2))
	addRingZ(m, radius, 0, baseDivs)
	bottom := m.addVertex(math3d.P3(0, 0, -height/2))

	ring := 1 // ring vertices start right after the top apex
	for j := range baseDivs {
		k := (j + 1) % baseDivs
		m.addTriangle(ring+j, ring+k, top)
		m.addTriangle(ring+k, ring+j, bottom)
	}

	return m, nil
}

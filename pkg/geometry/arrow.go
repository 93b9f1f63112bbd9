package geometry

import (
	"github.com/taigrr/vantage/pkg/math3d"
)

// Arrow creates a Z-aligned arrow: a cylindrical shaft capped by a conical
// head. The mesh is centered on its total length, so the local origin sits
// at the visual midpoint of shaft plus head.
func Arrow(shaftRadius, shaftLength, headRadius, headLength float64, baseDivs int) (*Mesh, error) {
	if shaftRadius <= 0 || headRadius <= 0 {
		return nil, invalidf("arrow radii must be positive, got shaft %g head %g", shaftRadius, headRadius)
	}
	if shaftLength <= 0 || headLength <= 0 {
		return nil, invalidf("arrow lengths must be positive, got shaft %g head %g", shaftLength, headLength)
	}
	if baseDivs < 3 {
		return nil, invalidf("arrow needs at least 3 base divisions, got %d", baseDivs)
	}

	half := (shaftLength + headLength) / 2
	zBase := -half
	zNeck := -half + shaftLength
	zTip := half

	m := &Mesh{}

	addRingZ(m, shaftRadius, zBase, baseDivs) // shaft bottom
	addRingZ(m, shaftRadius, zNeck, baseDivs) // shaft top
	addRingZ(m, headRadius, zNeck, baseDivs)  // head flange
	base := m.addVertex(math3d.P3(0, 0, zBase))
	tip := m.addVertex(math3d.P3(0, 0, zTip))

	connectRings(m, 0, baseDivs, baseDivs)
	addCap(m, base, 0, baseDivs, false)

	// Annular flange under the cone head, facing down.
	shaftTop, flange := baseDivs, 2*baseDivs
	for j := range baseDivs {
		k := (j + 1) % baseDivs
		m.addQuad(shaftTop+j, shaftTop+k, flange+k, flange+j)
	}

	// Cone side from the flange ring to the tip.
	for j := range baseDivs {
		k := (j + 1) % baseDivs
		m.addTriangle(flange+j, flange+k, tip)
	}

	return m, nil
}

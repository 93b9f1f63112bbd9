package geometry

import (
	"math"

	"github.com/taigrr/vantage/pkg/math3d"
)

// PolylineTube sweeps a circular cross-section of baseRadius along an
// ordered polyline. Each sample gets a transported frame oriented by its
// incoming segment (the first sample uses the outgoing one), a ring of
// baseDivs points in the frame's normal plane, and consecutive rings are
// joined with two triangles per quad.
//
// Fewer than two points cannot define a sweep; an empty mesh is returned.
// Duplicate samples are absorbed by the frame transport fallback, so the
// output never contains NaN or Inf coordinates.
func PolylineTube(points []math3d.Point3, baseRadius float64, baseDivs int) (*Mesh, error) {
	if baseRadius <= 0 {
		return nil, invalidf("tube radius must be positive, got %g", baseRadius)
	}
	if baseDivs < 3 {
		return nil, invalidf("tube needs at least 3 base divisions, got %d", baseDivs)
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, invalidf("tube point %d is not finite", i)
		}
	}

	m := &Mesh{}
	if len(points) < 2 {
		return m, nil
	}

	prevTangent := math3d.Zero3()
	for i, p := range points {
		var f Frame
		if i == 0 {
			f = TransportFrame(points[0], points[1], prevTangent)
		} else {
			f = TransportFrame(points[i-1], points[i], prevTangent)
		}
		prevTangent = f.N1

		for j := range baseDivs {
			theta := 2 * math.Pi * float64(j) / float64(baseDivs)
			offset := f.N2.Scale(baseRadius * math.Cos(theta)).
				Add(f.N3.Scale(baseRadius * math.Sin(theta)))
			m.addVertex(p.Add(offset))
		}
	}

	for i := 0; i < len(points)-1; i++ {
		connectRings(m, i*baseDivs, (i+1)*baseDivs, baseDivs)
	}

	return m, nil
}

// ParametricTube samples curve over [tStart, tEnd] into numSegments steps
// and sweeps a tube along the sampled polyline.
func ParametricTube(curve func(t float64) math3d.Point3, tStart, tEnd float64, numSegments int, baseRadius float64, baseDivs int) (*Mesh, error) {
	if curve == nil {
		return nil, invalidf("tube curve function is nil")
	}
	if numSegments < 1 {
		return nil, invalidf("tube needs at least 1 segment, got %d", numSegments)
	}
	if math.IsNaN(tStart) || math.IsNaN(tEnd) || math.IsInf(tStart, 0) || math.IsInf(tEnd, 0) {
		return nil, invalidf("tube parameter range must be finite, got [%g, %g]", tStart, tEnd)
	}

	points := make([]math3d.Point3, numSegments+1)
	for i := range points {
		t := tStart + (tEnd-tStart)*float64(i)/float64(numSegments)
		points[i] = curve(t)
	}

	return PolylineTube(points, baseRadius, baseDivs)
}

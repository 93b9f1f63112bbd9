package geometry

import (
	"math"

	"github.com/taigrr/vantage/pkg/math3d"
)

// frameEps is the tangent length below which a curve segment is treated as
// degenerate.
const frameEps = 1e-9

// Frame is a right-handed orthonormal basis used to orient a cross-section
// swept along a curve: N1 is the tangent, N2 the normal, N3 the binormal
// (N3 = N1 × N2).
type Frame struct {
	N1, N2, N3 math3d.Vec3
}

// TransportFrame computes the frame for the curve segment running from
// current to next. previousTangent carries the previous ring's tangent so a
// degenerate segment (duplicate samples) still yields a well-defined frame;
// pass the zero vector for the first ring of a sweep.
//
// The basis is rebuilt from the tangent at every ring rather than
// parallel-transported, which bounds drift between rings but can introduce
// visible twist on sharply coiling paths.
func TransportFrame(current, next math3d.Point3, previousTangent math3d.Vec3) Frame {
	tangent := next.Sub(current)
	if tangent.Len() < frameEps {
		tangent = previousTangent
	}
	if tangent.Len() < frameEps {
		// No usable direction at all; any fixed axis works.
		tangent = math3d.V3(0, 0, 1)
	}

	n1 := tangent.Normalize()
	v2, v3 := referenceAxes(n1)

	// Gram-Schmidt against n1.
	n2 := v2.Sub(n1.Scale(v2.Dot(n1))).Normalize()
	n3 := v3.Sub(n1.Scale(v3.Dot(n1))).Sub(n2.Scale(v3.Dot(n2))).Normalize()

	// Orthonormalization can land on the mirrored binormal for
	// negative-leaning tangents; fold it back onto n1×n2.
	if n1.Cross(n2).Dot(n3) < 0 {
		n3 = n3.Negate()
	}

	return Frame{N1: n1, N2: n2, N3: n3}
}

// referenceAxes picks two axis-aligned unit vectors along the coordinate
// axes whose magnitude in t is not the largest, signed to match t's sign on
// the remaining axis. This keeps the reference pair far from parallel to t,
// which would be unstable to orthogonalize.
func referenceAxes(t math3d.Vec3) (v2, v3 math3d.Vec3) {
	a := t.Abs()
	switch {
	case a.X >= a.Y && a.X >= a.Z:
		s := math.Copysign(1, t.X)
		return math3d.V3(0, s, 0), math3d.V3(0, 0, s)
	case a.Y >= a.X && a.Y >= a.Z:
		s := math.Copysign(1, t.Y)
		return math3d.V3(s, 0, 0), math3d.V3(0, 0, s)
	default:
		s := math.Copysign(1, t.Z)
		return math3d.V3(s, 0, 0), math3d.V3(0, s, 0)
	}
}

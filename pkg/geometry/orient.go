package geometry

import (
	"math"

	"github.com/taigrr/vantage/pkg/math3d"
)

// RotationBetween returns the rotation matrix taking direction from onto
// direction to. The axis comes from the cross product and the angle from
// acos of the dot product; antiparallel directions, where the cross product
// vanishes, rotate 180 degrees about an axis perpendicular to from. Useful
// for orienting a Z-aligned primitive along an arbitrary direction.
// Returns identity when either direction has zero length.
func RotationBetween(from, to math3d.Vec3) math3d.Mat4 {
	f := from.Normalize()
	t := to.Normalize()
	if f.LenSq() == 0 || t.LenSq() == 0 {
		return math3d.Identity()
	}

	axis := f.Cross(t)
	dot := math.Max(-1, math.Min(1, f.Dot(t)))

	if axis.Len() < frameEps {
		if dot > 0 {
			return math3d.Identity()
		}
		// Antiparallel: any perpendicular axis works.
		v2, _ := referenceAxes(f)
		perp := v2.Sub(f.Scale(v2.Dot(f))).Normalize()
		return math3d.Rotate(perp, math.Pi)
	}

	return math3d.Rotate(axis, math.Acos(dot))
}

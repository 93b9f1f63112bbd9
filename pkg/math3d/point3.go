package math3d

import "math"

// Point3 represents a position in 3D space. Points and vectors are kept as
// distinct types: the difference of two points is a Vec3, and a point offset
// by a Vec3 is another point.
type Point3 struct {
	X, Y, Z float64
}

// P3 creates a new Point3.
func P3(x, y, z float64) Point3 {
	return Point3{x, y, z}
}

// Origin returns the origin point (0, 0, 0).
func Origin() Point3 {
	return Point3{}
}

// Add returns the point offset by v.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point3) Sub(q Point3) Vec3 {
	return Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Vec returns the position vector from the origin to p.
func (p Point3) Vec() Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// Distance returns the distance between two points.
func (p Point3) Distance(q Point3) float64 {
	return p.Sub(q).Len()
}

// Min returns the component-wise minimum of two points.
func (p Point3) Min(q Point3) Point3 {
	return Point3{
		math.Min(p.X, q.X),
		math.Min(p.Y, q.Y),
		math.Min(p.Z, q.Z),
	}
}

// Max returns the component-wise maximum of two points.
func (p Point3) Max(q Point3) Point3 {
	return Point3{
		math.Max(p.X, q.X),
		math.Max(p.Y, q.Y),
		math.Max(p.Z, q.Z),
	}
}

// IsFinite reports whether every coordinate is a finite number.
func (p Point3) IsFinite() bool {
	return p.Vec().IsFinite()
}

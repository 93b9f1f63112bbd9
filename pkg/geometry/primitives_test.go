package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/taigrr/vantage/pkg/math3d"
)

// checkOutwardWinding verifies every face normal of a convex solid points
// away from the given interior point.
func checkOutwardWinding(t *testing.T, m *Mesh, interior math3d.Point3) {
	t.Helper()

	for i, tri := range m.Triangles {
		a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
		normal := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b.Sub(a).Scale(1.0 / 3)).Add(c.Sub(a).Scale(1.0 / 3))
		if normal.Dot(centroid.Sub(interior)) <= 0 {
			t.Errorf("triangle %d normal points inward", i)
		}
	}
}

// checkFinite verifies no vertex carries NaN or Inf coordinates.
func checkFinite(t *testing.T, m *Mesh) {
	t.Helper()

	for i, v := range m.Vertices {
		if !v.IsFinite() {
			t.Errorf("vertex %d is not finite: %v", i, v)
		}
	}
}

func TestBox(t *testing.T) {
	m, err := Box(math3d.P3(1, 2, 3), 2, 4, 6)
	if err != nil {
		t.Fatalf("Box: %v", err)
	}

	if m.VertexCount() != 8 {
		t.Errorf("vertex count = %d, want 8", m.VertexCount())
	}
	if m.TriangleCount() != 12 {
		t.Errorf("triangle count = %d, want 12", m.TriangleCount())
	}

	min, max := m.Bounds()
	if min.Sub(math3d.P3(0, 0, 0)).Len() > 1e-9 {
		t.Errorf("bounds min = %v, want (0, 0, 0)", min)
	}
	if max.Sub(math3d.P3(2, 4, 6)).Len() > 1e-9 {
		t.Errorf("bounds max = %v, want (2, 4, 6)", max)
	}

	checkOutwardWinding(t, m, math3d.P3(1, 2, 3))
}

func TestCube(t *testing.T) {
	m, err := Cube(math3d.Origin(), 2)
	if err != nil {
		t.Fatalf("Cube: %v", err)
	}

	min, max := m.Bounds()
	if min.Sub(math3d.P3(-1, -1, -1)).Len() > 1e-9 || max.Sub(math3d.P3(1, 1, 1)).Len() > 1e-9 {
		t.Errorf("bounds = %v..%v, want (-1,-1,-1)..(1,1,1)", min, max)
	}
}

func TestCylinder(t *testing.T) {
	m, err := Cylinder(1, 10, 12, 4)
	if err != nil {
		t.Fatalf("Cylinder: %v", err)
	}

	// 5 rings of 12 plus two cap centers
	if m.VertexCount() != 62 {
		t.Errorf("vertex count = %d, want 62", m.VertexCount())
	}
	// 4 bands of 24 side triangles plus 12 per cap
	if m.TriangleCount() != 120 {
		t.Errorf("triangle count = %d, want 120", m.TriangleCount())
	}

	min, max := m.Bounds()
	if math.Abs(min.Z) > 1e-9 || math.Abs(max.Z-10) > 1e-9 {
		t.Errorf("z extent = [%v, %v], want [0, 10]", min.Z, max.Z)
	}

	checkOutwardWinding(t, m, math3d.P3(0, 0, 5))
}

func TestSphere(t *testing.T) {
	m, err := Sphere(math3d.Origin(), 2, 10, 10)
	if err != nil {
		t.Fatalf("Sphere: %v", err)
	}

	if m.VertexCount() != 92 {
		t.Errorf("vertex count = %d, want 92", m.VertexCount())
	}
	if m.TriangleCount() != 180 {
		t.Errorf("triangle count = %d, want 180", m.TriangleCount())
	}

	// Every vertex sits on the sphere surface.
	for i, v := range m.Vertices {
		r := v.Distance(math3d.Origin())
		if math.Abs(r-2) > 1e-9 {
			t.Errorf("vertex %d radius = %v, want 2", i, r)
		}
	}

	checkOutwardWinding(t, m, math3d.Origin())
}

func TestSphereOffCenter(t *testing.T) {
	center := math3d.P3(5, -3, 2)
	m, err := Sphere(center, 1, 8, 6)
	if err != nil {
		t.Fatalf("Sphere: %v", err)
	}

	if got := m.Center(); got.Sub(center).Len() > 1e-9 {
		t.Errorf("mesh center = %v, want %v", got, center)
	}
	checkOutwardWinding(t, m, center)
}

func TestBiCone(t *testing.T) {
	m, err := BiCone(1.5, 4, 8)
	if err != nil {
		t.Fatalf("BiCone: %v", err)
	}

	if m.VertexCount() != 10 {
		t.Errorf("vertex count = %d, want 10", m.VertexCount())
	}
	if m.TriangleCount() != 16 {
		t.Errorf("triangle count = %d, want 16", m.TriangleCount())
	}

	min, max := m.Bounds()
	if math.Abs(min.Z+2) > 1e-9 || math.Abs(max.Z-2) > 1e-9 {
		t.Errorf("z extent = [%v, %v], want [-2, 2]", min.Z, max.Z)
	}

	checkOutwardWinding(t, m, math3d.Origin())
}

func TestArrow(t *testing.T) {
	m, err := Arrow(0.5, 3, 1, 1, 8)
	if err != nil {
		t.Fatalf("Arrow: %v", err)
	}

	// 3 rings of 8 plus base center and tip
	if m.VertexCount() != 26 {
		t.Errorf("vertex count = %d, want 26", m.VertexCount())
	}
	// shaft 16, base cap 8, flange 16, cone 8
	if m.TriangleCount() != 48 {
		t.Errorf("triangle count = %d, want 48", m.TriangleCount())
	}

	// Centered on total length: tip at +2, base at -2.
	min, max := m.Bounds()
	if math.Abs(min.Z+2) > 1e-9 || math.Abs(max.Z-2) > 1e-9 {
		t.Errorf("z extent = [%v, %v], want [-2, 2]", min.Z, max.Z)
	}
	if math.Abs(max.X-1) > 1e-9 {
		t.Errorf("max x = %v, want head radius 1", max.X)
	}

	checkFinite(t, m)
}

func TestHeightfield(t *testing.T) {
	heights := [][]float64{
		{0, 1, 0},
		{1, 2, 1},
		{0, 1, 0},
	}
	m, err := Heightfield(heights, 1, 1, 2)
	if err != nil {
		t.Fatalf("Heightfield: %v", err)
	}

	// Both sheets duplicate the 3x3 grid.
	if m.VertexCount() != 18 {
		t.Errorf("vertex count = %d, want 18", m.VertexCount())
	}
	// 2x2 cells, 2 triangles each, both sides
	if m.TriangleCount() != 16 {
		t.Errorf("triangle count = %d, want 16", m.TriangleCount())
	}

	// Grid centered on origin, peak scaled by scaleZ.
	min, max := m.Bounds()
	if math.Abs(min.X+1) > 1e-9 || math.Abs(max.X-1) > 1e-9 {
		t.Errorf("x extent = [%v, %v], want [-1, 1]", min.X, max.X)
	}
	if math.Abs(max.Z-4) > 1e-2 {
		t.Errorf("max z = %v, want about 4", max.Z)
	}

	// The two sheets are separated, never coincident.
	top := m.Vertices[0]
	bot := m.Vertices[9]
	if top.Z <= bot.Z {
		t.Errorf("top sheet z %v not above bottom sheet z %v", top.Z, bot.Z)
	}

	checkFinite(t, m)
}

func TestInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		make func() (*Mesh, error)
	}{
		{"box zero length", func() (*Mesh, error) { return Box(math3d.Origin(), 0, 1, 1) }},
		{"box negative length", func() (*Mesh, error) { return Box(math3d.Origin(), 1, -2, 1) }},
		{"box nan center", func() (*Mesh, error) { return Box(math3d.P3(math.NaN(), 0, 0), 1, 1, 1) }},
		{"cylinder zero radius", func() (*Mesh, error) { return Cylinder(0, 1, 8, 1) }},
		{"cylinder two divisions", func() (*Mesh, error) { return Cylinder(1, 1, 2, 1) }},
		{"cylinder zero bands", func() (*Mesh, error) { return Cylinder(1, 1, 8, 0) }},
		{"sphere one ring", func() (*Mesh, error) { return Sphere(math3d.Origin(), 1, 8, 1) }},
		{"sphere negative radius", func() (*Mesh, error) { return Sphere(math3d.Origin(), -1, 8, 4) }},
		{"bicone zero height", func() (*Mesh, error) { return BiCone(1, 0, 8) }},
		{"arrow zero head", func() (*Mesh, error) { return Arrow(0.5, 1, 0, 1, 8) }},
		{"heightfield one row", func() (*Mesh, error) { return Heightfield([][]float64{{1, 2}}, 1, 1, 1) }},
		{"heightfield ragged", func() (*Mesh, error) { return Heightfield([][]float64{{1, 2}, {1}}, 1, 1, 1) }},
		{"heightfield nan sample", func() (*Mesh, error) {
			return Heightfield([][]float64{{1, 2}, {math.NaN(), 3}}, 1, 1, 1)
		}},
		{"heightfield zero spacing", func() (*Mesh, error) { return Heightfield([][]float64{{1, 2}, {3, 4}}, 0, 1, 1) }},
		{"tube zero radius", func() (*Mesh, error) {
			return PolylineTube([]math3d.Point3{math3d.Origin(), math3d.P3(1, 0, 0)}, 0, 8)
		}},
		{"tube two divisions", func() (*Mesh, error) {
			return PolylineTube([]math3d.Point3{math3d.Origin(), math3d.P3(1, 0, 0)}, 1, 2)
		}},
		{"parametric nil curve", func() (*Mesh, error) { return ParametricTube(nil, 0, 1, 4, 0.5, 8) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tc.make()
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("err = %v, want ErrInvalidParameter", err)
			}
			if m != nil {
				t.Errorf("mesh = %v, want nil on error", m)
			}
		})
	}
}

func TestMeshBoundsEmpty(t *testing.T) {
	m := &Mesh{}
	min, max := m.Bounds()
	if min != math3d.Origin() || max != math3d.Origin() {
		t.Errorf("empty bounds = %v..%v, want origin", min, max)
	}
}

package geometry

import (
	"math"
	"testing"

	"github.com/taigrr/vantage/pkg/math3d"
)

// checkFrame verifies a frame is orthonormal and right-handed.
func checkFrame(t *testing.T, f Frame) {
	t.Helper()

	for name, v := range map[string]math3d.Vec3{"N1": f.N1, "N2": f.N2, "N3": f.N3} {
		if math.Abs(v.Len()-1) > 1e-9 {
			t.Errorf("%s length = %v, want 1", name, v.Len())
		}
	}
	if d := f.N1.Dot(f.N2); math.Abs(d) > 1e-9 {
		t.Errorf("N1 . N2 = %v, want 0", d)
	}
	if d := f.N1.Dot(f.N3); math.Abs(d) > 1e-9 {
		t.Errorf("N1 . N3 = %v, want 0", d)
	}
	if d := f.N2.Dot(f.N3); math.Abs(d) > 1e-9 {
		t.Errorf("N2 . N3 = %v, want 0", d)
	}
	if d := f.N1.Cross(f.N2).Dot(f.N3); math.Abs(d-1) > 1e-9 {
		t.Errorf("(N1 x N2) . N3 = %v, want 1 (right-handed)", d)
	}
}

func TestTransportFrameUnitX(t *testing.T) {
	f := TransportFrame(math3d.P3(0, 0, 0), math3d.P3(1, 0, 0), math3d.Zero3())
	checkFrame(t, f)

	if f.N1.Sub(math3d.V3(1, 0, 0)).Len() > 1e-9 {
		t.Errorf("N1 = %v, want (1, 0, 0)", f.N1)
	}
	if f.N2.Sub(math3d.V3(0, 1, 0)).Len() > 1e-9 {
		t.Errorf("N2 = %v, want (0, 1, 0)", f.N2)
	}
	if f.N3.Sub(math3d.V3(0, 0, 1)).Len() > 1e-9 {
		t.Errorf("N3 = %v, want (0, 0, 1)", f.N3)
	}
}

func TestTransportFrameAlwaysOrthonormal(t *testing.T) {
	tests := []struct {
		name string
		next math3d.Point3
	}{
		{"+x", math3d.P3(1, 0, 0)},
		{"-x", math3d.P3(-1, 0, 0)},
		{"+y", math3d.P3(0, 1, 0)},
		{"-y", math3d.P3(0, -1, 0)},
		{"+z", math3d.P3(0, 0, 1)},
		{"-z", math3d.P3(0, 0, -1)},
		{"diagonal", math3d.P3(1, 1, 1)},
		{"negative diagonal", math3d.P3(-1, -2, -3)},
		{"near axis", math3d.P3(1, 1e-7, 0)},
		{"tiny but valid", math3d.P3(1e-6, 2e-6, -1e-6)},
	}

	origin := math3d.Origin()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := TransportFrame(origin, tc.next, math3d.Zero3())
			checkFrame(t, f)

			want := tc.next.Sub(origin).Normalize()
			if f.N1.Sub(want).Len() > 1e-9 {
				t.Errorf("N1 = %v, want %v", f.N1, want)
			}
		})
	}
}

func TestTransportFrameDegenerateSegment(t *testing.T) {
	p := math3d.P3(2, 3, 4)

	// Coincident points fall back to the previous tangent.
	prev := math3d.V3(0, 1, 0)
	f := TransportFrame(p, p, prev)
	checkFrame(t, f)
	if f.N1.Sub(prev).Len() > 1e-9 {
		t.Errorf("N1 = %v, want previous tangent %v", f.N1, prev)
	}

	// No previous tangent either: still a valid frame.
	f = TransportFrame(p, p, math3d.Zero3())
	checkFrame(t, f)
}

func TestRotationBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to math3d.Vec3
	}{
		{"z to x", math3d.V3(0, 0, 1), math3d.V3(1, 0, 0)},
		{"z to diagonal", math3d.V3(0, 0, 1), math3d.V3(1, 1, 1)},
		{"x to y", math3d.V3(1, 0, 0), math3d.V3(0, 1, 0)},
		{"antiparallel", math3d.V3(0, 0, 1), math3d.V3(0, 0, -1)},
		{"identical", math3d.V3(0, 1, 0), math3d.V3(0, 2, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := RotationBetween(tc.from, tc.to)
			got := m.MulDir(tc.from.Normalize())
			want := tc.to.Normalize()
			if got.Sub(want).Len() > 1e-9 {
				t.Errorf("rotated from = %v, want %v", got, want)
			}
		})
	}
}

func TestRotationBetweenZeroLength(t *testing.T) {
	m := RotationBetween(math3d.Zero3(), math3d.V3(1, 0, 0))
	if m != math3d.Identity() {
		t.Errorf("zero-length input should give identity")
	}
}

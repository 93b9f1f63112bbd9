package render

import (
	"github.com/taigrr/vantage/pkg/geometry"
	"github.com/taigrr/vantage/pkg/math3d"
	"github.com/taigrr/vantage/pkg/plot"
)

// Wireframe draws mesh edges, axes and grids into a framebuffer.
type Wireframe struct {
	fb       *Framebuffer
	viewProj math3d.Mat4
}

// NewWireframe creates a wireframe renderer targeting fb.
func NewWireframe(fb *Framebuffer) *Wireframe {
	return &Wireframe{fb: fb, viewProj: math3d.Identity()}
}

// SetView caches the view-projection matrix for subsequent draws.
func (w *Wireframe) SetView(v View) {
	w.viewProj = v.ViewProjection()
}

// worldToScreen projects a world point to framebuffer coordinates.
// Returns visible=false for points behind the camera or outside the
// frustum.
func (w *Wireframe) worldToScreen(p math3d.Point3) (x, y float64, visible bool) {
	clipPos := w.viewProj.MulVec4(math3d.V4FromPoint(p))
	if clipPos.W <= 0 {
		return 0, 0, false
	}

	ndc := clipPos.PerspectiveDivide()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, false
	}

	x = (ndc.X + 1) * 0.5 * float64(w.fb.Width)
	y = (1 - ndc.Y) * 0.5 * float64(w.fb.Height) // Y is flipped
	return x, y, true
}

// DrawLine3D draws a world-space line segment.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Point3, color Color) {
	x1, y1, vis1 := w.worldToScreen(p1)
	x2, y2, vis2 := w.worldToScreen(p2)

	// Only draw when at least one endpoint is visible; proper clipping
	// would split the segment at the frustum.
	if !vis1 && !vis2 {
		return
	}

	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), color)
}

// DrawMesh draws every triangle edge of a mesh, transformed by transform.
func (w *Wireframe) DrawMesh(m *geometry.Mesh, transform math3d.Mat4, color Color) {
	for _, tri := range m.Triangles {
		a := transform.MulPoint(m.Vertices[tri[0]])
		b := transform.MulPoint(m.Vertices[tri[1]])
		c := transform.MulPoint(m.Vertices[tri[2]])

		w.DrawLine3D(a, b, color)
		w.DrawLine3D(b, c, color)
		w.DrawLine3D(c, a, color)
	}
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float64) {
	origin := math3d.Origin()
	w.DrawLine3D(origin, math3d.P3(length, 0, 0), ColorRed)   // X axis
	w.DrawLine3D(origin, math3d.P3(0, length, 0), ColorGreen) // Y axis
	w.DrawLine3D(origin, math3d.P3(0, 0, length), ColorBlue)  // Z axis
}

// DrawGrid draws grid lines on the XZ plane at y=0, one line per tick in
// both directions across the tick range.
func (w *Wireframe) DrawGrid(ticks plot.TickInfo, color Color) {
	for _, t := range ticks.Ticks {
		w.DrawLine3D(
			math3d.P3(t.Value, 0, ticks.NiceMin),
			math3d.P3(t.Value, 0, ticks.NiceMax),
			color,
		)
		w.DrawLine3D(
			math3d.P3(ticks.NiceMin, 0, t.Value),
			math3d.P3(ticks.NiceMax, 0, t.Value),
			color,
		)
	}
}

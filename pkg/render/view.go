// Package render is a terminal wireframe adapter: it consumes the meshes
// and camera poses produced by the core packages and draws them as
// half-block cells. It exists for the demo viewer; the geometry and camera
// packages know nothing about it.
package render

import (
	"math"

	"github.com/taigrr/vantage/pkg/camera"
	"github.com/taigrr/vantage/pkg/math3d"
)

// View derives view and projection matrices from a camera pose.
type View struct {
	Pose        camera.Pose
	AspectRatio float64 // width / height in framebuffer pixels
	Near, Far   float64
}

// NewView creates a view with default clip planes.
func NewView(aspect float64) View {
	return View{
		AspectRatio: aspect,
		Near:        0.1,
		Far:         1000,
	}
}

// ViewMatrix returns the world-to-camera matrix for the current pose.
func (v View) ViewMatrix() math3d.Mat4 {
	// Inverse of the camera orientation, then move the world opposite to
	// the camera position.
	rot := math3d.RotateX(-v.Pose.Pitch).Mul(math3d.RotateY(-v.Pose.Yaw))
	trans := math3d.Translate(v.Pose.Position.Vec().Negate())
	return rot.Mul(trans)
}

// ProjectionMatrix returns the perspective projection for the current pose.
func (v View) ProjectionMatrix() math3d.Mat4 {
	return math3d.Perspective(v.Pose.FOV*math.Pi/180, v.AspectRatio, v.Near, v.Far)
}

// ViewProjection returns the combined view-projection matrix.
func (v View) ViewProjection() math3d.Mat4 {
	return v.ProjectionMatrix().Mul(v.ViewMatrix())
}

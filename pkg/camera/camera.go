// Package camera maps abstract pointer, wheel and keyboard events onto a
// consistent 3D camera pose. It holds no rendering state and talks to no
// windowing system, so the whole state machine is testable headlessly.
//
// The controller is not internally synchronized; drive it from one
// goroutine or serialize access externally.
package camera

import (
	"math"

	"github.com/taigrr/vantage/pkg/math3d"
)

// poleEps keeps the orbit polar angle away from the poles, where the
// azimuth becomes undefined.
const poleEps = 0.01

// Pose is the camera's position and orientation. Yaw and pitch are radians;
// FOV is the vertical field of view in degrees.
type Pose struct {
	Position math3d.Point3
	Yaw      float64
	Pitch    float64
	FOV      float64
}

// Forward returns the look direction.
func (p Pose) Forward() math3d.Vec3 {
	return math3d.V3(
		-math.Sin(p.Yaw)*math.Cos(p.Pitch),
		math.Sin(p.Pitch),
		-math.Cos(p.Yaw)*math.Cos(p.Pitch),
	)
}

// Right returns the right direction (horizontal, independent of pitch).
func (p Pose) Right() math3d.Vec3 {
	return math3d.V3(
		math.Cos(p.Yaw),
		0,
		-math.Sin(p.Yaw),
	)
}

// Up returns the camera up direction.
func (p Pose) Up() math3d.Vec3 {
	return p.Right().Cross(p.Forward())
}

// ZoomPolicy selects how scroll input zooms.
type ZoomPolicy int

const (
	// ZoomFOV narrows or widens the field of view; the position is fixed.
	ZoomFOV ZoomPolicy = iota
	// ZoomDolly moves the camera along its look direction, keeping the
	// distance to the orbit pivot within configured bounds.
	ZoomDolly
)

// Config holds the controller's tuning parameters.
type Config struct {
	// RotateSensitivity is pointer units per radian for both orbit and
	// free-look drags.
	RotateSensitivity float64
	// ZoomSpeed scales wheel deltas: FOV degrees per unit for ZoomFOV,
	// world units per unit for ZoomDolly.
	ZoomSpeed float64
	// KeyMoveSpeed is the translation step per key event, in world units.
	KeyMoveSpeed float64
	// OrbitDistance is the pivot distance used before Init establishes one.
	OrbitDistance float64

	MinPitch, MaxPitch       float64
	MinFOV, MaxFOV           float64
	MinDistance, MaxDistance float64

	ZoomPolicy ZoomPolicy
	// LevelForward keeps keyboard forward/back movement horizontal.
	LevelForward bool
}

// DefaultConfig returns the tuning used by the demo viewer.
func DefaultConfig() Config {
	return Config{
		RotateSensitivity: 200,
		ZoomSpeed:         2,
		KeyMoveSpeed:      0.5,
		OrbitDistance:     10,
		MinPitch:          -math.Pi/2 + poleEps,
		MaxPitch:          math.Pi/2 - poleEps,
		MinFOV:            10,
		MaxFOV:            120,
		MinDistance:       0.5,
		MaxDistance:       200,
		ZoomPolicy:        ZoomFOV,
	}
}

// orbitSession is the drag state captured when the primary button goes
// down: pointer origin plus the pivot-relative offset in spherical
// coordinates at that instant.
type orbitSession struct {
	startX, startY float64
	pivot          math3d.Point3
	radius         float64
	startPhi       float64
	startTheta     float64
}

// lookSession is the drag state captured when the secondary button goes
// down.
type lookSession struct {
	startX, startY       float64
	startYaw, startPitch float64
}

// Controller owns a camera pose and mutates it in response to input events.
type Controller struct {
	cfg       Config
	pose      Pose
	pivotDist float64

	home     Pose
	homeDist float64

	orbit *orbitSession
	look  *lookSession
}

// NewController creates a controller at (0, 0, OrbitDistance) looking down
// -Z with a 60 degree field of view. Call Init to place it properly.
func NewController(cfg Config) *Controller {
	c := &Controller{
		cfg:       cfg,
		pivotDist: cfg.OrbitDistance,
		pose: Pose{
			Position: math3d.P3(0, 0, cfg.OrbitDistance),
			FOV:      60,
		},
	}
	c.home = c.pose
	c.homeDist = c.pivotDist
	return c
}

// Init places the camera at position looking at lookAtPoint and records the
// result as the home pose restored by KeyHome. The distance to lookAtPoint
// becomes the orbit pivot distance. Any active drag is discarded.
func (c *Controller) Init(position, lookAtPoint math3d.Point3) {
	c.pose.Position = position
	dir := lookAtPoint.Sub(position)
	if dir.Len() >= c.cfg.MinDistance {
		c.pivotDist = math.Min(dir.Len(), c.cfg.MaxDistance)
	}
	if dir.Len() > 0 {
		c.faceDirection(dir)
	}

	c.home = c.pose
	c.homeDist = c.pivotDist
	c.orbit = nil
	c.look = nil
}

// Pose returns the current camera pose.
func (c *Controller) Pose() Pose {
	return c.pose
}

// PointerDown starts a drag session for the given button. The orbit pivot
// is recomputed from the current pose on every press, never reused from a
// previous drag.
func (c *Controller) PointerDown(ev PointerEvent) {
	switch ev.Button {
	case ButtonPrimary:
		pivot := c.pose.Position.Add(c.pose.Forward().Scale(c.pivotDist))
		offset := c.pose.Position.Sub(pivot)
		r := offset.Len()
		if r < c.cfg.MinDistance {
			r = c.cfg.MinDistance
		}
		c.orbit = &orbitSession{
			startX:     ev.X,
			startY:     ev.Y,
			pivot:      pivot,
			radius:     r,
			startPhi:   math.Atan2(offset.X, offset.Z),
			startTheta: math.Acos(clamp(offset.Y/r, -1, 1)),
		}
	case ButtonSecondary:
		c.look = &lookSession{
			startX:     ev.X,
			startY:     ev.Y,
			startYaw:   c.pose.Yaw,
			startPitch: c.pose.Pitch,
		}
	}
}

// PointerUp ends the drag session for the given button; the pose stays
// where the drag left it.
func (c *Controller) PointerUp(ev PointerEvent) {
	switch ev.Button {
	case ButtonPrimary:
		c.orbit = nil
	case ButtonSecondary:
		c.look = nil
	}
}

// PointerMove advances whichever drag sessions are active. Orbiting slides
// the camera over a sphere around the pivot and re-aims at it; free-look
// rotates in place.
func (c *Controller) PointerMove(ev PointerEvent) {
	if s := c.orbit; s != nil {
		phi := s.startPhi - (ev.X-s.startX)/c.cfg.RotateSensitivity
		theta := clamp(
			s.startTheta-(ev.Y-s.startY)/c.cfg.RotateSensitivity,
			poleEps, math.Pi-poleEps,
		)
		c.pose.Position = s.pivot.Add(sphericalToCartesian(s.radius, phi, theta))
		c.faceDirection(s.pivot.Sub(c.pose.Position))
	}
	if s := c.look; s != nil {
		c.pose.Yaw = s.startYaw - (ev.X-s.startX)/c.cfg.RotateSensitivity
		c.pose.Pitch = clamp(
			s.startPitch-(ev.Y-s.startY)/c.cfg.RotateSensitivity,
			c.cfg.MinPitch, c.cfg.MaxPitch,
		)
	}
}

// Wheel applies scroll input according to the configured zoom policy.
// Overshoot is clamped, never an error.
func (c *Controller) Wheel(ev WheelEvent) {
	switch c.cfg.ZoomPolicy {
	case ZoomDolly:
		forward := c.pose.Forward()
		pivot := c.pose.Position.Add(forward.Scale(c.pivotDist))
		c.pivotDist = clamp(
			c.pivotDist-ev.Delta*c.cfg.ZoomSpeed,
			c.cfg.MinDistance, c.cfg.MaxDistance,
		)
		c.pose.Position = pivot.Add(forward.Scale(-c.pivotDist))
	default:
		c.pose.FOV = clamp(
			c.pose.FOV-ev.Delta*c.cfg.ZoomSpeed,
			c.cfg.MinFOV, c.cfg.MaxFOV,
		)
	}
}

// HandleKey translates the camera along forward, right or world-up, or
// restores the home pose for KeyHome.
func (c *Controller) HandleKey(k Key) {
	step := c.cfg.KeyMoveSpeed
	switch k {
	case KeyForward, KeyBack:
		dir := c.pose.Forward()
		if c.cfg.LevelForward {
			dir = math3d.V3(dir.X, 0, dir.Z).Normalize()
		}
		if k == KeyBack {
			step = -step
		}
		c.pose.Position = c.pose.Position.Add(dir.Scale(step))
	case KeyLeft, KeyRight:
		right := c.pose.Forward().Cross(math3d.Up()).Normalize()
		if k == KeyLeft {
			step = -step
		}
		c.pose.Position = c.pose.Position.Add(right.Scale(step))
	case KeyUp, KeyDown:
		if k == KeyDown {
			step = -step
		}
		c.pose.Position = c.pose.Position.Add(math3d.Up().Scale(step))
	case KeyHome:
		c.pose = c.home
		c.pivotDist = c.homeDist
		c.orbit = nil
		c.look = nil
	}
}

// faceDirection sets yaw and pitch so the look direction matches dir.
func (c *Controller) faceDirection(dir math3d.Vec3) {
	d := dir.Normalize()
	c.pose.Pitch = math.Asin(clamp(d.Y, -1, 1))
	c.pose.Yaw = math.Atan2(-d.X, -d.Z)
}

// sphericalToCartesian converts a pivot-relative spherical offset to a
// displacement. theta is the polar angle from world up, phi the azimuth.
func sphericalToCartesian(r, phi, theta float64) math3d.Vec3 {
	sinT := math.Sin(theta)
	return math3d.V3(
		r*sinT*math.Sin(phi),
		r*math.Cos(theta),
		r*sinT*math.Cos(phi),
	)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

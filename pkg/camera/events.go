package camera

// Button identifies a pointer button in platform-independent terms. The
// primary button orbits, the secondary button free-looks.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
)

// PointerEvent is an abstract pointer event: coordinates in whatever unit
// the host surface uses (the controller only consumes deltas scaled by its
// sensitivity) and the button involved. Button is meaningless for move
// events.
type PointerEvent struct {
	X, Y   float64
	Button Button
}

// WheelEvent is an abstract scroll event. Positive deltas zoom in.
type WheelEvent struct {
	Delta float64
}

// Key identifies a camera movement command, already translated from
// whatever physical key the host surface bound it to.
type Key int

const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
)

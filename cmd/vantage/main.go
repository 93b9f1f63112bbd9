// vantage - Procedural Geometry Viewer
// Generates primitive and swept solids and explores them in your terminal.
//
// Controls:
//
//	Left drag   - Orbit around the view pivot
//	Right drag  - Free-look (yaw/pitch, position fixed)
//	Scroll      - Zoom (FOV by default, dolly with -zoom dolly)
//	W/S         - Move forward/back
//	A/D         - Move left/right
//	R/F         - Move up/down
//	Home or 0   - Reset view
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/vantage/pkg/camera"
	"github.com/taigrr/vantage/pkg/export"
	"github.com/taigrr/vantage/pkg/geometry"
	"github.com/taigrr/vantage/pkg/math3d"
	"github.com/taigrr/vantage/pkg/plot"
	"github.com/taigrr/vantage/pkg/render"
)

var (
	shapeName  = flag.String("shape", "sphere", "Shape to generate (box, sphere, cylinder, arrow, bicone, surface, helix)")
	zoomPolicy = flag.String("zoom", "fov", "Scroll zoom policy (fov or dolly)")
	exportPath = flag.String("export", "", "Write the generated mesh as a .glb file and exit")
	targetFPS  = flag.Int("fps", 60, "Target FPS")
	bgColor    = flag.String("bg", "20,20,30", "Background color (R,G,B)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vantage - Procedural Geometry Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vantage [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Left drag   - Orbit\n")
		fmt.Fprintf(os.Stderr, "  Right drag  - Free-look\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Move\n")
		fmt.Fprintf(os.Stderr, "  R/F         - Up/down\n")
		fmt.Fprintf(os.Stderr, "  Home or 0   - Reset view\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// makeShape builds the requested demo mesh.
func makeShape(name string) (*geometry.Mesh, error) {
	switch name {
	case "box":
		return geometry.Box(math3d.Origin(), 3, 2, 1.5)
	case "sphere":
		return geometry.Sphere(math3d.Origin(), 2, 24, 16)
	case "cylinder":
		return geometry.Cylinder(1, 4, 24, 4)
	case "arrow":
		return geometry.Arrow(0.3, 3, 0.7, 1, 16)
	case "bicone":
		return geometry.BiCone(1.5, 4, 20)
	case "surface":
		return makeSurface()
	case "helix":
		return geometry.ParametricTube(func(t float64) math3d.Point3 {
			return math3d.P3(2*math.Cos(t), 2*math.Sin(t), t/3)
		}, 0, 6*math.Pi, 120, 0.3, 12)
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// makeSurface samples a radial ripple into a heightfield.
func makeSurface() (*geometry.Mesh, error) {
	const n = 32
	heights := make([][]float64, n)
	for i := range heights {
		heights[i] = make([]float64, n)
		for j := range heights[i] {
			x := float64(j)/(n-1)*8 - 4
			y := float64(i)/(n-1)*8 - 4
			r := math.Sqrt(x*x + y*y)
			heights[i][j] = math.Cos(r*2) / (1 + r)
		}
	}
	return geometry.Heightfield(heights, 0.25, 0.25, 2)
}

func run() error {
	mesh, err := makeShape(*shapeName)
	if err != nil {
		return err
	}

	if *exportPath != "" {
		if err := export.SaveGLB(*exportPath, *shapeName, mesh); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d vertices, %d triangles)\n", *exportPath, mesh.VertexCount(), mesh.TriangleCount())
		return nil
	}

	// Parse background color
	var bgR, bgG, bgB uint8 = 20, 20, 30
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	cfg := camera.DefaultConfig()
	switch *zoomPolicy {
	case "fov":
		cfg.ZoomPolicy = camera.ZoomFOV
	case "dolly":
		cfg.ZoomPolicy = camera.ZoomDolly
		cfg.ZoomSpeed = 0.5
	default:
		return fmt.Errorf("unknown zoom policy %q (use fov or dolly)", *zoomPolicy)
	}

	// Frame the mesh: look at its center from a distance scaled to its size.
	minB, maxB := mesh.Bounds()
	size := maxB.Sub(minB)
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))
	if maxDim == 0 {
		maxDim = 1
	}
	center := mesh.Center()
	dist := maxDim * 2.5

	ctrl := camera.NewController(cfg)
	ctrl.Init(center.Add(math3d.V3(dist*0.5, dist*0.4, dist)), center)

	// Grid stepping from nice tick values around the mesh footprint.
	gridTicks := plot.CalculateTicks(-maxDim*1.5, maxDim*1.5, 9)

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	presenter := render.NewPresenter(term, width, height)
	fbWidth, fbHeight := presenter.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	wf := render.NewWireframe(fb)
	view := render.NewView(float64(fbWidth) / float64(fbHeight))

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Wheel input feeds a spring-decayed velocity so zoom eases out
	// instead of stepping.
	zoomSpring := harmonica.NewSpring(harmonica.FPS(*targetFPS), 4.0, 1.0)
	var zoomVel, zoomAccel float64

	events := make(chan uv.Event, 64)

	// Event handler: translate terminal events into abstract camera input.
	go func() {
		for ev := range term.Events() {
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	targetDuration := time.Second / time.Duration(*targetFPS)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()

		// Drain pending input
	drain:
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case uv.WindowSizeEvent:
					width, height = ev.Width, ev.Height
					term.Erase()
					term.Resize(width, height)
					presenter = render.NewPresenter(term, width, height)
					fbWidth, fbHeight = presenter.FramebufferSize()
					fb = render.NewFramebuffer(fbWidth, fbHeight)
					wf = render.NewWireframe(fb)
					view.AspectRatio = float64(fbWidth) / float64(fbHeight)

				case uv.KeyPressEvent:
					switch {
					case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
						cancel()
					case ev.MatchString("w", "up"):
						ctrl.HandleKey(camera.KeyForward)
					case ev.MatchString("s", "down"):
						ctrl.HandleKey(camera.KeyBack)
					case ev.MatchString("a", "left"):
						ctrl.HandleKey(camera.KeyLeft)
					case ev.MatchString("d", "right"):
						ctrl.HandleKey(camera.KeyRight)
					case ev.MatchString("r"):
						ctrl.HandleKey(camera.KeyUp)
					case ev.MatchString("f"):
						ctrl.HandleKey(camera.KeyDown)
					case ev.MatchString("home", "0"):
						ctrl.HandleKey(camera.KeyHome)
					}

				case uv.MouseClickEvent:
					ctrl.PointerDown(camera.PointerEvent{
						X:      float64(ev.X),
						Y:      float64(ev.Y),
						Button: mouseButton(ev.Button),
					})

				case uv.MouseReleaseEvent:
					ctrl.PointerUp(camera.PointerEvent{
						X:      float64(ev.X),
						Y:      float64(ev.Y),
						Button: mouseButton(ev.Button),
					})

				case uv.MouseMotionEvent:
					ctrl.PointerMove(camera.PointerEvent{
						X: float64(ev.X),
						Y: float64(ev.Y),
					})

				case uv.MouseWheelEvent:
					switch ev.Button {
					case uv.MouseWheelUp:
						zoomVel += 1
					case uv.MouseWheelDown:
						zoomVel -= 1
					}
				}
			default:
				break drain
			}
		}

		// Ease the accumulated wheel velocity toward zero.
		if math.Abs(zoomVel) > 1e-4 {
			ctrl.Wheel(camera.WheelEvent{Delta: zoomVel})
		}
		zoomVel, zoomAccel = zoomSpring.Update(zoomVel, zoomAccel, 0)

		// Render
		fb.Clear(render.RGB(bgR, bgG, bgB))
		view.Pose = ctrl.Pose()
		wf.SetView(view)

		wf.DrawGrid(gridTicks, render.RGB(60, 60, 80))
		wf.DrawAxes(maxDim)
		wf.DrawMesh(mesh, math3d.Identity(), render.RGB(0, 255, 128))

		if err := presenter.Present(fb); err != nil {
			cleanup()
			return fmt.Errorf("present: %w", err)
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// mouseButton maps terminal mouse buttons onto abstract camera buttons.
// Anything that is not the right button orbits.
func mouseButton(b uv.MouseButton) camera.Button {
	if b == uv.MouseRight {
		return camera.ButtonSecondary
	}
	return camera.ButtonPrimary
}

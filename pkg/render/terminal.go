package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the framebuffer to terminal cells on scr. Each terminal row
// covers two framebuffer rows via ▀ with fg=top color and bg=bottom color.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := row * 2
		botY := topY + 1

		for col := area.Min.X; col < area.Max.X && col < fb.Width; col++ {
			topColor := fb.GetPixel(col, topY)
			botColor := fb.GetPixel(col, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: rgbaToColor(topColor),
					Bg: rgbaToColor(botColor),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// Presenter flushes framebuffers to an ultraviolet terminal.
type Presenter struct {
	term *uv.Terminal
	cols int
	rows int
}

// NewPresenter wraps a terminal of the given cell dimensions.
func NewPresenter(term *uv.Terminal, cols, rows int) *Presenter {
	return &Presenter{term: term, cols: cols, rows: rows}
}

// FramebufferSize returns the pixel dimensions a framebuffer needs to fill
// the wrapped terminal.
func (p *Presenter) FramebufferSize() (width, height int) {
	return p.cols, p.rows * 2
}

// Present draws the framebuffer onto the terminal and flushes it.
func (p *Presenter) Present(fb *Framebuffer) error {
	fb.Draw(p.term, uv.Rect(0, 0, p.cols, p.rows))
	return p.term.Display()
}

// rgbaToColor converts color.RGBA to Go's color.Color interface.
func rgbaToColor(c color.RGBA) color.Color {
	if c.A == 0 {
		return nil // Transparent = no color
	}
	return c
}

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// Colors for convenience
var (
	ColorWhite = color.RGBA{255, 255, 255, 255}
	ColorRed   = color.RGBA{255, 0, 0, 255}
	ColorGreen = color.RGBA{0, 255, 0, 255}
	ColorBlue  = color.RGBA{0, 0, 255, 255}
	ColorGray  = color.RGBA{128, 128, 128, 255}
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

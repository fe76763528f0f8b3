package tui

import (
	"github.com/vovakirdan/bounce/internal/core"
)

// Runes used for filled shapes.
const (
	ovalRune     = '●'
	triangleRune = '▲'
)

// TermCanvas is a core.Canvas that scales world units onto a cell Screen.
//
// The engine sees a fixed world size (the configured arena). Until the
// terminal reports its size the canvas reports 0x0, which makes the engine
// fall back to default placements.
type TermCanvas struct {
	screen *core.Screen
	worldW int
	worldH int
}

// NewTermCanvas creates an unsized canvas for a worldW x worldH arena.
func NewTermCanvas(worldW, worldH int) *TermCanvas {
	return &TermCanvas{
		screen: core.NewScreen(0, 0),
		worldW: worldW,
		worldH: worldH,
	}
}

// SetCells resizes the backing screen to cols x rows cells.
func (c *TermCanvas) SetCells(cols, rows int) {
	c.screen.Resize(cols, rows)
}

// Screen returns the backing cell buffer.
func (c *TermCanvas) Screen() *core.Screen {
	return c.screen
}

// Size returns the world size, or 0x0 before the first layout.
func (c *TermCanvas) Size() (int, int) {
	if c.screen.Width() == 0 || c.screen.Height() == 0 {
		return 0, 0
	}
	return c.worldW, c.worldH
}

// Clear paints the whole screen with bg.
func (c *TermCanvas) Clear(bg core.Color) {
	c.screen.Fill(core.Cell{Rune: ' ', Bg: bg})
}

// FillRect paints the cells covered by r with background c.
func (c *TermCanvas) FillRect(r core.Rect, col core.Color) {
	c.screen.FillRect(c.cellRect(r), col)
}

// FillOval draws the cells whose centers fall inside the ellipse inscribed in r.
func (c *TermCanvas) FillOval(r core.Rect, col core.Color) {
	x0, y0, x1, y1 := c.cellBounds(r)
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2

	c.plot(r, col, ovalRune, func(px, py float64) bool {
		dx, dy := (px-cx)/rx, (py-cy)/ry
		return dx*dx+dy*dy <= 1
	})
}

// FillTriangle draws an upward triangle inscribed in r.
func (c *TermCanvas) FillTriangle(r core.Rect, col core.Color) {
	x0, y0, x1, y1 := c.cellBounds(r)
	cx := (x0 + x1) / 2

	c.plot(r, col, triangleRune, func(px, py float64) bool {
		t := (py - y0) / (y1 - y0) // 0 at the apex, 1 at the base
		half := t * (x1 - x0) / 2
		return px >= cx-half && px <= cx+half
	})
}

// DrawGlyph draws a single bold rune at the center of r.
func (c *TermCanvas) DrawGlyph(r core.Rect, glyph rune, col core.Color) {
	x, y := c.cellRect(r).Center()
	c.screen.DrawText(x, y, string(glyph), col, true)
}

// DrawText draws text whose anchor is the world point (x, y).
// The text is kept on screen horizontally.
func (c *TermCanvas) DrawText(x, y int, text string, style core.TextStyle) {
	if c.screen.Width() == 0 {
		return
	}
	col := c.toCol(x)
	row := c.toRow(y)
	n := len([]rune(text))

	switch style.Align {
	case core.AlignCenter:
		col -= n / 2
	case core.AlignRight:
		col -= n
	}
	col = core.Clamp(col, 0, core.Max(c.screen.Width()-n, 0))
	row = core.Clamp(row, 0, core.Max(c.screen.Height()-1, 0))

	c.screen.DrawText(col, row, text, style.Color, style.Size != core.TextSmall)
}

// plot marks every cell of r whose center satisfies inside. When r is too
// small for any center to qualify, its center cell is marked instead.
func (c *TermCanvas) plot(r core.Rect, col core.Color, glyph rune, inside func(px, py float64) bool) {
	cells := c.cellRect(r)
	drawn := false
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			if inside(float64(x)+0.5, float64(y)+0.5) {
				c.screen.SetRune(x, y, glyph, col)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := cells.Center()
		c.screen.SetRune(x, y, glyph, col)
	}
}

// cellBounds returns r in fractional cell coordinates.
func (c *TermCanvas) cellBounds(r core.Rect) (x0, y0, x1, y1 float64) {
	sx := float64(c.screen.Width()) / float64(c.worldW)
	sy := float64(c.screen.Height()) / float64(c.worldH)
	return float64(r.X) * sx, float64(r.Y) * sy, float64(r.Right()) * sx, float64(r.Bottom()) * sy
}

// cellRect returns the cells r touches. Every non-empty rect covers at least
// one cell so small entities stay visible.
func (c *TermCanvas) cellRect(r core.Rect) core.Rect {
	x0 := c.toCol(r.X)
	y0 := c.toRow(r.Y)
	x1 := ceilDiv(r.Right()*c.screen.Width(), c.worldW)
	y1 := ceilDiv(r.Bottom()*c.screen.Height(), c.worldH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func (c *TermCanvas) toCol(x int) int {
	if c.worldW <= 0 {
		return 0
	}
	return floorDiv(x*c.screen.Width(), c.worldW)
}

func (c *TermCanvas) toRow(y int) int {
	if c.worldH <= 0 {
		return 0
	}
	return floorDiv(y*c.screen.Height(), c.worldH)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

package bounce

import (
	"fmt"

	"github.com/vovakirdan/bounce/internal/core"
)

// Overlay texts.
const (
	TextStart    = "Press Enter to Start"
	TextPaused   = "Paused"
	TextGameOver = "Game Over"
)

// HUD anchors in world units.
const (
	hudMargin = 10
	hudY      = 20
)

// Draw emits the current frame to c. It reads state only.
func (e *Engine) Draw(c core.Canvas) {
	w, h := c.Size()

	c.Clear(core.ColorField)

	c.FillOval(e.ball.Rect(), core.ColorRed)
	c.FillRect(e.paddle.Rect(), core.ColorBlue)

	c.FillRect(e.bonus, BonusColor(e.score))

	c.FillRect(e.spike, core.ColorBlack)
	c.FillTriangle(e.spike, core.ColorRed)
	c.DrawGlyph(e.spike, '!', core.ColorWhite)

	for _, o := range e.obstacles {
		c.FillRect(o, core.ColorBlack)
	}

	hud := core.TextStyle{Color: core.ColorBlack, Size: core.TextNormal}
	c.DrawText(hudMargin, hudY, fmt.Sprintf("Score: %d", e.score), hud)
	hud.Align = core.AlignRight
	c.DrawText(w-hudMargin, hudY, fmt.Sprintf("Level: %d", e.level), hud)

	cx, cy := w/2, h/2
	switch e.phase {
	case PhaseOver:
		c.DrawText(cx, cy-h/10, TextGameOver, core.TextStyle{
			Color: core.ColorBlack, Size: core.TextLarge, Align: core.AlignCenter,
		})
		fallthrough
	case PhaseIdle:
		c.DrawText(cx, cy, TextStart, core.TextStyle{
			Color: core.ColorRed, Size: core.TextLarge, Align: core.AlignCenter,
		})
	case PhasePaused:
		c.DrawText(cx, cy, TextPaused, core.TextStyle{
			Color: core.ColorOrange, Size: core.TextLarge, Align: core.AlignCenter,
		})
	}
}

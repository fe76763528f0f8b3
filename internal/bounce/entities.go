package bounce

import "github.com/vovakirdan/bounce/internal/core"

// Ball is the bouncing ball. Position is the top-left corner of its bounding box.
type Ball struct {
	X, Y   int
	Size   int
	DX, DY int // Units per tick
}

// Rect returns the ball's bounding box.
func (b Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Paddle is the player-controlled bar. Y never changes.
type Paddle struct {
	X, Y int
	W, H int
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Phase is the game state machine's current state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// BonusPalette is the bonus color cycle, indexed by (score/10) % len.
var BonusPalette = []core.Color{
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorCyan,
	core.ColorPink,
}

// BonusColor returns the bonus color for a score.
func BonusColor(score int) core.Color {
	return BonusPalette[(score/10)%len(BonusPalette)]
}

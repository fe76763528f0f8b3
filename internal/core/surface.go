package core

// Sizer reports the current arena size in world units.
// A surface that has not been laid out yet reports 0x0.
type Sizer interface {
	Size() (width, height int)
}

// Align controls horizontal placement of text relative to its anchor x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextSize is a hint for how prominent a piece of text is.
type TextSize int

const (
	TextSmall TextSize = iota
	TextNormal
	TextLarge
)

// TextStyle describes how a text draw command should look.
type TextStyle struct {
	Color Color
	Size  TextSize
	Align Align
}

// Canvas is the drawing surface the engine emits draw commands to.
// Coordinates are world units; the canvas owns scaling and styling.
type Canvas interface {
	Sizer
	Clear(bg Color)
	FillRect(r Rect, c Color)
	FillOval(r Rect, c Color)
	FillTriangle(r Rect, c Color) // Upward triangle inscribed in r
	DrawGlyph(r Rect, glyph rune, c Color)
	DrawText(x, y int, text string, style TextStyle)
}

// Sound identifies the cause of a sound trigger.
type Sound int

const (
	SoundBounce Sound = iota
	SoundBonus
	SoundSpike
	SoundObstacle
)

// AllSounds lists every sound trigger in declaration order.
var AllSounds = []Sound{SoundBounce, SoundBonus, SoundSpike, SoundObstacle}

// String returns the sound's asset name.
func (s Sound) String() string {
	switch s {
	case SoundBounce:
		return "bounce"
	case SoundBonus:
		return "bonus"
	case SoundSpike:
		return "spike"
	case SoundObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// SoundSink receives fire-and-forget sound triggers.
// Implementations restart a clip from the beginning if it is already playing.
type SoundSink interface {
	Play(s Sound)
}

// NopSound is a SoundSink that ignores every trigger.
type NopSound struct{}

// Play does nothing.
func (NopSound) Play(Sound) {}

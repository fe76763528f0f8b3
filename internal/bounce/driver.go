package bounce

import (
	"time"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
)

// Driver wires the engine to the platform's capability interfaces.
// Frame must be called from a single goroutine.
type Driver struct {
	Engine *Engine
	Input  core.InputSource
	Canvas core.Canvas
	Sound  core.SoundSink
}

// NewDriver creates an engine that reads its arena size from canvas and
// sends sound triggers to sound, and returns a driver around it.
func NewDriver(cfg config.BounceConfig, in core.InputSource, canvas core.Canvas, sound core.SoundSink, seed int64) *Driver {
	if sound == nil {
		sound = core.NopSound{}
	}
	return &Driver{
		Engine: NewEngine(cfg, canvas, sound, seed),
		Input:  in,
		Canvas: canvas,
		Sound:  sound,
	}
}

// Frame applies pending key presses, advances time by dt and draws.
func (d *Driver) Frame(dt time.Duration) {
	d.PollInput()
	d.Engine.Advance(dt)
	d.Engine.Draw(d.Canvas)
}

// PollInput applies pending key presses in arrival order.
func (d *Driver) PollInput() {
	if d.Input == nil {
		return
	}
	for _, k := range d.Input.Drain() {
		d.Engine.HandleKey(k)
	}
}

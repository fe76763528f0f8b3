// Package bounce implements the bouncing ball game engine.
//
// The engine owns all simulation state: ball, paddle, obstacles, bonus,
// spike, score, level and the phase of the state machine. It never touches
// the terminal or the audio device directly. The arena size is read from a
// core.Sizer, sound triggers go to a core.SoundSink, and Draw emits commands
// to a core.Canvas.
//
// Time is logical. Two timers (the fast simulation tick and the slow
// reshuffle) are advanced by Advance, so tests can drive the engine tick by
// tick without sleeping.
package bounce

import (
	"time"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
)

// Engine is the single owner of the game state. It is not safe for
// concurrent use; the driver calls it from one goroutine.
type Engine struct {
	cfg     config.BounceConfig
	rules   config.Rules
	surface core.Sizer
	sound   core.SoundSink
	spawner *Spawner

	ball      Ball
	paddle    Paddle
	obstacles []core.Rect
	bonus     core.Rect
	spike     core.Rect

	phase Phase
	score int
	level int
	ticks uint64

	tickTimer      Timer
	reshuffleTimer Timer
}

// NewEngine creates an engine in the Idle phase with an initial layout.
// A nil sound sink is replaced by core.NopSound.
func NewEngine(cfg config.BounceConfig, surface core.Sizer, sound core.SoundSink, seed int64) *Engine {
	if sound == nil {
		sound = core.NopSound{}
	}
	e := &Engine{
		cfg:            cfg,
		rules:          cfg.Rules,
		surface:        surface,
		sound:          sound,
		spawner:        NewSpawner(cfg, seed),
		tickTimer:      NewTimer(cfg.Timing.TickPeriod()),
		reshuffleTimer: NewTimer(cfg.Timing.ReshufflePeriod()),
	}
	e.resetWorld()
	return e
}

// Reset starts a new game: ball and paddle return to their start positions,
// score and level reset, entities are respawned (obstacles, then bonus, then
// spike) and both timers start.
func (e *Engine) Reset() {
	e.resetWorld()
	e.tickTimer.Start()
	e.reshuffleTimer.Start()
	e.phase = PhaseRunning
}

func (e *Engine) resetWorld() {
	e.ball = Ball{
		X:    e.cfg.Ball.StartX,
		Y:    e.cfg.Ball.StartY,
		Size: e.cfg.Ball.Size,
		DX:   e.cfg.Ball.SpeedX,
		DY:   e.cfg.Ball.SpeedY,
	}
	e.paddle = Paddle{
		X: e.cfg.Paddle.StartX,
		Y: e.cfg.Paddle.Y,
		W: e.cfg.Paddle.Width,
		H: e.cfg.Paddle.Height,
	}
	e.score = 0
	e.level = 1
	e.ticks = 0

	w, h := e.surface.Size()
	e.obstacles = e.spawner.SpawnObstacles(w, h, nil, nil)
	e.bonus = e.spawner.SpawnBonus(w, h, e.obstacles, nil)
	e.spike = e.spawner.SpawnSpike(w, h, e.ballStart(), e.obstacles, &e.bonus)
}

func (e *Engine) ballStart() core.Rect {
	return core.NewRect(e.cfg.Ball.StartX, e.cfg.Ball.StartY, e.cfg.Ball.Size, e.cfg.Ball.Size)
}

// HandleKey applies one key press to the state machine.
func (e *Engine) HandleKey(k core.Key) {
	switch k {
	case core.KeyEnter:
		if e.phase == PhaseIdle || e.phase == PhaseOver {
			e.Reset()
		}
	case core.KeyP, core.KeySpace:
		switch e.phase {
		case PhaseRunning:
			e.phase = PhasePaused
		case PhasePaused:
			e.phase = PhaseRunning
		}
	case core.KeyLeft:
		e.movePaddle(-e.cfg.Paddle.Step)
	case core.KeyRight:
		e.movePaddle(e.cfg.Paddle.Step)
	}
}

func (e *Engine) movePaddle(dx int) {
	if e.phase != PhaseRunning {
		return
	}
	w, _ := e.surface.Size()
	e.paddle.X = core.Max(0, core.Min(e.paddle.X+dx, w-e.paddle.W))
}

// Advance feeds dt of wall-clock time to both timers, firing every tick and
// reshuffle that falls inside it in chronological order. When both fire at
// the same instant the tick runs first.
func (e *Engine) Advance(dt time.Duration) {
	for dt > 0 {
		step := dt
		if e.tickTimer.Running() {
			step = min(step, e.tickTimer.Remaining())
		}
		if e.reshuffleTimer.Running() {
			step = min(step, e.reshuffleTimer.Remaining())
		}
		if !e.tickTimer.Running() && !e.reshuffleTimer.Running() {
			return
		}

		fireTick := e.tickTimer.advance(step)
		fireReshuffle := e.reshuffleTimer.advance(step)
		if fireTick {
			e.Step()
		}
		// A tick that ends the game stops the reshuffle timer too.
		if fireReshuffle && e.reshuffleTimer.Running() {
			e.Reshuffle()
		}
		dt -= step
	}
}

// Step runs one simulation tick. It does nothing unless the game is running.
func (e *Engine) Step() {
	if e.phase != PhaseRunning {
		return
	}
	e.ticks++

	w, h := e.surface.Size()
	b := &e.ball

	b.X += b.DX
	b.Y += b.DY

	// Side walls
	if b.X <= 0 || b.X+b.Size >= w {
		b.DX = -b.DX
		if w > b.Size {
			if b.X < 0 {
				b.X = -b.X
			} else if b.X+b.Size > w {
				b.X = 2*(w-b.Size) - b.X
			}
		}
		e.emit(core.SoundBounce)
	}

	// Top wall
	if b.Y <= 0 {
		b.DY = -b.DY
		if b.Y < 0 {
			b.Y = -b.Y
		}
		e.emit(core.SoundBounce)
	}

	// Paddle
	p := e.paddle
	if b.Y+b.Size >= p.Y && b.X+b.Size >= p.X && b.X <= p.X+p.W {
		b.DY = -b.DY
		e.emit(core.SoundBounce)
		if e.rules.ScoreOnPaddle {
			if e.award(1, config.LevelOnPaddle) {
				b.DX += core.Sign(b.DX)
				b.DY += core.Sign(b.DY)
			}
		}
	}

	br := b.Rect()

	// Obstacles, first hit wins
	for _, o := range e.obstacles {
		if br.Intersects(o) {
			b.DY = -b.DY
			e.emit(core.SoundObstacle)
			break
		}
	}

	// Bonus
	if br.Intersects(e.bonus) {
		e.award(e.cfg.Bonus.Points, config.LevelOnBonus)
		e.emit(core.SoundBonus)
		e.bonus = e.spawner.SpawnBonus(w, h, e.obstacles, &e.spike)
	}

	// Spike
	if br.Intersects(e.spike) {
		e.emit(core.SoundSpike)
		e.gameOver()
	}

	// Floor
	if b.Y+b.Size >= h {
		e.gameOver()
	}
}

// award adds points and reports whether this event raised the level.
func (e *Engine) award(points int, trigger config.LevelTrigger) bool {
	e.score += points
	if e.rules.LevelTrigger != trigger || e.score%e.rules.LevelThreshold != 0 {
		return false
	}
	e.level++
	return true
}

// Reshuffle moves the obstacles and the bonus. The spike stays put.
func (e *Engine) Reshuffle() {
	w, h := e.surface.Size()
	e.obstacles = e.spawner.SpawnObstacles(w, h, &e.spike, &e.bonus)
	e.bonus = e.spawner.SpawnBonus(w, h, e.obstacles, &e.spike)
}

func (e *Engine) gameOver() {
	e.phase = PhaseOver
	e.tickTimer.Stop()
	e.reshuffleTimer.Stop()
}

// emit sends a sound trigger, collapsing every cause to a bounce when the
// rules use a single sound.
func (e *Engine) emit(s core.Sound) {
	if e.rules.Sounds == config.SoundsUnified {
		s = core.SoundBounce
	}
	e.sound.Play(s)
}

// Phase returns the current state machine phase.
func (e *Engine) Phase() Phase { return e.phase }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Ticks returns the number of simulation ticks since the last reset.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Ball returns a copy of the ball.
func (e *Engine) Ball() Ball { return e.ball }

// Paddle returns a copy of the paddle.
func (e *Engine) Paddle() Paddle { return e.paddle }

// Obstacles returns a copy of the current obstacle batch.
func (e *Engine) Obstacles() []core.Rect {
	return append([]core.Rect(nil), e.obstacles...)
}

// Bonus returns the bonus rectangle.
func (e *Engine) Bonus() core.Rect { return e.bonus }

// Spike returns the spike rectangle.
func (e *Engine) Spike() core.Rect { return e.spike }

// Rules returns the active rule set.
func (e *Engine) Rules() config.Rules { return e.rules }

// TimersRunning reports whether the tick and reshuffle timers are started.
func (e *Engine) TimersRunning() (tick, reshuffle bool) {
	return e.tickTimer.Running(), e.reshuffleTimer.Running()
}

// State returns the platform-facing summary of the game.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:    e.score,
		Level:    e.level,
		Running:  e.phase == PhaseRunning || e.phase == PhasePaused,
		GameOver: e.phase == PhaseOver,
		Paused:   e.phase == PhasePaused,
	}
}

package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bounce/internal/bounce"
	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
)

// Options configures a game session.
type Options struct {
	Game    config.BounceConfig
	Runtime core.RuntimeConfig
	Variant string
	Sound   core.SoundSink
	Logger  *log.Logger
}

// Model is the Bubble Tea model for a game session.
type Model struct {
	driver  *bounce.Driver
	canvas  *TermCanvas
	keys    *core.KeyBuffer
	mapper  *KeyMapper
	help    help.Model
	logger  *log.Logger
	runtime core.RuntimeConfig
	variant string

	lastFrame time.Time
	lastPhase bounce.Phase
	quitting  bool
}

// NewModel creates a new Bubble Tea model for a game session.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	canvas := NewTermCanvas(opts.Game.Arena.Width, opts.Game.Arena.Height)
	keys := core.NewKeyBuffer()
	driver := bounce.NewDriver(opts.Game, keys, canvas, opts.Sound, opts.Runtime.Seed)

	h := help.New()
	h.ShowAll = false

	m := Model{
		driver:  driver,
		canvas:  canvas,
		keys:    keys,
		mapper:  NewKeyMapper(),
		help:    h,
		logger:  opts.Logger,
		runtime: opts.Runtime,
		variant: opts.Variant,
	}
	m.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	m.lastPhase = driver.Engine.Phase()

	m.logger.Info("session started", "variant", opts.Variant, "seed", opts.Runtime.Seed,
		"arena", fmt.Sprintf("%dx%d", opts.Game.Arena.Width, opts.Game.Arena.Height))
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey queues engine keys; they are applied on the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, quit := m.mapper.MapKey(msg)
	if quit {
		m.quitting = true
		st := m.driver.Engine.State()
		m.logger.Info("session ended", "score", st.Score, "level", st.Level, "game_over", st.GameOver)
		return m, tea.Quit
	}
	m.keys.Push(k)
	return m, nil
}

// handleFrame drains input, advances the engine and redraws.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastFrame, now)
	m.lastFrame = now

	m.driver.Frame(dt)
	m.observe()

	return m, frameCmd(m.runtime.TickRate)
}

// observe logs phase transitions.
func (m *Model) observe() {
	eng := m.driver.Engine
	phase := eng.Phase()
	if phase == m.lastPhase {
		return
	}

	switch phase {
	case bounce.PhaseOver:
		m.logger.Info("game over", "score", eng.Score(), "level", eng.Level(), "ticks", eng.Ticks())
	default:
		m.logger.Debug("phase", "from", m.lastPhase, "to", phase)
	}
	m.lastPhase = phase
}

// resize gives the canvas every row except the one used by the help line.
func (m *Model) resize(width, height int) {
	m.runtime.ScreenW = width
	m.runtime.ScreenH = height
	m.help.Width = width
	m.canvas.SetCells(width, core.Max(height-1, 0))
	m.driver.Engine.Draw(m.canvas)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.canvas.Screen()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.mapper.Keys))
	return b.String()
}

// Engine exposes the session's engine.
func (m Model) Engine() *bounce.Engine {
	return m.driver.Engine
}

// Run starts the Bubble Tea program for one game session.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

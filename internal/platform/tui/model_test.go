package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce/internal/bounce"
	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/core"
)

func newTestModel(w, h int) Model {
	return NewModel(Options{
		Game:    config.DefaultBounceConfig(),
		Runtime: core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 42},
		Variant: "classic",
	})
}

func TestModelStartsOnEnter(t *testing.T) {
	m := newTestModel(40, 21)
	if m.Engine().Phase() != bounce.PhaseIdle {
		t.Fatalf("Phase() = %v, expected Idle", m.Engine().Phase())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	// Keys are applied on the next frame
	if m.Engine().Phase() != bounce.PhaseIdle {
		t.Error("key should not be applied before a frame")
	}

	next, cmd := m.Update(FrameMsg(time.Now()))
	m = next.(Model)
	if m.Engine().Phase() != bounce.PhaseRunning {
		t.Errorf("Phase() = %v, expected Running after frame", m.Engine().Phase())
	}
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}
}

func TestModelFramesAdvanceEngine(t *testing.T) {
	m := newTestModel(40, 21)
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	start := time.Now()
	next, _ := m.Update(FrameMsg(start))
	m = next.(Model)
	next, _ = m.Update(FrameMsg(start.Add(50 * time.Millisecond)))
	m = next.(Model)

	if m.Engine().Ticks() != 5 {
		t.Errorf("Ticks() = %d, expected 5 after 50ms at 10ms per tick", m.Engine().Ticks())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(0, 0)
	if w, h := m.canvas.Size(); w != 0 || h != 0 {
		t.Fatalf("canvas Size() = (%d, %d), expected (0, 0) before resize", w, h)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 25})
	m = next.(Model)

	if m.canvas.Screen().Width() != 60 || m.canvas.Screen().Height() != 24 {
		t.Errorf("canvas cells = %dx%d, expected 60x24 (one row for help)",
			m.canvas.Screen().Width(), m.canvas.Screen().Height())
	}
	if w, h := m.canvas.Size(); w != 400 || h != 400 {
		t.Errorf("canvas Size() = (%d, %d), expected arena size", w, h)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(40, 21)
	view := m.View()
	if !strings.Contains(view, bounce.TextStart) {
		t.Errorf("idle view should show the start prompt, got %q", view)
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should include key help")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(40, 21)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

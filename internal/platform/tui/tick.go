// Package tui provides the Bubble Tea shell for the bounce engine.
// It handles the terminal UI loop, key mapping, frame timing and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the time fed to the engine in one frame, so a stalled
// terminal does not replay seconds of simulation at once.
const maxFrameDelta = 250 * time.Millisecond

// FrameMsg is sent to advance the engine by the time since the previous frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after one
// frame interval at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// frameDelta returns the engine time between two frames.
func frameDelta(prev, now time.Time) time.Duration {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return min(now.Sub(prev), maxFrameDelta)
}

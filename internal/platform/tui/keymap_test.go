package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bounce/internal/core"
)

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Key
		quit     bool
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, false},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.KeyP, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.KeySpace, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft, false},
		{"h", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, core.KeyLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, false},
		{"l", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, core.KeyRight, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.KeyNone, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, true},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.KeyNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k, quit := km.MapKey(tc.msg)
			if k != tc.expected || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), k, quit, tc.expected, tc.quit)
			}
		})
	}
}

func TestGameKeyMapHelp(t *testing.T) {
	km := DefaultGameKeyMap()
	if len(km.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings, expected 5", len(km.ShortHelp()))
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 5 {
		t.Errorf("FullHelp() has %d bindings, expected 5", total)
	}
}

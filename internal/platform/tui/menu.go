package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bounce/internal/core"
	"github.com/vovakirdan/bounce/internal/registry"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(palette[core.ColorOrange])
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(palette[core.ColorField])
	menuDescStyle     = lipgloss.NewStyle().Foreground(palette[core.ColorGray])
)

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items    []registry.Variant
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *registry.Variant // Set when user selects a variant
}

// NewMenuModel creates a picker with the cursor on the variant named current.
func NewMenuModel(current string, cfg core.RuntimeConfig) MenuModel {
	items := registry.List()
	cursor := 0
	for i, v := range items {
		if v.ID == current {
			cursor = i
		}
	}

	h := help.New()
	h.ShowAll = false

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  B O U N C E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a rule set", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Title)
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %s", item.Title))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		b.WriteString(centerText(menuDescStyle.Render(item.Description), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected variant, or nil if none selected.
func (m MenuModel) Selected() *registry.Variant {
	return m.selected
}

// centerText centers styled text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu shows the variant picker and returns the chosen variant ID.
// An empty ID means the user quit.
func RunMenu(current string, cfg core.RuntimeConfig) (string, error) {
	p := tea.NewProgram(
		NewMenuModel(current, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return "", nil
	}
	return m.Selected().ID, nil
}

// Package preview is an interactive view that colors text as it is typed.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/synesthete/internal/core/styles"
	"github.com/hay-kot/synesthete/internal/core/synesthesia"
	"github.com/hay-kot/synesthete/pkg/color"
)

const (
	defaultWidth = 40
	swatchHeight = 3
)

// Model is the Bubble Tea model for the preview.
type Model struct {
	input     textinput.Model
	colorizer *synesthesia.Colorizer
	width     int
	quitting  bool
}

// New creates a preview seeded with initial text.
func New(c *synesthesia.Colorizer, initial string) Model {
	ti := textinput.New()
	ti.Placeholder = "type something"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.SetValue(initial)
	ti.Focus()

	return Model{
		input:     ti,
		colorizer: c,
		width:     defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = max(msg.Width-2, 1)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// Color returns the color of the current text.
func (m Model) Color() color.Color {
	return m.colorizer.Color(m.input.Value())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	c := m.Color()

	swatch := make([]string, swatchHeight)
	for i := range swatch {
		swatch[i] = styles.Swatch(c, m.width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.HeaderStyle.Render("synesthete preview"),
		m.input.View(),
		"",
		strings.Join(swatch, "\n"),
		"",
		c.CSS()+"  "+styles.MutedStyle.Render(c.Hex()),
		styles.MutedStyle.Render("esc to quit"),
	)
}

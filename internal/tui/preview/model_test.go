package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/synesthete/internal/core/synesthesia"
)

func typeRunes(t *testing.T, m Model, s string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestModel_ColorFollowsInput(t *testing.T) {
	m := New(synesthesia.Default(), "")
	assert.Equal(t, synesthesia.Color(""), m.Color())

	m = typeRunes(t, m, "ab")
	assert.Equal(t, "ab", m.Value())
	assert.Equal(t, synesthesia.Color("ab"), m.Color())
}

func TestModel_InitialValue(t *testing.T) {
	m := New(synesthesia.Default(), "hello")
	assert.Equal(t, "hello", m.Value())
	assert.Contains(t, m.View(), synesthesia.Color("hello").CSS())
}

func TestModel_UsesColorizer(t *testing.T) {
	c := synesthesia.New(synesthesia.Config{Fallback: synesthesia.FallbackHash}, zerolog.Nop())
	m := New(c, "1")
	assert.Equal(t, synesthesia.HashColor("1"), m.Color())
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := New(synesthesia.Default(), "x")

		updated, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, updated.View())
	}
}

func TestModel_WindowResize(t *testing.T) {
	m := New(synesthesia.Default(), "")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Equal(t, 18, updated.(Model).width)
}

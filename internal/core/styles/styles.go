// Package styles provides shared lipgloss styles and color swatches for CLI
// and TUI output.
package styles

import (
	stdcolor "image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/synesthete/pkg/color"
)

// Tokyo Night palette.
var (
	ColorPrimary = lipgloss.Color("#7aa2f7")
	ColorMuted   = lipgloss.Color("#565f89")
	ColorSuccess = lipgloss.Color("#9ece6a")
	ColorWarning = lipgloss.Color("#e0af68")
	ColorError   = lipgloss.Color("#f7768e")
)

var (
	HeaderStyle  = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)

// luminance above which dark text is used on a swatch.
const lightThreshold = 0.4

// Swatch paints width cells with c as the background. Fully transparent
// colors render as a dotted placeholder.
func Swatch(c stdcolor.Color, width int) string {
	return Label(c, strings.Repeat(" ", max(width, 0)))
}

// Label renders text on a c background with a contrasting foreground.
func Label(c stdcolor.Color, text string) string {
	col := color.FromStd(c)
	if col.A() == 0 {
		return MutedStyle.Render(strings.Repeat("·", lipgloss.Width(text)))
	}

	fg := lipgloss.Color("#ffffff")
	if col.Luminance() > lightThreshold {
		fg = lipgloss.Color("#000000")
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(col.Hex())).
		Foreground(fg).
		Render(text)
}

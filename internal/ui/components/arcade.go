package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const (
	minContentWidth = 20
	maxContentWidth = 60
)

// ContentWidth returns the inner width shared by every section inside the
// cabinet frame, so stacked boxes line up.
func ContentWidth(frameWidth int) int {
	// border (2) + padding (4)
	return max(minContentWidth, min(frameWidth-6, maxContentWidth))
}

// CabinetFrame wraps content in the double-border frame used by the home
// screen, centered in width x height.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel renders content in a rounded card. A width of 0 sizes the card to
// its content.
func Panel(content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2)
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(content)
}

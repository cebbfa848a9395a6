package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const arcadeTitle = "M · A · T · H · D · R · I · L · L"

// renderTitle returns the styled marquee title.
func renderTitle(cw int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(arcadeTitle))
}

// renderStatsBar renders lifetime stats in a bordered box matching content width.
func renderStatsBar(ls lifetimeStats, cw int, compact bool) string {
	answeredStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	accuracyStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var accuracy int
	if ls.Answered > 0 {
		accuracy = ls.Correct * 100 / ls.Answered
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			answeredStyle.Render(fmt.Sprintf("★%d", ls.Answered)),
			accuracyStyle.Render(fmt.Sprintf("✔%d%%", accuracy)),
		)
	} else {
		best := dimStyle.Render("◆ NO BEST YET")
		if ls.Best != "" {
			best = bestStyle.Render("◆ BEST " + strings.ToUpper(shortModeName(ls.Best)))
		}
		stats = fmt.Sprintf("%s  %s  %s",
			answeredStyle.Render(fmt.Sprintf("★ %d ANSWERED", ls.Answered)),
			accuracyStyle.Render(fmt.Sprintf("✔ %d%%", accuracy)),
			best,
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
// Mode buttons carry their number hotkey.
func renderArcadeMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		label = numbered(i, label)
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		label = numbered(i, label)
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// numbered prefixes the first four (mode) items with their hotkey.
func numbered(i int, label string) string {
	if i < 4 {
		return fmt.Sprintf("%d %s", i+1, label)
	}
	return label
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

package components

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// AccuracyBar shows correct answers as a share of answered ones, tinted by
// how well the learner did.
type AccuracyBar struct {
	Label    string
	Correct  int
	Answered int
	Width    int
}

// NewAccuracyBar creates an accuracy bar that fits in width columns,
// label included.
func NewAccuracyBar(label string, correct, answered, width int) AccuracyBar {
	return AccuracyBar{
		Label:    label,
		Correct:  correct,
		Answered: answered,
		Width:    width,
	}
}

// Ratio returns Correct/Answered, or 0 with nothing answered.
func (a AccuracyBar) Ratio() float64 {
	if a.Answered <= 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Answered)
}

// View renders the bar.
func (a AccuracyBar) View() string {
	var label string
	if a.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(a.Label) + "  "
	}
	suffix := fmt.Sprintf("  %3d%%", int(math.Round(a.Ratio()*100)))

	barWidth := max(4, a.Width-lipgloss.Width(label)-len(suffix))
	filled := min(barWidth, max(0, int(float64(barWidth)*a.Ratio())))

	fill := lipgloss.NewStyle().Background(accuracyColor(a.Ratio()))
	bar := fill.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return label + bar + lipgloss.NewStyle().Foreground(theme.TextDim).Render(suffix)
}

func accuracyColor(ratio float64) color.Color {
	switch {
	case ratio >= 0.8:
		return theme.Success
	case ratio >= 0.5:
		return theme.Accent
	default:
		return theme.Error
	}
}

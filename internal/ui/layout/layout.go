package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// Smallest terminal the drill renders in.
const (
	MinWidth  = 80
	MinHeight = 24
)

const appName = "Mathdrill"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// ScoreBadge is the running score shown on the right of the header.
// A nil badge leaves the right side empty.
type ScoreBadge struct {
	Correct int
	Wrong   int
}

// Frame describes one full-screen render: a header bar, the active screen's
// body and a footer of key hints.
type Frame struct {
	Title string
	Score *ScoreBadge
	Hints []KeyHint
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// Render draws f at width x height. body is called with the space left
// between header and footer.
func (f Frame) Render(width, height int, body func(width, height int) string) string {
	header := RenderHeader(f.Title, f.Score, width)
	footer := RenderFooter(f.Hints, width)

	contentHeight := max(0, height-lipgloss.Height(header)-lipgloss.Height(footer))
	content := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(body(width, contentHeight))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// RenderHeader renders the header bar: app name on the left, title in the
// middle and the score badge, if any, on the right.
func RenderHeader(title string, score *ScoreBadge, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + appName)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	right := renderBadge(score)

	inner := max(0, width-4)
	leftGap := max(1, (inner-lipgloss.Width(center))/2-lipgloss.Width(left))
	rightGap := max(1, inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right))

	return bar(width).Render(
		left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right,
	)
}

func renderBadge(score *ScoreBadge) string {
	if score == nil {
		return ""
	}
	correct := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("✅ %d", score.Correct))
	wrong := lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("❌ %d", score.Wrong))
	return correct + "   " + wrong
}

// RenderFooter renders the footer with key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

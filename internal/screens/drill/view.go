package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// renderDrillView renders the mode tabs, the question, the answer field
// and the answer history.
func (s *DrillScreen) renderDrillView(width, height int) string {
	state := s.state

	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.tabs.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	q := state.Current
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text + " = ?"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n")
	b.WriteString(s.renderStatusLine(width))
	b.WriteString("\n\n")

	// Whatever is left goes to history, newest first.
	used := lipgloss.Height(b.String())
	b.WriteString(renderHistory(state.History, width, height-used))

	return b.String()
}

// renderStatusLine shows the result of the last submission, or a hint about
// the expected answer format.
func (s *DrillScreen) renderStatusLine(width int) string {
	line := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	switch {
	case s.feedback != nil && s.feedback.Correct:
		return line.Foreground(theme.Success).Bold(true).Render("Correct!")
	case s.feedback != nil:
		return line.Foreground(theme.Error).Bold(true).
			Render(fmt.Sprintf("Not quite. Should be %s", s.feedback.Entry.Expected))
	case s.input.Shaking():
		return line.Foreground(theme.Error).Render("Type your answer like 3/4")
	default:
		return line.Foreground(theme.TextDim).Italic(true).Render(formatHint(s.state))
	}
}

func formatHint(state *sess.State) string {
	if state.Current != nil && state.Current.Answer.Kind == problemgen.AnswerFraction {
		return "Answer as a fraction in any form, e.g. 2/4"
	}
	return "Answer with a number"
}

// renderHistory renders as many history entries as fit in height lines.
func renderHistory(history []sess.HistoryEntry, width, height int) string {
	if len(history) == 0 || height < 2 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeCyan).
		Bold(true).
		Render("History"))

	rows := min(len(history), height-1)
	for _, e := range history[:rows] {
		style := theme.Correct
		if !e.Correct {
			style = theme.Incorrect
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(style.UnsetBold().Render(e.String())))
	}

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height, answered int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("You answered %d questions.", answered)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, show my results"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your drill...")
}

// renderError renders an error message.
func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// recentLimit caps the session list.
const recentLimit = 20

type statsLoadedMsg struct {
	Modes    []store.ModeStats
	Sessions []store.SessionSummary
	Err      error
}

// StatsScreen shows lifetime per-mode accuracy and recent sessions from
// the event log.
type StatsScreen struct {
	eventRepo store.EventRepo
	modes     []store.ModeStats
	sessions  []store.SessionSummary
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen. A nil eventRepo means analytics are
// disabled and the screen says so.
func New(eventRepo store.EventRepo) *StatsScreen {
	return &StatsScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	if s.eventRepo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()

		modes, err := s.eventRepo.AnswerStatsByMode(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		sessions, err := s.eventRepo.RecentSessions(ctx, recentLimit)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		return statsLoadedMsg{Modes: modes, Sessions: sessions}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.modes = msg.Modes
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.eventRepo == nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Analytics are turned off, so there is nothing to show.")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}
	if len(s.modes) == 0 && len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No answers yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderModes(width))
	b.WriteString("\n")
	b.WriteString(s.renderSessions(width))
	return b.String()
}

// renderModes renders one accuracy bar per mode with answers.
func (s *StatsScreen) renderModes(width int) string {
	var b strings.Builder
	b.WriteString(sectionTitle("All time", width))

	barWidth := min(width-8, 60)
	for _, m := range s.modes {
		label := fmt.Sprintf("%-20s ✅ %-4d ❌ %-4d", modeName(m.Mode), m.Correct, m.Wrong())
		bar := components.NewAccuracyBar(label, m.Correct, m.Answered, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *StatsScreen) renderSessions(width int) string {
	if len(s.sessions) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionTitle("Recent sessions", width))

	for i, sess := range s.sessions {
		dateStr := sess.EndedAt.Local().Format("Jan 02, 2006 15:04")
		durationStr := fmt.Sprintf("%d:%02d", sess.DurationSecs/60, sess.DurationSecs%60)

		var accuracy float64
		if sess.QuestionsAnswered > 0 {
			accuracy = float64(sess.CorrectAnswers) / float64(sess.QuestionsAnswered) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d questions  %.0f%% accuracy",
			prefix, dateStr, durationStr, sess.QuestionsAnswered, accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    last mode: %s   correct: %d   wrong: %d   id: %s",
				modeName(sess.Mode), sess.CorrectAnswers,
				sess.QuestionsAnswered-sess.CorrectAnswers, shortID(sess.SessionID))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func sectionTitle(title string, width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true).Render(title)) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n"
}

// modeName maps a stored mode value to its display name. Unknown values
// are shown as stored.
func modeName(s string) string {
	m, err := problemgen.ParseMode(s)
	if err != nil {
		return s
	}
	return m.DisplayName()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

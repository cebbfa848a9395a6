package welcome

import (
	"image/color"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

const (
	tickInterval = 120 * time.Millisecond

	// ticksPerTile is how long each operator tile takes to flip in.
	ticksPerTile = 3
)

// tiles are the operator cards flipped in during the intro, one per mode.
var tiles = []struct {
	glyph string
	color color.Color
}{
	{"×", theme.ArcadeYellow},
	{"÷", theme.ArcadeCyan},
	{"( )", theme.Accent},
	{"½", theme.Success},
}

// introTicks is the tick count after which the intro is fully drawn.
var introTicks = len(tiles) * ticksPerTile

type tickMsg time.Time

// WelcomeScreen flips in the operator tiles, then shows the banner and
// waits for a key before handing over to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	ticks        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by homeFactory.
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{homeFactory: homeFactory}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.settled() {
			return w, nil
		}
		w.ticks++
		if w.settled() {
			return w, nil
		}
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}
	return w, nil
}

// settled reports whether every tile and the banner are showing.
func (w *WelcomeScreen) settled() bool {
	return w.ticks >= introTicks
}

// revealed returns how many tiles are face up.
func (w *WelcomeScreen) revealed() int {
	return min(len(tiles), w.ticks/ticksPerTile)
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderTiles()}

	if w.settled() {
		tagline := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Sharpen your math, one question at a time!")
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue")
		sections = append(sections, "", RenderBanner(width), "", tagline, "", hint)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

// renderTiles draws the row of operator cards; unrevealed ones show "?".
func (w *WelcomeScreen) renderTiles() string {
	shown := w.revealed()
	cards := make([]string, 0, len(tiles))
	for i, t := range tiles {
		face := lipgloss.NewStyle().Foreground(theme.Border).Render("?")
		border := theme.Border
		if i < shown {
			face = lipgloss.NewStyle().Foreground(t.color).Bold(true).Render(t.glyph)
			border = theme.Primary
		}
		cards = append(cards, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Width(9).
			Align(lipgloss.Center).
			Padding(1, 0).
			Render(face))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, spaced(cards)...)
}

func spaced(cards []string) []string {
	out := make([]string, 0, len(cards)*2)
	for i, c := range cards {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, c)
	}
	return out
}

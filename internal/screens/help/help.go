package help

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
	"github.com/abhisek/mathdrill/internal/ui/theme"
)

// modeBlurbs describes what each mode asks, with an example.
var modeBlurbs = map[problemgen.Mode]string{
	problemgen.ModeMultiplication: "Times tables from 2 to 12.       7 × 8 = 56",
	problemgen.ModeDivision:       "Exact division, no remainders.   36 ÷ 4 = 9",
	problemgen.ModeOrder:          "× and ÷ before + and −.         3 + 4 × 2 = 11",
	problemgen.ModeFractions:      "Add and subtract fractions.     1/4 + 1/4 = 1/2",
}

// keyRows lists the drill screen keys.
var keyRows = []layout.KeyHint{
	{Key: "Enter", Description: "Submit your answer"},
	{Key: "Tab / Shift+Tab", Description: "Next / previous mode"},
	{Key: "Alt+1…Alt+4", Description: "Jump to a mode"},
	{Key: "Esc", Description: "End the session and see your results"},
	{Key: "Ctrl+C", Description: "Quit right away"},
}

// HelpScreen explains the modes and keys.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a new HelpScreen.
func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Title() string {
	return "Help"
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	heading := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	key := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	body := lipgloss.NewStyle().Foreground(theme.Text)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	var b strings.Builder

	b.WriteString(heading.Render("Modes"))
	b.WriteString("\n")
	for i, m := range problemgen.Modes {
		b.WriteString(fmt.Sprintf("%s %s\n",
			key.Render(fmt.Sprintf("%d %-20s", i+1, m.DisplayName())),
			body.Render(modeBlurbs[m])))
	}

	b.WriteString("\n")
	b.WriteString(heading.Render("Keys"))
	b.WriteString("\n")
	for _, k := range keyRows {
		b.WriteString(fmt.Sprintf("%s %s\n",
			key.Render(fmt.Sprintf("%-18s", k.Key)),
			body.Render(k.Description)))
	}

	b.WriteString("\n")
	b.WriteString(heading.Render("Answers"))
	b.WriteString("\n")
	b.WriteString(body.Render("Type a whole number, or a fraction like 3/4 in fraction mode."))
	b.WriteString("\n")
	b.WriteString(body.Render("Fractions don't need to be simplified: 2/4 counts for 1/2."))
	b.WriteString("\n\n")
	b.WriteString(dim.Render("Your score lasts until you quit. Nothing is sent anywhere."))

	card := components.Panel(b.String(), 0)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

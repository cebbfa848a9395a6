package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/drill"
	"github.com/abhisek/mathdrill/internal/screens/help"
	"github.com/abhisek/mathdrill/internal/screens/stats"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// Options wires the home screen to the rest of the application.
type Options struct {
	Generator problemgen.Generator
	Reporter  analytics.Reporter

	// EventRepo backs the lifetime stats. Nil when analytics are off.
	EventRepo store.EventRepo
}

// lifetimeStats is the all-time summary shown above the menu.
type lifetimeStats struct {
	Answered int
	Correct  int
	Best     problemgen.Mode // most accurate mode with answers
}

type statsLoadedMsg struct {
	Stats lifetimeStats
	Err   error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	opts          Options
	menu          components.Menu
	menuLabels    []string
	stats         *lifetimeStats
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	if opts.Reporter == nil {
		opts.Reporter = analytics.Nop{}
	}

	var items []components.MenuItem
	var labels []string
	for i, m := range problemgen.Modes {
		label := strings.ToUpper(shortModeName(m))
		labels = append(labels, label)
		items = append(items, components.MenuItem{
			Label:   label,
			Hotkeys: []string{string(rune('1' + i))},
			Action:  startDrill(opts, m),
		})
	}

	extras := []components.MenuItem{
		{Label: "STATS", Hotkeys: []string{"s"}, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(opts.EventRepo)}
			}
		}},
		{Label: "HELP", Hotkeys: []string{"?", "h"}, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: help.New()}
			}
		}},
		{Label: "EXIT GAME", Hotkeys: []string{"q"}, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	for _, item := range extras {
		labels = append(labels, item.Label)
		items = append(items, item)
	}

	return &HomeScreen{
		opts:          opts,
		menu:          components.NewMenu(items),
		menuLabels:    labels,
		mascotVariant: MascotIdle,
	}
}

func startDrill(opts Options, mode problemgen.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{
				Screen: drill.New(opts.Generator, opts.Reporter, mode),
			}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume reloads the lifetime stats after a drill.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.opts.EventRepo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		rows, err := repo.AnswerStatsByMode(context.Background())
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Stats: summarize(rows)}
	}
}

// summarize folds per-mode rows into lifetime totals.
func summarize(rows []store.ModeStats) lifetimeStats {
	var ls lifetimeStats
	bestAcc := -1.0
	for _, r := range rows {
		ls.Answered += r.Answered
		ls.Correct += r.Correct
		m, err := problemgen.ParseMode(r.Mode)
		if err != nil || r.Answered == 0 {
			continue
		}
		if acc := r.Accuracy(); acc > bestAcc {
			bestAcc = acc
			ls.Best = m
		}
	}
	return ls
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err != nil {
			h.stats = nil
			h.mascotVariant = MascotAlert
			return h, nil
		}
		h.stats = &msg.Stats
		h.mascotVariant = mascotFor(msg.Stats)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	if h.stats != nil {
		sections = append(sections, renderStatsBar(*h.stats, cw, compact))
	}

	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-4", Description: "Start mode"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// shortModeName fits mode names on the arcade buttons.
func shortModeName(m problemgen.Mode) string {
	if m == problemgen.ModeOrder {
		return "Order of Ops"
	}
	return m.DisplayName()
}

package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/drill"
	"github.com/abhisek/mathdrill/internal/screens/home"
	"github.com/abhisek/mathdrill/internal/screens/welcome"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// Options holds the dependencies the TUI needs.
type Options struct {
	Generator problemgen.Generator
	Reporter  analytics.Reporter

	// EventRepo backs the stats screens. Nil when analytics are off.
	EventRepo store.EventRepo

	// Mode, when set, skips the welcome screen and opens a drill in this
	// mode on top of home.
	Mode problemgen.Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	startCmd tea.Cmd
	width    int
	height   int
}

// newAppModel creates a new AppModel starting at the welcome screen, or
// directly in a drill when opts.Mode is set.
func newAppModel(opts Options) AppModel {
	homeOpts := home.Options{
		Generator: opts.Generator,
		Reporter:  opts.Reporter,
		EventRepo: opts.EventRepo,
	}

	if opts.Mode != "" {
		homeScreen := home.New(homeOpts)
		r := router.New(homeScreen)
		return AppModel{
			router: r,
			startCmd: tea.Batch(
				homeScreen.Init(),
				r.Push(drill.New(opts.Generator, opts.Reporter, opts.Mode)),
			),
		}
	}

	welcomeScreen := welcome.New(func() screen.Screen {
		return home.New(homeOpts)
	})
	return AppModel{
		router:   router.New(welcomeScreen),
		startCmd: welcomeScreen.Init(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.startCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Esc belongs to the screens: the drill asks before ending.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame, or "" before the first WindowSizeMsg.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var badge *layout.ScoreBadge
	if sp, ok := active.(screen.ScoreProvider); ok {
		correct, wrong := sp.Score()
		badge = &layout.ScoreBadge{Correct: correct, Wrong: wrong}
	}

	frame := layout.Frame{Title: title, Score: badge, Hints: m.footerHints(active)}
	return frame.Render(m.width, m.height, m.router.View)
}

// footerHints prefers the active screen's own hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if khp, ok := active.(screen.KeyHintProvider); ok {
		return khp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Reporter == nil {
		opts.Reporter = analytics.Nop{}
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

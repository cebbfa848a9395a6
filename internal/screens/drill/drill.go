package drill

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	sess "github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/ui/components"
	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// shakeDuration is how long the answer field stays red after a malformed
// submission.
const shakeDuration = 500 * time.Millisecond

// DrillScreen implements screen.Screen for an active drill session.
type DrillScreen struct {
	generator problemgen.Generator
	reporter  analytics.Reporter
	startMode problemgen.Mode

	state    *sess.State
	input    components.TextInput
	tabs     components.Tabs
	feedback *sess.Outcome // non-nil while the result is showing

	showingQuitConfirm bool
	shakeID            int
	errMsg             string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.ScoreProvider = (*DrillScreen)(nil)

// New creates a DrillScreen that starts in mode.
func New(generator problemgen.Generator, reporter analytics.Reporter, mode problemgen.Mode) *DrillScreen {
	return &DrillScreen{
		generator: generator,
		reporter:  reporter,
		startMode: mode,
		input:     newAnswerInput(mode),
		tabs:      components.NewTabs(modeLabels(), modeIndex(mode)),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return tea.Batch(
		s.initSession(),
		s.input.Init(),
	)
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

// Score reports the running session score for the header.
func (s *DrillScreen) Score() (correct, wrong int) {
	if s.state == nil {
		return 0, 0
	}
	return s.state.Score.Correct, s.state.Score.Wrong
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.state == nil || s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.feedback != nil {
		return []layout.KeyHint{{Key: "…", Description: "Next question"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Mode"},
		{Key: "Alt+1-4", Description: "Jump"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case shakeDoneMsg:
		if msg.id == s.shakeID {
			s.input.StopShake()
		}
		return s, nil

	case sessionEndMsg:
		return s.handleSessionEnd()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	// Forward to input if active.
	if s.state != nil && s.feedback == nil && !s.showingQuitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// initSession starts the session and generates its first question.
func (s *DrillScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		state, err := sess.New(s.generator, s.reporter, s.startMode)
		return sessionInitMsg{State: state, Err: err}
	}
}

func (s *DrillScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	return s, nil
}

func (s *DrillScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.state == nil || s.feedback == nil {
		return s, nil
	}
	s.feedback = nil

	if err := s.state.Next(); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.input.Reset()
	return s, s.input.Init()
}

func (s *DrillScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	result := s.state.End()
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}
}

func (s *DrillScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.state == nil {
		return s, nil
	}

	// Quit confirmation dialog.
	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	// Input is ignored until the next question arrives.
	if s.feedback != nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	}

	var changed bool
	if s.tabs, changed = s.tabs.Update(msg); changed {
		return s.switchMode(problemgen.Modes[s.tabs.Selected])
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer scores the typed answer and starts the feedback delay, or
// shakes the input if the answer was malformed.
func (s *DrillScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	out, err := s.state.Submit(s.input.Value())
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if !out.Accepted {
		s.shakeID++
		id := s.shakeID
		s.input.Shake()
		return s, tea.Tick(shakeDuration, func(time.Time) tea.Msg {
			return shakeDoneMsg{id: id}
		})
	}

	s.feedback = &out
	s.input.StopShake()
	s.input.Submit(out.Correct)
	return s, tea.Tick(sess.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

func (s *DrillScreen) switchMode(mode problemgen.Mode) (screen.Screen, tea.Cmd) {
	if err := s.state.SwitchMode(mode); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.input = newAnswerInput(mode)
	return s, s.input.Init()
}

// newAnswerInput returns an answer field that accepts the characters a
// mode's answers are written with.
func newAnswerInput(mode problemgen.Mode) components.TextInput {
	if mode == problemgen.ModeFractions {
		return components.NewTextInput("e.g. 3/4", components.FractionChars, 9)
	}
	return components.NewTextInput("Type your answer...", components.NumberChars, 9)
}

func modeLabels() []string {
	labels := make([]string, len(problemgen.Modes))
	for i, m := range problemgen.Modes {
		labels[i] = m.DisplayName()
	}
	return labels
}

func modeIndex(mode problemgen.Mode) int {
	for i, m := range problemgen.Modes {
		if m == mode {
			return i
		}
	}
	return 0
}

func (s *DrillScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, height, s.errMsg)
	}
	if s.state == nil {
		return renderLoading(width, height)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height, s.state.Score.Total())
	}
	return s.renderDrillView(width, height)
}

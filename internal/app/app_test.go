package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screens/drill"
	"github.com/abhisek/mathdrill/internal/screens/home"
	"github.com/abhisek/mathdrill/internal/screens/summary"
	"github.com/abhisek/mathdrill/internal/screens/welcome"
	"github.com/abhisek/mathdrill/internal/session"
)

type mockGenerator struct{}

func (mockGenerator) Generate(mode problemgen.Mode) (*problemgen.Question, error) {
	return &problemgen.Question{Text: "6 × 7", Answer: problemgen.IntegerAnswer(42), Mode: mode}, nil
}

func testOptions() Options {
	return Options{Generator: mockGenerator{}, Reporter: &analytics.Recorder{}}
}

func sized(m AppModel, w, h int) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(AppModel)
}

func TestNewAppModel_StartsAtWelcome(t *testing.T) {
	m := newAppModel(testOptions())
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected welcome screen, got %T", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("expected welcome animation command")
	}
}

func TestNewAppModel_ModeOpensDrill(t *testing.T) {
	opts := testOptions()
	opts.Mode = problemgen.ModeDivision
	m := newAppModel(opts)

	if m.router.Depth() != 2 {
		t.Fatalf("Depth = %d, want 2", m.router.Depth())
	}
	if _, ok := m.router.Active().(*drill.DrillScreen); !ok {
		t.Errorf("expected drill screen on top, got %T", m.router.Active())
	}

	// Popping the drill lands on home.
	m.router.Update(router.PopScreenMsg{})
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("expected home under drill, got %T", m.router.Active())
	}
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions())
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestUpdate_EscReachesScreen(t *testing.T) {
	opts := testOptions()
	opts.Mode = problemgen.ModeMultiplication
	m := newAppModel(opts)

	// Esc on the drill opens its quit dialog instead of popping.
	updated, _ := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = updated.(AppModel)
	if m.router.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", m.router.Depth())
	}
}

func TestView_BeforeSize(t *testing.T) {
	m := newAppModel(testOptions())
	if got := m.render(); got != "" {
		t.Errorf("expected empty view before first WindowSizeMsg, got %q", got)
	}
	if !m.View().AltScreen {
		t.Error("expected alt screen")
	}
}

func TestView_TooSmall(t *testing.T) {
	m := sized(newAppModel(testOptions()), 40, 10)
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min size message")
	}
}

func TestView_HeaderShowsScore(t *testing.T) {
	m := sized(newAppModel(testOptions()), 100, 30)
	m.router.Update(router.PushScreenMsg{
		Screen: summary.New(&session.Summary{Answered: 3, Correct: 2}),
	})

	view := m.render()
	if !strings.Contains(view, "Mathdrill") {
		t.Error("expected app name in header")
	}
	if !strings.Contains(view, "✅ 2") || !strings.Contains(view, "❌ 1") {
		t.Error("expected score badge in header")
	}
	if !strings.Contains(view, "Continue") {
		t.Error("expected screen key hints in footer")
	}
}

func TestView_WelcomeHasNoScore(t *testing.T) {
	m := sized(newAppModel(testOptions()), 100, 30)
	if strings.Contains(m.render(), "✅") {
		t.Error("welcome screen should not show a score")
	}
}

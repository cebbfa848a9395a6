package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/router"
	"github.com/abhisek/mathdrill/internal/screens/drill"
	"github.com/abhisek/mathdrill/internal/screens/help"
	"github.com/abhisek/mathdrill/internal/screens/stats"
	"github.com/abhisek/mathdrill/internal/store"
)

type mockGenerator struct{}

func (mockGenerator) Generate(mode problemgen.Mode) (*problemgen.Question, error) {
	return &problemgen.Question{Text: "2 × 3", Answer: problemgen.IntegerAnswer(6), Mode: mode}, nil
}

// mockEventRepo serves canned per-mode stats.
type mockEventRepo struct {
	store.EventRepo
	rows  []store.ModeStats
	err   error
	calls int
}

func (m *mockEventRepo) AnswerStatsByMode(context.Context) ([]store.ModeStats, error) {
	m.calls++
	return m.rows, m.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func pushedScreen(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	return push.Screen
}

func TestHomeScreen_MenuItems(t *testing.T) {
	h := New(Options{Generator: mockGenerator{}})
	want := []string{"MULTIPLICATION", "DIVISION", "ORDER OF OPS", "FRACTIONS", "STATS", "HELP", "EXIT GAME"}
	if len(h.menuLabels) != len(want) {
		t.Fatalf("labels = %v, want %v", h.menuLabels, want)
	}
	for i := range want {
		if h.menuLabels[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, h.menuLabels[i], want[i])
		}
	}
}

func TestHomeScreen_ModeHotkeysStartDrill(t *testing.T) {
	for _, key := range "1234" {
		h := New(Options{Generator: mockGenerator{}, Reporter: &analytics.Recorder{}})
		_, cmd := h.Update(keyPress(key))
		if _, ok := pushedScreen(t, cmd).(*drill.DrillScreen); !ok {
			t.Errorf("key %c: expected drill screen", key)
		}
		if h.menu.Selected != int(key-'1') {
			t.Errorf("key %c: selected = %d", key, h.menu.Selected)
		}
	}
}

func TestHomeScreen_EnterOnSelected(t *testing.T) {
	h := New(Options{Generator: mockGenerator{}})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if _, ok := pushedScreen(t, cmd).(*drill.DrillScreen); !ok {
		t.Error("expected drill screen for the division item")
	}
}

func TestHomeScreen_StatsAndHelp(t *testing.T) {
	h := New(Options{Generator: mockGenerator{}})

	_, cmd := h.Update(keyPress('s'))
	if _, ok := pushedScreen(t, cmd).(*stats.StatsScreen); !ok {
		t.Error("expected stats screen")
	}

	_, cmd = h.Update(keyPress('?'))
	if _, ok := pushedScreen(t, cmd).(*help.HelpScreen); !ok {
		t.Error("expected help screen")
	}
}

func TestHomeScreen_Exit(t *testing.T) {
	h := New(Options{Generator: mockGenerator{}})
	_, cmd := h.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestHomeScreen_NoRepoSkipsStats(t *testing.T) {
	h := New(Options{Generator: mockGenerator{}})
	if h.Init() != nil {
		t.Error("expected no stats load without a repo")
	}
	if strings.Contains(h.View(120, 40), "ANSWERED") {
		t.Error("stats bar should be hidden without a repo")
	}
}

func TestHomeScreen_LoadsStats(t *testing.T) {
	repo := &mockEventRepo{rows: []store.ModeStats{
		{Mode: "division", Answered: 10, Correct: 6},
		{Mode: "multiplication", Answered: 20, Correct: 19},
	}}
	h := New(Options{Generator: mockGenerator{}, EventRepo: repo})

	h.Update(h.Init()())

	if h.stats == nil {
		t.Fatal("expected stats loaded")
	}
	if h.stats.Answered != 30 || h.stats.Correct != 25 {
		t.Errorf("stats = %+v", *h.stats)
	}
	if h.stats.Best != problemgen.ModeMultiplication {
		t.Errorf("Best = %q, want multiplication", h.stats.Best)
	}

	view := h.View(120, 40)
	if !strings.Contains(view, "30 ANSWERED") {
		t.Error("expected answered count in view")
	}
	if !strings.Contains(view, "BEST MULTIPLICATION") {
		t.Error("expected best mode in view")
	}
}

func TestHomeScreen_ResumeReloadsStats(t *testing.T) {
	repo := &mockEventRepo{}
	h := New(Options{Generator: mockGenerator{}, EventRepo: repo})
	h.Update(h.Init()())

	repo.rows = []store.ModeStats{{Mode: "fractions", Answered: 2, Correct: 1}}
	h.Update(h.Resume()())

	if repo.calls != 2 {
		t.Errorf("AnswerStatsByMode calls = %d, want 2", repo.calls)
	}
	if h.stats.Answered != 2 {
		t.Errorf("Answered = %d, want 2", h.stats.Answered)
	}
}

func TestHomeScreen_StatsErrorAlertsMascot(t *testing.T) {
	h := New(Options{Generator: mockGenerator{}, EventRepo: &mockEventRepo{err: errors.New("locked")}})
	h.Update(h.Init()())

	if h.stats != nil {
		t.Error("expected no stats after error")
	}
	if h.mascotVariant != MascotAlert {
		t.Errorf("mascot = %d, want MascotAlert", h.mascotVariant)
	}
}

func TestMascotFor(t *testing.T) {
	tests := []struct {
		name string
		ls   lifetimeStats
		want MascotVariant
	}{
		{"new player", lifetimeStats{}, MascotIdle},
		{"few answers", lifetimeStats{Answered: 5, Correct: 5}, MascotIdle},
		{"accurate", lifetimeStats{Answered: 20, Correct: 18}, MascotCelebrating},
		{"steady", lifetimeStats{Answered: 40, Correct: 28}, MascotIdle},
		{"needs practice", lifetimeStats{Answered: 40, Correct: 12}, MascotEncouraging},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mascotFor(tt.ls); got != tt.want {
				t.Errorf("mascotFor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHomeScreen_CompactView(t *testing.T) {
	h := New(Options{Generator: mockGenerator{}})
	view := h.View(80, 18)
	if !strings.Contains(view, "1 MULTIPLICATION") {
		t.Error("expected numbered mode item in compact view")
	}
}

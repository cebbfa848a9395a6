package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

// FeedbackDelay is how long the result of an answer is shown before the
// next question is requested.
const FeedbackDelay = 800 * time.Millisecond

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseActive   Phase = iota // Waiting for an answer
	PhaseFeedback              // Answer scored, waiting for Next
	PhaseEnded                 // End was called
)

func (p Phase) String() string {
	switch p {
	case PhaseFeedback:
		return "feedback"
	case PhaseEnded:
		return "ended"
	default:
		return "active"
	}
}

// Score counts scored answers. It only ever grows.
type Score struct {
	Correct int
	Wrong   int
}

// Total returns the number of scored answers.
func (s Score) Total() int {
	return s.Correct + s.Wrong
}

// State tracks the runtime state of a drill session. All fields are owned
// by the caller's event loop; State is not safe for concurrent use.
type State struct {
	// ID is the UUID attached to every analytics event of this session.
	ID string

	// Mode is the active question mode.
	Mode problemgen.Mode

	// Current is the question being displayed.
	Current *problemgen.Question

	// Score is the running tally for the session.
	Score Score

	// History holds every scored answer, most recent first.
	History []HistoryEntry

	// PerMode tracks per-mode results for the summary.
	PerMode map[problemgen.Mode]*ModeProgress

	// Phase is the current session phase.
	Phase Phase

	// StartTime is when the session began.
	StartTime time.Time

	// EndTime is when End was called; zero while the session is running.
	EndTime time.Time

	gen      problemgen.Generator
	reporter analytics.Reporter
	now      func() time.Time
}

// newState creates a session state with initialized maps and a fresh ID.
func newState(gen problemgen.Generator, reporter analytics.Reporter, mode problemgen.Mode) *State {
	if reporter == nil {
		reporter = analytics.Nop{}
	}
	return &State{
		ID:        uuid.NewString(),
		Mode:      mode,
		PerMode:   make(map[problemgen.Mode]*ModeProgress),
		Phase:     PhaseActive,
		StartTime: time.Now(),
		gen:       gen,
		reporter:  reporter,
		now:       time.Now,
	}
}

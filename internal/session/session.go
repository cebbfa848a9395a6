package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

// maxGenerateAttempts bounds regeneration after a retryable validation
// failure.
const maxGenerateAttempts = 3

var (
	// ErrAwaitingNext is returned by Submit while the previous answer's
	// feedback is still showing.
	ErrAwaitingNext = errors.New("answer already scored, waiting for next question")

	// ErrEnded is returned by any operation after End.
	ErrEnded = errors.New("session has ended")
)

// New starts a session in mode and generates its first question. A nil
// reporter discards analytics events.
func New(gen problemgen.Generator, reporter analytics.Reporter, mode problemgen.Mode) (*State, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %q", problemgen.ErrUnknownMode, mode)
	}

	s := newState(gen, reporter, mode)
	q, err := s.generate(mode)
	if err != nil {
		return nil, err
	}
	s.Current = q
	s.reporter.Report(context.Background(), analytics.SessionStart(s.ID, string(mode)))
	return s, nil
}

// Submit scores raw against the current question. Malformed input is
// rejected without touching Score or History. An accepted answer moves the
// session into PhaseFeedback; call Next to continue.
func (s *State) Submit(raw string) (Outcome, error) {
	switch s.Phase {
	case PhaseEnded:
		return Outcome{}, ErrEnded
	case PhaseFeedback:
		return Outcome{}, ErrAwaitingNext
	}

	q := s.Current
	res := problemgen.CheckAnswer(q.Mode, raw, q.Answer)
	if !res.Accepted {
		return Outcome{}, nil
	}

	entry := HistoryEntry{
		Mode:         q.Mode,
		QuestionText: q.Text,
		UserAnswer:   res.UserAnswer,
		Expected:     q.Answer.String(),
		Correct:      res.Correct,
	}

	if res.Correct {
		s.Score.Correct++
	} else {
		s.Score.Wrong++
	}
	s.History = append([]HistoryEntry{entry}, s.History...)
	s.progressFor(q.Mode).Record(res.Correct)
	s.Phase = PhaseFeedback

	s.reporter.Report(context.Background(), analytics.Answer(
		s.ID, string(q.Mode), entry.QuestionText, entry.Expected, entry.UserAnswer, entry.Correct,
	))

	return Outcome{Accepted: true, Correct: res.Correct, Entry: entry}, nil
}

// Next replaces the current question with a fresh one for the active mode.
// On error the previous question and phase are kept.
func (s *State) Next() error {
	if s.Phase == PhaseEnded {
		return ErrEnded
	}
	q, err := s.generate(s.Mode)
	if err != nil {
		return err
	}
	s.Current = q
	s.Phase = PhaseActive
	return nil
}

// SwitchMode makes mode active, discarding the in-flight question. Score
// and History are kept. If no question can be generated for mode the
// session is left exactly as it was.
func (s *State) SwitchMode(mode problemgen.Mode) error {
	if s.Phase == PhaseEnded {
		return ErrEnded
	}
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", problemgen.ErrUnknownMode, mode)
	}

	q, err := s.generate(mode)
	if err != nil {
		return err
	}
	s.Mode = mode
	s.Current = q
	s.Phase = PhaseActive
	s.reporter.Report(context.Background(), analytics.SelectMode(s.ID, string(mode)))
	return nil
}

// End closes the session, reports its totals and returns the summary.
// Calling End again returns the same summary without reporting twice.
func (s *State) End() *Summary {
	if s.Phase == PhaseEnded {
		return BuildSummary(s)
	}
	s.Phase = PhaseEnded
	s.EndTime = s.now()
	summary := BuildSummary(s)
	s.reporter.Report(context.Background(), analytics.SessionEnd(
		s.ID, string(s.Mode), summary.Answered, summary.Correct, int(summary.Duration.Seconds()),
	))
	return summary
}

// generate asks the generator for a question in mode, regenerating when a
// validator reports a retryable failure.
func (s *State) generate(mode problemgen.Mode) (*problemgen.Question, error) {
	var (
		q   *problemgen.Question
		err error
	)
	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		q, err = s.gen.Generate(mode)
		if err == nil {
			return q, nil
		}
		var valErr *problemgen.ValidationError
		if !errors.As(err, &valErr) || !valErr.Retryable {
			break
		}
	}
	return nil, fmt.Errorf("next %s question: %w", mode, err)
}

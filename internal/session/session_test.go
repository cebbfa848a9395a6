package session

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

type stubResult struct {
	q   *problemgen.Question
	err error
}

// stubGenerator returns queued results in order, then "2 × 2" forever.
type stubGenerator struct {
	queue []stubResult
	calls []problemgen.Mode
}

func (g *stubGenerator) Generate(mode problemgen.Mode) (*problemgen.Question, error) {
	g.calls = append(g.calls, mode)
	if len(g.queue) == 0 {
		return &problemgen.Question{Text: "2 × 2", Answer: problemgen.IntegerAnswer(4), Mode: mode}, nil
	}
	r := g.queue[0]
	g.queue = g.queue[1:]
	if r.err != nil {
		return nil, r.err
	}
	q := *r.q
	q.Mode = mode
	return &q, nil
}

func queued(qs ...*problemgen.Question) *stubGenerator {
	g := &stubGenerator{}
	for _, q := range qs {
		g.queue = append(g.queue, stubResult{q: q})
	}
	return g
}

func intQ(text string, answer int) *problemgen.Question {
	return &problemgen.Question{Text: text, Answer: problemgen.IntegerAnswer(answer)}
}

func fracQ(text string, num, den int) *problemgen.Question {
	return &problemgen.Question{
		Text:   text,
		Answer: problemgen.FractionAnswer(problemgen.Fraction{Num: num, Den: den}),
	}
}

func newTestSession(t *testing.T, gen problemgen.Generator, mode problemgen.Mode) (*State, *analytics.Recorder) {
	t.Helper()
	rec := &analytics.Recorder{}
	s, err := New(gen, rec, mode)
	require.NoError(t, err)
	return s, rec
}

func TestNewSession(t *testing.T) {
	gen := queued(intQ("7 × 8", 56))
	s, rec := newTestSession(t, gen, problemgen.ModeMultiplication)

	_, err := uuid.Parse(s.ID)
	assert.NoError(t, err, "session ID should be a UUID")
	assert.Equal(t, problemgen.ModeMultiplication, s.Mode)
	assert.Equal(t, "7 × 8", s.Current.Text)
	assert.Equal(t, problemgen.ModeMultiplication, s.Current.Mode)
	assert.Equal(t, PhaseActive, s.Phase)
	assert.Equal(t, Score{}, s.Score)
	assert.Empty(t, s.History)

	starts := rec.Named(analytics.EventSessionStart)
	require.Len(t, starts, 1)
	assert.Equal(t, s.ID, starts[0].SessionID)
	assert.Equal(t, "multiplication", starts[0].Param(analytics.ParamMathMode))
}

func TestNewSessionUnknownMode(t *testing.T) {
	_, err := New(&stubGenerator{}, nil, problemgen.Mode("calculus"))
	assert.ErrorIs(t, err, problemgen.ErrUnknownMode)
}

func TestSubmitCorrect(t *testing.T) {
	s, rec := newTestSession(t, queued(intQ("7 × 8", 56)), problemgen.ModeMultiplication)

	out, err := s.Submit("56")
	require.NoError(t, err)
	assert.True(t, out.Accepted)
	assert.True(t, out.Correct)
	assert.Equal(t, "7 × 8 = 56 ✅", out.Entry.String())

	assert.Equal(t, Score{Correct: 1}, s.Score)
	require.Len(t, s.History, 1)
	assert.Equal(t, out.Entry, s.History[0])
	assert.Equal(t, PhaseFeedback, s.Phase)
	// The question stays until Next.
	assert.Equal(t, "7 × 8", s.Current.Text)

	answers := rec.Named(analytics.EventAnswer)
	require.Len(t, answers, 1)
	assert.Equal(t, map[string]string{
		analytics.ParamMathMode: "multiplication",
		analytics.ParamQuestion: "7 × 8",
		analytics.ParamExpected: "56",
		analytics.ParamAnswer:   "56",
		analytics.ParamCorrect:  "true",
	}, answers[0].Params)
}

func TestSubmitWrong(t *testing.T) {
	s, _ := newTestSession(t, queued(intQ("36 ÷ 4", 9)), problemgen.ModeDivision)

	out, err := s.Submit("8")
	require.NoError(t, err)
	assert.True(t, out.Accepted)
	assert.False(t, out.Correct)
	assert.Equal(t, Score{Wrong: 1}, s.Score)
	assert.Equal(t, "36 ÷ 4 = 8 ❌ (Should be 9)", s.History[0].String())
}

func TestSubmitNonNumericScoresWrong(t *testing.T) {
	s, _ := newTestSession(t, queued(intQ("3 + 4 × 5", 23)), problemgen.ModeOrder)

	out, err := s.Submit("  abc ")
	require.NoError(t, err)
	assert.True(t, out.Accepted)
	assert.False(t, out.Correct)
	assert.Equal(t, "3 + 4 × 5 = abc ❌ (Should be 23)", out.Entry.String())
	assert.Equal(t, Score{Wrong: 1}, s.Score)
}

func TestSubmitFractionEquivalent(t *testing.T) {
	s, _ := newTestSession(t, queued(fracQ("1/5 + 2/5", 3, 5)), problemgen.ModeFractions)

	out, err := s.Submit("6/10")
	require.NoError(t, err)
	assert.True(t, out.Correct)
	assert.Equal(t, "1/5 + 2/5 = 6/10 ✅", out.Entry.String())
}

func TestSubmitRejectedLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name string
		mode problemgen.Mode
		q    *problemgen.Question
		raw  string
	}{
		{"empty", problemgen.ModeMultiplication, intQ("7 × 8", 56), ""},
		{"whitespace", problemgen.ModeMultiplication, intQ("7 × 8", 56), "   "},
		{"fraction missing denominator", problemgen.ModeFractions, fracQ("1/2 + 1/4", 3, 4), "3/"},
		{"fraction zero denominator", problemgen.ModeFractions, fracQ("1/2 + 1/4", 3, 4), "3/0"},
		{"fraction plain number", problemgen.ModeFractions, fracQ("1/2 + 1/4", 3, 4), "0.75"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newTestSession(t, queued(tt.q), tt.mode)

			out, err := s.Submit(tt.raw)
			require.NoError(t, err)
			assert.False(t, out.Accepted)
			assert.Equal(t, Score{}, s.Score)
			assert.Empty(t, s.History)
			assert.Equal(t, PhaseActive, s.Phase)
			assert.Empty(t, rec.Named(analytics.EventAnswer))
		})
	}
}

func TestSubmitDuringFeedback(t *testing.T) {
	s, _ := newTestSession(t, queued(intQ("7 × 8", 56)), problemgen.ModeMultiplication)

	_, err := s.Submit("56")
	require.NoError(t, err)

	_, err = s.Submit("56")
	assert.ErrorIs(t, err, ErrAwaitingNext)
	assert.Equal(t, Score{Correct: 1}, s.Score)
	assert.Len(t, s.History, 1)
}

func TestNextAdvances(t *testing.T) {
	gen := queued(intQ("7 × 8", 56), intQ("3 × 4", 12))
	s, _ := newTestSession(t, gen, problemgen.ModeMultiplication)

	_, err := s.Submit("56")
	require.NoError(t, err)
	require.NoError(t, s.Next())

	assert.Equal(t, "3 × 4", s.Current.Text)
	assert.Equal(t, PhaseActive, s.Phase)

	out, err := s.Submit("11")
	require.NoError(t, err)
	assert.False(t, out.Correct)

	// Most recent first.
	require.Len(t, s.History, 2)
	assert.Equal(t, "3 × 4 = 11 ❌ (Should be 12)", s.History[0].String())
	assert.Equal(t, "7 × 8 = 56 ✅", s.History[1].String())
}

func TestSwitchModePreservesScoreAndHistory(t *testing.T) {
	gen := queued(intQ("7 × 8", 56), fracQ("1/3 + 1/6", 1, 2))
	s, rec := newTestSession(t, gen, problemgen.ModeMultiplication)

	_, err := s.Submit("56")
	require.NoError(t, err)

	require.NoError(t, s.SwitchMode(problemgen.ModeFractions))

	assert.Equal(t, problemgen.ModeFractions, s.Mode)
	assert.Equal(t, "1/3 + 1/6", s.Current.Text)
	assert.Equal(t, problemgen.ModeFractions, s.Current.Mode)
	assert.Equal(t, PhaseActive, s.Phase)
	assert.Equal(t, Score{Correct: 1}, s.Score)
	require.Len(t, s.History, 1)
	assert.Equal(t, []problemgen.Mode{problemgen.ModeMultiplication, problemgen.ModeFractions}, gen.calls)

	switches := rec.Named(analytics.EventSelectMode)
	require.Len(t, switches, 1)
	assert.Equal(t, s.ID, switches[0].SessionID)
	assert.Equal(t, "fractions", switches[0].Param(analytics.ParamMathMode))
}

func TestSwitchModeDiscardsUnansweredQuestion(t *testing.T) {
	gen := queued(intQ("7 × 8", 56), intQ("20 ÷ 5", 4))
	s, _ := newTestSession(t, gen, problemgen.ModeMultiplication)

	require.NoError(t, s.SwitchMode(problemgen.ModeDivision))

	assert.Equal(t, "20 ÷ 5", s.Current.Text)
	assert.Equal(t, Score{}, s.Score)
	assert.Empty(t, s.History)
}

func TestSwitchModeUnknown(t *testing.T) {
	s, rec := newTestSession(t, queued(intQ("7 × 8", 56)), problemgen.ModeMultiplication)

	err := s.SwitchMode("geometry")
	assert.ErrorIs(t, err, problemgen.ErrUnknownMode)
	assert.Equal(t, problemgen.ModeMultiplication, s.Mode)
	assert.Empty(t, rec.Named(analytics.EventSelectMode))
}

func TestSwitchModeGenerateErrorKeepsSession(t *testing.T) {
	gen := queued(intQ("7 × 8", 56))
	gen.queue = append(gen.queue, stubResult{err: problemgen.ErrRetryLimit})
	s, rec := newTestSession(t, gen, problemgen.ModeMultiplication)

	err := s.SwitchMode(problemgen.ModeFractions)
	assert.ErrorIs(t, err, problemgen.ErrRetryLimit)
	assert.Equal(t, []problemgen.Mode{problemgen.ModeMultiplication, problemgen.ModeFractions}, gen.calls)

	assert.Equal(t, problemgen.ModeMultiplication, s.Mode)
	assert.Equal(t, "7 × 8", s.Current.Text)
	assert.Equal(t, PhaseActive, s.Phase)
	assert.Empty(t, rec.Named(analytics.EventSelectMode))
	assert.Len(t, rec.Events, 1)

	out, err := s.Submit("56")
	require.NoError(t, err)
	assert.True(t, out.Accepted)
	assert.True(t, out.Correct)
	assert.Equal(t, problemgen.ModeMultiplication, out.Entry.Mode)
	require.Contains(t, s.PerMode, problemgen.ModeMultiplication)
	assert.Equal(t, 1, s.PerMode[problemgen.ModeMultiplication].Correct)
	assert.NotContains(t, s.PerMode, problemgen.ModeFractions)
}

func TestGenerateRetriesRetryableValidation(t *testing.T) {
	retryable := &problemgen.ValidationError{Validator: "math-check", Message: "mismatch", Retryable: true}
	gen := &stubGenerator{queue: []stubResult{
		{err: retryable},
		{err: retryable},
		{q: intQ("9 × 9", 81)},
	}}

	s, _ := newTestSession(t, gen, problemgen.ModeMultiplication)
	assert.Equal(t, "9 × 9", s.Current.Text)
	assert.Len(t, gen.calls, 3)
}

func TestGenerateGivesUp(t *testing.T) {
	retryable := &problemgen.ValidationError{Validator: "math-check", Message: "mismatch", Retryable: true}
	fatal := &problemgen.ValidationError{Validator: "structural", Message: "empty text"}

	tests := []struct {
		name      string
		queue     []stubResult
		wantCalls int
	}{
		{"retryable exhausted", []stubResult{{err: retryable}, {err: retryable}, {err: retryable}}, 3},
		{"not retryable", []stubResult{{err: fatal}}, 1},
		{"retry limit", []stubResult{{err: problemgen.ErrRetryLimit}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &stubGenerator{queue: tt.queue}
			_, err := New(gen, nil, problemgen.ModeOrder)
			require.Error(t, err)
			assert.Len(t, gen.calls, tt.wantCalls)
			assert.Contains(t, err.Error(), "next order question")
		})
	}
}

func TestNextErrorKeepsQuestion(t *testing.T) {
	gen := queued(intQ("7 × 8", 56))
	gen.queue = append(gen.queue, stubResult{err: problemgen.ErrRetryLimit})
	s, _ := newTestSession(t, gen, problemgen.ModeMultiplication)

	_, err := s.Submit("56")
	require.NoError(t, err)

	err = s.Next()
	assert.ErrorIs(t, err, problemgen.ErrRetryLimit)
	assert.Equal(t, "7 × 8", s.Current.Text)
	assert.Equal(t, PhaseFeedback, s.Phase)
}

func TestEnd(t *testing.T) {
	gen := queued(intQ("7 × 8", 56), intQ("20 ÷ 5", 4), intQ("3 × 3", 9))
	s, rec := newTestSession(t, gen, problemgen.ModeMultiplication)

	start := time.Date(2024, 9, 17, 10, 0, 0, 0, time.UTC)
	s.StartTime = start
	s.now = func() time.Time { return start.Add(90 * time.Second) }

	_, err := s.Submit("56")
	require.NoError(t, err)
	require.NoError(t, s.SwitchMode(problemgen.ModeDivision))
	_, err = s.Submit("5")
	require.NoError(t, err)

	summary := s.End()
	assert.Equal(t, 90*time.Second, summary.Duration)
	assert.Equal(t, 2, summary.Answered)
	assert.Equal(t, 1, summary.Correct)
	assert.InDelta(t, 0.5, summary.Accuracy, 1e-9)
	require.Len(t, summary.ModeResults, 2)
	assert.Equal(t, problemgen.ModeMultiplication, summary.ModeResults[0].Mode)
	assert.Equal(t, 1, summary.ModeResults[0].Correct)
	assert.Equal(t, problemgen.ModeDivision, summary.ModeResults[1].Mode)
	assert.Equal(t, 0, summary.ModeResults[1].Correct)

	ends := rec.Named(analytics.EventSessionEnd)
	require.Len(t, ends, 1)
	assert.Equal(t, map[string]string{
		analytics.ParamMathMode:          "division",
		analytics.ParamQuestionsAnswered: "2",
		analytics.ParamCorrectAnswers:    "1",
		analytics.ParamDurationSecs:      "90",
	}, ends[0].Params)

	// Idempotent.
	s.now = func() time.Time { return start.Add(time.Hour) }
	again := s.End()
	assert.Equal(t, summary, again)
	assert.Len(t, rec.Named(analytics.EventSessionEnd), 1)

	_, err = s.Submit("9")
	assert.ErrorIs(t, err, ErrEnded)
	assert.ErrorIs(t, s.Next(), ErrEnded)
	assert.ErrorIs(t, s.SwitchMode(problemgen.ModeOrder), ErrEnded)
}

func TestScoreMatchesHistory(t *testing.T) {
	src := rand.New(rand.NewPCG(7, 11))
	gen := problemgen.New(src, problemgen.DefaultConfig())
	s, _ := newTestSession(t, gen, problemgen.ModeMultiplication)

	for i := 0; i < 200; i++ {
		if i%25 == 0 {
			require.NoError(t, s.SwitchMode(problemgen.Modes[(i/25)%len(problemgen.Modes)]))
		}

		// Alternate between the right answer, a wrong one and junk.
		var raw string
		switch i % 3 {
		case 0:
			raw = s.Current.Answer.String()
		case 1:
			raw = "0/1"
			if s.Mode != problemgen.ModeFractions {
				raw = "-1"
			}
		case 2:
			raw = ""
		}

		before := len(s.History)
		out, err := s.Submit(raw)
		require.NoError(t, err)
		if out.Accepted {
			require.Len(t, s.History, before+1)
			assert.Equal(t, out.Entry, s.History[0])
			require.NoError(t, s.Next())
		} else {
			require.Len(t, s.History, before)
		}

		assert.Equal(t, len(s.History), s.Score.Correct+s.Score.Wrong)
	}

	for _, e := range s.History {
		if e.Correct {
			assert.True(t, strings.HasSuffix(e.String(), "✅"), e.String())
		} else {
			assert.Contains(t, e.String(), "❌ (Should be "+e.Expected+")")
		}
	}
}

func TestModeProgressRecord(t *testing.T) {
	mp := &ModeProgress{Mode: problemgen.ModeOrder}
	mp.Record(true)
	mp.Record(false)
	mp.Record(true)
	mp.Record(true)

	assert.Equal(t, 4, mp.Attempted)
	assert.Equal(t, 3, mp.Correct)
	assert.InDelta(t, 0.75, mp.Accuracy, 1e-9)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "active", PhaseActive.String())
	assert.Equal(t, "feedback", PhaseFeedback.String())
	assert.Equal(t, "ended", PhaseEnded.String())
}

func TestNilReporterIsNop(t *testing.T) {
	s, err := New(queued(intQ("7 × 8", 56)), nil, problemgen.ModeMultiplication)
	require.NoError(t, err)
	_, err = s.Submit("56")
	require.NoError(t, err)
	assert.NotPanics(t, func() { s.End() })
}

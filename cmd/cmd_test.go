package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/analytics"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/store"
)

type fixedGenerator struct{}

func (fixedGenerator) Generate(mode problemgen.Mode) (*problemgen.Question, error) {
	if mode == problemgen.ModeFractions {
		return &problemgen.Question{
			Text:   "1/4 + 1/4",
			Answer: problemgen.FractionAnswer(problemgen.Fraction{Num: 1, Den: 2}),
			Mode:   mode,
		}, nil
	}
	return &problemgen.Question{Text: "7 × 8", Answer: problemgen.IntegerAnswer(56), Mode: mode}, nil
}

func noDelay(t *testing.T) {
	t.Helper()
	old := playDelay
	playDelay = 0
	t.Cleanup(func() { playDelay = old })
}

func runPlayLoop(t *testing.T, input string, mode problemgen.Mode) (string, *analytics.Recorder) {
	t.Helper()
	noDelay(t)
	var out bytes.Buffer
	rec := &analytics.Recorder{}
	err := playLoop(strings.NewReader(input), &out, fixedGenerator{}, rec, mode)
	require.NoError(t, err)
	return out.String(), rec
}

func TestPlayLoop_ScoresAnswers(t *testing.T) {
	out, rec := runPlayLoop(t, "56\n\n54\n:quit\n", problemgen.ModeMultiplication)

	assert.Contains(t, out, "Mode: Multiplication")
	assert.Contains(t, out, "7 × 8 = ")
	assert.Contains(t, out, "✓ Correct!")
	assert.Contains(t, out, "Type a number.")
	assert.Contains(t, out, "Should be 56")
	assert.Contains(t, out, "7 × 8 = 54 ❌ (Should be 56)")
	assert.Contains(t, out, "Summary: 1/2 correct (50%)")

	assert.Len(t, rec.Named(analytics.EventAnswer), 2)
	assert.Len(t, rec.Named(analytics.EventSessionEnd), 1)
}

func TestPlayLoop_ModeSwitch(t *testing.T) {
	out, rec := runPlayLoop(t, ":mode Fractions\n1/\n2/4\n", problemgen.ModeMultiplication)

	assert.Contains(t, out, "Mode: Fractions")
	assert.Contains(t, out, "1/4 + 1/4 = ")
	assert.Contains(t, out, "Type your answer like 3/4.")
	assert.Contains(t, out, "✓ Correct!")

	switches := rec.Named(analytics.EventSelectMode)
	require.Len(t, switches, 1)
	assert.Equal(t, "fractions", switches[0].Param(analytics.ParamMathMode))
}

func TestPlayLoop_UnknownMode(t *testing.T) {
	out, rec := runPlayLoop(t, ":mode algebra\n:q\n", problemgen.ModeDivision)

	assert.Contains(t, out, `Unknown mode "algebra"`)
	assert.Empty(t, rec.Named(analytics.EventSelectMode))
	assert.Contains(t, out, "No questions answered")
}

func TestPlayLoop_NonNumericIsWrong(t *testing.T) {
	out, _ := runPlayLoop(t, "fifty-six\n", problemgen.ModeMultiplication)

	assert.Contains(t, out, "Should be 56")
	assert.Contains(t, out, "Summary: 0/1 correct")
}

func TestPlayLoop_Delay(t *testing.T) {
	old := playDelay
	playDelay = 20 * time.Millisecond
	t.Cleanup(func() { playDelay = old })

	start := time.Now()
	require.NoError(t, playLoop(strings.NewReader("56\n"), &bytes.Buffer{}, fixedGenerator{}, analytics.Nop{}, problemgen.ModeMultiplication))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestResolveMode(t *testing.T) {
	newCmd := func(v string) *cobra.Command {
		c := &cobra.Command{}
		c.Flags().String("mode", v, "")
		return c
	}

	_, ok, err := resolveMode(newCmd(""))
	require.NoError(t, err)
	assert.False(t, ok)

	mode, ok, err := resolveMode(newCmd(" ORDER "))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, problemgen.ModeOrder, mode)

	_, _, err = resolveMode(newCmd("algebra"))
	assert.ErrorIs(t, err, problemgen.ErrUnknownMode)
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPrintStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for _, a := range []store.AnswerEventData{
		{SessionID: "s1", Mode: "multiplication", QuestionText: "7 × 8", ExpectedAnswer: "56", LearnerAnswer: "56", Correct: true},
		{SessionID: "s1", Mode: "multiplication", QuestionText: "6 × 6", ExpectedAnswer: "36", LearnerAnswer: "35", Correct: false},
		{SessionID: "s1", Mode: "fractions", QuestionText: "1/4 + 1/4", ExpectedAnswer: "1/2", LearnerAnswer: "2/4", Correct: true},
	} {
		require.NoError(t, repo.AppendAnswerEvent(ctx, a))
	}
	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: "s1", Action: store.SessionActionEnd, Mode: "fractions",
		QuestionsAnswered: 3, CorrectAnswers: 2, DurationSecs: 75,
	}))

	var out bytes.Buffer
	require.NoError(t, printStats(ctx, &out, repo, 5))

	got := out.String()
	assert.Contains(t, got, "Multiplication")
	assert.Contains(t, got, "Fractions")
	assert.Contains(t, got, "Total")
	assert.Contains(t, got, "67%")
	assert.Contains(t, got, "1:15")
}

func TestPrintStats_Empty(t *testing.T) {
	s := openTestStore(t)
	var out bytes.Buffer
	require.NoError(t, printStats(context.Background(), &out, s.EventRepo(), 5))
	assert.Contains(t, out.String(), "No answers recorded yet.")
}

func TestPrintAnalyticsEvents(t *testing.T) {
	var out bytes.Buffer
	printAnalyticsEvents(&out, []store.AnalyticsEventRecord{{
		Sequence:  3,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		AnalyticsEventData: store.AnalyticsEventData{
			SessionID: "0123456789abcdef",
			Name:      analytics.EventSelectMode,
			Params:    map[string]string{"math_mode": "order", "b": "2"},
		},
	}})

	got := out.String()
	assert.Contains(t, got, "select_math_mode")
	assert.Contains(t, got, "01234567 ")
	assert.Contains(t, got, "b=2 math_mode=order")

	out.Reset()
	printAnalyticsEvents(&out, nil)
	assert.Equal(t, "No events found.\n", out.String())
}

func TestPrintAnswerEvents(t *testing.T) {
	var out bytes.Buffer
	printAnswerEvents(&out, []store.AnswerEventRecord{{
		Sequence: 1,
		AnswerEventData: store.AnswerEventData{
			Mode: "division", QuestionText: "36 ÷ 4", ExpectedAnswer: "9", LearnerAnswer: "8",
		},
	}})
	assert.Contains(t, out.String(), "36 ÷ 4")
	assert.Contains(t, out.String(), "✗")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "mathdrill (devel)\n", out.String())
}

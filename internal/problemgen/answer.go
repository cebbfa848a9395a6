package problemgen

import (
	"errors"
	"strconv"
	"strings"
)

// Result is the outcome of checking one learner submission.
type Result struct {
	// Accepted is false when the input is malformed (empty, or not "a/b"
	// in fraction mode). Rejected input is neither scored nor recorded.
	Accepted bool

	// Correct reports whether an accepted answer matches the canonical one.
	Correct bool

	// UserAnswer is the learner's answer as it should appear in history.
	UserAnswer string
}

// CheckAnswer compares the learner's raw input with the canonical answer
// for a question of the given mode.
//
// Normalization rules:
//   - Whitespace is trimmed; empty input is rejected.
//   - Fraction mode requires "a/b" with non-negative integers and b != 0,
//     otherwise the input is rejected. Both sides are reduced before
//     comparison, so "2/4" matches 1/2. A well-formed fraction too large
//     to represent is accepted and scored wrong.
//   - Other modes parse the input as a number. Input that is not a number
//     is accepted and scored wrong.
func CheckAnswer(mode Mode, raw string, canonical Answer) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{}
	}

	if mode == ModeFractions {
		return checkFraction(raw, canonical)
	}
	return checkNumber(raw, canonical)
}

func checkFraction(raw string, canonical Answer) Result {
	f, err := ParseFraction(raw)
	if errors.Is(err, ErrFractionTooLarge) {
		return Result{Accepted: true, UserAnswer: strings.Join(strings.Fields(raw), "")}
	}
	if err != nil {
		return Result{}
	}
	return Result{
		Accepted:   true,
		Correct:    canonical.Kind == AnswerFraction && f.Reduced() == canonical.Fraction,
		UserAnswer: f.String(),
	}
}

func checkNumber(raw string, canonical Answer) Result {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return Result{Accepted: true, UserAnswer: raw}
	}
	return Result{
		Accepted:   true,
		Correct:    canonical.Kind == AnswerInteger && v == float64(canonical.Value),
		UserAnswer: strconv.FormatFloat(v, 'f', -1, 64),
	}
}

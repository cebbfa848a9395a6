package problemgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the arithmetic category questions are drawn from.
type Mode string

const (
	ModeMultiplication Mode = "multiplication"
	ModeDivision       Mode = "division"
	ModeOrder          Mode = "order"
	ModeFractions      Mode = "fractions"
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeMultiplication, ModeDivision, ModeOrder, ModeFractions}

// ParseMode resolves a mode name. Matching is case-insensitive and
// surrounding whitespace is ignored.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeMultiplication, ModeDivision, ModeOrder, ModeFractions:
		return true
	}
	return false
}

// DisplayName returns the human-readable name shown in menus.
func (m Mode) DisplayName() string {
	switch m {
	case ModeMultiplication:
		return "Multiplication"
	case ModeDivision:
		return "Division"
	case ModeOrder:
		return "Order of Operations"
	case ModeFractions:
		return "Fractions"
	default:
		return string(m)
	}
}

// AnswerKind tags which field of an Answer is meaningful.
type AnswerKind int

const (
	AnswerInteger AnswerKind = iota
	AnswerFraction
)

func (k AnswerKind) String() string {
	if k == AnswerFraction {
		return "fraction"
	}
	return "integer"
}

// Answer is the canonical value a question is checked against.
// Integer answers use Value; fraction answers use Fraction, which is
// always in lowest terms.
type Answer struct {
	Kind     AnswerKind
	Value    int
	Fraction Fraction
}

// IntegerAnswer builds an integer answer.
func IntegerAnswer(v int) Answer {
	return Answer{Kind: AnswerInteger, Value: v}
}

// FractionAnswer builds a fraction answer, reducing f first.
func FractionAnswer(f Fraction) Answer {
	return Answer{Kind: AnswerFraction, Fraction: Simplify(f.Num, f.Den)}
}

// String renders the answer the way it is shown to the learner,
// e.g. "56" or "3/5".
func (a Answer) String() string {
	if a.Kind == AnswerFraction {
		return a.Fraction.String()
	}
	return strconv.Itoa(a.Value)
}

// Question is a generated drill question ready for display.
type Question struct {
	// Text is the expression shown to the learner, e.g. "7 × 8" or
	// "1/3 + 4/6". Uses the ×, ÷ and − glyphs.
	Text string

	// Answer is the canonical correct answer.
	Answer Answer

	// Mode is the mode this question was generated for.
	Mode Mode
}

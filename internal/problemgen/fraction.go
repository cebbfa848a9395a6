package problemgen

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrMalformedAnswer is returned when fraction input is not "a/b".
	ErrMalformedAnswer = errors.New("answer must look like 3/4")

	// ErrZeroDenominator is returned for fraction input with a zero denominator.
	ErrZeroDenominator = errors.New("denominator cannot be zero")

	// ErrFractionTooLarge is returned for well-formed fraction input whose
	// numerator or denominator does not fit in an int.
	ErrFractionTooLarge = errors.New("fraction too large")
)

// fractionInputRe matches learner fraction input: "3/4", " 3 / 4 ".
var fractionInputRe = regexp.MustCompile(`^\s*(\d+)\s*/\s*(\d+)\s*$`)

// Fraction is a numerator/denominator pair. It is not reduced unless it
// came from Simplify or Reduced.
type Fraction struct {
	Num int
	Den int
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Reduced returns f in lowest terms.
func (f Fraction) Reduced() Fraction {
	return Simplify(f.Num, f.Den)
}

// IsReduced reports whether f is already in lowest terms with a positive
// denominator. Zero must be written 0/1.
func (f Fraction) IsReduced() bool {
	if f.Den <= 0 {
		return false
	}
	if f.Num == 0 {
		return f.Den == 1
	}
	return gcd(abs(f.Num), f.Den) == 1
}

// Simplify reduces num/den to lowest terms. A zero numerator always
// yields 0/1. den must be positive.
func Simplify(num, den int) Fraction {
	if num == 0 {
		return Fraction{Num: 0, Den: 1}
	}
	g := gcd(abs(num), den)
	return Fraction{Num: num / g, Den: den / g}
}

// ParseFraction parses learner input of the form "a/b" with optional
// whitespace around each part. The result is not reduced.
func ParseFraction(s string) (Fraction, error) {
	m := fractionInputRe.FindStringSubmatch(s)
	if m == nil {
		return Fraction{}, ErrMalformedAnswer
	}
	// The pattern only admits digits, so Atoi can only fail on range.
	num, numErr := strconv.Atoi(m[1])
	den, denErr := strconv.Atoi(m[2])
	if denErr == nil && den == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	if numErr != nil || denErr != nil {
		return Fraction{}, ErrFractionTooLarge
	}
	return Fraction{Num: num, Den: den}, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

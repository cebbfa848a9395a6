package problemgen

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrUnknownMode is returned for a mode outside Modes.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrRetryLimit is returned when a regenerate-until loop exhausts
	// Config.MaxAttempts without an acceptable draw.
	ErrRetryLimit = errors.New("retry limit exceeded")
)

// Generator produces drill questions.
type Generator interface {
	// Generate produces a single question for the given mode.
	// All configured validators are run before returning.
	Generate(mode Mode) (*Question, error)
}

// Source supplies uniform random integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the math/rand/v2 top-level generator.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// RandomGenerator implements Generator with template-based random draws.
type RandomGenerator struct {
	src Source
	cfg Config
}

var _ Generator = (*RandomGenerator)(nil)

// New creates a RandomGenerator. A nil src uses the process-wide
// math/rand/v2 generator.
func New(src Source, cfg Config) *RandomGenerator {
	if src == nil {
		src = globalSource{}
	}
	return &RandomGenerator{src: src, cfg: cfg}
}

func (g *RandomGenerator) Generate(mode Mode) (*Question, error) {
	var (
		q   *Question
		err error
	)
	switch mode {
	case ModeMultiplication:
		q = g.multiplication()
	case ModeDivision:
		q = g.division()
	case ModeOrder:
		q, err = g.order()
	case ModeFractions:
		q, err = g.fractions()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if err != nil {
		return nil, fmt.Errorf("generate %s question: %w", mode, err)
	}
	q.Mode = mode

	for _, v := range g.cfg.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}
	return q, nil
}

// randInt returns a uniform integer in [min, max]. An empty range
// (max < min) yields min.
func (g *RandomGenerator) randInt(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.src.IntN(max-min+1)
}

// pick returns a uniformly chosen element of xs.
func pick[T any](g *RandomGenerator, xs []T) T {
	return xs[g.randInt(0, len(xs)-1)]
}

// retryUntil calls draw until accept holds, at most max times (no cap
// when max <= 0). Every draw is independent, so an accepted value is
// uniform over the accepted set.
func retryUntil[T any](max int, draw func() T, accept func(T) bool) (T, error) {
	var v T
	for i := 0; max <= 0 || i < max; i++ {
		v = draw()
		if accept(v) {
			return v, nil
		}
	}
	return v, fmt.Errorf("%w after %d attempts", ErrRetryLimit, max)
}

package problemgen

import (
	"fmt"
	"os"
	"strconv"
)

// Config controls the behavior of the RandomGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxOrderAnswer bounds the magnitude of order-of-operations answers.
	// Draws with |answer| above it are regenerated.
	MaxOrderAnswer int

	// MaxAttempts caps every regenerate-until loop. Zero means no cap.
	MaxAttempts int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&MathCheckValidator{},
		},
		MaxOrderAnswer: 500,
		MaxAttempts:    10000,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("MATHDRILL_MAX_ORDER_ANSWER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("MATHDRILL_MAX_ORDER_ANSWER must be a positive integer, got %q", v)
		}
		cfg.MaxOrderAnswer = n
	}

	if v := os.Getenv("MATHDRILL_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("MATHDRILL_MAX_ATTEMPTS must be a non-negative integer, got %q", v)
		}
		cfg.MaxAttempts = n
	}

	return cfg, nil
}

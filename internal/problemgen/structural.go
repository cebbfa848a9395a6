package problemgen

// StructuralValidator checks that the question text is present and the
// answer has the shape its mode requires.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question text is empty",
			Retryable: true,
		}
	}
	if !q.Mode.Valid() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "unknown mode " + string(q.Mode),
		}
	}

	wantKind := AnswerInteger
	if q.Mode == ModeFractions {
		wantKind = AnswerFraction
	}
	if q.Answer.Kind != wantKind {
		return &ValidationError{
			Validator: v.Name(),
			Message:   q.Answer.Kind.String() + " answer for " + string(q.Mode) + " question",
		}
	}
	if wantKind == AnswerFraction && !q.Answer.Fraction.IsReduced() {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "fraction answer " + q.Answer.Fraction.String() + " is not in lowest terms",
		}
	}
	return nil
}

package problemgen

import (
	"errors"
	"fmt"
	"math/big"
	"unicode"
)

// MathCheckValidator independently evaluates the question text and
// compares the result with the canonical answer. It understands the
// display glyphs (×, ÷, −), ASCII operators, parentheses and the usual
// precedence, so "1/3 + 4/6" evaluates as a sum of two fractions.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question) *ValidationError {
	got, err := Evaluate(q.Text)
	if err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("cannot evaluate %q: %v", q.Text, err),
		}
	}
	if !answerMatches(got, q.Answer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %s but answer is %s", got.RatString(), q.Answer),
			Retryable: true,
		}
	}
	return nil
}

// answerMatches reports whether the exact value r equals a.
func answerMatches(r *big.Rat, a Answer) bool {
	if a.Kind == AnswerFraction {
		return r.Num().IsInt64() && r.Num().Int64() == int64(a.Fraction.Num) &&
			r.Denom().IsInt64() && r.Denom().Int64() == int64(a.Fraction.Den)
	}
	return r.IsInt() && r.Num().IsInt64() && r.Num().Int64() == int64(a.Value)
}

var errDivByZero = errors.New("division by zero")

// Evaluate computes the exact value of an arithmetic expression made of
// non-negative integers, + - − × * ÷ / and parentheses.
func Evaluate(text string) (*big.Rat, error) {
	p := &exprParser{src: []rune(text)}
	r, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.src[p.pos], p.pos)
	}
	return r, nil
}

// exprParser is a recursive-descent parser over the expression runes.
type exprParser struct {
	src []rune
	pos int
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.src) && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

// peekOp returns the operator at the cursor, normalized to ASCII, or 0.
func (p *exprParser) peekOp() rune {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return normalizeOp(p.src[p.pos])
}

func (p *exprParser) parseSum() (*big.Rat, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peekOp()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		if op == '+' {
			left.Add(left, right)
		} else {
			left.Sub(left, right)
		}
	}
}

func (p *exprParser) parseProduct() (*big.Rat, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peekOp()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			left.Mul(left, right)
			continue
		}
		if right.Sign() == 0 {
			return nil, errDivByZero
		}
		left.Quo(left, right)
	}
}

func (p *exprParser) parseFactor() (*big.Rat, error) {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return nil, errors.New("unexpected end of expression")
	}

	if p.src[p.pos] == '(' {
		p.pos++
		r, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] != ')' {
			return nil, errors.New("missing closing parenthesis")
		}
		p.pos++
		return r, nil
	}

	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return nil, fmt.Errorf("expected number at offset %d", start)
	}
	r, ok := new(big.Rat).SetString(string(p.src[start:p.pos]))
	if !ok {
		return nil, fmt.Errorf("invalid number %q", string(p.src[start:p.pos]))
	}
	return r, nil
}

// normalizeOp maps display glyphs to their ASCII operators.
func normalizeOp(r rune) rune {
	switch r {
	case '×':
		return '*'
	case '÷':
		return '/'
	case '−':
		return '-'
	case '+', '-', '*', '/':
		return r
	default:
		return 0
	}
}

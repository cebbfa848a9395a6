package problemgen

import "fmt"

// sameDenominators are the denominators used by same-denominator templates.
var sameDenominators = []int{2, 3, 4, 5, 6, 8}

// fractionExpr is a drawn fraction problem before it becomes a Question.
type fractionExpr struct {
	text   string
	answer Fraction
}

// fractionDraw is one resampled set of operands.
type fractionDraw struct {
	den, n1, n2 int
}

func fractionText(n1, d1 int, op string, n2, d2 int) string {
	return fmt.Sprintf("%d/%d %s %d/%d", n1, d1, op, n2, d2)
}

// fractionTemplates are the fraction forms. Every answer is reduced.
var fractionTemplates = []func(g *RandomGenerator) (fractionExpr, error){
	// Same denominator addition; the whole draw is resampled until the
	// sum stays below one.
	func(g *RandomGenerator) (fractionExpr, error) {
		d, err := retryUntil(g.cfg.MaxAttempts,
			func() fractionDraw {
				den := pick(g, sameDenominators)
				return fractionDraw{den: den, n1: g.randInt(1, den-1), n2: g.randInt(1, den-1)}
			},
			func(d fractionDraw) bool { return d.n1+d.n2 < d.den },
		)
		if err != nil {
			return fractionExpr{}, err
		}
		return fractionExpr{
			text:   fractionText(d.n1, d.den, "+", d.n2, d.den),
			answer: Simplify(d.n1+d.n2, d.den),
		}, nil
	},
	// Same denominator subtraction with a positive result.
	func(g *RandomGenerator) (fractionExpr, error) {
		den := pick(g, sameDenominators)
		n1 := g.randInt(2, den-1)
		n2 := g.randInt(1, n1-1)
		return fractionExpr{
			text:   fractionText(n1, den, "−", n2, den),
			answer: Simplify(n1-n2, den),
		}, nil
	},
	// Halves plus fourths.
	func(g *RandomGenerator) (fractionExpr, error) {
		n1 := g.randInt(1, 1)
		n2 := g.randInt(1, 3)
		return fractionExpr{
			text:   fractionText(n1, 2, "+", n2, 4),
			answer: Simplify(n1*2+n2, 4),
		}, nil
	},
	// Thirds plus sixths.
	func(g *RandomGenerator) (fractionExpr, error) {
		n1 := g.randInt(1, 2)
		n2 := g.randInt(1, 5)
		return fractionExpr{
			text:   fractionText(n1, 3, "+", n2, 6),
			answer: Simplify(n1*2+n2, 6),
		}, nil
	},
	// Fourths minus halves, resampled until the result is not negative.
	func(g *RandomGenerator) (fractionExpr, error) {
		d, err := retryUntil(g.cfg.MaxAttempts,
			func() fractionDraw {
				return fractionDraw{den: 4, n1: g.randInt(2, 3), n2: g.randInt(1, 1)}
			},
			func(d fractionDraw) bool { return d.n1 >= d.n2*2 },
		)
		if err != nil {
			return fractionExpr{}, err
		}
		return fractionExpr{
			text:   fractionText(d.n1, 4, "−", d.n2, 2),
			answer: Simplify(d.n1-d.n2*2, 4),
		}, nil
	},
}

// fractions picks one of the fraction templates uniformly.
func (g *RandomGenerator) fractions() (*Question, error) {
	e, err := pick(g, fractionTemplates)(g)
	if err != nil {
		return nil, err
	}
	return &Question{Text: e.text, Answer: FractionAnswer(e.answer)}, nil
}

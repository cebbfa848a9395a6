package problemgen

import "fmt"

// expr is a drawn expression before it becomes a Question.
type expr struct {
	text   string
	answer int
}

// orderTemplates are the order-of-operations forms, each drawing small
// operands. Division operands are built as b*q so the quotient is whole.
var orderTemplates = []func(g *RandomGenerator) expr{
	// a + b × c
	func(g *RandomGenerator) expr {
		a, b, c := g.randInt(1, 20), g.randInt(2, 10), g.randInt(2, 10)
		return expr{fmt.Sprintf("%d + %d × %d", a, b, c), a + b*c}
	},
	// (a + b) × c
	func(g *RandomGenerator) expr {
		a, b, c := g.randInt(1, 10), g.randInt(1, 10), g.randInt(2, 8)
		return expr{fmt.Sprintf("(%d + %d) × %d", a, b, c), (a + b) * c}
	},
	// a × b + c
	func(g *RandomGenerator) expr {
		a, b, c := g.randInt(2, 12), g.randInt(2, 8), g.randInt(0, 20)
		return expr{fmt.Sprintf("%d × %d + %d", a, b, c), a*b + c}
	},
	// (a − b) + c × d
	func(g *RandomGenerator) expr {
		a, b := g.randInt(5, 20), g.randInt(1, 4)
		c, d := g.randInt(2, 8), g.randInt(1, 6)
		return expr{fmt.Sprintf("(%d − %d) + %d × %d", a, b, c, d), (a - b) + c*d}
	},
	// a ÷ b + c
	func(g *RandomGenerator) expr {
		b, q := g.randInt(2, 8), g.randInt(1, 8)
		c := g.randInt(0, 15)
		return expr{fmt.Sprintf("%d ÷ %d + %d", b*q, b, c), q + c}
	},
}

// order picks a template uniformly and redraws template and operands
// until the answer fits within MaxOrderAnswer.
func (g *RandomGenerator) order() (*Question, error) {
	e, err := retryUntil(g.cfg.MaxAttempts,
		func() expr { return pick(g, orderTemplates)(g) },
		func(e expr) bool { return g.cfg.MaxOrderAnswer <= 0 || abs(e.answer) <= g.cfg.MaxOrderAnswer },
	)
	if err != nil {
		return nil, err
	}
	return &Question{Text: e.text, Answer: IntegerAnswer(e.answer)}, nil
}

package problemgen

import "fmt"

// multiplication draws both factors from [2,12].
func (g *RandomGenerator) multiplication() *Question {
	n1 := g.randInt(2, 12)
	n2 := g.randInt(2, 12)
	return &Question{
		Text:   fmt.Sprintf("%d × %d", n1, n2),
		Answer: IntegerAnswer(n1 * n2),
	}
}

// division builds the dividend from divisor and quotient so the
// division is always exact.
func (g *RandomGenerator) division() *Question {
	divisor := g.randInt(2, 12)
	quotient := g.randInt(2, 12)
	return &Question{
		Text:   fmt.Sprintf("%d ÷ %d", divisor*quotient, divisor),
		Answer: IntegerAnswer(quotient),
	}
}

package orca

import (
	"snorkel/internal/core"
	"snorkel/internal/op"
)

// The neighbor accessors return the zero Op when the offset leaves the grid.

func (g *Grid) leftOf(c core.Coord, n int) op.Op  { return g.at(c.Add(-n, 0)) }
func (g *Grid) rightOf(c core.Coord, n int) op.Op { return g.at(c.Add(n, 0)) }
func (g *Grid) aboveOf(c core.Coord, n int) op.Op { return g.at(c.Add(0, -n)) }
func (g *Grid) belowOf(c core.Coord, n int) op.Op { return g.at(c.Add(0, n)) }

// numOr decodes a Val or Result operand and falls back to def otherwise.
func numOr(o op.Op, def int) int {
	if n, ok := o.Num(); ok {
		return n
	}
	return def
}

// param decodes a numeric operand. An absent operand or an undecodable
// character yields missing; any other operator yields other.
func param(o op.Op, missing, other int) int {
	switch {
	case o.IsZero():
		return missing
	case o.IsValue():
		return numOr(o, missing)
	}
	return other
}

// nonZero coerces a zero divisor to 1.
func nonZero(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

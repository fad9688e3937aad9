package orca

import (
	"sort"

	"snorkel/internal/core"
	"snorkel/internal/op"
)

// Variable returns the operator stored under name.
func (g *Grid) Variable(name rune) (op.Op, bool) {
	v, ok := g.vars[name]
	return v, ok
}

// VariableNames lists the names currently bound, in rune order.
func (g *Grid) VariableNames() []rune {
	names := make([]rune, 0, len(g.vars))
	for name := range g.vars {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// opVar has three modes selected by which operands are present:
// name and value stores, name alone removes, and value alone reads the
// variable named by the value into the cell below.
func (g *Grid) opVar(at core.Coord) {
	left, right := g.leftOf(at, 1), g.rightOf(at, 1)
	if left.IsValue() {
		if right.IsZero() {
			delete(g.vars, left.Char)
			return
		}
		g.vars[left.Char] = right
		return
	}
	out := op.NewEmptyResult(at)
	if right.IsValue() {
		if v, ok := g.vars[right.Char]; ok {
			out = v
		}
	}
	g.Set(at.Add(0, 1), out)
}

// opKonkat reads length variable names to the right of itself and writes
// their values into the row below, one column each.
func (g *Grid) opKonkat(at core.Coord) {
	length := max(numOr(g.leftOf(at, 1), 1), 1)
	for i := 1; i <= length; i++ {
		out := op.NewEmptyResult(at)
		if name := g.rightOf(at, i); name.IsValue() {
			if v, ok := g.vars[name.Char]; ok {
				out = v.AsResult()
			}
		}
		g.Set(at.Add(i, 1), out)
	}
}

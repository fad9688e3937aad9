package orca

import (
	"snorkel/internal/core"
	"snorkel/internal/op"
)

// arith combines the left and right operands with f. Letter case of the
// result follows the right operand. A single numeric operand is passed
// through as a result; with none the result is '0'.
func (g *Grid) arith(at core.Coord, f func(l, r int) int) op.Op {
	left, right := g.leftOf(at, 1), g.rightOf(at, 1)
	l, lok := left.Num()
	r, rok := right.Num()
	switch {
	case lok && rok:
		return op.NewResult(op.Encode(f(l, r), op.IsUpper(right.Char)))
	case lok:
		return op.NewResult(left.Char)
	case rok:
		return op.NewResult(right.Char)
	}
	return op.NewResult('0')
}

func (g *Grid) opMul(at core.Coord) op.Op {
	l, lok := g.leftOf(at, 1).Num()
	r, rok := g.rightOf(at, 1).Num()
	if !lok || !rok {
		return op.NewEmptyResult(at)
	}
	return op.NewResult(op.Encode(l*r, false))
}

func (g *Grid) opRand(at core.Coord) op.Op {
	l := numOr(g.leftOf(at, 1), 0)
	r := numOr(g.rightOf(at, 1), op.Radix-1)
	return op.NewResult(op.Encode(g.rng.Range(min(l, r), max(l, r)), false))
}

// opIf compares operands by identity, not by decoded value: Val('1') and
// Result('1') differ.
func (g *Grid) opIf(at core.Coord) op.Op {
	if g.leftOf(at, 1) == g.rightOf(at, 1) {
		return op.NewBang(g.frame)
	}
	return op.NewEmptyResult(at)
}

func (g *Grid) opClock(at core.Coord) (op.Op, bool) {
	rate := nonZero(param(g.leftOf(at, 1), 1, 1))
	modulo := nonZero(param(g.rightOf(at, 1), 8, 1))
	cur := g.belowOf(at, 1)
	if cur.IsZero() {
		return op.NewResult('0'), true
	}
	if g.frame%uint(rate) != 0 {
		return cur, true
	}
	n, ok := cur.Num()
	if !ok {
		return op.Op{}, false
	}
	return op.NewResult(op.Encode((n+1)%modulo, false)), true
}

func (g *Grid) opDelay(at core.Coord) op.Op {
	rate := nonZero(param(g.leftOf(at, 1), 1, 1))
	modulo := nonZero(param(g.rightOf(at, 1), 8, 1))
	if g.frame%uint(rate) == 0 && g.frame%uint(modulo) == 0 {
		return op.NewBang(g.frame)
	}
	return op.NewEmptyResult(at)
}

// opGen copies len+1 cells to the right of the generator into a run that
// starts row-offset rows below and col-offset columns right of it.
func (g *Grid) opGen(at core.Coord) {
	length := param(g.leftOf(at, 1), 0, 0)
	rowOffset := param(g.leftOf(at, 2), 1, 1)
	colOffset := param(g.leftOf(at, 3), 0, 0)
	start := at.Add(colOffset, rowOffset)
	for i := 0; i <= length; i++ {
		src := g.rightOf(at, i+1)
		next := src.AsResult()
		if src.IsZero() {
			next = op.NewEmptyResult(at)
		}
		g.Set(start.Add(i, 0), next)
	}
}

func (g *Grid) opInc(at core.Coord) op.Op {
	step := param(g.leftOf(at, 1), 1, 1)
	modulo := nonZero(param(g.rightOf(at, 1), op.Radix, 1))
	cur := param(g.belowOf(at, 1), 0, 0)
	return op.NewResult(op.Encode((cur+step)%modulo, false))
}

func (g *Grid) opLess(at core.Coord) op.Op {
	l, lok := g.leftOf(at, 1).Num()
	r, rok := g.rightOf(at, 1).Num()
	if !lok || !rok {
		return op.NewEmptyResult(at)
	}
	return op.NewResult(op.Encode(min(l, r), false))
}

// opHold copies the operator below one row further down. Movers are
// re-stamped with the current frame so the copy does not move this tick.
func (g *Grid) opHold(at core.Coord) {
	held := g.belowOf(at, 1)
	next := held.Restamp(g.frame)
	if held.IsZero() {
		next = op.NewEmptyResult(at)
	}
	g.Set(at.Add(0, 2), next)
}

func (g *Grid) opRead(at core.Coord) op.Op {
	x := max(numOr(g.leftOf(at, 2), 1), 1)
	y := numOr(g.leftOf(at, 1), 0)
	src := g.at(at.Add(x, y))
	if src.IsZero() {
		return op.NewEmptyResult(at)
	}
	return src.AsResult()
}

// opWrite stores the right operand at an offset from the cell below the
// writer.
func (g *Grid) opWrite(at core.Coord) {
	val := g.rightOf(at, 1).AsResult()
	if val.IsZero() {
		val = op.NewEmptyResult(at)
	}
	x := numOr(g.leftOf(at, 2), 0)
	y := numOr(g.leftOf(at, 1), 0)
	g.Set(at.Add(x, 1+y), val)
}

func (g *Grid) opPush(at core.Coord) {
	length, ok := g.leftOf(at, 1).Num()
	if !ok || length <= 0 {
		return
	}
	x := numOr(g.leftOf(at, 2), 0) % length
	val := g.rightOf(at, 1).AsResult()
	if val.IsZero() {
		val = op.NewEmptyResult(at)
	}
	g.Set(at.Add(x, 1), val)
}

// opQuery copies count cells starting x-offset+1 columns right and y-offset
// rows below the query into the row below, ending under the query. Indices
// are processed from last to first.
func (g *Grid) opQuery(at core.Coord) {
	count, ok := g.leftOf(at, 1).Num()
	if !ok {
		return
	}
	yOffset, ok := g.leftOf(at, 2).Num()
	if !ok {
		return
	}
	xOffset, ok := g.leftOf(at, 3).Num()
	if !ok {
		return
	}
	base := max(at.X-count, 0)
	for i := count - 1; i >= 0; i-- {
		src := g.at(core.Coord{X: at.X + 1 + xOffset + i, Y: at.Y + yOffset})
		if src.IsZero() {
			continue
		}
		g.Set(core.Coord{X: base + i + 1, Y: at.Y + 1}, src)
	}
}

package orca

import (
	"snorkel/internal/core"
	"snorkel/internal/op"
)

// Tick performs one synchronous in-place pass over the grid. Cells are
// visited row by row, left to right, and every write is visible to cells
// visited later in the same pass. Frame-stamped operators (movers and bangs)
// act at most once per frame.
func (g *Grid) Tick() {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			g.eval(core.Coord{X: x, Y: y})
		}
	}
}

func (g *Grid) eval(at core.Coord) {
	cur := g.at(at)
	below := at.Add(0, 1)

	switch cur.Kind {
	case op.Add:
		g.Set(below, g.arith(at, func(l, r int) int { return l + r }))
	case op.Sub:
		g.Set(below, g.arith(at, func(l, r int) int { return l - r }))
	case op.Mul:
		g.Set(below, g.opMul(at))
	case op.Rand:
		g.Set(below, g.opRand(at))
	case op.If:
		g.Set(below, g.opIf(at))
	case op.Clock:
		if next, ok := g.opClock(at); ok {
			g.Set(below, next)
		}
	case op.Delay:
		g.Set(below, g.opDelay(at))
	case op.East, op.West, op.North, op.South:
		g.move(at, cur)
	case op.Bang:
		if cur.Frame != g.frame {
			g.Delete(at)
		}
	case op.Gen:
		g.opGen(at)
	case op.EmptyResult:
		if g.at(cur.Origin).IsZero() {
			g.Delete(at)
		}
	case op.Inc:
		g.Set(below, g.opInc(at))
	case op.Less:
		g.Set(below, g.opLess(at))
	case op.Jmp:
		g.copyOrClear(below, g.aboveOf(at, 1))
	case op.Ymp:
		g.copyOrClear(at.Add(1, 0), g.leftOf(at, 1))
	case op.Hold:
		g.opHold(at)
	case op.Read:
		g.Set(below, g.opRead(at))
	case op.Write:
		g.opWrite(at)
	case op.Var:
		g.opVar(at)
	case op.Konkat:
		g.opKonkat(at)
	case op.Push:
		g.opPush(at)
	case op.Query:
		g.opQuery(at)
	}
	// Val, Result, Comment, Track, Uclid and Lerp are inert.
}

func (g *Grid) copyOrClear(target core.Coord, src op.Op) {
	if src.IsZero() {
		g.Delete(target)
		return
	}
	g.Set(target, src)
}

func direction(k op.Kind) (dx, dy int) {
	switch k {
	case op.East:
		return 1, 0
	case op.West:
		return -1, 0
	case op.North:
		return 0, -1
	case op.South:
		return 0, 1
	}
	return 0, 0
}

// move advances a mover one cell. A mover facing the edge or an occupied
// cell turns into a bang in place; placeholders do not block movement.
func (g *Grid) move(at core.Coord, cur op.Op) {
	if cur.Frame == g.frame {
		return
	}
	target := at.Add(direction(cur.Kind))
	if !g.InBounds(target) {
		g.Set(at, op.NewBang(g.frame))
		return
	}
	if t := g.at(target); !t.IsZero() && t.Kind != op.EmptyResult {
		g.Set(at, op.NewBang(g.frame))
		return
	}
	g.Delete(at)
	g.Set(target, op.NewMover(cur.Kind, g.frame))
}

package orca

import (
	"snorkel/internal/core"
	"snorkel/internal/history"
	"snorkel/internal/op"
)

// CopySelection returns a row-major snapshot of the cells inside sel. Cells
// outside the grid are reported as empty. Reversed corners are accepted.
func (g *Grid) CopySelection(sel core.Selection) [][]op.Op {
	sel = core.SelectionFrom(core.Coord{X: sel.StartX, Y: sel.StartY}, core.Coord{X: sel.EndX, Y: sel.EndY})
	out := make([][]op.Op, 0, sel.Height())
	for y := sel.StartY; y <= sel.EndY; y++ {
		row := make([]op.Op, 0, sel.Width())
		for x := sel.StartX; x <= sel.EndX; x++ {
			row = append(row, g.at(core.Coord{X: x, Y: y}))
		}
		out = append(out, row)
	}
	return out
}

// PasteSelection writes a snapshot with its top-left corner at origin. Rows
// and columns that fall outside the grid are dropped. The returned batch
// restores every cell that was written or cleared.
func (g *Grid) PasteSelection(origin core.Coord, snapshot [][]op.Op) history.Entry {
	var changes []history.Change
	for y, row := range snapshot {
		ty := origin.Y + y
		if ty >= g.rows {
			break
		}
		if ty < 0 {
			continue
		}
		for x, cell := range row {
			tx := origin.X + x
			if tx >= g.cols {
				break
			}
			if tx < 0 {
				continue
			}
			target := core.Coord{X: tx, Y: ty}
			old, _ := g.Set(target, cell)
			changes = append(changes, history.Change{At: target, Prior: old})
		}
	}
	g.log.Debug("selection pasted", "x", origin.X, "y", origin.Y, "cells", len(changes))
	return history.Batch(changes)
}

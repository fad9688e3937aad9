// Package orca implements the live-programmable operator grid: cell storage,
// the tick evaluator, the variable table, resizing and rectangular
// copy/paste.
package orca

import (
	"io"
	"log/slog"

	"snorkel/internal/core"
	"snorkel/internal/op"
	"snorkel/pkg/rng"
)

// Grid owns a rows x cols matrix of operators together with the frame
// counter and the variable table its operators share.
//
// The backing storage may be larger than the reported bounds after a shrink;
// cells outside Rows x Cols are unreachable until a later grow exposes them
// again.
type Grid struct {
	cfg Config

	rows, cols int
	frame      uint

	data    [][]op.Op
	vars    map[rune]op.Op
	rng     *rng.RNG
	display *core.ByteGrid
	log     *slog.Logger
}

// New returns an empty grid with the provided dimensions using defaults.
func New(rows, cols int) *Grid {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty grid configured from the provided options.
func NewWithConfig(cfg Config) *Grid {
	rows, cols := max(cfg.Rows, 0), max(cfg.Cols, 0)
	data := make([][]op.Op, rows)
	for y := range data {
		data[y] = make([]op.Op, cols)
	}
	return &Grid{
		cfg:     cfg,
		rows:    rows,
		cols:    cols,
		data:    data,
		vars:    make(map[rune]op.Op),
		rng:     rng.New(cfg.Seed),
		display: core.NewByteGrid(cols, rows),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger routes structural events (resize, paste, reset) to l.
func (g *Grid) SetLogger(l *slog.Logger) {
	if l != nil {
		g.log = l
	}
}

// Rows returns the number of visible rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of visible columns.
func (g *Grid) Cols() int { return g.cols }

// Frame returns the current frame counter.
func (g *Grid) Frame() uint { return g.frame }

// SetFrame overwrites the frame counter.
func (g *Grid) SetFrame(f uint) { g.frame = f }

// AdvanceFrame increments the frame counter by one.
func (g *Grid) AdvanceFrame() { g.frame++ }

// InBounds reports whether c addresses a visible cell.
func (g *Grid) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.cols && c.Y < g.rows
}

// Get returns the operator at c. It reports false for empty or out of range
// cells.
func (g *Grid) Get(c core.Coord) (op.Op, bool) {
	o := g.at(c)
	return o, !o.IsZero()
}

// Set writes o at c and returns the previous operator. Out of range writes
// are ignored.
func (g *Grid) Set(c core.Coord, o op.Op) (op.Op, bool) {
	if !g.InBounds(c) {
		return op.Op{}, false
	}
	old := g.data[c.Y][c.X]
	g.data[c.Y][c.X] = o
	return old, !old.IsZero()
}

// Delete clears c and returns the previous operator. Out of range deletes
// are ignored.
func (g *Grid) Delete(c core.Coord) (op.Op, bool) {
	return g.Set(c, op.Op{})
}

// Resize changes the visible bounds. Growing extends the backing storage
// with empty cells; shrinking only narrows the visible bounds, so content in
// the hidden area reappears unchanged after a later grow.
func (g *Grid) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols > g.cols {
		for y := range g.data {
			if diff := cols - len(g.data[y]); diff > 0 {
				g.data[y] = append(g.data[y], make([]op.Op, diff)...)
			}
		}
	}
	g.cols = cols
	for len(g.data) < rows {
		g.data = append(g.data, make([]op.Op, g.cols))
	}
	g.rows = rows
	g.display.Resize(cols, rows)
	g.log.Debug("grid resized", "rows", rows, "cols", cols)
}

func (g *Grid) at(c core.Coord) op.Op {
	if !g.InBounds(c) {
		return op.Op{}
	}
	return g.data[c.Y][c.X]
}

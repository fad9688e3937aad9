package orca

import (
	"strconv"

	"snorkel/internal/core"
	"snorkel/internal/render"
)

// Name implements core.Sim.
func (g *Grid) Name() string { return "orca" }

// Size reports the visible bounds.
func (g *Grid) Size() core.Size { return core.Size{W: g.cols, H: g.rows} }

// Reset clears every cell, the variable table and the frame counter and
// reseeds Rand.
func (g *Grid) Reset(seed int64) {
	for y := range g.data {
		clear(g.data[y])
	}
	clear(g.vars)
	g.frame = 0
	g.cfg.Seed = seed
	g.rng.Seed(seed)
	g.log.Debug("grid reset", "seed", seed)
}

// Step advances the frame and evaluates one tick.
func (g *Grid) Step() {
	g.AdvanceFrame()
	g.Tick()
}

// Cells returns one render.Class per visible cell in row-major order. The
// slice is reused between calls.
func (g *Grid) Cells() []uint8 {
	render.Classify(g, g.display.Cells())
	return g.display.Cells()
}

// Parameters exposes the frame counter, the bounds and the variable table.
func (g *Grid) Parameters() core.ParameterSnapshot {
	vars := make([]core.Parameter, 0, len(g.vars))
	for _, name := range g.VariableNames() {
		r, ok := g.vars[name].Rune()
		if !ok {
			continue
		}
		vars = append(vars, core.StringParam("var."+string(name), string(name), string(r)))
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("frame", "Frame", int(g.frame)),
				core.IntParam("rows", "Rows", g.rows),
				core.IntParam("cols", "Cols", g.cols),
				core.StringParam("seed", "Seed", strconv.FormatInt(g.cfg.Seed, 10)),
			},
		},
		{
			Name:    "Variables",
			Params:  vars,
			Summary: strconv.Itoa(len(vars)) + " bound",
		},
	}}
}

func init() {
	core.Register("orca", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}

// Package ui draws the status bar below the grid.
package ui

import (
	"strconv"
	"strings"

	"snorkel/internal/core"
)

// StatusLine summarises a grid snapshot, the cursor and the run state in a
// single line.
func StatusLine(snap core.ParameterSnapshot, cursor core.Coord, paused bool) string {
	var parts []string
	if p, ok := snap.Lookup("frame"); ok {
		parts = append(parts, "frame "+p.Value)
	}
	rows, rok := snap.Lookup("rows")
	cols, cok := snap.Lookup("cols")
	if rok && cok {
		parts = append(parts, rows.Value+"x"+cols.Value)
	}
	parts = append(parts, "@"+strconv.Itoa(cursor.X)+","+strconv.Itoa(cursor.Y))

	var vars []string
	for _, g := range snap.Groups {
		if g.Name != "Variables" {
			continue
		}
		for _, p := range g.Params {
			vars = append(vars, p.Label+"="+p.Value)
		}
	}
	if len(vars) > 0 {
		parts = append(parts, strings.Join(vars, " "))
	}
	if paused {
		parts = append(parts, "paused")
	}
	return strings.Join(parts, " | ")
}

package ui

import (
	"testing"

	"snorkel/internal/core"
)

func TestStatusLine(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("frame", "Frame", 12),
			core.IntParam("rows", "Rows", 20),
			core.IntParam("cols", "Cols", 80),
		}},
		{Name: "Variables", Params: []core.Parameter{
			core.StringParam("var.a", "a", "5"),
			core.StringParam("var.b", "b", "k"),
		}},
	}}
	got := StatusLine(snap, core.Coord{X: 3, Y: 4}, true)
	want := "frame 12 | 20x80 | @3,4 | a=5 b=k | paused"
	if got != want {
		t.Fatalf("StatusLine = %q, want %q", got, want)
	}

	if got := StatusLine(core.ParameterSnapshot{}, core.Coord{}, false); got != "@0,0" {
		t.Fatalf("empty StatusLine = %q", got)
	}
}

package orca

import (
	"slices"
	"testing"

	"snorkel/internal/core"
	"snorkel/internal/op"
	"snorkel/internal/render"
)

func TestRegistered(t *testing.T) {
	f, ok := core.Sims()["orca"]
	if !ok {
		t.Fatal("orca not registered")
	}
	s := f(map[string]string{"rows": "3", "cols": "7"})
	if s.Size() != (core.Size{W: 7, H: 3}) {
		t.Fatalf("Size = %+v", s.Size())
	}
	if s.Name() != "orca" {
		t.Fatalf("Name = %q", s.Name())
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"rows": "5", "cols": "-2", "seed": "nope"})
	want := DefaultConfig()
	want.Rows = 5
	if cfg != want {
		t.Fatalf("FromMap = %+v, want %+v", cfg, want)
	}
}

func TestStepAdvancesFrameThenTicks(t *testing.T) {
	g := load(t, "·D2", "···")
	g.Step()
	if g.Frame() != 1 {
		t.Fatalf("Frame = %d", g.Frame())
	}
	if got, _ := g.Get(at(1, 1)); got.Kind != op.EmptyResult {
		t.Fatalf("frame 1 delay = %v", got)
	}
}

func TestResetClearsState(t *testing.T) {
	g := load(t, "aV5", "···")
	g.Step()
	g.Reset(42)
	if g.Frame() != 0 {
		t.Fatalf("Frame after reset = %d", g.Frame())
	}
	if len(g.VariableNames()) != 0 {
		t.Fatal("variables survived reset")
	}
	if got := text(g); got != lines("···", "···") {
		t.Fatalf("cells survived reset:\n%s", got)
	}
	if p, _ := g.Parameters().Lookup("seed"); p.Value != "42" {
		t.Fatalf("seed parameter = %q", p.Value)
	}
}

func TestCellsClassifies(t *testing.T) {
	g := load(t, "1A#a#b")
	g.Set(at(5, 0), op.NewResult('b'))
	want := []uint8{
		uint8(render.ClassValue),
		uint8(render.ClassCommand),
		uint8(render.ClassComment),
		uint8(render.ClassComment),
		uint8(render.ClassComment),
		uint8(render.ClassResult),
	}
	if got := g.Cells(); !slices.Equal(got, want) {
		t.Fatalf("Cells = %v, want %v", got, want)
	}
}

func TestParameters(t *testing.T) {
	g := load(t, "aVk", "···")
	g.Tick()
	snap := g.Parameters()
	if p, ok := snap.Lookup("var.a"); !ok || p.Value != "k" {
		t.Fatalf("var.a = %+v, %v", p, ok)
	}
	if p, _ := snap.Lookup("cols"); p.Value != "3" {
		t.Fatalf("cols = %q", p.Value)
	}
}

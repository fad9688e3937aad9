package core

import (
	"slices"
	"testing"
	"time"
)

func TestSelectionFromNormalizes(t *testing.T) {
	s := SelectionFrom(Coord{X: 5, Y: 1}, Coord{X: 2, Y: 4})
	want := Selection{StartX: 2, StartY: 1, EndX: 5, EndY: 4}
	if s != want {
		t.Fatalf("SelectionFrom = %+v, want %+v", s, want)
	}
	if s.Width() != 4 || s.Height() != 4 {
		t.Fatalf("size = %dx%d", s.Width(), s.Height())
	}
}

func TestSelectionContains(t *testing.T) {
	s := SelectionFrom(Coord{X: 1, Y: 1}, Coord{X: 3, Y: 2})
	inside := []Coord{{1, 1}, {3, 2}, {2, 1}, {1, 2}}
	outside := []Coord{{0, 1}, {4, 2}, {2, 0}, {2, 3}}
	for _, c := range inside {
		if !s.Contains(c) {
			t.Fatalf("%v should be inside %+v", c, s)
		}
	}
	for _, c := range outside {
		if s.Contains(c) {
			t.Fatalf("%v should be outside %+v", c, s)
		}
	}
}

func TestByteGrid(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(3, 0, 9)
	g.Set(-1, 0, 9)
	if g.At(2, 1) != 7 || g.At(5, 5) != 0 {
		t.Fatalf("At returned unexpected values: %v", g.Cells())
	}
	if !slices.Equal(g.Cells(), []uint8{0, 0, 0, 0, 0, 7}) {
		t.Fatalf("Cells = %v", g.Cells())
	}
	g.Resize(2, 2)
	if len(g.Cells()) != 4 || g.At(1, 1) != 0 {
		t.Fatalf("Resize kept stale data: %v", g.Cells())
	}
}

func TestFixedStep(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first ShouldStep must report true")
	}
	if fs.ShouldStep() {
		t.Fatal("stepped without elapsed time")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("stepped after half a tick")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("did not step after a full tick")
	}
	fs.SetTPS(0)
	if fs.TPS() != 60 {
		t.Fatalf("TPS after invalid rate = %d, want 60", fs.TPS())
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{IntParam("frame", "Frame", 3)}},
		{Name: "b", Params: []Parameter{StringParam("seed", "Seed", "x")}},
	}}
	if p, ok := snap.Lookup("seed"); !ok || p.Value != "x" || p.Type != ParamTypeString {
		t.Fatalf("Lookup(seed) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}

type stubSim struct{}

func (stubSim) Name() string   { return "stub" }
func (stubSim) Size() Size     { return Size{W: 1, H: 1} }
func (stubSim) Reset(int64)    {}
func (stubSim) Step()          {}
func (stubSim) Cells() []uint8 { return []uint8{0} }

func TestRegister(t *testing.T) {
	Register("", func(map[string]string) Sim { return stubSim{} })
	Register("nil-factory", nil)
	if _, ok := Sims()[""]; ok {
		t.Fatal("registered an empty name")
	}
	if _, ok := Sims()["nil-factory"]; ok {
		t.Fatal("registered a nil factory")
	}
	Register("stub", func(map[string]string) Sim { return stubSim{} })
	f, ok := Sims()["stub"]
	if !ok || f(nil).Name() != "stub" {
		t.Fatal("stub not registered")
	}
}

package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"snorkel/internal/core"
	"snorkel/internal/op"
	"snorkel/internal/render"
	"snorkel/internal/sims/orca"
)

func newSession(rows, cols int) *Session {
	return New(orca.New(rows, cols))
}

func TestInsertAndUndo(t *testing.T) {
	s := newSession(3, 3)
	require.True(t, s.Insert('A'))
	require.False(t, s.Insert('.'))

	o, ok := s.Grid().Get(core.Coord{})
	require.True(t, ok)
	require.Equal(t, op.Of(op.Add), o)

	require.True(t, s.Undo())
	_, ok = s.Grid().Get(core.Coord{})
	require.False(t, ok)
	require.False(t, s.Undo())
}

func moveTo(s *Session, x, y int) {
	cur := s.Cursor()
	s.Move(x-cur.X, y-cur.Y)
}

func snapshot(s *Session) [][]op.Op {
	g := s.Grid()
	return g.CopySelection(core.SelectionFrom(core.Coord{}, core.Coord{X: g.Cols() - 1, Y: g.Rows() - 1}))
}

func TestUndoRedoRoundTrip(t *testing.T) {
	s := newSession(4, 6)
	moveTo(s, 0, 0)
	require.True(t, s.Insert('3'))
	moveTo(s, 1, 0)
	require.True(t, s.Insert('M'))
	moveTo(s, 0, 3)
	require.True(t, s.Insert('E'))
	s.NextFrame()
	s.NextFrame()

	// A stamped mover and a placeholder are both overwritten below.
	mover, _ := s.Grid().Get(core.Coord{X: 2, Y: 3})
	require.Equal(t, op.NewMover(op.East, 2), mover)
	placeholder, _ := s.Grid().Get(core.Coord{X: 1, Y: 1})
	require.Equal(t, op.NewEmptyResult(core.Coord{X: 1, Y: 0}), placeholder)

	initial := snapshot(s)
	before := s.History().UndoLen()

	moveTo(s, 2, 3)
	require.True(t, s.Insert('1'))
	moveTo(s, 1, 1)
	require.True(t, s.Insert('A'))
	moveTo(s, 5, 0)
	require.True(t, s.Insert('*'))
	moveTo(s, 0, 0)
	s.Delete()
	edits := s.History().UndoLen() - before
	require.Equal(t, 4, edits)

	edited := snapshot(s)
	require.NotEmpty(t, cmp.Diff(initial, edited))

	for i := 0; i < edits; i++ {
		require.True(t, s.Undo())
	}
	if diff := cmp.Diff(initial, snapshot(s)); diff != "" {
		t.Fatalf("undo did not restore the grid (-want +got):\n%s", diff)
	}

	for i := 0; i < edits; i++ {
		require.True(t, s.Redo())
	}
	if diff := cmp.Diff(edited, snapshot(s)); diff != "" {
		t.Fatalf("redo did not restore the edits (-want +got):\n%s", diff)
	}
}

func TestResetStartsFreshHistory(t *testing.T) {
	s := newSession(2, 3)
	s.Replace('1')
	s.Replace('A')
	s.Replace('1')
	s.NextFrame()
	s.Reset(7)

	require.Equal(t, "...\n...", render.Text(s.Grid(), '.'))
	require.Zero(t, s.Grid().Frame())
	require.Zero(t, s.History().UndoLen())
	require.False(t, s.Undo())
	require.Equal(t, core.Coord{X: 2}, s.Cursor())
}

func TestCursorClamping(t *testing.T) {
	s := newSession(3, 4)
	s.Move(-5, -5)
	require.Equal(t, core.Coord{}, s.Cursor())

	s.Move(10, 0)
	require.Equal(t, core.Coord{X: 3}, s.Cursor())

	s.Move(0, 10)
	require.Equal(t, core.Coord{X: 3, Y: 3}, s.Cursor())
	require.False(t, s.Insert('A'), "insert below the last row")
}

func TestReplaceAdvances(t *testing.T) {
	s := newSession(1, 3)
	require.True(t, s.Replace('1'))
	require.True(t, s.Replace('A'))
	require.True(t, s.Replace('2'))
	require.True(t, s.Replace('3'))
	require.Equal(t, "1A3", render.Text(s.Grid(), '.'))
	require.Equal(t, core.Coord{X: 2}, s.Cursor())
}

func TestDelete(t *testing.T) {
	s := newSession(2, 2)
	s.Insert('A')
	s.Delete()
	require.Equal(t, "..\n..", render.Text(s.Grid(), '.'))
	require.Equal(t, 2, s.History().UndoLen())

	s.Delete()
	require.Equal(t, 2, s.History().UndoLen(), "deleting an empty cell records nothing")

	s.Undo()
	require.Equal(t, "A.\n..", render.Text(s.Grid(), '.'))
}

func TestCopyPasteSelection(t *testing.T) {
	s := newSession(4, 4)
	s.Replace('1')
	s.Replace('2')
	s.Move(-2, 1)
	s.Replace('3')
	s.Replace('4')

	s.Move(-2, -1)
	s.StartSelection()
	s.Move(1, 1)
	sel, ok := s.Selection()
	require.True(t, ok)
	require.Equal(t, core.Selection{StartX: 0, StartY: 0, EndX: 1, EndY: 1}, sel)

	s.Copy()
	require.Len(t, s.Clipboard(), 2)
	_, ok = s.Selection()
	require.False(t, ok)

	s.Move(1, 1)
	s.Paste()
	require.Equal(t, "12..\n34..\n..12\n..34", render.Text(s.Grid(), '.'))

	require.True(t, s.Undo())
	require.Equal(t, "12..\n34..\n....\n....", render.Text(s.Grid(), '.'))
}

func TestPasteWithoutClipboard(t *testing.T) {
	s := newSession(2, 2)
	s.Paste()
	require.Zero(t, s.History().UndoLen())
}

func TestFrames(t *testing.T) {
	s := newSession(2, 3)
	s.Replace('1')
	s.Replace('A')
	s.Replace('1')
	s.NextFrame()
	s.NextFrame()
	require.Equal(t, uint(2), s.Grid().Frame())
	require.Equal(t, "1A1\n.2.", render.Text(s.Grid(), '.'))

	s.ResetFrame()
	require.Zero(t, s.Grid().Frame())
}

func TestResizeClampsCursor(t *testing.T) {
	s := newSession(10, 10)
	s.Move(8, 8)
	s.Resize(4, 3)
	require.Equal(t, core.Coord{X: 3, Y: 3}, s.Cursor())
	require.Equal(t, 3, s.Grid().Rows())
	require.Equal(t, 4, s.Grid().Cols())
}

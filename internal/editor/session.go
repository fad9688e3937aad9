// Package editor holds the state of one interactive editing session: the
// grid, its undo history, the cursor, the selection and the clipboard.
package editor

import (
	"io"
	"log/slog"

	"snorkel/internal/core"
	"snorkel/internal/history"
	"snorkel/internal/op"
	"snorkel/internal/sims/orca"
)

// Session routes user commands into a grid and records every edit so it can
// be undone.
type Session struct {
	grid *orca.Grid
	hist *history.History

	cursor    core.Coord
	anchor    core.Coord
	selecting bool
	clipboard [][]op.Op

	log *slog.Logger
}

// New starts a session on grid with the cursor at the origin.
func New(grid *orca.Grid) *Session {
	return &Session{
		grid: grid,
		hist: history.New(),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger routes session events to l. The grid shares the logger.
func (s *Session) SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	s.log = l
	s.grid.SetLogger(l)
}

// Grid returns the edited grid.
func (s *Session) Grid() *orca.Grid { return s.grid }

// History returns the undo history.
func (s *Session) History() *history.History { return s.hist }

// Cursor returns the cursor position.
func (s *Session) Cursor() core.Coord { return s.cursor }

// Clipboard returns the last copied snapshot.
func (s *Session) Clipboard() [][]op.Op { return s.clipboard }

// Selection returns the rectangle between the selection anchor and the
// cursor. It reports false when no selection is active.
func (s *Session) Selection() (core.Selection, bool) {
	if !s.selecting {
		return core.Selection{}, false
	}
	return core.SelectionFrom(s.anchor, s.cursor), true
}

// Move shifts the cursor. Left and up stop at zero; right stops at the last
// column and down stops one row past the last.
func (s *Session) Move(dx, dy int) {
	s.cursor.X = min(max(s.cursor.X+dx, 0), max(s.grid.Cols()-1, 0))
	s.cursor.Y = min(max(s.cursor.Y+dy, 0), s.grid.Rows())
}

// Insert writes the operator for r under the cursor. It reports false when r
// is not an operator character or the cursor is outside the grid.
func (s *Session) Insert(r rune) bool {
	o, ok := op.FromRune(r)
	if !ok || !s.grid.InBounds(s.cursor) {
		return false
	}
	prior, _ := s.grid.Set(s.cursor, o)
	s.hist.Record(history.Step(s.cursor, prior))
	return true
}

// Replace inserts r and advances the cursor one column.
func (s *Session) Replace(r rune) bool {
	if !s.Insert(r) {
		return false
	}
	s.Move(1, 0)
	return true
}

// Delete clears the cell under the cursor.
func (s *Session) Delete() {
	if prior, ok := s.grid.Delete(s.cursor); ok {
		s.hist.Record(history.Step(s.cursor, prior))
	}
}

// StartSelection anchors a selection at the cursor.
func (s *Session) StartSelection() {
	s.anchor = s.cursor
	s.selecting = true
}

// ClearSelection drops the active selection.
func (s *Session) ClearSelection() { s.selecting = false }

// Copy stores the selected cells, or the cell under the cursor when nothing
// is selected, and ends the selection.
func (s *Session) Copy() {
	sel, ok := s.Selection()
	if !ok {
		sel = core.SelectionFrom(s.cursor, s.cursor)
	}
	s.clipboard = s.grid.CopySelection(sel)
	s.selecting = false
	s.log.Debug("selection copied", "width", sel.Width(), "height", sel.Height())
}

// Paste writes the clipboard with its top-left corner at the cursor as a
// single undoable batch.
func (s *Session) Paste() {
	if len(s.clipboard) == 0 {
		return
	}
	s.hist.Record(s.grid.PasteSelection(s.cursor, s.clipboard))
}

// Undo reverts the most recent edit.
func (s *Session) Undo() bool {
	ok := s.hist.Undo(s.grid)
	s.log.Debug("undo", "applied", ok, "undo", s.hist.UndoLen(), "redo", s.hist.RedoLen())
	return ok
}

// Redo re-applies the most recently undone edit.
func (s *Session) Redo() bool {
	ok := s.hist.Redo(s.grid)
	s.log.Debug("redo", "applied", ok, "undo", s.hist.UndoLen(), "redo", s.hist.RedoLen())
	return ok
}

// NextFrame advances the frame counter and evaluates one tick.
func (s *Session) NextFrame() { s.grid.Step() }

// ResetFrame rewinds the frame counter to zero without touching cells.
func (s *Session) ResetFrame() { s.grid.SetFrame(0) }

// Reset clears the grid through its Sim contract and starts a fresh
// history, since recorded edits no longer describe the cells. The cursor and
// clipboard are kept.
func (s *Session) Reset(seed int64) {
	s.grid.Reset(seed)
	s.hist = history.New()
	s.selecting = false
	s.log.Info("session reset", "seed", seed)
}

// Resize changes the grid bounds and pulls the cursor back inside.
func (s *Session) Resize(cols, rows int) {
	s.grid.Resize(cols, rows)
	s.Move(0, 0)
	s.anchor.X = min(s.anchor.X, max(cols-1, 0))
	s.anchor.Y = min(s.anchor.Y, max(rows-1, 0))
}

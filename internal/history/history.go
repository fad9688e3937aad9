// Package history records reversible cell edits and replays them as undo and
// redo steps.
package history

import (
	"time"

	"snorkel/internal/core"
	"snorkel/internal/op"
)

// Change pairs a coordinate with the operator it held before an edit. A zero
// Prior means the cell was empty.
type Change struct {
	At    core.Coord
	Prior op.Op
}

// Entry is a single undoable unit: either one Change (a step) or an ordered
// list applied atomically (a batch).
type Entry struct {
	Time    time.Time
	Changes []Change
	batch   bool
}

// Step records a single cell edit.
func Step(at core.Coord, prior op.Op) Entry {
	return Entry{Time: now(), Changes: []Change{{At: at, Prior: prior}}}
}

// Batch records a group of cell edits that are undone together.
func Batch(changes []Change) Entry {
	return Entry{Time: now(), Changes: changes, batch: true}
}

// IsBatch reports whether e was built by Batch.
func (e Entry) IsBatch() bool { return e.batch }

var now = time.Now

// Cells is the storage an Entry is replayed against.
type Cells interface {
	Set(at core.Coord, o op.Op) (op.Op, bool)
	Delete(at core.Coord) (op.Op, bool)
}

// Apply restores every recorded prior value in order and returns the inverse
// entry, which holds what was overwritten. The inverse keeps the step/batch
// shape of e.
func (e Entry) Apply(cells Cells) Entry {
	inverse := make([]Change, 0, len(e.Changes))
	for _, c := range e.Changes {
		var old op.Op
		if c.Prior.IsZero() {
			old, _ = cells.Delete(c.At)
		} else {
			old, _ = cells.Set(c.At, c.Prior)
		}
		inverse = append(inverse, Change{At: c.At, Prior: old})
	}
	return Entry{Time: now(), Changes: inverse, batch: e.batch}
}

// History holds the undo and redo stacks of one editing session.
type History struct {
	undo []Entry
	redo []Entry
}

// New returns an empty History.
func New() *History { return &History{} }

// Record pushes e onto the undo stack. The redo stack is left untouched.
func (h *History) Record(e Entry) {
	if len(e.Changes) == 0 {
		return
	}
	h.undo = append(h.undo, e)
}

// Undo reverts the most recent entry and makes it available to Redo. It
// reports false when there is nothing to undo.
func (h *History) Undo(cells Cells) bool {
	e, ok := pop(&h.undo)
	if !ok {
		return false
	}
	h.redo = append(h.redo, e.Apply(cells))
	return true
}

// Redo re-applies the most recently undone entry. It reports false when
// there is nothing to redo.
func (h *History) Redo(cells Cells) bool {
	e, ok := pop(&h.redo)
	if !ok {
		return false
	}
	h.undo = append(h.undo, e.Apply(cells))
	return true
}

// UndoLen returns the depth of the undo stack.
func (h *History) UndoLen() int { return len(h.undo) }

// RedoLen returns the depth of the redo stack.
func (h *History) RedoLen() int { return len(h.redo) }

func pop(stack *[]Entry) (Entry, bool) {
	s := *stack
	if len(s) == 0 {
		return Entry{}, false
	}
	e := s[len(s)-1]
	*stack = s[:len(s)-1]
	return e, true
}

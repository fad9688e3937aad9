// Package render turns grid contents into display classes, text frames and
// RGBA pixels.
package render

import (
	"snorkel/internal/core"
	"snorkel/internal/op"
)

// Class is the palette index a cell is drawn with.
type Class uint8

const (
	ClassEmpty Class = iota
	ClassCommand
	ClassValue
	ClassResult
	ClassBang
	ClassComment
	ClassMover

	numClasses
)

// Source is the read side of an operator grid.
type Source interface {
	Rows() int
	Cols() int
	Get(c core.Coord) (op.Op, bool)
}

// ClassOf returns the display class of a single operator.
func ClassOf(o op.Op) Class {
	switch {
	case o.IsZero(), o.Kind == op.EmptyResult:
		return ClassEmpty
	case o.Kind == op.Val:
		return ClassValue
	case o.Kind == op.Result:
		return ClassResult
	case o.Kind == op.Bang:
		return ClassBang
	case o.Kind == op.Comment:
		return ClassComment
	case o.Kind.IsMover():
		return ClassMover
	case o.IsPrimitive():
		return ClassCommand
	}
	return ClassEmpty
}

// Classify writes one class per cell into dst in row-major order. Within a
// row, everything between a '#' and the next '#' (both included) is a
// comment. dst must hold at least Rows*Cols entries.
func Classify(src Source, dst []uint8) {
	cols := src.Cols()
	for y := 0; y < src.Rows(); y++ {
		inComment := false
		for x := 0; x < cols; x++ {
			o, _ := src.Get(core.Coord{X: x, Y: y})
			class := ClassOf(o)
			if o.Kind == op.Comment {
				inComment = !inComment
				class = ClassComment
			} else if inComment && class != ClassEmpty {
				class = ClassComment
			}
			dst[y*cols+x] = uint8(class)
		}
	}
}

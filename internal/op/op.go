// Package op defines the closed set of operators that can occupy a grid cell
// and the codecs between operators, characters and base-36 values.
package op

import "snorkel/internal/core"

// Kind tags the variant held by an Op.
type Kind uint8

// The zero Kind marks an empty cell.
const (
	None Kind = iota

	// payload-bearing variants
	Val
	Result
	EmptyResult
	Bang
	East
	West
	North
	South

	// stateless primitives
	Add
	Sub
	Mul
	Rand
	If
	Clock
	Delay
	Gen
	Inc
	Less
	Jmp
	Ymp
	Hold
	Read
	Write
	Var
	Konkat
	Push
	Query
	Comment
	Track
	Uclid
	Lerp
)

var kindNames = [...]string{
	None:        "None",
	Val:         "Val",
	Result:      "Result",
	EmptyResult: "EmptyResult",
	Bang:        "Bang",
	East:        "East",
	West:        "West",
	North:       "North",
	South:       "South",
	Add:         "Add",
	Sub:         "Sub",
	Mul:         "Mul",
	Rand:        "Rand",
	If:          "If",
	Clock:       "Clock",
	Delay:       "Delay",
	Gen:         "Gen",
	Inc:         "Inc",
	Less:        "Less",
	Jmp:         "Jmp",
	Ymp:         "Ymp",
	Hold:        "Hold",
	Read:        "Read",
	Write:       "Write",
	Var:         "Var",
	Konkat:      "Konkat",
	Push:        "Push",
	Query:       "Query",
	Comment:     "Comment",
	Track:       "Track",
	Uclid:       "Uclid",
	Lerp:        "Lerp",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Op is the value held by a grid cell. Only the payload field that matches
// Kind is meaningful: Char for Val and Result, Origin for EmptyResult, Frame
// for Bang and the four movers. The zero Op is the empty cell.
//
// Op is comparable; two operators are identical when every field matches.
type Op struct {
	Kind   Kind
	Char   rune
	Origin core.Coord
	Frame  uint
}

// Of returns a stateless operator of the given kind.
func Of(k Kind) Op { return Op{Kind: k} }

// NewVal returns a literal value typed by the user.
func NewVal(c rune) Op { return Op{Kind: Val, Char: c} }

// NewResult returns a value produced by an evaluation.
func NewResult(c rune) Op { return Op{Kind: Result, Char: c} }

// NewEmptyResult returns a placeholder owned by the operator at origin.
func NewEmptyResult(origin core.Coord) Op { return Op{Kind: EmptyResult, Origin: origin} }

// NewBang returns a pulse stamped with frame.
func NewBang(frame uint) Op { return Op{Kind: Bang, Frame: frame} }

// NewMover returns a directional mover of kind k stamped with frame. Any
// kind other than East, West, North or South yields the empty Op.
func NewMover(k Kind, frame uint) Op {
	if !k.IsMover() {
		return Op{}
	}
	return Op{Kind: k, Frame: frame}
}

// IsZero reports whether o is the empty cell.
func (o Op) IsZero() bool { return o.Kind == None }

// IsMover reports whether k is one of the directional movers.
func (k Kind) IsMover() bool {
	return k == East || k == West || k == North || k == South
}

// IsValue reports whether o carries a character (Val or Result).
func (o Op) IsValue() bool { return o.Kind == Val || o.Kind == Result }

// IsPrimitive reports whether o is a command evaluated by the tick, as
// opposed to data, pulses or comments.
func (o Op) IsPrimitive() bool {
	switch o.Kind {
	case None, Val, Result, EmptyResult, Bang, Comment:
		return false
	}
	return true
}

// Num decodes the base-36 value carried by a Val or Result.
func (o Op) Num() (int, bool) {
	if !o.IsValue() {
		return 0, false
	}
	return Decode(o.Char)
}

// AsResult converts a literal into a computed result and passes every other
// operator through unchanged.
func (o Op) AsResult() Op {
	if o.Kind == Val {
		return NewResult(o.Char)
	}
	return o
}

// Restamp re-stamps movers with frame and returns other operators unchanged.
func (o Op) Restamp(frame uint) Op {
	if o.Kind.IsMover() {
		o.Frame = frame
	}
	return o
}

func (o Op) String() string {
	switch o.Kind {
	case Val, Result:
		return o.Kind.String() + "(" + string(o.Char) + ")"
	case EmptyResult:
		return "EmptyResult(" + itoa(o.Origin.X) + "," + itoa(o.Origin.Y) + ")"
	case Bang, East, West, North, South:
		return o.Kind.String() + "(" + itoa(int(o.Frame)) + ")"
	}
	return o.Kind.String()
}

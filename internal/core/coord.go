package core

// Coord addresses a single grid cell. X grows to the right, Y grows downwards.
type Coord struct {
	X, Y int
}

// Add returns c offset by dx, dy.
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Selection is a rectangle of cells with inclusive bounds. It is always
// normalized so that StartX <= EndX and StartY <= EndY.
type Selection struct {
	StartX, StartY int
	EndX, EndY     int
}

// SelectionFrom builds a normalized selection from two arbitrary corners.
func SelectionFrom(a, b Coord) Selection {
	return Selection{
		StartX: min(a.X, b.X),
		StartY: min(a.Y, b.Y),
		EndX:   max(a.X, b.X),
		EndY:   max(a.Y, b.Y),
	}
}

// Contains reports whether c lies inside the selection, bounds included.
func (s Selection) Contains(c Coord) bool {
	return s.StartX <= c.X && c.X <= s.EndX && s.StartY <= c.Y && c.Y <= s.EndY
}

// Width returns the number of columns covered by the selection.
func (s Selection) Width() int { return s.EndX - s.StartX + 1 }

// Height returns the number of rows covered by the selection.
func (s Selection) Height() int { return s.EndY - s.StartY + 1 }

package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Negative
// dimensions are treated as zero.
func NewByteGrid(w, h int) *ByteGrid {
	w, h = max(w, 0), max(h, 0)
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Set stores v at (x, y). Out of range coordinates are ignored.
func (g *ByteGrid) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.data[g.Index(x, y)] = v
}

// At returns the value at (x, y), or zero when out of range.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.data[g.Index(x, y)]
}

// Resize changes the dimensions and clears the contents. The backing slice
// is reused when it is large enough.
func (g *ByteGrid) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if cap(g.data) >= w*h {
		g.data = g.data[:w*h]
	} else {
		g.data = make([]uint8, w*h)
	}
	g.W, g.H = w, h
	g.Clear()
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

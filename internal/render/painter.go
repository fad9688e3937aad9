//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads class cells into a single RGBA image, one pixel per
// cell, and draws it scaled up to the cell size.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(max(w, 1), max(h, 1))
	return gp
}

// Blit fills the painter image from cells and draws it with each cell
// cellW x cellH pixels large.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, cellW, cellH float64) {
	if len(cells) != gp.w*gp.h || len(cells) == 0 {
		return
	}
	gp.palette.Fill(gp.buf, cells)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(cellW, cellH)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

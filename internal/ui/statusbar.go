//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Height is the status bar height in logical pixels.
const Height = 18

const (
	padding  = 4
	baseline = 13
)

// StatusBar renders a single line of text on a dark strip.
type StatusBar struct {
	panel *ebiten.Image
	width int
}

// NewStatusBar constructs a StatusBar.
func NewStatusBar() *StatusBar { return &StatusBar{} }

// Draw paints line into a strip of the given width whose top edge is at y.
func (s *StatusBar) Draw(screen *ebiten.Image, line string, width, y int) {
	if s == nil || width <= 0 {
		return
	}
	if s.panel == nil || s.width != width {
		s.panel = ebiten.NewImage(width, Height)
		s.width = width
	}
	s.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	text.Draw(s.panel, line, basicfont.Face7x13, padding, baseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(y))
	screen.DrawImage(s.panel, op)
}

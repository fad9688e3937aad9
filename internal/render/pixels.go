package render

import "image/color"

// Palette maps every Class to a colour.
type Palette [numClasses]color.RGBA

// DefaultPalette returns the standard dark colour scheme.
func DefaultPalette() Palette {
	return Palette{
		ClassEmpty:   {R: 0x10, G: 0x10, B: 0x14, A: 0xff},
		ClassCommand: {R: 0x3a, G: 0x8f, B: 0xd6, A: 0xff},
		ClassValue:   {R: 0x60, G: 0x60, B: 0x68, A: 0xff},
		ClassResult:  {R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		ClassBang:    {R: 0xff, G: 0xc8, B: 0x3c, A: 0xff},
		ClassComment: {R: 0x30, G: 0x30, B: 0x36, A: 0xff},
		ClassMover:   {R: 0x52, G: 0xd0, B: 0x8c, A: 0xff},
	}
}

// Fill converts class cells into RGBA pixels in buf, which must hold four
// bytes per cell.
func (p Palette) Fill(buf []byte, cells []uint8) {
	fillPaletteRGBA(buf, cells, p[:])
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

package render

import (
	"strings"

	"snorkel/internal/core"
)

// Text renders src as one line per row. Empty cells and placeholders are
// drawn with empty.
func Text(src Source, empty rune) string {
	var b strings.Builder
	for y := 0; y < src.Rows(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < src.Cols(); x++ {
			o, _ := src.Get(core.Coord{X: x, Y: y})
			r, ok := o.Rune()
			if !ok {
				r = empty
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

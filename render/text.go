package render

import (
	"github.com/mattn/go-runewidth"
)

// DrawText writes s starting at (x, y) in display cells, keeping the background
// Wide runes occupy two cells, the second is blanked
// Returns the display width consumed
func (b *RenderBuffer) DrawText(x, y int, s string, fg RGB) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= b.width {
			break
		}
		b.SetFgOnly(col, y, r, fg)
		if w == 2 {
			b.SetFgOnly(col+1, y, 0, fg)
		}
		col += w
	}
	return col - x
}

// DrawTextRight writes s so it ends at the right edge of row y
func (b *RenderBuffer) DrawTextRight(y int, s string, fg RGB) int {
	w := runewidth.StringWidth(s)
	return b.DrawText(b.width-w, y, s, fg)
}

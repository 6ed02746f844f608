package shimmer

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in the render buffer.
// Wide characters occupy two cells; the second is a continuation (Width 0).
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return Cell{Rune: r, Style: style, Width: uint8(w)}
}

// IsContinuation returns true if this cell is the tail of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

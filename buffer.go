package shimmer

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is a 2D grid of cells that a frame is drawn into.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a grid of the specified dimensions filled with blanks.
func NewBuffer(width, height int) *Buffer {
	width, height = max(0, width), max(0, height)
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// Clear resets every cell to a blank with default styling.
func (b *Buffer) Clear() {
	blank := NewCell(' ', NewStyle())
	for i := range b.cells {
		b.cells[i] = blank
	}
}

func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or an empty Cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell sets the cell at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// Paint changes the background of the cell at (x, y) and keeps its rune.
func (b *Buffer) Paint(x, y int, bg Style) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	c := b.cells[i]
	c.Style.Bg = bg.Bg
	if bg.Fg != "" {
		c.Style.Fg = bg.Fg
	}
	b.cells[i] = c
}

// Line returns the plain text of row y without styling.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.IsContinuation() {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String renders the buffer with ANSI styling, one line per row. Runs of
// cells sharing a style are rendered together.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		runStyle := Style{}
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle.IsZero() {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(runStyle.lipgloss().Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.IsContinuation() {
				continue
			}
			if !c.Style.Equal(runStyle) {
				flush()
				runStyle = c.Style
			}
			run.WriteRune(c.Rune)
		}
		flush()
	}
	return sb.String()
}

// writeString writes s starting at (x, y) clipped to clip. Returns the number
// of columns consumed.
func (b *Buffer) writeString(x, y int, s string, style Style, clip Rect) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > clip.Right() {
			break
		}
		if col >= clip.X && clip.Contains(col, y) {
			b.SetCell(col, y, NewCell(r, style))
			if w == 2 {
				b.SetCell(col+1, y, Cell{Style: style})
			}
		}
		col += w
	}
	return col - x
}

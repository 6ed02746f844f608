package shimmer

// Canvas is a clipped view of a Buffer. Nodes draw through a Canvas so
// overlays such as the shine never bleed outside their owner.
type Canvas struct {
	buf  *Buffer
	clip Rect
}

// NewCanvas returns a canvas covering the whole buffer.
func NewCanvas(buf *Buffer) *Canvas {
	return &Canvas{buf: buf, clip: buf.Rect()}
}

// Clip returns a canvas restricted to the intersection of r and the current
// clip rectangle.
func (c *Canvas) Clip(r Rect) *Canvas {
	return &Canvas{buf: c.buf, clip: c.clip.Intersect(r)}
}

// Bounds returns the current clip rectangle.
func (c *Canvas) Bounds() Rect {
	return c.clip
}

// Fill sets every cell of r (clipped) to a blank with the given style.
func (c *Canvas) Fill(r Rect, style Style) {
	area := c.clip.Intersect(r)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			c.buf.SetCell(x, y, NewCell(' ', style))
		}
	}
}

// Paint recolors the background of the cell at (x, y) if it is inside the clip.
func (c *Canvas) Paint(x, y int, style Style) {
	if c.clip.Contains(x, y) {
		c.buf.Paint(x, y, style)
	}
}

// Text writes s at (x, y), clipped. Returns the columns consumed.
func (c *Canvas) Text(x, y int, s string, style Style) int {
	if y < c.clip.Y || y >= c.clip.Bottom() {
		return 0
	}
	return c.buf.writeString(x, y, s, style, c.clip)
}

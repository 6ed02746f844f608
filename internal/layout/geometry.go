package layout

import "fmt"

// Rect is a cell rectangle. (X, Y) is the top-left cell; Right and Bottom
// are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a Rect.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by e. Width and height stop at zero.
func (r Rect) Inset(e Edges) Rect {
	return Rect{
		X:      r.X + e.Left,
		Y:      r.Y + e.Top,
		Width:  max(0, r.Width-e.Horizontal()),
		Height: max(0, r.Height-e.Vertical()),
	}
}

// Intersect returns the overlap of r and o, or the zero Rect.
func (r Rect) Intersect(o Rect) Rect {
	x, y := max(r.X, o.X), max(r.Y, o.Y)
	w := min(r.Right(), o.Right()) - x
	h := min(r.Bottom(), o.Bottom()) - y
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Edges holds padding or margin for the four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll uses n on every side.
func EdgeAll(n int) Edges { return Edges{n, n, n, n} }

// EdgeSymmetric uses v for top and bottom, h for left and right.
func EdgeSymmetric(v, h int) Edges { return Edges{v, h, v, h} }

// EdgeTRBL lists the sides clockwise from the top.
func EdgeTRBL(t, r, b, l int) Edges { return Edges{t, r, b, l} }

// ParseEdges expands shorthand: one value for every side, two for
// vertical then horizontal, four clockwise from the top.
func ParseEdges(v []int) (Edges, error) {
	switch len(v) {
	case 1:
		return EdgeAll(v[0]), nil
	case 2:
		return EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	default:
		return Edges{}, fmt.Errorf("expected 1, 2 or 4 values, got %d", len(v))
	}
}

func (e Edges) Horizontal() int { return e.Left + e.Right }
func (e Edges) Vertical() int   { return e.Top + e.Bottom }

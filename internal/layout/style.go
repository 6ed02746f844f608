package layout

// Direction specifies the main axis for stacking children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// Position selects between flow and absolute placement.
type Position uint8

const (
	Relative Position = iota // Placed in stacking order
	Absolute                 // Placed at Top/Left of the parent's content box
)

// Style contains the layout properties of a single box.
type Style struct {
	Width  Value
	Height Value

	Padding Edges
	Margin  Edges

	Position Position
	Top      Value
	Left     Value
}

// DefaultStyle returns a Style with auto sizing and flow placement.
func DefaultStyle() Style {
	return Style{
		Width:  Auto(),
		Height: Auto(),
		Top:    Fixed(0),
		Left:   Fixed(0),
	}
}

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

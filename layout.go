// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package shimmer

import "github.com/grindlemire/go-shimmer/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	DirRow    = layout.Row
	DirColumn = layout.Column
)

// Value represents a dimension value (fixed, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitFixed   = layout.UnitFixed
	UnitPercent = layout.UnitPercent
)

// LayoutStyle holds the layout properties for a node.
type LayoutStyle = layout.Style

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Auto returns a Value computed from content.
func Auto() Value { return layout.Auto() }

// Fixed returns a Value of n terminal cells.
func Fixed(n int) Value { return layout.Fixed(n) }

// Percent returns a Value relative to the parent's space (0-100 scale).
func Percent(p float64) Value { return layout.Percent(p) }

// ParseValue parses "auto", "12" or "80%".
func ParseValue(s string) (Value, error) { return layout.ParseValue(s) }

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect { return layout.NewRect(x, y, width, height) }

// ParseEdges expands 1, 2 or 4 values into Edges the way CSS shorthand does.
func ParseEdges(v []int) (Edges, error) { return layout.ParseEdges(v) }

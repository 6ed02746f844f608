package shimmer

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-shimmer/internal/debug"
)

// DefaultShapeColor is the base fill of a placeholder shape.
const DefaultShapeColor = lipgloss.Color("#eeeeee")

// Shape is one skeleton rectangle. While unresolved it draws a clipped box
// with the container's shine translated by the shared driver value minus the
// shape's own offset, so one continuous shine sweeps across all siblings.
// Once revealed it draws its content instead, permanently.
type Shape struct {
	props
	content    []Node
	scope      *Scope
	unregister Unbind
	rect       Rect

	xOffset  int
	measured bool
	resolved bool
}

// NewShape creates a placeholder shape. Without a background option the
// shape is filled with DefaultShapeColor.
func NewShape(opts ...Option) *Shape {
	s := &Shape{props: newProps(opts)}
	if s.style.Bg == "" {
		s.style.Bg = DefaultShapeColor
	}
	return s
}

// AddChild sets the real content revealed in place of this shape in replace
// mode.
func (s *Shape) AddChild(children ...Node) *Shape {
	s.content = append(s.content, children...)
	if s.scope != nil && s.resolved {
		mountAll(children, s.scope)
	}
	return s
}

// Mount reads the nearest container's context from scope and registers with
// it.
func (s *Shape) Mount(scope *Scope) {
	s.scope = scope
	if p := scope.Placeholders(); p != nil && p.Register != nil {
		s.unregister = p.Register(s)
	} else {
		debug.Log("shape: mounted outside a container; shimmer disabled")
	}
	if s.resolved {
		mountAll(s.content, scope)
	}
}

// Unmount deregisters from the container.
func (s *Shape) Unmount() {
	if s.unregister != nil {
		s.unregister()
		s.unregister = nil
	}
	if s.resolved {
		unmountAll(s.content)
	}
	s.scope = nil
}

// Reveal swaps the shimmer for the shape's content. The transition happens
// once; later calls return nil without effect.
func (s *Shape) Reveal() error {
	if s.resolved {
		return nil
	}
	if s.scope == nil {
		return ErrShapeDetached
	}
	mountAll(s.content, s.scope)
	s.resolved = true
	s.scope.Invalidate()
	return nil
}

// Resolved reports whether the shape shows its content.
func (s *Shape) Resolved() bool { return s.resolved }

// Measured reports whether the shape knows its offset.
func (s *Shape) Measured() bool { return s.measured }

// Offset returns the shape's X offset relative to its container.
func (s *Shape) Offset() int { return s.xOffset }

// Bounds returns the rectangle assigned by the last layout pass.
func (s *Shape) Bounds() Rect { return s.rect }

func (s *Shape) LayoutStyle() LayoutStyle { return s.layout }

func (s *Shape) Measure(avail Size) Size {
	if s.resolved && len(s.content) > 0 {
		return measureColumn(s.content, avail)
	}
	return Size{}
}

// Layout records the shape's offset within its container and marks it
// measured.
func (s *Shape) Layout(area Rect) {
	s.rect = area
	origin := 0
	if p := s.scope.Placeholders(); p != nil && p.Origin != nil {
		origin = p.Origin().X
	}
	s.xOffset = area.X - origin
	s.measured = true

	if s.resolved {
		avail := Size{Width: area.Width, Height: area.Height}
		rects := arrangeColumn(area, s.content, avail)
		for i, child := range s.content {
			child.Layout(rects[i])
		}
	}
}

// ShineX returns where the shine's left edge falls, in absolute columns, for
// driver value v.
func (s *Shape) ShineX(v float64) int {
	return s.rect.X + int(math.Round(v)) - s.xOffset
}

func (s *Shape) Draw(c *Canvas) {
	if s.resolved {
		for _, child := range s.content {
			child.Draw(c)
		}
		return
	}

	c = c.Clip(s.rect)
	c.Fill(s.rect, s.style)
	if !s.measured {
		return
	}
	p := s.scope.Placeholders()
	if p == nil || p.Driver == nil || p.Shine == nil {
		return
	}

	shine := p.Shine
	size := shine.Measure(Size{Width: s.rect.Width, Height: s.rect.Height})
	shine.Layout(Rect{X: s.ShineX(p.Driver.Value()), Y: s.rect.Y, Width: size.Width, Height: s.rect.Height})
	shine.Draw(c)
}

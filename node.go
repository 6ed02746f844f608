package shimmer

import (
	"strings"

	"github.com/grindlemire/go-shimmer/internal/layout"
	"github.com/mattn/go-runewidth"
)

// Node is an element of a placeholder tree.
//
// The host drives every node through the same cycle: Mount once with the
// Scope of its parent, then any number of Measure/Layout/Draw passes, then
// Unmount. All calls happen on the UI goroutine.
type Node interface {
	// Mount attaches the node below a parent that provides scope.
	Mount(scope *Scope)
	// Unmount detaches the node and releases anything it registered.
	Unmount()
	// LayoutStyle returns the layout properties the parent arranges by.
	LayoutStyle() LayoutStyle
	// Measure returns the natural content size given the parent's space.
	Measure(avail Size) Size
	// Layout assigns the node its absolute bounds.
	Layout(area Rect)
	// Draw renders the node into the canvas.
	Draw(c *Canvas)
}

// boxes converts nodes into layout boxes sized against avail.
func boxes(children []Node, avail Size) []layout.Box {
	out := make([]layout.Box, len(children))
	for i, child := range children {
		out[i] = layout.Box{Style: child.LayoutStyle(), Natural: child.Measure(avail)}
	}
	return out
}

// mountAll mounts children with scope.
func mountAll(children []Node, scope *Scope) {
	for _, child := range children {
		child.Mount(scope)
	}
}

// unmountAll unmounts children in reverse order.
func unmountAll(children []Node) {
	for i := len(children) - 1; i >= 0; i-- {
		children[i].Unmount()
	}
}

// --- Text ---

// TextNode renders one or more lines of text.
type TextNode struct {
	props
	lines []string
	rect  Rect
}

// Text creates a text node. Newlines split the content into rows.
func Text(content string, opts ...Option) *TextNode {
	return &TextNode{props: newProps(opts), lines: strings.Split(content, "\n")}
}

func (t *TextNode) Mount(*Scope) {}
func (t *TextNode) Unmount()     {}

func (t *TextNode) LayoutStyle() LayoutStyle { return t.layout }

func (t *TextNode) Measure(Size) Size {
	w := 0
	for _, line := range t.lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return Size{Width: w, Height: len(t.lines)}
}

func (t *TextNode) Layout(area Rect) { t.rect = area }

func (t *TextNode) Draw(c *Canvas) {
	c = c.Clip(t.rect)
	if t.style.Bg != "" {
		c.Fill(t.rect, t.style)
	}
	for i, line := range t.lines {
		c.Text(t.rect.X, t.rect.Y+i, line, t.style)
	}
}

// --- Block ---

// BlockNode is a solid rectangle. Its size comes entirely from options.
type BlockNode struct {
	props
	rect Rect
}

// Block creates a solid rectangle.
func Block(opts ...Option) *BlockNode {
	return &BlockNode{props: newProps(opts)}
}

func (b *BlockNode) Mount(*Scope) {}
func (b *BlockNode) Unmount()     {}

func (b *BlockNode) LayoutStyle() LayoutStyle { return b.layout }
func (b *BlockNode) Measure(Size) Size        { return Size{} }
func (b *BlockNode) Layout(area Rect)         { b.rect = area }

func (b *BlockNode) Draw(c *Canvas) {
	c.Fill(b.rect, b.style)
}

// --- Stack ---

// Stack lays its children out in a row or a column. It passes the scope it
// was mounted with to its children unchanged, so placeholder shapes nested
// at any depth still reach their container.
type Stack struct {
	props
	dir      Direction
	children []Node
	scope    *Scope
	rect     Rect
}

// NewColumn creates a stack that lays children out top to bottom.
func NewColumn(opts ...Option) *Stack {
	return &Stack{props: newProps(opts), dir: DirColumn}
}

// NewRow creates a stack that lays children out left to right.
func NewRow(opts ...Option) *Stack {
	return &Stack{props: newProps(opts), dir: DirRow}
}

// AddChild appends children. Children added after Mount are mounted
// immediately.
func (s *Stack) AddChild(children ...Node) *Stack {
	s.children = append(s.children, children...)
	if s.scope != nil {
		mountAll(children, s.scope)
	}
	return s
}

// Children returns the stack's children.
func (s *Stack) Children() []Node { return s.children }

func (s *Stack) Mount(scope *Scope) {
	s.scope = scope
	mountAll(s.children, scope)
}

func (s *Stack) Unmount() {
	unmountAll(s.children)
	s.scope = nil
}

func (s *Stack) LayoutStyle() LayoutStyle { return s.layout }

func (s *Stack) Measure(avail Size) Size {
	pad := s.layout.Padding
	inner := Size{Width: max(0, avail.Width-pad.Horizontal()), Height: max(0, avail.Height-pad.Vertical())}
	ext := layout.Extent(s.dir, s.gap, boxes(s.children, inner), inner)
	return Size{Width: ext.Width + pad.Horizontal(), Height: ext.Height + pad.Vertical()}
}

func (s *Stack) Layout(area Rect) {
	s.rect = area
	content := area.Inset(s.layout.Padding)
	avail := Size{Width: content.Width, Height: content.Height}
	rects := layout.Arrange(s.dir, content, s.gap, boxes(s.children, avail))
	for i, child := range s.children {
		child.Layout(rects[i])
	}
}

func (s *Stack) Draw(c *Canvas) {
	c = c.Clip(s.rect)
	if s.style.Bg != "" {
		c.Fill(s.rect, s.style)
	}
	for _, child := range s.children {
		child.Draw(c)
	}
}

// Bounds returns the rectangle assigned by the last layout pass.
func (s *Stack) Bounds() Rect { return s.rect }

func arrangeColumn(area Rect, children []Node, avail Size) []Rect {
	return layout.Arrange(DirColumn, area, 0, boxes(children, avail))
}

func measureColumn(children []Node, avail Size) Size {
	return layout.Extent(DirColumn, 0, boxes(children, avail), avail)
}

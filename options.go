package shimmer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-shimmer/internal/layout"
)

// props holds the layout and visual properties shared by every node.
type props struct {
	layout LayoutStyle
	style  Style
	gap    int
}

func newProps(opts []Option) props {
	p := props{layout: layout.DefaultStyle()}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Option configures the layout or appearance of a node.
type Option func(*props)

// WithWidth sets a fixed width in terminal cells.
func WithWidth(cells int) Option {
	return func(p *props) {
		p.layout.Width = Fixed(cells)
	}
}

// WithWidthPercent sets the width as a percentage of the parent's width.
func WithWidthPercent(percent float64) Option {
	return func(p *props) {
		p.layout.Width = Percent(percent)
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) Option {
	return func(p *props) {
		p.layout.Height = Fixed(cells)
	}
}

// WithHeightPercent sets the height as a percentage of the parent's height.
func WithHeightPercent(percent float64) Option {
	return func(p *props) {
		p.layout.Height = Percent(percent)
	}
}

// WithSize sets both width and height in cells.
func WithSize(width, height int) Option {
	return func(p *props) {
		p.layout.Width = Fixed(width)
		p.layout.Height = Fixed(height)
	}
}

// WithDimensions sets width and height from arbitrary Values.
func WithDimensions(width, height Value) Option {
	return func(p *props) {
		p.layout.Width = width
		p.layout.Height = height
	}
}

// WithPadding sets equal padding on all sides.
func WithPadding(cells int) Option {
	return func(p *props) {
		p.layout.Padding = layout.EdgeAll(cells)
	}
}

// WithPaddingTRBL sets padding for each side.
func WithPaddingTRBL(top, right, bottom, left int) Option {
	return func(p *props) {
		p.layout.Padding = layout.EdgeTRBL(top, right, bottom, left)
	}
}

// WithMargin sets equal margin on all sides.
func WithMargin(cells int) Option {
	return func(p *props) {
		p.layout.Margin = layout.EdgeAll(cells)
	}
}

// WithMarginTRBL sets margin for each side.
func WithMarginTRBL(top, right, bottom, left int) Option {
	return func(p *props) {
		p.layout.Margin = layout.EdgeTRBL(top, right, bottom, left)
	}
}

// WithAbsolute takes the node out of the stacking flow and places it at
// (top, left) inside the parent's content box.
func WithAbsolute(top, left Value) Option {
	return func(p *props) {
		p.layout.Position = layout.Absolute
		p.layout.Top = top
		p.layout.Left = left
	}
}

// WithGap sets the spacing between stacked children.
func WithGap(cells int) Option {
	return func(p *props) {
		p.gap = cells
	}
}

// WithBackground sets the background color.
func WithBackground(c lipgloss.Color) Option {
	return func(p *props) {
		p.style.Bg = c
	}
}

// WithForeground sets the text color.
func WithForeground(c lipgloss.Color) Option {
	return func(p *props) {
		p.style.Fg = c
	}
}

// WithBold renders text in bold.
func WithBold() Option {
	return func(p *props) {
		p.style.Bold = true
	}
}

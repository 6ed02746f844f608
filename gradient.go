package shimmer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultGradientColors are the shine stops: light, darker, light.
var DefaultGradientColors = []lipgloss.Color{"#eeeeee", "#dddddd", "#eeeeee"}

// GradientNode is a horizontal colour ramp used as the shine element. It only
// recolors backgrounds, so text under it stays readable.
type GradientNode struct {
	props
	stops []colorful.Color
	rect  Rect
}

// Gradient creates a shine of the given width in cells blending through
// colors left to right. With fewer than two colors DefaultGradientColors are
// used.
func Gradient(width int, colors ...lipgloss.Color) (*GradientNode, error) {
	if width < 1 {
		return nil, fmt.Errorf("gradient width must be at least 1, got %d", width)
	}
	if len(colors) < 2 {
		colors = DefaultGradientColors
	}
	stops := make([]colorful.Color, len(colors))
	for i, c := range colors {
		parsed, err := colorful.Hex(string(c))
		if err != nil {
			return nil, fmt.Errorf("gradient stop %d: %w", i, err)
		}
		stops[i] = parsed
	}
	return &GradientNode{props: newProps([]Option{WithWidth(width)}), stops: stops}, nil
}

// MustGradient is like Gradient but panics on invalid input.
func MustGradient(width int, colors ...lipgloss.Color) *GradientNode {
	g, err := Gradient(width, colors...)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *GradientNode) Mount(*Scope) {}
func (g *GradientNode) Unmount()     {}

func (g *GradientNode) LayoutStyle() LayoutStyle { return g.layout }

func (g *GradientNode) Measure(avail Size) Size {
	return Size{Width: g.layout.Width.Resolve(avail.Width, 1), Height: max(1, avail.Height)}
}

func (g *GradientNode) Layout(area Rect) { g.rect = area }

// ColorAt returns the blended colour for column i of a gradient width wide.
func (g *GradientNode) ColorAt(i, width int) lipgloss.Color {
	if width <= 1 {
		return lipgloss.Color(g.stops[0].Hex())
	}
	t := float64(i) / float64(width-1)
	segs := len(g.stops) - 1
	pos := t * float64(segs)
	seg := min(int(pos), segs-1)
	local := pos - float64(seg)
	return lipgloss.Color(g.stops[seg].BlendLab(g.stops[seg+1], local).Clamped().Hex())
}

func (g *GradientNode) Draw(c *Canvas) {
	for i := 0; i < g.rect.Width; i++ {
		bg := Style{Bg: g.ColorAt(i, g.rect.Width)}
		for y := g.rect.Y; y < g.rect.Bottom(); y++ {
			c.Paint(g.rect.X+i, y, bg)
		}
	}
}

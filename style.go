package shimmer

import "github.com/charmbracelet/lipgloss"

// Style is the visual styling of a cell: foreground, background and weight.
// Zero value represents default styling.
type Style struct {
	Fg   lipgloss.Color
	Bg   lipgloss.Color
	Bold bool
}

// NewStyle returns a new Style with default colors.
func NewStyle() Style {
	return Style{}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c lipgloss.Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c lipgloss.Color) Style {
	s.Bg = c
	return s
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s == other
}

// IsZero returns true if the style has no colors and no attributes.
func (s Style) IsZero() bool {
	return s == Style{}
}

// lipgloss converts the cell style into a lipgloss style for rendering.
func (s Style) lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if s.Fg != "" {
		ls = ls.Foreground(s.Fg)
	}
	if s.Bg != "" {
		ls = ls.Background(s.Bg)
	}
	if s.Bold {
		ls = ls.Bold(true)
	}
	return ls
}

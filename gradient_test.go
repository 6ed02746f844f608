package shimmer

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestGradient_Validation(t *testing.T) {
	type tc struct {
		width   int
		colors  []lipgloss.Color
		wantErr bool
	}

	tests := map[string]tc{
		"default colors": {width: 10},
		"custom colors":  {width: 3, colors: []lipgloss.Color{"#000000", "#ffffff"}},
		"zero width":     {width: 0, wantErr: true},
		"bad hex":        {width: 3, colors: []lipgloss.Color{"#000000", "blue"}, wantErr: true},
		"single colour":  {width: 3, colors: []lipgloss.Color{"#123456"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Gradient(tt.width, tt.colors...)
			if (err != nil) != tt.wantErr {
				t.Errorf("Gradient() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGradient_ColorAt(t *testing.T) {
	g := MustGradient(3, "#000000", "#ffffff")

	if got := g.ColorAt(0, 3); got != "#000000" {
		t.Errorf("ColorAt(0) = %q, want first stop", got)
	}
	if got := g.ColorAt(2, 3); got != "#ffffff" {
		t.Errorf("ColorAt(2) = %q, want last stop", got)
	}
	mid := g.ColorAt(1, 3)
	if mid == "#000000" || mid == "#ffffff" {
		t.Errorf("ColorAt(1) = %q, want a blend", mid)
	}
}

func TestGradient_Measure(t *testing.T) {
	g := MustGradient(12)
	if got := g.Measure(Size{Width: 4, Height: 3}); got != (Size{Width: 12, Height: 3}) {
		t.Errorf("Measure() = %+v, want fixed width and full height", got)
	}
}

func TestMustGradient_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustGradient(0) did not panic")
		}
	}()
	MustGradient(0)
}

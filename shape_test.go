package shimmer

import (
	"testing"
	"time"
)

func TestShape_OffsetsKeepShineContinuous(t *testing.T) {
	left := NewShape(WithWidth(20), WithHeight(1))
	right := NewShape(WithWidth(30), WithHeight(1))
	nested := NewShape(WithWidth(10), WithHeight(1))

	c, err := NewContainer(MustGradient(5),
		WithDuration(time.Second),
		WithEasing(Linear),
		WithStyle(WithMarginTRBL(0, 0, 0, 10), WithHeight(3)),
	)
	if err != nil {
		t.Fatalf("NewContainer() error: %v", err)
	}
	c.AddChild(
		NewRow(WithGap(2), WithHeight(1)).AddChild(left, right),
		NewColumn(WithPaddingTRBL(0, 0, 0, 3)).AddChild(nested),
	)
	s, err := NewScreen(c, WithScreenSize(100, 5))
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	s.Mount()
	s.Render()

	type tc struct {
		shape  *Shape
		offset int
	}

	tests := map[string]tc{
		"first in row":  {shape: left, offset: 0},
		"second in row": {shape: right, offset: 22},
		"nested":        {shape: nested, offset: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if !tt.shape.Measured() {
				t.Fatal("shape not measured after layout")
			}
			if got := tt.shape.Offset(); got != tt.offset {
				t.Errorf("Offset() = %d, want %d", got, tt.offset)
			}
			for _, v := range []float64{-15, 0, 37.4, 120} {
				want := c.Bounds().X + int(v+0.5)
				if v < 0 {
					want = c.Bounds().X + int(v-0.5)
				}
				if got := tt.shape.ShineX(v); got != want {
					t.Errorf("ShineX(%v) = %d, want %d", v, got, want)
				}
			}
		})
	}
}

func TestShape_DrawsClippedShine(t *testing.T) {
	shape := NewShape(WithWidth(10), WithHeight(1))
	shine := MustGradient(4, "#000000", "#ffffff")
	c, err := NewContainer(shine, WithDuration(time.Second), WithEasing(Linear))
	if err != nil {
		t.Fatalf("NewContainer() error: %v", err)
	}
	c.AddChild(shape)
	s, err := NewScreen(c, WithScreenSize(20, 2))
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	s.Mount()
	s.Render()

	// Start is -(0+4); snap the sweep so the shine covers columns 8..11.
	c.Driver().SetValue(8)
	buf := s.Frame()

	for x := 0; x < 8; x++ {
		if got := buf.Cell(x, 0).Style.Bg; got != DefaultShapeColor {
			t.Errorf("cell %d bg = %q, want shape color", x, got)
		}
	}
	if got := buf.Cell(8, 0).Style.Bg; got != shine.ColorAt(0, 4) {
		t.Errorf("cell 8 bg = %q, want first shine column %q", got, shine.ColorAt(0, 4))
	}
	if got := buf.Cell(9, 0).Style.Bg; got != shine.ColorAt(1, 4) {
		t.Errorf("cell 9 bg = %q, want second shine column %q", got, shine.ColorAt(1, 4))
	}
	if got := buf.Cell(10, 0).Style.Bg; got != "" {
		t.Errorf("cell 10 bg = %q, shine bled outside the shape", got)
	}
}

func TestShape_RevealOnce(t *testing.T) {
	content := Text("hello")
	shape := NewShape(WithWidth(10), WithHeight(1)).AddChild(content)
	s, err := NewScreen(shape, WithScreenSize(20, 1))
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	s.Mount()

	if err := shape.Reveal(); err != nil {
		t.Fatalf("Reveal() error: %v", err)
	}
	if !shape.Resolved() {
		t.Fatal("shape not resolved")
	}
	if err := shape.Reveal(); err != nil {
		t.Errorf("second Reveal() error: %v", err)
	}

	buf := s.Frame()
	if got := buf.Line(0); got[:5] != "hello" {
		t.Errorf("line = %q, want content", got)
	}
}

func TestShape_RevealDetached(t *testing.T) {
	shape := NewShape()
	if err := shape.Reveal(); err != ErrShapeDetached {
		t.Errorf("Reveal() error = %v, want ErrShapeDetached", err)
	}
}

func TestShape_UnmountDeregisters(t *testing.T) {
	keep := NewShape(WithHeight(1))
	drop := NewShape(WithHeight(1))
	async := NewAsync(NewPromise[Node]()).AddChild(drop)

	c, err := NewContainer(MustGradient(4), WithDuration(time.Second), WithReplace(true))
	if err != nil {
		t.Fatalf("NewContainer() error: %v", err)
	}
	c.AddChild(keep, async)
	s, err := NewScreen(c)
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	s.Mount()

	if got := c.Registered(); got != 2 {
		t.Fatalf("Registered() = %d, want 2", got)
	}
	drop.Unmount()
	if got := c.Registered(); got != 1 {
		t.Errorf("Registered() after unmount = %d, want 1", got)
	}

	if err := c.Reveal(); err != nil {
		t.Fatalf("Reveal() error: %v", err)
	}
	if !keep.Resolved() || drop.Resolved() {
		t.Errorf("resolved = (%v, %v), want (true, false)", keep.Resolved(), drop.Resolved())
	}
}

func TestShape_OutsideContainer(t *testing.T) {
	shape := NewShape(WithWidth(4), WithHeight(1))
	s, err := NewScreen(NewColumn(WithPaddingTRBL(0, 0, 0, 2)).AddChild(shape), WithScreenSize(10, 1))
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	s.Mount()
	buf := s.Frame()

	if got := shape.Offset(); got != 2 {
		t.Errorf("Offset() = %d, want absolute X 2", got)
	}
	for x := 2; x < 6; x++ {
		if got := buf.Cell(x, 0).Style.Bg; got != DefaultShapeColor {
			t.Errorf("cell %d bg = %q, want plain shape fill", x, got)
		}
	}
}

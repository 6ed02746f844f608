package shimmer

import (
	"context"
	"strings"
	"testing"
	"time"
)

type countingAnimator struct {
	total time.Duration
	calls int
}

func (a *countingAnimator) Advance(dt time.Duration) {
	a.total += dt
	a.calls++
}

func TestNewScreen_Options(t *testing.T) {
	type tc struct {
		opts    []ScreenOption
		root    Node
		wantErr bool
		want    Size
	}

	tests := map[string]tc{
		"defaults":        {root: Text("x"), want: Size{Width: 80, Height: 24}},
		"custom size":     {root: Text("x"), opts: []ScreenOption{WithScreenSize(40, 10)}, want: Size{Width: 40, Height: 10}},
		"negative size":   {root: Text("x"), opts: []ScreenOption{WithScreenSize(-1, 10)}, wantErr: true},
		"nil logger":      {root: Text("x"), opts: []ScreenOption{WithLogger(nil)}, wantErr: true},
		"nil dispatcher":  {root: Text("x"), opts: []ScreenOption{WithDispatcher(nil)}, wantErr: true},
		"nil root":        {wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := NewScreen(tt.root, tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Error("NewScreen() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewScreen() error: %v", err)
			}
			if got := s.ScreenSize(); got != tt.want {
				t.Errorf("ScreenSize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScreen_Animators(t *testing.T) {
	s, err := NewScreen(Text("x"))
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	a, b := &countingAnimator{}, &countingAnimator{}
	s.AddAnimator(a)
	remove := s.AddAnimator(b)

	s.Advance(10 * time.Millisecond)
	remove()
	remove()
	s.Advance(5 * time.Millisecond)

	if a.total != 15*time.Millisecond || a.calls != 2 {
		t.Errorf("a = %s/%d, want 15ms/2", a.total, a.calls)
	}
	if b.total != 10*time.Millisecond || b.calls != 1 {
		t.Errorf("b = %s/%d, want 10ms/1", b.total, b.calls)
	}
	if got := s.Animators(); got != 1 {
		t.Errorf("Animators() = %d, want 1", got)
	}
}

func TestScreen_DirtyTracking(t *testing.T) {
	s, err := NewScreen(Text("x"), WithScreenSize(4, 1))
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	s.Mount()
	if !s.Dirty() {
		t.Fatal("fresh screen should be dirty")
	}
	s.Render()
	if s.Dirty() {
		t.Fatal("screen dirty after Render")
	}

	s.Resize(4, 1)
	if s.Dirty() {
		t.Error("same-size Resize invalidated the screen")
	}
	s.Resize(8, 2)
	if !s.Dirty() {
		t.Error("Resize did not invalidate the screen")
	}
	if got := s.Frame(); got.Width() != 8 || got.Height() != 2 {
		t.Errorf("frame = %dx%d, want 8x2", got.Width(), got.Height())
	}
}

func TestScreen_RenderSnapshot(t *testing.T) {
	root := NewColumn(WithGap(1)).AddChild(
		Text("Ada Lovelace"),
		NewRow(WithGap(1)).AddChild(Text("a"), Text("b")),
	)
	s, err := NewScreen(root, WithScreenSize(14, 3))
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	s.Mount()
	buf := s.Frame()

	want := []string{
		"Ada Lovelace  ",
		"              ",
		"a b           ",
	}
	for y, line := range want {
		if got := buf.Line(y); got != line {
			t.Errorf("line %d = %q, want %q", y, got, line)
		}
	}
}

func TestScreen_MountIsIdempotent(t *testing.T) {
	c, err := NewContainer(MustGradient(2), WithDuration(time.Second))
	if err != nil {
		t.Fatalf("NewContainer() error: %v", err)
	}
	s, err := NewScreen(c)
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	s.Mount()
	s.Mount()
	if got := s.Animators(); got != 1 {
		t.Errorf("Animators() = %d, want 1", got)
	}
	s.Unmount()
	s.Unmount()
	if s.Mounted() {
		t.Error("Mounted() = true after Unmount")
	}
}

func TestScreen_DeliversLoaderOnUIGoroutine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := Go(ctx, func(ctx context.Context) (Node, error) {
		time.Sleep(5 * time.Millisecond)
		return Text("done"), nil
	})
	c, err := NewContainer(MustGradient(4), WithDuration(time.Second), WithLoader(loader))
	if err != nil {
		t.Fatalf("NewContainer() error: %v", err)
	}
	c.AddChild(NewShape(WithHeight(1)))
	s, err := NewScreen(c, WithScreenSize(20, 2))
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}
	s.Mount()
	defer s.Unmount()

	if _, err := loader.Wait(ctx); err != nil {
		t.Fatalf("Wait() error: %v", err)
	}
	// Settled, but the swap waits for the UI goroutine.
	if c.Content() != nil {
		t.Fatal("content swapped in on the producer goroutine")
	}
	deadline := time.Now().Add(time.Second)
	for c.Content() == nil && time.Now().Before(deadline) {
		s.Advance(time.Millisecond)
		s.Render()
	}
	if c.Content() == nil {
		t.Fatal("loader result never delivered")
	}
	if got := s.Frame().Line(0); !strings.HasPrefix(got, "done") {
		t.Errorf("line = %q, want resolved content", got)
	}
}

func TestScreen_FlushRunsNestedPosts(t *testing.T) {
	s, err := NewScreen(Text("x"))
	if err != nil {
		t.Fatalf("NewScreen() error: %v", err)
	}

	var order []int
	s.Post(func() {
		order = append(order, 1)
		s.Post(func() { order = append(order, 3) })
	})
	s.Post(func() { order = append(order, 2) })
	if len(order) != 0 {
		t.Fatalf("Post ran inline: %v", order)
	}

	s.Flush()
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Errorf("order = %v, want [1 2 3]", order)
	}
}

package shimmer

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Screen hosts a node tree: it owns the root scope, the frame animators and
// the cell buffer the tree is drawn into. All methods except Post, Dirty and
// Invalidate must be called from the UI goroutine.
//
// Without WithDispatcher, posted callbacks are queued and run by Flush, which
// Advance and Render call first.
type Screen struct {
	root       Node
	width      int
	height     int
	logger     *zap.Logger
	dispatcher Dispatcher

	mu        sync.Mutex
	animators []*animatorEntry
	posted    []func()

	dirty   atomic.Bool
	mounted bool
	scope   *Scope
	buf     *Buffer
}

type animatorEntry struct {
	a      Animator
	active bool
}

// ScreenOption is a functional option for configuring a Screen.
type ScreenOption func(*Screen) error

// WithScreenSize sets the initial drawing surface size.
func WithScreenSize(width, height int) ScreenOption {
	return func(s *Screen) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("screen size cannot be negative, got %dx%d", width, height)
		}
		s.width, s.height = width, height
		return nil
	}
}

// WithLogger sets the logger handed to every node through the scope.
func WithLogger(l *zap.Logger) ScreenOption {
	return func(s *Screen) error {
		if l == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		s.logger = l
		return nil
	}
}

// WithDispatcher sets how asynchronous callbacks reach the UI goroutine.
// Default is the screen's own queue, drained by Flush.
func WithDispatcher(d Dispatcher) ScreenOption {
	return func(s *Screen) error {
		if d == nil {
			return fmt.Errorf("dispatcher cannot be nil")
		}
		s.dispatcher = d
		return nil
	}
}

// NewScreen creates a host for root.
func NewScreen(root Node, opts ...ScreenOption) (*Screen, error) {
	if root == nil {
		return nil, fmt.Errorf("screen requires a root node")
	}
	s := &Screen{
		root:       root,
		width:      80,
		height:     24,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.dirty.Store(true)
	return s, nil
}

// Mount mounts the root with a fresh root scope. Idempotent.
func (s *Screen) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.scope = NewScope(s)
	s.root.Mount(s.scope)
	s.Invalidate()
}

// Unmount tears the tree down: containers stop their drivers and ignore
// late loader results.
func (s *Screen) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.root.Unmount()
	s.scope = nil
}

// Mounted reports whether the tree is attached.
func (s *Screen) Mounted() bool { return s.mounted }

// Resize changes the drawing surface; the next Render re-lays the tree out,
// which re-measures containers whose bounds changed.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = max(0, width), max(0, height)
	s.Invalidate()
}

// Advance runs queued callbacks, then moves every animator forward by dt.
func (s *Screen) Advance(dt time.Duration) {
	s.Flush()

	s.mu.Lock()
	entries := make([]*animatorEntry, 0, len(s.animators))
	for _, e := range s.animators {
		if e.active {
			entries = append(entries, e)
		}
	}
	s.animators = entries
	s.mu.Unlock()

	for _, e := range entries {
		if e.active {
			e.a.Advance(dt)
		}
	}
}

// Layout runs a layout pass over the tree, delivering measurements.
func (s *Screen) Layout() {
	area := NewRect(0, 0, s.width, s.height)
	avail := Size{Width: s.width, Height: s.height}
	s.root.Layout(arrangeColumn(area, []Node{s.root}, avail)[0])
}

// Render lays the tree out, draws it and returns the styled frame.
func (s *Screen) Render() string {
	s.draw()
	return s.buf.String()
}

// Frame lays the tree out, draws it and returns the buffer.
func (s *Screen) Frame() *Buffer {
	s.draw()
	return s.buf
}

func (s *Screen) draw() {
	s.Flush()
	s.dirty.Store(false)
	s.Layout()
	if s.buf == nil || s.buf.Width() != s.width || s.buf.Height() != s.height {
		s.buf = NewBuffer(s.width, s.height)
	} else {
		s.buf.Clear()
	}
	s.root.Draw(NewCanvas(s.buf))
}

// Dirty reports whether something changed since the last Render.
func (s *Screen) Dirty() bool { return s.dirty.Load() }

// Post implements Host. Safe from any goroutine.
func (s *Screen) Post(fn func()) {
	if s.dispatcher != nil {
		s.dispatcher.Post(fn)
		return
	}
	s.mu.Lock()
	s.posted = append(s.posted, fn)
	s.mu.Unlock()
	s.Invalidate()
}

// Flush runs the callbacks queued by Post in order, including any they post
// themselves. It is a no-op when a dispatcher was configured.
func (s *Screen) Flush() {
	for {
		s.mu.Lock()
		queued := s.posted
		s.posted = nil
		s.mu.Unlock()
		if len(queued) == 0 {
			return
		}
		for _, fn := range queued {
			fn()
		}
	}
}

// AddAnimator implements Host.
func (s *Screen) AddAnimator(a Animator) Unbind {
	e := &animatorEntry{a: a, active: true}
	s.mu.Lock()
	s.animators = append(s.animators, e)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		e.active = false
		s.mu.Unlock()
	}
}

// Animators returns the number of active animators.
func (s *Screen) Animators() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.animators {
		if e.active {
			n++
		}
	}
	return n
}

// ScreenSize implements Host.
func (s *Screen) ScreenSize() Size { return Size{Width: s.width, Height: s.height} }

// Invalidate implements Host.
func (s *Screen) Invalidate() { s.dirty.Store(true) }

// Logger implements Host.
func (s *Screen) Logger() *zap.Logger { return s.logger }

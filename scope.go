package shimmer

import (
	"time"

	"go.uber.org/zap"
)

// Unbind is a handle to remove a registration. Calling it more than once is
// safe.
type Unbind func()

// Dispatcher runs functions on the UI goroutine.
type Dispatcher interface {
	Post(fn func())
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(fn func())

// Post calls f(fn).
func (f DispatcherFunc) Post(fn func()) { f(fn) }

// Immediate runs posted functions inline on the caller's goroutine. Useful in
// tests and in hosts that are already on the UI goroutine.
var Immediate Dispatcher = DispatcherFunc(func(fn func()) { fn() })

// Animator is advanced by the host once per frame.
type Animator interface {
	Advance(dt time.Duration)
}

// Revealer is a placeholder handle that can swap its shimmer for its real
// content.
type Revealer interface {
	Reveal() error
}

// Host is the runtime a tree is mounted into.
type Host interface {
	Dispatcher
	// AddAnimator subscribes a to frame ticks.
	AddAnimator(a Animator) Unbind
	// ScreenSize returns the size of the drawing surface.
	ScreenSize() Size
	// Invalidate requests a redraw.
	Invalidate()
	// Logger returns the host's logger.
	Logger() *zap.Logger
}

// Placeholders is what a container provides to the shapes below it.
type Placeholders struct {
	// Driver is the shared sweep value, read-only to shapes.
	Driver DriverValue
	// Shine is the element swept across every shape.
	Shine Node
	// Origin returns the container's current bounds; shapes measure their
	// offset relative to its X.
	Origin func() Rect
	// Register adds a shape to the container's registration set.
	Register func(Revealer) Unbind
}

// Scope is the handle passed down the tree at mount time. It gives every
// node access to the host and, below a container, to that container's
// placeholder context. The nearest container wins.
type Scope struct {
	host         Host
	placeholders *Placeholders
}

// NewScope returns a root scope for host.
func NewScope(host Host) *Scope {
	return &Scope{host: host}
}

// Provide returns a child scope carrying p for the subtree below it.
func (s *Scope) Provide(p *Placeholders) *Scope {
	return &Scope{host: s.host, placeholders: p}
}

// Host returns the runtime the scope belongs to.
func (s *Scope) Host() Host { return s.host }

// Placeholders returns the nearest container's context, or nil when the
// scope is not below a container.
func (s *Scope) Placeholders() *Placeholders {
	if s == nil {
		return nil
	}
	return s.placeholders
}

// Post runs fn on the UI goroutine.
func (s *Scope) Post(fn func()) {
	s.host.Post(fn)
}

// Logger returns the host logger, never nil.
func (s *Scope) Logger() *zap.Logger {
	if s == nil || s.host == nil || s.host.Logger() == nil {
		return zap.NewNop()
	}
	return s.host.Logger()
}

// Invalidate requests a redraw from the host.
func (s *Scope) Invalidate() {
	if s != nil && s.host != nil {
		s.host.Invalidate()
	}
}

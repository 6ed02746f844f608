package shimmer

import (
	"go.uber.org/zap"
)

// Async renders its fallback children until the loader resolves, then the
// resolved node permanently. It is independent of the placeholder machinery
// and passes its scope through, so it can wrap containers.
type Async struct {
	props
	loader   *Promise[Node]
	fallback []Node
	content  Node
	scope    *Scope
	cancel   Unbind
	alive    bool
	rect     Rect
}

// NewAsync creates an async wrapper around loader.
func NewAsync(loader *Promise[Node], opts ...Option) *Async {
	return &Async{props: newProps(opts), loader: loader}
}

// AddChild appends fallback content shown until resolution.
func (a *Async) AddChild(children ...Node) *Async {
	a.fallback = append(a.fallback, children...)
	if a.alive && a.content == nil {
		mountAll(children, a.scope)
	}
	return a
}

// Resolved reports whether the loader's node is showing.
func (a *Async) Resolved() bool { return a.content != nil }

func (a *Async) Mount(scope *Scope) {
	a.scope = scope
	a.alive = true
	mountAll(a.current(), scope)
	if a.loader != nil {
		a.cancel = a.loader.Then(scope.Host(), a.resolve, a.reject)
	}
}

func (a *Async) Unmount() {
	if !a.alive {
		return
	}
	a.alive = false
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.content != nil {
		a.content.Unmount()
	} else {
		unmountAll(a.fallback)
	}
}

func (a *Async) resolve(node Node) {
	if !a.alive || a.content != nil {
		return
	}
	if node == nil {
		a.scope.Logger().Warn("async loader resolved without content; keeping fallback")
		return
	}
	unmountAll(a.fallback)
	a.content = node
	node.Mount(a.scope)
	a.scope.Invalidate()
}

func (a *Async) reject(err error) {
	if !a.alive {
		return
	}
	a.scope.Logger().Warn("async loader rejected; keeping fallback", zap.Error(err))
}

func (a *Async) current() []Node {
	if a.content != nil {
		return []Node{a.content}
	}
	return a.fallback
}

func (a *Async) LayoutStyle() LayoutStyle { return a.layout }

func (a *Async) Measure(avail Size) Size {
	return measureColumn(a.current(), avail)
}

func (a *Async) Layout(area Rect) {
	a.rect = area
	children := a.current()
	rects := arrangeColumn(area, children, Size{Width: area.Width, Height: area.Height})
	for i, child := range children {
		child.Layout(rects[i])
	}
}

func (a *Async) Draw(c *Canvas) {
	c = c.Clip(a.rect)
	for _, child := range a.current() {
		child.Draw(c)
	}
}

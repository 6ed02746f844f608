package shimmer

import (
	"errors"
	"fmt"
	"time"

	"github.com/grindlemire/go-shimmer/internal/debug"
	"github.com/grindlemire/go-shimmer/internal/layout"
	"go.uber.org/zap"
)

// offscreenX is where the shine copy is placed while it is being measured.
const offscreenX = -1000

// Container coordinates the loading illusion for its subtree. It measures
// itself and its shine element, owns the shared Driver, provides the
// placeholder context to every descendant Shape, and swaps in the loader's
// content once it resolves.
type Container struct {
	props
	shine       Node
	duration    time.Duration
	delay       time.Duration
	easing      Easing
	loader      *Promise[Node]
	replace     bool
	screenWidth int
	onError     func(error)
	logger      *zap.Logger

	children []Node
	driver   *Driver
	status   Status
	content  Node
	registry []*registration
	rect     Rect

	parent *Scope
	scope  *Scope
	alive  bool

	cancelLoader   Unbind
	removeAnimator Unbind
	unbindDriver   Unbind
}

type registration struct {
	handle Revealer
	active bool
}

// NewContainer creates a container sweeping shine across its placeholders.
// WithDuration is required.
func NewContainer(shine Node, opts ...ContainerOption) (*Container, error) {
	if shine == nil {
		return nil, fmt.Errorf("container requires a shine element")
	}
	c := &Container{
		props:  newProps(nil),
		shine:  shine,
		easing: EaseInOut,
		driver: NewDriver(0),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.duration <= 0 {
		return nil, fmt.Errorf("container requires a sweep duration")
	}
	return c, nil
}

// AddChild appends placeholder shapes or arbitrary wrapper nodes.
func (c *Container) AddChild(children ...Node) *Container {
	c.children = append(c.children, children...)
	if c.alive && c.content == nil {
		mountAll(children, c.scope)
	}
	return c
}

// Mount attaches the container, provides the placeholder context to its
// children, subscribes to frame ticks and attaches the loader. Measurements
// from an earlier mount are discarded so the next layout restarts the sweep.
func (c *Container) Mount(parent *Scope) {
	if c.alive {
		return
	}
	c.parent = parent
	c.alive = true
	c.status.ContainerMeasured = false
	c.status.ShineMeasured = false
	c.registry = nil
	c.scope = parent.Provide(&Placeholders{
		Driver:   c.driver,
		Shine:    c.shine,
		Origin:   c.Bounds,
		Register: c.register,
	})

	c.shine.Mount(c.scope)
	if c.content != nil {
		c.content.Mount(parent)
	} else {
		mountAll(c.children, c.scope)
	}

	if host := parent.Host(); host != nil {
		c.removeAnimator = host.AddAnimator(c)
	}
	c.unbindDriver = c.driver.Bind(func(float64) { parent.Invalidate() })

	if c.loader != nil {
		c.cancelLoader = c.loader.Then(parent.Host(), c.handleResolved, c.handleRejected)
	}
}

// Unmount stops the driver, drops the loader subscription and detaches the
// subtree. A loader resolving afterwards has no effect.
func (c *Container) Unmount() {
	if !c.alive {
		return
	}
	c.alive = false
	for _, release := range []Unbind{c.cancelLoader, c.removeAnimator, c.unbindDriver} {
		if release != nil {
			release()
		}
	}
	c.cancelLoader, c.removeAnimator, c.unbindDriver = nil, nil, nil
	c.driver.Stop()

	if c.content != nil {
		c.content.Unmount()
	} else {
		unmountAll(c.children)
	}
	c.shine.Unmount()
}

// Advance moves the sweep forward. Called by the host once per frame.
func (c *Container) Advance(dt time.Duration) {
	c.driver.Advance(dt)
}

// MeasureContainer records the container's bounds.
func (c *Container) MeasureContainer(bounds Rect) {
	c.apply(ContainerMeasured{Bounds: bounds})
}

// MeasureShine records the shine element's bounds.
func (c *Container) MeasureShine(bounds Rect) {
	c.apply(ShineMeasured{Bounds: bounds})
}

func (c *Container) apply(ev Event) {
	if !c.alive {
		return
	}
	next, cmd := c.status.Apply(ev)
	c.status = next
	debug.Log("container: %T -> %s (start=%.0f stop=%.0f)", ev, cmd, next.Start, next.Stop)

	switch cmd {
	case CommandRestart:
		c.driver.SetValue(next.Start)
		c.driver.Start(Sweep{
			Target:   next.Target(float64(c.fallbackWidth())),
			Reset:    next.Start,
			Duration: c.duration,
			Delay:    c.delay,
			Easing:   c.easing,
		})
	case CommandStop:
		c.driver.Stop()
	}
}

func (c *Container) fallbackWidth() int {
	if c.screenWidth > 0 {
		return c.screenWidth
	}
	if c.parent != nil && c.parent.Host() != nil {
		return c.parent.Host().ScreenSize().Width
	}
	return 0
}

func (c *Container) register(h Revealer) Unbind {
	if !c.replace {
		return func() {}
	}
	reg := &registration{handle: h, active: true}
	c.registry = append(c.registry, reg)
	return func() { reg.active = false }
}

func (c *Container) handleResolved(node Node) {
	if !c.alive {
		debug.Log("container: loader resolved after unmount; ignored")
		return
	}
	if c.replace {
		if err := c.Reveal(); err != nil && c.onError != nil {
			c.onError(err)
		}
		return
	}
	if c.status.Resolved {
		return
	}
	if node == nil {
		c.log().Warn("loader resolved without content; keeping placeholders")
		return
	}

	unmountAll(c.children)
	c.content = node
	node.Mount(c.parent)
	c.apply(ContentResolved{})
	c.parent.Invalidate()
}

func (c *Container) handleRejected(err error) {
	if !c.alive {
		return
	}
	c.log().Warn("loader rejected; keeping placeholders", zap.Error(err))
	if c.onError != nil {
		c.onError(err)
	}
}

// Reveal asks every registered shape, in registration order, to show its
// content. A failing or panicking shape is logged and skipped; the rest are
// still revealed. The joined failures are returned, and calling Reveal again
// retries only the shapes that are still unresolved.
func (c *Container) Reveal() error {
	if !c.alive {
		return ErrNotMounted
	}
	var errs []error
	for i, reg := range c.registry {
		if !reg.active {
			continue
		}
		if err := revealSafely(reg.handle); err != nil {
			c.log().Warn("placeholder reveal failed", zap.Int("index", i), zap.Error(err))
			errs = append(errs, fmt.Errorf("placeholder %d: %w", i, err))
		}
	}
	c.parent.Invalidate()
	return errors.Join(errs...)
}

func revealSafely(r Revealer) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrRevealPanicked, rec)
		}
	}()
	return r.Reveal()
}

func (c *Container) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return c.parent.Logger()
}

func (c *Container) LayoutStyle() LayoutStyle { return c.layout }

func (c *Container) Measure(avail Size) Size {
	pad := c.layout.Padding
	inner := Size{Width: max(0, avail.Width-pad.Horizontal()), Height: max(0, avail.Height-pad.Vertical())}
	var ext Size
	if c.content != nil {
		ext = measureColumn([]Node{c.content}, inner)
	} else {
		ext = layout.Extent(DirColumn, c.gap, boxes(c.children, inner), inner)
	}
	return Size{Width: ext.Width + pad.Horizontal(), Height: ext.Height + pad.Vertical()}
}

// Layout positions the subtree and delivers the two measurements: the
// container's own bounds whenever they change, and the off-screen shine copy
// until it has been measured once.
func (c *Container) Layout(area Rect) {
	c.rect = area
	content := area.Inset(c.layout.Padding)
	avail := Size{Width: content.Width, Height: content.Height}

	if !c.status.ContainerMeasured || c.status.Container != area {
		c.MeasureContainer(area)
	}
	if !c.status.ShineMeasured {
		size := c.shine.Measure(avail)
		c.MeasureShine(Rect{X: offscreenX, Y: area.Y, Width: size.Width, Height: size.Height})
	}

	if c.content != nil {
		c.content.Layout(arrangeColumn(content, []Node{c.content}, avail)[0])
		return
	}
	rects := layout.Arrange(DirColumn, content, c.gap, boxes(c.children, avail))
	for i, child := range c.children {
		child.Layout(rects[i])
	}
}

func (c *Container) Draw(cv *Canvas) {
	cv = cv.Clip(c.rect)
	if c.style.Bg != "" {
		cv.Fill(c.rect, c.style)
	}
	if c.content != nil {
		c.content.Draw(cv)
		return
	}
	for _, child := range c.children {
		child.Draw(cv)
	}
}

// Bounds returns the rectangle assigned by the last layout pass.
func (c *Container) Bounds() Rect { return c.rect }

// Status returns the current measurement state.
func (c *Container) Status() Status { return c.status }

// Driver returns the container's shared driver.
func (c *Container) Driver() *Driver { return c.driver }

// Content returns the resolved node, or nil while placeholders are shown.
func (c *Container) Content() Node { return c.content }

// Registered returns the number of active registrations.
func (c *Container) Registered() int {
	n := 0
	for _, reg := range c.registry {
		if reg.active {
			n++
		}
	}
	return n
}

// Frame is what a renderer needs to know about a container.
type Frame struct {
	Start    float64
	Stop     float64
	Value    float64
	Resolved bool
	Running  bool
}

// Snapshot returns the container's current frame.
func (c *Container) Snapshot() Frame {
	return Frame{
		Start:    c.status.Start,
		Stop:     c.status.Stop,
		Value:    c.driver.Value(),
		Resolved: c.status.Resolved,
		Running:  c.driver.Running(),
	}
}

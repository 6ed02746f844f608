package shimmer

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/grindlemire/go-shimmer/internal/debug"
)

// DriverValue is the read side of a Driver. Placeholder shapes only ever see
// this interface.
type DriverValue interface {
	Value() float64
}

// Sweep describes one animation loop: animate from the current value to
// Target over Duration, hold for Delay, snap to Reset, repeat.
type Sweep struct {
	Target   float64
	Reset    float64
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing // nil means EaseInOut
}

// Period returns the length of one loop iteration.
func (s Sweep) Period() time.Duration {
	return s.Duration + s.Delay
}

// Driver is the single shared animated value of a container.
//
// Thread Safety Rules:
//   - Value() is safe to call from any goroutine
//   - SetValue, Start, Stop and Advance must only be called from the UI
//     goroutine that owns the driver
type Driver struct {
	mu       sync.RWMutex
	value    float64
	active   *Loop
	bindings []*driverBinding
}

type driverBinding struct {
	fn     func(float64)
	active bool
}

var loopIDs atomic.Uint64

// NewDriver creates a driver holding initial.
func NewDriver(initial float64) *Driver {
	return &Driver{value: initial}
}

// Value returns the current value. Thread-safe.
func (d *Driver) Value() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value
}

// SetValue snaps the value and stops the active loop, if any.
func (d *Driver) SetValue(v float64) {
	d.Stop()
	d.set(v)
}

func (d *Driver) set(v float64) {
	d.mu.Lock()
	changed := d.value != v
	d.value = v
	bindings := make([]*driverBinding, 0, len(d.bindings))
	for _, b := range d.bindings {
		if b.active {
			bindings = append(bindings, b)
		}
	}
	d.bindings = bindings
	d.mu.Unlock()

	if !changed {
		return
	}
	for _, b := range bindings {
		b.fn(v)
	}
}

// Bind registers fn to be called whenever the value changes.
func (d *Driver) Bind(fn func(float64)) Unbind {
	d.mu.Lock()
	b := &driverBinding{fn: fn, active: true}
	d.bindings = append(d.bindings, b)
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		b.active = false
		d.mu.Unlock()
	}
}

// Start stops any running loop and begins a new one from the current value.
// The returned handle stops exactly this loop.
func (d *Driver) Start(s Sweep) *Loop {
	d.Stop()
	if s.Easing == nil {
		s.Easing = EaseInOut
	}
	l := &Loop{
		id:     loopIDs.Add(1),
		driver: d,
		sweep:  s,
		from:   d.Value(),
	}
	d.mu.Lock()
	d.active = l
	d.mu.Unlock()
	debug.Log("driver: loop %d started target=%.1f reset=%.1f duration=%s delay=%s",
		l.id, s.Target, s.Reset, s.Duration, s.Delay)
	return l
}

// Stop halts the active loop, leaving the value where it last was.
func (d *Driver) Stop() {
	d.mu.RLock()
	l := d.active
	d.mu.RUnlock()
	if l != nil {
		l.Stop()
	}
}

// Active returns the running loop or nil.
func (d *Driver) Active() *Loop {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.active
}

// Running reports whether a loop is active.
func (d *Driver) Running() bool {
	return d.Active() != nil
}

// Advance moves the active loop forward by dt. Without an active loop it is
// a no-op.
func (d *Driver) Advance(dt time.Duration) {
	if l := d.Active(); l != nil {
		l.advance(dt)
	}
}

func (d *Driver) release(l *Loop) {
	d.mu.Lock()
	if d.active == l {
		d.active = nil
	}
	d.mu.Unlock()
}

type loopPhase uint8

const (
	phaseSweep loopPhase = iota
	phaseHold
)

// Loop is the handle of one running animation loop.
type Loop struct {
	id      uint64
	driver  *Driver
	sweep   Sweep
	from    float64
	phase   loopPhase
	elapsed time.Duration
	cycles  int
	stopped bool
}

// Stop halts the loop. Idempotent; stopping a loop that has been replaced
// does not affect its successor.
func (l *Loop) Stop() {
	if l.stopped {
		return
	}
	l.stopped = true
	l.driver.release(l)
	debug.Log("driver: loop %d stopped after %d cycles", l.id, l.cycles)
}

// Stopped reports whether the loop has been stopped.
func (l *Loop) Stopped() bool { return l.stopped }

// Cycles returns how many full iterations completed.
func (l *Loop) Cycles() int { return l.cycles }

// Sweep returns the loop's parameters.
func (l *Loop) Sweep() Sweep { return l.sweep }

func (l *Loop) advance(dt time.Duration) {
	if l.stopped || dt <= 0 {
		return
	}
	s := l.sweep
	period := s.Period()
	if period <= 0 {
		l.driver.set(s.Target)
		l.cycles++
		return
	}

	// Skip whole periods at once; the loop state is periodic after the first
	// reset.
	if whole := dt / period; whole > 0 {
		l.cycles += int(whole)
		l.from = s.Reset
		dt -= whole * period
	}

	for dt > 0 {
		switch l.phase {
		case phaseSweep:
			remaining := s.Duration - l.elapsed
			if dt < remaining {
				l.elapsed += dt
				dt = 0
				progress := float64(l.elapsed) / float64(s.Duration)
				l.driver.set(l.from + (s.Target-l.from)*s.Easing(progress))
				continue
			}
			dt -= remaining
			l.driver.set(s.Target)
			l.phase, l.elapsed = phaseHold, 0
		case phaseHold:
			remaining := s.Delay - l.elapsed
			if dt < remaining {
				l.elapsed += dt
				dt = 0
				continue
			}
			dt -= remaining
			l.driver.set(s.Reset)
			l.from = s.Reset
			l.phase, l.elapsed = phaseSweep, 0
			l.cycles++
		}
	}
}

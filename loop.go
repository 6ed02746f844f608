package shimmer

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"
)

// EventLoop serializes every callback of a placeholder tree onto one
// goroutine: queued functions (loader results, watcher events) and frame
// ticks. It implements Dispatcher.
type EventLoop struct {
	eventQueue    chan func()
	stopCh        chan struct{}
	stopOnce      sync.Once
	frameDuration time.Duration
	queueSize     int

	mu       sync.Mutex
	frames   []func(dt time.Duration)
	watchers []Watcher
	running  bool
}

// LoopOption is a functional option for configuring an EventLoop.
type LoopOption func(*EventLoop) error

// WithFrameRate sets the target frame rate. Default is 30 fps. Valid range
// is 1-240 fps.
func WithFrameRate(fps int) LoopOption {
	return func(l *EventLoop) error {
		if fps < 1 {
			return fmt.Errorf("frame rate must be at least 1 fps")
		}
		if fps > 240 {
			return fmt.Errorf("frame rate cannot exceed 240 fps")
		}
		l.frameDuration = time.Second / time.Duration(fps)
		return nil
	}
}

// WithEventQueueSize sets the capacity of the event queue buffer.
// Default is 256. Must be at least 1.
func WithEventQueueSize(size int) LoopOption {
	return func(l *EventLoop) error {
		if size < 1 {
			return fmt.Errorf("event queue size must be at least 1")
		}
		l.queueSize = size
		return nil
	}
}

// NewEventLoop creates a stopped loop.
func NewEventLoop(opts ...LoopOption) (*EventLoop, error) {
	l := &EventLoop{
		stopCh:        make(chan struct{}),
		frameDuration: time.Second / 30,
		queueSize:     256,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	l.eventQueue = make(chan func(), l.queueSize)
	return l, nil
}

// FrameDuration returns the time between frames.
func (l *EventLoop) FrameDuration() time.Duration { return l.frameDuration }

// OnFrame registers fn to run once per frame with the time since the
// previous frame.
func (l *EventLoop) OnFrame(fn func(dt time.Duration)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frames = append(l.frames, fn)
}

// AddWatcher registers w. Watchers added while running start immediately.
func (l *EventLoop) AddWatcher(w Watcher) {
	l.mu.Lock()
	l.watchers = append(l.watchers, w)
	running := l.running
	l.mu.Unlock()
	if running {
		w.Start(l.eventQueue, l.stopCh)
	}
}

// Post enqueues fn to run on the loop goroutine. Safe to call from any
// goroutine. Blocks while the queue is full; dropped once the loop stopped.
func (l *EventLoop) Post(fn func()) {
	select {
	case l.eventQueue <- fn:
	case <-l.stopCh:
	}
}

// Run processes events and frames until Stop is called or ctx is done.
func (l *EventLoop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return fmt.Errorf("event loop already running")
	}
	l.running = true
	watchers := append([]Watcher(nil), l.watchers...)
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	for _, w := range watchers {
		w.Start(l.eventQueue, l.stopCh)
	}

	last := time.Now()
	for {
		frameStart := time.Now()

		// Process events for up to half the frame budget.
		deadline := frameStart.Add(l.frameDuration / 2)
	events:
		for time.Now().Before(deadline) {
			select {
			case fn := <-l.eventQueue:
				fn()
			case <-l.stopCh:
				return nil
			case <-ctx.Done():
				l.Stop()
				return ctx.Err()
			default:
				break events
			}
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now
		l.mu.Lock()
		frames := slices.Clone(l.frames)
		l.mu.Unlock()
		for _, fn := range frames {
			fn(dt)
		}

		if elapsed := time.Since(frameStart); elapsed < l.frameDuration {
			select {
			case <-time.After(l.frameDuration - elapsed):
			case <-l.stopCh:
				return nil
			case <-ctx.Done():
				l.Stop()
				return ctx.Err()
			}
		}
	}
}

// Stop signals Run and every watcher to exit. Idempotent.
func (l *EventLoop) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

// Done returns a channel closed once Stop has been called.
func (l *EventLoop) Done() <-chan struct{} {
	return l.stopCh
}

// Drive advances s every frame and calls render whenever the screen is
// dirty. render runs on the loop goroutine and usually calls s.Render.
func (l *EventLoop) Drive(s *Screen, render func(*Screen)) {
	l.OnFrame(func(dt time.Duration) {
		s.Advance(dt)
		if s.Dirty() && render != nil {
			render(s)
		}
	})
}

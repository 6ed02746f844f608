package shimmer

import (
	"time"

	"github.com/grindlemire/go-shimmer/internal/debug"
)

// Watcher is a deferred event source started by the EventLoop. Its goroutine
// hands work to the loop through eventQueue and exits when stopCh closes.
type Watcher interface {
	Start(eventQueue chan<- func(), stopCh <-chan struct{})
}

// enqueue posts fn unless the loop is stopping. Returns false on stop.
func enqueue(eventQueue chan<- func(), stopCh <-chan struct{}, fn func()) bool {
	select {
	case eventQueue <- fn:
		return true
	case <-stopCh:
		return false
	}
}

func stopped(stopCh <-chan struct{}) bool {
	select {
	case <-stopCh:
		return true
	default:
		return false
	}
}

type channelWatcher[T any] struct {
	ch      <-chan T
	handler func(T)
}

// Watch calls handler on the loop goroutine for every value received on ch.
// The watcher exits when ch closes or the loop stops.
func Watch[T any](ch <-chan T, handler func(T)) Watcher {
	return &channelWatcher[T]{ch: ch, handler: handler}
}

func (w *channelWatcher[T]) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		for {
			select {
			case <-stopCh:
				return
			case v, ok := <-w.ch:
				if !ok || stopped(stopCh) {
					return
				}
				if !enqueue(eventQueue, stopCh, func() { w.handler(v) }) {
					return
				}
			}
		}
	}()
}

type timerWatcher struct {
	interval time.Duration
	handler  func()
}

// OnTimer calls handler on the loop goroutine every interval.
func OnTimer(interval time.Duration, handler func()) Watcher {
	return &timerWatcher{interval: interval, handler: handler}
}

func (w *timerWatcher) Start(eventQueue chan<- func(), stopCh <-chan struct{}) {
	go func() {
		debug.Log("timer watcher started interval=%s", w.interval)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				if stopped(stopCh) || !enqueue(eventQueue, stopCh, w.handler) {
					return
				}
			}
		}
	}()
}

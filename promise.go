package shimmer

import (
	"context"
	"sync"
)

// PromiseState is the settlement state of a Promise.
type PromiseState uint8

const (
	Pending   PromiseState = iota // Not yet settled
	Fulfilled                     // Resolved with a value
	Rejected                      // Rejected with an error
)

func (s PromiseState) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Promise is an eventual value that settles at most once.
//
// Resolve, Reject and Then are safe to call from any goroutine. Callbacks are
// delivered through the Dispatcher passed to Then, so UI code receives them
// on the UI goroutine.
type Promise[T any] struct {
	mu     sync.Mutex
	state  PromiseState
	value  T
	err    error
	subs   []*subscription[T]
	done   chan struct{}
	nextID uint64
}

type subscription[T any] struct {
	id       uint64
	dispatch Dispatcher
	onValue  func(T)
	onErr    func(error)
}

// NewPromise returns a pending promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolved returns a promise already fulfilled with v.
func Resolved[T any](v T) *Promise[T] {
	p := NewPromise[T]()
	p.Resolve(v)
	return p
}

// Go runs fn on a new goroutine and settles the promise with its result. If
// ctx is cancelled first, the promise is rejected with ErrPromiseCancelled.
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Promise[T] {
	p := NewPromise[T]()
	go func() {
		v, err := fn(ctx)
		if err != nil {
			p.Reject(err)
			return
		}
		if ctx.Err() != nil {
			p.Reject(ErrPromiseCancelled)
			return
		}
		p.Resolve(v)
	}()
	return p
}

// Resolve fulfills the promise. Returns false if it was already settled.
func (p *Promise[T]) Resolve(v T) bool {
	return p.settle(Fulfilled, v, nil)
}

// Reject rejects the promise. Returns false if it was already settled.
func (p *Promise[T]) Reject(err error) bool {
	var zero T
	return p.settle(Rejected, zero, err)
}

func (p *Promise[T]) settle(state PromiseState, v T, err error) bool {
	p.mu.Lock()
	if p.state != Pending {
		p.mu.Unlock()
		return false
	}
	p.state, p.value, p.err = state, v, err
	subs := p.subs
	p.subs = nil
	close(p.done)
	p.mu.Unlock()

	for _, sub := range subs {
		p.deliver(sub)
	}
	return true
}

func (p *Promise[T]) deliver(sub *subscription[T]) {
	p.mu.Lock()
	state, v, err := p.state, p.value, p.err
	p.mu.Unlock()

	dispatch := sub.dispatch
	if dispatch == nil {
		dispatch = Immediate
	}
	switch state {
	case Fulfilled:
		if sub.onValue != nil {
			dispatch.Post(func() { sub.onValue(v) })
		}
	case Rejected:
		if sub.onErr != nil {
			dispatch.Post(func() { sub.onErr(err) })
		}
	}
}

// Then registers callbacks for settlement. Exactly one of them runs, once,
// through d. If the promise is already settled the callback is posted
// immediately. The returned Unbind drops the subscription if it has not
// been delivered yet.
func (p *Promise[T]) Then(d Dispatcher, onValue func(T), onErr func(error)) Unbind {
	p.mu.Lock()
	p.nextID++
	sub := &subscription[T]{id: p.nextID, dispatch: d, onValue: onValue, onErr: onErr}
	if p.state == Pending {
		p.subs = append(p.subs, sub)
		p.mu.Unlock()
		return func() { p.unsubscribe(sub.id) }
	}
	p.mu.Unlock()

	p.deliver(sub)
	return func() {}
}

func (p *Promise[T]) unsubscribe(id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, sub := range p.subs {
		if sub.id == id {
			p.subs = append(p.subs[:i], p.subs[i+1:]...)
			return
		}
	}
}

// State returns the current settlement state.
func (p *Promise[T]) State() PromiseState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Done returns a channel closed when the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the promise settles or ctx is done.
func (p *Promise[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

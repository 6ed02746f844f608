package shimmer

import (
	"context"
	"testing"
	"time"
)

func drain(eventQueue chan func()) int {
	n := 0
	for len(eventQueue) > 0 {
		fn := <-eventQueue
		fn()
		n++
	}
	return n
}

func TestWatch_DeliversInOrder(t *testing.T) {
	ch := make(chan int, 3)
	eventQueue := make(chan func(), 10)
	stopCh := make(chan struct{})
	defer close(stopCh)

	var got []int
	Watch(ch, func(v int) { got = append(got, v) }).Start(eventQueue, stopCh)

	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	deadline := time.Now().Add(time.Second)
	for len(got) < 3 && time.Now().Before(deadline) {
		drain(eventQueue)
		time.Sleep(5 * time.Millisecond)
	}

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestWatch_StopsWithLoop(t *testing.T) {
	ch := make(chan string)
	eventQueue := make(chan func(), 1)
	stopCh := make(chan struct{})

	called := false
	Watch(ch, func(string) { called = true }).Start(eventQueue, stopCh)
	close(stopCh)

	// The watcher may still take the value, but it must not hand it on.
	select {
	case ch <- "late":
	case <-time.After(30 * time.Millisecond):
	}
	time.Sleep(10 * time.Millisecond)

	if n := drain(eventQueue); n != 0 {
		t.Errorf("%d events queued after stop, want 0", n)
	}
	if called {
		t.Error("handler called after stop")
	}
}

func TestOnTimer_Fires(t *testing.T) {
	eventQueue := make(chan func(), 10)
	stopCh := make(chan struct{})

	count := 0
	OnTimer(10*time.Millisecond, func() { count++ }).Start(eventQueue, stopCh)

	time.Sleep(45 * time.Millisecond)
	close(stopCh)
	drain(eventQueue)

	if count < 2 || count > 5 {
		t.Errorf("timer fired %d times, want 2-5", count)
	}
}

func TestEventLoop_StartsWatchersAddedWhileRunning(t *testing.T) {
	l, err := NewEventLoop(WithFrameRate(100))
	if err != nil {
		t.Fatalf("NewEventLoop() error: %v", err)
	}
	ch := make(chan string, 1)

	var got string
	l.Post(func() {
		l.AddWatcher(Watch(ch, func(v string) {
			got = v
			l.Stop()
		}))
		ch <- "hello"
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got != "hello" {
		t.Errorf("got %q, want hello", got)
	}
}

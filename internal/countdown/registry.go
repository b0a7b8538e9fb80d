package countdown

import (
	"sync"
	"time"
)

// Sink receives each rendered countdown frame. It is called from the
// ticker's goroutine, once immediately on start and then once per second.
type Sink func(text string)

type ticker struct {
	stop chan struct{}
	done chan struct{}
}

// Registry tracks running countdowns keyed by their output target id.
// Starting a key that is already running replaces the old ticker first, so
// callers can re-render a list without tracking handles themselves.
type Registry struct {
	mu     sync.Mutex
	timers map[string]*ticker
	now    func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		timers: make(map[string]*ticker),
		now:    time.Now,
	}
}

// Start begins a countdown toward deadline, emitting frames to sink. Any
// countdown previously started under the same key is stopped before the new
// one begins. After the deadline passes the countdown keeps emitting
// "0d 00:00:00"; only Stop or StopAll ends it.
func (r *Registry) Start(key string, deadline time.Time, sink Sink) {
	t := &ticker{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	r.mu.Lock()
	if prev, ok := r.timers[key]; ok {
		close(prev.stop)
		<-prev.done
	}
	r.timers[key] = t
	r.mu.Unlock()

	go func() {
		defer close(t.done)
		tick := time.NewTicker(time.Second)
		defer tick.Stop()

		sink(Format(Remaining(deadline, r.now())))
		for {
			select {
			case <-t.stop:
				return
			case <-tick.C:
				sink(Format(Remaining(deadline, r.now())))
			}
		}
	}()
}

// Stop cancels the countdown for key, if any, and waits for its goroutine
// to exit.
func (r *Registry) Stop(key string) {
	r.mu.Lock()
	t, ok := r.timers[key]
	if ok {
		delete(r.timers, key)
	}
	r.mu.Unlock()
	if ok {
		close(t.stop)
		<-t.done
	}
}

// StopAll cancels every running countdown. Used on teardown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	timers := r.timers
	r.timers = make(map[string]*ticker)
	r.mu.Unlock()
	for _, t := range timers {
		close(t.stop)
		<-t.done
	}
}

// Active reports how many countdowns are currently running.
func (r *Registry) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

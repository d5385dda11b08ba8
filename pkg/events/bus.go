package events

import (
	"sync"
)

// CartUpdated is published after every cart mutation. It carries no payload;
// subscribers re-read the store.
const CartUpdated = "cartUpdated"

// Bus is a synchronous in-process publish/subscribe broadcaster. Delivery is
// fire-and-forget: handlers registered after a publish never see it, and there
// is no queueing. Subscribers must call the returned unsubscribe func on
// teardown or their handlers keep firing with whatever they closed over.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func()
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]func())}
}

// Subscribe registers fn for event and returns its unsubscribe func.
// Unsubscribing twice is harmless.
func (b *Bus) Subscribe(event string, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[event] == nil {
		b.subs[event] = make(map[int]func())
	}
	id := b.next
	b.next++
	b.subs[event][id] = fn

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[event], id)
	}
}

// Publish invokes every current subscriber of event, synchronously, on the
// calling goroutine. Handlers run outside the bus lock so they may subscribe
// or unsubscribe without deadlocking.
func (b *Bus) Publish(event string) {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs[event]))
	for _, fn := range b.subs[event] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

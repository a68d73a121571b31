package event

import (
	"sync"
	"sync/atomic"
)

// SubscriptionID identifies one registered handler for Unsubscribe
type SubscriptionID uint64

type subscription struct {
	id SubscriptionID
	fn any
}

// Bus routes named events to handlers in registration order
// Handler lists are copy-on-write so a handler may subscribe or unsubscribe
// during dispatch; the change takes effect on the next dispatch
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]subscription
	nextID   atomic.Uint64
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[string][]subscription),
	}
}

// Subscribe appends fn to the handler list of k
// Panics on the zero Key, which bypasses the payload registry
func Subscribe[P any](b *Bus, k Key[P], fn func(*P)) SubscriptionID {
	if k.name == "" {
		panic("event: subscribe on undeclared key")
	}
	id := SubscriptionID(b.nextID.Add(1))

	b.mu.Lock()
	defer b.mu.Unlock()

	old := b.handlers[k.name]
	list := make([]subscription, len(old), len(old)+1)
	copy(list, old)
	b.handlers[k.name] = append(list, subscription{id: id, fn: fn})
	return id
}

// Unsubscribe removes a handler, reporting whether it was found
func (b *Bus) Unsubscribe(k Named, id SubscriptionID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	old := b.handlers[k.Name()]
	for i, s := range old {
		if s.id != id {
			continue
		}
		list := make([]subscription, 0, len(old)-1)
		list = append(list, old[:i]...)
		list = append(list, old[i+1:]...)
		if len(list) == 0 {
			delete(b.handlers, k.Name())
		} else {
			b.handlers[k.Name()] = list
		}
		return true
	}
	return false
}

// Dispatch invokes every handler of k with p, in registration order
// Dispatching an event with no handlers, or on the zero Key, is a no-op
func Dispatch[P any](b *Bus, k Key[P], p *P) int {
	b.mu.RLock()
	list := b.handlers[k.name]
	b.mu.RUnlock()

	for _, s := range list {
		s.fn.(func(*P))(p)
	}
	return len(list)
}

// Count returns the number of handlers for k
func (b *Bus) Count(k Named) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[k.Name()])
}

// Clear removes every handler of the given keys, or all handlers when none are given
func (b *Bus) Clear(keys ...Named) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(keys) == 0 {
		clear(b.handlers)
		return
	}
	for _, k := range keys {
		delete(b.handlers, k.Name())
	}
}

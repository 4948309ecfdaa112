// Package events distributes change notifications for budget resources.
//
// The engine publishes an event after every committed envelope or product
// mutation. Consumers such as the autocomplete name cache subscribe to
// invalidate derived state; the engine itself holds no caches.
package events

import "sync"

// Entity is the type of resource an event refers to.
type Entity string

const (
	EntityEnvelope Entity = "envelope"
	EntityProduct  Entity = "product"
)

// Op is the kind of change that happened to a resource.
type Op string

const (
	OpCreated     Op = "created"
	OpReactivated Op = "reactivated"
	OpUpdated     Op = "updated"
	OpDeleted     Op = "deleted"
)

// Event describes a single committed change.
type Event struct {
	Entity Entity `json:"entity"`
	Op     Op     `json:"op"`
	Name   string `json:"name"` // name of the changed resource
}

// Bus fans events out to all subscribers, synchronously and in
// subscription order. Publishing after the owning transaction has
// committed is the caller's responsibility.
type Bus struct {
	mu          sync.RWMutex
	subscribers []func(Event)
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn for all future events. Subscriptions cannot
// be removed; subscribers live as long as the process.
func (b *Bus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers = append(b.subscribers, fn)
}

// Publish delivers the event to every subscriber.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subscribers := b.subscribers
	b.mu.RUnlock()

	for _, fn := range subscribers {
		fn(event)
	}
}

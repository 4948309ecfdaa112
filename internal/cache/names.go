package cache

import (
	"time"

	"github.com/duobudget/backend/internal/events"
)

// nameTTL bounds how stale an autocompletion list can get in case an
// invalidation event is ever missed.
const nameTTL = 5 * time.Minute

const (
	envelopeKey = "envelopes"
	productKey  = "products"
)

// Loader returns the current list for a name cache.
type Loader func() ([]string, error)

// Names serves the envelope and product name lists for autocompletion.
// Lists are loaded on first use and kept until the engine publishes a
// change event for the entity, or until the TTL runs out.
type Names struct {
	envelopes Cache[[]string]
	products  Cache[[]string]

	loadEnvelopes Loader
	loadProducts  Loader
}

// NewNames wires a name cache to the event bus. The bus must not
// publish before this returns.
func NewNames(bus *events.Bus, loadEnvelopes, loadProducts Loader) *Names {
	names := &Names{
		envelopes:     NewLRUCache[[]string](1, nameTTL),
		products:      NewLRUCache[[]string](1, nameTTL),
		loadEnvelopes: loadEnvelopes,
		loadProducts:  loadProducts,
	}

	bus.Subscribe(names.invalidate)
	return names
}

func (n *Names) invalidate(event events.Event) {
	switch event.Entity {
	case events.EntityEnvelope:
		n.envelopes.Delete(envelopeKey)
	case events.EntityProduct:
		n.products.Delete(productKey)
	}
}

// EnvelopeNames returns the names of all active envelopes.
func (n *Names) EnvelopeNames() ([]string, error) {
	return fetch(n.envelopes, envelopeKey, n.loadEnvelopes)
}

// ProductNames returns the names of all products.
func (n *Names) ProductNames() ([]string, error) {
	return fetch(n.products, productKey, n.loadProducts)
}

func fetch(c Cache[[]string], key string, load Loader) ([]string, error) {
	if names, ok := c.Get(key); ok {
		return names, nil
	}

	names, err := load()
	if err != nil {
		return nil, err
	}

	c.Set(key, names)
	return names, nil
}

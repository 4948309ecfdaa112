// Package ops exposes the engine as a table of named operations for
// chat front ends. Front ends decode their payload into the operation's
// parameter struct and call Handle; nothing in here knows about any
// chat framework.
package ops

import (
	"errors"

	"github.com/duobudget/backend/internal/cache"
	"github.com/duobudget/backend/internal/models"
	"golang.org/x/exp/slices"
)

// ErrInvalidParams reports parameters that cannot be turned into an
// engine call, such as an unparsable month.
var ErrInvalidParams = errors.New("the operation parameters are invalid")

// Operation is one named action a front end can offer.
type Operation struct {
	Name        string
	Description string

	// NewParams returns a pointer to a fresh parameter struct for this
	// operation, ready to decode a payload into.
	NewParams func() any

	// Handle runs the operation. The result is a structured value,
	// front ends decide how to render it.
	Handle func(inv Invocation) (any, error)
}

// Invocation carries who invokes an operation and its decoded
// parameters.
type Invocation struct {
	User   string
	Params any
}

// Registry is the full operation table over one engine.
type Registry struct {
	users      [2]string
	names      *cache.Names
	operations map[string]Operation
}

// NewRegistry builds the operation table. The name caches subscribe to
// the engine's change events, so the registry should be built once at
// startup.
func NewRegistry(users [2]string) *Registry {
	registry := &Registry{
		users:      users,
		operations: make(map[string]Operation),
	}
	registry.names = cache.NewNames(models.Events, activeEnvelopeNames, productNames)

	for _, op := range []Operation{
		registry.spendOperation(),
		registry.depositOperation(),
		registry.adjustOperation(),
		registry.historyOperation(),
		registry.envelopesOperation(),
		registry.createEnvelopeOperation(),
		registry.deleteEnvelopeOperation(),
		registry.reportOperation(),
		registry.updateOperation(),
		registry.useOperation(),
		registry.productAddOperation(),
		registry.productUpdateOperation(),
		registry.productDeleteOperation(),
		registry.productsOperation(),
		registry.completeEnvelopeOperation(),
		registry.completeProductOperation(),
	} {
		registry.operations[op.Name] = op
	}

	return registry
}

// Find returns the operation with this name.
func (r *Registry) Find(name string) (Operation, bool) {
	op, ok := r.operations[name]
	return op, ok
}

// Names returns all operation names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.operations))
	for name := range r.operations {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}

// Operations returns all operations sorted by name.
func (r *Registry) Operations() []Operation {
	operations := make([]Operation, 0, len(r.operations))
	for _, name := range r.Names() {
		operations = append(operations, r.operations[name])
	}

	return operations
}

// Package v1 implements the HTTP API of duobudget.
package v1

import (
	"github.com/duobudget/backend/internal/ops"
)

// users is the configured pair sharing the budget.
var users [2]string

// registry is the operation table served under /v1/ops.
var registry *ops.Registry

// Configure sets the user pair the controllers work with and builds
// the operation registry. It must be called once before the routes are
// attached.
func Configure(userPair [2]string) {
	users = userPair
	registry = ops.NewRegistry(userPair)
}

// Package uuid wraps google/uuid so that IDs can be bound directly
// from URI and query parameters.
package uuid

import (
	guuid "github.com/google/uuid"
)

// UUID embeds google/uuid to add parameter binding.
type UUID struct {
	guuid.UUID
}

// Nil is the zero UUID.
var Nil UUID

func New() UUID {
	return UUID{guuid.New()}
}

func NewString() string {
	return guuid.NewString()
}

// UnmarshalParam binds a URI or query parameter to a UUID. An empty
// parameter binds to Nil so that optional filters can be left out.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := guuid.Parse(p)
	if err != nil {
		return err
	}

	*u = UUID{parsed}
	return nil
}

package models

import (
	"errors"
)

var (
	// ErrGeneral covers storage errors we cannot translate into something
	// more helpful. The operation can be retried as a whole.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is extended with the resource type by the
	// query callback, e.g. "there is no envelope matching your query".
	ErrResourceNotFound = errors.New("there is no")
)

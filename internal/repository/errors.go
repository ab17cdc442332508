package repository

import "errors"

// ErrNotFound is returned when the target row does not exist. Handlers map it
// to 404 so callers can tell a missing entity from a validation failure.
var ErrNotFound = errors.New("not found")

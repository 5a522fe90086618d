// Package types holds the entity model shared across the application:
// the Student and Team records and the ValidationError raised when a
// Student field invariant is violated.
//
// Keeping the entities in one leaf package prevents import cycles —
// storage engines, request handlers and the HTTP layer all import types
// without depending on each other.
package types

import "fmt"

// ValidationError reports the first field that broke an entity invariant.
//
// Field uses the wire name of the field (firstName, lastName, age) so the
// message can be shown to an API client as-is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

package secondary

import "errors"

// Sentinel errors surfaced by repositories and checked by services via
// errors.Is. Repositories wrap these with the entity type and id so the
// caller sees which reference failed.
var (
	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID indicates a write attempted to reuse an existing
	// primary identifier.
	ErrDuplicateID = errors.New("duplicate id")
)

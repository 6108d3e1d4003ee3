package domain

import "errors"

// Error taxonomy shared by every layer. Repositories and services wrap these
// sentinels with context; the transport layer maps them onto status codes.
// Use with errors.Is().
var (
	// ErrUnauthenticated means no caller identity was presented.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUnauthorized means an identity was presented but it does not own
	// the store the request targets.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput covers missing or malformed fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means the requested entity id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a delete was blocked by existing references.
	ErrConflict = errors.New("referential conflict")
)

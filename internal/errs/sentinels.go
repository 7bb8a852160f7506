// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across storage/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a missing, expired or rejected credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStorageUnavailable indicates the local key-value store could not be
	// reached. Callers degrade to empty state rather than abort.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrDuplicateID indicates an add with an id already present in the
	// collection.
	ErrDuplicateID = errors.New("duplicate id")
)

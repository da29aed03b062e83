package errs

import "errors"

// Sentinel errors shared across the service and controller layers.
// Controllers map these onto HTTP statuses; everything else wraps them
// with %w and operation context.
var (
	// ErrInvalidInput marks a validation failure that never reaches the store.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPermissionDenied marks an actor lacking the capability for the
	// requested operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound marks a lookup that matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable marks a transient backend failure; callers may retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)

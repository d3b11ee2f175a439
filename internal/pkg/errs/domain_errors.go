package errs

import "errors"

// Error taxonomy shared by every layer. Specific errors are marked with one of
// these so callers can classify them with the Is helpers in this package.
var (
	// ErrValidation: malformed or missing input. Client error, never retried.
	ErrValidation = errors.New("validation error")
	// ErrNotFound: the referenced deal does not exist or was hard-deleted.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable: a storage collaborator failed. Propagated as-is.
	ErrStoreUnavailable = errors.New("store unavailable")
)

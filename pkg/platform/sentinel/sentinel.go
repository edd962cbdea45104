package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and infrastructure layers
// return these (optionally wrapped) so services can translate them into domain
// errors:
//   - ErrNotFound: record does not exist in the store
//   - ErrConflict: a uniqueness rule rejected the write
//   - ErrLocked: a scoped lock is held by someone else
//   - ErrUnavailable: backing service temporarily unavailable
//
// For validation errors (bad input, missing fields) use pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrLocked      = errors.New("locked")
	ErrUnavailable = errors.New("unavailable")
)

package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) so services can translate them into domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store
// - ErrExhausted: nothing left to hand out (catalog fully scanned)
// - ErrInvalidState: entity in wrong state for requested operation
//
// For validation errors (bad input, out-of-range values), use
// pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrExhausted    = errors.New("exhausted")
	ErrInvalidState = errors.New("invalid state")
)

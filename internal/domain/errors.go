package domain

import "errors"

// Error kinds surfaced by the org core. Callers test with errors.Is and map
// them to response codes; every wrapped message names the offending id.
var (
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrConflict         = errors.New("conflict")
	ErrInvalidOperation = errors.New("invalid operation")
)

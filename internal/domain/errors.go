package domain

import (
	"errors"
	"fmt"
)

// ErrRecordNotFound indicates a query or response record was absent from
// the document store. Absence is a normal outcome for a cache (expired or
// never written) and is absorbed into a miss, never surfaced to callers.
var ErrRecordNotFound = errors.New("record not found")

// ErrIndexUnavailable indicates the vector search backend is down or its
// index has not been created. Lookups treat this as "no candidates found".
var ErrIndexUnavailable = errors.New("vector index unavailable")

// ErrMetricBackendUnavailable indicates the metric backend cannot serve
// reads or writes. All metric traffic is best-effort; this error is logged
// and swallowed, never returned to cache callers.
var ErrMetricBackendUnavailable = errors.New("metric backend unavailable")

// ProviderError wraps a failure from an external provider (embedding
// generation or itinerary generation). Unlike storage faults, provider
// failures on the lookup path propagate to the caller so the uncached
// path can still proceed.
type ProviderError struct {
	Provider string
	Err      error
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err with the provider's name.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// IsProviderError reports whether err originates from an external provider.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

package middleware

import (
	"github.com/itineradev/itinera/internal/observability"
)

// Trace creates a middleware that injects trace, span and request IDs
// into every request and logs request start and completion.
func Trace() Middleware {
	return observability.Trace()
}

// ABOUTME: Domain interfaces for dependency inversion
// ABOUTME: Lets callers depend on a tune source, not on the HTTP client behind it
package domain

import (
	"context"

	"github.com/harper/tunes-client/internal/domain/tune"
)

// TuneFetcher retrieves the current tune collection.
type TuneFetcher interface {
	Fetch(ctx context.Context) (tune.Collection, error)
}

package stats

import (
	"context"
)

// Repository defines the contract for aggregate queries.
type Repository interface {
	Summary(ctx context.Context) (Summary, error)
}

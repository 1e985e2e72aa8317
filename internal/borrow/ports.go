package borrow

import (
	"context"
)

// Repository defines the contract for borrow storage.
type Repository interface {
	// Create persists rec and deducts rec.Quantity copies from the
	// referenced book in a single transaction. Stock check, decrement
	// and record insert commit or roll back together.
	Create(ctx context.Context, rec *Record) error

	// Summary aggregates total borrowed quantity per distinct book,
	// joined with the book's title and isbn.
	Summary(ctx context.Context) ([]SummaryRow, error)
}

package book

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Repository defines the contract for book storage.
type Repository interface {
	Create(ctx context.Context, b *Book) error
	List(ctx context.Context, q Query) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	Replace(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id string) (Book, error)
}

// Deducter is the inventory-deduction contract. Only the borrow
// transaction may call it, inside the transaction that records the
// borrow; the SQL guard keeps copies from ever going negative.
type Deducter interface {
	DeductCopies(ctx context.Context, tx pgx.Tx, bookID string, quantity int) (Book, error)
}

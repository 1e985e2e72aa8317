package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) Summary(ctx context.Context) (Summary, error) {
	const query = `
		SELECT
			COALESCE((SELECT SUM(quantity) FROM borrows), 0)::bigint,
			(SELECT COUNT(*) FROM borrows)::bigint,
			(SELECT COUNT(*) FROM books)::bigint,
			COALESCE((SELECT SUM(copies) FROM books), 0)::bigint`

	var borrowed, records, books, copies int64
	if err := r.db.QueryRow(ctx, query).Scan(&borrowed, &records, &books, &copies); err != nil {
		return Summary{}, err
	}
	return Summary{
		TotalBorrowedQuantity: int(borrowed),
		TotalBorrowRecords:    int(records),
		TotalBooks:            int(books),
		TotalCopies:           int(copies),
	}, nil
}

package borrow

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/book"
)

type PostgresRepo struct {
	db        *pgxpool.Pool
	inventory book.Deducter
}

func NewPostgresRepo(db *pgxpool.Pool, inventory book.Deducter) *PostgresRepo {
	return &PostgresRepo{db: db, inventory: inventory}
}

// Create runs the whole borrow as one transaction: conditional stock
// deduction first, then the record insert. Either both commit or neither.
func (r *PostgresRepo) Create(ctx context.Context, rec *Record) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := r.inventory.DeductCopies(ctx, tx, rec.BookID, rec.Quantity); err != nil {
		return err
	}

	const query = `
		INSERT INTO borrows (book_id, quantity, due_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, query, rec.BookID, rec.Quantity, rec.DueDate).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepo) Summary(ctx context.Context) ([]SummaryRow, error) {
	const query = `
		SELECT b.title, b.isbn, SUM(br.quantity)::bigint AS total_quantity
		FROM borrows br
		JOIN books b ON b.id = br.book_id
		GROUP BY b.id, b.title, b.isbn
		ORDER BY total_quantity DESC, b.title ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SummaryRow
	for rows.Next() {
		var row SummaryRow
		var total int64
		if err := rows.Scan(&row.Book.Title, &row.Book.ISBN, &total); err != nil {
			return nil, err
		}
		row.TotalQuantity = int(total)
		out = append(out, row)
	}
	return out, rows.Err()
}

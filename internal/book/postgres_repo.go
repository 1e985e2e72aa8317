package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"libraryapi/internal/apperr"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const bookColumns = "id, title, author, genre, isbn, description, copies, available, created_at, updated_at"

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.ISBN, &b.Description,
		&b.Copies, &b.Available, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (title, author, genre, isbn, description, copies, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		b.Title, b.Author, b.Genre, b.ISBN, b.Description, b.Copies, b.Available,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return mapISBNConflict(err, b.ISBN)
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, q Query) ([]Book, error) {
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}

	// q.OrderBy comes from the sortColumns whitelist, never from raw input.
	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		WHERE ($1 = '' OR genre = $1)
		ORDER BY %s %s
		LIMIT $2`, bookColumns, q.OrderBy, dir)

	rows, err := r.db.Query(ctx, query, q.Genre, q.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE id = $1", bookColumns)

	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, &apperr.NotFoundError{Resource: "Book", ID: id}
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Replace(ctx context.Context, b *Book) error {
	const query = `
		UPDATE books
		SET title = $2, author = $3, genre = $4, isbn = $5, description = $6,
		    copies = $7, available = $8, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		b.ID, b.Title, b.Author, b.Genre, b.ISBN, b.Description, b.Copies, b.Available,
	).Scan(&b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &apperr.NotFoundError{Resource: "Book", ID: b.ID}
		}
		return mapISBNConflict(err, b.ISBN)
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) (Book, error) {
	query := fmt.Sprintf("DELETE FROM books WHERE id = $1 RETURNING %s", bookColumns)

	b, err := scanBook(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, &apperr.NotFoundError{Resource: "Book", ID: id}
		}
		return Book{}, err
	}
	return b, nil
}

// DeductCopies decrements copies inside the caller's transaction. The
// `copies >= quantity` guard makes the decrement conditional: zero rows
// with the book present means insufficient stock, and copies can never
// go negative even under concurrent borrows.
func (r *PostgresRepo) DeductCopies(ctx context.Context, tx pgx.Tx, bookID string, quantity int) (Book, error) {
	query := fmt.Sprintf(`
		UPDATE books
		SET copies = copies - $2, available = copies - $2 > 0, updated_at = now()
		WHERE id = $1 AND copies >= $2
		RETURNING %s`, bookColumns)

	b, err := scanBook(tx.QueryRow(ctx, query, bookID, quantity))
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Book{}, err
	}

	var copies int
	err = tx.QueryRow(ctx, "SELECT copies FROM books WHERE id = $1", bookID).Scan(&copies)
	if errors.Is(err, pgx.ErrNoRows) {
		return Book{}, &apperr.NotFoundError{Resource: "Book", ID: bookID}
	}
	if err != nil {
		return Book{}, err
	}
	return Book{}, &apperr.InsufficientStockError{Available: copies, Requested: quantity}
}

func mapISBNConflict(err error, isbn string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return &apperr.DuplicateKeyError{Field: "isbn", Value: isbn}
	}
	return err
}

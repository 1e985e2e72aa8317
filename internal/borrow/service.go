package borrow

import (
	"context"

	"libraryapi/internal/validate"
)

// Service provides borrow transaction business logic.
type Service struct {
	repo Repository
}

// NewService creates a new borrow service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the borrow request and records it. Stock validation
// and deduction happen inside the repository transaction, so a request
// that exceeds the book's copies fails without changing anything.
func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	if err := validate.Struct(in); err != nil {
		return Record{}, err
	}

	due, err := parseDueDate(in.DueDate)
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		BookID:   in.Book,
		Quantity: *in.Quantity,
		DueDate:  due,
	}
	if err := s.repo.Create(ctx, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Summary returns one aggregate row per distinct borrowed book.
func (s *Service) Summary(ctx context.Context) ([]SummaryRow, error) {
	rows, err := s.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []SummaryRow{}
	}
	return rows, nil
}

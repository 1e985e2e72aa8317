package book

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"libraryapi/internal/apperr"
	"libraryapi/internal/validate"
)

// Service provides book inventory business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// normalize trims the string fields. Trimming runs before validation so
// a whitespace-only title or a padded isbn is judged by its real length,
// not its padded one.
func normalize(in CreateInput) CreateInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Genre = strings.TrimSpace(in.Genre)
	in.ISBN = strings.TrimSpace(in.ISBN)
	in.Description = strings.TrimSpace(in.Description)
	return in
}

// Create validates and persists a new book. Available is derived from
// copies, never taken from the client.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	in = normalize(in)
	if err := validate.Struct(in); err != nil {
		return Book{}, err
	}

	b := Book{
		Title:       in.Title,
		Author:      in.Author,
		Genre:       in.Genre,
		ISBN:        in.ISBN,
		Description: in.Description,
		Copies:      *in.Copies,
		Available:   *in.Copies > 0,
	}
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// List returns books matching the raw client params after normalizing
// sort field, direction and limit.
func (s *Service) List(ctx context.Context, p ListParams) ([]Book, error) {
	col, ok := sortColumns[p.SortBy]
	if !ok {
		col = "created_at"
	}

	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return s.repo.List(ctx, Query{
		Genre:   p.Filter,
		OrderBy: col,
		Desc:    p.Sort != "asc",
		Limit:   limit,
	})
}

// GetByID returns one book by id.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Book{}, &apperr.NotFoundError{Resource: "Book", ID: id}
	}
	return s.repo.GetByID(ctx, id)
}

// Update merges the partial fields onto the existing record, re-validates
// the merged object against the create schema and persists it as a full
// replacement.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	merged, err := s.GetByID(ctx, id)
	if err != nil {
		return Book{}, err
	}

	if in.Title != nil {
		merged.Title = *in.Title
	}
	if in.Author != nil {
		merged.Author = *in.Author
	}
	if in.Genre != nil {
		merged.Genre = *in.Genre
	}
	if in.ISBN != nil {
		merged.ISBN = *in.ISBN
	}
	if in.Description != nil {
		merged.Description = *in.Description
	}
	if in.Copies != nil {
		merged.Copies = *in.Copies
	}

	norm := normalize(CreateInput{
		Title:       merged.Title,
		Author:      merged.Author,
		Genre:       merged.Genre,
		ISBN:        merged.ISBN,
		Description: merged.Description,
		Copies:      &merged.Copies,
	})
	if err := validate.Struct(norm); err != nil {
		return Book{}, err
	}
	merged.Title = norm.Title
	merged.Author = norm.Author
	merged.Genre = norm.Genre
	merged.ISBN = norm.ISBN
	merged.Description = norm.Description

	merged.Available = merged.Copies > 0
	if err := s.repo.Replace(ctx, &merged); err != nil {
		return Book{}, err
	}
	return merged, nil
}

// Delete removes a book and returns the deleted snapshot.
func (s *Service) Delete(ctx context.Context, id string) (Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Book{}, &apperr.NotFoundError{Resource: "Book", ID: id}
	}
	return s.repo.Delete(ctx, id)
}

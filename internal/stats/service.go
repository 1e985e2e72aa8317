package stats

import (
	"context"
)

// Service provides the analytics summary.
type Service struct {
	repo Repository
}

// NewService creates a new stats service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary returns the global aggregate over books and borrows.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}

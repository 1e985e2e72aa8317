// Package apperr defines the typed domain errors shared across features.
// Handlers never inspect these directly; httpx.Error maps them to HTTP
// statuses and response bodies at the boundary.
package apperr

import "fmt"

// FieldError describes a single violated field constraint.
type FieldError struct {
	Path    string   `json:"path"`
	Message string   `json:"message"`
	Kind    string   `json:"kind"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
}

// ValidationError aggregates every violated field of a payload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// DuplicateKeyError is returned when a unique constraint is violated.
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate value %q for unique field %q", e.Value, e.Field)
}

// NotFoundError is returned when a referenced identity does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// InsufficientStockError is returned when a borrow quantity exceeds the
// book's current copies.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("requested %d copies but only %d available", e.Requested, e.Available)
}

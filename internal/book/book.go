package book

import (
	"time"
)

// Genres accepted for a book record.
var Genres = []string{"FICTION", "NON_FICTION", "SCIENCE", "HISTORY", "BIOGRAPHY", "FANTASY"}

// Book represents a book entity. Available is derived: it is true iff
// Copies > 0, and is recomputed on every mutation.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	ISBN        string    `json:"isbn"`
	Description string    `json:"description,omitempty"`
	Copies      int       `json:"copies"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateInput is the payload for creating a book. Update payloads are
// merged onto the existing record and re-validated against this schema.
type CreateInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Author      string `json:"author" validate:"required,max=100"`
	Genre       string `json:"genre" validate:"required,oneof=FICTION NON_FICTION SCIENCE HISTORY BIOGRAPHY FANTASY"`
	ISBN        string `json:"isbn" validate:"required,min=10,max=20"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Copies      *int   `json:"copies" validate:"required,gte=0"`
}

// UpdateInput carries the partial fields of an update request. Nil means
// "leave unchanged".
type UpdateInput struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Genre       *string `json:"genre"`
	ISBN        *string `json:"isbn"`
	Description *string `json:"description"`
	Copies      *int    `json:"copies"`
}

// ListParams are the raw list options as they arrive from the client.
type ListParams struct {
	Filter string
	SortBy string
	Sort   string
	Limit  int
}

// Query is the normalized form handed to the repository: OrderBy is a
// whitelisted column name, Limit is clamped.
type Query struct {
	Genre   string
	OrderBy string
	Desc    bool
	Limit   int
}

const (
	defaultLimit = 10
	maxLimit     = 100
)

// sortColumns maps client-facing sort fields to table columns. Anything
// else falls back to creation time.
var sortColumns = map[string]string{
	"title":     "title",
	"author":    "author",
	"genre":     "genre",
	"isbn":      "isbn",
	"copies":    "copies",
	"available": "available",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

package borrow

import (
	"time"

	"libraryapi/internal/apperr"
)

// Record is a borrow transaction linking a book, a quantity and a due
// date. Records are never updated or deleted; there is no return flow.
type Record struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book"`
	Quantity  int       `json:"quantity"`
	DueDate   time.Time `json:"dueDate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateInput is the payload for borrowing a book.
type CreateInput struct {
	Book     string `json:"book" validate:"required,uuid"`
	Quantity *int   `json:"quantity" validate:"required,gt=0"`
	DueDate  string `json:"dueDate" validate:"required"`
}

// BookRef is the book metadata attached to a summary row.
type BookRef struct {
	Title string `json:"title"`
	ISBN  string `json:"isbn"`
}

// SummaryRow is one aggregate row per distinct borrowed book.
type SummaryRow struct {
	Book          BookRef `json:"book"`
	TotalQuantity int     `json:"totalQuantity"`
}

var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDueDate(s string) (time.Time, error) {
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &apperr.ValidationError{Fields: []apperr.FieldError{{
		Path:    "dueDate",
		Kind:    "invalid_date",
		Message: "dueDate must be a valid date",
	}}}
}

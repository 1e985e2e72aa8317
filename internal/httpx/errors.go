package httpx

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"libraryapi/internal/apperr"
)

type validationDetail struct {
	Name   string                       `json:"name"`
	Errors map[string]apperr.FieldError `json:"errors"`
}

type duplicateKeyDetail struct {
	Name  string `json:"name"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type notFoundDetail struct {
	Name     string `json:"name"`
	Resource string `json:"resource"`
	ID       string `json:"id"`
}

type insufficientStockDetail struct {
	Name      string `json:"name"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

// Error renders any domain failure as the uniform error envelope. It is
// the single place where error kinds are mapped to HTTP statuses; unknown
// errors are logged and surfaced as a generic 500.
func Error(r *http.Request, w http.ResponseWriter, err error) {
	var validationErr *apperr.ValidationError
	if errors.As(err, &validationErr) {
		fields := make(map[string]apperr.FieldError, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			fields[f.Path] = f
		}
		JSONError(w, http.StatusBadRequest, "Validation failed", validationDetail{
			Name:   "ValidationError",
			Errors: fields,
		})
		return
	}

	var duplicateErr *apperr.DuplicateKeyError
	if errors.As(err, &duplicateErr) {
		JSONError(w, http.StatusConflict, strings.ToUpper(duplicateErr.Field)+" must be unique", duplicateKeyDetail{
			Name:  "DuplicateKeyError",
			Field: duplicateErr.Field,
			Value: duplicateErr.Value,
		})
		return
	}

	var notFoundErr *apperr.NotFoundError
	if errors.As(err, &notFoundErr) {
		JSONError(w, http.StatusNotFound, notFoundErr.Resource+" not found", notFoundDetail{
			Name:     "NotFoundError",
			Resource: notFoundErr.Resource,
			ID:       notFoundErr.ID,
		})
		return
	}

	var stockErr *apperr.InsufficientStockError
	if errors.As(err, &stockErr) {
		JSONError(w, http.StatusBadRequest, "Not enough copies available", insufficientStockDetail{
			Name:      "InsufficientStockError",
			Available: stockErr.Available,
			Requested: stockErr.Requested,
		})
		return
	}

	log.Printf("unexpected error: method=%s path=%s request_id=%s error=%v",
		r.Method, r.URL.Path, RequestIDFrom(r), err)
	JSONError(w, http.StatusInternalServerError, "Something went wrong", nil)
}

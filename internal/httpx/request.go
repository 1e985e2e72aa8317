package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"libraryapi/internal/apperr"
)

// DecodeJSON decodes the request body into dst. Malformed JSON and type
// mismatches surface as validation errors so the client gets a 400 with
// field detail instead of a blanket 500.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &apperr.ValidationError{Fields: []apperr.FieldError{{
				Path:    typeErr.Field,
				Kind:    "invalid_type",
				Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
			}}}
		}
		return &apperr.ValidationError{Fields: []apperr.FieldError{{
			Path:    "body",
			Kind:    "invalid_json",
			Message: "Request body must be valid JSON",
		}}}
	}
	return nil
}

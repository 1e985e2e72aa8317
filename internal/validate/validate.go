// Package validate checks request payloads against their declared field
// constraints. It is pure: no data-store access, no side effects.
package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"libraryapi/internal/apperr"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Struct validates s and returns nil or an *apperr.ValidationError
// listing every violated field.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	out := &apperr.ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, toFieldError(fe))
	}
	return out
}

func toFieldError(fe validator.FieldError) apperr.FieldError {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return apperr.FieldError{
			Path:    field,
			Kind:    "required",
			Message: fmt.Sprintf("%s is required", field),
		}
	case "min", "gte", "gt":
		bound := paramBound(fe)
		msg := fmt.Sprintf("%s must be at least %s characters", field, param)
		if isNumeric(fe) {
			msg = fmt.Sprintf("%s must be at least %s", field, param)
			if fe.Tag() == "gt" {
				msg = fmt.Sprintf("%s must be greater than %s", field, param)
				if bound != nil {
					*bound++
				}
			}
		}
		return apperr.FieldError{
			Path:    field,
			Kind:    "too_small",
			Message: msg,
			Min:     bound,
		}
	case "max", "lte", "lt":
		bound := paramBound(fe)
		msg := fmt.Sprintf("%s must be at most %s characters", field, param)
		if isNumeric(fe) {
			msg = fmt.Sprintf("%s must be at most %s", field, param)
		}
		return apperr.FieldError{
			Path:    field,
			Kind:    "too_big",
			Message: msg,
			Max:     bound,
		}
	case "oneof":
		return apperr.FieldError{
			Path:    field,
			Kind:    "invalid_enum_value",
			Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(param), ", ")),
		}
	case "uuid", "uuid4":
		return apperr.FieldError{
			Path:    field,
			Kind:    "invalid_string",
			Message: fmt.Sprintf("%s must be a valid id", field),
		}
	default:
		return apperr.FieldError{
			Path:    field,
			Kind:    "invalid",
			Message: fmt.Sprintf("%s is invalid", field),
		}
	}
}

func paramBound(fe validator.FieldError) *float64 {
	v, err := strconv.ParseFloat(fe.Param(), 64)
	if err != nil {
		return nil
	}
	return &v
}

func isNumeric(fe validator.FieldError) bool {
	switch fe.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

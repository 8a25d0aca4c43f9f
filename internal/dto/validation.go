package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// FieldError is one field-level binding failure.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// FormatBindingError turns a gin binding error into field-level errors when it
// carries validator details, falling back to the raw message otherwise.
func FormatBindingError(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	out := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		out[i] = FieldError{Field: fe.Field(), Rule: fe.Tag()}
	}
	return out
}

package validation

import (
	"fmt"
	"strings"

	"github.com/kbukum/swapkit/errors"
)

// FieldError describes one failed validation check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator collects programmatic validation errors.
type Validator struct {
	fieldErrors []FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// Check records a field error when ok is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.fieldErrors = append(v.fieldErrors, FieldError{Field: field, Message: message})
	}
}

// Valid reports whether no checks failed.
func (v *Validator) Valid() bool {
	return len(v.fieldErrors) == 0
}

// Error returns an INVALID_CONFIG AppError describing all failed checks, or
// nil when everything passed.
func (v *Validator) Error() error {
	if v.Valid() {
		return nil
	}
	messages := make([]string, 0, len(v.fieldErrors))
	for _, fe := range v.fieldErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return errors.InvalidConfig(strings.Join(messages, "; ")).
		WithDetail("fields", v.fieldErrors)
}

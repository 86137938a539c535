package errs

import (
	"fmt"
	"sort"
	"strings"
)

const defaultValidationMessage = "ValidationError"

// FieldsErrors maps a field name to the ordered list of its violations.
type FieldsErrors map[string][]string

// Add appends msg to the violations of field.
func (f FieldsErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// Fields returns the invalid field names in lexical order.
func (f FieldsErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// EntityValidationError carries every violation an aggregate found while
// validating itself.
type EntityValidationError struct {
	Errors  FieldsErrors
	Message string
}

func NewEntityValidationError(fields FieldsErrors) *EntityValidationError {
	return NewEntityValidationErrorWithMessage(fields, defaultValidationMessage)
}

func NewEntityValidationErrorWithMessage(fields FieldsErrors, message string) *EntityValidationError {
	if fields == nil {
		fields = FieldsErrors{}
	}
	return &EntityValidationError{Errors: fields, Message: message}
}

// Count returns the number of invalid fields.
func (e *EntityValidationError) Count() int {
	return len(e.Errors)
}

func (e *EntityValidationError) Error() string {
	if len(e.Errors) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Errors))
	for _, field := range e.Errors.Fields() {
		parts = append(parts, fmt.Sprintf("%s: [%s]", field, strings.Join(e.Errors[field], ", ")))
	}
	return fmt.Sprintf("%s: %s", e.Message, sanitize(strings.Join(parts, "; ")))
}

func (e *EntityValidationError) Unwrap() error {
	return ErrEntityIsInvalid
}

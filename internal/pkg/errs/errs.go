package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsRequired     = errors.New("value is required")
	ErrIdentifierIsInvalid = errors.New("identifier is invalid")
	ErrEntityIsInvalid     = errors.New("entity is invalid")
)

// ValueIsInvalidError reports a parameter whose value failed a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError reports a parameter that was left empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// IdentifierIsInvalidError is returned when an identifier could not be built
// from the given input. The message names the kind only; the rejected input is
// kept in Value for callers that want to report it.
type IdentifierIsInvalidError struct {
	Value string
	Cause error
}

func NewIdentifierIsInvalidError(value string) *IdentifierIsInvalidError {
	return &IdentifierIsInvalidError{Value: value}
}

func NewIdentifierIsInvalidErrorWithCause(value string, cause error) *IdentifierIsInvalidError {
	return &IdentifierIsInvalidError{Value: value, Cause: cause}
}

func (e *IdentifierIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", ErrIdentifierIsInvalid, e.Cause)
	}
	return ErrIdentifierIsInvalid.Error()
}

func (e *IdentifierIsInvalidError) Unwrap() error {
	return ErrIdentifierIsInvalid
}

// sanitize keeps error messages on a single line.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

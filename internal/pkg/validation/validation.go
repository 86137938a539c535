// Package validation turns struct tag rules into errs.FieldsErrors.
//
// It owns the field names (taken from the json tag) and the wording of every
// violation message; aggregates wrap the result in errs.EntityValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"catalog/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})
	return v
}

// Struct validates s against its `validate` tags. It returns nil when s is
// valid and one entry per invalid field otherwise, messages in tag order.
// The error is reserved for misuse, such as passing something that is not a struct.
func Struct(s any) (errs.FieldsErrors, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, fmt.Errorf("validate %T: %w", s, err)
	}

	fields := errs.FieldsErrors{}
	for _, fe := range validationErrors {
		fields.Add(fe.Field(), message(fe))
	}
	return fields, nil
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " should not be empty"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be shorter than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be greater than %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be longer than or equal to %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "uuid4":
		return field + " must be a UUID"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

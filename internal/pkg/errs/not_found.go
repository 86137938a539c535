package errs

import (
	"fmt"
)

// NotFoundError is returned by repositories when no entity carries the
// requested identifier. It wraps ErrObjectNotFound.
//
// The message is derived from the identifier and the entity type only, so two
// errors built from the same inputs are equal:
//
//	err := errs.NewNotFoundError(id, category.EntityType)
//	err.Error() // "Category Not Found using ID 9b1d...e4"
type NotFoundError struct {
	ID         string
	EntityName string
}

// NewNotFoundError builds a NotFoundError. id may be a plain string or any
// fmt.Stringer such as an identifier value object.
func NewNotFoundError(id any, entityType fmt.Stringer) *NotFoundError {
	name := ""
	if entityType != nil {
		name = entityType.String()
	}
	return &NotFoundError{
		ID:         idString(id),
		EntityName: name,
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s Not Found using ID %s", sanitize(e.EntityName), sanitize(e.ID))
}

func (e *NotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

func idString(id any) string {
	switch v := id.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

package commands

import (
	"errors"

	"catalog/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to register a new category.
// Business rules on its fields are enforced by the Category aggregate.
//
// Example:
//
//	cmd := NewCreateCategoryCommand("Movie", nil, nil)
//	id, err := handler.Handle(ctx, cmd)
type CreateCategoryCommand struct {
	name        string
	description *string
	isActive    *bool

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates the command. A nil description means no
// description; a nil isActive means active.
func NewCreateCategoryCommand(name string, description *string, isActive *bool) CreateCategoryCommand {
	return CreateCategoryCommand{
		name:        name,
		description: description,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Name() string {
	return c.name
}

func (c CreateCategoryCommand) Description() *string {
	return c.description
}

func (c CreateCategoryCommand) IsActive() *bool {
	return c.isActive
}

package commands

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrDeleteCategoryCommandIsNotConstructed = errors.New(
	"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
)

// DeleteCategoryCommand represents a request to remove a category.
type DeleteCategoryCommand struct {
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCategoryCommand(categoryID kernel.UUID) (DeleteCategoryCommand, error) {
	if err := categoryID.Validate(); err != nil {
		return DeleteCategoryCommand{}, err
	}
	return DeleteCategoryCommand{
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

package commands

import (
	"context"

	"catalog/internal/core/domain/model/category"
	"catalog/internal/core/domain/model/kernel"
)

// CreateCategoryCommandHandler creates and stores new categories.
type CreateCategoryCommandHandler struct {
	repo CategoryRepository
}

func NewCreateCategoryCommandHandler(repo CategoryRepository) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{repo: repo}
}

// Handle validates the new category and stores it. It returns the identifier
// of the created category, or the *errs.EntityValidationError raised by the aggregate.
func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	c, err := category.Create(category.Props{
		Name:        cmd.Name(),
		Description: cmd.Description(),
		IsActive:    cmd.IsActive(),
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.repo.Insert(ctx, c); err != nil {
		return kernel.UUID{}, err
	}
	return c.ID(), nil
}

package commands

import (
	"context"
)

// DeleteCategoryCommandHandler removes categories.
type DeleteCategoryCommandHandler struct {
	repo CategoryRepository
}

func NewDeleteCategoryCommandHandler(repo CategoryRepository) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{repo: repo}
}

// Handle deletes the category. Returns *errs.NotFoundError when it does not exist.
func (h DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.repo.Delete(ctx, cmd.CategoryID())
}

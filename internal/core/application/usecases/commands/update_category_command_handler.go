package commands

import (
	"context"
	"sync"

	"catalog/internal/core/domain/model/category"
	"catalog/internal/pkg/errs"
)

// UpdateCategoryCommandHandler applies partial changes to stored categories.
// Copies of a handler share one lock, so concurrent updates through it never
// overwrite each other's changes.
type UpdateCategoryCommandHandler struct {
	repo CategoryRepository
	mu   *sync.Mutex
}

func NewUpdateCategoryCommandHandler(repo CategoryRepository) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{repo: repo, mu: &sync.Mutex{}}
}

// Handle loads the category, applies every requested change to a copy and
// replaces the stored category with it. Either every change is stored or none.
// It returns the category as stored, or *errs.NotFoundError when the category
// does not exist.
func (h UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*category.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	current, err := h.repo.FindByID(ctx, cmd.CategoryID())
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errs.NewNotFoundError(cmd.CategoryID(), category.EntityType)
	}

	updated := current.Clone()
	if name, ok := cmd.Name(); ok {
		if err = updated.ChangeName(name); err != nil {
			return nil, err
		}
	}
	if description, ok := cmd.Description(); ok {
		if err = updated.ChangeDescription(description); err != nil {
			return nil, err
		}
	}
	if active, ok := cmd.IsActive(); ok {
		if active {
			updated.Activate()
		} else {
			updated.Deactivate()
		}
	}

	if err = h.repo.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

package queries

import (
	"context"

	"catalog/internal/core/domain/model/category"
	"catalog/internal/pkg/errs"
)

// GetCategoryQueryHandler reads one category from the repository.
type GetCategoryQueryHandler struct {
	repo CategoryRepository
}

func NewGetCategoryQueryHandler(repo CategoryRepository) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{repo: repo}
}

// Handle returns the category read model or *errs.NotFoundError when no
// category has the requested identifier.
func (h GetCategoryQueryHandler) Handle(ctx context.Context, query GetCategoryQuery) (CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return CategoryResponse{}, err
	}

	c, err := h.repo.FindByID(ctx, query.CategoryID())
	if err != nil {
		return CategoryResponse{}, err
	}
	if c == nil {
		return CategoryResponse{}, errs.NewNotFoundError(query.CategoryID(), category.EntityType)
	}
	return NewCategoryResponse(c), nil
}

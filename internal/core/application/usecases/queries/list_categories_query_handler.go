package queries

import (
	"context"
	"fmt"
)

// ListCategoriesQueryHandler reads the full category list.
type ListCategoriesQueryHandler struct {
	repo CategoryRepository
}

func NewListCategoriesQueryHandler(repo CategoryRepository) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{repo: repo}
}

// Handle returns all categories in insertion order. An empty catalog yields an
// empty, non-nil slice.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	responses := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		responses = append(responses, NewCategoryResponse(c))
	}
	return responses, nil
}

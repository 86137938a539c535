// Package queries contains read operations over the category catalog.
// Queries never change state and return read models instead of aggregates,
// so callers cannot mutate stored categories through them.
package queries

import (
	"time"

	"catalog/internal/core/domain/model/category"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/ports"
)

// CategoryRepository is the read side the query handlers depend on.
type CategoryRepository = ports.CategoryRepository

// CategoryResponse is the read model of a category.
type CategoryResponse struct {
	ID          kernel.UUID `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewCategoryResponse builds the read model of c.
func NewCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

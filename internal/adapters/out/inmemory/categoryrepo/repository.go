// Package categoryrepo stores Category aggregates in memory.
package categoryrepo

import (
	"context"

	"catalog/internal/adapters/out/inmemory"
	"catalog/internal/core/domain/model/category"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/core/ports"
)

var _ ports.CategoryRepository = (*Repository)(nil)

// Repository implements ports.CategoryRepository on top of the generic
// in-memory repository. It refuses categories that were not built through
// their constructors.
type Repository struct {
	*inmemory.Repository[*category.Category, kernel.UUID]
}

// NewRepository creates an empty category repository.
func NewRepository() *Repository {
	return &Repository{
		Repository: inmemory.NewRepository[*category.Category, kernel.UUID](category.EntityType),
	}
}

// Insert stores a new category.
func (r *Repository) Insert(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.Repository.Insert(ctx, aggregate)
}

// BulkInsert stores categories in order. Nothing is stored when any of them is
// not constructed.
func (r *Repository) BulkInsert(ctx context.Context, aggregates []*category.Category) error {
	for _, aggregate := range aggregates {
		if err := aggregate.Validate(); err != nil {
			return err
		}
	}
	return r.Repository.BulkInsert(ctx, aggregates)
}

// Update replaces a stored category.
func (r *Repository) Update(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.Repository.Update(ctx, aggregate)
}

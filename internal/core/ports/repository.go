// Package ports defines the persistence contracts of the catalog domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"catalog/internal/core/domain/model/kernel"
)

// Repository is the CRUD contract shared by every aggregate store.
//
// Lookups compare identifiers by value (kernel.ValueObject.Equals), never by
// reference, so two identifier instances carrying the same value address the
// same record.
type Repository[E kernel.Entity, ID kernel.ValueObject] interface {
	// Insert stores entity. It does not check for an existing entity with the
	// same identifier.
	Insert(ctx context.Context, entity E) error

	// BulkInsert stores entities in the given order.
	BulkInsert(ctx context.Context, entities []E) error

	// FindAll returns every stored entity in insertion order.
	FindAll(ctx context.Context) ([]E, error)

	// FindByID returns the entity with the given identifier. When there is none
	// it returns the zero value of E and a nil error.
	FindByID(ctx context.Context, id ID) (E, error)

	// Update replaces the stored entity carrying the same identifier.
	// Returns *errs.NotFoundError when there is none.
	Update(ctx context.Context, entity E) error

	// Delete removes the entity with the given identifier.
	// Returns *errs.NotFoundError when there is none.
	Delete(ctx context.Context, id ID) error

	// EntityType describes the entities held, for error reporting.
	EntityType() kernel.EntityType
}

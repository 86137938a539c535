// Package inmemory provides process-local implementations of the repository
// ports. Nothing is persisted: state lives as long as the repository value.
package inmemory

import (
	"context"
	"reflect"
	"slices"
	"sync"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
)

// Repository is a generic, slice-backed implementation of ports.Repository.
//
// Entities are kept in insertion order and held by reference: mutating an
// entity after Insert mutates the stored record. Lookups scan the slice and
// compare identifiers with their Equals method; the first match wins.
// Every operation runs under a single lock, so a scan and the mutation that
// follows it are atomic.
//
// Example:
//
//	repo := inmemory.NewRepository[*category.Category, kernel.UUID](category.EntityType)
//	_ = repo.Insert(ctx, c)
//	found, _ := repo.FindByID(ctx, c.ID())
type Repository[E kernel.Entity, ID kernel.ValueObject] struct {
	mu         sync.RWMutex
	items      []E
	entityType kernel.EntityType
}

// NewRepository creates an empty repository for entities of entityType.
// Each repository owns its own storage.
func NewRepository[E kernel.Entity, ID kernel.ValueObject](entityType kernel.EntityType) *Repository[E, ID] {
	return &Repository[E, ID]{
		items:      make([]E, 0),
		entityType: entityType,
	}
}

// ErrEntityIsNil is returned when a nil entity is inserted.
var ErrEntityIsNil = errs.NewValueIsRequiredError("entity")

// Insert appends entity. Duplicate identifiers are not rejected; nil entities are.
func (r *Repository[E, ID]) Insert(_ context.Context, entity E) error {
	if isNil(entity) {
		return ErrEntityIsNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, entity)
	return nil
}

// BulkInsert appends entities in their given order. Nothing is stored when
// any of them is nil.
func (r *Repository[E, ID]) BulkInsert(_ context.Context, entities []E) error {
	if slices.ContainsFunc(entities, isNil[E]) {
		return ErrEntityIsNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, entities...)
	return nil
}

// FindAll returns a new slice holding the stored entities in insertion order.
func (r *Repository[E, ID]) FindAll(_ context.Context) ([]E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.items), nil
}

// FindByID returns the first entity whose identifier equals id, or the zero
// value of E and a nil error when there is none.
func (r *Repository[E, ID]) FindByID(_ context.Context, id ID) (E, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		var zero E
		return zero, nil
	}
	return r.items[i], nil
}

// Update replaces the stored entity carrying entity's identifier, keeping its
// position. Returns *errs.NotFoundError when no such entity is stored.
func (r *Repository[E, ID]) Update(_ context.Context, entity E) error {
	if isNil(entity) {
		return ErrEntityIsNil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.EntityID()
	i := r.indexOf(id)
	if i < 0 {
		return errs.NewNotFoundError(id, r.entityType)
	}
	r.items[i] = entity
	return nil
}

// Delete removes the entity with the given identifier, keeping the order of
// the others. Returns *errs.NotFoundError when no such entity is stored.
func (r *Repository[E, ID]) Delete(_ context.Context, id ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return errs.NewNotFoundError(id, r.entityType)
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

// EntityType returns the descriptor given to NewRepository.
func (r *Repository[E, ID]) EntityType() kernel.EntityType {
	return r.entityType
}

// Len returns the number of stored entities.
func (r *Repository[E, ID]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// indexOf must be called with r.mu held.
func (r *Repository[E, ID]) indexOf(id kernel.ValueObject) int {
	if id == nil {
		return -1
	}
	for i, item := range r.items {
		if isNil(item) {
			continue
		}
		if id.Equals(item.EntityID()) {
			return i
		}
	}
	return -1
}

// isNil reports whether e is a nil interface or a typed nil pointer, map,
// slice, func or channel.
func isNil[E any](e E) bool {
	v := reflect.ValueOf(any(e))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

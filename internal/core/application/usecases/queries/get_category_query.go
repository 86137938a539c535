package queries

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var ErrGetCategoryQueryIsNotConstructed = errors.New(
	"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
)

// GetCategoryQuery retrieves a single category by its identifier.
//
// Example:
//
//	query, err := NewGetCategoryQuery(id)
//	if err != nil {
//	    return err
//	}
//	response, err := handler.Handle(ctx, query)
type GetCategoryQuery struct {
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCategoryQuery creates the query. The identifier must be constructed.
func NewGetCategoryQuery(categoryID kernel.UUID) (GetCategoryQuery, error) {
	if err := categoryID.Validate(); err != nil {
		return GetCategoryQuery{}, err
	}
	return GetCategoryQuery{
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

func (q GetCategoryQuery) CategoryID() kernel.UUID {
	return q.categoryID
}

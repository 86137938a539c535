package ports

import (
	"catalog/internal/core/domain/model/category"
	"catalog/internal/core/domain/model/kernel"
)

// CategoryRepository stores Category aggregates keyed by their kernel.UUID.
type CategoryRepository interface {
	Repository[*category.Category, kernel.UUID]
}

// Package commands contains business operations that modify the catalog.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: guarded construction, validation
// by the aggregate, persistence through a repository port.
package commands

import (
	"catalog/internal/core/ports"
)

// CategoryRepository is the port every category command handler writes through.
type CategoryRepository = ports.CategoryRepository

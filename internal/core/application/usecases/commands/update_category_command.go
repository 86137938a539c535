package commands

import (
	"errors"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/guard"
)

var (
	ErrUpdateCategoryCommandIsNotConstructed = errors.New(
		"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one field must be updated")
)

// UpdateCategoryCommand represents a partial change to an existing category.
// Only the fields set through options are changed.
//
// Example:
//
//	cmd, err := NewUpdateCategoryCommand(id, WithName("Series"), WithActive(false))
type UpdateCategoryCommand struct {
	categoryID kernel.UUID

	name           *string
	description    *string
	setDescription bool
	isActive       *bool

	guard guard.ConstructorGuard
}

// UpdateOption selects a field to change.
type UpdateOption func(*UpdateCategoryCommand)

func WithName(name string) UpdateOption {
	return func(c *UpdateCategoryCommand) {
		c.name = &name
	}
}

// WithDescription sets the description; nil clears it.
func WithDescription(description *string) UpdateOption {
	return func(c *UpdateCategoryCommand) {
		c.description = description
		c.setDescription = true
	}
}

func WithActive(active bool) UpdateOption {
	return func(c *UpdateCategoryCommand) {
		c.isActive = &active
	}
}

// NewUpdateCategoryCommand creates the command. The identifier must be
// constructed and at least one option must be given.
func NewUpdateCategoryCommand(categoryID kernel.UUID, opts ...UpdateOption) (UpdateCategoryCommand, error) {
	cmd := UpdateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}
	for _, opt := range opts {
		opt(&cmd)
	}

	if err := errors.Join(
		cmd.setCategoryID(categoryID),
		cmd.checkChanges(),
	); err != nil {
		return UpdateCategoryCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

func (c UpdateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the new name and whether it was set.
func (c UpdateCategoryCommand) Name() (string, bool) {
	if c.name == nil {
		return "", false
	}
	return *c.name, true
}

// Description returns the new description and whether it was set.
func (c UpdateCategoryCommand) Description() (*string, bool) {
	return c.description, c.setDescription
}

// IsActive returns the new active flag and whether it was set.
func (c UpdateCategoryCommand) IsActive() (bool, bool) {
	if c.isActive == nil {
		return false, false
	}
	return *c.isActive, true
}

func (c *UpdateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

func (c *UpdateCategoryCommand) checkChanges() error {
	if c.name == nil && !c.setDescription && c.isActive == nil {
		return ErrNothingToUpdate
	}
	return nil
}

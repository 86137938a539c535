package category

import (
	"encoding/json"
	"errors"
	"time"

	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
	"catalog/internal/pkg/validation"
)

// EntityType describes Category to repositories and errors.
var EntityType = kernel.NewEntityType("Category")

// ErrCategoryIsNotConstructed is returned by Validate for a Category that was
// not built through New or Create.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via New or Create")

// Validator is the validation step a Category runs on creation and on every
// change. It returns nil or an *errs.EntityValidationError.
type Validator interface {
	Validate(c *Category) error
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc func(c *Category) error

func (f ValidatorFunc) Validate(c *Category) error {
	return f(c)
}

// DefaultValidator enforces the category rules through the validation package.
var DefaultValidator Validator = ValidatorFunc(validateRules)

type rules struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
}

func validateRules(c *Category) error {
	fields, err := validation.Struct(rules{Name: c.name, Description: c.description})
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return errs.NewEntityValidationError(fields)
	}
	return nil
}

// Props are the inputs of New and Create. Zero values take defaults: a fresh
// identifier, no description, active, and the current time.
type Props struct {
	CategoryID  kernel.UUID
	Name        string
	Description *string
	IsActive    *bool
	CreatedAt   time.Time
}

// Option customizes a Category at construction.
type Option func(*Category)

// WithValidator replaces DefaultValidator for the lifetime of the category.
func WithValidator(v Validator) Option {
	return func(c *Category) {
		if v != nil {
			c.validator = v
		}
	}
}

// Category is the aggregate root of the catalog. It is not safe for
// concurrent mutation.
type Category struct {
	categoryID  kernel.UUID
	name        string
	description *string
	isActive    bool
	createdAt   time.Time

	validator     Validator
	isConstructed bool
}

// New builds a Category from props without validating it. It is used to
// rebuild categories whose state is already trusted.
func New(props Props, opts ...Option) *Category {
	c := &Category{
		categoryID:    props.CategoryID,
		name:          props.Name,
		description:   cloneString(props.Description),
		isActive:      true,
		createdAt:     props.CreatedAt,
		validator:     DefaultValidator,
		isConstructed: true,
	}

	if c.categoryID.Validate() != nil {
		c.categoryID = kernel.NewUUID()
	}
	if props.IsActive != nil {
		c.isActive = *props.IsActive
	}
	if c.createdAt.IsZero() {
		c.createdAt = time.Now()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create builds a new Category and validates it.
//
// Example:
//
//	c, err := category.Create(category.Props{Name: "Movie"})
//	var invalid *errs.EntityValidationError
//	if errors.As(err, &invalid) {
//	    // invalid.Errors lists every violation
//	}
func Create(props Props, opts ...Option) (*Category, error) {
	c := New(props, opts...)
	if err := c.validator.Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate ensures the category was built through New or Create.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID {
	return c.categoryID
}

func (c *Category) Name() string {
	return c.name
}

// Description returns a copy of the description, nil when there is none.
func (c *Category) Description() *string {
	return cloneString(c.description)
}

func (c *Category) IsActive() bool {
	return c.isActive
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

// ChangeName renames the category. On a validation failure the previous name is kept.
func (c *Category) ChangeName(name string) error {
	previous := c.name
	c.name = name
	if err := c.validator.Validate(c); err != nil {
		c.name = previous
		return err
	}
	return nil
}

// ChangeDescription replaces the description; nil clears it. On a validation
// failure the previous description is kept.
func (c *Category) ChangeDescription(description *string) error {
	previous := c.description
	c.description = cloneString(description)
	if err := c.validator.Validate(c); err != nil {
		c.description = previous
		return err
	}
	return nil
}

// Clone returns an independent copy that keeps the identity and the validator.
// Use it to prepare a change that must be applied all at once.
func (c *Category) Clone() *Category {
	clone := *c
	clone.description = cloneString(c.description)
	return &clone
}

func (c *Category) Activate() {
	c.isActive = true
}

func (c *Category) Deactivate() {
	c.isActive = false
}

// EntityID implements kernel.Entity.
func (c *Category) EntityID() kernel.ValueObject {
	return c.categoryID
}

// EntityType implements kernel.Entity.
func (c *Category) EntityType() kernel.EntityType {
	return EntityType
}

// Equals reports whether other is a Category with the same identifier.
func (c *Category) Equals(other kernel.Entity) bool {
	o, ok := other.(*Category)
	if !ok || o == nil || c == nil {
		return false
	}
	return kernel.SameIdentity(c, o)
}

type categoryJSON struct {
	CategoryID  kernel.UUID `json:"category_id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (c *Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(categoryJSON{
		CategoryID:  c.categoryID,
		Name:        c.name,
		Description: c.description,
		IsActive:    c.isActive,
		CreatedAt:   c.createdAt,
	})
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

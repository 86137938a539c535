package http

import (
	"bytes"
	"encoding/json"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"
)

type createCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type createCategoryResponse struct {
	ID kernel.UUID `json:"id"`
}

// nullableString tells an absent field apart from an explicit null.
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

type updateCategoryRequest struct {
	Name        *string        `json:"name"`
	Description nullableString `json:"description"`
	IsActive    *bool          `json:"is_active"`
}

func (r updateCategoryRequest) options() []commands.UpdateOption {
	var opts []commands.UpdateOption
	if r.Name != nil {
		opts = append(opts, commands.WithName(*r.Name))
	}
	if r.Description.Set {
		opts = append(opts, commands.WithDescription(r.Description.Value))
	}
	if r.IsActive != nil {
		opts = append(opts, commands.WithActive(*r.IsActive))
	}
	return opts
}

// Error is the body of every failed response.
type Error struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  errs.FieldsErrors `json:"errors,omitempty"`
}

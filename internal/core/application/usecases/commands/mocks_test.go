package commands_test

import (
	"context"

	"catalog/internal/core/domain/model/category"
	"catalog/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Insert(ctx context.Context, c *category.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) BulkInsert(ctx context.Context, cs []*category.Category) error {
	args := m.Called(ctx, cs)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*category.Category)
	return c, args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) EntityType() kernel.EntityType {
	return category.EntityType
}

func ptr[T any](v T) *T { return &v }

package categoryrepo_test

import (
	"context"
	"testing"

	"catalog/internal/adapters/out/inmemory/categoryrepo"
	"catalog/internal/core/domain/model/category"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and finds a category", func(t *testing.T) {
		// Given
		repo := categoryrepo.NewRepository()
		c, err := category.Create(category.Props{Name: "Movie"})
		require.NoError(t, err)

		// When
		require.NoError(t, repo.Insert(ctx, c))
		found, err := repo.FindByID(ctx, c.ID())

		// Then
		require.NoError(t, err)
		assert.Same(t, c, found)
		assert.Equal(t, category.EntityType, repo.EntityType())
	})

	t.Run("rejects categories that were not constructed", func(t *testing.T) {
		repo := categoryrepo.NewRepository()

		require.ErrorIs(t, repo.Insert(ctx, &category.Category{}), category.ErrCategoryIsNotConstructed)
		require.ErrorIs(t, repo.Insert(ctx, nil), category.ErrCategoryIsNotConstructed)
		require.ErrorIs(t, repo.Update(ctx, nil), category.ErrCategoryIsNotConstructed)

		valid := category.New(category.Props{Name: "Movie"})
		err := repo.BulkInsert(ctx, []*category.Category{valid, {}})
		require.ErrorIs(t, err, category.ErrCategoryIsNotConstructed)
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("reports the category type when missing", func(t *testing.T) {
		// Given
		repo := categoryrepo.NewRepository()
		id := kernel.NewUUID()

		// When
		err := repo.Delete(ctx, id)

		// Then
		assert.EqualError(t, err, "Category Not Found using ID "+id.String())

		err = repo.Update(ctx, category.New(category.Props{CategoryID: id, Name: "Movie"}))
		assert.Equal(t, errs.NewNotFoundError(id, category.EntityType), err)
	})

	t.Run("update replaces the stored category", func(t *testing.T) {
		// Given
		repo := categoryrepo.NewRepository()
		c := category.New(category.Props{Name: "Movie"})
		require.NoError(t, repo.Insert(ctx, c))
		replacement := category.New(category.Props{CategoryID: c.ID(), Name: "Series"})

		// When
		require.NoError(t, repo.Update(ctx, replacement))

		// Then
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "Series", all[0].Name())
	})
}

package commands_test

import (
	"testing"

	"catalog/internal/adapters/out/inmemory/categoryrepo"
	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/domain/model/category"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCategoryCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("deletes an existing category", func(t *testing.T) {
		// Given
		repo := categoryrepo.NewRepository()
		c := seedCategory(t, ctx, repo)
		cmd, err := commands.NewDeleteCategoryCommand(c.ID())
		require.NoError(t, err)

		// When
		err = commands.NewDeleteCategoryCommandHandler(repo).Handle(ctx, cmd)

		// Then
		require.NoError(t, err)
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("fails when missing", func(t *testing.T) {
		// Given
		id := kernel.NewUUID()
		cmd, err := commands.NewDeleteCategoryCommand(id)
		require.NoError(t, err)

		// When
		err = commands.NewDeleteCategoryCommandHandler(categoryrepo.NewRepository()).Handle(ctx, cmd)

		// Then
		assert.Equal(t, errs.NewNotFoundError(id, category.EntityType), err)
	})

	t.Run("rejects a zero identifier", func(t *testing.T) {
		_, err := commands.NewDeleteCategoryCommand(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("rejects a command built without constructor", func(t *testing.T) {
		err := commands.NewDeleteCategoryCommandHandler(categoryrepo.NewRepository()).
			Handle(ctx, commands.DeleteCategoryCommand{})

		require.ErrorIs(t, err, commands.ErrDeleteCategoryCommandIsNotConstructed)
	})
}

package jobs_test

import (
	"testing"
	"time"

	"catalog/internal/adapters/out/inmemory/categoryrepo"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/category"
	"catalog/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSeededHandler(t *testing.T) queries.ListCategoriesQueryHandler {
	t.Helper()
	repo := categoryrepo.NewRepository()
	inactive := false
	require.NoError(t, repo.BulkInsert(t.Context(), []*category.Category{
		category.New(category.Props{Name: "Movie"}),
		category.New(category.Props{Name: "Series"}),
		category.New(category.Props{Name: "Archive", IsActive: &inactive}),
	}))
	return queries.NewListCategoriesQueryHandler(repo)
}

func TestCatalogStatsJob_Run(t *testing.T) {
	// Given
	job := jobs.NewCatalogStatsJob(newSeededHandler(t), "@every 1h", zap.NewNop())

	// When
	stats, err := job.Run(t.Context())

	// Then
	require.NoError(t, err)
	assert.Equal(t, jobs.CatalogStats{Total: 3, Active: 2}, stats)
	assert.Equal(t, stats, job.Last())
}

func TestCatalogStatsJob_Scheduled(t *testing.T) {
	job := jobs.NewCatalogStatsJob(newSeededHandler(t), "@every 1s", zap.NewNop())
	require.NoError(t, job.Start())
	t.Cleanup(job.Stop)

	assert.Eventually(t, func() bool {
		return job.Last().Total == 3
	}, 5*time.Second, 50*time.Millisecond)
}

func TestCatalogStatsJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewCatalogStatsJob(newSeededHandler(t), "every minute", zap.NewNop())

	require.Error(t, job.Start())
}

func TestJobManager(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		jm := jobs.NewJobManager(newSeededHandler(t), "", nil)

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("invalid schedule", func(t *testing.T) {
		jm := jobs.NewJobManager(newSeededHandler(t), "bogus", zap.NewNop())

		require.Error(t, jm.StartAll())
	})
}

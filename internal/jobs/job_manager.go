package jobs

import (
	"fmt"

	"catalog/internal/core/application/usecases/queries"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	catalogStatsJob *CatalogStatsJob
}

// NewJobManager creates the job manager. An empty statsSchedule disables the
// catalog stats job.
func NewJobManager(
	listCategoriesHandler queries.ListCategoriesQueryHandler,
	statsSchedule string,
	log *zap.Logger,
) *JobManager {
	if log == nil {
		log = zap.NewNop()
	}

	jm := &JobManager{}
	if statsSchedule != "" {
		jm.catalogStatsJob = NewCatalogStatsJob(listCategoriesHandler, statsSchedule, log)
	}
	return jm
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if jm.catalogStatsJob != nil {
		if err := jm.catalogStatsJob.Start(); err != nil {
			return fmt.Errorf("failed to start catalog stats job: %w", err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.catalogStatsJob != nil {
		jm.catalogStatsJob.Stop()
	}
}

package jobs

import (
	"context"
	"fmt"
	"sync"

	"catalog/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CatalogStats is a snapshot of the catalog size.
type CatalogStats struct {
	Total  int
	Active int
}

// CatalogStatsJob reports catalog statistics on a cron schedule.
type CatalogStatsJob struct {
	handler  queries.ListCategoriesQueryHandler
	schedule string
	cron     *cron.Cron
	log      *zap.Logger

	mu   sync.Mutex
	last CatalogStats
}

// NewCatalogStatsJob creates the job. The schedule accepts six-field cron
// expressions and descriptors such as "@every 30s".
func NewCatalogStatsJob(handler queries.ListCategoriesQueryHandler, schedule string, log *zap.Logger) *CatalogStatsJob {
	return &CatalogStatsJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		log:      log.With(zap.String("component", "catalog_stats_job")),
	}
}

// Start registers the job and starts the scheduler.
func (j *CatalogStatsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.Run(context.Background()); err != nil {
			j.log.Error("catalog stats job failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.log.Info("catalog stats job started", zap.String("schedule", j.schedule))
	return nil
}

// Run collects and logs the statistics once.
func (j *CatalogStatsJob) Run(ctx context.Context) (CatalogStats, error) {
	categories, err := j.handler.Handle(ctx, queries.NewListCategoriesQuery())
	if err != nil {
		return CatalogStats{}, err
	}

	stats := CatalogStats{Total: len(categories)}
	for _, c := range categories {
		if c.IsActive {
			stats.Active++
		}
	}

	j.mu.Lock()
	j.last = stats
	j.mu.Unlock()

	j.log.Info("catalog stats",
		zap.Int("total", stats.Total),
		zap.Int("active", stats.Active),
	)
	return stats, nil
}

// Last returns the most recent statistics.
func (j *CatalogStatsJob) Last() CatalogStats {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.last
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *CatalogStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("catalog stats job stopped")
}

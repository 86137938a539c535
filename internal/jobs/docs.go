// Package jobs provides scheduled background tasks for the catalog service.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3 with seconds
// precision, and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(listCategoriesHandler, "@every 1m", log)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// CatalogStatsJob periodically reports how many categories are stored and how
// many of them are active. An empty schedule disables it.
package jobs

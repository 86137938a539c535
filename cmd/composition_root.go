package cmd

import (
	httpin "catalog/internal/adapters/in/http"
	"catalog/internal/adapters/out/inmemory/categoryrepo"
	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/jobs"

	"go.uber.org/zap"
)

// CompositionRoot wires adapters and use cases. Every handler it creates shares
// the same in-memory category repository.
type CompositionRoot struct {
	config       Config
	log          *zap.Logger
	categoryRepo *categoryrepo.Repository
}

func NewCompositionRoot(config Config, log *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:       config,
		log:          log,
		categoryRepo: categoryrepo.NewRepository(),
	}
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.categoryRepo)
}

func (c *CompositionRoot) CreateUpdateCategoryCommandHandler() commands.UpdateCategoryCommandHandler {
	return commands.NewUpdateCategoryCommandHandler(c.categoryRepo)
}

func (c *CompositionRoot) CreateDeleteCategoryCommandHandler() commands.DeleteCategoryCommandHandler {
	return commands.NewDeleteCategoryCommandHandler(c.categoryRepo)
}

func (c *CompositionRoot) CreateGetCategoryQueryHandler() queries.GetCategoryQueryHandler {
	return queries.NewGetCategoryQueryHandler(c.categoryRepo)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.categoryRepo)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateCategoryCommandHandler(),
		c.CreateUpdateCategoryCommandHandler(),
		c.CreateDeleteCategoryCommandHandler(),
		c.CreateGetCategoryQueryHandler(),
		c.CreateListCategoriesQueryHandler(),
		c.log.Named("http"),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateListCategoriesQueryHandler(),
		c.config.StatsSchedule,
		c.log,
	)
}

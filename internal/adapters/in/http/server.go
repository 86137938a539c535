// Package http exposes the category use cases over a JSON HTTP API built on echo.
package http

import (
	"net/http"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/core/application/usecases/queries"
	"catalog/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server translates HTTP requests into commands and queries.
type Server struct {
	// Command handlers
	createCategoryHandler commands.CreateCategoryCommandHandler
	updateCategoryHandler commands.UpdateCategoryCommandHandler
	deleteCategoryHandler commands.DeleteCategoryCommandHandler

	// Query handlers
	getCategoryHandler    queries.GetCategoryQueryHandler
	listCategoriesHandler queries.ListCategoriesQueryHandler

	log *zap.Logger
}

// NewServer creates a server over the given handlers. A nil logger discards output.
func NewServer(
	createCategoryHandler commands.CreateCategoryCommandHandler,
	updateCategoryHandler commands.UpdateCategoryCommandHandler,
	deleteCategoryHandler commands.DeleteCategoryCommandHandler,
	getCategoryHandler queries.GetCategoryQueryHandler,
	listCategoriesHandler queries.ListCategoriesQueryHandler,
	log *zap.Logger,
) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		createCategoryHandler: createCategoryHandler,
		updateCategoryHandler: updateCategoryHandler,
		deleteCategoryHandler: deleteCategoryHandler,
		getCategoryHandler:    getCategoryHandler,
		listCategoriesHandler: listCategoriesHandler,
		log:                   log,
	}
}

// Register mounts the API routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/categories", s.CreateCategory)
	v1.GET("/categories", s.ListCategories)
	v1.GET("/categories/:id", s.GetCategory)
	v1.PATCH("/categories/:id", s.UpdateCategory)
	v1.DELETE("/categories/:id", s.DeleteCategory)
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd := commands.NewCreateCategoryCommand(req.Name, req.Description, req.IsActive)
	id, err := s.createCategoryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, createCategoryResponse{ID: id})
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(c echo.Context) error {
	categories, err := s.listCategoriesHandler.Handle(c.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/v1/categories/:id.
func (s *Server) GetCategory(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetCategoryQuery(id)
	if err != nil {
		return s.writeError(c, err)
	}

	category, err := s.getCategoryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

// UpdateCategory handles PATCH /api/v1/categories/:id. Only the fields present
// in the body change; an explicit null description clears it. The response is
// the category as the update stored it.
func (s *Server) UpdateCategory(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateCategoryRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCategoryCommand(id, req.options()...)
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.updateCategoryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, queries.NewCategoryResponse(updated))
}

// DeleteCategory handles DELETE /api/v1/categories/:id.
func (s *Server) DeleteCategory(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteCategoryCommand(id)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.deleteCategoryHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

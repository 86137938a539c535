package http

import (
	"errors"
	"net/http"

	"catalog/internal/core/application/usecases/commands"
	"catalog/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// writeError maps application errors to responses. Unknown errors are logged
// and answered with 500 without leaking their text.
func (s *Server) writeError(c echo.Context, err error) error {
	var (
		invalid  *errs.EntityValidationError
		notFound *errs.NotFoundError
	)

	switch {
	case errors.As(err, &invalid):
		return c.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: invalid.Message,
			Errors:  invalid.Errors,
		})
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: notFound.Error(),
		})
	case errors.Is(err, errs.ErrIdentifierIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, commands.ErrNothingToUpdate):
		return s.badRequest(c, err.Error())
	default:
		s.log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func (s *Server) badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

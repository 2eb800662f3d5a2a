package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/endysusanto13/todo-backend/internal/apperrors"
)

// respondError maps an application error to its HTTP status and JSON body.
// Unknown codes land on a generic 500 without leaking the cause.
func respondError(c echo.Context, logger *zap.Logger, err error) error {
	code := apperrors.CodeOf(err)
	status := apperrors.HTTPStatus(code)

	if status == http.StatusInternalServerError {
		logger.Error("Request failed",
			zap.String("path", c.Request().URL.Path),
			zap.String("method", c.Request().Method),
			zap.Error(err))
	}

	return c.JSON(status, echo.Map{
		"error": apperrors.MessageOf(err),
		"code":  code,
	})
}

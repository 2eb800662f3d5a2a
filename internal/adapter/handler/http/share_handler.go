package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/endysusanto13/todo-backend/internal/middleware/auth"
	"github.com/endysusanto13/todo-backend/internal/usecase"
)

type ShareHandler struct {
	usecase *usecase.ShareUsecase
	logger  *zap.Logger
}

func NewShareHandler(usecase *usecase.ShareUsecase, logger *zap.Logger) *ShareHandler {
	return &ShareHandler{
		usecase: usecase,
		logger:  logger,
	}
}

type shareRequest struct {
	Email string `json:"email"`
}

func (h *ShareHandler) ShareList(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	listID, err := parseID(c, "listId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid list id",
		})
	}

	var req shareRequest
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Email is required",
		})
	}

	grant, err := h.usecase.ShareList(c.Request().Context(), user.UserID, listID, req.Email)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, grant)
}

func (h *ShareHandler) UnshareList(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	listID, err := parseID(c, "listId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid list id",
		})
	}

	var req shareRequest
	if err := c.Bind(&req); err != nil || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Email is required",
		})
	}

	revoked, err := h.usecase.UnshareList(c.Request().Context(), user.UserID, listID, req.Email)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, revoked)
}

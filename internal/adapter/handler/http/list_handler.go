package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/endysusanto13/todo-backend/internal/middleware/auth"
	"github.com/endysusanto13/todo-backend/internal/usecase"
)

type ListHandler struct {
	usecase *usecase.ListUsecase
	logger  *zap.Logger
}

func NewListHandler(usecase *usecase.ListUsecase, logger *zap.Logger) *ListHandler {
	return &ListHandler{
		usecase: usecase,
		logger:  logger,
	}
}

type listRequest struct {
	Title string `json:"title"`
}

func (h *ListHandler) CreateList(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var req listRequest
	if err := c.Bind(&req); err != nil || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Title is required",
		})
	}

	list, err := h.usecase.CreateList(c.Request().Context(), user.UserID, req.Title)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, list)
}

func (h *ListHandler) GetLists(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	collection, err := h.usecase.GetLists(c.Request().Context(), user.UserID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, collection)
}

func (h *ListHandler) GetList(c echo.Context) error {
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

	detail, err := h.usecase.GetList(c.Request().Context(), user.UserID, listID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, detail)
}

func (h *ListHandler) UpdateList(c echo.Context) error {
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

	var req listRequest
	if err := c.Bind(&req); err != nil || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Title is required",
		})
	}

	list, err := h.usecase.UpdateList(c.Request().Context(), user.UserID, listID, req.Title)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, list)
}

func (h *ListHandler) DeleteList(c echo.Context) error {
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

	list, err := h.usecase.DeleteList(c.Request().Context(), user.UserID, listID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, list)
}

func parseID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

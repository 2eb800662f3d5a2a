package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/endysusanto13/todo-backend/internal/middleware/auth"
	"github.com/endysusanto13/todo-backend/internal/usecase"
)

type TaskHandler struct {
	usecase *usecase.TaskUsecase
	logger  *zap.Logger
}

func NewTaskHandler(usecase *usecase.TaskUsecase, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		usecase: usecase,
		logger:  logger,
	}
}

type taskRequest struct {
	Title string `json:"title"`
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
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

	var req taskRequest
	if err := c.Bind(&req); err != nil || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Title is required",
		})
	}

	task, err := h.usecase.CreateTask(c.Request().Context(), user.UserID, listID, req.Title)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(c echo.Context) error {
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
	taskID, err := parseID(c, "taskId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid task id",
		})
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil || req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Title is required",
		})
	}

	task, err := h.usecase.UpdateTask(c.Request().Context(), user.UserID, listID, taskID, req.Title)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
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
	taskID, err := parseID(c, "taskId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid task id",
		})
	}

	task, err := h.usecase.DeleteTask(c.Request().Context(), user.UserID, listID, taskID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, task)
}

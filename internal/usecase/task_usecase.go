package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/endysusanto13/todo-backend/internal/apperrors"
	"github.com/endysusanto13/todo-backend/internal/domain/model"
	"github.com/endysusanto13/todo-backend/internal/domain/repository"
	"github.com/endysusanto13/todo-backend/internal/usecase/access"
)

// TaskUsecase implements the task workflows. Access is always evaluated
// against the parent list, never against the task's own creator: a shared
// recipient may edit or delete tasks they did not create. The list check
// runs before the task check.
type TaskUsecase struct {
	users   repository.UserRepository
	lists   repository.ListRepository
	tasks   repository.TaskRepository
	checker *access.Checker
	logger  *zap.Logger
}

// NewTaskUsecase creates a new task usecase.
func NewTaskUsecase(
	users repository.UserRepository,
	lists repository.ListRepository,
	tasks repository.TaskRepository,
	checker *access.Checker,
	logger *zap.Logger,
) *TaskUsecase {
	return &TaskUsecase{
		users:   users,
		lists:   lists,
		tasks:   tasks,
		checker: checker,
		logger:  logger,
	}
}

// CreateTask creates a task under a list. Title uniqueness is scoped to the
// list, not the creator. The task is attributed to the acting user, who may
// be a shared recipient rather than the list's creator.
func (u *TaskUsecase) CreateTask(ctx context.Context, userID, listID int64, title string) (*model.Task, error) {
	_, user, err := u.authorize(ctx, userID, listID, "You are not authorized to edit this TODO list.")
	if err != nil {
		return nil, err
	}

	existing, err := u.tasks.FindByListAndTitle(ctx, listID, title)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate task title: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Newf(apperrors.CodeDuplicateTitle, "'%s' has already been created by you.", title)
	}

	task := &model.Task{
		Title:        title,
		IsDeleted:    false,
		CreateUserID: user.ID,
		UpdateUserID: nil,
		ListID:       listID,
	}
	created, err := u.tasks.Insert(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	u.logger.Info("Task created",
		zap.Int64("task_id", created.ID),
		zap.Int64("list_id", listID),
		zap.Int64("user_id", userID))
	return created, nil
}

// UpdateTask renames a task. Order: list not found, forbidden, task not
// found, no-op edit.
func (u *TaskUsecase) UpdateTask(ctx context.Context, userID, listID, taskID int64, newTitle string) (*model.Task, error) {
	_, user, err := u.authorize(ctx, userID, listID, "You are not authorized to edit this TODO list.")
	if err != nil {
		return nil, err
	}

	task, err := u.resolveTask(ctx, listID, taskID)
	if err != nil {
		return nil, err
	}
	if newTitle == task.Title {
		return nil, apperrors.Newf(apperrors.CodeNoChange, "There is no change to %s.", task.Title)
	}

	updated, err := u.tasks.UpdateTitle(ctx, user.ID, newTitle, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", taskID, err)
	}

	u.logger.Info("Task updated",
		zap.Int64("task_id", taskID),
		zap.Int64("list_id", listID),
		zap.Int64("user_id", userID))
	return updated, nil
}

// DeleteTask soft-deletes a task.
func (u *TaskUsecase) DeleteTask(ctx context.Context, userID, listID, taskID int64) (*model.Task, error) {
	_, user, err := u.authorize(ctx, userID, listID, "You are not authorized to delete this TODO list.")
	if err != nil {
		return nil, err
	}

	task, err := u.resolveTask(ctx, listID, taskID)
	if err != nil {
		return nil, err
	}

	deleted, err := u.tasks.SoftDelete(ctx, user.ID, task.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}

	u.logger.Info("Task deleted",
		zap.Int64("task_id", taskID),
		zap.Int64("list_id", listID),
		zap.Int64("user_id", userID))
	return deleted, nil
}

func (u *TaskUsecase) authorize(ctx context.Context, userID, listID int64, forbiddenMsg string) (*model.List, *model.User, error) {
	list, err := u.lists.FindByID(ctx, listID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load list %d: %w", listID, err)
	}
	if list == nil || list.IsDeleted {
		return nil, nil, apperrors.Newf(apperrors.CodeListNotFound, "List id %d is not found.", listID)
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	if user == nil {
		return nil, nil, fmt.Errorf("user %d not found", userID)
	}

	decision, err := u.checker.Decide(ctx, user, list)
	if err != nil {
		return nil, nil, err
	}
	if decision == access.None {
		return nil, nil, apperrors.New(apperrors.CodeForbidden, forbiddenMsg)
	}
	return list, user, nil
}

// resolveTask loads a task and applies the not-found check. A task parented
// by a different list is treated as not found rather than leaking its
// existence.
func (u *TaskUsecase) resolveTask(ctx context.Context, listID, taskID int64) (*model.Task, error) {
	task, err := u.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task %d: %w", taskID, err)
	}
	if task == nil || task.IsDeleted || task.ListID != listID {
		return nil, apperrors.Newf(apperrors.CodeTaskNotFound, "Task id %d is not found.", taskID)
	}
	return task, nil
}

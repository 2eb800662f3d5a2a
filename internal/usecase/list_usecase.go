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

// ListDetail is the composite view returned for a single list: the list
// itself, the emails it is currently shared with, and its live task titles.
type ListDetail struct {
	model.List
	SharedWith []string `json:"shared_with"`
	Tasks      []string `json:"tasks"`
}

// ListCollection partitions a user's lists into the ones they created and
// the ones shared with them.
type ListCollection struct {
	Created      []model.List `json:"created"`
	SharedWithMe []model.List `json:"shared_with_me"`
}

// ListUsecase implements the list workflows. Every mutating operation runs
// its checks in a fixed order and the first failing check short-circuits the
// rest; no mutation happens after a failed check.
type ListUsecase struct {
	users   repository.UserRepository
	lists   repository.ListRepository
	tasks   repository.TaskRepository
	shares  repository.ShareRepository
	checker *access.Checker
	logger  *zap.Logger
}

// NewListUsecase creates a new list usecase.
func NewListUsecase(
	users repository.UserRepository,
	lists repository.ListRepository,
	tasks repository.TaskRepository,
	shares repository.ShareRepository,
	checker *access.Checker,
	logger *zap.Logger,
) *ListUsecase {
	return &ListUsecase{
		users:   users,
		lists:   lists,
		tasks:   tasks,
		shares:  shares,
		checker: checker,
		logger:  logger,
	}
}

// CreateList creates a list for the user. Title uniqueness is scoped to the
// creator and compared exactly, case-sensitive.
func (u *ListUsecase) CreateList(ctx context.Context, userID int64, title string) (*model.List, error) {
	existing, err := u.lists.FindByCreatorAndTitle(ctx, userID, title)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate list title: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Newf(apperrors.CodeDuplicateTitle, "'%s' has already been created by you.", title)
	}

	list := &model.List{
		Title:        title,
		IsShared:     false,
		IsDeleted:    false,
		CreateUserID: userID,
		UpdateUserID: nil,
	}
	created, err := u.lists.Insert(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	u.logger.Info("List created",
		zap.Int64("list_id", created.ID),
		zap.Int64("user_id", userID))
	return created, nil
}

// UpdateList renames a list. Checks run in order: not found, forbidden,
// no-op edit. Any user with access may rename, not only the creator.
func (u *ListUsecase) UpdateList(ctx context.Context, userID, listID int64, newTitle string) (*model.List, error) {
	list, user, err := u.authorize(ctx, userID, listID, "You are not authorized to edit this TODO list.")
	if err != nil {
		return nil, err
	}
	if newTitle == list.Title {
		return nil, apperrors.Newf(apperrors.CodeNoChange, "There is no change to %s.", list.Title)
	}

	updated, err := u.lists.UpdateTitle(ctx, user.ID, newTitle, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to update list %d: %w", listID, err)
	}

	u.logger.Info("List updated",
		zap.Int64("list_id", listID),
		zap.Int64("user_id", userID))
	return updated, nil
}

// DeleteList soft-deletes a list. Tasks under the list are not touched; they
// become unreachable because every task operation resolves the parent list
// first.
func (u *ListUsecase) DeleteList(ctx context.Context, userID, listID int64) (*model.List, error) {
	list, user, err := u.authorize(ctx, userID, listID, "You are not authorized to delete this TODO list.")
	if err != nil {
		return nil, err
	}

	deleted, err := u.lists.SoftDelete(ctx, user.ID, list.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete list %d: %w", listID, err)
	}

	u.logger.Info("List deleted",
		zap.Int64("list_id", listID),
		zap.Int64("user_id", userID))
	return deleted, nil
}

// GetLists returns the user's lists in two partitions: created by them and
// shared with them. A grant whose underlying list has been deleted is
// excluded. Both partitions empty is a not-found condition.
func (u *ListUsecase) GetLists(ctx context.Context, userID int64) (*ListCollection, error) {
	user, err := u.resolveUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	created, err := u.lists.ListByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lists for user %d: %w", userID, err)
	}

	grants, err := u.shares.FindBySharedWithEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to load shared lists for %s: %w", user.Email, err)
	}

	shared := make([]model.List, 0, len(grants))
	seen := make(map[int64]bool)
	for _, g := range grants {
		if g.IsDeleted || seen[g.ListID] {
			continue
		}
		seen[g.ListID] = true
		list, err := u.lists.FindByID(ctx, g.ListID)
		if err != nil {
			return nil, fmt.Errorf("failed to load shared list %d: %w", g.ListID, err)
		}
		if list == nil || list.IsDeleted {
			continue
		}
		shared = append(shared, *list)
	}

	if len(created) == 0 && len(shared) == 0 {
		return nil, apperrors.New(apperrors.CodeListNotFound, "No TODO lists are found.")
	}
	return &ListCollection{Created: created, SharedWithMe: shared}, nil
}

// GetList assembles the detail view of a single list for a user with access.
func (u *ListUsecase) GetList(ctx context.Context, userID, listID int64) (*ListDetail, error) {
	list, _, err := u.authorize(ctx, userID, listID, "You are not authorized to access this TODO list.")
	if err != nil {
		return nil, err
	}

	grants, err := u.shares.FindByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to load share grants for list %d: %w", listID, err)
	}
	sharedWith := make([]string, 0, len(grants))
	for _, g := range grants {
		if !g.IsDeleted {
			sharedWith = append(sharedWith, g.SharedWithEmail)
		}
	}

	tasks, err := u.tasks.FindByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks for list %d: %w", listID, err)
	}
	titles := make([]string, 0, len(tasks))
	for _, t := range tasks {
		titles = append(titles, t.Title)
	}

	return &ListDetail{List: *list, SharedWith: sharedWith, Tasks: titles}, nil
}

// authorize resolves the list and the user and runs the not-found and
// forbidden checks shared by every list operation.
func (u *ListUsecase) authorize(ctx context.Context, userID, listID int64, forbiddenMsg string) (*model.List, *model.User, error) {
	list, err := u.lists.FindByID(ctx, listID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load list %d: %w", listID, err)
	}
	if list == nil || list.IsDeleted {
		return nil, nil, apperrors.Newf(apperrors.CodeListNotFound, "List id %d is not found.", listID)
	}

	user, err := u.resolveUser(ctx, userID)
	if err != nil {
		return nil, nil, err
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

func (u *ListUsecase) resolveUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %d not found", userID)
	}
	return user, nil
}

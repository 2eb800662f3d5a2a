package repository

import (
	"context"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

// TaskRepository persists tasks scoped to a parent list. Same conventions as
// ListRepository: FindByID returns soft-deleted rows, FindByListAndTitle and
// FindByListID only consider non-deleted ones, and lookups return (nil, nil)
// on no match.
type TaskRepository interface {
	Insert(ctx context.Context, task *model.Task) (*model.Task, error)
	FindByID(ctx context.Context, id int64) (*model.Task, error)
	FindByListAndTitle(ctx context.Context, listID int64, title string) (*model.Task, error)
	FindByListID(ctx context.Context, listID int64) ([]model.Task, error)
	UpdateTitle(ctx context.Context, userID int64, title string, id int64) (*model.Task, error)
	SoftDelete(ctx context.Context, userID, id int64) (*model.Task, error)
}

package repository

import (
	"context"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

// ListRepository persists TODO lists. FindByID returns soft-deleted rows as
// well; deletion checks belong to the caller. FindByCreatorAndTitle and
// ListByCreator only consider non-deleted rows. SoftDelete and MarkShared
// are the only write paths for their flags and only ever set them to true.
type ListRepository interface {
	Insert(ctx context.Context, list *model.List) (*model.List, error)
	FindByID(ctx context.Context, id int64) (*model.List, error)
	FindByCreatorAndTitle(ctx context.Context, creatorID int64, title string) (*model.List, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]model.List, error)
	UpdateTitle(ctx context.Context, userID int64, title string, id int64) (*model.List, error)
	MarkShared(ctx context.Context, id int64) (*model.List, error)
	SoftDelete(ctx context.Context, userID, id int64) (*model.List, error)
}

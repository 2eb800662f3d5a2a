package repository

import (
	"context"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

// UserRepository persists registered accounts. Lookup methods return
// (nil, nil) when no row matches.
type UserRepository interface {
	Insert(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

package repository

import (
	"context"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

// ShareRepository persists share grants. FindByListID returns revoked grants
// too; callers filter on IsDeleted. Revoke sets IsDeleted on the matching
// grant and returns (nil, nil) when no live grant matches.
type ShareRepository interface {
	Insert(ctx context.Context, grant *model.ListShare) (*model.ListShare, error)
	FindByListID(ctx context.Context, listID int64) ([]model.ListShare, error)
	FindBySharedByEmail(ctx context.Context, email string) ([]model.ListShare, error)
	FindBySharedWithEmail(ctx context.Context, email string) ([]model.ListShare, error)
	Revoke(ctx context.Context, listID int64, byEmail, withEmail string) (*model.ListShare, error)
}

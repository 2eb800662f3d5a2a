package usecase

import (
	"context"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

// Notifier delivers share notifications to the messaging side channel.
// Delivery is best-effort; callers must not fail an operation on a
// notification error.
type Notifier interface {
	Notify(ctx context.Context, notification *model.ShareNotification) error
}

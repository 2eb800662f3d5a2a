package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/endysusanto13/todo-backend/internal/apperrors"
	"github.com/endysusanto13/todo-backend/internal/domain/model"
	"github.com/endysusanto13/todo-backend/internal/domain/repository"
	"github.com/endysusanto13/todo-backend/internal/usecase/access"
)

const notifyTimeout = 10 * time.Second

// ShareUsecase implements the share and revoke workflows.
type ShareUsecase struct {
	users    repository.UserRepository
	lists    repository.ListRepository
	shares   repository.ShareRepository
	notifier Notifier
	logger   *zap.Logger
}

// NewShareUsecase creates a new share usecase.
func NewShareUsecase(
	users repository.UserRepository,
	lists repository.ListRepository,
	shares repository.ShareRepository,
	notifier Notifier,
	logger *zap.Logger,
) *ShareUsecase {
	return &ShareUsecase{
		users:    users,
		lists:    lists,
		shares:   shares,
		notifier: notifier,
		logger:   logger,
	}
}

// ShareList grants a recipient access to a list. The checks are evaluated in
// a fixed order: recipient not found, list not found, forbidden, already
// shared. The order must not change: reporting an unknown list before the
// authorization check leaks list existence to unauthorized users, but the
// reverse order would hide whether the list exists at all from legitimate
// ones. Recipients of a share may re-share to others; a (list, recipient)
// pair with a live grant cannot be granted again by anyone.
func (u *ShareUsecase) ShareList(ctx context.Context, granterID, listID int64, recipientEmail string) (*model.ListShare, error) {
	granter, err := u.users.FindByID(ctx, granterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", granterID, err)
	}
	if granter == nil {
		return nil, fmt.Errorf("user %d not found", granterID)
	}

	recipient, err := u.users.FindByEmail(ctx, recipientEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to look up recipient %s: %w", recipientEmail, err)
	}

	list, err := u.lists.FindByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to load list %d: %w", listID, err)
	}

	hasAccess := list != nil && list.CreateUserID == granterID
	alreadyShared := false
	// One scan answers both questions; skip it for never-shared lists.
	if list != nil && list.IsShared {
		grants, err := u.shares.FindByListID(ctx, listID)
		if err != nil {
			return nil, fmt.Errorf("failed to load share grants for list %d: %w", listID, err)
		}
		if access.IsSharedWith(grants, granter.Email) {
			hasAccess = true
		}
		alreadyShared = access.IsSharedWith(grants, recipientEmail)
	}

	if recipient == nil {
		return nil, apperrors.Newf(apperrors.CodeRecipientNotFound, "Email '%s' is not found.", recipientEmail)
	}
	if list == nil || list.IsDeleted {
		return nil, apperrors.Newf(apperrors.CodeListNotFound, "List id %d is not found.", listID)
	}
	if !hasAccess {
		return nil, apperrors.New(apperrors.CodeForbidden, "You are not authorized to access this TODO list.")
	}
	if alreadyShared {
		return nil, apperrors.Newf(apperrors.CodeAlreadyShared, "%s is already shared to %s.", list.Title, recipientEmail)
	}

	grant := &model.ListShare{
		ListID:          listID,
		SharedByEmail:   granter.Email,
		SharedWithEmail: recipient.Email,
		IsDeleted:       false,
	}
	created, err := u.shares.Insert(ctx, grant)
	if err != nil {
		return nil, fmt.Errorf("failed to record share grant: %w", err)
	}

	if !list.IsShared {
		if _, err := u.lists.MarkShared(ctx, listID); err != nil {
			// The grant is already committed; the flag flip is retried on the
			// next share of this list.
			u.logger.Error("Failed to mark list as shared",
				zap.Int64("list_id", listID),
				zap.Error(err))
		}
	}

	u.logger.Info("List shared",
		zap.Int64("list_id", listID),
		zap.String("shared_by", granter.Email),
		zap.String("shared_with", recipient.Email))

	u.dispatchNotification(recipient.Email, list.Title, granter.Email)
	return created, nil
}

// UnshareList revokes a grant the granter previously made. Only the user who
// made a grant can revoke it; revocation is monotonic and a revoked grant is
// never restored.
func (u *ShareUsecase) UnshareList(ctx context.Context, granterID, listID int64, recipientEmail string) (*model.ListShare, error) {
	granter, err := u.users.FindByID(ctx, granterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user %d: %w", granterID, err)
	}
	if granter == nil {
		return nil, fmt.Errorf("user %d not found", granterID)
	}

	revoked, err := u.shares.Revoke(ctx, listID, granter.Email, recipientEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke share grant: %w", err)
	}
	if revoked == nil {
		return nil, apperrors.Newf(apperrors.CodeShareNotFound,
			"List id %d is not shared to %s by you.", listID, recipientEmail)
	}

	u.logger.Info("Share revoked",
		zap.Int64("list_id", listID),
		zap.String("shared_by", granter.Email),
		zap.String("shared_with", recipientEmail))
	return revoked, nil
}

// dispatchNotification publishes the share notification without blocking the
// request. The grant is already committed; a delivery failure is logged and
// never surfaces to the sharer.
func (u *ShareUsecase) dispatchNotification(email, listTitle, sharedBy string) {
	notification, err := model.NewShareNotification(email, listTitle, sharedBy)
	if err != nil {
		u.logger.Error("Failed to build share notification",
			zap.String("email", email),
			zap.Error(err))
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := u.notifier.Notify(ctx, notification); err != nil {
			u.logger.Error("Failed to publish share notification",
				zap.String("notification_id", notification.ID),
				zap.String("email", email),
				zap.Error(err))
		}
	}()
}

package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
	"github.com/endysusanto13/todo-backend/internal/usecase"
)

// SharePublisher publishes share notifications to a redis pub/sub channel
// picked up by the mail worker. It implements usecase.Notifier.
type SharePublisher struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

var _ usecase.Notifier = (*SharePublisher)(nil)

// NewSharePublisher creates a publisher for the given channel.
func NewSharePublisher(client *redis.Client, channel string, logger *zap.Logger) *SharePublisher {
	return &SharePublisher{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Notify publishes the notification envelope as JSON. Delivery is at most
// once; a dropped message costs an email, never a grant.
func (p *SharePublisher) Notify(ctx context.Context, notification *model.ShareNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal share notification: %w", err)
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish share notification: %w", err)
	}

	p.logger.Debug("Share notification published",
		zap.String("notification_id", notification.ID),
		zap.String("channel", p.channel))
	return nil
}

package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

// ShareHandler processes one decoded share notification.
type ShareHandler func(ctx context.Context, notification *model.ShareNotification) error

// ShareConsumer subscribes to the share-notification channel and feeds each
// message to a handler. Handler failures are logged and the loop continues;
// a bad message never wedges the worker.
type ShareConsumer struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

// NewShareConsumer creates a consumer for the given channel.
func NewShareConsumer(client *redis.Client, channel string, logger *zap.Logger) *ShareConsumer {
	return &ShareConsumer{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Run blocks consuming messages until the context is canceled.
func (c *ShareConsumer) Run(ctx context.Context, handler ShareHandler) error {
	pubsub := c.client.Subscribe(ctx, c.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", c.channel, err)
	}

	c.logger.Info("Subscribed to share notifications", zap.String("channel", c.channel))

	ch := pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			c.handleMessage(ctx, msg.Payload, handler)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (c *ShareConsumer) handleMessage(ctx context.Context, payload string, handler ShareHandler) {
	var notification model.ShareNotification
	if err := json.Unmarshal([]byte(payload), &notification); err != nil {
		c.logger.Error("Failed to decode share notification",
			zap.String("payload", payload),
			zap.Error(err))
		return
	}

	if err := handler(ctx, &notification); err != nil {
		c.logger.Error("Failed to handle share notification",
			zap.String("notification_id", notification.ID),
			zap.String("email", notification.Email),
			zap.Error(err))
		return
	}

	c.logger.Info("Share notification handled",
		zap.String("notification_id", notification.ID),
		zap.String("email", notification.Email))
}

package mail

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/endysusanto13/todo-backend/internal/config"
	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

const shareSubject = "Someone has shared a task with you!"

// Sender delivers share-notification emails over SMTP.
type Sender struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSender creates an SMTP sender from the email config.
func NewSender(cfg *config.EmailConfig, logger *zap.Logger) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.FromAddress,
		logger: logger,
	}
}

// SendShareNotification emails the recipient about a list shared with them.
func (s *Sender) SendShareNotification(ctx context.Context, notification *model.ShareNotification) error {
	body := fmt.Sprintf("Hi %s, you have received a new task '%s'!",
		notification.Email, notification.Task)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", notification.Email)
	m.SetHeader("Subject", shareSubject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Error("Failed to send share notification email",
			zap.String("to", notification.Email),
			zap.String("notification_id", notification.ID),
			zap.Error(err))
		return fmt.Errorf("failed to send email to %s: %w", notification.Email, err)
	}

	s.logger.Info("Share notification email sent",
		zap.String("to", notification.Email),
		zap.String("notification_id", notification.ID))
	return nil
}

package database

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/endysusanto13/todo-backend/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	err := db.AutoMigrate(
		&model.User{},
		&model.List{},
		&model.Task{},
		&model.ListShare{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}

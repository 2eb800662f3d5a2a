package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/endysusanto13/todo-backend/internal/config"
	"github.com/endysusanto13/todo-backend/internal/infrastructure/mail"
	"github.com/endysusanto13/todo-backend/internal/infrastructure/messaging"
	"github.com/endysusanto13/todo-backend/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Output:      cfg.Log.Output,
		FilePath:    cfg.Log.FilePath,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	redisClient, err := messaging.NewRedisClient(&cfg.Redis, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	sender := mail.NewSender(&cfg.Email, zapLogger)
	consumer := messaging.NewShareConsumer(redisClient, cfg.Redis.Channel, zapLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		zapLogger.Info("Shutting down worker...")
		cancel()
	}()

	zapLogger.Info("Share notification worker started",
		zap.String("channel", cfg.Redis.Channel))

	if err := consumer.Run(ctx, sender.SendShareNotification); err != nil && !errors.Is(err, context.Canceled) {
		zapLogger.Fatal("Worker stopped with error", zap.Error(err))
	}

	zapLogger.Info("Worker shut down successfully")
}

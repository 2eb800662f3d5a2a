package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/endysusanto13/todo-backend/internal/adapter/handler/http"
	"github.com/endysusanto13/todo-backend/internal/config"
	"github.com/endysusanto13/todo-backend/internal/infrastructure/database"
	"github.com/endysusanto13/todo-backend/internal/middleware/auth"
	"github.com/endysusanto13/todo-backend/internal/usecase"
	"github.com/endysusanto13/todo-backend/internal/usecase/access"
)

type Server struct {
	config   *config.Config
	logger   *zap.Logger
	echo     *echo.Echo
	repos    *database.Repositories
	notifier usecase.Notifier
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories, notifier usecase.Notifier) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	return &Server{
		config:   cfg,
		logger:   logger,
		echo:     e,
		repos:    repos,
		notifier: notifier,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	checker := access.NewChecker(s.repos.Share)

	authUsecase := usecase.NewAuthUsecase(s.repos.User, s.config.JWT.Secret, s.config.JWT.Expiry, s.logger)
	listUsecase := usecase.NewListUsecase(s.repos.User, s.repos.List, s.repos.Task, s.repos.Share, checker, s.logger)
	taskUsecase := usecase.NewTaskUsecase(s.repos.User, s.repos.List, s.repos.Task, checker, s.logger)
	shareUsecase := usecase.NewShareUsecase(s.repos.User, s.repos.List, s.repos.Share, s.notifier, s.logger)

	authHandler := handlers.NewAuthHandler(authUsecase, s.logger)
	listHandler := handlers.NewListHandler(listUsecase, s.logger)
	taskHandler := handlers.NewTaskHandler(taskUsecase, s.logger)
	shareHandler := handlers.NewShareHandler(shareUsecase, s.logger)

	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
		SkipPaths: []string{
			"/health",
			"/register",
			"/login",
		},
	}
	s.echo.Use(auth.JWTMiddleware(jwtConfig))

	s.echo.POST("/register", authHandler.Register)
	s.echo.POST("/login", authHandler.Login)

	s.echo.POST("/list", listHandler.CreateList)
	s.echo.GET("/list", listHandler.GetLists)
	s.echo.GET("/list/:listId", listHandler.GetList)
	s.echo.PATCH("/list/:listId", listHandler.UpdateList)
	s.echo.DELETE("/list/:listId", listHandler.DeleteList)

	s.echo.POST("/list/:listId/task", taskHandler.CreateTask)
	s.echo.PATCH("/list/:listId/task/:taskId", taskHandler.UpdateTask)
	s.echo.DELETE("/list/:listId/task/:taskId", taskHandler.DeleteTask)

	s.echo.POST("/share/list/:listId", shareHandler.ShareList)
	s.echo.DELETE("/share/list/:listId", shareHandler.UnshareList)
}

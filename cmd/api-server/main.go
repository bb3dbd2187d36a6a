package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"portfoliohub/database"
	"portfoliohub/internal/config"
	"portfoliohub/internal/httpapi/handler"
	"portfoliohub/internal/httpapi/repository"
	"portfoliohub/internal/httpapi/service"
	"portfoliohub/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	if err := database.SeedAdmin(db, cfg, logger); err != nil {
		log.Fatalf("could not seed admin account: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	aboutRepo := repository.NewAboutRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	notificationService := service.NewNotificationService(notificationRepo)
	projectService := service.NewProjectService(projectRepo, commentRepo, likeRepo, cfg)
	commentService := service.NewCommentService(commentRepo, projectRepo, notificationService, logger)
	likeService := service.NewLikeService(likeRepo, projectRepo)
	aboutService := service.NewAboutService(aboutRepo)
	dashboardService := service.NewDashboardService(projectRepo, commentRepo, likeRepo, notificationRepo)

	if err := aboutService.EnsureDefault(); err != nil {
		log.Fatalf("could not seed about content: %v", err)
	}

	uploads := storage.New(cfg.UploadDir, cfg.UploadMaxBytes)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = cfg.UploadMaxBytes

	handler.RegisterRoutes(r, handler.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Project:      handler.NewProjectHandler(projectService, uploads),
		Comment:      handler.NewCommentHandler(commentService),
		Like:         handler.NewLikeHandler(likeService),
		About:        handler.NewAboutHandler(aboutService),
		Notification: handler.NewNotificationHandler(notificationService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
	}, authService, cfg)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("portfoliohub API listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

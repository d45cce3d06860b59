package main

import (
	"log"
	"net/http"
	"os"

	"civicpulse/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"civicpulse/internal/auth"
	"civicpulse/internal/cache"
	"civicpulse/internal/config"
	"civicpulse/internal/db"
	"civicpulse/internal/handler"
	"civicpulse/internal/model"
	"civicpulse/internal/repository"
	"civicpulse/internal/router"
	"civicpulse/internal/service"
)

// @title CivicPulse API
// @version 1.0
// @description Civic issue reporting platform: citizens report issues, administrators triage and resolve them, both sides exchange comments and poll notifications.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Notification{},
			&model.Comment{},
			&model.Issue{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Issue{},
		&model.Comment{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	issueRepo := repository.NewIssueRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService, cfg.AdminUsername, cfg.AdminPassword)
	issueService := service.NewIssueService(issueRepo, notificationRepo, cacheClient)
	commentService := service.NewCommentService(commentRepo, issueRepo, notificationRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	issueHandler := handler.NewIssueHandler(issueService)
	commentHandler := handler.NewCommentHandler(commentService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		issueHandler,
		commentHandler,
		notificationHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}

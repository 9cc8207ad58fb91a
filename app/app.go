package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-user-api/config"
	"go-user-api/db"
	"go-user-api/handler"
	"go-user-api/logger"
	"go-user-api/metrics"
	"go-user-api/repository"
	"go-user-api/router"
	"go-user-api/service"
)

func Run() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger.Init(cfg.Environment)
	logger.Log.WithField("environment", cfg.Environment).Info("Configuration loaded successfully")

	metrics.Register()

	database, err := db.Connect(cfg)
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if cfg.Database.RunMigrations {
		if err := db.RunMigrations(cfg, "file://db/migrations"); err != nil {
			logger.Log.Fatalf("Error running migrations: %v", err)
		}
	}

	redisClient, err := db.ConnectRedis(cfg)
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// Wire the layers together. Every dependency is constructed once here
	// and injected; no package-level state is shared between requests.
	userRepo := repository.NewUserRepository(database)
	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo, authService, redisClient)
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)

	r := router.NewRouter(authHandler, userHandler, authService)

	port := cfg.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// Package main is the entry point for the Budgetwise API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/config"
	"github.com/budgetwise/backend/internal/application/usecase/auth"
	"github.com/budgetwise/backend/internal/infra/db"
	"github.com/budgetwise/backend/internal/infra/dependency"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Budgetwise API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Initialize Redis client
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Wire dependencies
	injector, err := dependency.NewInjector(cfg, database.DB(), redisClient)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	// Ensure the default user exists
	provisionCtx, provisionCancel := context.WithTimeout(context.Background(), 10*time.Second)
	provisioned, err := injector.Provisioner.Execute(provisionCtx, auth.ProvisionDefaultUserInput{
		Email:    cfg.DefaultUser.Email,
		FullName: cfg.DefaultUser.FullName,
		Password: cfg.DefaultUser.Password,
	})
	provisionCancel()
	if err != nil {
		slog.Error("Failed to provision default user", "error", err)
		os.Exit(1)
	}
	if provisioned.Created {
		slog.Info("Default user provisioned", "email", cfg.DefaultUser.Email)
	}

	// Start email worker
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(workerCtx)
	} else {
		slog.Info("Email worker disabled")
	}

	// Setup router
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	workerCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/services"
	"github.com/SscSPs/garage_invoice_app/internal/handlers"
	"github.com/SscSPs/garage_invoice_app/internal/platform/config"
	"github.com/SscSPs/garage_invoice_app/internal/repositories/database/mongodb"
	"github.com/SscSPs/garage_invoice_app/migrations"
	"github.com/SscSPs/garage_invoice_app/pkg/database"
)

// @title Garage Invoice API
// @version 1.0
// @description Customers, invoices, products and PDF template settings for a vehicle garage.

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run owns every resource of the process so deferred cleanup happens before main exits.
func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	client, err := database.NewMongoClient(connectCtx, cfg.MongoURI)
	cancel()
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		database.CloseMongoClient(closeCtx, client)
	}()

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := mongodb.RunMigrations(client, cfg.MongoDatabase, migrations.FS); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("Database migrations applied.")
	}

	repos := mongodb.NewRepositoryProvider(client.Database(cfg.MongoDatabase), cfg.DBOperationTimeout)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	router, err := handlers.NewRouter(cfg, serviceContainer, logger)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("production", cfg.IsProduction))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

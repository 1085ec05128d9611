package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kexpay/internal/config"
	"kexpay/internal/ledger"
	"kexpay/internal/logger"
	"kexpay/internal/server"
	"kexpay/internal/services"
)

// @title           KeX-Pay API
// @version         1.0
// @description     KeX-Pay is a personal finance dashboard: accounts, transactions, budgets, savings goals and the metrics derived from them.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l := ledger.New()
	if appConfig.SeedFile != "" {
		if err := loadSeed(l, appConfig.SeedFile); err != nil {
			return err
		}
		log.Infow("seed loaded",
			"path", appConfig.SeedFile,
			"accounts", len(l.Accounts()),
			"transactions", len(l.Transactions()),
		)
	}

	router := server.NewRouter(appConfig, server.NewServices(l, services.NewAuditService()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("Starting KeX-Pay API on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return server.Run(ctx, ":"+appConfig.Port, router, appConfig.ShutdownTimeout)
}

func loadSeed(l *ledger.Ledger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	if err := l.LoadSeed(f); err != nil {
		return fmt.Errorf("failed to load seed file %s: %w", path, err)
	}
	return nil
}

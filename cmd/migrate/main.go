package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"fulfillment/internal/pkg/config"
	"fulfillment/internal/pkg/dotenv"
	"fulfillment/internal/pkg/postgres"
	"fulfillment/pkg/logger"
	"fulfillment/pkg/logger/zap_adapter"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With(logger.NewField("cmd", "migrate"))

	err = dotenv.Load(dotenv.DefaultFile)
	switch {
	case errors.Is(err, dotenv.ErrNotFound):
		mainLog.Warn("no .env file found, using system environment variables")
	case err != nil:
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), appLogger)
	if err != nil {
		mainLog.Error("migrate", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, log logger.Logger) error {
	// only the database section is needed here
	cfg := config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, log, &cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	return postgres.Migrate(ctx, log.With(logger.NewField("cmd", "migrate")), pool)
}

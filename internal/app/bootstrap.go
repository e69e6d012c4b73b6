package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
	"github.com/for-hk/linkup-auth/internal/config"
	"github.com/for-hk/linkup-auth/internal/middleware"
	"github.com/for-hk/linkup-auth/internal/pkg/logging"
	"github.com/for-hk/linkup-auth/internal/pkg/message"
	"github.com/for-hk/linkup-auth/internal/platform/db"
)

const cfgFile = "config.json"

func Run(ctx context.Context) error {
	slog.Info("Initializing...")

	appEnv := os.Getenv("ENV")
	if appEnv != "production" {
		if err := env.Load(".env"); err != nil {
			return fmt.Errorf("load env: %w", err)
		}
	}
	logging.SetupLogger(appEnv, os.Getenv("LOG_LEVEL"), os.Stderr)

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	dbConn, err := db.NewConnection(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if err := db.Migrate(ctx, dbConn); err != nil {
		return err
	}

	const envKey = "KEY"
	signingKey, ok := os.LookupEnv(envKey)
	if !ok {
		return fmt.Errorf(message.EnvErrFmt, envKey)
	}

	provider, err := newProvider(cfg, signingKey, dbConn)
	if err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
		middleware.CheckContentType,
	}

	server := New(cfg, dbConn, provider, middlewares)
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return server.Shutdown()
}

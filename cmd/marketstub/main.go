// Command marketstub runs the stub marketplace upstream: the auth wire
// contract backed by a seeded in-memory user table. Intended for local
// development against a known set of accounts.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/agrimercato/marketplace-client/internal/infrastructure/config"
	"github.com/agrimercato/marketplace-client/internal/stubserver"
	"github.com/agrimercato/marketplace-client/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	users := stubserver.NewUserStore(stubserver.DefaultSeed())
	e := stubserver.NewRouter(users, stubserver.Config{
		JWTSecret: cfg.Stub.JWTSecret,
		TokenTTL:  time.Duration(cfg.Stub.TokenTTLMinute) * time.Minute,
	}, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Stub.Port).Msg("stub upstream listening")
		if err := e.Start(":" + cfg.Stub.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

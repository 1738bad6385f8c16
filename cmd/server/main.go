package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/you/pr-relay/internal/config"
	"github.com/you/pr-relay/internal/infra"
	"github.com/you/pr-relay/internal/repository"
	ghrepo "github.com/you/pr-relay/internal/repository/gh"
	transport "github.com/you/pr-relay/internal/transport/http"
	uc "github.com/you/pr-relay/internal/usecase"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file to load before reading the environment")
	pflag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger, err := infra.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build logger")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.GitHub.Token == "" {
		logger.Warn().Msg("GITHUB_TOKEN is not set; upstream calls will be unauthenticated")
	}
	repoImpl, err := ghrepo.NewGHRepo(ctx, ghrepo.Options{
		Token:   cfg.GitHub.Token,
		BaseURL: cfg.GitHub.APIURL,
		Timeout: cfg.GitHub.Timeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init github client")
	}
	var repo repository.Repo = repoImpl

	prUC := uc.NewPRUsecase(repo)
	handlers := transport.NewHandlers(prUC, logger)

	srv := &http.Server{
		Handler:      transport.NewRouter(handlers),
		Addr:         cfg.Addr(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.GitHub.Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Str("upstream", cfg.GitHub.APIURL).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
}

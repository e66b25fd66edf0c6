// Investment Advisor
// Entry point for the JSON API server
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/findosh/advisor/internal/config"
	"github.com/findosh/advisor/internal/handlers"
	"github.com/findosh/advisor/internal/logger"
	"github.com/findosh/advisor/internal/middleware"
	"github.com/findosh/advisor/internal/scheduler"
	"github.com/findosh/advisor/internal/services/advisor"
	"github.com/findosh/advisor/internal/services/tokens"
	"github.com/findosh/advisor/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty || cfg.IsDevelopment(),
	})

	// Initialize database
	db, err := storage.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	store := storage.NewStore(db)

	// Initialize services
	advisorService := advisor.NewService(advisor.Options{
		Store:           store,
		SessionTTL:      cfg.SessionDuration,
		MaxHorizonYears: cfg.MaxHorizonYears,
		Logger:          log,
	})
	issuer := tokens.NewIssuer(cfg.SecretKey)

	h := handlers.New(cfg, advisorService, issuer, store.Portfolios, log)

	// Apply global middleware
	handler := middleware.Chain(
		h.Routes(),
		middleware.Recover(log),
		middleware.SecurityHeaders,
		middleware.Logger(log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched := scheduler.New(log)
	if err := sched.AddJob(cleanupSchedule(cfg.SessionDuration), &scheduler.SessionCleanupJob{Sessions: advisorService}); err != nil {
		log.Fatal().Err(err).Msg("failed to schedule session cleanup")
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	// Start server
	log.Info().
		Str("addr", "http://localhost"+srv.Addr).
		Str("environment", cfg.Environment).
		Msg("advisor server starting")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// cleanupSchedule sweeps sessions four times per session lifetime
func cleanupSchedule(sessionDuration time.Duration) string {
	every := sessionDuration / 4
	if every < time.Minute {
		every = time.Minute
	}
	return "@every " + every.String()
}

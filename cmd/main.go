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

	"github.com/esportsarena/competition-core/config"
	"github.com/esportsarena/competition-core/db"
	"github.com/esportsarena/competition-core/handlers"
	"github.com/esportsarena/competition-core/repositories"
	api "github.com/esportsarena/competition-core/routes"
	"github.com/esportsarena/competition-core/services"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("migrations applied")

	leagueEntryRepo := repositories.NewPostgresLeagueEntryRepository(dbConn)
	tournamentEntryRepo := repositories.NewPostgresTournamentEntryRepository(dbConn)
	challengeRepo := repositories.NewPostgresChallengeRepository(dbConn)
	logger.Info("repositories initialized")

	standingsService := services.NewStandingsService(dbConn, leagueEntryRepo)
	tournamentEntryService := services.NewTournamentEntryService(tournamentEntryRepo)
	challengeService := services.NewChallengeService(challengeRepo)
	logger.Info("services initialized")

	// Background sweep keeps current_position reasonably fresh between
	// explicit recompute calls. Each run is idempotent, so overlap with a
	// manual recompute is harmless.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.RecomputeCron, func() {
		if err := standingsService.RecomputeAllLeagues(context.Background()); err != nil {
			logger.Error("scheduled standings recompute failed", slog.Any("error", err))
		}
	})
	if err != nil {
		logger.Error("failed to schedule standings recompute", slog.Any("error", err))
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()
	logger.Info("standings recompute scheduler started", slog.String("schedule", cfg.RecomputeCron))

	standingsHandler := handlers.NewStandingsHandler(standingsService)
	tournamentEntryHandler := handlers.NewTournamentEntryHandler(tournamentEntryService)
	challengeHandler := handlers.NewChallengeHandler(challengeService)
	healthHandler := handlers.NewHealthHandler(dbConn)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.CORSAllowedOrigins,
		[]byte(cfg.JWTSecretKey),
		standingsHandler,
		tournamentEntryHandler,
		challengeHandler,
		healthHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"versekids/internal/bookgame"
	"versekids/internal/config"
	"versekids/internal/database"
	"versekids/internal/handlers"
	"versekids/internal/repository"
	"versekids/internal/security"
	"versekids/internal/service"
	"versekids/internal/speech"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database connection established", "type", cfg.DatabaseType)

	if err := db.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
		return err
	}
	logger.Info("migrations completed")

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	learnerRepo := repository.NewLearnerRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)
	quizRepo := repository.NewQuizRepository(db)

	// Services
	emailService, err := service.NewEmailService(ctx, cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, logger)
	if err != nil {
		return err
	}
	if !emailService.IsEnabled() {
		logger.Warn("parent emails disabled, SES_FROM_EMAIL is not set")
	}

	tts := speech.NewTTSService(cfg.AudioPath)
	games := bookgame.NewRegistry(ctx)
	prefetcher := service.NewPrefetcher(ctx, tts, cfg.PrefetchTTL, logger)

	progressService := service.NewProgressService(service.ProgressDeps{
		Progress:   progressRepo,
		Learners:   learnerRepo,
		Plans:      accountRepo,
		Overrides:  overrideRepo,
		Questions:  quizRepo,
		Speaker:    tts,
		Notifier:   service.NewParentNotifier(emailService, accountRepo),
		Games:      games,
		Prefetcher: prefetcher,
		Logger:     logger,
		Location:   cfg.Location(),
	})
	learnerService := service.NewLearnerService(learnerRepo, cfg.Location(), logger)

	// Security
	secret := cfg.JWTSecret
	if secret == "" {
		logger.Warn("JWT_SECRET not set, using an insecure development secret")
		secret = "versekids-dev-secret"
	}
	tokens := security.NewTokenIssuer(secret, cfg.TokenDuration)
	if cfg.AdminKeyHash == "" {
		logger.Warn("ADMIN_KEY_HASH not set, admin endpoints are disabled")
	}
	limiter := security.NewRateLimiter(20, time.Minute)
	go limiter.Run(ctx, 5*time.Minute)

	router := &handlers.Router{
		Learners:   handlers.NewLearnerHandler(learnerService, progressService, logger),
		Admin:      handlers.NewAdminHandler(overrideRepo, logger),
		Middleware: handlers.NewMiddleware(tokens, cfg.AdminKeyHash, limiter, logger),
		Audio:      tts,
		DB:         db,
		Logger:     logger,
	}
	handler := handlers.CORS(cfg.CORSOrigins)(handlers.Logging(logger)(router.Routes()))

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	prefetcher.Wait()
	return nil
}

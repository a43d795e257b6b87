package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"platra/internal/config"
	"platra/internal/database"
	"platra/internal/handler"
	"platra/internal/media"
	"platra/internal/middleware"
	"platra/internal/platform"
	"platra/internal/repository"
	"platra/internal/router"
	"platra/internal/service"
	"platra/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting platra API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}

	checkoutRepo := repository.NewCheckoutRepository(pool, logger)

	// Initialize image loader with S3 and local fallback
	fileLoader := media.NewFileLoader(cfg.Media.Dir, logger)
	var s3Loader media.Loader
	if cfg.S3.Enabled {
		s3Loader, err = media.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Loader = nil
		}
	} else {
		logger.Info().Str("dir", cfg.Media.Dir).Msg("using local file system for images (S3 disabled)")
	}
	imageLoader := media.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, logger)

	// One platform client, and cookie jar, per browser session
	upstream := platform.Config{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.TimeoutDuration(),
	}
	if _, err := platform.NewClient(upstream, logger); err != nil {
		return fmt.Errorf("invalid upstream configuration: %w", err)
	}
	sessions := session.NewStore(session.StoreConfig{
		MaxSessions: cfg.Session.MaxSessions,
		IdleTTL:     cfg.Session.TTLDuration(),
	}, platform.NewFactory(upstream, logger), logger)
	tokens := session.NewTokens(cfg.Session.Secret, cfg.Session.TTLDuration())

	// Initialize services
	authService := service.NewAuthService(imageLoader, logger)
	orderingService := service.NewOrderingService(checkoutRepo, cfg.Ordering.Currency, logger)
	inviteService := service.NewInviteService(logger)
	managementService := service.NewManagementService(imageLoader, logger)
	paymentService := service.NewPaymentService(logger)

	// Initialize HTTP handlers and router
	mux := router.New(router.Handlers{
		Auth:       handler.NewAuthHandler(authService, logger),
		Ordering:   handler.NewOrderingHandler(orderingService, logger),
		Invite:     handler.NewInviteHandler(inviteService, logger),
		Management: handler.NewManagementHandler(managementService, logger),
		Payment:    handler.NewPaymentHandler(paymentService, logger),
	}, router.Config{
		AllowedOrigin: cfg.CORS.AllowedOrigin,
		Sessions:      sessions,
		Tokens:        tokens,
		Cookie: middleware.SessionConfig{
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.CookieSecure,
		},
	}, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Upstream.TimeoutDuration() + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("upstream", cfg.Upstream.BaseURL).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ezysalad/internal/config"
	"ezysalad/internal/database"
	"ezysalad/internal/handler"
	"ezysalad/internal/mailer"
	"ezysalad/internal/payment"
	"ezysalad/internal/repository"
	"ezysalad/internal/router"
	"ezysalad/internal/service"
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
	logger.Info().Msg("starting ezysalad API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	menuRepo := repository.NewMenuRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Initialize external collaborators
	providerClient := payment.NewPortOneClient(
		cfg.Payment.BaseURL,
		cfg.Payment.APISecret,
		time.Duration(cfg.Payment.TimeoutSeconds)*time.Second,
		logger,
	)
	mailSender := mailer.NewSMTPSender(
		cfg.Email.Host,
		cfg.Email.Port,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
		logger,
	)

	// Initialize services
	menuService := service.NewMenuService(menuRepo, logger)
	orderService := service.NewOrderService(orderRepo, cfg.Order, logger)
	paymentService := service.NewPaymentService(orderRepo, providerClient, mailSender, cfg.Payment, cfg.Email.Recipient, logger)

	// Initialize HTTP handlers
	menuHandler := handler.NewMenuHandler(menuService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	paymentHandler := handler.NewPaymentHandler(paymentService, logger)
	contactHandler := handler.NewContactHandler(mailSender, cfg.Email.Recipient, logger)

	// Initialize router
	mux := router.New(menuHandler, orderHandler, paymentHandler, contactHandler, cfg.Auth.AdminAPIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
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

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

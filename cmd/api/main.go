package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gift-shop/internal/catalog"
	"gift-shop/internal/config"
	"gift-shop/internal/database"
	"gift-shop/internal/handler"
	"gift-shop/internal/model"
	"gift-shop/internal/repository"
	"gift-shop/internal/reservation"
	"gift-shop/internal/router"
	"gift-shop/internal/service"
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
	logger.Info().Msg("starting gift-shop API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the product catalogue. The database is the preferred source when
	// enabled; otherwise the catalogue comes from S3 with a local file
	// fallback. Either way it is loaded once and immutable afterwards.
	var products []model.Product

	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		productRepo := repository.NewProductRepository(pool, logger)
		products, err = productRepo.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load catalogue from database: %w", err)
		}
	} else {
		fileLoader := catalog.NewFileLoader(logger)
		var catalogLoader catalog.Loader

		if cfg.S3.Enabled {
			// Create S3 loader with local fallback
			s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system only")
				catalogLoader = fileLoader
			} else {
				catalogLoader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
			}
		} else {
			// S3 disabled, use local file system only
			catalogLoader = fileLoader
			logger.Info().Msg("using local file system for catalogue file (S3 disabled)")
		}

		products, err = catalogLoader.Load(ctx, cfg.Catalog.FilePath)
		if err != nil {
			return fmt.Errorf("failed to load catalogue: %w", err)
		}
	}

	cat, err := catalog.New(products)
	if err != nil {
		return fmt.Errorf("failed to build catalogue: %w", err)
	}
	logger.Info().Int("product_count", cat.Size()).Msg("catalogue loaded")

	// Initialize the code reservation backend (mock implementation)
	expiryPolicy := reservation.NewFixedDatePolicy(cfg.Reservation.ExpiryDate)
	reserver := reservation.NewMockReserver(cat, expiryPolicy, &reservation.ReserverConfig{
		Delay:        cfg.Reservation.Delay,
		VendorPrefix: cfg.Catalog.VendorPrefix,
	}, logger)

	// Initialize services
	productService := service.NewProductService(cat, logger)
	giftService := service.NewGiftService(reserver, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	giftHandler := handler.NewGiftHandler(giftService, logger)

	// Initialize router
	mux := router.New(productHandler, giftHandler, cfg.Auth.APIKey, logger)

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

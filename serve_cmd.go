package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Soneshaps/musicgpt-clone/api"
	"github.com/Soneshaps/musicgpt-clone/cache"
	"github.com/Soneshaps/musicgpt-clone/config"
	"github.com/Soneshaps/musicgpt-clone/db"
	"github.com/Soneshaps/musicgpt-clone/monitoring"
	"github.com/Soneshaps/musicgpt-clone/security"
	"github.com/Soneshaps/musicgpt-clone/services"
	"github.com/Soneshaps/musicgpt-clone/stores"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run migrations and start the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	printBanner()
	fmt.Println()

	printStep("1/7", "Loading configuration...")
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	printSuccess(fmt.Sprintf("Configuration loaded (%s)", cfg.Environment))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	printStep("2/7", "Connecting to database...")
	database, err := openDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close()
	printSuccess(fmt.Sprintf("Connected to %s", cfg.Database.Driver))

	printStep("3/7", "Applying migrations...")
	applied, err := db.NewSchemaMigrator(database.GetDB()).Up()
	if err != nil {
		return err
	}
	printSuccess(fmt.Sprintf("Schema up to date (%d applied)", len(applied)))

	printStep("4/7", "Connecting to cache...")
	registry := monitoring.NewRegistry()
	metrics := monitoring.NewMetrics(registry)

	backendName := cfg.Cache.Backend
	backend, err := cache.New(cfg)
	if err != nil {
		printWarning(fmt.Sprintf("Failed to connect to cache: %v (continuing without cache)", err))
		logger.Warn("cache unavailable", zap.Error(err))
		backend, backendName = cache.NopCache{}, config.CacheBackendNone
	} else {
		printSuccess(fmt.Sprintf("Cache backend: %s", backendName))
	}
	store := cache.NewInstrumentedCache(backend, backendName, metrics)
	defer store.Close()

	printStep("5/7", "Initializing services...")
	voiceStore := stores.CreateVoiceStore(database.GetDB())
	requestStore := stores.CreateSpeechRequestStore(database.GetDB())
	voiceService := services.CreateVoiceService(voiceStore, store, cfg.Cache.TTL.Std(), metrics)
	requestService := services.CreateSpeechRequestService(requestStore, voiceStore)
	printSuccess("Services initialized")

	printStep("6/7", "Initializing health checks and rate limiting...")
	checker := monitoring.CreateHealthChecker(2 * time.Second)
	checker.AddCheck("database", true, database.Ping)
	if store.Backend() != config.CacheBackendNone {
		checker.AddCheck("cache", false, store.Ping)
	}

	var limiter *security.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = security.CreateRateLimiter(security.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RPS,
			Burst:             cfg.RateLimit.Burst,
		})
		defer limiter.Close()
		printSuccess(fmt.Sprintf("Rate limiting: %.0f rps, burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	} else {
		printInfo("Rate limiting disabled")
	}

	printStep("7/7", "Setting up HTTP server...")
	router := api.NewRouter(api.RouterDeps{
		Logger:         logger,
		Voices:         api.CreateVoiceHandler(voiceService),
		SpeechRequests: api.CreateSpeechRequestHandler(requestService),
		Health:         api.CreateHealthHandler(checker, store.GetStats),
		Metrics:        metrics,
		Gatherer:       registry,
		RateLimiter:    limiter,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	server := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout.Std(),
		WriteTimeout:   cfg.Server.WriteTimeout.Std(),
		IdleTimeout:    cfg.Server.IdleTimeout.Std(),
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}
	printSuccess("HTTP server configured")

	fmt.Println()
	fmt.Printf("%s%s🎉 MusicGPT API is ready!%s\n", colorGreen, colorBold, colorReset)
	fmt.Println()
	fmt.Printf("%s%sAPI Endpoints:%s\n", colorPurple, colorBold, colorReset)
	for _, ep := range []struct{ name, path string }{
		{"Voices:         ", "GET    /voices"},
		{"Search:         ", "GET    /voices/search"},
		{"Speech requests:", "POST   /speech-requests"},
		{"Clear cache:    ", "DELETE /cache"},
		{"Health:         ", "GET    /health"},
		{"Metrics:        ", "GET    /metrics"},
	} {
		fmt.Printf("  %s•%s %s %s%s%s\n", colorCyan, colorReset, ep.name, colorYellow, ep.path, colorReset)
	}
	fmt.Println()
	fmt.Printf("%s%sServer Port:%s %s%s%s\n", colorPurple, colorBold, colorReset, colorYellow, cfg.Server.Port, colorReset)
	fmt.Printf("%s%sPress Ctrl+C to stop the server%s\n", colorYellow, colorBold, colorReset)
	fmt.Println()

	serveErr := make(chan error, 1)
	go func() {
		printInfo(fmt.Sprintf("Starting HTTP server on port %s...", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
	case <-ctx.Done():
	}

	fmt.Println()
	printWarning("Shutting down MusicGPT API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	printSuccess("Server stopped gracefully")
	_ = os.Stdout.Sync()
	return nil
}

package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/stockwatch/digitec-stock-check/internal/api"
	"github.com/stockwatch/digitec-stock-check/internal/browser"
	"github.com/stockwatch/digitec-stock-check/internal/cache"
	"github.com/stockwatch/digitec-stock-check/internal/checker"
	"github.com/stockwatch/digitec-stock-check/internal/config"
	"github.com/stockwatch/digitec-stock-check/internal/extract"
	"github.com/stockwatch/digitec-stock-check/internal/fetch"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Fetcher selection: plain HTTP by default, headless browser when the
	// retailer withholds the hydration payload from script-less clients.
	var fetcher fetch.Fetcher
	switch cfg.Fetch.Mode {
	case "browser":
		b, err := browser.New(&browser.Options{
			Headless:       cfg.Fetch.Headless,
			Timeout:        cfg.Fetch.Timeout,
			UserAgent:      cfg.Fetch.UserAgent,
			AcceptLanguage: cfg.Fetch.AcceptLanguage,
			Locale:         "de-CH",
			TimezoneID:     "Europe/Zurich",
			ViewportWidth:  1920,
			ViewportHeight: 1080,
		})
		if err != nil {
			logger.Error("failed to initialize browser", "error", err)
			os.Exit(1)
		}
		defer b.Close()
		fetcher = b
	default:
		fetcher = fetch.NewHTTPFetcher(&fetch.Options{
			UserAgent:       cfg.Fetch.UserAgent,
			AcceptLanguage:  cfg.Fetch.AcceptLanguage,
			Accept:          cfg.Fetch.Accept,
			Timeout:         cfg.Fetch.Timeout,
			RequestInterval: cfg.Fetch.RequestInterval,
		})
	}

	var snapCache *cache.SnapshotCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		snapCache = cache.New(redisClient, cfg.Redis.CacheTTL, logger)
	}

	pipeline := extract.NewPipeline(logger)
	service := checker.NewService(fetcher, pipeline, snapCache, logger)
	handlers := api.NewHandlers(service, cfg.Product.URL, logger)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      api.NewRouter(handlers),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr, "fetch_mode", cfg.Fetch.Mode)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("shutting down", "signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

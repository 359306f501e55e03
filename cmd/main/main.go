package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Houeta/price-radar/internal/bot"
	"github.com/Houeta/price-radar/internal/cache"
	"github.com/Houeta/price-radar/internal/config"
	"github.com/Houeta/price-radar/internal/metrics"
	"github.com/Houeta/price-radar/internal/repository/sqlite"
	"github.com/Houeta/price-radar/internal/retrieval"
	"github.com/Houeta/price-radar/internal/scheduler"
	"github.com/Houeta/price-radar/internal/services/alerts"
	"github.com/Houeta/price-radar/internal/services/checker"
	"github.com/Houeta/price-radar/internal/services/comparator"
	"github.com/Houeta/price-radar/internal/services/history"
	"github.com/Houeta/price-radar/internal/services/tracker"
	"golang.org/x/time/rate"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

const (
	cacheKeyPrefix  = "price-radar:"
	shutdownTimeout = 5 * time.Second
)

// main is the entry point of the application.
func main() {
	// Create a context that will be canceled when an interrupt signal is received.
	// This allows for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	repo, err := sqlite.NewRepository(ctx, logger, cfg.StoragePath)
	if err != nil {
		log.Fatalf("Failed to init repository: %v", err)
	}
	defer repo.Close()

	responseCache, closeCache := newCache(ctx, logger, cfg.Cache)
	defer closeCache()

	appMetrics := metrics.New()

	source := retrieval.NewSource(
		logger,
		newRemote(logger, cfg.API),
		retrieval.NewFallback(),
		responseCache,
		cfg.Cache.TTL,
		retrieval.WithMetrics(appMetrics),
	)

	alertStore, err := alerts.NewStore(ctx, logger, repo)
	if err != nil {
		log.Fatalf("Failed to load alerts: %v", err)
	}

	priceTracker := tracker.NewTracker(
		logger,
		source,
		comparator.NewComparator(logger, source),
		history.NewSimulator(),
	)

	radarBot, err := bot.NewBot(logger, cfg.Tg.Token, cfg.Tg.Timeout, bot.Services{
		Tracker:       priceTracker,
		Alerts:        alertStore,
		Subscriptions: repo,
		Health:        source,
	})
	if err != nil {
		log.Fatalf("Failed to init bot: %v", err)
	}

	limit := rate.Limit(cfg.Checker.RPS)
	if cfg.Checker.RPS <= 0 {
		limit = rate.Inf
	}
	alertChecker := checker.NewChecker(logger, source, alertStore, rate.NewLimiter(limit, 1))

	alertScheduler := scheduler.New(logger, alertChecker, radarBot, appMetrics)
	if err = alertScheduler.Start(ctx, cfg.Checker.Interval); err != nil {
		log.Fatalf("Failed to schedule alert checks: %v", err)
	}

	metricsServer := startMetricsServer(logger, cfg.MetricsAddr, appMetrics)

	// Log that the application has started.
	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "live_api", cfg.API.URL != "")

	// Start the bot in a goroutine to allow main to listen for signals.
	go radarBot.Start()

	// Wait for the context to be canceled (e.g., by Ctrl+C).
	<-ctx.Done()

	// Log that a shutdown signal has been received.
	logger.InfoContext(ctx, "Shutdown signal received. Stopping application...")

	// Stop the bot gracefully.
	radarBot.Stop()
	alertScheduler.Stop()

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err = metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Metrics server shutdown failed", "error", err)
		}
	}

	// Log graceful shutdown completion.
	logger.InfoContext(ctx, "Application stopped gracefully.")
}

// newRemote returns nil when no API is configured, which keeps every lookup simulated.
func newRemote(logger *slog.Logger, cfg config.API) retrieval.Remote {
	if cfg.URL == "" {
		logger.Warn("PR_API_URL is not set, serving simulated prices only")
		return nil
	}

	return retrieval.NewClient(logger, cfg.URL, cfg.SearchTimeout, cfg.HealthTimeout)
}

// newCache falls back to no caching when redis is not configured or unreachable.
func newCache(ctx context.Context, logger *slog.Logger, cfg config.Cache) (cache.Cache, func()) {
	noop := func() {}
	if cfg.RedisAddr == "" {
		return cache.Nop{}, noop
	}

	rc, err := cache.NewRedis(ctx, cfg.RedisAddr, cacheKeyPrefix)
	if err != nil {
		logger.Warn("Response cache disabled", "error", err)
		return cache.Nop{}, noop
	}

	return rc, func() {
		if err := rc.Close(); err != nil {
			logger.Warn("Failed to close redis client", "error", err)
		}
	}
}

// startMetricsServer serves /metrics on addr; an empty addr disables it.
func startMetricsServer(logger *slog.Logger, addr string, m *metrics.Metrics) *http.Server {
	if addr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}
	go func() {
		logger.Info("Metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server failed", "error", err)
		}
	}()

	return srv
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level:       slog.LevelError,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}

	return a
}

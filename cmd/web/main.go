package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"isl-dashboard/internal/config"
	"isl-dashboard/internal/middleware"
	"isl-dashboard/internal/observability"
	"isl-dashboard/internal/server"
	"isl-dashboard/internal/services"
	"isl-dashboard/internal/ui/templates"
)

const (
	renderTimeout  = 10 * time.Second
	csvLoadTimeout = 30 * time.Second
	cacheMaxAge    = "public, max-age=300"
)

func handleDashboard(analytics *services.Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
		defer cancel()

		m := analytics.Matches()
		data := templates.DashboardData{
			Summary: m.Summary,
			Winners: m.Winners,
		}

		w.Header().Set("Cache-Control", cacheMaxAge)
		if err := templates.Dashboard(data).Render(ctx, w); err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
		}
	}
}

func handlePlayers(analytics *services.Analytics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
		defer cancel()

		p := analytics.Players()
		data := templates.PlayersData{
			Summary:   p.Summary,
			TypeSplit: p.TypeSplit,
		}

		w.Header().Set("Cache-Control", cacheMaxAge)
		if err := templates.Players(data).Render(ctx, w); err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"config", cfg,
	)

	analytics := services.NewAnalytics(cfg.Pipeline)
	ctx, cancel := context.WithTimeout(context.Background(), csvLoadTimeout)
	defer cancel()

	// A table that fails to load is served empty rather than killing the
	// process, so the other table stays available.
	start := time.Now()
	if err := analytics.LoadMatchesFromCSV(ctx, cfg.Data.MatchesCSV); err != nil {
		logger.Warn("match table unavailable", "file", cfg.Data.MatchesCSV, "error", err)
	}
	if err := analytics.LoadPlayersFromCSV(ctx, cfg.Data.PlayersCSV); err != nil {
		logger.Warn("player table unavailable", "file", cfg.Data.PlayersCSV, "error", err)
	}
	logger.Info("CSV data loaded", "duration", time.Since(start))

	templateHandlers := &server.TemplateHandlers{
		Dashboard: handleDashboard(analytics),
		Players:   handlePlayers(analytics),
	}

	srv := server.NewServer(analytics, logger, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(observability.Component(logger, "http")),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
	)

	handler := middlewareChain(srv)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down analytics service")
		return nil
	})

	logger.Info("starting graceful server")
	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}

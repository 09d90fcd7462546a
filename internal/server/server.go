package server

import (
	"log/slog"
	"net/http"

	"isl-dashboard/internal/handlers"
	"isl-dashboard/internal/services"
)

type Server struct {
	analytics   *services.Analytics
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
	Players   http.HandlerFunc
}

func NewServer(analytics *services.Analytics, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		analytics:   analytics,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(analytics, logger),
		sseHandlers: handlers.NewSSEHandlers(analytics, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard routes
	s.mux.HandleFunc("GET /{$}", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /players", templateHandlers.Players)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)
	s.mux.HandleFunc("POST /admin/reload", s.apiHandlers.HandleReload)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/summary", s.apiHandlers.HandleMatchSummary)
	s.mux.HandleFunc("GET /api/player-summary", s.apiHandlers.HandlePlayerSummary)
	s.mux.HandleFunc("GET /api/leaderboard", s.apiHandlers.HandleLeaderboard)
	s.mux.HandleFunc("GET /api/charts/matches", s.apiHandlers.HandleMatchCharts)
	s.mux.HandleFunc("GET /api/charts/players", s.apiHandlers.HandlePlayerCharts)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/match-charts", s.sseHandlers.HandleMatchCharts)
	s.mux.HandleFunc("GET /sse/player-charts", s.sseHandlers.HandlePlayerCharts)
	s.mux.HandleFunc("GET /sse/leaderboard", s.sseHandlers.HandleLeaderboard)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

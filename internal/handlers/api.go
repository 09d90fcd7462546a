package handlers

import (
	goerrors "errors"
	"log/slog"
	"net/http"
	"time"

	"isl-dashboard/internal/charts"
	"isl-dashboard/internal/errors"
	"isl-dashboard/internal/observability"
	"isl-dashboard/internal/services"
	"isl-dashboard/internal/stats"
)

const cacheControl = "public, max-age=300"

type APIHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewAPIHandlers(analytics *services.Analytics, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

func (h *APIHandlers) HandleMatchSummary(w http.ResponseWriter, r *http.Request) {
	m := h.analytics.Matches()
	errors.WriteSuccessWithHeaders(w, map[string]any{
		"summary": m.Summary,
		"winners": m.Winners,
	}, map[string]string{"Cache-Control": cacheControl})
}

func (h *APIHandlers) HandlePlayerSummary(w http.ResponseWriter, r *http.Request) {
	p := h.analytics.Players()
	errors.WriteSuccessWithHeaders(w, map[string]any{
		"summary":    p.Summary,
		"type_split": p.TypeSplit,
	}, map[string]string{"Cache-Control": cacheControl})
}

func (h *APIHandlers) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	data := h.analytics.Matches().Leaders
	errors.WriteSuccessWithHeaders(w, data, map[string]string{"Cache-Control": cacheControl})
}

func (h *APIHandlers) HandleMatchCharts(w http.ResponseWriter, r *http.Request) {
	figs := charts.MatchFigures(h.analytics.Matches())
	errors.WriteSuccessWithHeaders(w, figs, map[string]string{"Cache-Control": cacheControl})
}

func (h *APIHandlers) HandlePlayerCharts(w http.ResponseWriter, r *http.Request) {
	figs := charts.PlayerFigures(h.analytics.Players())
	errors.WriteSuccessWithHeaders(w, figs, map[string]string{"Cache-Control": cacheControl})
}

// HandleReload re-reads both CSVs from their last-loaded paths. A schema
// mismatch between the catalog and the file surfaces as MISSING_FIELD; any
// other load failure degrades the affected table and reports 503.
func (h *APIHandlers) HandleReload(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())
	if err := h.analytics.Reload(r.Context()); err != nil {
		var mfe *stats.MissingFieldError
		if goerrors.As(err, &mfe) {
			errors.WriteError(w, h.logger, errors.MissingField(err), requestID)
			return
		}
		errors.WriteError(w, h.logger, errors.ServiceUnavailable("dataset reload failed"), requestID)
		return
	}
	errors.WriteSuccess(w, h.analytics.Stats())
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}

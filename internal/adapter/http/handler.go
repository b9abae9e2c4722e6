package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adspend/internal/core/domain"
	"adspend/internal/core/port"
)

// Handler contains dependencies and routes. It is the inbound HTTP adapter
// of the spend engine: it holds a SpendUseCase to run recomputations and
// manage bidding defaults, a validator for request bodies and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.SpendUseCase
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Besides the
// /api/v1 routes it serves /healthz for liveness probes and /metrics for
// Prometheus scraping. Panics in handlers are recovered and answered with
// HTTP 500.
func NewHandler(svc port.SpendUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, validate: newValidator()}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/spend/recompute", h.handleRecompute)
		r.Get("/defaults", h.handleGetDefaults)
		r.Put("/defaults", h.handlePutDefaults)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// statusFor maps engine errors onto HTTP status codes. A failed bulk read
// means a backing store is down and maps to 503; rejected configuration or
// input maps to 400. Everything else is an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrReadFailure):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrConfigurationInvalid), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status for err. Server-side errors are
// logged and their details withheld from the client.
func (h *Handler) writeError(w http.ResponseWriter, msg string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error(msg, slog.Any("error", err))
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

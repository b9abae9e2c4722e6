package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
)

// handleRecompute runs one recompute synchronously and returns the batch
// result. A run cut short by cancellation still reports what it wrote,
// with HTTP 503.
func (h *Handler) handleRecompute(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Recompute(r.Context())
	if err != nil {
		if res != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			h.logger.Warn("recompute interrupted", slog.String("run_id", res.RunID), slog.Any("error", err))
			h.writeJSON(w, http.StatusServiceUnavailable, res)
			return
		}
		h.writeError(w, "recompute error", err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

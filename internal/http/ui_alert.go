package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	redisadapter "github.com/moness/staff-portal/internal/adapters/redis"
	"github.com/moness/staff-portal/internal/domain/model"
)

// Alert renders the alert screen from the session's one-shot register.
// An unset register shows the placeholder alert.
func (h *UIHandlers) Alert(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	payload, err := h.Alerts.Take(r.Context(), sess.ID)
	if err != nil || payload.IsZero() {
		switch {
		case errors.Is(err, redisadapter.ErrNotFound):
			h.logger().Debug("alert register empty", slog.String("session", sess.ID))
		case err != nil:
			h.logger().Warn("alert register read failed",
				slog.String("session", sess.ID), slog.Any("error", err))
		}
		payload = model.DefaultAlert()
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: payload.Heading, CurrentPage: PageAlert}).
		With("Alert", payload).
		Build())
}

// NotFound renders the catch-all page for unknown paths.
func (h *UIHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	h.render(w, NewTemplateData(r, PageMeta{Title: "Page Not Found", CurrentPage: PageNotFound}).Build())
}

package httpx

import (
	"log/slog"
	"net/http"

	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/ports"
	"github.com/moness/staff-portal/internal/service"
)

// UIHandlers carries the services and renderer shared by every page
// handler.
type UIHandlers struct {
	Auth      *service.AuthService
	Bookings  *service.BookingService
	Menu      *service.MenuService
	Employees *service.EmployeeService
	Alerts    ports.AlertStore
	T         *TemplateRenderer
	Logger    *slog.Logger
}

func (h *UIHandlers) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// render executes the page through the layout; template failures fall
// back to a plain 500 so the browser never sees a broken page.
func (h *UIHandlers) render(w http.ResponseWriter, data map[string]any) {
	if err := h.T.RenderPage(w, data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// redirectWithAlert replaces the session's alert register and sends the
// browser to the alert screen. The register is one-shot and
// last-write-wins; a failed write still redirects, falling back to the
// placeholder alert.
func (h *UIHandlers) redirectWithAlert(w http.ResponseWriter, r *http.Request, payload model.AlertPayload) {
	sess := SessionFromContext(r.Context())
	if err := h.Alerts.Set(r.Context(), sess.ID, payload); err != nil {
		h.logger().Warn("set alert failed", slog.String("session", sess.ID), slog.Any("error", err))
	}
	http.Redirect(w, r, "/alert", http.StatusSeeOther)
}

// redirectUnauthorized is the shared missing-credential alert: shown
// without any network call when the auth cookie is absent.
func (h *UIHandlers) redirectUnauthorized(w http.ResponseWriter, r *http.Request) {
	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Unauthorized",
		Message:        "Authentication token not found. Please log in again.",
		ButtonLabel:    "Log In",
		TargetLocation: "/log-in",
		ErrorCode:      "401",
	})
}

// actor names the signed-in employee for the audit trail; anonymous
// actions are recorded as "guest".
func actor(r *http.Request) string {
	sess := SessionFromContext(r.Context())
	if sess.Email != "" {
		return sess.Email
	}
	return "guest"
}

package httpx

import (
	"log/slog"
	"net/http"

	"github.com/moness/staff-portal/internal/ports"
	"github.com/moness/staff-portal/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth      *service.AuthService
	Bookings  *service.BookingService
	Menu      *service.MenuService
	Employees *service.EmployeeService
	Alerts    ports.AlertStore
	Renderer  *TemplateRenderer
	Logger    *slog.Logger
}

// NewRouter wires every portal page onto a ServeMux. Paths match the
// original portal one to one; anything else renders the not-found page.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	h := &UIHandlers{
		Auth:      services.Auth,
		Bookings:  services.Bookings,
		Menu:      services.Menu,
		Employees: services.Employees,
		Alerts:    services.Alerts,
		T:         services.Renderer,
		Logger:    services.Logger,
	}

	registerAuthRoutes(mux, h)
	registerUserRoutes(mux, h)
	registerManagerRoutes(mux, h)
	registerReservationRoutes(mux, h)
	registerMenuRoutes(mux, h)

	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /alert", h.Alert)
	mux.HandleFunc("/", h.NotFound)

	return mux
}

func registerAuthRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /log-in", h.LogInForm)
	mux.HandleFunc("POST /log-in", h.LogInSubmit)
	mux.HandleFunc("GET /sign-up", h.SignUpForm)
	mux.HandleFunc("POST /sign-up", h.SignUpSubmit)
	mux.HandleFunc("GET /logged-in", h.LoggedIn)
	mux.HandleFunc("GET /unauthorized", h.Unauthorized)
	mux.HandleFunc("POST /log-out", h.LogOut)
	mux.HandleFunc("GET /forgot-password/send-email", h.ForgotPasswordEmailForm)
	mux.HandleFunc("POST /forgot-password/send-email", h.ForgotPasswordEmailSubmit)
	mux.HandleFunc("GET /forgot-password/change-password/{token}", h.ForgotPasswordChangeForm)
	mux.HandleFunc("POST /forgot-password/change-password/{token}", h.ForgotPasswordChangeSubmit)
}

func registerUserRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /user-details/view-user-details", h.ViewUserDetails)
	mux.HandleFunc("GET /user-details/edit-user-details/{id}", h.EditUserDetailsForm)
	mux.HandleFunc("POST /user-details/edit-user-details/{id}", h.EditUserDetailsSubmit)
	mux.HandleFunc("GET /user-details/edit-user-password/{id}", h.EditUserPasswordForm)
	mux.HandleFunc("POST /user-details/edit-user-password/{id}", h.EditUserPasswordSubmit)
}

func registerManagerRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /manager/employee-access-levels/view-employee-access-levels", h.ViewEmployeeAccessLevels)
	mux.HandleFunc("GET /manager/employee-access-levels/edit-employee-access-level/{id}", h.EditEmployeeAccessForm)
	mux.HandleFunc("POST /manager/employee-access-levels/edit-employee-access-level/{id}", h.EditEmployeeAccessSubmit)
	mux.HandleFunc("GET /manager/employee-access-levels/confirm-delete-employee/{id}", h.ConfirmDeleteEmployeeForm)
	mux.HandleFunc("POST /manager/employee-access-levels/confirm-delete-employee/{id}", h.ConfirmDeleteEmployeeSubmit)
}

func registerReservationRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /table-reservation-overview", h.ReservationOverview)
	mux.HandleFunc("GET /table-reservation-overview/view-bookings-by-date", h.ViewBookingsByDate)
	mux.HandleFunc("GET /table-reservation-overview/search-bookings-by-name", h.SearchBookingsByNameForm)
	mux.HandleFunc("POST /table-reservation-overview/search-bookings-by-name", h.SearchBookingsByNameSubmit)
	mux.HandleFunc("GET /table-reservation-overview/search-bookings-by-email", h.SearchBookingsByEmailForm)
	mux.HandleFunc("POST /table-reservation-overview/search-bookings-by-email", h.SearchBookingsByEmailSubmit)
	mux.HandleFunc("GET /table-reservation-overview/search-bookings-by-id", h.SearchBookingsByIDForm)
	mux.HandleFunc("POST /table-reservation-overview/search-bookings-by-id", h.SearchBookingsByIDSubmit)
	mux.HandleFunc("GET /table-reservation-overview/create-booking", h.CreateBookingForm)
	mux.HandleFunc("POST /table-reservation-overview/create-booking", h.CreateBookingSubmit)
	mux.HandleFunc("GET /table-reservation-overview/edit-booking/{id}", h.EditBookingForm)
	mux.HandleFunc("POST /table-reservation-overview/edit-booking/{id}", h.EditBookingSubmit)
	mux.HandleFunc("GET /table-reservation-overview/delete-booking/{id}", h.DeleteBookingForm)
	mux.HandleFunc("POST /table-reservation-overview/delete-booking/{id}", h.DeleteBookingSubmit)
	mux.HandleFunc("GET /table-reservation-overview/create-blocked-time-slot", h.CreateBlockedSlotForm)
	mux.HandleFunc("POST /table-reservation-overview/create-blocked-time-slot", h.CreateBlockedSlotSubmit)
	mux.HandleFunc("GET /table-reservation-overview/edit-blocked-time-slot/{id}", h.EditBlockedSlotForm)
	mux.HandleFunc("POST /table-reservation-overview/edit-blocked-time-slot/{id}", h.EditBlockedSlotSubmit)
	mux.HandleFunc("GET /table-reservation-overview/delete-blocked-time-slot/{id}", h.DeleteBlockedSlotForm)
	mux.HandleFunc("POST /table-reservation-overview/delete-blocked-time-slot/{id}", h.DeleteBlockedSlotSubmit)
	// The prune page runs the prune as soon as it is visited; there is
	// no confirm step.
	mux.HandleFunc("GET /table-reservation-overview/prune-all-bookings", h.PruneAllBookings)
}

func registerMenuRoutes(mux *http.ServeMux, h *UIHandlers) {
	mux.HandleFunc("GET /flemmyng-menu-overview", h.MenuOverview)
	mux.HandleFunc("GET /flemmyng-menu-overview/create/{category}", h.CreateMenuItemForm)
	mux.HandleFunc("POST /flemmyng-menu-overview/create/{category}", h.CreateMenuItemSubmit)
	mux.HandleFunc("GET /flemmyng-menu-overview/edit/{category}/{id}", h.EditMenuItemForm)
	mux.HandleFunc("POST /flemmyng-menu-overview/edit/{category}/{id}", h.EditMenuItemSubmit)
	// Item deletion runs on page visit; there is no confirm step.
	mux.HandleFunc("GET /flemmyng-menu-overview/delete/{category}/{id}", h.DeleteMenuItem)
}

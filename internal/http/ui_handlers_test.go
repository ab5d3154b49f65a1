package httpx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moness/staff-portal/internal/adapters/memory"
	"github.com/moness/staff-portal/internal/api"
	"github.com/moness/staff-portal/internal/data"
	domainauth "github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/mocks/remote"
	"github.com/moness/staff-portal/internal/service"
)

type testEnv struct {
	handler  http.Handler
	sessions *memory.SessionStore
	alerts   *memory.AlertStore
}

func newTestEnv(t *testing.T, mock *remote.MockAPI) *testEnv {
	t.Helper()

	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS("../../web/templates"),
	})
	require.NoError(t, err)

	sessions := memory.NewSessionStore()
	alerts := memory.NewAlertStore()
	audit := data.NopAuditRecorder{}

	router := NewRouter(RouterServices{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			API: mock, Sessions: sessions, Audit: audit,
		}),
		Bookings:  service.NewBookingService(service.BookingServiceOptions{API: mock, Audit: audit}),
		Menu:      service.NewMenuService(service.MenuServiceOptions{API: mock, Audit: audit}),
		Employees: service.NewEmployeeService(service.EmployeeServiceOptions{API: mock, Audit: audit}),
		Alerts:    alerts,
		Renderer:  renderer,
	})

	handler := Session(SessionConfig{Store: sessions})(router)
	return &testEnv{handler: handler, sessions: sessions, alerts: alerts}
}

// primeSession stores a session and returns the cookie that selects it.
func (e *testEnv) primeSession(t *testing.T, sess domainauth.Session) *http.Cookie {
	t.Helper()
	require.NoError(t, e.sessions.Save(context.Background(), sess))
	return &http.Cookie{Name: "portal_session", Value: sess.ID}
}

func (e *testEnv) alertFor(t *testing.T, sessionID string) model.AlertPayload {
	t.Helper()
	payload, err := e.alerts.Take(context.Background(), sessionID)
	require.NoError(t, err)
	return payload
}

func managerSession() domainauth.Session {
	return domainauth.Session{
		ID:             "sess-manager",
		Token:          "tok-manager",
		Email:          "manager@moness.example",
		FirstName:      "Moira",
		Role:           domainauth.RoleManager,
		ShowNavigation: true,
	}
}

func TestHomeHidesChromeForAnonymousVisitors(t *testing.T) {
	env := newTestEnv(t, &remote.MockAPI{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "STAFF PORTAL")
	assert.NotContains(t, body, "User Details")
	assert.NotContains(t, body, "Employee Access Levels")
}

func TestLoggedInShowsManagerChrome(t *testing.T) {
	env := newTestEnv(t, &remote.MockAPI{})
	cookie := env.primeSession(t, managerSession())

	req := httptest.NewRequest(http.MethodGet, "/logged-in", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "You are successfully logged in.")
	assert.Contains(t, body, "Employee Access Levels")
	assert.Contains(t, body, "Flemmyng Menu")
}

func TestLoggedInPendingSeesWaitingNotice(t *testing.T) {
	env := newTestEnv(t, &remote.MockAPI{})
	cookie := env.primeSession(t, domainauth.Session{
		ID: "sess-pending", Token: "tok", Role: domainauth.RolePending, ShowNavigation: true,
	})

	req := httptest.NewRequest(http.MethodGet, "/logged-in", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "approved by a manager")
	assert.NotContains(t, body, "Table Reservation")
}

func TestLogInShortPasswordRendersInlineWithoutNetwork(t *testing.T) {
	called := false
	mock := &remote.MockAPI{
		LogInFunc: func(context.Context, string, string) (api.Credentials, error) {
			called = true
			return api.Credentials{}, nil
		},
	}
	env := newTestEnv(t, mock)

	form := url.Values{"email": {"staff@moness.example"}, "password": {"short"}}
	req := httptest.NewRequest(http.MethodPost, "/log-in", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password must be at least 6 characters long")
	assert.False(t, called, "short password must not reach the remote API")
}

func TestCreateBookingSuccessSetsAlertAndRedirects(t *testing.T) {
	var submitted model.Booking
	mock := &remote.MockAPI{
		CreateBookingFunc: func(_ context.Context, b model.Booking) error {
			submitted = b
			return nil
		},
	}
	env := newTestEnv(t, mock)
	cookie := env.primeSession(t, managerSession())

	form := url.Values{
		"firstName":      {"Rory"},
		"lastName":       {"Bremner"},
		"email":          {"rory@example.com"},
		"tel":            {"01882123456"},
		"selectedDate":   {"2026-09-12"},
		"selectedTime":   {"17:30"},
		"numberOfGuests": {"4"},
		"occasion":       {"Birthday"},
	}
	req := httptest.NewRequest(http.MethodPost, "/table-reservation-overview/create-booking", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/alert", rec.Header().Get("Location"))
	assert.Equal(t, "1730", submitted.SelectedTime)
	assert.True(t, submitted.TermsAccepted)

	payload := env.alertFor(t, "sess-manager")
	assert.Equal(t, "Booking Created!", payload.Heading)
	assert.Equal(t, "/table-reservation-overview", payload.TargetLocation)
}

func TestCreateBookingBlockedSlotGetsItsOwnAlert(t *testing.T) {
	mock := &remote.MockAPI{
		CreateBookingFunc: func(context.Context, model.Booking) error {
			return &api.Error{Code: "400", Message: "This time slot is blocked and cannot be booked."}
		},
	}
	env := newTestEnv(t, mock)
	cookie := env.primeSession(t, managerSession())

	form := url.Values{
		"firstName":      {"Rory"},
		"lastName":       {"Bremner"},
		"email":          {"rory@example.com"},
		"tel":            {"01882123456"},
		"selectedDate":   {"2026-09-12"},
		"selectedTime":   {"17:30"},
		"numberOfGuests": {"2"},
	}
	req := httptest.NewRequest(http.MethodPost, "/table-reservation-overview/create-booking", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	payload := env.alertFor(t, "sess-manager")
	assert.Equal(t, "Time Slot Blocked", payload.Heading)
}

func TestBookingsByDateRendersBlockedSlotRow(t *testing.T) {
	mock := &remote.MockAPI{
		BookingsByDateFunc: func(context.Context, string) ([]model.Booking, error) {
			return []model.Booking{
				{ID: "b1", FirstName: "Anna", LastName: "Reid", SelectedTime: "1800", NumberOfGuests: 2},
				model.BlockedSlot("s1", "2026-09-12", "1930"),
			}, nil
		},
	}
	env := newTestEnv(t, mock)
	cookie := env.primeSession(t, managerSession())

	req := httptest.NewRequest(http.MethodGet, "/table-reservation-overview/view-bookings-by-date?date=2026-09-12", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Anna Reid")
	assert.Contains(t, body, "18:00")
	assert.Contains(t, body, "Blocked Slot at 19:30")
	assert.Contains(t, body, "/table-reservation-overview/delete-blocked-time-slot/s1")
}

func TestEmployeeAccessWithoutAuthCookieSkipsNetwork(t *testing.T) {
	called := false
	mock := &remote.MockAPI{
		EmployeeAccessListFunc: func(context.Context, string) ([]model.Employee, error) {
			called = true
			return nil, nil
		},
	}
	env := newTestEnv(t, mock)
	cookie := env.primeSession(t, domainauth.Session{ID: "sess-anon", Role: domainauth.RolePending})

	req := httptest.NewRequest(http.MethodGet, "/manager/employee-access-levels/view-employee-access-levels", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.False(t, called, "missing credential must short-circuit before the network")

	payload := env.alertFor(t, "sess-anon")
	assert.Equal(t, "Unauthorized", payload.Heading)
	assert.Equal(t, "401", payload.ErrorCode)
	assert.Equal(t, "/log-in", payload.TargetLocation)
}

func TestConfirmDeleteEmployeeFailureGetsFailureAlert(t *testing.T) {
	mock := &remote.MockAPI{
		DeleteEmployeeFunc: func(context.Context, string, string) error {
			return &api.Error{Code: "500", Message: "delete refused"}
		},
	}
	env := newTestEnv(t, mock)
	cookie := env.primeSession(t, managerSession())

	req := httptest.NewRequest(http.MethodPost, "/manager/employee-access-levels/confirm-delete-employee/emp-1", nil)
	req.AddCookie(cookie)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: "tok-manager"})
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	payload := env.alertFor(t, "sess-manager")
	assert.Equal(t, "Delete Failed", payload.Heading)
	assert.Equal(t, "delete refused", payload.Message)
}

func TestDeleteBookingFailureGetsFailureAlert(t *testing.T) {
	mock := &remote.MockAPI{
		DeleteBookingFunc: func(context.Context, string) error {
			return &api.Error{Code: "502", Message: "remote refused"}
		},
	}
	env := newTestEnv(t, mock)
	cookie := env.primeSession(t, managerSession())

	req := httptest.NewRequest(http.MethodPost, "/table-reservation-overview/delete-booking/b1", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/alert", rec.Header().Get("Location"))
	payload := env.alertFor(t, "sess-manager")
	assert.Equal(t, "Deletion Failed!", payload.Heading)
	assert.Equal(t, "502", payload.ErrorCode)
}

type failingAlertStore struct{ err error }

func (s failingAlertStore) Set(context.Context, string, model.AlertPayload) error { return s.err }
func (s failingAlertStore) Take(context.Context, string) (model.AlertPayload, error) {
	return model.AlertPayload{}, s.err
}

func TestAlertStoreFailureLogsWarnAndShowsPlaceholder(t *testing.T) {
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS("../../web/templates"),
	})
	require.NoError(t, err)

	var logBuf bytes.Buffer
	h := &UIHandlers{
		Alerts: failingAlertStore{err: errors.New("connection refused")},
		T:      renderer,
		Logger: slog.New(slog.NewTextHandler(&logBuf, nil)),
	}

	req := httptest.NewRequest(http.MethodGet, "/alert", nil)
	req = req.WithContext(SetSessionInContext(req.Context(), managerSession()))
	rec := httptest.NewRecorder()
	h.Alert(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "A message goes here")
	assert.Contains(t, logBuf.String(), "level=WARN")
	assert.Contains(t, logBuf.String(), "alert register read failed")
}

func TestAlertScreenIsOneShot(t *testing.T) {
	env := newTestEnv(t, &remote.MockAPI{})
	sess := managerSession()
	cookie := env.primeSession(t, sess)
	require.NoError(t, env.alerts.Set(context.Background(), sess.ID, model.AlertPayload{
		Heading: "Booking Created!", Message: "Your booking was successfully created.",
		ButtonLabel: "Go to Table Reservation Overview", TargetLocation: "/table-reservation-overview",
	}))

	req := httptest.NewRequest(http.MethodGet, "/alert", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Booking Created!")

	// A second visit renders the placeholder, not the consumed alert.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/alert", nil)
	req.AddCookie(cookie)
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Booking Created!")
}

func TestPruneReportsCountersInAlert(t *testing.T) {
	mock := &remote.MockAPI{
		PruneAllFunc: func(context.Context) (api.PruneResult, error) {
			return api.PruneResult{DeletedBookings: 7, DeletedBlockedSlots: 2}, nil
		},
	}
	env := newTestEnv(t, mock)
	cookie := env.primeSession(t, managerSession())

	req := httptest.NewRequest(http.MethodGet, "/table-reservation-overview/prune-all-bookings", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	payload := env.alertFor(t, "sess-manager")
	assert.Equal(t, "Prune Successful!", payload.Heading)
	assert.Equal(t, "7 bookings and 2 blocked slots were deleted.", payload.Message)
}

func TestMenuItemFormHidesFieldsTheCategoryNeverShows(t *testing.T) {
	env := newTestEnv(t, &remote.MockAPI{})
	cookie := env.primeSession(t, managerSession())

	// Sides never show a description field.
	req := httptest.NewRequest(http.MethodGet, "/flemmyng-menu-overview/create/sides", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, `name="description"`)
	assert.Contains(t, body, "Dietary Options")
	assert.Contains(t, body, "Allergens")
}

func TestMenuRoutesRejectUnknownCategory(t *testing.T) {
	env := newTestEnv(t, &remote.MockAPI{})
	cookie := env.primeSession(t, managerSession())

	req := httptest.NewRequest(http.MethodGet, "/flemmyng-menu-overview/create/specials", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
}

func TestSearchBookingsByIDRequiresAnID(t *testing.T) {
	called := false
	mock := &remote.MockAPI{
		BookingByIDFunc: func(context.Context, string) (model.Booking, error) {
			called = true
			return model.Booking{}, errors.New("unreachable")
		},
	}
	env := newTestEnv(t, mock)
	cookie := env.primeSession(t, managerSession())

	req := httptest.NewRequest(http.MethodPost, "/table-reservation-overview/search-bookings-by-id", strings.NewReader("bookingId="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please enter a booking ID.")
	assert.False(t, called)
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	env := newTestEnv(t, &remote.MockAPI{})

	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page Not Found")
}

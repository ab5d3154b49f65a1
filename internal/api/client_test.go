package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)
	return client, srv
}

func TestNewValidatesBaseURL(t *testing.T) {
	_, err := New(Options{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	_, err = New(Options{BaseURL: "http://"})
	assert.Error(t, err)

	_, err = New(Options{BaseURL: "https://api.example.com"})
	assert.NoError(t, err)
}

func TestLogInExtractsCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/employee/log-in", r.URL.Path)
		w.Write([]byte(`{"status":"success","token":"tok123","role":"Manager"}`))
	}))

	creds, err := client.LogIn(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok123", creds.Token)
	assert.Equal(t, auth.RoleManager, creds.Role)
}

func TestLogInRejectedCarriesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"fail","message":"Invalid credentials"}`))
	}))

	_, err := client.LogIn(context.Background(), "a@b.com", "wrong12")
	require.Error(t, err)
	assert.Equal(t, "401", ErrorCode(err))
	assert.Equal(t, "Invalid credentials", ErrorMessage(err))
}

func TestApplicationFailureOnOKTransport(t *testing.T) {
	// HTTP 200 with a non-success status field is still a failure.
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"This time slot is blocked and cannot be booked."}`))
	}))

	err := client.CreateBooking(context.Background(), model.Booking{FirstName: "Jane"})
	require.Error(t, err)
	assert.Equal(t, "This time slot is blocked and cannot be booked.", ErrorMessage(err))
}

func TestMissingStatusFieldIsAFailure(t *testing.T) {
	// A 2xx body that never says status:"success" must not pass.
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"looks fine"}`))
	}))

	err := client.CreateBooking(context.Background(), model.Booking{FirstName: "Jane"})
	require.Error(t, err)
	assert.Equal(t, "500", ErrorCode(err))
}

func TestEmployeeEndpointsAttachBearer(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Write([]byte(`{"status":"success","payload":{"_id":"e1","firstName":"Ada","lastName":"Lovelace","email":"ada@moness.com","role":"Allowed"}}`))
	}))

	emp, err := client.EmployeeByID(context.Background(), "tok123", "e1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", emp.FirstName)
	assert.Equal(t, auth.RoleAllowed, emp.Role)
}

func TestMissingCredentialShortCircuits(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	_, err := client.EmployeeAccessList(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.Equal(t, "401", ErrorCode(err))

	err = client.DeleteEmployee(context.Background(), "", "e1")
	assert.ErrorIs(t, err, ErrNoCredential)

	_, err = client.UserDetails(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoCredential)

	assert.Zero(t, calls, "no network call may be issued without a credential")
}

func TestEmployeeAccessListNestedExtraction(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employee/get-employees-access-list", r.URL.Path)
		w.Write([]byte(`{"status":"success","payload":{"employees":[
			{"_id":"e1","firstName":"Ada","lastName":"Lovelace","email":"ada@moness.com","role":"Manager"},
			{"_id":"e2","firstName":"Alan","lastName":"Turing","email":"alan@moness.com","role":"Pending"}
		]}}`))
	}))

	employees, err := client.EmployeeAccessList(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "e2", employees[1].ID)
	assert.Equal(t, auth.RolePending, employees[1].Role)
}

func TestBookingsByDateExtractsBookingsField(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/table/filter/by-date", r.URL.Path)
		w.Write([]byte(`{"status":"success","bookings":[
			{"_id":"b1","firstName":"Jane","lastName":"Doe","selectedDate":"2026-09-01","selectedTime":"1730"},
			{"_id":"b2","firstName":"Blocked","lastName":"Slot","selectedDate":"2026-09-01","selectedTime":"1900"}
		]}`))
	}))

	bookings, err := client.BookingsByDate(context.Background(), "2026-09-01T00:00:00.000Z")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.False(t, bookings[0].IsBlockedSlot())
	assert.True(t, bookings[1].IsBlockedSlot())
}

func TestPruneAllExtractsCounters(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/table/prune/prune-all", r.URL.Path)
		w.Write([]byte(`{"status":"success","deletedTableBookings":7,"deletedBlockedTables":2}`))
	}))

	res, err := client.PruneAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, res.DeletedBookings)
	assert.Equal(t, 2, res.DeletedBlockedSlots)
}

func TestMenuItemRoundTrip(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			assert.Equal(t, "/flemmyng/sides/m1", r.URL.Path)
			w.Write([]byte(`{"status":"success","payload":{"_id":"m1","name":"Fries","price":4.5,"options":["GF"],"allergens":["G"]}}`))
		case r.Method == http.MethodPost:
			assert.Equal(t, "/flemmyng/sides", r.URL.Path)
			w.Write([]byte(`{"status":"success"}`))
		}
	}))

	item, err := client.MenuItemByID(context.Background(), model.CategorySides, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Fries", item.Name)
	assert.Equal(t, 4.5, item.Price)

	err = client.CreateMenuItem(context.Background(), model.CategorySides, model.MenuItem{Name: "Slaw", Price: 3})
	assert.NoError(t, err)
}

func TestTransportErrorClassifiedGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client, err := New(Options{BaseURL: srv.URL})
	require.NoError(t, err)
	srv.Close() // connection refused from here on

	_, err = client.BookingByID(context.Background(), "b1")
	require.Error(t, err)
	assert.Equal(t, "500", ErrorCode(err))
}

func TestCodeForStatus(t *testing.T) {
	assert.Equal(t, "401", codeForStatus(401))
	assert.Equal(t, "404", codeForStatus(404))
	assert.Equal(t, "409", codeForStatus(409))
	assert.Equal(t, "501", codeForStatus(501))
	assert.Equal(t, "502", codeForStatus(502))
	assert.Equal(t, "500", codeForStatus(503))
	assert.Equal(t, "500", codeForStatus(200))
	assert.Equal(t, "500", codeForStatus(418))
}

package remote

// Package remote contains hand-written test doubles for the remote API
// client. These are lightweight and suitable for unit tests without
// codegen: every method delegates to an optional func field and falls
// back to a zero-value success.

import (
	"context"

	"github.com/moness/staff-portal/internal/api"
	"github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/ports"
	"github.com/moness/staff-portal/internal/service"
)

// Ensure compile-time conformance to the service-layer interfaces.
var (
	_ service.AuthAPI     = (*MockAPI)(nil)
	_ service.BookingAPI  = (*MockAPI)(nil)
	_ service.MenuAPI     = (*MockAPI)(nil)
	_ service.EmployeeAPI = (*MockAPI)(nil)
)

// MockAPI fakes the whole remote client surface.
type MockAPI struct {
	LogInFunc                       func(ctx context.Context, email, password string) (api.Credentials, error)
	SignUpFunc                      func(ctx context.Context, in api.SignUpInput) (api.Credentials, error)
	SendPasswordResetEmailFunc      func(ctx context.Context, email string) error
	ChangePasswordWithResetCodeFunc func(ctx context.Context, resetCode, password string) error

	BookingByIDFunc     func(ctx context.Context, id string) (model.Booking, error)
	CreateBookingFunc   func(ctx context.Context, b model.Booking) error
	UpdateBookingFunc   func(ctx context.Context, id string, b model.Booking) error
	DeleteBookingFunc   func(ctx context.Context, id string) error
	BookingsByDateFunc  func(ctx context.Context, isoDate string) ([]model.Booking, error)
	BookingsByNameFunc  func(ctx context.Context, firstName, lastName string) ([]model.Booking, error)
	BookingsByEmailFunc func(ctx context.Context, email string) ([]model.Booking, error)
	PruneAllFunc        func(ctx context.Context) (api.PruneResult, error)

	BlockedSlotByIDFunc   func(ctx context.Context, id string) (model.Booking, error)
	CreateBlockedSlotFunc func(ctx context.Context, isoDate, wireTime string) error
	UpdateBlockedSlotFunc func(ctx context.Context, id string, b model.Booking) error
	DeleteBlockedSlotFunc func(ctx context.Context, id string) error

	MenuItemsFunc      func(ctx context.Context, category model.MenuCategory) ([]model.MenuItem, error)
	MenuItemByIDFunc   func(ctx context.Context, category model.MenuCategory, id string) (model.MenuItem, error)
	CreateMenuItemFunc func(ctx context.Context, category model.MenuCategory, item model.MenuItem) error
	UpdateMenuItemFunc func(ctx context.Context, category model.MenuCategory, id string, item model.MenuItem) error
	DeleteMenuItemFunc func(ctx context.Context, category model.MenuCategory, id string) error

	EmployeeByIDFunc         func(ctx context.Context, token, id string) (model.Employee, error)
	EmployeeAccessListFunc   func(ctx context.Context, token string) ([]model.Employee, error)
	UpdateEmployeeAccessFunc func(ctx context.Context, token, id string, role auth.Role) error
	DeleteEmployeeFunc       func(ctx context.Context, token, id string) error
	UserDetailsFunc          func(ctx context.Context, token string) (model.Employee, error)
	UpdateUserFunc           func(ctx context.Context, token, id string, in api.UpdateUserInput) error
	UpdateUserPasswordFunc   func(ctx context.Context, token, id, currentPassword, newPassword string) error
}

func (m *MockAPI) LogIn(ctx context.Context, email, password string) (api.Credentials, error) {
	if m.LogInFunc != nil {
		return m.LogInFunc(ctx, email, password)
	}
	return api.Credentials{}, nil
}

func (m *MockAPI) SignUp(ctx context.Context, in api.SignUpInput) (api.Credentials, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, in)
	}
	return api.Credentials{}, nil
}

func (m *MockAPI) SendPasswordResetEmail(ctx context.Context, email string) error {
	if m.SendPasswordResetEmailFunc != nil {
		return m.SendPasswordResetEmailFunc(ctx, email)
	}
	return nil
}

func (m *MockAPI) ChangePasswordWithResetCode(ctx context.Context, resetCode, password string) error {
	if m.ChangePasswordWithResetCodeFunc != nil {
		return m.ChangePasswordWithResetCodeFunc(ctx, resetCode, password)
	}
	return nil
}

func (m *MockAPI) BookingByID(ctx context.Context, id string) (model.Booking, error) {
	if m.BookingByIDFunc != nil {
		return m.BookingByIDFunc(ctx, id)
	}
	return model.Booking{}, nil
}

func (m *MockAPI) CreateBooking(ctx context.Context, b model.Booking) error {
	if m.CreateBookingFunc != nil {
		return m.CreateBookingFunc(ctx, b)
	}
	return nil
}

func (m *MockAPI) UpdateBooking(ctx context.Context, id string, b model.Booking) error {
	if m.UpdateBookingFunc != nil {
		return m.UpdateBookingFunc(ctx, id, b)
	}
	return nil
}

func (m *MockAPI) DeleteBooking(ctx context.Context, id string) error {
	if m.DeleteBookingFunc != nil {
		return m.DeleteBookingFunc(ctx, id)
	}
	return nil
}

func (m *MockAPI) BookingsByDate(ctx context.Context, isoDate string) ([]model.Booking, error) {
	if m.BookingsByDateFunc != nil {
		return m.BookingsByDateFunc(ctx, isoDate)
	}
	return nil, nil
}

func (m *MockAPI) BookingsByName(ctx context.Context, firstName, lastName string) ([]model.Booking, error) {
	if m.BookingsByNameFunc != nil {
		return m.BookingsByNameFunc(ctx, firstName, lastName)
	}
	return nil, nil
}

func (m *MockAPI) BookingsByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	if m.BookingsByEmailFunc != nil {
		return m.BookingsByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockAPI) PruneAll(ctx context.Context) (api.PruneResult, error) {
	if m.PruneAllFunc != nil {
		return m.PruneAllFunc(ctx)
	}
	return api.PruneResult{}, nil
}

func (m *MockAPI) BlockedSlotByID(ctx context.Context, id string) (model.Booking, error) {
	if m.BlockedSlotByIDFunc != nil {
		return m.BlockedSlotByIDFunc(ctx, id)
	}
	return model.Booking{}, nil
}

func (m *MockAPI) CreateBlockedSlot(ctx context.Context, isoDate, wireTime string) error {
	if m.CreateBlockedSlotFunc != nil {
		return m.CreateBlockedSlotFunc(ctx, isoDate, wireTime)
	}
	return nil
}

func (m *MockAPI) UpdateBlockedSlot(ctx context.Context, id string, b model.Booking) error {
	if m.UpdateBlockedSlotFunc != nil {
		return m.UpdateBlockedSlotFunc(ctx, id, b)
	}
	return nil
}

func (m *MockAPI) DeleteBlockedSlot(ctx context.Context, id string) error {
	if m.DeleteBlockedSlotFunc != nil {
		return m.DeleteBlockedSlotFunc(ctx, id)
	}
	return nil
}

func (m *MockAPI) MenuItems(ctx context.Context, category model.MenuCategory) ([]model.MenuItem, error) {
	if m.MenuItemsFunc != nil {
		return m.MenuItemsFunc(ctx, category)
	}
	return nil, nil
}

func (m *MockAPI) MenuItemByID(ctx context.Context, category model.MenuCategory, id string) (model.MenuItem, error) {
	if m.MenuItemByIDFunc != nil {
		return m.MenuItemByIDFunc(ctx, category, id)
	}
	return model.MenuItem{}, nil
}

func (m *MockAPI) CreateMenuItem(ctx context.Context, category model.MenuCategory, item model.MenuItem) error {
	if m.CreateMenuItemFunc != nil {
		return m.CreateMenuItemFunc(ctx, category, item)
	}
	return nil
}

func (m *MockAPI) UpdateMenuItem(ctx context.Context, category model.MenuCategory, id string, item model.MenuItem) error {
	if m.UpdateMenuItemFunc != nil {
		return m.UpdateMenuItemFunc(ctx, category, id, item)
	}
	return nil
}

func (m *MockAPI) DeleteMenuItem(ctx context.Context, category model.MenuCategory, id string) error {
	if m.DeleteMenuItemFunc != nil {
		return m.DeleteMenuItemFunc(ctx, category, id)
	}
	return nil
}

func (m *MockAPI) EmployeeByID(ctx context.Context, token, id string) (model.Employee, error) {
	if m.EmployeeByIDFunc != nil {
		return m.EmployeeByIDFunc(ctx, token, id)
	}
	return model.Employee{}, nil
}

func (m *MockAPI) EmployeeAccessList(ctx context.Context, token string) ([]model.Employee, error) {
	if m.EmployeeAccessListFunc != nil {
		return m.EmployeeAccessListFunc(ctx, token)
	}
	return nil, nil
}

func (m *MockAPI) UpdateEmployeeAccess(ctx context.Context, token, id string, role auth.Role) error {
	if m.UpdateEmployeeAccessFunc != nil {
		return m.UpdateEmployeeAccessFunc(ctx, token, id, role)
	}
	return nil
}

func (m *MockAPI) DeleteEmployee(ctx context.Context, token, id string) error {
	if m.DeleteEmployeeFunc != nil {
		return m.DeleteEmployeeFunc(ctx, token, id)
	}
	return nil
}

func (m *MockAPI) UserDetails(ctx context.Context, token string) (model.Employee, error) {
	if m.UserDetailsFunc != nil {
		return m.UserDetailsFunc(ctx, token)
	}
	return model.Employee{}, nil
}

func (m *MockAPI) UpdateUser(ctx context.Context, token, id string, in api.UpdateUserInput) error {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, token, id, in)
	}
	return nil
}

func (m *MockAPI) UpdateUserPassword(ctx context.Context, token, id, currentPassword, newPassword string) error {
	if m.UpdateUserPasswordFunc != nil {
		return m.UpdateUserPasswordFunc(ctx, token, id, currentPassword, newPassword)
	}
	return nil
}

// RecordingAudit captures audit entries for assertions.
type RecordingAudit struct {
	Entries []ports.AuditEntry
}

var _ ports.AuditRecorder = (*RecordingAudit)(nil)

func (r *RecordingAudit) Record(_ context.Context, entry ports.AuditEntry) error {
	r.Entries = append(r.Entries, entry)
	return nil
}

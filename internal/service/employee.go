package service

import (
	"context"
	"log/slog"

	"github.com/moness/staff-portal/internal/api"
	"github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/ports"
)

// EmployeeAPI is the slice of the remote client the staff-management
// and profile flows need.
type EmployeeAPI interface {
	EmployeeByID(ctx context.Context, token, id string) (model.Employee, error)
	EmployeeAccessList(ctx context.Context, token string) ([]model.Employee, error)
	UpdateEmployeeAccess(ctx context.Context, token, id string, role auth.Role) error
	DeleteEmployee(ctx context.Context, token, id string) error
	UserDetails(ctx context.Context, token string) (model.Employee, error)
	UpdateUser(ctx context.Context, token, id string, in api.UpdateUserInput) error
	UpdateUserPassword(ctx context.Context, token, id, currentPassword, newPassword string) error
}

// EmployeeServiceOptions groups dependencies for EmployeeService.
type EmployeeServiceOptions struct {
	API    EmployeeAPI // Required: remote API client
	Audit  ports.AuditRecorder
	Logger *slog.Logger
}

// EmployeeService drives the manager's access screens and each
// employee's own profile pages. Every call carries the caller's bearer
// token; the remote API is the authorization boundary.
type EmployeeService struct {
	api    EmployeeAPI
	audit  ports.AuditRecorder
	logger *slog.Logger
}

// NewEmployeeService constructs a new EmployeeService.
func NewEmployeeService(opts EmployeeServiceOptions) *EmployeeService {
	return &EmployeeService{api: opts.API, audit: opts.Audit, logger: opts.Logger}
}

// AccessFilter selects which roles the access list shows. "All" keeps
// everything.
const AccessFilterAll = "All"

// AccessList fetches employees, optionally filtered to one role.
func (s *EmployeeService) AccessList(ctx context.Context, token, filter string) ([]model.Employee, error) {
	employees, err := s.api.EmployeeAccessList(ctx, token)
	if err != nil {
		return nil, err
	}
	if filter == "" || filter == AccessFilterAll {
		return employees, nil
	}
	filtered := employees[:0]
	for _, emp := range employees {
		if string(emp.Role) == filter {
			filtered = append(filtered, emp)
		}
	}
	return filtered, nil
}

// ByID fetches one employee record.
func (s *EmployeeService) ByID(ctx context.Context, token, id string) (model.Employee, error) {
	return s.api.EmployeeByID(ctx, token, id)
}

// UpdateAccess sets an employee's role. The new role takes effect the
// next time that employee logs in or fetches a protected page.
func (s *EmployeeService) UpdateAccess(ctx context.Context, actor, token, id string, role auth.Role) error {
	err := s.api.UpdateEmployeeAccess(ctx, token, id, role)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "update-access", EntityKind: "employee", EntityID: id,
		Outcome: outcomeOf(err), Detail: string(role),
	})
	return err
}

// Delete removes an employee account. Failures are reported as
// failures; the confirmation page must not claim success when the
// server refused.
func (s *EmployeeService) Delete(ctx context.Context, actor, token, id string) error {
	err := s.api.DeleteEmployee(ctx, token, id)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "delete", EntityKind: "employee", EntityID: id, Outcome: outcomeOf(err),
	})
	return err
}

// UserDetails fetches the caller's own record.
func (s *EmployeeService) UserDetails(ctx context.Context, token string) (model.Employee, error) {
	return s.api.UserDetails(ctx, token)
}

// UpdateUser updates the caller's own profile.
func (s *EmployeeService) UpdateUser(ctx context.Context, actor, token, id string, in api.UpdateUserInput) error {
	err := s.api.UpdateUser(ctx, token, id, in)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "update-profile", EntityKind: "employee", EntityID: id, Outcome: outcomeOf(err),
	})
	return err
}

// UpdateUserPassword changes the caller's own password.
func (s *EmployeeService) UpdateUserPassword(ctx context.Context, actor, token, id, currentPassword, newPassword string) error {
	err := s.api.UpdateUserPassword(ctx, token, id, currentPassword, newPassword)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "update-password", EntityKind: "employee", EntityID: id, Outcome: outcomeOf(err),
	})
	return err
}

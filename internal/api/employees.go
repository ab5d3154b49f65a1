package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
)

// Employee endpoints all require the bearer credential; each guard
// short-circuits before any network call when it is absent.

// EmployeeByID fetches a single employee record.
func (c *Client) EmployeeByID(ctx context.Context, token, id string) (model.Employee, error) {
	if token == "" {
		return model.Employee{}, ErrNoCredential
	}
	env, err := c.call(ctx, http.MethodGet, "/employee/get-employee-by-id/"+id, token, nil)
	if err != nil {
		return model.Employee{}, err
	}
	var emp model.Employee
	if err := env.extract("payload", &emp); err != nil {
		return model.Employee{}, fmt.Errorf("extract employee: %w", err)
	}
	return emp, nil
}

// EmployeeAccessList fetches every employee with their role, for the
// manager's access screen. The list nests under payload.employees.
func (c *Client) EmployeeAccessList(ctx context.Context, token string) ([]model.Employee, error) {
	if token == "" {
		return nil, ErrNoCredential
	}
	env, err := c.call(ctx, http.MethodGet, "/employee/get-employees-access-list", token, nil)
	if err != nil {
		return nil, err
	}
	var employees []model.Employee
	if err := env.extract("payload.employees", &employees); err != nil {
		return nil, fmt.Errorf("extract employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployeeAccess sets an employee's role.
func (c *Client) UpdateEmployeeAccess(ctx context.Context, token, id string, role auth.Role) error {
	if token == "" {
		return ErrNoCredential
	}
	_, err := c.call(ctx, http.MethodPatch, "/employee/update-employee-access", token, map[string]string{
		"id":   id,
		"role": string(role),
	})
	return err
}

// DeleteEmployee removes an employee account.
func (c *Client) DeleteEmployee(ctx context.Context, token, id string) error {
	if token == "" {
		return ErrNoCredential
	}
	_, err := c.call(ctx, http.MethodDelete, "/employee/delete-employee/"+id, token, nil)
	return err
}

// UserDetails fetches the record of the employee the token belongs to.
func (c *Client) UserDetails(ctx context.Context, token string) (model.Employee, error) {
	if token == "" {
		return model.Employee{}, ErrNoCredential
	}
	env, err := c.call(ctx, http.MethodGet, "/employee/get-user-details-by-id", token, nil)
	if err != nil {
		return model.Employee{}, err
	}
	var emp model.Employee
	if err := env.extract("payload", &emp); err != nil {
		return model.Employee{}, fmt.Errorf("extract user details: %w", err)
	}
	return emp, nil
}

// UpdateUserInput carries the editable profile fields.
type UpdateUserInput struct {
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
}

// UpdateUser updates an employee's own profile details.
func (c *Client) UpdateUser(ctx context.Context, token, id string, in UpdateUserInput) error {
	if token == "" {
		return ErrNoCredential
	}
	_, err := c.call(ctx, http.MethodPatch, "/employee/update-user/"+id, token, in)
	return err
}

// UpdateUserPassword changes an employee's own password.
func (c *Client) UpdateUserPassword(ctx context.Context, token, id, currentPassword, newPassword string) error {
	if token == "" {
		return ErrNoCredential
	}
	_, err := c.call(ctx, http.MethodPatch, "/employee/update-user-password/"+id, token, map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	})
	return err
}

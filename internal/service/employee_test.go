package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moness/staff-portal/internal/api"
	"github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/mocks/remote"
	"github.com/moness/staff-portal/internal/service"
)

func accessListMock(employees []model.Employee) *remote.MockAPI {
	return &remote.MockAPI{
		EmployeeAccessListFunc: func(context.Context, string) ([]model.Employee, error) {
			return employees, nil
		},
	}
}

func TestAccessListFiltersByRole(t *testing.T) {
	employees := []model.Employee{
		{ID: "1", FirstName: "Ada", Role: auth.RoleManager},
		{ID: "2", FirstName: "Grace", Role: auth.RolePending},
		{ID: "3", FirstName: "Edsger", Role: auth.RoleAllowed},
		{ID: "4", FirstName: "Alan", Role: auth.RolePending},
	}

	tests := []struct {
		name    string
		filter  string
		wantIDs []string
	}{
		{"all keyword", service.AccessFilterAll, []string{"1", "2", "3", "4"}},
		{"empty filter", "", []string{"1", "2", "3", "4"}},
		{"pending only", "Pending", []string{"2", "4"}},
		{"manager only", "Manager", []string{"1"}},
		{"no matches", "Banned", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := service.NewEmployeeService(service.EmployeeServiceOptions{API: accessListMock(employees)})
			got, err := svc.AccessList(context.Background(), "tok123", tc.filter)
			require.NoError(t, err)
			ids := make([]string, 0, len(got))
			for _, emp := range got {
				ids = append(ids, emp.ID)
			}
			if tc.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestUpdateAccessAuditsRoleChange(t *testing.T) {
	var gotToken, gotID string
	var gotRole auth.Role
	mock := &remote.MockAPI{
		UpdateEmployeeAccessFunc: func(_ context.Context, token, id string, role auth.Role) error {
			gotToken, gotID, gotRole = token, id, role
			return nil
		},
	}
	audit := &remote.RecordingAudit{}
	svc := service.NewEmployeeService(service.EmployeeServiceOptions{API: mock, Audit: audit})

	err := svc.UpdateAccess(context.Background(), "manager@moness.com", "tok123", "emp2", auth.RoleAllowed)
	require.NoError(t, err)
	assert.Equal(t, "tok123", gotToken)
	assert.Equal(t, "emp2", gotID)
	assert.Equal(t, auth.RoleAllowed, gotRole)

	require.Len(t, audit.Entries, 1)
	assert.Equal(t, "update-access", audit.Entries[0].Action)
	assert.Equal(t, "Allowed", audit.Entries[0].Detail)
}

func TestDeleteEmployeeReportsServerRefusal(t *testing.T) {
	mock := &remote.MockAPI{
		DeleteEmployeeFunc: func(context.Context, string, string) error {
			return &api.Error{Code: "502", Message: "delete failed"}
		},
	}
	audit := &remote.RecordingAudit{}
	svc := service.NewEmployeeService(service.EmployeeServiceOptions{API: mock, Audit: audit})

	err := svc.Delete(context.Background(), "manager@moness.com", "tok123", "emp2")
	require.Error(t, err)
	assert.Equal(t, "502", api.ErrorCode(err))

	require.Len(t, audit.Entries, 1)
	assert.Equal(t, "failure", audit.Entries[0].Outcome)
}

func TestUpdateUserPasswordPassesBothPasswords(t *testing.T) {
	var gotCurrent, gotNew string
	mock := &remote.MockAPI{
		UpdateUserPasswordFunc: func(_ context.Context, _, _, currentPassword, newPassword string) error {
			gotCurrent, gotNew = currentPassword, newPassword
			return nil
		},
	}
	svc := service.NewEmployeeService(service.EmployeeServiceOptions{API: mock, Audit: &remote.RecordingAudit{}})

	err := svc.UpdateUserPassword(context.Background(), "ada@moness.com", "tok123", "emp1", "old123", "new456")
	require.NoError(t, err)
	assert.Equal(t, "old123", gotCurrent)
	assert.Equal(t, "new456", gotNew)
}

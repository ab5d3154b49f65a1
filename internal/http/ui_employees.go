package httpx

import (
	"net/http"

	domainauth "github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/service"
)

// accessRoles is the fixed order of the role filter dropdown.
//
//nolint:gochecknoglobals // static read-only list for the filter UI
var accessRoles = []string{
	service.AccessFilterAll,
	string(domainauth.RolePending),
	string(domainauth.RoleAllowed),
	string(domainauth.RoleManager),
	string(domainauth.RoleBanned),
}

// ViewEmployeeAccessLevels lists every employee with an optional role
// filter from the query string.
func (h *UIHandlers) ViewEmployeeAccessLevels(w http.ResponseWriter, r *http.Request) {
	token := authToken(r)
	if token == "" {
		h.redirectUnauthorized(w, r)
		return
	}

	filter := r.URL.Query().Get("role")
	employees, err := h.Employees.AccessList(r.Context(), token, filter)
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Error Fetching Employees",
			Message:        errMessageOr(err, "Something went wrong while fetching employee data."),
			ButtonLabel:    "Back to Home",
			TargetLocation: "/",
			ErrorCode:      "500",
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "Employee Access Levels", CurrentPage: PageEmployeeAccess}).
		With("Employees", employees).
		With("Roles", accessRoles).
		With("Filter", filter).
		Build())
}

// EditEmployeeAccessForm loads one employee into the role form.
func (h *UIHandlers) EditEmployeeAccessForm(w http.ResponseWriter, r *http.Request) {
	token := authToken(r)
	if token == "" {
		h.redirectUnauthorized(w, r)
		return
	}

	emp, err := h.Employees.ByID(r.Context(), token, r.PathValue("id"))
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Error Fetching Employee",
			Message:        errMessageOr(err, "Something went wrong while fetching employee details."),
			ButtonLabel:    "Back to Dashboard",
			TargetLocation: "/logged-in",
			ErrorCode:      "500",
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "Edit Employee Access", CurrentPage: PageEditEmployeeAccess}).
		With("Employee", emp).
		With("Roles", accessRoles[1:]).
		Build())
}

// EditEmployeeAccessSubmit sets the employee's role and returns to the
// access list on success.
func (h *UIHandlers) EditEmployeeAccessSubmit(w http.ResponseWriter, r *http.Request) {
	token := authToken(r)
	if token == "" {
		h.redirectUnauthorized(w, r)
		return
	}

	id := r.PathValue("id")
	role := domainauth.Role(r.FormValue("role"))

	if err := h.Employees.UpdateAccess(r.Context(), actor(r), token, id, role); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Update Failed",
			Message:        errMessageOr(err, "Something went wrong updating employee access."),
			ButtonLabel:    "Back to Dashboard",
			TargetLocation: "/logged-in",
			ErrorCode:      "500",
		})
		return
	}
	http.Redirect(w, r, "/manager/employee-access-levels/view-employee-access-levels", http.StatusSeeOther)
}

// ConfirmDeleteEmployeeForm shows the employee about to be removed.
func (h *UIHandlers) ConfirmDeleteEmployeeForm(w http.ResponseWriter, r *http.Request) {
	token := authToken(r)
	if token == "" {
		h.redirectUnauthorized(w, r)
		return
	}

	emp, err := h.Employees.ByID(r.Context(), token, r.PathValue("id"))
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Error Fetching Employee",
			Message:        errMessageOr(err, "Something went wrong while loading employee details."),
			ButtonLabel:    "Back to Dashboard",
			TargetLocation: "/logged-in",
			ErrorCode:      "500",
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "Confirm Delete Employee", CurrentPage: PageConfirmDeleteEmployee}).
		With("Employee", emp).
		Build())
}

// ConfirmDeleteEmployeeSubmit removes the account. A refused delete is
// reported as a failure; the success alert only renders when the server
// actually deleted the record.
func (h *UIHandlers) ConfirmDeleteEmployeeSubmit(w http.ResponseWriter, r *http.Request) {
	token := authToken(r)
	if token == "" {
		h.redirectUnauthorized(w, r)
		return
	}

	if err := h.Employees.Delete(r.Context(), actor(r), token, r.PathValue("id")); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Delete Failed",
			Message:        errMessageOr(err, "The employee could not be deleted."),
			ButtonLabel:    "View Employee Access List",
			TargetLocation: "/manager/employee-access-levels/view-employee-access-levels",
			ErrorCode:      "500",
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Employee Deleted",
		Message:        "Employee has been successfully deleted",
		ButtonLabel:    "View Employee Access List",
		TargetLocation: "/manager/employee-access-levels/view-employee-access-levels",
	})
}

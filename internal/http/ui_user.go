package httpx

import (
	"net/http"

	"github.com/moness/staff-portal/internal/api"
	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/service"
)

// ViewUserDetails shows the signed-in employee's own record.
func (h *UIHandlers) ViewUserDetails(w http.ResponseWriter, r *http.Request) {
	token := authToken(r)
	if token == "" {
		h.redirectUnauthorized(w, r)
		return
	}

	emp, err := h.Employees.UserDetails(r.Context(), token)
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Error Fetching Details",
			Message:        fetchErrMessage(err),
			ButtonLabel:    "Back to Home",
			TargetLocation: "/",
			ErrorCode:      "500",
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "User Details", CurrentPage: PageUserDetails}).
		With("Employee", emp).
		Build())
}

// EditUserDetailsForm loads the employee's record into the edit form.
func (h *UIHandlers) EditUserDetailsForm(w http.ResponseWriter, r *http.Request) {
	token := authToken(r)
	if token == "" {
		h.redirectUnauthorized(w, r)
		return
	}

	emp, err := h.Employees.UserDetails(r.Context(), token)
	if err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Error Fetching Details",
			Message:        fetchErrMessage(err),
			ButtonLabel:    "Back to Dashboard",
			TargetLocation: "/logged-in",
			ErrorCode:      "500",
		})
		return
	}

	h.render(w, NewTemplateData(r, PageMeta{Title: "Edit User Details", CurrentPage: PageEditUserDetails}).
		With("Employee", emp).
		Build())
}

// EditUserDetailsSubmit updates the employee's own profile and returns
// to the hub on success.
func (h *UIHandlers) EditUserDetailsSubmit(w http.ResponseWriter, r *http.Request) {
	token := authToken(r)
	if token == "" {
		h.redirectUnauthorized(w, r)
		return
	}

	id := r.PathValue("id")
	in := api.UpdateUserInput{
		FirstName:  r.FormValue("firstName"),
		MiddleName: r.FormValue("middleName"),
		LastName:   r.FormValue("lastName"),
		Email:      r.FormValue("email"),
	}

	if err := h.Employees.UpdateUser(r.Context(), actor(r), token, id, in); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Update Failed",
			Message:        errMessageOr(err, "Something went wrong while updating your details."),
			ButtonLabel:    "Back to Dashboard",
			TargetLocation: "/logged-in",
			ErrorCode:      "500",
		})
		return
	}
	http.Redirect(w, r, "/logged-in", http.StatusSeeOther)
}

// EditUserPasswordForm renders the change-password form.
func (h *UIHandlers) EditUserPasswordForm(w http.ResponseWriter, r *http.Request) {
	if authToken(r) == "" {
		h.redirectUnauthorized(w, r)
		return
	}
	h.render(w, NewTemplateData(r, PageMeta{Title: "Edit Password", CurrentPage: PageEditUserPassword}).
		With("EmployeeID", r.PathValue("id")).
		Build())
}

// EditUserPasswordSubmit changes the employee's own password.
func (h *UIHandlers) EditUserPasswordSubmit(w http.ResponseWriter, r *http.Request) {
	token := authToken(r)
	if token == "" {
		h.redirectUnauthorized(w, r)
		return
	}

	id := r.PathValue("id")
	currentPassword := r.FormValue("currentPassword")
	newPassword := r.FormValue("newPassword")
	confirm := r.FormValue("confirmPassword")

	if errs := service.ValidateNewPassword(newPassword, confirm); errs.Any() {
		h.render(w, NewTemplateData(r, PageMeta{Title: "Edit Password", CurrentPage: PageEditUserPassword}).
			WithFieldErrors(errs).
			With("EmployeeID", id).
			Build())
		return
	}

	if err := h.Employees.UpdateUserPassword(r.Context(), actor(r), token, id, currentPassword, newPassword); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Password Update Failed",
			Message:        errMessageOr(err, "Something went wrong while updating your password."),
			ButtonLabel:    "Back to Dashboard",
			TargetLocation: "/logged-in",
			ErrorCode:      "500",
		})
		return
	}
	http.Redirect(w, r, "/logged-in", http.StatusSeeOther)
}

func fetchErrMessage(err error) string {
	return errMessageOr(err, "Something went wrong.")
}

func errMessageOr(err error, fallback string) string {
	if msg := api.ErrorMessage(err); msg != "" {
		return msg
	}
	return fallback
}

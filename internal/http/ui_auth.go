package httpx

import (
	"net/http"

	"github.com/moness/staff-portal/internal/api"
	domainauth "github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/domain/model"
	"github.com/moness/staff-portal/internal/service"
)

// duplicateEmailMessage is the literal the remote API returns when a
// sign-up email is already registered.
const duplicateEmailMessage = "A single email address can only be tied to one account"

// Home renders the landing page with Log In and Sign Up entry points.
func (h *UIHandlers) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Staff Portal", CurrentPage: PageHome}).Build())
}

// LogInForm renders the log-in form.
func (h *UIHandlers) LogInForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Log In", CurrentPage: PageLogIn}).Build())
}

// LogInSubmit validates the form locally, then authenticates against
// the remote API. Validation failures re-render inline and never reach
// the network.
func (h *UIHandlers) LogInSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	if errs := service.ValidateLogin(email, password); errs.Any() {
		h.render(w, NewTemplateData(r, PageMeta{Title: "Log In", CurrentPage: PageLogIn}).
			WithFieldErrors(errs).
			With("Email", email).
			Build())
		return
	}

	sess, err := h.Auth.LogIn(r.Context(), SessionFromContext(r.Context()), email, password)
	if err != nil {
		clearAuthCookie(w, r, "")
		message := api.ErrorMessage(err)
		if message == "" {
			message = "Invalid credentials. Please try again."
		}
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Login failed!",
			Message:        message,
			ButtonLabel:    "Go to Log In",
			TargetLocation: "/log-in",
			ErrorCode:      "401",
		})
		return
	}

	setAuthCookie(w, r, sess.Token, "")
	http.Redirect(w, r, "/logged-in", http.StatusSeeOther)
}

// SignUpForm renders the sign-up form.
func (h *UIHandlers) SignUpForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Sign Up", CurrentPage: PageSignUp}).Build())
}

// SignUpSubmit registers a new employee account. Duplicate emails get
// their own 409 alert; every other failure is the generic 500 alert.
func (h *UIHandlers) SignUpSubmit(w http.ResponseWriter, r *http.Request) {
	form := service.SignUpForm{
		FirstName:       r.FormValue("firstName"),
		LastName:        r.FormValue("lastName"),
		Email:           r.FormValue("email"),
		ConfirmEmail:    r.FormValue("confirmEmail"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
	}

	if errs := service.ValidateSignUp(form); errs.Any() {
		h.render(w, NewTemplateData(r, PageMeta{Title: "Sign Up", CurrentPage: PageSignUp}).
			WithFieldErrors(errs).
			With("Form", form).
			Build())
		return
	}

	sess, err := h.Auth.SignUp(r.Context(), SessionFromContext(r.Context()), api.SignUpInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		if api.ErrorMessage(err) == duplicateEmailMessage {
			h.redirectWithAlert(w, r, model.AlertPayload{
				Heading:        "Email already taken!",
				Message:        "An account has already been registered to this email address",
				ButtonLabel:    "Go to Sign Up",
				TargetLocation: "/sign-up",
				ErrorCode:      "409",
			})
			return
		}
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Something went wrong!",
			Message:        "There was an unexpected error. Please try again.",
			ButtonLabel:    "Go to Sign Up",
			TargetLocation: "/sign-up",
			ErrorCode:      "500",
		})
		return
	}

	setAuthCookie(w, r, sess.Token, "")
	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Sign up successful!",
		Message:        "Employee account created",
		ButtonLabel:    "Go to Main",
		TargetLocation: "/logged-in",
	})
}

// LoggedIn renders the role-branched hub: working links for Allowed and
// Manager, a waiting notice for Pending, a refusal for Banned.
func (h *UIHandlers) LoggedIn(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	h.render(w, NewTemplateData(r, PageMeta{Title: "Staff Portal", CurrentPage: PageLoggedIn}).
		With("IsPending", sess.Role == domainauth.RolePending).
		With("IsBanned", sess.Role == domainauth.RoleBanned).
		With("HasAccess", sess.Role.CanSeeNavigation()).
		Build())
}

// Unauthorized renders the access-denied page.
func (h *UIHandlers) Unauthorized(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Access Denied", CurrentPage: PageUnauthorized}).Build())
}

// LogOut drops the credential cookie, resets the session to anonymous,
// and returns the browser to the landing page.
func (h *UIHandlers) LogOut(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Auth.LogOut(r.Context(), SessionFromContext(r.Context())); err != nil {
		h.logger().Warn("logout session reset failed", "error", err)
	}
	clearAuthCookie(w, r, "")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ForgotPasswordEmailForm renders the reset-link request form.
func (h *UIHandlers) ForgotPasswordEmailForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Forgot Password", CurrentPage: PageForgotEmail}).Build())
}

// ForgotPasswordEmailSubmit asks the remote API to mail a reset link.
// Both outcomes render inline on the same page; this flow has no alert
// redirect.
func (h *UIHandlers) ForgotPasswordEmailSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	data := NewTemplateData(r, PageMeta{Title: "Forgot Password", CurrentPage: PageForgotEmail}).
		With("Email", email)

	if errs := service.ValidateEmail(email); errs.Any() {
		h.render(w, data.WithFieldErrors(errs).Build())
		return
	}

	if err := h.Auth.SendPasswordResetEmail(r.Context(), email); err != nil {
		message := api.ErrorMessage(err)
		if message == "" {
			message = "Failed to send reset link"
		}
		h.render(w, data.WithError(message).Build())
		return
	}
	h.render(w, data.With("Message", "Password reset link sent to your email.").Build())
}

// ForgotPasswordChangeForm renders the new-password form for a reset
// code from the emailed link.
func (h *UIHandlers) ForgotPasswordChangeForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, NewTemplateData(r, PageMeta{Title: "Change Password", CurrentPage: PageForgotChange}).
		With("ResetCode", r.PathValue("token")).
		Build())
}

// ForgotPasswordChangeSubmit completes the reset flow.
func (h *UIHandlers) ForgotPasswordChangeSubmit(w http.ResponseWriter, r *http.Request) {
	resetCode := r.PathValue("token")
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")

	if errs := service.ValidateNewPassword(password, confirm); errs.Any() {
		h.render(w, NewTemplateData(r, PageMeta{Title: "Change Password", CurrentPage: PageForgotChange}).
			WithFieldErrors(errs).
			With("ResetCode", resetCode).
			Build())
		return
	}

	if err := h.Auth.ChangePasswordWithResetCode(r.Context(), resetCode, password); err != nil {
		h.redirectWithAlert(w, r, model.AlertPayload{
			Heading:        "Something went wrong!",
			Message:        "There was an unexpected error. Please try again.",
			ButtonLabel:    "Go to Log In",
			TargetLocation: "/log-in",
			ErrorCode:      "500",
		})
		return
	}

	h.redirectWithAlert(w, r, model.AlertPayload{
		Heading:        "Password changed!",
		Message:        "You have successfully changed your password.",
		ButtonLabel:    "Go to Log In",
		TargetLocation: "/log-in",
	})
}

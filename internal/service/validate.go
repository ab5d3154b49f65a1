package service

import "strings"

// Field validation for the portal's forms. Rules follow the remote
// API's expectations: email must contain "@", passwords must be at
// least six characters, confirmations must match. A non-empty result
// means the form re-renders inline and no remote call is made.

const (
	msgMissingFields    = "Please fill out all fields"
	msgInvalidEmail     = "Please enter a valid email address"
	msgInvalidPassword  = "Password must be at least 6 characters long"
	msgEmailMismatch    = "Emails do not match"
	msgPasswordMismatch = "Passwords do not match"
)

// FieldErrors maps field names to inline messages.
type FieldErrors map[string]string

func (f FieldErrors) Any() bool { return len(f) > 0 }

// ValidateLogin checks the log-in form.
func ValidateLogin(email, password string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		errs["form"] = msgMissingFields
	}
	if !strings.Contains(email, "@") {
		errs["email"] = msgInvalidEmail
	}
	if len(password) < 6 {
		errs["password"] = msgInvalidPassword
	}
	return errs
}

// SignUpForm carries the raw sign-up fields, confirmations included.
type SignUpForm struct {
	FirstName       string
	LastName        string
	Email           string
	ConfirmEmail    string
	Password        string
	ConfirmPassword string
}

// ValidateSignUp checks the sign-up form.
func ValidateSignUp(f SignUpForm) FieldErrors {
	errs := FieldErrors{}
	for _, v := range []string{f.FirstName, f.LastName, f.Email, f.ConfirmEmail, f.Password, f.ConfirmPassword} {
		if strings.TrimSpace(v) == "" {
			errs["form"] = msgMissingFields
			break
		}
	}
	if f.Email != f.ConfirmEmail {
		errs["confirmEmail"] = msgEmailMismatch
	}
	if !strings.Contains(f.Email, "@") {
		errs["email"] = msgInvalidEmail
	}
	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = msgPasswordMismatch
	}
	if len(f.Password) < 6 {
		errs["password"] = msgInvalidPassword
	}
	return errs
}

// ValidateEmail checks a standalone email field (forgot-password form).
func ValidateEmail(email string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(email) == "" {
		errs["form"] = msgMissingFields
	}
	if !strings.Contains(email, "@") {
		errs["email"] = msgInvalidEmail
	}
	return errs
}

// ValidateNewPassword checks a new-password pair (reset and change
// flows).
func ValidateNewPassword(password, confirm string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(password) == "" || strings.TrimSpace(confirm) == "" {
		errs["form"] = msgMissingFields
	}
	if len(password) < 6 {
		errs["password"] = msgInvalidPassword
	}
	if password != confirm {
		errs["confirmPassword"] = msgPasswordMismatch
	}
	return errs
}

// ValidateRequired checks that every named field is present.
func ValidateRequired(fields map[string]string) FieldErrors {
	errs := FieldErrors{}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			errs[name] = "This field is required"
		}
	}
	return errs
}

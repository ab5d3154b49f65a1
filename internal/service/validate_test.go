package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moness/staff-portal/internal/service"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantKeys []string
	}{
		{"valid", "ada@moness.com", "secret1", nil},
		{"short password", "ada@moness.com", "abc", []string{"password"}},
		{"bad email", "ada.moness.com", "secret1", []string{"email"}},
		{"everything empty", "", "", []string{"form", "email", "password"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := service.ValidateLogin(tc.email, tc.password)
			assert.Equal(t, len(tc.wantKeys) > 0, errs.Any())
			for _, key := range tc.wantKeys {
				assert.Contains(t, errs, key)
			}
		})
	}
}

func TestValidateSignUp(t *testing.T) {
	valid := service.SignUpForm{
		FirstName: "Ada", LastName: "Lovelace",
		Email: "ada@moness.com", ConfirmEmail: "ada@moness.com",
		Password: "secret1", ConfirmPassword: "secret1",
	}
	assert.False(t, service.ValidateSignUp(valid).Any())

	mismatchedEmail := valid
	mismatchedEmail.ConfirmEmail = "other@moness.com"
	errs := service.ValidateSignUp(mismatchedEmail)
	assert.Equal(t, "Emails do not match", errs["confirmEmail"])

	mismatchedPassword := valid
	mismatchedPassword.ConfirmPassword = "secret2"
	errs = service.ValidateSignUp(mismatchedPassword)
	assert.Equal(t, "Passwords do not match", errs["confirmPassword"])

	short := valid
	short.Password = "abc"
	short.ConfirmPassword = "abc"
	errs = service.ValidateSignUp(short)
	assert.Equal(t, "Password must be at least 6 characters long", errs["password"])

	missing := valid
	missing.FirstName = " "
	errs = service.ValidateSignUp(missing)
	assert.Equal(t, "Please fill out all fields", errs["form"])
}

func TestValidateNewPassword(t *testing.T) {
	assert.False(t, service.ValidateNewPassword("secret1", "secret1").Any())

	errs := service.ValidateNewPassword("abc", "abc")
	assert.Contains(t, errs, "password")

	errs = service.ValidateNewPassword("secret1", "secret2")
	assert.Contains(t, errs, "confirmPassword")

	errs = service.ValidateNewPassword("", "")
	assert.Contains(t, errs, "form")
}

func TestValidateEmail(t *testing.T) {
	assert.False(t, service.ValidateEmail("ada@moness.com").Any())
	assert.Contains(t, service.ValidateEmail("ada.moness.com"), "email")
	assert.Contains(t, service.ValidateEmail("  "), "form")
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/moness/staff-portal/internal/domain/auth"
)

// Credentials is the result of a successful login or sign-up: the bearer
// token the server issued and the role it assigned.
type Credentials struct {
	Token string
	Role  auth.Role
}

// LogIn authenticates an employee. The token and role ride at the top
// level of the envelope, not under payload.
func (c *Client) LogIn(ctx context.Context, email, password string) (Credentials, error) {
	env, err := c.call(ctx, http.MethodPost, "/employee/log-in", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return Credentials{}, err
	}
	return credentialsFrom(env)
}

// SignUpInput carries the fields submitted on the sign-up form.
type SignUpInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// SignUp registers a new employee account. New accounts start Pending.
func (c *Client) SignUp(ctx context.Context, in SignUpInput) (Credentials, error) {
	env, err := c.call(ctx, http.MethodPost, "/employee/sign-up", "", in)
	if err != nil {
		return Credentials{}, err
	}
	return credentialsFrom(env)
}

func credentialsFrom(env envelope) (Credentials, error) {
	var creds struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	if err := env.extract("{token: token, role: role}", &creds); err != nil {
		return Credentials{}, fmt.Errorf("extract credentials: %w", err)
	}
	return Credentials{Token: creds.Token, Role: auth.Role(creds.Role)}, nil
}

// SendPasswordResetEmail asks the server to mail a reset link.
func (c *Client) SendPasswordResetEmail(ctx context.Context, email string) error {
	_, err := c.call(ctx, http.MethodPost, "/employee/forgot-password/send-email", "", map[string]string{
		"email": email,
	})
	return err
}

// ChangePasswordWithResetCode completes the forgot-password flow using
// the reset code from the emailed link.
func (c *Client) ChangePasswordWithResetCode(ctx context.Context, resetCode, password string) error {
	_, err := c.call(ctx, http.MethodPost, "/employee/forgot-password/change-password", "", map[string]string{
		"resetCode": resetCode,
		"password":  password,
	})
	return err
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moness/staff-portal/internal/api"
	domainauth "github.com/moness/staff-portal/internal/domain/auth"
	"github.com/moness/staff-portal/internal/ports"
)

// DefaultSessionTTL matches the lifetime of the remote API's bearer
// credential.
const DefaultSessionTTL = 7 * 24 * time.Hour

// AuthAPI is the slice of the remote client the auth flows need.
type AuthAPI interface {
	LogIn(ctx context.Context, email, password string) (api.Credentials, error)
	SignUp(ctx context.Context, in api.SignUpInput) (api.Credentials, error)
	SendPasswordResetEmail(ctx context.Context, email string) error
	ChangePasswordWithResetCode(ctx context.Context, resetCode, password string) error
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	API        AuthAPI            // Required: remote API client
	Sessions   ports.SessionStore // Required: session persistence
	Audit      ports.AuditRecorder
	Logger     *slog.Logger
	SessionTTL time.Duration // Optional: defaults to DefaultSessionTTL
}

// AuthService runs the login, sign-up, logout, and password-reset flows
// and owns the session-settings mutations they imply. Only these flows
// change ShowNavigation and Role.
type AuthService struct {
	api      AuthAPI
	sessions ports.SessionStore
	audit    ports.AuditRecorder
	logger   *slog.Logger
	ttl      time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{
		api:      opts.API,
		sessions: opts.Sessions,
		audit:    opts.Audit,
		logger:   opts.Logger,
		ttl:      ttl,
	}
}

// LogIn authenticates against the remote API and, on success, turns the
// anonymous browser session into a logged-in one.
func (s *AuthService) LogIn(ctx context.Context, sess domainauth.Session, email, password string) (domainauth.Session, error) {
	creds, err := s.api.LogIn(ctx, email, password)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: email, Action: "log-in", EntityKind: "session", Outcome: outcomeOf(err),
	})
	if err != nil {
		return sess, err
	}

	sess.Token = creds.Token
	sess.Role = creds.Role
	sess.Email = email
	sess.ShowNavigation = true
	sess.ExpiresAt = time.Now().Add(s.ttl)

	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return sess, fmt.Errorf("save session: %w", saveErr)
	}
	return sess, nil
}

// SignUp registers a new account. The server issues a token right away,
// but the account starts Pending until a manager approves it.
func (s *AuthService) SignUp(ctx context.Context, sess domainauth.Session, in api.SignUpInput) (domainauth.Session, error) {
	creds, err := s.api.SignUp(ctx, in)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: in.Email, Action: "sign-up", EntityKind: "employee", Outcome: outcomeOf(err),
	})
	if err != nil {
		return sess, err
	}

	sess.Token = creds.Token
	sess.Role = creds.Role
	sess.FirstName = in.FirstName
	sess.LastName = in.LastName
	sess.Email = in.Email
	sess.ShowNavigation = true
	sess.ExpiresAt = time.Now().Add(s.ttl)

	if saveErr := s.sessions.Save(ctx, sess); saveErr != nil {
		return sess, fmt.Errorf("save session: %w", saveErr)
	}
	return sess, nil
}

// LogOut drops the credential and resets the session to its anonymous
// shape: navigation hidden, role back to Pending.
func (s *AuthService) LogOut(ctx context.Context, sess domainauth.Session) (domainauth.Session, error) {
	actor := sess.Email

	sess.Token = ""
	sess.Role = domainauth.RolePending
	sess.FirstName = ""
	sess.LastName = ""
	sess.Email = ""
	sess.EmployeeID = ""
	sess.ShowNavigation = false
	sess.ExpiresAt = time.Now().Add(s.ttl)

	if err := s.sessions.Save(ctx, sess); err != nil {
		return sess, fmt.Errorf("save session: %w", err)
	}
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: actor, Action: "log-out", EntityKind: "session", Outcome: outcomeSuccess,
	})
	return sess, nil
}

// SendPasswordResetEmail asks the remote API to mail a reset link.
func (s *AuthService) SendPasswordResetEmail(ctx context.Context, email string) error {
	err := s.api.SendPasswordResetEmail(ctx, email)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Actor: email, Action: "password-reset-email", EntityKind: "employee", Outcome: outcomeOf(err),
	})
	return err
}

// ChangePasswordWithResetCode completes the forgot-password flow.
func (s *AuthService) ChangePasswordWithResetCode(ctx context.Context, resetCode, password string) error {
	err := s.api.ChangePasswordWithResetCode(ctx, resetCode, password)
	recordAudit(ctx, s.audit, s.logger, ports.AuditEntry{
		Action: "password-reset", EntityKind: "employee", Outcome: outcomeOf(err),
	})
	return err
}

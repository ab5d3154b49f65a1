package auth

// Package auth contains domain-level types for staff authentication and
// portal sessions. It is pure and free of framework/adapter concerns.

import "time"

// Role is the permission tier the remote API assigns to an employee.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RolePending Role = "Pending"
	RoleAllowed Role = "Allowed"
	RoleManager Role = "Manager"
	RoleBanned  Role = "Banned"
)

// CanSeeNavigation reports whether the role is one that may be shown the
// portal navigation chrome. This is a display hint only; the remote API
// enforces authorization on every call.
func (r Role) CanSeeNavigation() bool {
	return r == RoleManager || r == RoleAllowed
}

// Session is the server-side record we persist for a browser session.
// ID is an opaque session identifier (random UUID). Token is the bearer
// credential issued by the remote API on login; empty when logged out.
type Session struct {
	ID             string    `json:"id"`
	Token          string    `json:"token"`
	EmployeeID     string    `json:"employee_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	ShowNavigation bool      `json:"show_navigation"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// IsLoggedIn returns true if the session carries a bearer credential.
func (s Session) IsLoggedIn() bool { return s.Token != "" }

// ChromeVisible reports whether the navigation chrome renders for this
// session: the flow must have asked for it and the role must permit it.
func (s Session) ChromeVisible() bool {
	return s.ShowNavigation && s.Role.CanSeeNavigation()
}

package model

import (
	"strings"

	"github.com/moness/staff-portal/internal/domain/auth"
)

// Employee is the portal's view of a staff record owned by the remote
// API. Some endpoints return the identifier as "_id", others as "id";
// both are kept so either shape decodes.
type Employee struct {
	ID         string    `json:"_id,omitempty"`
	AltID      string    `json:"id,omitempty"`
	FirstName  string    `json:"firstName"`
	MiddleName string    `json:"middleName,omitempty"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Role       auth.Role `json:"role"`
}

// Identifier returns whichever identifier field the server populated.
func (e Employee) Identifier() string {
	if e.ID != "" {
		return e.ID
	}
	return e.AltID
}

// FullName joins the name parts, skipping an absent middle name.
func (e Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

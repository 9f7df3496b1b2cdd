package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleHR    Role = "HR"
	RoleEA    Role = "EA"
	RoleOwner Role = "OWNER"
)

// Roles lists all valid roles in a stable order.
func Roles() []Role {
	return []Role{RoleAdmin, RoleHR, RoleEA, RoleOwner}
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleEA, RoleOwner:
		return true
	}
	return false
}

// Identity represents the authenticated principal returned by an IdP.
// Adapters map provider-specific claims into this shape. Credential is
// the opaque proof (e.g. a raw ID token) forwarded verbatim to the
// backend login action.
type Identity struct {
	UserID     string
	FirstName  string
	LastName   string
	Email      string
	Groups     []string
	Credential string
	ExpiresAt  time.Time
}

// UserSnapshot is the cached view of a user returned by the backend at
// login. It is immutable once stored; validation replaces it wholesale.
type UserSnapshot struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// HasPermission reports whether the snapshot carries p.
func (u UserSnapshot) HasPermission(p Permission) bool {
	for _, have := range u.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// HasAnyPermission reports whether the snapshot carries at least one of perms.
func (u UserSnapshot) HasAnyPermission(perms ...Permission) bool {
	for _, p := range perms {
		if u.HasPermission(p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the snapshot carries every one of perms.
func (u UserSnapshot) HasAllPermissions(perms ...Permission) bool {
	for _, p := range perms {
		if !u.HasPermission(p) {
			return false
		}
	}
	return true
}

// HasAnyRole reports whether the snapshot's role is one of roles.
func (u UserSnapshot) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// Session is the record we persist for an authenticated user: the opaque
// backend token plus the user snapshot and an absolute expiry.
// ID is an opaque session identifier (e.g. a UUID).
type Session struct {
	ID        string       `json:"id"`
	Token     string       `json:"token"`
	User      UserSnapshot `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

package domain

import (
	"strings"
	"time"
)

// Role is the closed set of privilege levels a user can hold.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// ParseRole normalises a raw role string into a Role, reporting whether it
// belongs to the closed enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleAdmin:
		return RoleAdmin, true
	case RoleSuperAdmin:
		return RoleSuperAdmin, true
	}
	return "", false
}

// IsAdmin reports whether the role carries admin privileges. True for both
// admin and super_admin, mirroring the "contains admin" check the privilege
// rules are written against.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// IsSuperAdmin reports whether the role is exactly super_admin.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// User models an account in the system. AccessToken is the rotating opaque
// access-key marking the current login epoch: it is empty until first
// login/signup and rotates on every effective role toggle, invalidating all
// previously issued sessions and bearer tokens for the user.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	AccessToken  string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is the user view safe to return to clients.
type PublicProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Public returns the client-facing view of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

package ports

import (
	"context"

	"github.com/mockleague/league-api/internal/core/domain"
)

// SignupInput carries the data needed to register an account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned on successful signup or login. AccessToken and Role
// are handed to the session manager to establish the cookie session; Token
// is the signed bearer token returned to the client.
type AuthResult struct {
	User        domain.PublicProfile
	Token       string
	AccessToken string
	Role        domain.Role
}

// ToggleRoleInput carries a role-toggle request. ActorRole is the role of
// the authenticated caller taken from its verified token claims.
type ToggleRoleInput struct {
	ActorRole domain.Role
	Email     string
	Role      string
}

// ToggleRoleResult reports the outcome of a role toggle. Changed is false
// when the target already held the requested role, in which case no
// access-key rotation took place.
type ToggleRoleResult struct {
	Changed bool
	User    domain.PublicProfile
}

// AuthService defines the authentication and role-policy use cases.
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
	ToggleRole(ctx context.Context, in ToggleRoleInput) (*ToggleRoleResult, error)
}

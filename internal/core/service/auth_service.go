package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mockleague/league-api/internal/core/domain"
	"github.com/mockleague/league-api/internal/core/ports"
)

// AuthService implements signup, login and the role-toggle policy engine.
type AuthService struct {
	users  ports.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
	log    zerolog.Logger
}

// NewAuthService wires the auth use cases.
func NewAuthService(users ports.UserRepository, hasher *PasswordHasher, tokens *TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, log: log}
}

// normalizeEmail applies the canonical email form used everywhere: trimmed
// and lowercased.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new account with the default customer role, mints its
// first access-key and issues a bearer token bound to it.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*ports.AuthResult, error) {
	email := normalizeEmail(in.Email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("signup: lookup email: %w", err)
	}

	hash, err := s.hasher.Hash(strings.TrimSpace(in.Password))
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		AccessToken:  uuid.NewString(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created.Public(), created.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("signup: issue token: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")

	return &ports.AuthResult{
		User:        created.Public(),
		Token:       token,
		AccessToken: created.AccessToken,
		Role:        created.Role,
	}, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both surface as ErrInvalidCredentials so callers cannot
// enumerate accounts. A user with no access-key yet (first login) gets one
// minted and persisted.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: lookup email: %w", err)
	}

	if !s.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	if user.AccessToken == "" {
		user.AccessToken = uuid.NewString()
		if err := s.users.SetAccessToken(ctx, user.ID, user.AccessToken); err != nil {
			return nil, fmt.Errorf("login: set access token: %w", err)
		}
	}

	token, err := s.tokens.Issue(user.Public(), user.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.AuthResult{
		User:        user.Public(),
		Token:       token,
		AccessToken: user.AccessToken,
		Role:        user.Role,
	}, nil
}

// ToggleRole applies the role state machine to the target user. Rules are
// evaluated in order, first match wins:
//
//  1. target must exist
//  2. requested role must be in the closed enumeration
//  3. a super_admin's role can never be toggled by anyone
//  4. only a super_admin may modify an admin account
//  5. only a super_admin may promote to super_admin
//  6. requesting the current role is a no-op (no access-key rotation)
//  7. otherwise set the role and rotate the access-key, revoking every
//     outstanding session and token for the target
//
// Existence and shape checks precede privilege checks so privilege errors
// are never leaked for nonexistent or invalid inputs.
func (s *AuthService) ToggleRole(ctx context.Context, in ports.ToggleRoleInput) (*ports.ToggleRoleResult, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		return nil, err
	}

	requested, ok := domain.ParseRole(in.Role)
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	if user.Role.IsSuperAdmin() {
		return nil, domain.ErrProtectedAccount
	}

	if user.Role.IsAdmin() && !in.ActorRole.IsSuperAdmin() {
		return nil, domain.ErrInsufficientPrivilege
	}

	if requested.IsSuperAdmin() && !in.ActorRole.IsSuperAdmin() {
		return nil, domain.ErrInsufficientPrivilege
	}

	if user.Role == requested {
		return &ports.ToggleRoleResult{Changed: false, User: user.Public()}, nil
	}

	// Rotating the access-key here is what revokes the target's existing
	// sessions and bearer tokens. The repository applies the change as a
	// compare-and-swap on the previous role and key.
	updated, err := s.users.UpdateRole(ctx, user.Email, user.Role, user.AccessToken, requested, uuid.NewString())
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", updated.ID).
		Str("from", string(user.Role)).
		Str("to", string(updated.Role)).
		Msg("user role toggled")

	return &ports.ToggleRoleResult{Changed: true, User: updated.Public()}, nil
}

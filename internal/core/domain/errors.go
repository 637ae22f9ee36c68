package domain

import "errors"

// Authentication and session errors.
var (
	ErrInvalidCredentials = errors.New("email or password incorrect")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoSession          = errors.New("session expired or missing")
	ErrSessionDestroy     = errors.New("failed to destroy session")
	ErrMissingToken       = errors.New("missing auth token")
	ErrInvalidToken       = errors.New("invalid auth token")
	ErrMalformedToken     = errors.New("token has no id")
	ErrStaleCredential    = errors.New("invalid or expired session and token")
)

// Role-toggle policy errors.
var (
	ErrInvalidRole           = errors.New("role is not permitted")
	ErrProtectedAccount      = errors.New("this account role cannot be toggled")
	ErrInsufficientPrivilege = errors.New("insufficient privilege for this operation")
	ErrConcurrentUpdate      = errors.New("user was modified concurrently, retry")
)

// Team and fixture errors.
var (
	ErrTeamExists      = errors.New("team with this acronym already exists")
	ErrTeamNotFound    = errors.New("team not found")
	ErrTeamHasFixtures = errors.New("team has fixtures and cannot be deleted")
	ErrFixtureExists   = errors.New("fixture for these teams already exists")
	ErrFixtureNotFound = errors.New("fixture not found")
	ErrFixturePassed   = errors.New("fixture has passed and cannot be deleted")
	ErrInvalidStatus   = errors.New("status is not permitted")
)

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mockleague/league-api/internal/core/domain"
)

const defaultTokenLifespan = 72 * time.Hour

// Claims is the payload carried by a bearer token. AuthKey is a copy of the
// user's access-key at issuance time; the token guard later requires it to
// still match both the live session and the stored user.
type Claims struct {
	UserID    string      `json:"user_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	AuthKey   string      `json:"auth_key"`
	IssuedEnv string      `json:"issued_env"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-bounded bearer tokens.
// Verification is stateless: it checks only signature and expiry. Access-key
// equality against live session and store state is the guard's concern.
type TokenService struct {
	secret   []byte
	lifespan time.Duration
	env      string
	now      func() time.Time
}

// NewTokenService builds a TokenService. A non-positive lifespan falls back
// to 72 hours.
func NewTokenService(secret string, lifespan time.Duration, env string) *TokenService {
	if lifespan <= 0 {
		lifespan = defaultTokenLifespan
	}
	return &TokenService{
		secret:   []byte(secret),
		lifespan: lifespan,
		env:      env,
		now:      time.Now,
	}
}

// Issue signs a token for the user embedding the given access-key. The token
// expires lifespan after issuance.
func (s *TokenService) Issue(user domain.PublicProfile, authKey string) (string, error) {
	now := s.now().UTC()
	claims := Claims{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		AuthKey:   authKey,
		IssuedEnv: s.env,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifespan)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates the token. Every failure mode, from a bad
// signature to an expired claim, surfaces as domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Decode is a best-effort decode: empty input yields empty claims without
// error, anything else takes the Verify path.
func (s *TokenService) Decode(token string) (*Claims, error) {
	if token == "" {
		return &Claims{}, nil
	}
	return s.Verify(token)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mockleague/league-api/internal/core/domain"
	"github.com/mockleague/league-api/internal/core/ports"
)

// stubUserRepo is an in-memory ports.UserRepository honouring the same
// compare-and-swap contract as the Mongo implementation.
type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int

	// afterFind runs once after the next FindByEmail, letting tests mutate
	// state between the service's read and its compare-and-swap.
	afterFind func()
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := *user
	created.ID = fmt.Sprintf("user-%d", r.nextID)
	r.byEmail[created.Email] = &created
	out := created
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *user
	if r.afterFind != nil {
		hook := r.afterFind
		r.afterFind = nil
		hook()
	}
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			out := *user
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) SetAccessToken(_ context.Context, id, accessToken string) error {
	for _, user := range r.byEmail {
		if user.ID == id {
			user.AccessToken = accessToken
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateRole(_ context.Context, email string, fromRole domain.Role, fromAccessToken string, toRole domain.Role, newAccessToken string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok || user.Role != fromRole || user.AccessToken != fromAccessToken {
		return nil, domain.ErrConcurrentUpdate
	}
	user.Role = toRole
	user.AccessToken = newAccessToken
	out := *user
	return &out, nil
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := NewTokenService("test-secret", time.Hour, "test")
	return NewAuthService(repo, hasher, tokens, zerolog.Nop())
}

func seedUser(t *testing.T, repo *stubUserRepo, email string, role domain.Role, accessToken string) *domain.User {
	t.Helper()
	hash, err := NewPasswordHasher(bcrypt.MinCost).Hash("password1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Name:         "Seeded",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		AccessToken:  accessToken,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_SignupLogin_RoundTrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	ctx := context.Background()

	signedUp, err := svc.Signup(ctx, ports.SignupInput{
		Name:     "Alice",
		Email:    "  Alice@Example.com ",
		Password: "password1",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if signedUp.Role != domain.RoleCustomer {
		t.Fatalf("expected default customer role, got %q", signedUp.Role)
	}
	if signedUp.AccessToken == "" {
		t.Fatalf("expected an access key minted at signup")
	}
	if signedUp.User.Email != "alice@example.com" {
		t.Fatalf("expected normalised email, got %q", signedUp.User.Email)
	}

	// The embedded auth key must equal the stored access key.
	claims, err := svc.tokens.Verify(signedUp.Token)
	if err != nil {
		t.Fatalf("verify signup token: %v", err)
	}
	stored, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("find stored user: %v", err)
	}
	if claims.AuthKey != stored.AccessToken {
		t.Fatalf("token auth key %q != stored access key %q", claims.AuthKey, stored.AccessToken)
	}

	loggedIn, err := svc.Login(ctx, ports.LoginInput{Email: "alice@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loggedIn.AccessToken != stored.AccessToken {
		t.Fatalf("login must reuse the existing access key")
	}
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	seedUser(t, repo, "taken@example.com", domain.RoleCustomer, "key")

	_, err := svc.Signup(context.Background(), ports.SignupInput{
		Name:     "Clone",
		Email:    "taken@example.com",
		Password: "password1",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	seedUser(t, repo, "known@example.com", domain.RoleCustomer, "key")
	ctx := context.Background()

	_, unknownErr := svc.Login(ctx, ports.LoginInput{Email: "nobody@example.com", Password: "password1"})
	_, wrongErr := svc.Login(ctx, ports.LoginInput{Email: "known@example.com", Password: "bad-password"})

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure messages must not reveal which part was wrong")
	}
}

func TestAuthService_Login_FirstLoginMintsAccessKey(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	seeded := seedUser(t, repo, "fresh@example.com", domain.RoleCustomer, "")
	ctx := context.Background()

	res, err := svc.Login(ctx, ports.LoginInput{Email: "fresh@example.com", Password: "password1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.AccessToken == "" {
		t.Fatalf("expected an access key minted on first login")
	}

	stored, err := repo.FindByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("find stored user: %v", err)
	}
	if stored.AccessToken != res.AccessToken {
		t.Fatalf("minted key must be persisted")
	}
}

func TestAuthService_ToggleRole_TargetNotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.ToggleRole(context.Background(), ports.ToggleRoleInput{
		ActorRole: domain.RoleSuperAdmin,
		Email:     "ghost@example.com",
		Role:      "admin",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ToggleRole_NotFoundPrecedesInvalidRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	// Both checks would fail here; existence must win.
	_, err := svc.ToggleRole(context.Background(), ports.ToggleRoleInput{
		ActorRole: domain.RoleSuperAdmin,
		Email:     "ghost@example.com",
		Role:      "emperor",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ToggleRole_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	seedUser(t, repo, "bob@example.com", domain.RoleCustomer, "key")

	_, err := svc.ToggleRole(context.Background(), ports.ToggleRoleInput{
		ActorRole: domain.RoleSuperAdmin,
		Email:     "bob@example.com",
		Role:      "emperor",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_ToggleRole_SuperAdminAlwaysProtected(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	seedUser(t, repo, "root@example.com", domain.RoleSuperAdmin, "key")

	for _, actor := range []domain.Role{domain.RoleAdmin, domain.RoleSuperAdmin} {
		_, err := svc.ToggleRole(context.Background(), ports.ToggleRoleInput{
			ActorRole: actor,
			Email:     "root@example.com",
			Role:      "customer",
		})
		if !errors.Is(err, domain.ErrProtectedAccount) {
			t.Fatalf("actor %s: expected ErrProtectedAccount, got %v", actor, err)
		}
	}
}

func TestAuthService_ToggleRole_AdminTargetNeedsSuperActor(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	seedUser(t, repo, "mod@example.com", domain.RoleAdmin, "key")
	ctx := context.Background()

	_, err := svc.ToggleRole(ctx, ports.ToggleRoleInput{
		ActorRole: domain.RoleAdmin,
		Email:     "mod@example.com",
		Role:      "customer",
	})
	if !errors.Is(err, domain.ErrInsufficientPrivilege) {
		t.Fatalf("admin actor on admin target: expected ErrInsufficientPrivilege, got %v", err)
	}

	res, err := svc.ToggleRole(ctx, ports.ToggleRoleInput{
		ActorRole: domain.RoleSuperAdmin,
		Email:     "mod@example.com",
		Role:      "customer",
	})
	if err != nil {
		t.Fatalf("super_admin actor on admin target: %v", err)
	}
	if !res.Changed || res.User.Role != domain.RoleCustomer {
		t.Fatalf("expected admin demoted to customer, got %+v", res)
	}
}

func TestAuthService_ToggleRole_PromoteToSuperNeedsSuperActor(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	seedUser(t, repo, "bob@example.com", domain.RoleCustomer, "key")

	_, err := svc.ToggleRole(context.Background(), ports.ToggleRoleInput{
		ActorRole: domain.RoleAdmin,
		Email:     "bob@example.com",
		Role:      "super_admin",
	})
	if !errors.Is(err, domain.ErrInsufficientPrivilege) {
		t.Fatalf("expected ErrInsufficientPrivilege, got %v", err)
	}
}

func TestAuthService_ToggleRole_NoopKeepsAccessKey(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	seedUser(t, repo, "bob@example.com", domain.RoleCustomer, "key-original")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := svc.ToggleRole(ctx, ports.ToggleRoleInput{
			ActorRole: domain.RoleAdmin,
			Email:     "bob@example.com",
			Role:      "Customer",
		})
		if err != nil {
			t.Fatalf("noop toggle %d: %v", i, err)
		}
		if res.Changed {
			t.Fatalf("noop toggle %d: expected Changed=false", i)
		}
	}

	stored, err := repo.FindByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("find stored user: %v", err)
	}
	if stored.AccessToken != "key-original" {
		t.Fatalf("noop must not rotate the access key, got %q", stored.AccessToken)
	}
}

func TestAuthService_ToggleRole_ChangeRotatesAccessKey(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	seedUser(t, repo, "bob@example.com", domain.RoleCustomer, "key-original")
	ctx := context.Background()

	res, err := svc.ToggleRole(ctx, ports.ToggleRoleInput{
		ActorRole: domain.RoleAdmin,
		Email:     "bob@example.com",
		Role:      "admin",
	})
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !res.Changed || res.User.Role != domain.RoleAdmin {
		t.Fatalf("expected promotion to admin, got %+v", res)
	}

	stored, err := repo.FindByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("find stored user: %v", err)
	}
	if stored.AccessToken == "key-original" || stored.AccessToken == "" {
		t.Fatalf("expected a rotated access key, got %q", stored.AccessToken)
	}
}

func TestAuthService_ToggleRole_ConcurrentUpdateSurfaces(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)
	seedUser(t, repo, "bob@example.com", domain.RoleCustomer, "key-original")
	ctx := context.Background()

	// Simulate a toggle that wins the race after this one reads the user.
	repo.afterFind = func() {
		repo.byEmail["bob@example.com"].AccessToken = "key-raced"
	}

	_, err := svc.ToggleRole(ctx, ports.ToggleRoleInput{
		ActorRole: domain.RoleAdmin,
		Email:     "bob@example.com",
		Role:      "admin",
	})
	if !errors.Is(err, domain.ErrConcurrentUpdate) {
		t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
	}
}

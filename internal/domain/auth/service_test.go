package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/pkg/jwt"
	"github.com/ayuu-te/studio-look/internal/store"
)

func newService(t *testing.T) (*Service, *MemoryDenylist, *jwt.Service) {
	t.Helper()
	jwtService := jwt.NewService("secret", time.Hour)
	denylist := NewMemoryDenylist()
	svc := NewService(NewUserRepository(store.New()), jwtService, denylist)
	svc.hashCost = bcrypt.MinCost
	return svc, denylist, jwtService
}

func signup(t *testing.T, svc *Service, email string, role models.Role) *AuthResponse {
	t.Helper()
	res, err := svc.Signup(context.Background(), &SignupRequest{Email: email, Password: "password123", Name: "Jane Client", Role: string(role)})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	return res
}

func TestSignupValidationOrder(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  SignupRequest
		want error
	}{
		{"missing name", SignupRequest{Email: "a@example.com", Password: "password123", Role: "client"}, ErrMissingFields},
		{"missing role", SignupRequest{Email: "a@example.com", Password: "password123", Name: "A"}, ErrMissingFields},
		{"bad role before bad email", SignupRequest{Email: "nope", Password: "password123", Name: "A", Role: "admin"}, ErrInvalidRole},
		{"bad email", SignupRequest{Email: "nope", Password: "password123", Name: "A", Role: "client"}, ErrInvalidEmail},
		{"short password", SignupRequest{Email: "a@example.com", Password: "short", Name: "A", Role: "client"}, ErrWeakPassword},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Signup(ctx, &tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSignupNormalizesEmailAndRejectsDuplicates(t *testing.T) {
	svc, _, jwtService := newService(t)

	res := signup(t, svc, "  Jane@Example.COM ", models.RoleClient)
	if res.User.Email != "jane@example.com" || res.User.Role != models.RoleClient || res.TokenType != "Bearer" {
		t.Fatalf("unexpected response %+v", res)
	}
	claims, err := jwtService.ValidateAccessToken(res.Token)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if claims.UserID != res.User.ID || claims.Name != "Jane Client" {
		t.Fatalf("unexpected claims %+v", claims)
	}

	_, err = svc.Signup(context.Background(), &SignupRequest{Email: "jane@example.com", Password: "password123", Name: "Other", Role: "photographer"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()
	signup(t, svc, "jane@example.com", models.RoleClient)

	if _, err := svc.Login(ctx, &LoginRequest{Email: "JANE@example.com", Password: "password123"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.Login(ctx, &LoginRequest{Email: "jane@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, &LoginRequest{Email: "ghost@example.com", Password: "password123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogoutRevokesTokenID(t *testing.T) {
	svc, denylist, jwtService := newService(t)
	ctx := context.Background()
	res := signup(t, svc, "jane@example.com", models.RoleClient)
	claims, _ := jwtService.ValidateAccessToken(res.Token)

	if err := svc.Logout(ctx, claims); err != nil {
		t.Fatalf("logout: %v", err)
	}
	revoked, err := denylist.IsRevoked(ctx, claims.ID)
	if err != nil || !revoked {
		t.Fatalf("expected revoked token, got %v %v", revoked, err)
	}
	if err := svc.Logout(ctx, nil); err != nil {
		t.Fatalf("logout without claims: %v", err)
	}
}

func TestMe(t *testing.T) {
	svc, _, _ := newService(t)
	res := signup(t, svc, "jane@example.com", models.RoleClient)

	me, err := svc.Me(context.Background(), models.Identity{ID: res.User.ID})
	if err != nil || me.Email != "jane@example.com" {
		t.Fatalf("unexpected me %+v err=%v", me, err)
	}
	if _, err := svc.Me(context.Background(), models.Identity{ID: "ghost"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestMemoryDenylistExpires(t *testing.T) {
	d := NewMemoryDenylist()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return now }
	ctx := context.Background()

	_ = d.Revoke(ctx, "live", now.Add(time.Minute))
	_ = d.Revoke(ctx, "already-expired", now.Add(-time.Minute))

	if ok, _ := d.IsRevoked(ctx, "live"); !ok {
		t.Fatal("expected live token to be revoked")
	}
	if ok, _ := d.IsRevoked(ctx, "already-expired"); ok {
		t.Fatal("expired token must not be stored")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := d.IsRevoked(ctx, "live"); ok {
		t.Fatal("revocation must lapse with the token")
	}
	if n := d.purge(); n != 1 {
		t.Fatalf("expected 1 purged entry, got %d", n)
	}
}

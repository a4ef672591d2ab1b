package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/pkg/jwt"
	"github.com/ayuu-te/studio-look/internal/pkg/response"
)

type contextKey string

const (
	identityKey contextKey = "identity"
	claimsKey   contextKey = "claims"
)

var (
	errMissingHeader = errors.New("missing authorization header")
	errBadHeader     = errors.New("invalid authorization header format")
	errRevokedToken  = errors.New("token revoked")
)

// TokenRevocations reports whether a token id was revoked by logout
type TokenRevocations interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Auth returns middleware that requires a valid bearer token
func Auth(jwtService *jwt.Service, revocations TokenRevocations) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authenticate(r, jwtService, revocations)
			if err != nil {
				switch {
				case errors.Is(err, jwt.ErrExpiredToken):
					response.Unauthorized(w, "Token expired")
				case errors.Is(err, errMissingHeader):
					response.Unauthorized(w, "Missing authorization header")
				case errors.Is(err, errBadHeader):
					response.Unauthorized(w, "Invalid authorization header format")
				case errors.Is(err, errRevokedToken):
					response.Unauthorized(w, "Token has been revoked")
				case errors.Is(err, jwt.ErrInvalidToken):
					response.Unauthorized(w, "Invalid token")
				default:
					log.Error().Err(err).Msg("Token revocation lookup failed")
					response.InternalError(w)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// OptionalAuth attaches the caller identity when a valid token is present
// and otherwise lets the request through anonymously.
func OptionalAuth(jwtService *jwt.Service, revocations TokenRevocations) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authenticate(r, jwtService, revocations)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

func authenticate(r *http.Request, jwtService *jwt.Service, revocations TokenRevocations) (*jwt.Claims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, errBadHeader
	}

	claims, err := jwtService.ValidateAccessToken(parts[1])
	if err != nil {
		return nil, err
	}

	if revocations != nil {
		revoked, err := revocations.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, errRevokedToken
		}
	}
	return claims, nil
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, claimsKey, claims)
	return WithIdentity(ctx, claims.Identity())
}

// WithIdentity stores the caller identity in ctx
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity extracts the caller identity from context
func GetIdentity(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(models.Identity)
	return identity, ok && identity.ID != ""
}

// GetClaims extracts the validated token claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

// RequireRole returns middleware that checks user role
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}

			for _, role := range roles {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "Insufficient permissions")
		})
	}
}

// RequirePhotographer returns middleware that requires photographer role
func RequirePhotographer() func(http.Handler) http.Handler {
	return RequireRole(models.RolePhotographer)
}

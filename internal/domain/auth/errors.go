package auth

import "github.com/ayuu-te/studio-look/internal/pkg/apperror"

var (
	ErrMissingFields      = apperror.Validation("Missing required fields: email, password, name, role")
	ErrInvalidRole        = apperror.Validation(`Role must be either "photographer" or "client"`)
	ErrInvalidEmail       = apperror.Validation("Invalid email address")
	ErrWeakPassword       = apperror.Validation("Password must be at least 8 characters")
	ErrEmailAlreadyExists = apperror.Conflict("User with this email already exists")
	ErrInvalidCredentials = apperror.Unauthenticated("Invalid email or password")
	ErrUserNotFound       = apperror.NotFound("User not found")
)

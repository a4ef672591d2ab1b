package selection

import "github.com/ayuu-te/studio-look/internal/pkg/apperror"

var (
	ErrInvalidStatus  = apperror.Validation("Invalid status. Must be: selected, rejected, or pending")
	ErrEmptyPhotoList = apperror.Validation("photoIds must be a non-empty array")
	ErrPhotoNotFound  = apperror.NotFound("Photo not found")
)

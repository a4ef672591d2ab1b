package gallery

import "github.com/ayuu-te/studio-look/internal/pkg/apperror"

var (
	ErrGalleryNotFound  = apperror.NotFound("Gallery not found or access denied")
	ErrGalleryNotShared = apperror.Forbidden("This gallery is not currently shared")
)

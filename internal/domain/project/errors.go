package project

import "github.com/ayuu-te/studio-look/internal/pkg/apperror"

var (
	ErrProjectNotFound = apperror.NotFound("Project not found")
	ErrNotOwner        = apperror.Forbidden("You do not have access to this project")
	ErrFolderNotFound  = apperror.NotFound("Folder not found")
	ErrFolderMismatch  = apperror.Validation("Folder does not belong to this project")
	ErrInvalidStatus   = apperror.Validation("Invalid status. Must be: draft, shared, or completed")
	ErrTokenExhausted  = apperror.Conflict("Could not allocate a unique share token")
)

package comment

import "github.com/ayuu-te/studio-look/internal/pkg/apperror"

var (
	ErrEmptyContent    = apperror.Validation("Comment content is required")
	ErrAuthRequired    = apperror.Unauthenticated("Authentication required")
	ErrPhotoNotFound   = apperror.NotFound("Photo not found")
	ErrParentNotFound  = apperror.NotFound("Parent comment not found")
	ErrNestingTooDeep  = apperror.Validation("Cannot reply to a reply. Please reply to the original comment.")
	ErrCommentNotFound = apperror.NotFound("Comment not found")
	ErrNotAuthorEdit   = apperror.Forbidden("You can only edit your own comments")
	ErrNotAuthorDelete = apperror.Forbidden("You can only delete your own comments")
)

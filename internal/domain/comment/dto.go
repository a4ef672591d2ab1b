package comment

import "github.com/ayuu-te/studio-look/internal/models"

// CreateRequest is the body of POST /comments/photo/{photoId}
type CreateRequest struct {
	Content  string `json:"content"`
	ParentID string `json:"parentId,omitempty"`
}

// UpdateRequest is the body of PUT /comments/{commentId}
type UpdateRequest struct {
	Content string `json:"content"`
}

// AddInput carries everything needed to create a comment.
// An empty ProjectID is resolved from the photo record.
type AddInput struct {
	PhotoID   string
	ProjectID string
	Author    models.Identity
	Content   string
	ParentID  string
}

// PhotoThread is the threaded listing for one photo
type PhotoThread struct {
	Comments []Thread `json:"comments"`
	Total    int      `json:"total"`
}

// ProjectComments groups a project's comments by photo, newest first
type ProjectComments struct {
	CommentsByPhoto    map[string][]models.Comment `json:"commentsByPhoto"`
	Total              int                         `json:"total"`
	PhotosWithComments int                         `json:"photosWithComments"`
}

// DeleteResult reports how many comments a delete removed
type DeleteResult struct {
	DeletedCount int `json:"deletedCount"`
}

package project

import "github.com/ayuu-te/studio-look/internal/models"

// CreateRequest for POST /projects
type CreateRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// UpdateRequest for PUT /projects/{id}. Nil fields are left unchanged.
type UpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,notblank,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Status      *string `json:"status" validate:"omitempty,project_status"`
}

// CreateFolderRequest for POST /projects/{id}/folders
type CreateFolderRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// AddPhotoRequest for POST /projects/{id}/photos. Files are hosted
// elsewhere; only the record is kept.
type AddPhotoRequest struct {
	FolderID     string                `json:"folderId" validate:"required"`
	Filename     string                `json:"filename" validate:"required,max=255"`
	OriginalName string                `json:"originalName" validate:"omitempty,max=255"`
	URL          string                `json:"url" validate:"required,url"`
	ThumbnailURL string                `json:"thumbnailUrl" validate:"omitempty,url"`
	Size         int64                 `json:"size" validate:"gte=0"`
	Width        int                   `json:"width" validate:"gte=0"`
	Height       int                   `json:"height" validate:"gte=0"`
	Metadata     *models.PhotoMetadata `json:"metadata"`
}

// Summary is a project row of the photographer's dashboard
type Summary struct {
	models.Project
	FolderCount int `json:"folderCount"`
	PhotoCount  int `json:"photoCount"`
}

// Stats aggregates a project's content
type Stats struct {
	FolderCount int   `json:"folderCount"`
	PhotoCount  int   `json:"photoCount"`
	TotalSize   int64 `json:"totalSize"`
}

// Detail is a project with everything under it
type Detail struct {
	Project models.Project  `json:"project"`
	Folders []models.Folder `json:"folders"`
	Photos  []models.Photo  `json:"photos"`
	Stats   Stats           `json:"stats"`
}

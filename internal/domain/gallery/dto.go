package gallery

import (
	"time"

	"github.com/ayuu-te/studio-look/internal/domain/selection"
	"github.com/ayuu-te/studio-look/internal/models"
)

// StatusAll disables the status filter
const StatusAll = "all"

// Filters narrow the returned photo list. Empty fields do not filter.
type Filters struct {
	FolderID string
	Status   string
}

// ProjectSummary is the client-visible part of a project
type ProjectSummary struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Status      models.ProjectStatus `json:"status"`
}

// SelectionView is the decision attached to a photo. Pending photos carry
// a null id and updatedAt.
type SelectionView struct {
	ID        *string                `json:"id"`
	Status    models.SelectionStatus `json:"status"`
	UpdatedAt *time.Time             `json:"updatedAt"`
}

// PhotoView is a photo with its current decision
type PhotoView struct {
	models.Photo
	Selection SelectionView `json:"selection"`
}

// View is everything a client needs to render a shared gallery
type View struct {
	Project ProjectSummary  `json:"project"`
	Folders []models.Folder `json:"folders"`
	Photos  []PhotoView     `json:"photos"`
	Stats   selection.Stats `json:"stats"`
}

// Completion confirms the client finished reviewing
type Completion struct {
	ProjectID   string    `json:"projectId"`
	CompletedAt time.Time `json:"completedAt"`
}

package selection

import (
	"time"

	"github.com/ayuu-te/studio-look/internal/models"
)

// SetRequest is the body of a single selection change
type SetRequest struct {
	Status string `json:"status" validate:"required,selection_status"`
}

// BulkRequest is the body of a bulk selection change
type BulkRequest struct {
	PhotoIDs []string `json:"photoIds" validate:"required,min=1"`
	Status   string   `json:"status" validate:"required,selection_status"`
}

// View is the result of one selection change
type View struct {
	PhotoID   string                 `json:"photoId"`
	Status    models.SelectionStatus `json:"status"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// ItemResult reports the outcome for one photo of a bulk change
type ItemResult struct {
	PhotoID string                 `json:"photoId"`
	Success bool                   `json:"success"`
	Status  models.SelectionStatus `json:"status,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// BulkResult lists per-photo outcomes in input order
type BulkResult struct {
	Results []ItemResult `json:"results"`
	Updated int          `json:"updated"`
	Failed  int          `json:"failed"`
}

// Stats counts decisions over a set of photos
type Stats struct {
	Total    int `json:"total"`
	Selected int `json:"selected"`
	Rejected int `json:"rejected"`
	Pending  int `json:"pending"`
}

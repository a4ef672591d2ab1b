package models

import "time"

// ProjectStatus represents gallery lifecycle state
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusShared    ProjectStatus = "shared"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Valid reports whether s is a known project status
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusDraft, ProjectStatusShared, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project is a photographer's gallery shared with a client through its share token
type Project struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description"`
	OwnerID     string        `json:"ownerId" yaml:"ownerId"`
	ShareToken  string        `json:"shareToken" yaml:"shareToken"`
	Status      ProjectStatus `json:"status" yaml:"status"`
	CreatedAt   time.Time     `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" yaml:"updatedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty" yaml:"completedAt"`
}

// Folder groups photos inside a project
type Folder struct {
	ID          string    `json:"id" yaml:"id"`
	ProjectID   string    `json:"projectId" yaml:"projectId"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
}

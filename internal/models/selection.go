package models

import "time"

// SelectionStatus is a client's decision about a photo.
// Pending is never stored: it is the absence of a Selection record.
type SelectionStatus string

const (
	SelectionSelected SelectionStatus = "selected"
	SelectionRejected SelectionStatus = "rejected"
	SelectionPending  SelectionStatus = "pending"
)

// Valid reports whether s is one of selected, rejected or pending
func (s SelectionStatus) Valid() bool {
	switch s {
	case SelectionSelected, SelectionRejected, SelectionPending:
		return true
	}
	return false
}

// Selection records a selected or rejected decision for one photo of a project
type Selection struct {
	ID        string          `json:"id" yaml:"id"`
	PhotoID   string          `json:"photoId" yaml:"photoId"`
	ProjectID string          `json:"projectId" yaml:"projectId"`
	ClientID  string          `json:"clientId" yaml:"clientId"`
	Status    SelectionStatus `json:"status" yaml:"status"`
	CreatedAt time.Time       `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt" yaml:"updatedAt"`
}

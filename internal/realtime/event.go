// Package realtime pushes gallery changes to connected websocket clients.
package realtime

import (
	"context"
	"time"
)

// EventType names a gallery change
type EventType string

const (
	EventSelectionUpdated     EventType = "selection.updated"
	EventSelectionBulkUpdated EventType = "selection.bulk_updated"
	EventCommentCreated       EventType = "comment.created"
	EventCommentUpdated       EventType = "comment.updated"
	EventCommentDeleted       EventType = "comment.deleted"
	EventGalleryCompleted     EventType = "gallery.completed"
)

// Event is the payload delivered to every client watching a project
type Event struct {
	Type      EventType   `json:"type"`
	ProjectID string      `json:"projectId"`
	Data      interface{} `json:"data,omitempty"`
	At        time.Time   `json:"at"`
}

// Publisher delivers events. Delivery is best effort and never fails the caller.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// Publish sends event through p when p is non-nil
func Publish(ctx context.Context, p Publisher, event Event) {
	if p == nil {
		return
	}
	p.Publish(ctx, event)
}

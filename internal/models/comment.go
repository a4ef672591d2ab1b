package models

import "time"

// Comment is a note on a photo. ParentID is empty for top-level comments;
// a reply always points at a top-level comment.
type Comment struct {
	ID         string    `json:"id" yaml:"id"`
	PhotoID    string    `json:"photoId" yaml:"photoId"`
	ProjectID  string    `json:"projectId" yaml:"projectId"`
	AuthorID   string    `json:"authorId" yaml:"authorId"`
	AuthorName string    `json:"authorName" yaml:"authorName"`
	Content    string    `json:"content" yaml:"content"`
	ParentID   string    `json:"parentId,omitempty" yaml:"parentId"`
	CreatedAt  time.Time `json:"createdAt" yaml:"createdAt"`
}

// IsReply reports whether the comment answers another comment
func (c Comment) IsReply() bool {
	return c.ParentID != ""
}

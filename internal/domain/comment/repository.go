package comment

import (
	"context"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/store"
)

// Repository defines comment data access interface
type Repository interface {
	PhotoProjectID(ctx context.Context, photoID string) (string, error)
	// Create checks the parent and inserts in one step
	Create(ctx context.Context, c models.Comment) error
	UpdateContent(ctx context.Context, id, authorID, content string) (models.Comment, error)
	// DeleteWithReplies removes the comment and its direct replies and
	// returns the removed top comment with the number of records deleted
	DeleteWithReplies(ctx context.Context, id, authorID string) (models.Comment, int, error)
	ListByPhoto(ctx context.Context, photoID string) ([]models.Comment, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Comment, error)
}

type repository struct {
	st *store.Store
}

// NewRepository creates comment repository backed by the entity store
func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

func (r *repository) PhotoProjectID(ctx context.Context, photoID string) (string, error) {
	var projectID string
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		photo, ok := tx.Photo(photoID)
		if !ok {
			return ErrPhotoNotFound
		}
		projectID = photo.ProjectID
		return nil
	})
	return projectID, err
}

func (r *repository) Create(ctx context.Context, c models.Comment) error {
	return r.st.Write(ctx, func(tx *store.Tx) error {
		if c.IsReply() {
			parent, ok := tx.Comment(c.ParentID)
			if !ok || parent.PhotoID != c.PhotoID {
				return ErrParentNotFound
			}
			if parent.IsReply() {
				return ErrNestingTooDeep
			}
		}
		return tx.InsertComment(c)
	})
}

func (r *repository) UpdateContent(ctx context.Context, id, authorID, content string) (models.Comment, error) {
	var updated models.Comment
	err := r.st.Write(ctx, func(tx *store.Tx) error {
		c, ok := tx.Comment(id)
		if !ok {
			return ErrCommentNotFound
		}
		if c.AuthorID != authorID {
			return ErrNotAuthorEdit
		}
		c.Content = content
		updated = c
		return tx.UpdateComment(c)
	})
	return updated, err
}

func (r *repository) DeleteWithReplies(ctx context.Context, id, authorID string) (models.Comment, int, error) {
	var (
		root    models.Comment
		deleted int
	)
	err := r.st.Write(ctx, func(tx *store.Tx) error {
		c, ok := tx.Comment(id)
		if !ok {
			return ErrCommentNotFound
		}
		root = c
		if c.AuthorID != authorID {
			return ErrNotAuthorDelete
		}
		ids := []string{c.ID}
		for _, reply := range tx.Replies(c.ID) {
			ids = append(ids, reply.ID)
		}
		var err error
		deleted, err = tx.DeleteComments(ids...)
		return err
	})
	return root, deleted, err
}

func (r *repository) ListByPhoto(ctx context.Context, photoID string) ([]models.Comment, error) {
	var out []models.Comment
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		out = tx.CommentsByPhoto(photoID)
		return nil
	})
	return out, err
}

func (r *repository) ListByProject(ctx context.Context, projectID string) ([]models.Comment, error) {
	var out []models.Comment
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		out = tx.CommentsByProject(projectID)
		return nil
	})
	return out, err
}

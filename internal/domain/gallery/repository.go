package gallery

import (
	"context"
	"time"

	"github.com/ayuu-te/studio-look/internal/models"
	"github.com/ayuu-te/studio-look/internal/store"
)

// Snapshot is a consistent read of one project and everything under it
type Snapshot struct {
	Project    models.Project
	Folders    []models.Folder
	Photos     []models.Photo
	Selections []models.Selection
}

// Repository defines gallery data access interface
type Repository interface {
	ProjectByToken(ctx context.Context, shareToken string) (models.Project, error)
	Snapshot(ctx context.Context, shareToken string) (*Snapshot, error)
	// MarkCompleted completes the project once; later calls return it unchanged
	MarkCompleted(ctx context.Context, shareToken string, at time.Time) (models.Project, bool, error)
}

type repository struct {
	st *store.Store
}

// NewRepository creates gallery repository backed by the entity store
func NewRepository(st *store.Store) Repository {
	return &repository{st: st}
}

func (r *repository) ProjectByToken(ctx context.Context, shareToken string) (models.Project, error) {
	var project models.Project
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		p, ok := tx.ProjectByToken(shareToken)
		if !ok {
			return ErrGalleryNotFound
		}
		project = p
		return nil
	})
	return project, err
}

func (r *repository) Snapshot(ctx context.Context, shareToken string) (*Snapshot, error) {
	var snap *Snapshot
	err := r.st.Read(ctx, func(tx *store.Tx) error {
		p, ok := tx.ProjectByToken(shareToken)
		if !ok {
			return ErrGalleryNotFound
		}
		snap = &Snapshot{
			Project:    p,
			Folders:    tx.FoldersByProject(p.ID),
			Photos:     tx.PhotosByProject(p.ID),
			Selections: tx.SelectionsByProject(p.ID),
		}
		return nil
	})
	return snap, err
}

func (r *repository) MarkCompleted(ctx context.Context, shareToken string, at time.Time) (models.Project, bool, error) {
	var (
		project models.Project
		changed bool
	)
	err := r.st.Write(ctx, func(tx *store.Tx) error {
		p, ok := tx.ProjectByToken(shareToken)
		if !ok {
			return ErrGalleryNotFound
		}
		if p.Status == models.ProjectStatusCompleted && p.CompletedAt != nil {
			project = p
			return nil
		}
		p.Status = models.ProjectStatusCompleted
		p.CompletedAt = &at
		p.UpdatedAt = at
		project, changed = p, true
		return tx.UpdateProject(p)
	})
	return project, changed, err
}
